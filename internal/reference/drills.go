package reference

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed drills.json
var drillsRaw []byte

// drills holds per-mode drill content, loaded once at init.
// The siddur mode deliberately has no entry — siddur reading uses the
// user's own printed siddur, not app content.
var drills map[string][]string

func init() {
	if err := json.Unmarshal(drillsRaw, &drills); err != nil {
		panic(fmt.Sprintf("reference: corrupt embedded drills.json: %v", err))
	}
}

// DrillContent returns the drill lines for a mode. Modes without content
// (siddur, unknown) return an empty slice.
func DrillContent(mode string) []string {
	return drills[mode]
}
