package handler

import (
	"github.com/gin-gonic/gin"

	"kriah-trainer/backend/internal/plan"
	"kriah-trainer/backend/internal/reference"
	"kriah-trainer/backend/pkg/response"
)

// ReferenceHandler serves the static reference tables. The data is compiled
// in, so this handler needs no service behind it.
type ReferenceHandler struct{}

// NewReferenceHandler creates a ReferenceHandler.
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// Alphabet returns the consonant and vowel reference tables.
// GET /api/v1/reference/alphabet
func (h *ReferenceHandler) Alphabet(c *gin.Context) {
	response.OK(c, gin.H{
		"consonants": reference.Consonants,
		"vowels":     reference.Vowels,
	})
}

// Drills returns the drill content for one practice mode.
// GET /api/v1/reference/drills/:mode
func (h *ReferenceHandler) Drills(c *gin.Context) {
	mode := c.Param("mode")
	if !plan.ValidMode(mode) {
		response.BadRequest(c, 12001, "unknown practice mode")
		return
	}

	response.OK(c, gin.H{
		"mode":  mode,
		"color": reference.ModeColors[mode],
		"items": reference.DrillContent(mode),
	})
}
