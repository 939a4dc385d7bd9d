package plan

import "math"

// Targets maps modes to daily minute targets.
type Targets map[Mode]int

// Overrides are the user's plan preference knobs. Zero means unset.
type Overrides struct {
	DailyMinutes  int
	SiddurMinutes int
}

// NominalTargets folds a week's blocks into per-mode nominal minutes.
//
// Each block's label is resolved to a mode and its duration annotation
// parsed; both must succeed for the block to contribute, otherwise it is
// skipped silently. Blocks accumulate: two blocks resolving to the same
// mode add their minutes. The result is independent of block order.
func NominalTargets(week *WeekDefinition) Targets {
	targets := Targets{}
	for _, b := range week.Blocks {
		mode, ok := ResolveLabel(b.Label)
		if !ok {
			continue
		}
		minutes, ok := ParseLeadingMinutes(b.Time)
		if !ok {
			continue
		}
		targets[mode] += minutes
	}
	return targets
}

// ApplyOverrides redistributes nominal targets under the user's total-time
// override and/or anchor floor.
//
// With both knobs unset the nominal targets pass through unchanged. The
// anchor gets max(SiddurMinutes, nominal anchor) — the floor can raise the
// anchor above the plan's value, never lower it. When DailyMinutes is set,
// whatever remains after the anchor is split across the other modes in
// proportion to their nominal shares (round half up), with a hard 1-minute
// minimum for any mode that had a nonzero share while time remains. The
// minimum can push the redistributed sum a few minutes over the requested
// total; that drift is accepted, not corrected. When only the floor is set,
// the non-anchor amounts keep their plan values.
//
// Contradictory inputs (SiddurMinutes > DailyMinutes) are not re-validated
// here — the settings layer rejects them — and simply leave the anchor the
// whole budget.
func ApplyOverrides(nominal Targets, ov Overrides) Targets {
	out := make(Targets, len(nominal))
	if ov.DailyMinutes == 0 && ov.SiddurMinutes == 0 {
		for m, v := range nominal {
			out[m] = v
		}
		return out
	}

	anchor := ov.SiddurMinutes
	if nominal[AnchorMode] > anchor {
		anchor = nominal[AnchorMode]
	}

	nonAnchorTotal := 0
	for m, v := range nominal {
		if m != AnchorMode {
			nonAnchorTotal += v
		}
	}
	divisor := nonAnchorTotal
	if divisor == 0 {
		divisor = 1
	}

	remaining := nonAnchorTotal
	if ov.DailyMinutes > 0 {
		remaining = ov.DailyMinutes - anchor
		if remaining < 0 {
			remaining = 0
		}
	}

	if anchor > 0 {
		out[AnchorMode] = anchor
	}
	for m, v := range nominal {
		if m == AnchorMode {
			continue
		}
		share := int(math.Round(float64(v) / float64(divisor) * float64(remaining)))
		if share < 1 && v > 0 && remaining > 0 {
			share = 1
		}
		out[m] = share
	}

	return out
}

// UserTargets computes the final per-mode targets for a week: nominal
// targets adjusted by the user's overrides.
func UserTargets(week *WeekDefinition, ov Overrides) Targets {
	return ApplyOverrides(NominalTargets(week), ov)
}
