package plan

// TimeBlock is one labeled, timed activity within a week definition.
type TimeBlock struct {
	Time  string `json:"time"`  // free-text duration annotation, e.g. "10–15 min"
	Label string `json:"label"` // human-readable activity name
	Body  string `json:"body"`  // descriptive text, not used for targets
}

// WeekDefinition is one week of a curriculum plan.
type WeekDefinition struct {
	Week             int         `json:"week"` // 1-indexed within its plan
	Phase            string      `json:"phase"`
	PhaseShort       string      `json:"phase_short"`
	Title            string      `json:"title"`
	WeeksLabel       string      `json:"weeks_label"`
	Milestone        string      `json:"milestone"`
	RecommendedModes []Mode      `json:"recommended_modes"`
	DailyMinutes     string      `json:"daily_minutes"` // display range, e.g. "45–60"
	Blocks           []TimeBlock `json:"structure"`
	Tip              string      `json:"tip"`
}

// Plan is a complete N-week curriculum.
type Plan struct {
	Weeks []WeekDefinition `json:"weeks"`
}

// Length reports the number of weeks in the plan.
func (p *Plan) Length() int { return len(p.Weeks) }

// WeekAt returns the 1-indexed week definition, clamping out-of-range
// indexes into [1, N].
func (p *Plan) WeekAt(week int) *WeekDefinition {
	if week < 1 {
		week = 1
	}
	if week > len(p.Weeks) {
		week = len(p.Weeks)
	}
	return &p.Weeks[week-1]
}

// PlanLengths lists the supported plan lengths.
func PlanLengths() []int { return []int{8, 12, 16} }

// ValidPlanLength reports whether n is a supported plan length.
func ValidPlanLength(n int) bool { return n == 8 || n == 12 || n == 16 }

// PlanByLength looks up the catalog plan for a supported length.
// The returned plan is shared and must be treated as read-only.
func PlanByLength(n int) (*Plan, bool) {
	p, ok := catalog[n]
	return p, ok
}
