package domain

// Action is a recommended protective action for one zone.
type Action string

// Protective actions, from most to least urgent.
const (
	ActionEvacuate Action = "Evacuate"
	ActionShelter  Action = "Shelter-in-Place"
	ActionMonitor  Action = "Monitor & Advise"
	ActionNone     Action = "No Immediate Action"
)

// Color is the display severity tag, 1:1 with Action.
type Color string

const (
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
)

// Dose thresholds in mSv, inclusive lower bounds. Simplified early-phase
// protective action guide values carried over from the RASCAL prototype.
const (
	evacuateThresholdMSv = 10.0
	shelterThresholdMSv  = 5.0
	monitorThresholdMSv  = 1.0
)

// RecommendAction maps a projected dose to a protective action. Evaluated
// top-down, first match wins; boundary doses belong to the higher-severity
// bucket (exactly 5.0 mSv shelters, it does not monitor).
func RecommendAction(doseMSv float64) Action {
	switch {
	case doseMSv >= evacuateThresholdMSv:
		return ActionEvacuate
	case doseMSv >= shelterThresholdMSv:
		return ActionShelter
	case doseMSv >= monitorThresholdMSv:
		return ActionMonitor
	default:
		return ActionNone
	}
}

// DisplayColor returns the severity color for an action. Unknown actions
// fall back to green, matching the legacy dashboard's catch-all.
func (a Action) DisplayColor() Color {
	switch a {
	case ActionEvacuate:
		return ColorRed
	case ActionShelter:
		return ColorOrange
	case ActionMonitor:
		return ColorYellow
	default:
		return ColorGreen
	}
}

// RecommendActions annotates every zone with its recommended action and
// display color. It is total over well-formed records: the result has the
// same length and order as the input and no zone is ever dropped. The input
// slice is not mutated; callers get an augmented copy. An empty or nil set
// comes back unchanged.
func RecommendActions(zones []ZoneReport) []ZoneReport {
	if len(zones) == 0 {
		return zones
	}
	now := clock.Now()
	out := make([]ZoneReport, len(zones))
	copy(out, zones)
	for i := range out {
		out[i].Action = RecommendAction(out[i].DoseMSv)
		out[i].Color = out[i].Action.DisplayColor()
		out[i].AssessedAt = now
	}
	return out
}
