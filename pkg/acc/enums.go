package acc

const unknown = "Unknown"

type (
	Status        int32
	SessionType   int32
	FlagType      int32
	PenaltyType   int32
	TrackGrip     int32
	RainIntensity int32
)

const (
	StatusOff Status = iota
	StatusReplay
	StatusLive
	StatusPause
)

const (
	SessionUnknown  SessionType = -1
	SessionPractice SessionType = iota - 1
	SessionQualify
	SessionRace
	SessionHotlap
	SessionTimeAttack
	SessionDrift
	SessionDrag
	SessionHotstint
	SessionSuperpole
)

const (
	FlagNone FlagType = iota
	FlagBlue
	FlagYellow
	FlagBlack
	FlagWhite
	FlagChequered
	FlagPenalty
	FlagGreen
	FlagOrange
)

const (
	GripGreen TrackGrip = iota
	GripFast
	GripOptimum
	GripGreasy
	GripDamp
	GripWet
	GripFlooded
)

const (
	RainNone RainIntensity = iota
	RainDrizzle
	RainLight
	RainMedium
	RainHeavy
	RainThunderstorm
)

var (
	statusNames = []string{"Off", "Replay", "Live", "Pause"}
	sessionNames = []string{
		"Practice", "Qualify", "Race", "Hotlap", "Time Attack",
		"Drift", "Drag", "Hotstint", "Superpole",
	}
	flagNames = []string{
		"None", "Blue", "Yellow", "Black", "White",
		"Chequered", "Penalty", "Green", "Orange",
	}
	gripNames = []string{"Green", "Fast", "Optimum", "Greasy", "Damp", "Wet", "Flooded"}
	rainNames = []string{
		"No Rain", "Drizzle", "Light Rain", "Medium Rain", "Heavy Rain", "Thunderstorm",
	}
	penaltyNames = []string{
		"None",
		"Cutting Drive Through",
		"Cutting Stop And Go 10",
		"Cutting Stop And Go 20",
		"Cutting Stop And Go 30",
		"Cutting Disqualified",
		"Cutting Remove Best Lap",
		"Pit Speeding Drive Through",
		"Pit Speeding Stop And Go 10",
		"Pit Speeding Stop And Go 20",
		"Pit Speeding Stop And Go 30",
		"Pit Speeding Disqualified",
		"Pit Speeding Remove Best Lap",
		"Mandatory Pit Disqualified",
		"Post Race Time",
		"Disqualified Trolling",
		"Disqualified Pit Entry",
		"Disqualified Pit Exit",
		"Disqualified Wrong Way",
		"Ignored Driver Stint Drive Through",
		"Ignored Driver Stint Disqualified",
		"Exceeded Driver Stint Disqualified",
	}
)

func lookup(names []string, idx int32) string {
	if idx < 0 || int(idx) >= len(names) {
		return unknown
	}
	return names[idx]
}

func (s Status) String() string        { return lookup(statusNames, int32(s)) }
func (s SessionType) String() string   { return lookup(sessionNames, int32(s)) }
func (f FlagType) String() string      { return lookup(flagNames, int32(f)) }
func (p PenaltyType) String() string   { return lookup(penaltyNames, int32(p)) }
func (g TrackGrip) String() string     { return lookup(gripNames, int32(g)) }
func (r RainIntensity) String() string { return lookup(rainNames, int32(r)) }
