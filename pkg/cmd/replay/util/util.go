package util

// resolved replay flags
var (
	Speed       int    // replay speed factor, 0 means as fast as possible
	FastForward string // replay this duration of the recording with max speed
	Target      string // transport which receives the replayed events
)
