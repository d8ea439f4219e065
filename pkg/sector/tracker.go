// Package sector converts the cumulative split times of a lap into
// the durations of the single sectors.
package sector

import (
	"github.com/samber/lo"

	"github.com/mpapenbr/acc-telemetry-bridge/pkg/delta"
)

// Tracker accumulates the sector durations of the current lap.
//
// The tracker is idle when the cursor is 0, accumulating while the cursor is
// below the sector count and the lap is complete when the cursor equals the
// sector count. times[i] for i < cursor holds the duration of sector i.
type Tracker struct {
	times  []int32
	cursor int
	// synced is false after sector boundaries were missed.
	// Durations are unknown until the next lap starts.
	synced bool
}

func NewTracker(sectorCount int) *Tracker {
	t := &Tracker{}
	t.SetSectorCount(sectorCount)
	return t
}

// SetSectorCount reallocates the storage for n sectors and resets the tracker.
func (t *Tracker) SetSectorCount(n int) {
	t.times = make([]int32, max(n, 0))
	t.Reset()
}

func (t *Tracker) SectorCount() int {
	return len(t.times)
}

func (t *Tracker) Cursor() int {
	return t.cursor
}

// Times returns the durations of the sectors completed in the current lap.
func (t *Tracker) Times() []int32 {
	return t.times[:t.cursor]
}

func (t *Tracker) Synced() bool {
	return t.synced
}

func (t *Tracker) Reset() {
	clear(t.times)
	t.cursor = 0
	t.synced = true
}

func (t *Tracker) LapComplete() bool {
	return t.cursor == len(t.times)
}

// AddSector stores the duration of the sector at the cursor and advances it.
// reading is the lap time at the end of that sector.
// A complete lap wraps to idle first.
func (t *Tracker) AddSector(reading int32) int32 {
	if t.LapComplete() {
		t.Reset()
	}
	if len(t.times) == 0 {
		return reading
	}
	d := reading - lo.Sum(t.times[:t.cursor])
	t.times[t.cursor] = d
	t.cursor++
	return d
}

// CompleteLap records the duration of the last sector from the lap time
// and resets the tracker afterwards.
func (t *Tracker) CompleteLap(lapTime int32) int32 {
	d := lapTime - lo.Sum(t.times[:t.cursor])
	if t.cursor < len(t.times) {
		t.times[t.cursor] = d
		t.cursor++
	}
	t.Reset()
	return d
}

// Leave handles the transition from sector index from to sector index to
// within the same lap. The returned duration is only valid if ok is true.
// A skipped sector (to != from+1) leaves the tracker out of sync.
func (t *Tracker) Leave(from, to int32, reading int32) (d int32, ok bool) {
	if to != from+1 || !t.inSync(from) || !delta.ValidLapTime(reading) {
		t.resync(to)
		return 0, false
	}
	return t.AddSector(reading), true
}

// FinishLap handles the transition out of the last sector into sector to of a new lap.
// The duration is only valid if from is the last sector and the new lap starts in sector 0.
func (t *Tracker) FinishLap(from, to int32, lapTime int32) (d int32, ok bool) {
	last := int(from) == len(t.times)-1
	if !last || !t.inSync(from) || !delta.ValidLapTime(lapTime) {
		t.restart(to)
		return 0, false
	}
	d = t.CompleteLap(lapTime)
	if to != 0 {
		t.resync(to)
	}
	return d, true
}

func (t *Tracker) inSync(index int32) bool {
	return t.synced && int(index) == t.cursor && t.cursor < len(t.times)
}

// restart prepares the tracker for a new lap entered in sector index
func (t *Tracker) restart(index int32) {
	if index == 0 {
		t.Reset()
		return
	}
	t.resync(index)
}

func (t *Tracker) resync(cursor int32) {
	clear(t.times)
	t.cursor = min(max(int(cursor), 0), len(t.times))
	t.synced = false
}
