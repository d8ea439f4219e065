//nolint:funlen // ok for tests
package sector

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestTrackerAddSector(t *testing.T) {
	tr := NewTracker(3)
	assert.Equal(t, int32(12000), tr.AddSector(12000))
	assert.Equal(t, int32(9000), tr.AddSector(21000))
	if diff := cmp.Diff([]int32{12000, 9000}, tr.Times()); diff != "" {
		t.Errorf("Times() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int32(4000), tr.AddSector(25000))
	assert.Equal(t, 3, tr.Cursor())
	assert.True(t, tr.LapComplete())

	// wraps to idle
	assert.Equal(t, int32(11000), tr.AddSector(11000))
	assert.Equal(t, 1, tr.Cursor())
}

func TestTrackerCompleteLap(t *testing.T) {
	tr := NewTracker(3)
	tr.AddSector(30000)
	tr.AddSector(65000)
	assert.Equal(t, int32(40000), tr.CompleteLap(105000))
	assert.Equal(t, 0, tr.Cursor())
	assert.Empty(t, tr.Times())
}

func TestTrackerSetSectorCount(t *testing.T) {
	tr := NewTracker(3)
	tr.AddSector(1000)
	tr.SetSectorCount(5)
	assert.Equal(t, 5, tr.SectorCount())
	assert.Equal(t, 0, tr.Cursor())
	assert.True(t, tr.Synced())

	tr.SetSectorCount(0)
	assert.Equal(t, int32(1000), tr.AddSector(1000))
	assert.Equal(t, 0, tr.Cursor())
}

func TestTrackerLap(t *testing.T) {
	type step struct {
		finish  bool
		from    int32
		to      int32
		reading int32
		want    int32
		wantOk  bool
	}
	tests := []struct {
		name       string
		sectors    int
		steps      []step
		wantCursor int
		wantSynced bool
	}{
		{
			name: "full lap",
			steps: []step{
				{from: 0, to: 1, reading: 30000, want: 30000, wantOk: true},
				{from: 1, to: 2, reading: 65000, want: 35000, wantOk: true},
				{finish: true, from: 2, to: 0, reading: 105000, want: 40000, wantOk: true},
				{from: 0, to: 1, reading: 29000, want: 29000, wantOk: true},
			},
			wantCursor: 1,
			wantSynced: true,
		},
		{
			name: "joined mid lap",
			steps: []step{
				{from: 1, to: 2, reading: 65000, wantOk: false},
				{finish: true, from: 2, to: 0, reading: 105000, wantOk: false},
				{from: 0, to: 1, reading: 29000, want: 29000, wantOk: true},
			},
			wantCursor: 1,
			wantSynced: true,
		},
		{
			name: "missed boundary within lap",
			steps: []step{
				{from: 0, to: 1, reading: 30000, want: 30000, wantOk: true},
				{from: 1, to: 3, reading: 95000, wantOk: false},
				{finish: true, from: 3, to: 0, reading: 130000, wantOk: false},
				{from: 0, to: 1, reading: 31000, want: 31000, wantOk: true},
				{from: 1, to: 2, reading: 66000, want: 35000, wantOk: true},
			},
			sectors:    4,
			wantCursor: 2,
			wantSynced: true,
		},
		{
			name: "missed last boundary",
			steps: []step{
				{from: 0, to: 1, reading: 30000, want: 30000, wantOk: true},
				{finish: true, from: 1, to: 0, reading: 105000, wantOk: false},
				{from: 0, to: 1, reading: 29000, want: 29000, wantOk: true},
			},
			wantCursor: 1,
			wantSynced: true,
		},
		{
			name: "missed first boundary of new lap",
			steps: []step{
				{from: 0, to: 1, reading: 30000, want: 30000, wantOk: true},
				{from: 1, to: 2, reading: 65000, want: 35000, wantOk: true},
				{finish: true, from: 2, to: 1, reading: 105000, want: 40000, wantOk: true},
				{from: 1, to: 2, reading: 64000, wantOk: false},
			},
			wantCursor: 2,
			wantSynced: false,
		},
		{
			name: "invalid reading",
			steps: []step{
				{from: 0, to: 1, reading: 2147483647, wantOk: false},
				{from: 1, to: 2, reading: 65000, wantOk: false},
				{finish: true, from: 2, to: 0, reading: 105000, wantOk: false},
				{from: 0, to: 1, reading: 30000, want: 30000, wantOk: true},
			},
			wantCursor: 1,
			wantSynced: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sectors := tt.sectors
			if sectors == 0 {
				sectors = 3
			}
			tr := NewTracker(sectors)
			for i, s := range tt.steps {
				var got int32
				var ok bool
				if s.finish {
					got, ok = tr.FinishLap(s.from, s.to, s.reading)
				} else {
					got, ok = tr.Leave(s.from, s.to, s.reading)
				}
				assert.Equal(t, s.wantOk, ok, "step %d", i)
				if s.wantOk {
					assert.Equal(t, s.want, got, "step %d", i)
				}
				assert.LessOrEqual(t, tr.Cursor(), tr.SectorCount())
			}
			assert.Equal(t, tt.wantCursor, tr.Cursor())
			assert.Equal(t, tt.wantSynced, tr.Synced())
		})
	}
}
