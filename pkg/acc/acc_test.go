//nolint:funlen // ok for tests
package acc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		size  int
		want  string
	}{
		{name: "empty", input: "", size: 15, want: ""},
		{name: "ascii", input: "monza", size: 33, want: "monza"},
		{name: "non ascii", input: "Nürburgring", size: 33, want: "Nürburgring"},
		{name: "truncated", input: "porsche_991ii_gt3_r", size: 8, want: "porsche"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]uint16, tt.size)
			EncodeString(buf, tt.input)
			assert.Equal(t, tt.want, DecodeString(buf))
		})
	}
}

func TestEnumNames(t *testing.T) {
	assert.Equal(t, "Race", SessionRace.String())
	assert.Equal(t, "Unknown", SessionUnknown.String())
	assert.Equal(t, "Superpole", SessionSuperpole.String())
	assert.Equal(t, "Unknown", SessionType(42).String())
	assert.Equal(t, "Thunderstorm", RainThunderstorm.String())
	assert.Equal(t, "No Rain", RainNone.String())
	assert.Equal(t, "Flooded", GripFlooded.String())
	assert.Equal(t, "Orange", FlagOrange.String())
	assert.Equal(t, "Live", StatusLive.String())
	assert.Equal(t, "Unknown", Status(-3).String())
	assert.Equal(t, "Post Race Time", PenaltyType(14).String())
}

func TestPhysicsInCar(t *testing.T) {
	p := Physics{
		WheelsPressure: [4]float32{27, 27, 27, 27},
		Heading:        0.1,
		Pitch:          0.1,
		Roll:           0.1,
	}
	assert.True(t, p.InCar())

	noPressure := p
	noPressure.WheelsPressure[RR] = 0
	assert.False(t, noPressure.InCar())

	noPitch := p
	noPitch.Pitch = 0
	assert.False(t, noPitch.InCar())
}

func TestBrakeBias(t *testing.T) {
	assert.InDelta(t, 65.9, BrakeBias(0.68, "porsche_991ii_gt3_r"), 1e-4)
	assert.InDelta(t, 68.0, BrakeBias(0.68, "unknown_car"), 1e-4)
	assert.Equal(t, -22, BrakeBiasOffset("bmw_m4_gt4"))
}

func TestDecodePages(t *testing.T) {
	g := &Graphics{Status: StatusLive, Position: 7, WindSpeed: 3.5, GlobalRed: 1}
	EncodeString(g.TrackStatus[:], "WET")
	EncodeString(g.TyreCompound[:], "wet_compound")
	data, err := Encode(g)
	require.NoError(t, err)
	assert.Len(t, data, GraphicsSize)

	got, err := DecodeGraphics(data)
	require.NoError(t, err)
	assert.Equal(t, *g, *got)
	assert.Equal(t, "WET", got.TrackStatusName())
	assert.Equal(t, "wet_compound", got.TyreCompoundName())

	s := &Static{SectorCount: 3, PitWindowEnd: 1000}
	EncodeString(s.Track[:], "spa")
	EncodeString(s.TrackConfiguration[:], "full")
	data, err = Encode(s)
	require.NoError(t, err)
	gotStatic, err := DecodeStatic(data)
	require.NoError(t, err)
	assert.True(t, *s == *gotStatic)
	assert.Equal(t, "spa", gotStatic.TrackName())
}

func TestDecodeShortPage(t *testing.T) {
	_, err := DecodePhysics(make([]byte, PhysicsSize-1))
	assert.Error(t, err)
	_, err = DecodeStatic(nil)
	assert.Error(t, err)
}

func TestLayoutAlignment(t *testing.T) {
	// every page is made of 4 byte fields
	assert.Zero(t, GraphicsSize%4)
	assert.Zero(t, PhysicsSize%4)
	assert.Zero(t, StaticSize%4)
}

func TestFrameSessionChanged(t *testing.T) {
	s1 := &Static{}
	EncodeString(s1.Track[:], "monza")
	s2 := *s1
	prev := &Frame{Graphics: &Graphics{SessionIndex: 1}, Static: s1}

	same := &Frame{Graphics: &Graphics{SessionIndex: 1}, Static: &s2}
	assert.False(t, same.SessionChanged(prev))

	nextSession := &Frame{Graphics: &Graphics{SessionIndex: 2}, Static: &s2}
	assert.True(t, nextSession.SessionChanged(prev))

	s3 := *s1
	EncodeString(s3.Track[:], "spa")
	otherTrack := &Frame{Graphics: &Graphics{SessionIndex: 1}, Static: &s3}
	assert.True(t, otherTrack.SessionChanged(prev))
}
