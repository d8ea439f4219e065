//nolint:funlen // ok for tests
package delta

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

type testEnum int32

func (e testEnum) String() string {
	if e == 1 {
		return "One"
	}
	return "Unknown"
}

func TestBuilderFloatRounding(t *testing.T) {
	tests := []struct {
		name      string
		cur, prev float32
		wantEmit  bool
		want      string
	}{
		{name: "equal", cur: 1.5, prev: 1.5, wantEmit: false},
		{name: "beyond third decimal", cur: 1.0001, prev: 1.0004, wantEmit: false},
		{name: "rounds equal", cur: 27.3004, prev: 27.2996, wantEmit: false},
		{name: "third decimal", cur: 1.001, prev: 1.002, wantEmit: true, want: "1.001"},
		{name: "first decimal", cur: 2.5, prev: 2.4, wantEmit: true, want: "2.500"},
		{name: "half away from zero", cur: 0.0005, prev: 0, wantEmit: true, want: "0.001"},
		{name: "negative half away from zero", cur: -0.0005, prev: 0, wantEmit: true, want: "-0.001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(false).Float("v", tt.cur, tt.prev)
			obj, err := b.Result()
			require.NoError(t, err)
			v, ok := obj.Get("v")
			assert.Equal(t, tt.wantEmit, ok)
			if tt.wantEmit {
				assert.Equal(t, tt.want, v.(Number).String())
			}
		})
	}
}

func TestBuilderCompleteMode(t *testing.T) {
	b := NewBuilder(true).
		Int("i", 1, 1).
		Bool("b", 0, 0).
		String("s", "x", "x").
		Float("f", 1, 1).
		Enum("e", testEnum(1), testEnum(1))
	obj, err := b.Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"i", "b", "s", "f", "e"}, obj.Keys())
}

func TestBuilderDeltaMode(t *testing.T) {
	b := NewBuilder(false).
		Int("same", 3, 3).
		Int("changed", 4, 3).
		Bool("flag", 2, 1).
		Bool("flagChanged", 0, 1).
		Enum("e", testEnum(7), testEnum(1))
	obj, err := b.Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"changed", "flagChanged", "e"}, obj.Keys())
	v, _ := obj.Get("e")
	assert.Equal(t, "Unknown", v)
	v, _ = obj.Get("flagChanged")
	assert.Equal(t, false, v)
}

func TestBuilderLapTimeSentinel(t *testing.T) {
	for _, complete := range []bool{true, false} {
		b := NewBuilder(complete).
			LapTime("invalid", math.MaxInt32, 1000).
			LapTime("threshold", SentinelLapTime, 1000).
			LapTime("negative", -1, 1000).
			LapTime("valid", SentinelLapTime-1, 1000)
		obj, err := b.Result()
		require.NoError(t, err)
		assert.Equal(t, []string{"valid"}, obj.Keys(), "complete=%v", complete)
	}
}

func TestBuilderPruning(t *testing.T) {
	parent := NewBuilder(false)
	child := parent.Sub().Float("a", 1, 1).Int("b", 2, 2)
	parent.Child("empty", child)
	parent.Wheels("pressure", [4]float32{1, 2, 3, 4}, [4]float32{1, 2, 3, 4})
	obj, err := parent.Result()
	require.NoError(t, err)
	assert.True(t, obj.IsEmpty())

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	parent.Wheels("pressure", [4]float32{1, 2, 3, 4.5}, [4]float32{1, 2, 3, 4})
	obj, err = parent.Result()
	require.NoError(t, err)
	pressure, ok := obj.Object("pressure")
	require.True(t, ok)
	assert.Equal(t, []string{"rr"}, pressure.Keys())
}

func TestBuilderErrors(t *testing.T) {
	_, err := NewBuilder(true).Int("a", 1, 1).Int("a", 2, 2).Result()
	require.ErrorIs(t, err, ErrDuplicateKey)

	child := NewBuilder(true).Float("f", float32(math.NaN()), 0)
	_, err = NewBuilder(true).Child("c", child).Result()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c: f:")
}

func TestObjectMarshalJSON(t *testing.T) {
	b := NewBuilder(true)
	b.Int("laps", 1, 0)
	b.Float("speed", 212.4567, 0)
	b.Float64("bias", 65.9, 0)
	b.String("track", "monza \"GP\"", "")
	b.Bool("isBoxed", 0, 0)
	rain := b.Sub().String("current", "No Rain", "")
	b.Child("rain", rain)
	obj, err := b.Result()
	require.NoError(t, err)

	data, err := Marshal(obj)
	require.NoError(t, err)
	golden.Assert(t, string(data), "object.golden")
}

func TestMarshalKeepsHTMLCharacters(t *testing.T) {
	player := NewBuilder(true).String("nickname", "<Fast & Furious>", "")
	b := NewBuilder(true).String("firstname", "Tom & Jerry", "")
	b.Child("player", player)
	obj, err := b.Result()
	require.NoError(t, err)

	data, err := Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t,
		`{"firstname":"Tom & Jerry","player":{"nickname":"<Fast & Furious>"}}`,
		string(data))
}
