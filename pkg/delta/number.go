package delta

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const Places = 3

// Number is a float rounded to three decimal places.
// It is serialized with exactly three decimal places.
type Number struct {
	d decimal.Decimal
}

func Round32(v float32) (Number, error) {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return Number{}, fmt.Errorf("not a finite number: %v", v)
	}
	return Number{d: decimal.NewFromFloat32(v).Round(Places)}, nil
}

func Round64(v float64) (Number, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}, fmt.Errorf("not a finite number: %v", v)
	}
	return Number{d: decimal.NewFromFloat(v).Round(Places)}, nil
}

func (n Number) Equal(other Number) bool {
	return n.d.Equal(other.d)
}

func (n Number) String() string {
	return n.d.StringFixed(Places)
}

func (n Number) Float64() float64 {
	return n.d.InexactFloat64()
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}
