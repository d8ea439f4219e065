// Package section builds the parts of an event from a pair of frames.
package section

import (
	"fmt"

	"github.com/mpapenbr/acc-telemetry-bridge/pkg/acc"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/delta"
)

// BuildFunc adds the fields of a section to b.
// prev is never nil, in complete mode it is a zero frame.
type BuildFunc func(b *delta.Builder, cur, prev *acc.Frame)

type Section struct {
	Key   string
	Build BuildFunc
}

// HUD sections in output order
var HUD = []Section{
	{"laptimes", laptimes},
	{"electronics", electronics},
	{"session", session},
	{"conditions", conditions},
	{"pitstop", pitstop},
	{"penalty", penalty},
	{"drivingTime", drivingTime},
	{"fuel", fuel},
	{"flag", flag},
}

// Physics sections in output order
var Physics = []Section{
	{"input", input},
	{"brakes", brakes},
	{"temp", temperature},
	{"motor", motor},
	{"tyres", tyres},
	{"angle", angle},
	{"damage", damage},
	{"suspensionTravel", suspensionTravel},
}

var zeroFrame = &acc.Frame{
	Graphics: &acc.Graphics{},
	Physics:  &acc.Physics{},
	Static:   &acc.Static{},
}

// Compare returns prev or a zero frame if prev is absent.
func Compare(prev *acc.Frame) *acc.Frame {
	if prev == nil {
		return zeroFrame
	}
	return prev
}

// Run builds a single section. A nil prev selects complete mode.
func (s Section) Run(cur, prev *acc.Frame) (*delta.Object, error) {
	b := delta.NewBuilder(prev == nil)
	s.Build(b, cur, Compare(prev))
	obj, err := b.Result()
	if err != nil {
		return nil, fmt.Errorf("section %s: %w", s.Key, err)
	}
	return obj, nil
}

// Apply adds every section of list as child of parent.
func Apply(parent *delta.Builder, list []Section, cur, prev *acc.Frame) {
	for _, s := range list {
		child := parent.Sub()
		s.Build(child, cur, prev)
		parent.Child(s.Key, child)
	}
}
