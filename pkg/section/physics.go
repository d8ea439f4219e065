package section

import (
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/acc"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/delta"
)

func input(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Physics, prev.Physics
	b.Float("accelerator", c.Gas, p.Gas).
		Float("brake", c.Brake, p.Brake).
		Float("clutch", c.Clutch, p.Clutch).
		Float("steeringAngle", c.SteerAngle, p.SteerAngle).
		Bool("pitLimiter", c.PitLimiterOn, p.PitLimiterOn)
}

// brakes includes the bias as displayed in the car which depends on the car model.
func brakes(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Physics, prev.Physics
	b.Float64("bias",
		acc.BrakeBias(c.BrakeBias, cur.Static.CarModelName()),
		acc.BrakeBias(p.BrakeBias, prev.Static.CarModelName()))
	b.Wheels("pressure", c.BrakePressure, p.BrakePressure)
	compound := b.Sub().
		Int("front", c.FrontBrakeCompound, p.FrontBrakeCompound).
		Int("rear", c.RearBrakeCompound, p.RearBrakeCompound)
	b.Child("compound", compound)
	b.Wheels("padWear", c.PadLife, p.PadLife).
		Wheels("discWear", c.DiscLife, p.DiscLife).
		Wheels("temp", c.BrakeTemp, p.BrakeTemp)
}

func temperature(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Physics, prev.Physics
	b.Float("ambient", c.AirTemp, p.AirTemp).
		Float("track", c.RoadTemp, p.RoadTemp)
}

func motor(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Physics, prev.Physics
	b.Float("waterTemp", c.WaterTemp, p.WaterTemp).
		Int("rpm", c.RPM, p.RPM).
		Float("boostPressure", c.TurboBoost, p.TurboBoost).
		Bool("running", c.IsEngineRunning, p.IsEngineRunning).
		Bool("starter", c.StarterEngineOn, p.StarterEngineOn).
		Bool("ignition", c.IgnitionOn, p.IgnitionOn)
}

func tyres(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Physics, prev.Physics
	b.Wheels("pressure", c.WheelsPressure, p.WheelsPressure).
		Wheels("temp", c.TyreCoreTemperature, p.TyreCoreTemperature).
		Int("set", cur.Graphics.CurrentTyreSet, prev.Graphics.CurrentTyreSet)
}

func angle(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Physics, prev.Physics
	b.Float("pitch", c.Pitch, p.Pitch).
		Float("roll", c.Roll, p.Roll).
		Float("yaw", c.Heading, p.Heading)
}

func damage(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Physics.CarDamage, prev.Physics.CarDamage
	b.Float("front", c[acc.DamageFront], p[acc.DamageFront]).
		Float("rear", c[acc.DamageRear], p[acc.DamageRear]).
		Float("left", c[acc.DamageLeft], p[acc.DamageLeft]).
		Float("right", c[acc.DamageRight], p[acc.DamageRight]).
		Float("centre", c[acc.DamageCentre], p[acc.DamageCentre])
}

func suspensionTravel(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Physics.SuspensionTravel, prev.Physics.SuspensionTravel
	for i, k := range []string{"fl", "fr", "rl", "rr"} {
		b.Float(k, c[i], p[i])
	}
}
