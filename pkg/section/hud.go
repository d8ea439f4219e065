package section

import (
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/acc"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/delta"
)

func laptimes(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Graphics, prev.Graphics
	if delta.ValidLapTime(c.CurrentTime) {
		b.Always("current", c.CurrentTime)
	}
	b.LapTime("last", c.LastTime, p.LastTime).
		LapTime("best", c.BestTime, p.BestTime).
		Int("delta", c.DeltaLapTime, p.DeltaLapTime).
		LapTime("estimated", c.EstimatedLapTime, p.EstimatedLapTime).
		LapTime("lastSplit", c.Split, p.Split).
		LapTime("lastSector", c.LastSectorTime, p.LastSectorTime).
		Bool("isDeltaPositive", c.IsDeltaPositive, p.IsDeltaPositive).
		Bool("isValidLap", c.IsValidLap, p.IsValidLap)
}

func electronics(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Graphics, prev.Graphics
	b.Int("tc", c.TC, p.TC).
		Int("tcCut", c.TCCut, p.TCCut).
		Int("engineMap", c.EngineMap, p.EngineMap).
		Int("abs", c.ABS, p.ABS).
		Int("rainLight", c.RainLights, p.RainLights).
		Int("flashingLights", c.FlashingLights, p.FlashingLights).
		Int("lights", c.LightsStage, p.LightsStage).
		Int("wiperLevel", c.WiperLevel, p.WiperLevel).
		Bool("leftIndicator", c.DirectionLightsLeft, p.DirectionLightsLeft).
		Bool("rightIndicator", c.DirectionLightsRight, p.DirectionLightsRight)
}

func session(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Graphics, prev.Graphics
	b.Enum("type", c.Session, p.Session).
		Float("timeLeft", c.SessionTimeLeft, p.SessionTimeLeft).
		Int("activeCars", c.ActiveCars, p.ActiveCars).
		Float("clock", c.Clock, p.Clock).
		Int("index", c.SessionIndex, p.SessionIndex)
}

func conditions(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Graphics, prev.Graphics
	b.Float("surfaceGrip", c.SurfaceGrip, p.SurfaceGrip).
		Float("windSpeed", c.WindSpeed, p.WindSpeed).
		Float("windDirection", c.WindDirection, p.WindDirection).
		Enum("track", c.TrackGripStatus, p.TrackGripStatus)

	rain := b.Sub().
		Enum("current", c.RainIntensity, p.RainIntensity).
		Enum("in10", c.RainIntensityIn10min, p.RainIntensityIn10min).
		Enum("in30", c.RainIntensityIn30min, p.RainIntensityIn30min)
	b.Child("rain", rain)
}

func pitstop(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Graphics, prev.Graphics
	b.Int("tyreSet", c.MfdTyreSet, p.MfdTyreSet).
		Float("fuel", c.MfdFuelToAdd, p.MfdFuelToAdd)

	pressure := b.Sub().
		Float("fl", c.MfdTyrePressureLF, p.MfdTyrePressureLF).
		Float("fr", c.MfdTyrePressureRF, p.MfdTyrePressureRF).
		Float("rl", c.MfdTyrePressureLR, p.MfdTyrePressureLR).
		Float("rr", c.MfdTyrePressureRR, p.MfdTyrePressureRR)
	b.Child("pressure", pressure)

	b.Bool("mandatoryDone", c.MandatoryPitDone, p.MandatoryPitDone).
		Int("remaining", c.MissingMandatoryPits, p.MissingMandatoryPits)
}

func penalty(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Graphics, prev.Graphics
	b.Enum("type", c.Penalty, p.Penalty).
		Float("duration", c.PenaltyTime, p.PenaltyTime)
}

func drivingTime(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Graphics, prev.Graphics
	b.Int("totalRemaining", c.DriverStintTotalLeft, p.DriverStintTotalLeft).
		Int("stintRemaining", c.DriverStintTimeLeft, p.DriverStintTimeLeft)
}

func fuel(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Graphics, prev.Graphics
	b.Float("used", c.UsedFuel, p.UsedFuel).
		Float("rate", c.FuelXLap, p.FuelXLap).
		Float("remaining", cur.Physics.Fuel, prev.Physics.Fuel).
		Float("estimatedLaps", c.FuelEstimatedLaps, p.FuelEstimatedLaps)
}

func flag(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Graphics, prev.Graphics
	b.Enum("current", c.Flag, p.Flag).
		Bool("green", c.GlobalGreen, p.GlobalGreen).
		Bool("chequered", c.GlobalChequered, p.GlobalChequered).
		Bool("red", c.GlobalRed, p.GlobalRed).
		Bool("white", c.GlobalWhite, p.GlobalWhite)

	yellow := b.Sub().
		Bool("global", c.GlobalYellow, p.GlobalYellow).
		Bool("sector1", c.GlobalYellow1, p.GlobalYellow1).
		Bool("sector2", c.GlobalYellow2, p.GlobalYellow2).
		Bool("sector3", c.GlobalYellow3, p.GlobalYellow3)
	b.Child("yellow", yellow)
}

// Root adds the flat fields of the event root.
func Root(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Graphics, prev.Graphics
	b.String("trackStatus", c.TrackStatusName(), p.TrackStatusName()).
		String("tyreCompound", c.TyreCompoundName(), p.TyreCompoundName()).
		Int("position", c.Position, p.Position).
		Float("distanceTraveled", c.DistanceTravel, p.DistanceTravel).
		Int("laps", c.CompletedLaps, p.CompletedLaps).
		Bool("isBoxed", c.IsBoxed, p.IsBoxed).
		Bool("isInPitLane", c.IsInPitLane, p.IsInPitLane).
		Enum("gameStatus", c.Status, p.Status).
		Bool("rainTyres", c.RainTyres, p.RainTyres)

	cp, pp := cur.Physics, prev.Physics
	b.Float("speed", cp.SpeedKmh, pp.SpeedKmh).
		Int("gear", cp.Gear, pp.Gear).
		Float("tcIntervention", cp.TC, pp.TC).
		Float("absIntervention", cp.ABS, pp.ABS)
}
