package basedata

import (
	"time"

	"github.com/mpapenbr/acc-telemetry-bridge/pkg/acc"
)

func TestTime() time.Time {
	t, _ := time.Parse(time.RFC3339, "2024-04-28T11:10:12Z")
	return t
}

// SampleStatic returns the properties of a three sector track.
func SampleStatic() *acc.Static {
	s := &acc.Static{
		NumberOfSessions:    3,
		NumCars:             24,
		SectorCount:         3,
		MaxRpm:              8500,
		MaxFuel:             120,
		PenaltiesEnabled:    1,
		AidFuelRate:         1,
		AidTireRate:         1,
		AidMechanicalDamage: 0.5,
		AllowTyreBlankets:   1,
		AidAutoClutch:       1,
		PitWindowStart:      1200000,
		PitWindowEnd:        2400000,
		IsOnline:            1,
	}
	acc.EncodeString(s.SmVersion[:], "1.9")
	acc.EncodeString(s.AcVersion[:], "1.10.2")
	acc.EncodeString(s.CarModel[:], "porsche_991ii_gt3_r")
	acc.EncodeString(s.Track[:], "monza")
	acc.EncodeString(s.PlayerName[:], "Max")
	acc.EncodeString(s.PlayerSurname[:], "Mustermann")
	acc.EncodeString(s.PlayerNick[:], "MMU")
	acc.EncodeString(s.DryTyresName[:], "DHE")
	acc.EncodeString(s.WetTyresName[:], "WH")
	return s
}

// SampleGraphics returns a live race at position 3 before the first lap
// was completed. All lap times except the current one are not yet valid.
func SampleGraphics() *acc.Graphics {
	g := &acc.Graphics{
		PacketID:             100,
		Status:               acc.StatusLive,
		Session:              acc.SessionRace,
		Position:             3,
		CurrentTime:          45123,
		LastTime:             2147483647,
		BestTime:             2147483647,
		SessionTimeLeft:      3540000.5,
		DistanceTravel:       1203.25,
		CurrentSectorIndex:   0,
		LastSectorTime:       2147483647,
		NumberOfLaps:         0,
		ActiveCars:           24,
		Flag:                 acc.FlagGreen,
		Penalty:              0,
		WindSpeed:            2.5,
		WindDirection:        180.25,
		TC:                   3,
		TCCut:                2,
		EngineMap:            1,
		ABS:                  4,
		FuelXLap:             2.9,
		DriverStintTotalLeft: -1,
		DriverStintTimeLeft:  -1,
		SessionIndex:         2,
		UsedFuel:             1.5,
		DeltaLapTime:         -120,
		EstimatedLapTime:     108500,
		IsDeltaPositive:      0,
		Split:                2147483647,
		IsValidLap:           1,
		FuelEstimatedLaps:    20.5,
		Clock:                46800,
		GlobalGreen:          1,
		MfdTyreSet:           2,
		MfdFuelToAdd:         40,
		MfdTyrePressureLF:    27.3,
		MfdTyrePressureRF:    27.3,
		MfdTyrePressureLR:    27.1,
		MfdTyrePressureRR:    27.1,
		TrackGripStatus:      acc.GripOptimum,
		RainIntensity:        acc.RainNone,
		RainIntensityIn10min: acc.RainNone,
		RainIntensityIn30min: acc.RainDrizzle,
		CurrentTyreSet:       1,
	}
	acc.EncodeString(g.TyreCompound[:], "dry_compound")
	acc.EncodeString(g.TrackStatus[:], "OPTIMUM")
	return g
}

// SampleGraphicsNextLap returns SampleGraphics after the first lap was
// completed. Only the lap counter and the current lap time changed.
func SampleGraphicsNextLap() *acc.Graphics {
	g := SampleGraphics()
	g.CompletedLaps = 1
	g.CurrentTime = 1012
	return g
}

func SamplePhysics() *acc.Physics {
	return &acc.Physics{
		PacketID:            200,
		Gas:                 0.85,
		Brake:               0,
		Fuel:                60.5,
		Gear:                5,
		RPM:                 7200,
		SteerAngle:          -0.0125,
		SpeedKmh:            212.456,
		WheelsPressure:      [4]float32{27.5, 27.6, 27.4, 27.3},
		TyreCoreTemperature: [4]float32{85.5, 86, 84.25, 84.5},
		SuspensionTravel:    [4]float32{0.021, 0.022, 0.031, 0.032},
		Heading:             1.2,
		Pitch:               0.01,
		Roll:                -0.005,
		CarDamage:           [5]float32{},
		AirTemp:             22.5,
		RoadTemp:            31.25,
		BrakeTemp:           [4]float32{450, 452.5, 380, 381},
		Clutch:              0,
		BrakeBias:           0.68,
		TCInAction:          0,
		ABSInAction:         0,
		TurboBoost:          0.9,
		WaterTemp:           88,
		BrakePressure:       [4]float32{},
		FrontBrakeCompound:  1,
		RearBrakeCompound:   1,
		PadLife:             [4]float32{29, 29, 29, 29},
		DiscLife:            [4]float32{32, 32, 32, 32},
		IgnitionOn:          1,
		StarterEngineOn:     0,
		IsEngineRunning:     1,
	}
}

func SampleFrame() *acc.Frame {
	return &acc.Frame{
		Graphics: SampleGraphics(),
		Physics:  SamplePhysics(),
		Static:   SampleStatic(),
	}
}

// SamplePages returns the encoded pages of SampleFrame
func SamplePages() (graphics, physics, static []byte) {
	f := SampleFrame()
	graphics, _ = acc.Encode(f.Graphics)
	physics, _ = acc.Encode(f.Physics)
	static, _ = acc.Encode(f.Static)
	return graphics, physics, static
}
