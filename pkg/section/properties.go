package section

import (
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/acc"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/delta"
)

// Properties adds the complete session properties. They are only part of
// complete events, so there is nothing to compare with.
func Properties(b *delta.Builder, s *acc.Static) {
	b.Always("sessions", s.NumberOfSessions).
		Always("cars", s.NumCars).
		Always("sharedMemVer", s.SharedMemVersion()).
		Always("accVer", s.GameVersion()).
		Always("isMultiplayer", s.IsOnline != 0).
		Always("dryTyre", s.DryTyre()).
		Always("wetTyre", s.WetTyre())

	b.Child("player", b.Sub().
		Always("firstname", s.FirstName()).
		Always("surname", s.Surname()).
		Always("nickname", s.Nickname()))

	car := b.Sub().
		Always("model", s.CarModelName()).
		Always("maxRPM", s.MaxRpm)
	car.Float("tankCap", s.MaxFuel, 0)
	b.Child("car", car)

	b.Child("track", b.Sub().
		Always("name", s.TrackName()).
		Always("sectors", s.SectorCount))

	b.Child("pitWindow", b.Sub().
		Always("start", s.PitWindowStart).
		Always("end", s.PitWindowEnd))

	weekend := b.Sub().Always("penalties", s.PenaltiesEnabled != 0)
	weekend.Float("fuelRate", s.AidFuelRate, 0).
		Float("tyreRate", s.AidTireRate, 0).
		Float("damageRate", s.AidMechanicalDamage, 0).
		Bool("tyreBlankets", int32(s.AllowTyreBlankets), 0).
		Float("stabilityAid", s.AidStability, 0).
		Bool("autoClutch", s.AidAutoClutch, 0).
		Bool("autoBlip", s.AidAutoBlip, 0)
	b.Child("weekend", weekend)
}
