package acc

// Static holds the session invariant properties (acpmf_static).
// The game only rewrites this page when the player joins a new
// server or weekend. Static is comparable, == compares every field.
type Static struct {
	SmVersion                [15]uint16
	AcVersion                [15]uint16
	NumberOfSessions         int32
	NumCars                  int32
	CarModel                 [33]uint16
	Track                    [33]uint16
	PlayerName               [33]uint16
	PlayerSurname            [33]uint16
	PlayerNick               [33]uint16
	_                        [2]byte
	SectorCount              int32
	MaxTorque                float32
	MaxPower                 float32
	MaxRpm                   int32
	MaxFuel                  float32
	SuspensionMaxTravel      [4]float32
	TyreRadius               [4]float32
	MaxTurboBoost            float32
	Deprecated1              float32
	Deprecated2              float32
	PenaltiesEnabled         int32
	AidFuelRate              float32
	AidTireRate              float32
	AidMechanicalDamage      float32
	AllowTyreBlankets        float32
	AidStability             float32
	AidAutoClutch            int32
	AidAutoBlip              int32
	HasDRS                   int32
	HasERS                   int32
	HasKERS                  int32
	KersMaxJ                 float32
	EngineBrakeSettingsCount int32
	ErsPowerControllerCount  int32
	TrackSplineLength        float32
	TrackConfiguration       [33]uint16
	_                        [2]byte
	ErsMaxJ                  float32
	IsTimedRace              int32
	HasExtraLap              int32
	CarSkin                  [33]uint16
	_                        [2]byte
	ReversedGridPositions    int32
	PitWindowStart           int32
	PitWindowEnd             int32
	IsOnline                 int32
	DryTyresName             [33]uint16
	WetTyresName             [33]uint16
}

func (s *Static) SharedMemVersion() string { return DecodeString(s.SmVersion[:]) }
func (s *Static) GameVersion() string      { return DecodeString(s.AcVersion[:]) }
func (s *Static) CarModelName() string     { return DecodeString(s.CarModel[:]) }
func (s *Static) TrackName() string        { return DecodeString(s.Track[:]) }
func (s *Static) FirstName() string        { return DecodeString(s.PlayerName[:]) }
func (s *Static) Surname() string          { return DecodeString(s.PlayerSurname[:]) }
func (s *Static) Nickname() string         { return DecodeString(s.PlayerNick[:]) }
func (s *Static) DryTyre() string          { return DecodeString(s.DryTyresName[:]) }
func (s *Static) WetTyre() string          { return DecodeString(s.WetTyresName[:]) }
