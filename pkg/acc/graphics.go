package acc

// Graphics is the HUD page (acpmf_graphics). Updated once per frame.
// Field order and padding follow the shared memory layout.
type Graphics struct {
	PacketID        int32
	Status          Status
	Session         SessionType
	StrCurrentTime  [15]uint16
	StrLastTime     [15]uint16
	StrBestTime     [15]uint16
	StrSplit        [15]uint16
	CompletedLaps   int32
	Position        int32
	CurrentTime     int32 // ms
	LastTime        int32 // ms
	BestTime        int32 // ms
	SessionTimeLeft float32
	DistanceTravel  float32
	IsBoxed         int32
	// CurrentSectorIndex is zero based
	CurrentSectorIndex int32
	// LastSectorTime is the lap time (ms) at the last sector split
	LastSectorTime        int32
	NumberOfLaps          int32
	TyreCompound          [33]uint16
	_                     [2]byte
	ReplayTimeMultiplier  float32
	NormalizedCarPosition float32
	ActiveCars            int32
	CarCoordinates        [60][3]float32
	CarID                 [60]int32
	PlayerCarID           int32
	PenaltyTime           float32
	Flag                  FlagType
	Penalty               PenaltyType
	IdealLineOn           int32
	IsInPitLane           int32
	SurfaceGrip           float32
	MandatoryPitDone      int32
	WindSpeed             float32
	WindDirection         float32
	IsSetupMenuVisible    int32
	MainDisplayIndex      int32
	SecondaryDisplayIndex int32
	TC                    int32
	TCCut                 int32
	EngineMap             int32
	ABS                   int32
	FuelXLap              float32
	RainLights            int32
	FlashingLights        int32
	LightsStage           int32
	ExhaustTemperature    float32
	WiperLevel            int32
	DriverStintTotalLeft  int32 // ms
	DriverStintTimeLeft   int32 // ms
	RainTyres             int32
	SessionIndex          int32
	UsedFuel              float32
	StrDeltaLapTime       [15]uint16
	_                     [2]byte
	DeltaLapTime          int32
	StrEstimatedLapTime   [15]uint16
	_                     [2]byte
	EstimatedLapTime      int32
	IsDeltaPositive       int32
	Split                 int32
	IsValidLap            int32
	FuelEstimatedLaps     float32
	TrackStatus           [33]uint16
	_                     [2]byte
	MissingMandatoryPits  int32
	Clock                 float32
	DirectionLightsLeft   int32
	DirectionLightsRight  int32
	GlobalYellow          int32
	GlobalYellow1         int32
	GlobalYellow2         int32
	GlobalYellow3         int32
	GlobalWhite           int32
	GlobalGreen           int32
	GlobalChequered       int32
	GlobalRed             int32
	MfdTyreSet            int32
	MfdFuelToAdd          float32
	MfdTyrePressureLF     float32
	MfdTyrePressureRF     float32
	MfdTyrePressureLR     float32
	MfdTyrePressureRR     float32
	TrackGripStatus       TrackGrip
	RainIntensity         RainIntensity
	RainIntensityIn10min  RainIntensity
	RainIntensityIn30min  RainIntensity
	CurrentTyreSet        int32
	StrategyTyreSet       int32
}

func (g *Graphics) TyreCompoundName() string {
	return DecodeString(g.TyreCompound[:])
}

func (g *Graphics) TrackStatusName() string {
	return DecodeString(g.TrackStatus[:])
}
