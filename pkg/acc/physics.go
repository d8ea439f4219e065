package acc

// wheel and damage indices used by the array fields
const (
	FL = iota
	FR
	RL
	RR
)

const (
	DamageFront = iota
	DamageRear
	DamageLeft
	DamageRight
	DamageCentre
)

// Physics is the player car physics page (acpmf_physics).
type Physics struct {
	PacketID            int32
	Gas                 float32
	Brake               float32
	Fuel                float32
	Gear                int32 // 0: reverse, 1: neutral, 2..n: 1st..
	RPM                 int32
	SteerAngle          float32
	SpeedKmh            float32
	Velocity            [3]float32
	AccG                [3]float32
	WheelSlip           [4]float32
	WheelLoad           [4]float32
	WheelsPressure      [4]float32
	WheelAngularSpeed   [4]float32
	TyreWear            [4]float32
	TyreDirtyLevel      [4]float32
	TyreCoreTemperature [4]float32
	CamberRAD           [4]float32
	SuspensionTravel    [4]float32
	DRS                 float32
	TC                  float32
	Heading             float32
	Pitch               float32
	Roll                float32
	CgHeight            float32
	CarDamage           [5]float32
	NumberOfTyresOut    int32
	PitLimiterOn        int32
	ABS                 float32
	KersCharge          float32
	KersInput           float32
	AutoShifterOn       int32
	RideHeight          [2]float32
	TurboBoost          float32
	Ballast             float32
	AirDensity          float32
	AirTemp             float32
	RoadTemp            float32
	LocalAngularVel     [3]float32
	FinalFF             float32
	PerformanceMeter    float32
	EngineBrake         int32
	ErsRecoveryLevel    int32
	ErsPowerLevel       int32
	ErsHeatCharging     int32
	ErsIsCharging       int32
	KersCurrentKJ       float32
	DrsAvailable        int32
	DrsEnabled          int32
	BrakeTemp           [4]float32
	Clutch              float32
	TyreTempI           [4]float32
	TyreTempM           [4]float32
	TyreTempO           [4]float32
	IsAIControlled      int32
	TyreContactPoint    [4][3]float32
	TyreContactNormal   [4][3]float32
	TyreContactHeading  [4][3]float32
	BrakeBias           float32
	LocalVelocity       [3]float32
	P2PActivations      int32
	P2PStatus           int32
	CurrentMaxRpm       int32
	Mz                  [4]float32
	Fx                  [4]float32
	Fy                  [4]float32
	SlipRatio           [4]float32
	SlipAngle           [4]float32
	TCInAction          int32
	ABSInAction         int32
	SuspensionDamage    [4]float32
	TyreTemp            [4]float32
	WaterTemp           float32
	BrakePressure       [4]float32
	FrontBrakeCompound  int32
	RearBrakeCompound   int32
	PadLife             [4]float32
	DiscLife            [4]float32
	IgnitionOn          int32
	StarterEngineOn     int32
	IsEngineRunning     int32
	KerbVibration       float32
	SlipVibrations      float32
	GVibrations         float32
	ABSVibrations       float32
}

// InCar reports whether the player is actively driving.
// Outside the car the game zeroes tyre pressures and orientation angles.
func (p *Physics) InCar() bool {
	for _, v := range p.WheelsPressure {
		if v == 0 {
			return false
		}
	}
	return p.Heading != 0 && p.Pitch != 0 && p.Roll != 0
}
