package acc

// Frame is one sample of all three pages.
type Frame struct {
	Graphics *Graphics
	Physics  *Physics
	Static   *Static
}

// InSession reports whether the game is live and the player drives the car.
func (f *Frame) InSession() bool {
	return f.Graphics.Status == StatusLive && f.Physics.InCar()
}

// SessionChanged reports whether the session index, track or car model
// differs between prev and f.
func (f *Frame) SessionChanged(prev *Frame) bool {
	return prev.Graphics.SessionIndex != f.Graphics.SessionIndex ||
		prev.Static.Track != f.Static.Track ||
		prev.Static.CarModel != f.Static.CarModel
}
