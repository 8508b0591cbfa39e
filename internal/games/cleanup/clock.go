package cleanup

// Clock is the countdown source of a simulation. The simulation arms it
// when a round starts and disarms it when the round ends or restarts.
// A disarmed clock must not deliver ticks, including ticks scheduled
// before it was disarmed.
type Clock interface {
	Arm()
	Disarm()
}

// FrameClock derives one countdown tick per second from platform frames.
// The platform calls Advance once per frame; arming restarts the second
// so a partial second from a previous round never carries over.
type FrameClock struct {
	framesPerTick int
	frames        int
	armed         bool
	arms          int
}

// NewFrameClock creates a disarmed clock for the given frame rate.
func NewFrameClock(framesPerSecond int) *FrameClock {
	c := &FrameClock{}
	c.SetRate(framesPerSecond)
	return c
}

// SetRate changes the frame rate. Non-positive rates fall back to 60.
func (c *FrameClock) SetRate(framesPerSecond int) {
	if framesPerSecond <= 0 {
		framesPerSecond = 60
	}
	c.framesPerTick = framesPerSecond
}

// Arm starts counting a fresh second.
func (c *FrameClock) Arm() {
	c.armed = true
	c.frames = 0
	c.arms++
}

// Disarm stops the clock and drops any partial second.
func (c *FrameClock) Disarm() {
	c.armed = false
	c.frames = 0
}

// Armed reports whether the clock is delivering ticks.
func (c *FrameClock) Armed() bool {
	return c.armed
}

// Arms returns how many times the clock has been armed.
func (c *FrameClock) Arms() int {
	return c.arms
}

// Advance records one frame and reports whether a full second elapsed.
func (c *FrameClock) Advance() bool {
	if !c.armed {
		return false
	}
	c.frames++
	if c.frames < c.framesPerTick {
		return false
	}
	c.frames = 0
	return true
}
