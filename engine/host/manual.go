package host

import "sync"

// Manual is a TickSource driven by explicit Tick calls instead of a wall
// clock. It exists for headless use and deterministic tests: every Tick
// delivers exactly one frame to every registered callback.
type Manual struct {
	mu sync.Mutex

	targetFrameRate float32
	speedRatio      float32
	callbacks       []func(deltaTime float32)
}

var _ TickSource = &Manual{}

// NewManual creates a Manual tick source reporting the given target frame
// rate. The animation speed ratio starts at 1.
//
// Parameters:
//   - targetFrameRate: frames per second the source claims to run at (defaults to 60 if <= 0)
//
// Returns:
//   - *Manual: the newly created tick source
func NewManual(targetFrameRate float32) *Manual {
	if targetFrameRate <= 0 {
		targetFrameRate = 60
	}
	return &Manual{
		targetFrameRate: targetFrameRate,
		speedRatio:      1,
	}
}

func (m *Manual) AddTickCallback(callback func(deltaTime float32)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

func (m *Manual) TargetFrameRate() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.targetFrameRate
}

func (m *Manual) AnimationSpeedRatio() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.speedRatio
}

// SetAnimationSpeedRatio overrides the reported speed ratio, simulating a
// source that runs slower (ratio > 1) or faster (ratio < 1) than its target.
//
// Parameters:
//   - ratio: measured-to-ideal frame duration ratio
func (m *Manual) SetAnimationSpeedRatio(ratio float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.speedRatio = ratio
}

// Tick delivers one frame to every registered callback. The reported delta
// time is the ideal frame duration scaled by the current speed ratio.
func (m *Manual) Tick() {
	m.mu.Lock()
	dt := m.speedRatio / m.targetFrameRate
	callbacks := m.callbacks
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(dt)
	}
}

// TickN delivers n frames back to back.
//
// Parameters:
//   - n: number of frames to deliver
func (m *Manual) TickN(n int) {
	for i := 0; i < n; i++ {
		m.Tick()
	}
}
