package host

import (
	"sync"
	"time"

	"github.com/syntheticmagus/showroom-camera/engine/profiler"
)

// TickSource is the boundary to whatever owns the per-frame heartbeat. The
// showroom camera subscribes once at construction and never unsubscribes.
// Implementations must invoke all registered callbacks from a single
// goroutine, one invocation per frame.
type TickSource interface {
	// AddTickCallback registers a function called once per frame.
	// Callbacks are never removed.
	//
	// Parameters:
	//   - callback: function to call each frame, receiving the delta time in seconds
	AddTickCallback(callback func(deltaTime float32))

	// TargetFrameRate returns the frame rate the source aims to deliver,
	// in frames per second.
	//
	// Returns:
	//   - float32: target frames per second
	TargetFrameRate() float32

	// AnimationSpeedRatio returns the ratio of the last measured frame
	// duration to the ideal frame duration. 1 means the source is running
	// exactly at its target rate; 2 means frames take twice as long.
	//
	// Returns:
	//   - float32: measured-to-ideal frame duration ratio
	AnimationSpeedRatio() float32
}

// hostImpl is the single implementation of Host: a ticker-driven frame loop.
type hostImpl struct {
	mu sync.Mutex

	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	tickRate   time.Duration
	callbacks  []func(deltaTime float32)
	speedRatio float32

	profiler *profiler.Profiler
}

// Host drives per-frame ticks from a wall-clock ticker. It is the in-process
// stand-in for a render host's frame event: Run blocks and fires every
// registered tick callback at the configured rate until Quit is called.
type Host interface {
	TickSource

	// SetTickRate sets the tick rate in frames per second.
	// If the host is running, the change takes effect immediately.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// Run starts the frame loop (blocks until Quit is called).
	Run()

	// Quit signals the frame loop to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Host = &hostImpl{}

// NewHost creates a new Host with the provided options.
//
// Parameters:
//   - options: functional options for host configuration
//
// Returns:
//   - Host: the newly created host
func NewHost(options ...HostOption) Host {
	h := &hostImpl{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		tickRate:        time.Second / 60,
		speedRatio:      1,
	}

	for _, option := range options {
		option(h)
	}

	return h
}

func (h *hostImpl) AddTickCallback(callback func(deltaTime float32)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.callbacks = append(h.callbacks, callback)
}

func (h *hostImpl) TargetFrameRate() float32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return float32(float64(time.Second) / float64(h.tickRate))
}

func (h *hostImpl) AnimationSpeedRatio() float32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.speedRatio
}

// SetTickRate sets the tick rate in frames per second.
// If the host is running, the change takes effect immediately.
func (h *hostImpl) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	h.mu.Lock()
	running := h.running
	if !running {
		h.tickRate = newRate
	}
	h.mu.Unlock()

	if running {
		// Non-blocking send - if the channel is full, replace the pending value
		select {
		case h.tickRateChannel <- newRate:
		default:
			select {
			case <-h.tickRateChannel:
			default:
			}
			h.tickRateChannel <- newRate
		}
	}
}

// Run executes the fixed-rate tick loop until Quit is called. Fires every
// registered callback each tick and listens for dynamic rate changes via
// tickRateChannel.
func (h *hostImpl) Run() {
	h.mu.Lock()
	h.running = true
	rate := h.tickRate
	h.mu.Unlock()

	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-h.quitChannel:
			h.mu.Lock()
			h.running = false
			h.mu.Unlock()
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			h.mu.Lock()
			ideal := float32(h.tickRate.Seconds())
			if ideal > 0 {
				h.speedRatio = dt / ideal
			}
			callbacks := h.callbacks
			prof := h.profiler
			h.mu.Unlock()

			for _, callback := range callbacks {
				callback(dt)
			}
			if prof != nil {
				prof.Tick()
			}
		case newRate := <-h.tickRateChannel:
			ticker.Reset(newRate)
			h.mu.Lock()
			h.tickRate = newRate
			h.mu.Unlock()
		}
	}
}

// Quit signals the frame loop to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (h *hostImpl) Quit() {
	h.quitOnce.Do(func() {
		close(h.quitChannel)
	})
}
