package trajectory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/syntheticmagus/showroom-camera/common"
	"github.com/syntheticmagus/showroom-camera/engine/host"
)

// Keyframe is one authored sample of a clip: a time in seconds and the pose
// at that time.
type Keyframe struct {
	Time        float32
	Position    mgl32.Vec3
	Orientation mgl32.Quat
}

// Clip is an immutable keyframed pose animation. Positions are interpolated
// linearly between keyframes; orientations are slerped.
type Clip struct {
	keyframes []Keyframe
	duration  float32
}

// NewClip creates a clip from keyframes. Keyframes are sorted by time; at
// least one keyframe is required and times must be non-negative.
//
// Parameters:
//   - keyframes: the authored samples
//
// Returns:
//   - *Clip: the clip
//   - error: if no keyframes are given or a time is negative
func NewClip(keyframes []Keyframe) (*Clip, error) {
	if len(keyframes) == 0 {
		return nil, fmt.Errorf("clip requires at least one keyframe")
	}
	sorted := make([]Keyframe, len(keyframes))
	copy(sorted, keyframes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	if sorted[0].Time < 0 {
		return nil, fmt.Errorf("keyframe time %v is negative", sorted[0].Time)
	}
	return &Clip{
		keyframes: sorted,
		duration:  sorted[len(sorted)-1].Time,
	}, nil
}

// Duration returns the time of the last keyframe in seconds.
//
// Returns:
//   - float32: clip length in seconds
func (c *Clip) Duration() float32 {
	return c.duration
}

// Sample evaluates the clip at time t. Times before the first keyframe clamp
// to it; times after the last clamp to the last.
//
// Parameters:
//   - t: time in seconds
//
// Returns:
//   - mgl32.Vec3: interpolated position
//   - mgl32.Quat: slerped orientation
func (c *Clip) Sample(t float32) (mgl32.Vec3, mgl32.Quat) {
	first := c.keyframes[0]
	last := c.keyframes[len(c.keyframes)-1]
	if t <= first.Time {
		return first.Position, first.Orientation
	}
	if t >= last.Time {
		return last.Position, last.Orientation
	}

	// Find the surrounding keyframe pair.
	i := sort.Search(len(c.keyframes), func(i int) bool { return c.keyframes[i].Time > t }) - 1
	prev := c.keyframes[i]
	next := c.keyframes[i+1]

	span := next.Time - prev.Time
	if span <= 0 {
		return next.Position, next.Orientation
	}
	s := (t - prev.Time) / span

	position := common.LerpVec3(prev.Position, next.Position, s)
	orientation := mgl32.QuatSlerp(prev.Orientation, next.Orientation, s)
	return position, orientation
}

// Player advances a clip over time and writes each sampled pose into a node.
// It subscribes to a tick source once at Bind and plays for as long as
// playing is set, looping when the clip end is reached.
type Player struct {
	mu sync.Mutex

	node    Node
	clip    *Clip
	time    float32
	playing bool
	loop    bool
}

// NewPlayer creates a player that drives node with clip.
//
// Parameters:
//   - node: the node to pose each tick
//   - clip: the clip to sample
//   - loop: whether playback wraps at the clip end
//
// Returns:
//   - *Player: the newly created player
func NewPlayer(node Node, clip *Clip, loop bool) *Player {
	return &Player{
		node: node,
		clip: clip,
		loop: loop,
	}
}

// Bind subscribes the player to a tick source. Call once; the subscription is
// never removed, but a paused player ignores ticks.
//
// Parameters:
//   - source: per-frame tick provider
func (p *Player) Bind(source host.TickSource) {
	source.AddTickCallback(p.advance)
}

// Play starts or resumes playback.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = true
}

// Pause stops playback, holding the current time.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
}

// Seek jumps playback to t seconds and immediately poses the node there.
//
// Parameters:
//   - t: time in seconds
func (p *Player) Seek(t float32) {
	p.mu.Lock()
	p.time = t
	p.mu.Unlock()
	p.apply(t)
}

func (p *Player) advance(deltaTime float32) {
	p.mu.Lock()
	if !p.playing {
		p.mu.Unlock()
		return
	}
	p.time += deltaTime
	if p.loop && p.clip.duration > 0 {
		for p.time > p.clip.duration {
			p.time -= p.clip.duration
		}
	}
	t := p.time
	p.mu.Unlock()

	p.apply(t)
}

func (p *Player) apply(t float32) {
	position, orientation := p.clip.Sample(t)
	p.node.SetLocalPosition(position)
	p.node.SetLocalOrientation(orientation)
}
