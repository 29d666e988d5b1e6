package core

import "time"

// InputState tracks which keys are currently held and the last pointer
// click. Event callbacks write it, the frame callback reads it.
//
// Keys are identified by name ("up", "w", "left", ...). Hosts that deliver
// real key-up events call KeyUp; terminal hosts only see repeats, so they
// call ReleaseStale every frame to expire keys that stopped repeating.
type InputState struct {
	held     map[string]time.Time
	click    Point
	hasClick bool
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{held: make(map[string]time.Time)}
}

// KeyDown marks a key as held, refreshing its timestamp on repeats.
func (in *InputState) KeyDown(key string, at time.Time) {
	if in.held == nil {
		in.held = make(map[string]time.Time)
	}
	in.held[key] = at
}

// KeyUp releases a key.
func (in *InputState) KeyUp(key string) {
	delete(in.held, key)
}

// Held reports whether the key is currently down.
func (in *InputState) Held(key string) bool {
	_, ok := in.held[key]
	return ok
}

// AnyHeld reports whether any of the given keys is down.
func (in *InputState) AnyHeld(keys ...string) bool {
	for _, k := range keys {
		if in.Held(k) {
			return true
		}
	}
	return false
}

// ReleaseStale releases every key whose last press is older than window.
func (in *InputState) ReleaseStale(now time.Time, window time.Duration) {
	for k, at := range in.held {
		if now.Sub(at) > window {
			delete(in.held, k)
		}
	}
}

// ReleaseAll clears every held key.
func (in *InputState) ReleaseAll() {
	clear(in.held)
}

// Click records a pointer click. A later click in the same frame replaces
// an earlier one.
func (in *InputState) Click(x, y int) {
	in.click = Point{X: x, Y: y}
	in.hasClick = true
}

// TakeClick returns the pending click, if any, and consumes it.
func (in *InputState) TakeClick() (Point, bool) {
	if !in.hasClick {
		return Point{}, false
	}
	in.hasClick = false
	return in.click, true
}
