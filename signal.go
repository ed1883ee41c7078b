package vsrtl

// Signal is a synchronous subscriber list, the Go stand-in for the
// observer pattern the visual layer (§6) needs from "changed" events.
// There is no event loop: Emit calls every subscriber inline, in
// subscription order, from the thread driving the simulation.
type Signal struct {
	subs []func()
}

// Connect registers fn to be called on every future Emit.
func (s *Signal) Connect(fn func()) {
	s.subs = append(s.subs, fn)
}

// Emit synchronously invokes every subscriber.
func (s *Signal) Emit() {
	for _, fn := range s.subs {
		fn()
	}
}
