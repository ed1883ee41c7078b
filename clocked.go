package vsrtl

// Clocked is the capability a component plugs in to become a clocked
// element: its output for the current cycle is fixed by a save phase
// rather than recomputed from its (possibly not-yet-ready) inputs. The
// primitive library is open — anyone can implement this
// interface — so the capability is expressed as an interface rather than
// a closed sum type, the same way the propagation algorithm only ever
// asks "is this component clocked", never "is this component exactly a
// Register".
type Clocked interface {
	// Save latches whatever the component needs to remember for this
	// cycle (e.g. a register's input value) and pushes enough state onto
	// an internal reverse stack to undo it later.
	Save()
	// Reverse pops the most recently saved state and restores it,
	// undoing exactly one Save. It is a no-op if the stack is empty.
	Reverse()
	// ResetState clears all saved state and the reverse stack, as if the
	// component had just been constructed.
	ResetState()
	// ReverseDepth reports how many Reverse calls are currently
	// available.
	ReverseDepth() int
}

// ClockedComponent is the embeddable base for clocked primitives
// (rtllib.Register, rtllib.Memory, ...): just a *Component, named
// distinctly so embedders read naturally ("a Register is a
// ClockedComponent"). A constructor builds its *Component, builds the
// primitive embedding it, then calls Component.SetClocked(primitive) to
// register the primitive's save/reverse implementation, e.g.:
//
//	c := vsrtl.NewComponent(name, "register")
//	r := &Register{ClockedComponent: vsrtl.ClockedComponent{Component: c}}
//	c.SetClocked(r)
type ClockedComponent struct {
	*Component
}
