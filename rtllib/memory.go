package rtllib

import (
	"github.com/db47h/vsrtl"
	"github.com/db47h/vsrtl/addrspace"
)

// eviction records what a single write overwrote, so Reverse can put it
// back. A no-op cycle (write disabled) still pushes a sentinel entry, so
// Reverse always pops exactly one entry per elapsed Clock tick.
type eviction struct {
	wrote bool
	addr  uint64
	data  uint64
	size  int
}

// Memory is a clocked, byte-addressed store backed by an
// addrspace.AddressSpace. addrWidth/dataWidth follow the port widths;
// byteIndexed controls whether Addr already names a byte offset or a
// dataWidth-sized word (word addresses are shifted left by
// log2(dataWidth/8) before touching the AddressSpace, matching how a
// narrower-than-byte-addressable ISA indexes memory, per the original
// BaseMemory::read/write).
type Memory struct {
	vsrtl.ClockedComponent

	Addr    *vsrtl.Port
	DataIn  *vsrtl.Port
	WrEn    *vsrtl.Port
	WrWidth *vsrtl.Port // number of bytes a write affects; width ceil(log2(dataWidth/8+1))
	DataOut *vsrtl.Port
	RdEn    *vsrtl.Port // nil unless built with AddSyncRead

	space       addrspace.AddressSpace
	dataWidth   uint
	byteIndexed bool

	history []eviction
	cap     int

	heldOut uint64 // last value DataOut published; held across cycles with RdEn low
}

// wordShift returns the left shift applied to a word address when the
// memory is not byte-indexed.
func (m *Memory) wordShift() uint {
	if m.byteIndexed || m.dataWidth < 16 {
		return 0
	}
	return vsrtl.CeilLog2(m.dataWidth / 8)
}

func (m *Memory) maxSizeBytes() int { return int(m.dataWidth / 8) }

func (m *Memory) effectiveAddr() uint64 {
	return m.Addr.Value() << m.wordShift()
}

// writeSize reads WrWidth, clamped to the memory's own data width, as the
// number of bytes this cycle's write affects, starting at addr.
func (m *Memory) writeSize() int {
	n := int(m.WrWidth.Value())
	if max := m.maxSizeBytes(); n > max {
		n = max
	}
	if n < 0 {
		n = 0
	}
	return n
}

// NewWriteMemory builds a write-capable memory: a clocked component whose
// Save phase performs the actual write, so DataOut (when present, see
// AddSyncRead) only ever reflects committed state.
func NewWriteMemory(parent *vsrtl.Component, name string, addrWidth, dataWidth uint, space addrspace.AddressSpace, byteIndexed bool) *Memory {
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "memory"))

	m := &Memory{
		ClockedComponent: vsrtl.ClockedComponent{Component: c},
		space:            space,
		dataWidth:        dataWidth,
		byteIndexed:      byteIndexed,
		cap:              DefaultReverseDepth,
	}
	m.Addr = c.CreateInputPort("addr", addrWidth)
	m.DataIn = c.CreateInputPort("data_in", dataWidth)
	m.WrEn = c.CreateInputPort("wr_en", 1)
	m.WrWidth = c.CreateInputPort("wr_width", vsrtl.CeilLog2(dataWidth/8+1))
	c.SetClocked(m)
	return m
}

// Save performs the write (if WrEn is set) and records an eviction so
// Reverse can restore the overwritten bytes.
func (m *Memory) Save() {
	if !m.WrEn.Bool() {
		m.pushEviction(eviction{})
		return
	}
	addr := m.effectiveAddr()
	size := m.writeSize()
	old := m.space.ReadValue(addr, size)
	m.pushEviction(eviction{wrote: true, addr: addr, data: old, size: size})
	m.space.WriteValue(addr, m.DataIn.Value(), size)
}

func (m *Memory) pushEviction(e eviction) {
	m.history = append([]eviction{e}, m.history...)
	if len(m.history) > m.cap {
		m.history = m.history[:m.cap]
	}
}

// Reverse undoes the most recent Save: if it performed a write, the
// overwritten bytes are written back; a disabled-write cycle undoes to
// nothing.
func (m *Memory) Reverse() {
	if len(m.history) == 0 {
		return
	}
	e := m.history[0]
	m.history = m.history[1:]
	if e.wrote {
		m.space.WriteValue(e.addr, e.data, e.size)
	}
}

// ResetState clears all reverse history. The backing AddressSpace itself
// is not owned by the memory primitive and is left untouched: the engine
// never persists or resets external collaborators.
func (m *Memory) ResetState() {
	m.history = nil
}

// ReverseDepth reports how many Reverse calls are currently available.
func (m *Memory) ReverseDepth() int { return len(m.history) }

// TruncateReverseStack drops the oldest saved evictions until at most n
// remain.
func (m *Memory) TruncateReverseStack(n int) {
	if n < 0 {
		n = 0
	}
	m.cap = n
	if len(m.history) > n {
		m.history = m.history[:n]
	}
}

// ForceValue writes value directly to addr, bypassing the reverse stack
// entirely (a forced value is a modification of the present state, not a
// new state transition).
func (m *Memory) ForceValue(addr, value uint64) {
	m.space.WriteValue(addr<<m.wordShift(), value, m.maxSizeBytes())
}

// AddSyncRead attaches a registered-style DataOut: on a cycle where RdEn
// is asserted, DataOut reflects the addressed word post-write; otherwise
// it holds its previous value. This mirrors the original MemorySyncRd,
// which composes the same way on top of WrMemory.
func (m *Memory) AddSyncRead() *Memory {
	m.RdEn = m.Component.CreateInputPort("rd_en", 1)
	m.DataOut = m.Component.CreateOutputPort("data_out", m.dataWidth, func() uint64 {
		if m.RdEn.Bool() {
			m.heldOut = m.space.ReadValue(m.effectiveAddr(), m.maxSizeBytes())
		}
		return m.heldOut
	})
	return m
}

// NewAsyncReadMemory builds a read-only, unclocked memory: DataOut always
// reflects the current Addr, with no Save/Reverse behavior at all (used
// composed alongside NewWriteMemory for a split read/write port pair, the
// way the original MemoryAsyncRd wires an RdMemory and a WrMemory side by
// side, or standalone as a ROM).
func NewAsyncReadMemory(parent *vsrtl.Component, name string, addrWidth, dataWidth uint, space addrspace.AddressSpace, byteIndexed bool) *Memory {
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "rom"))
	m := &Memory{
		ClockedComponent: vsrtl.ClockedComponent{Component: c},
		space:            space,
		dataWidth:        dataWidth,
		byteIndexed:      byteIndexed,
	}
	m.Addr = c.CreateInputPort("addr", addrWidth)
	m.DataOut = c.CreateOutputPort("data_out", dataWidth, func() uint64 {
		return m.space.ReadValue(m.effectiveAddr(), m.maxSizeBytes())
	})
	return m
}

// MemoryAsyncRd wires a write memory and an async-read memory together
// behind a single Component, matching the original MemoryAsyncRd: writes
// go through the clocked write side (Wr), reads reflect Addr immediately
// against the same backing AddressSpace (Rd). Unlike Memory, it is not
// itself Clocked — Wr, its clocked sub-component, is what the engine
// saves/reverses; MemoryAsyncRd.ForceValue and ReverseDepth delegate to
// it so callers can still treat the composite as a whole.
type MemoryAsyncRd struct {
	*vsrtl.Component

	Addr    *vsrtl.Port
	DataIn  *vsrtl.Port
	WrEn    *vsrtl.Port
	WrWidth *vsrtl.Port
	DataOut *vsrtl.Port

	Wr *Memory
	Rd *Memory
}

// NewMemoryAsyncRd builds the composite described above.
func NewMemoryAsyncRd(parent *vsrtl.Component, name string, addrWidth, dataWidth uint, space addrspace.AddressSpace, byteIndexed bool) *MemoryAsyncRd {
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "memory_async_rd"))

	wr := NewWriteMemory(c, "wr", addrWidth, dataWidth, space, byteIndexed)
	rd := NewAsyncReadMemory(c, "rd", addrWidth, dataWidth, space, byteIndexed)

	m := &MemoryAsyncRd{Component: c, Wr: wr, Rd: rd}
	m.Addr = c.CreateInputPort("addr", addrWidth)
	m.DataIn = c.CreateInputPort("data_in", dataWidth)
	m.WrEn = c.CreateInputPort("wr_en", 1)
	m.WrWidth = c.CreateInputPort("wr_width", vsrtl.CeilLog2(dataWidth/8+1))
	if err := wr.Addr.Connect(m.Addr); err != nil {
		panic(err)
	}
	if err := wr.DataIn.Connect(m.DataIn); err != nil {
		panic(err)
	}
	if err := wr.WrEn.Connect(m.WrEn); err != nil {
		panic(err)
	}
	if err := wr.WrWidth.Connect(m.WrWidth); err != nil {
		panic(err)
	}
	if err := rd.Addr.Connect(m.Addr); err != nil {
		panic(err)
	}
	m.DataOut = c.CreateOutputPort("data_out", dataWidth, func() uint64 { return rd.DataOut.Value() })
	return m
}

// ForceValue writes value directly to addr through the write side,
// bypassing the reverse stack.
func (m *MemoryAsyncRd) ForceValue(addr, value uint64) { m.Wr.ForceValue(addr, value) }

// ReverseDepth reports how many Reverse calls are available on the write
// side, which is this composite's only clocked element.
func (m *MemoryAsyncRd) ReverseDepth() int { return m.Wr.ReverseDepth() }

// NewROM builds a NewAsyncReadMemory and also registers its DataOut as
// the "rom" special port for the visual layer. Like any async-read
// memory it is never registered as clocked, so the engine never calls
// its Save/Reverse, and it has no write ports, matching the original's
// bare ROM specialization of RdMemory.
func NewROM(parent *vsrtl.Component, name string, addrWidth, dataWidth uint, space addrspace.AddressSpace, byteIndexed bool) *Memory {
	m := NewAsyncReadMemory(parent, name, addrWidth, dataWidth, space, byteIndexed)
	m.Component.SetSpecialPort("rom", m.DataOut)
	return m
}
