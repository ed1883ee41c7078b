// Package addrspace defines the byte-addressed storage contract memory
// primitives read and write through, and a sparse reference
// implementation of it. The engine itself never persists an
// AddressSpace; it is supplied (and owned) by whatever embeds the
// simulation.
package addrspace

// AddressSpace is a byte-addressed, little-endian, sparse store that
// reads as all-zero before anything has been written to it.
type AddressSpace interface {
	// ReadValue reads size bytes (1, 2, 4 or 8) starting at addr and
	// returns them as an unsigned integer, little-endian.
	ReadValue(addr uint64, size int) uint64
	// WriteValue writes the low size bytes of value to addr,
	// little-endian.
	WriteValue(addr uint64, value uint64, size int)
}

// Sparse is a map-backed AddressSpace: unwritten bytes read as zero and
// no storage is consumed for them.
type Sparse struct {
	bytes map[uint64]byte
}

// NewSparse returns an empty Sparse address space.
func NewSparse() *Sparse {
	return &Sparse{bytes: make(map[uint64]byte)}
}

// ReadValue implements AddressSpace.
func (s *Sparse) ReadValue(addr uint64, size int) uint64 {
	var v uint64
	for i := 0; i < size; i++ {
		v |= uint64(s.bytes[addr+uint64(i)]) << (8 * uint(i))
	}
	return v
}

// WriteValue implements AddressSpace.
func (s *Sparse) WriteValue(addr uint64, value uint64, size int) {
	for i := 0; i < size; i++ {
		b := byte(value >> (8 * uint(i)))
		if b == 0 {
			// Avoid growing the map for the common zero-fill case; a
			// prior nonzero write at this address must still be cleared.
			if _, ok := s.bytes[addr+uint64(i)]; ok {
				delete(s.bytes, addr+uint64(i))
			}
			continue
		}
		s.bytes[addr+uint64(i)] = b
	}
}

// Len reports how many individual bytes are actually stored.
func (s *Sparse) Len() int { return len(s.bytes) }
