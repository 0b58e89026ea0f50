// Package device models the chips that sit in the tester's socket.
package device

import "errors"

// A Storage keeps the cell contents of a simulated memory device.
//
// The storage manages its bytes in units. Units that are never touched by
// Read and Write are not allocated, so large devices cost little until the
// tester actually walks them.
type Storage struct {
	unitSize uint64
	capacity uint64
	data     map[uint64][]byte
}

// NewStorage creates a storage object with the specified capacity in bytes.
func NewStorage(capacity uint64) *Storage {
	return &Storage{
		unitSize: 4096,
		capacity: capacity,
		data:     make(map[uint64][]byte),
	}
}

// Capacity returns the number of bytes the storage can hold.
func (s *Storage) Capacity() uint64 {
	return s.capacity
}

func (s *Storage) createOrGetUnit(address uint64) ([]byte, error) {
	if address >= s.capacity {
		return nil, errors.New("accessing address beyond the storage capacity")
	}

	baseAddr := address - address%s.unitSize
	unit, ok := s.data[baseAddr]
	if !ok {
		unit = make([]byte, s.unitSize)
		s.data[baseAddr] = unit
	}

	return unit, nil
}

// ReadByte returns the byte stored at the given address.
func (s *Storage) ReadByte(address uint64) (byte, error) {
	unit, err := s.createOrGetUnit(address)
	if err != nil {
		return 0, err
	}

	return unit[address%s.unitSize], nil
}

// WriteByte stores a byte at the given address.
func (s *Storage) WriteByte(address uint64, data byte) error {
	unit, err := s.createOrGetUnit(address)
	if err != nil {
		return err
	}

	unit[address%s.unitSize] = data

	return nil
}
