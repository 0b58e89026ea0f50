package bus

import (
	"fmt"
	"math/bits"
)

// Supported device sizes in bytes.
const (
	Size8K  = 8192
	Size32K = 32768
)

// Geometry describes the address space of the device in the socket. It is
// fixed when a device size is selected and immutable until re-selected.
type Geometry struct {
	SizeBytes   uint32
	AddressBits int
	MaxAddress  uint16
}

// MakeGeometry builds the geometry for a supported device size. Sizes other
// than 8192 and 32768 bytes are rejected before any hardware is touched.
func MakeGeometry(sizeBytes uint32) (Geometry, error) {
	if sizeBytes != Size8K && sizeBytes != Size32K {
		return Geometry{}, fmt.Errorf(
			"unsupported device size %d: must be %d or %d",
			sizeBytes, Size8K, Size32K)
	}

	return Geometry{
		SizeBytes:   sizeBytes,
		AddressBits: bits.Len32(sizeBytes - 1),
		MaxAddress:  uint16(sizeBytes - 1),
	}, nil
}
