package provision

import (
	"fmt"

	"github.com/luksen/go-uf2conf/uf2"
)

// Flash layout constants for the default regions.
//
// The Pico's flash sector size is 4 KiB and a sector must be erased as a
// whole, so every configuration region reserves one full sector: 16 blocks
// of 256 payload bytes. The block count is part of the layout contract with
// the firmware reading the region back; it is never shrunk to fit a smaller
// payload.
const (
	// RegionBlocks is the fixed number of UF2 blocks per region
	RegionBlocks = 16

	// WifiBaseAddress is the flash address of the Wi-Fi credentials region
	WifiBaseAddress = 0x10FFF000

	// DeviceInfoBaseAddress is the flash address of the device info region
	DeviceInfoBaseAddress = 0x10FFE000
)

// Region describes a contiguous fixed-size flash allocation dedicated to one
// configuration payload. A Region is validated once, when an image is built
// from it.
type Region struct {
	// BaseAddress is the absolute flash address the region starts at
	BaseAddress uint32

	// BlockCount is the number of 256-byte blocks reserved for the region
	BlockCount uint32

	// FamilyID tags the generated blocks for the target microcontroller
	FamilyID uint32
}

// WifiRegion returns the default Wi-Fi credentials region of the Pico flash
// layout: one 4 KiB sector at WifiBaseAddress, RP2040 family.
func WifiRegion() Region {
	return Region{
		BaseAddress: WifiBaseAddress,
		BlockCount:  RegionBlocks,
		FamilyID:    uf2.FamilyRP2040,
	}
}

// DeviceInfoRegion returns the default device info region of the Pico flash
// layout: one 4 KiB sector at DeviceInfoBaseAddress, RP2040 family.
func DeviceInfoRegion() Region {
	return Region{
		BaseAddress: DeviceInfoBaseAddress,
		BlockCount:  RegionBlocks,
		FamilyID:    uf2.FamilyRP2040,
	}
}

// Capacity returns the number of payload bytes the region can hold.
func (r Region) Capacity() int {
	return int(r.BlockCount) * uf2.PayloadSize
}

// Size returns the size of the serialized UF2 image for the region.
func (r Region) Size() int {
	return int(r.BlockCount) * uf2.BlockSize
}

// Validate checks the region descriptor. A region must reserve at least one
// block and must not wrap around the 32-bit address space.
func (r Region) Validate() error {
	if r.BlockCount == 0 {
		return fmt.Errorf("region at 0x%08X reserves zero blocks", r.BaseAddress)
	}
	end := uint64(r.BaseAddress) + uint64(r.Capacity())
	if end > 1<<32 {
		return fmt.Errorf("region at 0x%08X with %d blocks wraps the 32-bit address space",
			r.BaseAddress, r.BlockCount)
	}
	return nil
}
