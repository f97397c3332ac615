package provision

import (
	"fmt"
	"io"

	"github.com/marcinbor85/gohex"
)

// hexLineLength is the number of data bytes per Intel HEX record line.
const hexLineLength = 16

// WriteHex writes the region payload as Intel HEX records at the region's
// flash addresses. This bypasses the UF2 framing entirely and is meant for
// flashing paths that go through a debug probe instead of the mass-storage
// bootloader.
//
// The full zero-padded region is emitted, matching what flashing the UF2
// image would leave in the sector.
func (img *Image) WriteHex(w io.Writer) error {
	mem := gohex.NewMemory()
	if err := mem.AddBinary(img.region.BaseAddress, img.Payload()); err != nil {
		return fmt.Errorf("failed to lay out hex segment: %w", err)
	}
	if err := mem.DumpIntelHex(w, hexLineLength); err != nil {
		return fmt.Errorf("failed to write hex records: %w", err)
	}
	return nil
}
