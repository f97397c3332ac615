package uf2

// Block layout constants per the UF2 specification.
const (
	// BlockSize is the total size of an encoded UF2 block in bytes
	BlockSize = 512

	// PayloadSize is the number of payload bytes carried by every block.
	// The format allows up to 476, but bootloaders expect 256 and this
	// library encodes nothing else.
	PayloadSize = 256

	// HeaderSize is the size of the block header preceding the payload:
	// magic0(4) + magic1(4) + flags(4) + addr(4) + size(4) + seq(4) +
	// total(4) + family(4)
	HeaderSize = 32

	// PaddingSize is the number of zero bytes between the payload and the
	// trailing magic number
	PaddingSize = BlockSize - HeaderSize - PayloadSize - 4
)

// Magic numbers framing every block. Magic0 spells "UF2\n" when written
// little-endian.
const (
	// Magic0 is the first magic number (bytes 0-3)
	Magic0 = 0x0A324655

	// Magic1 is the second magic number (bytes 4-7)
	Magic1 = 0x9E5D5157

	// MagicEnd is the final magic number (bytes 508-511)
	MagicEnd = 0x0AB16F30
)

// Flag bits for the flags field (bytes 8-11).
const (
	// FlagNotMainFlash marks a block that must not be written to flash
	FlagNotMainFlash = 0x00000001

	// FlagFileContainer marks a block belonging to a file container
	FlagFileContainer = 0x00001000

	// FlagFamilyIDPresent indicates the family ID field is valid.
	// Always set by this encoder.
	FlagFamilyIDPresent = 0x00002000

	// FlagMD5ChecksumPresent indicates an MD5 checksum in the padding area
	FlagMD5ChecksumPresent = 0x00004000

	// FlagExtensionTagsPresent indicates extension tags in the padding area
	FlagExtensionTagsPresent = 0x00008000
)

// Family IDs identifying the target microcontroller, letting a bootloader
// reject blocks meant for different hardware.
const (
	// FamilyRP2040 is the Raspberry Pi RP2040 (Pico, Pico W)
	FamilyRP2040 = 0xE48BFF56

	// FamilyAbsolute is an absolute (non-relocatable) data block
	FamilyAbsolute = 0xE48BFF57

	// FamilyData is a raw data block
	FamilyData = 0xE48BFF58

	// FamilyRP2350ArmS is the RP2350, Arm secure mode
	FamilyRP2350ArmS = 0xE48BFF59

	// FamilyRP2350RiscV is the RP2350, RISC-V mode
	FamilyRP2350RiscV = 0xE48BFF5A

	// FamilyRP2350ArmNS is the RP2350, Arm non-secure mode
	FamilyRP2350ArmNS = 0xE48BFF5B
)

// Field byte offsets within an encoded block.
const (
	offMagic0  = 0
	offMagic1  = 4
	offFlags   = 8
	offAddr    = 12
	offSize    = 16
	offSeq     = 20
	offTotal   = 24
	offFamily  = 28
	offPayload = 32
	offMagic2  = BlockSize - 4
)
