// Package uf2 implements encoding for the UF2 block format.
//
// # UF2 Format
//
// UF2 ("USB Flashing Format") is a block-structured file format for
// delivering firmware and data to microcontrollers exposing a USB
// mass-storage bootloader. Copying a .uf2 file onto the bootloader's virtual
// drive writes each block's payload to the flash address the block names,
// without any custom flashing tool or driver.
//
// Every block is a self-describing 512-byte unit, matching the typical USB
// mass-storage sector size so the bootloader can validate and relocate each
// block independently of transfer order.
//
// Block layout (all integers little-endian), byte offsets within the block:
//
//	Offset  Size  Field           Value
//	0       4     magic0          0x0A324655 ("UF2\n")
//	4       4     magic1          0x9E5D5157
//	8       4     flags           0x00002000 (family ID present)
//	12      4     target address  absolute flash address of the payload
//	16      4     payload size    256
//	20      4     block index     zero-based sequence number
//	24      4     total blocks    block count of the whole image
//	28      4     family ID       target microcontroller family
//	32      256   payload         data, zero-padded if shorter
//	288     220   padding         all zero
//	508     4     magic end       0x0AB16F30
//
// The three magic numbers let a receiving bootloader distinguish UF2 blocks
// from arbitrary file-system traffic; the family ID lets it reject blocks
// meant for a different hardware variant.
//
// # Usage
//
// Encode a single block:
//
//	block, err := uf2.EncodeBlock(0x10000000, 0, 16, uf2.FamilyRP2040, data)
//
// Assemble a complete image for a flash region:
//
//	image, err := uf2.BuildImage(0x10000000, payload, 16, uf2.FamilyRP2040)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("region.uf2", image, 0o644)
//
// # Error Handling
//
// Both failure modes are precondition violations detected before any byte is
// produced:
//   - InvalidPayloadLengthError: a chunk is not exactly 256 bytes
//   - PayloadTooLargeError: a payload exceeds the reserved region capacity
//
// # Reference
//
// For the full format specification, see https://github.com/microsoft/uf2
package uf2
