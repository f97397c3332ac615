package uf2

import "encoding/binary"

// EncodeBlock encodes one 512-byte UF2 block.
//
// addr is the absolute flash address the payload must be written to, index is
// the zero-based position of the block within its image and total is the
// number of blocks in that image. The family ID tags the block for the target
// microcontroller; the FamilyIDPresent flag is always set.
//
// Block structure (all integers little-endian):
//
//	[MAGIC0(4)][MAGIC1(4)][FLAGS(4)][ADDR(4)][SIZE(4)][SEQ(4)][TOTAL(4)][FAMILY(4)][PAYLOAD(256)][PADDING(220)][MAGIC_END(4)]
//
// data must be exactly PayloadSize bytes; any other length returns an
// *InvalidPayloadLengthError. The encoding is deterministic and has no other
// failure mode.
func EncodeBlock(addr, index, total, familyID uint32, data []byte) ([]byte, error) {
	if len(data) != PayloadSize {
		return nil, &InvalidPayloadLengthError{Length: len(data)}
	}

	block := make([]byte, BlockSize)

	binary.LittleEndian.PutUint32(block[offMagic0:], Magic0)
	binary.LittleEndian.PutUint32(block[offMagic1:], Magic1)
	binary.LittleEndian.PutUint32(block[offFlags:], FlagFamilyIDPresent)
	binary.LittleEndian.PutUint32(block[offAddr:], addr)
	binary.LittleEndian.PutUint32(block[offSize:], PayloadSize)
	binary.LittleEndian.PutUint32(block[offSeq:], index)
	binary.LittleEndian.PutUint32(block[offTotal:], total)
	binary.LittleEndian.PutUint32(block[offFamily:], familyID)

	copy(block[offPayload:], data)

	// Bytes between the payload and the trailing magic stay zero.
	binary.LittleEndian.PutUint32(block[offMagic2:], MagicEnd)

	return block, nil
}
