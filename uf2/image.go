package uf2

// BuildImage assembles a complete UF2 image for one contiguous flash region.
//
// The payload is zero-padded to blockCount*PayloadSize bytes, split into
// PayloadSize chunks in address order and encoded into one block per chunk,
// with block i targeting baseAddr + PayloadSize*i. The blocks are returned
// concatenated in index order, ready to be written verbatim to a file; the
// result is always exactly blockCount*BlockSize bytes.
//
// A payload longer than the region capacity returns a *PayloadTooLargeError.
// The block count is a protocol parameter of the target flash layout (one
// block per PayloadSize bytes of the reserved region); it is never shrunk to
// fit the payload.
func BuildImage(baseAddr uint32, payload []byte, blockCount, familyID uint32) ([]byte, error) {
	capacity := int(blockCount) * PayloadSize
	if len(payload) > capacity {
		return nil, &PayloadTooLargeError{Length: len(payload), Capacity: capacity}
	}

	padded := make([]byte, capacity)
	copy(padded, payload)

	image := make([]byte, 0, int(blockCount)*BlockSize)
	for i := uint32(0); i < blockCount; i++ {
		chunk := padded[int(i)*PayloadSize : int(i+1)*PayloadSize]
		block, err := EncodeBlock(baseAddr+PayloadSize*i, i, blockCount, familyID, chunk)
		if err != nil {
			return nil, err
		}
		image = append(image, block...)
	}

	return image, nil
}
