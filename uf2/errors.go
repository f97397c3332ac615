package uf2

import "fmt"

// InvalidPayloadLengthError indicates that a chunk handed to EncodeBlock is
// not exactly PayloadSize bytes. All call sites control the chunk length, so
// this always points at a bug in the caller, not at user input.
type InvalidPayloadLengthError struct {
	// Length is the actual length of the offending chunk
	Length int
}

func (e *InvalidPayloadLengthError) Error() string {
	return fmt.Sprintf("invalid payload length: got %d bytes, expected exactly %d",
		e.Length, PayloadSize)
}

// PayloadTooLargeError indicates that a region payload exceeds the capacity
// reserved for it.
type PayloadTooLargeError struct {
	// Length is the payload length in bytes
	Length int

	// Capacity is the reserved region capacity in bytes
	Capacity int
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("payload too large: %d bytes exceeds region capacity of %d bytes",
		e.Length, e.Capacity)
}
