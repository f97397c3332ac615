package provision

import "fmt"

// FieldTooLongError indicates that a credential field exceeds its fixed slot
// in the region layout. Fields are zero-padded, never truncated, so an
// oversized field is rejected outright.
type FieldTooLongError struct {
	// Field names the offending field ("ssid" or "password")
	Field string

	// Length is the encoded length of the field in bytes
	Length int

	// Max is the slot size in bytes
	Max int
}

func (e *FieldTooLongError) Error() string {
	return fmt.Sprintf("%s too long: %d bytes exceeds the %d-byte slot",
		e.Field, e.Length, e.Max)
}
