package provision

import "encoding/binary"

// Credential field slots within the Wi-Fi region. The firmware reads both
// fields as NUL-terminated strings, so a field shorter than its slot is
// zero-padded and a field of exactly the slot size is stored unpadded.
const (
	// SSIDSize is the fixed slot size for the SSID, bytes 0-31 of the region
	SSIDSize = 32

	// PasswordSize is the fixed slot size for the password, bytes 32-63
	PasswordSize = 32
)

// DeviceIDSize is the size of the device identifier at offset 0 of the
// device info region.
const DeviceIDSize = 4

// WifiPayload packs Wi-Fi credentials into a region payload: the SSID
// occupies bytes 0-31 and the password bytes 32-63, each zero-padded to its
// slot. Both fields are byte strings in whatever encoding the firmware
// expects, UTF-8 in practice.
//
// A field longer than its slot returns a *FieldTooLongError.
func WifiPayload(ssid, password string) ([]byte, error) {
	if len(ssid) > SSIDSize {
		return nil, &FieldTooLongError{Field: "ssid", Length: len(ssid), Max: SSIDSize}
	}
	if len(password) > PasswordSize {
		return nil, &FieldTooLongError{Field: "password", Length: len(password), Max: PasswordSize}
	}

	payload := make([]byte, SSIDSize+PasswordSize)
	copy(payload[:SSIDSize], ssid)
	copy(payload[SSIDSize:], password)
	return payload, nil
}

// DeviceIDPayload packs a 32-bit device identifier at offset 0 of a region
// payload, little-endian.
func DeviceIDPayload(id uint32) []byte {
	payload := make([]byte, DeviceIDSize)
	binary.LittleEndian.PutUint32(payload, id)
	return payload
}
