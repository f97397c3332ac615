package provision

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestWifiPayload(t *testing.T) {
	tests := []struct {
		name     string
		ssid     string
		password string
	}{
		{"typical credentials", "Buffalo-G-1338", "mysecretpw2"},
		{"empty fields", "", ""},
		{"exactly 32 byte ssid", strings.Repeat("s", 32), "pw"},
		{"exactly 32 byte password", "net", strings.Repeat("p", 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := WifiPayload(tt.ssid, tt.password)
			if err != nil {
				t.Fatalf("WifiPayload() error = %v", err)
			}

			if len(payload) != SSIDSize+PasswordSize {
				t.Fatalf("payload length = %d, want %d", len(payload), SSIDSize+PasswordSize)
			}

			if got := string(payload[:len(tt.ssid)]); got != tt.ssid {
				t.Errorf("ssid bytes = %q, want %q", got, tt.ssid)
			}
			for i := len(tt.ssid); i < SSIDSize; i++ {
				if payload[i] != 0 {
					t.Errorf("ssid padding byte %d = 0x%02X, want 0x00", i, payload[i])
					break
				}
			}

			if got := string(payload[SSIDSize : SSIDSize+len(tt.password)]); got != tt.password {
				t.Errorf("password bytes = %q, want %q", got, tt.password)
			}
			for i := SSIDSize + len(tt.password); i < len(payload); i++ {
				if payload[i] != 0 {
					t.Errorf("password padding byte %d = 0x%02X, want 0x00", i, payload[i])
					break
				}
			}
		})
	}
}

func TestWifiPayloadFieldTooLong(t *testing.T) {
	tests := []struct {
		name      string
		ssid      string
		password  string
		wantField string
		wantLen   int
	}{
		{"33 byte ssid", strings.Repeat("s", 33), "pw", "ssid", 33},
		{"33 byte password", "net", strings.Repeat("p", 33), "password", 33},
		{"multibyte utf-8 counted in bytes", strings.Repeat("ü", 17), "pw", "ssid", 34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WifiPayload(tt.ssid, tt.password)
			if err == nil {
				t.Fatal("WifiPayload() expected error, got nil")
			}

			var tooLong *FieldTooLongError
			if !errors.As(err, &tooLong) {
				t.Fatalf("error type = %T, want *FieldTooLongError", err)
			}
			if tooLong.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", tooLong.Field, tt.wantField)
			}
			if tooLong.Length != tt.wantLen {
				t.Errorf("Length = %d, want %d", tooLong.Length, tt.wantLen)
			}
			if tooLong.Max != 32 {
				t.Errorf("Max = %d, want 32", tooLong.Max)
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("error message should name the field, got: %s", err)
			}
		})
	}
}

func TestDeviceIDPayload(t *testing.T) {
	payload := DeviceIDPayload(0xCAFEBABE)

	want := []byte{0xBE, 0xBA, 0xFE, 0xCA}
	if !bytes.Equal(payload, want) {
		t.Errorf("DeviceIDPayload(0xCAFEBABE) = % X, want % X", payload, want)
	}
}
