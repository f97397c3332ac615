package main

import (
	"testing"

	"github.com/luksen/go-uf2conf/provision"
	"github.com/luksen/go-uf2conf/uf2"
)

func TestParseUint32(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint32
		wantErr bool
	}{
		{"decimal", "4096", 4096, false},
		{"hex", "0xCAFEBABE", 0xCAFEBABE, false},
		{"hex lowercase", "0x10fff000", 0x10FFF000, false},
		{"zero", "0", 0, false},
		{"max", "0xFFFFFFFF", 0xFFFFFFFF, false},
		{"overflow", "0x100000000", 0, true},
		{"negative", "-1", 0, true},
		{"garbage", "pico", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseUint32(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseUint32(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseUint32(%q) = 0x%08X, want 0x%08X", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFamily(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint32
		wantErr bool
	}{
		{"rp2040 by name", "rp2040", uf2.FamilyRP2040, false},
		{"name is case insensitive", "RP2040", uf2.FamilyRP2040, false},
		{"data by name", "data", uf2.FamilyData, false},
		{"numeric", "0xE48BFF56", uf2.FamilyRP2040, false},
		{"unknown name", "esp32", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFamily(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFamily(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseFamily(%q) = 0x%08X, want 0x%08X", tt.input, got, tt.want)
			}
		})
	}
}

func TestRegionFromFlags(t *testing.T) {
	def := provision.WifiRegion()

	t.Run("defaults pass through", func(t *testing.T) {
		r, err := regionFromFlags(def, "", "", provision.RegionBlocks)
		if err != nil {
			t.Fatalf("regionFromFlags() error = %v", err)
		}
		if r != def {
			t.Errorf("region = %+v, want %+v", r, def)
		}
	})

	t.Run("overrides applied", func(t *testing.T) {
		r, err := regionFromFlags(def, "0x20000000", "data", 8)
		if err != nil {
			t.Fatalf("regionFromFlags() error = %v", err)
		}
		if r.BaseAddress != 0x20000000 {
			t.Errorf("base address = 0x%08X, want 0x20000000", r.BaseAddress)
		}
		if r.FamilyID != uf2.FamilyData {
			t.Errorf("family = 0x%08X, want FamilyData", r.FamilyID)
		}
		if r.BlockCount != 8 {
			t.Errorf("block count = %d, want 8", r.BlockCount)
		}
	})

	t.Run("bad address rejected", func(t *testing.T) {
		if _, err := regionFromFlags(def, "not-an-address", "", 16); err == nil {
			t.Error("regionFromFlags() expected error, got nil")
		}
	})
}
