// Package provision builds UF2 configuration images for fixed flash regions.
//
// # Overview
//
// Devices running a USB mass-storage bootloader reserve small flash regions
// for configuration values the firmware reads back at boot: Wi-Fi
// credentials, a device identifier. Re-provisioning a deployed device is then
// just dropping a UF2 file onto the bootloader drive; no flashing tool, no
// firmware rebuild.
//
// This package pairs a Region descriptor (base address, block count, family
// ID) with payload constructors and produces ready-to-flash Image artifacts:
//
//	img, err := provision.BuildWifiImage(provision.WifiRegion(), "MyNet", "hunter2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := img.WriteFile("wifi.uf2"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Region Layout
//
// Every region reserves a whole 4 KiB flash sector (16 blocks of 256 payload
// bytes), because the sector is the smallest erasable unit. The default
// layout places Wi-Fi credentials at 0x10FFF000 and device info at
// 0x10FFE000, both tagged for the RP2040 family.
//
// Wi-Fi region payload:
//
//	Offset  Size  Field
//	0       32    SSID, zero-padded
//	32      32    password, zero-padded
//	64      ...   zero fill to the end of the region
//
// Device info region payload:
//
//	Offset  Size  Field
//	0       4     device ID, little-endian
//	4       ...   zero fill to the end of the region
//
// # Error Handling
//
// All failures are precondition violations detected before any output
// exists:
//   - FieldTooLongError: SSID or password exceeds its 32-byte slot
//   - uf2.PayloadTooLargeError: payload exceeds the region capacity
//
// Images are assembled fully in memory and written with a single write-all
// call, so a caller never observes a partially written artifact.
//
// # Intel HEX Export
//
// Image.WriteHex emits the same region contents as Intel HEX records for
// debug-probe flashing paths that do not go through the UF2 bootloader.
package provision
