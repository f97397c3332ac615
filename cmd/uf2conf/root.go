package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "uf2conf",
	Short: "Generate UF2 configuration images for mass-storage bootloaders",
	Long: `uf2conf packs device configuration (Wi-Fi credentials, device IDs) into
UF2 images targeting fixed flash regions. Flashing the generated file via the
device's USB mass-storage bootloader overwrites just that region, so a
deployed device can be re-provisioned without rebuilding its firmware.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseUint32 parses a decimal or 0x-prefixed hexadecimal 32-bit value.
func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid 32-bit value %q: %w", s, err)
	}
	return uint32(v), nil
}
