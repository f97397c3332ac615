package main

import (
	"github.com/spf13/cobra"

	"github.com/luksen/go-uf2conf/provision"
)

var (
	deviceID       string
	deviceBaseAddr string
	deviceFamily   string
	deviceBlocks   uint32
	deviceOut      string
	deviceHex      bool
)

// deviceCmd represents the device command
var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Generate a UF2 image carrying a device identifier",
	Long: `Generate a UF2 image that writes a 32-bit device identifier into the
device info region. The identifier is stored little-endian at the start of
the region.

Example:
  uf2conf device --id 0xCAFEBABE -o dev.uf2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUint32(deviceID)
		if err != nil {
			return err
		}

		region, err := regionFromFlags(provision.DeviceInfoRegion(), deviceBaseAddr, deviceFamily, deviceBlocks)
		if err != nil {
			return err
		}

		img, err := provision.BuildDeviceIDImage(region, id)
		if err != nil {
			return err
		}

		return writeArtifacts(img, deviceOut, deviceHex)
	},
}

func init() {
	rootCmd.AddCommand(deviceCmd)

	deviceCmd.Flags().StringVar(&deviceID, "id", "", "device identifier, decimal or 0x-prefixed hex")
	deviceCmd.Flags().StringVar(&deviceBaseAddr, "base-address", "", "region base address (default 0x10FFE000)")
	deviceCmd.Flags().StringVar(&deviceFamily, "family", "", "target family name or numeric ID (default rp2040)")
	deviceCmd.Flags().Uint32Var(&deviceBlocks, "blocks", provision.RegionBlocks, "blocks reserved for the region")
	deviceCmd.Flags().StringVarP(&deviceOut, "output", "o", "dev.uf2", "output file")
	deviceCmd.Flags().BoolVar(&deviceHex, "hex", false, "also write an Intel HEX rendition")

	_ = deviceCmd.MarkFlagRequired("id")
}
