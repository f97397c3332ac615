package main

import (
	"github.com/spf13/cobra"

	"github.com/luksen/go-uf2conf/provision"
)

var (
	wifiSSID     string
	wifiPassword string
	wifiBaseAddr string
	wifiFamily   string
	wifiBlocks   uint32
	wifiOut      string
	wifiHex      bool
)

// wifiCmd represents the wifi command
var wifiCmd = &cobra.Command{
	Use:   "wifi",
	Short: "Generate a UF2 image carrying Wi-Fi credentials",
	Long: `Generate a UF2 image that writes Wi-Fi credentials into the device's
Wi-Fi configuration region.

The SSID and password each occupy a fixed 32-byte slot, zero-padded; the
firmware reads them back as NUL-terminated strings. Fields longer than 32
bytes are rejected.

Example:
  uf2conf wifi --ssid Buffalo-G-1338 --password mysecretpw2 -o wifi.uf2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		region, err := regionFromFlags(provision.WifiRegion(), wifiBaseAddr, wifiFamily, wifiBlocks)
		if err != nil {
			return err
		}

		img, err := provision.BuildWifiImage(region, wifiSSID, wifiPassword)
		if err != nil {
			return err
		}

		return writeArtifacts(img, wifiOut, wifiHex)
	},
}

func init() {
	rootCmd.AddCommand(wifiCmd)

	wifiCmd.Flags().StringVar(&wifiSSID, "ssid", "", "network SSID (at most 32 bytes)")
	wifiCmd.Flags().StringVar(&wifiPassword, "password", "", "network password (at most 32 bytes)")
	wifiCmd.Flags().StringVar(&wifiBaseAddr, "base-address", "", "region base address (default 0x10FFF000)")
	wifiCmd.Flags().StringVar(&wifiFamily, "family", "", "target family name or numeric ID (default rp2040)")
	wifiCmd.Flags().Uint32Var(&wifiBlocks, "blocks", provision.RegionBlocks, "blocks reserved for the region")
	wifiCmd.Flags().StringVarP(&wifiOut, "output", "o", "wifi.uf2", "output file")
	wifiCmd.Flags().BoolVar(&wifiHex, "hex", false, "also write an Intel HEX rendition")

	_ = wifiCmd.MarkFlagRequired("ssid")
	_ = wifiCmd.MarkFlagRequired("password")
}
