package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/luksen/go-uf2conf/provision"
	"github.com/luksen/go-uf2conf/uf2"
)

// familyMap resolves family names accepted on the command line.
var familyMap = map[string]uint32{
	"rp2040":        uf2.FamilyRP2040,
	"absolute":      uf2.FamilyAbsolute,
	"data":          uf2.FamilyData,
	"rp2350_arm_s":  uf2.FamilyRP2350ArmS,
	"rp2350_riscv":  uf2.FamilyRP2350RiscV,
	"rp2350_arm_ns": uf2.FamilyRP2350ArmNS,
}

// parseFamily resolves a family name or a numeric family ID.
func parseFamily(s string) (uint32, error) {
	if id, ok := familyMap[strings.ToLower(s)]; ok {
		return id, nil
	}
	id, err := parseUint32(s)
	if err != nil {
		names := make([]string, 0, len(familyMap))
		for name := range familyMap {
			names = append(names, name)
		}
		sort.Strings(names)
		return 0, fmt.Errorf("unknown family %q: use a numeric ID or one of %s",
			s, strings.Join(names, ", "))
	}
	return id, nil
}

// regionFromFlags builds the region descriptor from the shared flag set,
// starting from the given default region.
func regionFromFlags(def provision.Region, baseAddr, family string, blocks uint32) (provision.Region, error) {
	r := def
	r.BlockCount = blocks

	if baseAddr != "" {
		addr, err := parseUint32(baseAddr)
		if err != nil {
			return provision.Region{}, err
		}
		r.BaseAddress = addr
	}
	if family != "" {
		id, err := parseFamily(family)
		if err != nil {
			return provision.Region{}, err
		}
		r.FamilyID = id
	}
	return r, nil
}

// writeArtifacts writes the UF2 image and, if requested, its Intel HEX
// rendition next to it.
func writeArtifacts(img *provision.Image, out string, withHex bool) error {
	if err := img.WriteFile(out); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d bytes, %d blocks at 0x%08X)\n",
		out, len(img.Bytes()), img.Region().BlockCount, img.Region().BaseAddress)

	if !withHex {
		return nil
	}

	hexPath := strings.TrimSuffix(out, ".uf2") + ".hex"
	f, err := os.Create(hexPath)
	if err != nil {
		return fmt.Errorf("failed to create hex file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := img.WriteHex(f); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", hexPath)
	return nil
}
