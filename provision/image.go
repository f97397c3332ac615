package provision

import (
	"fmt"
	"io"
	"os"

	"github.com/luksen/go-uf2conf/uf2"
)

// Image is a fully serialized UF2 image for one configuration region. It is
// assembled in memory at construction time and immutable afterwards, so a
// failed build can never leave a partially written artifact behind.
type Image struct {
	region Region
	data   []byte
}

// BuildImage builds the UF2 image for a region from a raw payload. The
// payload may be shorter than the region capacity; the remainder is
// zero-filled. The region is validated first, then every block is encoded
// before any output can be observed.
func BuildImage(r Region, payload []byte) (*Image, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid region: %w", err)
	}

	data, err := uf2.BuildImage(r.BaseAddress, payload, r.BlockCount, r.FamilyID)
	if err != nil {
		return nil, err
	}

	return &Image{region: r, data: data}, nil
}

// BuildWifiImage builds the UF2 image carrying Wi-Fi credentials for the
// given region.
//
// Example:
//
//	img, err := provision.BuildWifiImage(provision.WifiRegion(), "MyNet", "hunter2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := img.WriteFile("wifi.uf2"); err != nil {
//	    log.Fatal(err)
//	}
func BuildWifiImage(r Region, ssid, password string) (*Image, error) {
	payload, err := WifiPayload(ssid, password)
	if err != nil {
		return nil, err
	}
	return BuildImage(r, payload)
}

// BuildDeviceIDImage builds the UF2 image carrying a device identifier for
// the given region.
func BuildDeviceIDImage(r Region, id uint32) (*Image, error) {
	return BuildImage(r, DeviceIDPayload(id))
}

// Region returns the region descriptor the image was built for.
func (img *Image) Region() Region {
	return img.region
}

// Bytes returns the serialized image. The caller must not modify the
// returned slice.
func (img *Image) Bytes() []byte {
	return img.data
}

// Payload returns the zero-padded region payload carried by the image, in
// address order, without UF2 framing.
func (img *Image) Payload() []byte {
	payload := make([]byte, 0, img.region.Capacity())
	for i := 0; i < int(img.region.BlockCount); i++ {
		block := img.data[i*uf2.BlockSize : (i+1)*uf2.BlockSize]
		payload = append(payload, block[32:32+uf2.PayloadSize]...)
	}
	return payload
}

// WriteTo writes the serialized image to w, implementing io.WriterTo.
func (img *Image) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(img.data)
	return int64(n), err
}

// WriteFile writes the serialized image to the named file in a single
// write-all call.
func (img *Image) WriteFile(path string) error {
	if err := os.WriteFile(path, img.data, 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}
