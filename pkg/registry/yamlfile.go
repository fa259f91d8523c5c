package registry

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meridian-net/netcollector/pkg/collectorerr"
	"github.com/meridian-net/netcollector/pkg/model"
)

// yamlDevice mirrors one device entry in a device-list YAML document —
// the on-disk shape a real device-registry CRUD store (out of scope per
// spec.md §1/§6) would export as a snapshot for the core to consume.
type yamlDevice struct {
	Name     string            `yaml:"name"`
	Host     string            `yaml:"host"`
	Platform string            `yaml:"platform"`
	Type     string            `yaml:"type"`
	Role     string            `yaml:"role"`
	Site     string            `yaml:"site"`
	Status   string            `yaml:"status"`
	Metadata map[string]string `yaml:"metadata"`
}

type yamlDocument struct {
	Devices []yamlDevice `yaml:"devices"`
}

// YAMLFile is a minimal DeviceRegistry backed by a flat YAML file, the
// simplest possible stand-in for the real external registry this core
// never mutates.
type YAMLFile struct {
	path    string
	devices []model.Device
}

// LoadYAMLFile reads and decodes a device-list YAML document.
func LoadYAMLFile(path string) (*YAMLFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, collectorerr.NewConfigError(path, "", err)
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, collectorerr.NewConfigError(path, "devices", err)
	}

	devices := make([]model.Device, 0, len(doc.Devices))
	for _, d := range doc.Devices {
		if d.Name == "" || d.Host == "" {
			return nil, collectorerr.NewConfigError(path, "devices", fmt.Errorf("device entry missing name or host"))
		}
		status := model.DeviceStatus(d.Status)
		if status == "" {
			status = model.StatusEnabled
		}
		devices = append(devices, model.Device{
			Name:     d.Name,
			Host:     d.Host,
			Platform: model.Platform(d.Platform),
			Type:     d.Type,
			Role:     d.Role,
			Site:     d.Site,
			Status:   status,
			Metadata: d.Metadata,
		})
	}

	return &YAMLFile{path: path, devices: devices}, nil
}

// ListDevices returns every device whose status is enabled/online —
// offline and error devices are excluded from fresh collection runs but
// remain visible to GetDevice.
func (f *YAMLFile) ListDevices(ctx context.Context) ([]model.Device, error) {
	out := make([]model.Device, 0, len(f.devices))
	for _, d := range f.devices {
		if d.Status == model.StatusEnabled || d.Status == model.StatusOnline {
			out = append(out, d)
		}
	}
	return out, nil
}

// GetDevice looks up one device by name regardless of status.
func (f *YAMLFile) GetDevice(ctx context.Context, name string) (*model.Device, error) {
	for i := range f.devices {
		if f.devices[i].Name == name {
			d := f.devices[i]
			return &d, nil
		}
	}
	return nil, fmt.Errorf("device %q not found in %s", name, f.path)
}
