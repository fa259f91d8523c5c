package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/meridian-net/netcollector/pkg/model"
)

func writeDeviceFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devices.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadYAMLFileListDevicesExcludesDisabled(t *testing.T) {
	path := writeDeviceFile(t, `
devices:
  - name: sw1
    host: 10.0.0.1
    platform: cisco_ios
    status: enabled
  - name: sw2
    host: 10.0.0.2
    platform: cisco_nxos
    status: online
  - name: sw3
    host: 10.0.0.3
    platform: cisco_ios
    status: disabled
`)

	reg, err := LoadYAMLFile(path)
	if err != nil {
		t.Fatalf("LoadYAMLFile: %v", err)
	}

	devices, err := reg.ListDevices(context.Background())
	if err != nil {
		t.Fatalf("ListDevices: %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("expected 2 enabled/online devices, got %d: %+v", len(devices), devices)
	}
	for _, d := range devices {
		if d.Name == "sw3" {
			t.Errorf("disabled device sw3 should be excluded from ListDevices")
		}
	}
}

func TestLoadYAMLFileDefaultsStatusToEnabled(t *testing.T) {
	path := writeDeviceFile(t, `
devices:
  - name: sw1
    host: 10.0.0.1
`)
	reg, err := LoadYAMLFile(path)
	if err != nil {
		t.Fatalf("LoadYAMLFile: %v", err)
	}
	d, err := reg.GetDevice(context.Background(), "sw1")
	if err != nil {
		t.Fatalf("GetDevice: %v", err)
	}
	if d.Status != model.StatusEnabled {
		t.Errorf("status = %q, want %q", d.Status, model.StatusEnabled)
	}
}

func TestLoadYAMLFileRejectsMissingNameOrHost(t *testing.T) {
	path := writeDeviceFile(t, `
devices:
  - name: sw1
`)
	if _, err := LoadYAMLFile(path); err == nil {
		t.Fatal("expected error for device entry missing host")
	}
}

func TestGetDeviceReturnsOfflineDevicesToo(t *testing.T) {
	path := writeDeviceFile(t, `
devices:
  - name: sw1
    host: 10.0.0.1
    status: offline
`)
	reg, err := LoadYAMLFile(path)
	if err != nil {
		t.Fatalf("LoadYAMLFile: %v", err)
	}
	if _, err := reg.GetDevice(context.Background(), "sw1"); err != nil {
		t.Errorf("GetDevice should find offline device by name: %v", err)
	}
	devices, _ := reg.ListDevices(context.Background())
	if len(devices) != 0 {
		t.Errorf("ListDevices should exclude offline device, got %+v", devices)
	}
}

func TestGetDeviceNotFound(t *testing.T) {
	path := writeDeviceFile(t, `
devices:
  - name: sw1
    host: 10.0.0.1
`)
	reg, err := LoadYAMLFile(path)
	if err != nil {
		t.Fatalf("LoadYAMLFile: %v", err)
	}
	if _, err := reg.GetDevice(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for unknown device")
	}
}

func TestLoadYAMLFileMissingFile(t *testing.T) {
	if _, err := LoadYAMLFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error loading nonexistent file")
	}
}
