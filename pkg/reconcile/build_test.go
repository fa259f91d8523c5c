package reconcile

import (
	"testing"

	"github.com/meridian-net/netcollector/pkg/collector"
	"github.com/meridian-net/netcollector/pkg/fieldpolicy"
	"github.com/meridian-net/netcollector/pkg/model"
)

func TestBuildInputMapsInterfacesAndDerivesVLANsAndIPs(t *testing.T) {
	device := model.Device{Name: "sw1", Role: "access", Site: "dc1", Platform: model.PlatformCiscoIOSXE}
	res := collector.Result{
		Info: model.DeviceInfo{Manufacturer: "Cisco", Model: "C9300", Serial: "FOC1234"},
		Interfaces: []model.Interface{
			{
				Name:         "GigabitEthernet1/0/1",
				AdminStatus:  "up",
				IPAddress:    "10.0.0.1",
				PrefixLength: 24,
				Mode:         model.ModeTagged,
				TaggedVLANs:  []int{10, 20},
				UntaggedVLAN: 1,
			},
		},
		Inventory: []model.InventoryItem{
			{Name: "Slot 0", Manufacturer: "Cisco", PID: "C9300-NM-8X", Serial: "FOC9999"},
		},
	}
	policy := fieldpolicy.NewDefaultTable()

	in := BuildInput(device, res, policy)

	if in.Device.Name != "sw1" || in.Device.Manufacturer != "Cisco" || in.Device.Model != "C9300" {
		t.Fatalf("device desired not mapped: %+v", in.Device)
	}
	if len(in.Interfaces) != 1 || in.Interfaces[0].Name != "GigabitEthernet1/0/1" || !in.Interfaces[0].Enabled {
		t.Fatalf("interface desired not mapped: %+v", in.Interfaces)
	}
	if len(in.IPAddresses) != 1 || in.IPAddresses[0].Address != "10.0.0.1/24" || in.IPAddresses[0].Interface != "GigabitEthernet1/0/1" {
		t.Fatalf("ip address desired not mapped: %+v", in.IPAddresses)
	}
	wantVIDs := map[int]bool{10: true, 20: true, 1: true}
	if len(in.VLANs) != len(wantVIDs) {
		t.Fatalf("expected %d derived vlans, got %d: %+v", len(wantVIDs), len(in.VLANs), in.VLANs)
	}
	for _, v := range in.VLANs {
		if !wantVIDs[v.VID] {
			t.Errorf("unexpected vlan %d", v.VID)
		}
		if v.Site != "dc1" {
			t.Errorf("vlan %d site = %q, want dc1", v.VID, v.Site)
		}
	}
	if len(in.Inventory) != 1 || in.Inventory[0].PartID != "C9300-NM-8X" {
		t.Fatalf("inventory desired not mapped: %+v", in.Inventory)
	}
}

func TestBuildInputSkipsDisabledFields(t *testing.T) {
	device := model.Device{Name: "sw1"}
	res := collector.Result{
		Interfaces: []model.Interface{{Name: "Gi0/1"}},
	}
	policy := fieldpolicy.NewDefaultTable()
	policy.Set(fieldpolicy.Policy{EntityType: "interface", Field: "name", Enabled: false})

	in := BuildInput(device, res, policy)

	if len(in.Interfaces) != 0 {
		t.Fatalf("expected no interfaces when interface.name disabled, got %+v", in.Interfaces)
	}
}

func TestIPWithPrefixDefaultsToHost(t *testing.T) {
	if got := ipWithPrefix("10.0.0.1", 0); got != "10.0.0.1/32" {
		t.Errorf("ipWithPrefix(no prefix) = %q, want 10.0.0.1/32", got)
	}
	if got := ipWithPrefix("10.0.0.1", 24); got != "10.0.0.1/24" {
		t.Errorf("ipWithPrefix(24) = %q, want 10.0.0.1/24", got)
	}
}

func TestBuildCablesResolvesRemoteInterfaceIDWithinFleet(t *testing.T) {
	neighbors := []model.Neighbor{
		{LocalInterface: "GigabitEthernet1/0/1", RemoteHostname: "sw2", RemotePortID: "Gi0/2"},
		{LocalInterface: "GigabitEthernet1/0/2", RemoteHostname: "unmanaged-ap", RemotePortID: "eth0"},
	}
	fleetIfaceIDs := map[string]map[string]int{
		"sw2": {"gigabitethernet0/2": 42},
	}
	inScope := func(hostname string) bool { return hostname == "sw2" }

	cables := BuildCables(neighbors, fleetIfaceIDs, inScope)

	if len(cables) != 2 {
		t.Fatalf("expected 2 cable candidates, got %d", len(cables))
	}
	if cables[0].RemoteInterfaceID != 42 || !cables[0].OtherDeviceInScope {
		t.Errorf("cable to sw2 not resolved: %+v", cables[0])
	}
	if cables[1].RemoteInterfaceID != 0 || cables[1].OtherDeviceInScope {
		t.Errorf("cable to out-of-scope neighbor should have unresolved ID and be out of scope: %+v", cables[1])
	}
}

func TestBuildCablesSkipsIncompleteNeighbors(t *testing.T) {
	neighbors := []model.Neighbor{
		{LocalInterface: "", RemoteHostname: "sw2"},
		{LocalInterface: "Gi0/1", RemoteHostname: ""},
	}
	cables := BuildCables(neighbors, nil, func(string) bool { return true })
	if len(cables) != 0 {
		t.Fatalf("expected no cable candidates from incomplete neighbors, got %+v", cables)
	}
}
