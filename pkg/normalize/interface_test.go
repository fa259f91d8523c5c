package normalize

import (
	"testing"

	"github.com/meridian-net/netcollector/pkg/parser"
)

func TestSwitchportModeOnDownPort(t *testing.T) {
	// spec.md §8 scenario 4: administrative mode survives an operationally
	// down port.
	rows := []parser.Row{{"interface": "GigabitEthernet0/1", "admin_state": "up", "oper_state": "down"}}
	enrich := EnrichmentInputs{
		Switchport: map[string]SwitchportInfo{
			"gigabitethernet0/1": {AdminMode: "static access", AccessVLAN: 41},
		},
	}
	out := Interfaces(rows, "leaf1", "10.0.0.1", enrich)
	if len(out) != 1 {
		t.Fatalf("expected 1 interface, got %d", len(out))
	}
	if out[0].Mode != "access" || out[0].UntaggedVLAN != 41 {
		t.Errorf("got mode=%q vlan=%d", out[0].Mode, out[0].UntaggedVLAN)
	}
}

func TestTrunkModeResolution(t *testing.T) {
	rows := []parser.Row{
		{"interface": "Gi0/1"},
		{"interface": "Gi0/2"},
	}
	enrich := EnrichmentInputs{
		Switchport: map[string]SwitchportInfo{
			"gigabitethernet0/1": {AdminMode: "trunk", TrunkingVLANs: "10,20,30"},
			"gigabitethernet0/2": {AdminMode: "trunk", TrunkingVLANs: "1-4094"},
		},
	}
	out := Interfaces(rows, "leaf1", "10.0.0.1", enrich)
	if out[0].Mode != "tagged" {
		t.Errorf("expected tagged, got %q", out[0].Mode)
	}
	if len(out[0].TaggedVLANs) != 3 {
		t.Errorf("expected 3 tagged vlans, got %v", out[0].TaggedVLANs)
	}
	if out[1].Mode != "tagged-all" {
		t.Errorf("expected tagged-all, got %q", out[1].Mode)
	}
}

func TestLAGMembershipAliasLookup(t *testing.T) {
	lagRows := []parser.Row{{"member": "Gi0/1", "lag_name": "Port-channel1"}}
	lag := BuildLAGMembership(lagRows)

	rows := []parser.Row{{"interface": "GigabitEthernet0/1"}}
	out := Interfaces(rows, "leaf1", "10.0.0.1", EnrichmentInputs{LAG: lag})
	if out[0].LAG != "Port-channel1" {
		t.Errorf("expected LAG Port-channel1, got %q", out[0].LAG)
	}
}

func TestMediaTypeEnrichmentOverridesOnlyWhenNonEmpty(t *testing.T) {
	rows := []parser.Row{{"interface": "Ethernet1/1"}}
	enrich := EnrichmentInputs{MediaType: map[string]string{"ethernet1/1": "10Gbase-LR"}}
	out := Interfaces(rows, "leaf1", "10.0.0.1", enrich)
	if out[0].MediaType != "10Gbase-LR" {
		t.Errorf("got %q", out[0].MediaType)
	}
}

func TestNormalizersFillHostnameAndManagementIP(t *testing.T) {
	rows := []parser.Row{{"interface": "Gi0/1"}}
	out := Interfaces(rows, "leaf1", "10.0.0.1", EnrichmentInputs{})
	if out[0].Hostname != "leaf1" || out[0].ManagementIP != "10.0.0.1" {
		t.Errorf("got %+v", out[0])
	}
}
