package canon

import "testing"

func Test25GPortWith10GOptic(t *testing.T) {
	// spec.md §8 scenario 3: hardware implies 25G but the transceiver is a
	// 10G LR optic — the optic wins.
	got := GetNetBoxInterfaceType("TwentyFiveGigE1/0/1", "SFP-10GBase-LR", "25g-sfp28", "Twenty Five Gigabit Ethernet", 25000)
	if got != "10gbase-lr" {
		t.Errorf("got %q, want 10gbase-lr", got)
	}
}

func TestNetBoxTypeFallbackChain(t *testing.T) {
	tests := []struct {
		name                                           string
		mediaType, portType, hardwareType              string
		speed                                           int
		want                                            string
	}{
		{"port_type wins over hardware", "unknown", "10gbase-x-sfpp", "", 0, "10gbase-x-sfpp"},
		{"hardware type used when media/port empty", "not present", "", "100gbase", 0, "100gbase-x-qsfp28"},
		{"speed heuristic as last resort", "", "", "", 10000, "10gbase-x-sfpp"},
		{"default when nothing resolves", "", "", "", 0, DefaultInterfaceType},
	}
	for _, tt := range tests {
		got := GetNetBoxInterfaceType("Ethernet1", tt.mediaType, tt.portType, tt.hardwareType, tt.speed)
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNetBoxTypeResolverIsPure(t *testing.T) {
	a := GetNetBoxInterfaceType("Gi0/1", "SFP-10GBase-LR", "", "", 0)
	b := GetNetBoxInterfaceType("Gi0/1", "SFP-10GBase-LR", "", "", 0)
	if a != b {
		t.Errorf("resolver not pure: %q != %q", a, b)
	}
}
