package canon

import "testing"

func TestToLongName(t *testing.T) {
	tests := map[string]string{
		"Gi0/1":                  "GigabitEthernet0/1",
		"gi0/1":                  "GigabitEthernet0/1",
		"Te1/1/1":                "TenGigabitEthernet1/1/1",
		"Hu1/1":                  "HundredGigE1/1",
		"GigabitEthernet0/1":     "GigabitEthernet0/1",
		"Eth1":                   "Ethernet1",
		"Po100":                  "Port-channel100",
		"Vlan30":                 "Vlan30",
	}
	for in, want := range tests {
		if got := ToLongName(in); got != want {
			t.Errorf("ToLongName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLongShortRoundTrip(t *testing.T) {
	// spec.md §8: long(short(name)) == name whenever name is a recognized long form.
	longNames := []string{
		"GigabitEthernet0/1",
		"TenGigabitEthernet1/1/1",
		"HundredGigE1/1",
		"FortyGigabitEthernet1/1",
		"Ethernet1",
		"FastEthernet0/1",
	}
	for _, name := range longNames {
		short := ToShortName(name)
		got := ToLongName(short)
		if got != name {
			t.Errorf("ToLongName(ToShortName(%q)=%q) = %q, want %q", name, short, got, name)
		}
	}
}

func TestGetAliasesIncludesSpacedVariant(t *testing.T) {
	aliases := GetAliases("GigabitEthernet0/1")
	found := false
	for _, a := range aliases {
		if a == "GigabitEthernet 0/1" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected spaced QTech-style alias in %v", aliases)
	}
}

func TestGetAliasesCaseInsensitive(t *testing.T) {
	a1 := GetAliases("gi0/1")
	a2 := GetAliases("Gi0/1")
	if len(a1) != len(a2) {
		t.Errorf("expected same alias count regardless of case: %v vs %v", a1, a2)
	}
}
