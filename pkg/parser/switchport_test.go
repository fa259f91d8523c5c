package parser

import "testing"

func TestParseSwitchportModesRegex(t *testing.T) {
	output := `Name: Gi0/1
Switchport: Enabled
Administrative Mode: static access
Operational Mode: down
Access Mode VLAN: 41 (VLAN0041)
Trunking Native Mode VLAN: 1 (default)

Name: Gi0/2
Administrative Mode: trunk
Operational Mode: trunk
Trunking VLANs Enabled: 10,20,30
`
	rows := parseSwitchportModesRegex(output)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %+v", len(rows), rows)
	}
	if rows[0]["admin_mode"] != "static access" || rows[0]["access_vlan"] != "41" {
		t.Errorf("row0 = %+v", rows[0])
	}
	if rows[1]["trunking_vlans"] != "10,20,30" {
		t.Errorf("row1 = %+v", rows[1])
	}
}
