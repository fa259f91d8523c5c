package canon

import "testing"

func TestNormalizeMACRaw(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aa:bb:cc:dd:ee:ff", "aabbccddeeff"},
		{"AA:BB:CC:DD:EE:FF", "aabbccddeeff"},
		{"aabb.ccdd.eeff", "aabbccddeeff"},
		{"aa-bb-cc-dd-ee-ff", "aabbccddeeff"},
		{"aa bb cc dd ee ff", "aabbccddeeff"},
		{"not-a-mac", ""},
		{"aabbccddeeffaa", ""}, // too long
		{"aabbccddee", ""},     // too short
		{"zzbbccddeeff", ""},   // non-hex
	}
	for _, tt := range tests {
		if got := NormalizeMACRaw(tt.in); got != tt.want {
			t.Errorf("NormalizeMACRaw(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeMACFormats(t *testing.T) {
	raw := "aabbccddeeff"
	tests := []struct {
		format MACFormat
		want   string
	}{
		{MACRaw, "aabbccddeeff"},
		{MACIEEE, "aa:bb:cc:dd:ee:ff"},
		{MACNetbox, "AA:BB:CC:DD:EE:FF"},
		{MACCisco, "aabb.ccdd.eeff"},
		{MACUnix, "aa-bb-cc-dd-ee-ff"},
	}
	for _, tt := range tests {
		if got := NormalizeMAC("AA:BB:CC:DD:EE:FF", tt.format); got != tt.want {
			t.Errorf("NormalizeMAC(format=%s) = %q, want %q", tt.format, got, tt.want)
		}
		_ = raw
	}
}

func TestNormalizeMACRoundTrip(t *testing.T) {
	formats := []MACFormat{MACRaw, MACIEEE, MACNetbox, MACCisco, MACUnix}
	x := "00:1a:2b:3c:4d:5e"
	want := NormalizeMACRaw(x)
	for _, f := range formats {
		formatted := NormalizeMAC(x, f)
		if got := NormalizeMACRaw(formatted); got != want {
			t.Errorf("round trip through format %s: got %q, want %q", f, got, want)
		}
	}
}

func TestIsValidMAC(t *testing.T) {
	if !IsValidMAC("aa:bb:cc:dd:ee:ff") {
		t.Error("expected valid MAC")
	}
	if IsValidMAC("garbage") {
		t.Error("expected invalid MAC")
	}
}
