package canon

import "testing"

func TestMaskToPrefixLength(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"24", 24},
		{"255.255.255.0", 24},
		{"255.255.0.0", 16},
		{"", DefaultPrefixLength},
		{"garbage", DefaultPrefixLength},
	}
	for _, tt := range tests {
		if got := MaskToPrefixLength(tt.in); got != tt.want {
			t.Errorf("MaskToPrefixLength(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWithPrefix(t *testing.T) {
	// spec.md §8 scenario 2: "24" must produce /24, not /32.
	got := WithPrefix("10.177.30.213", "24")
	if got != "10.177.30.213/24" {
		t.Errorf("got %q, want 10.177.30.213/24", got)
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Data Center 1":   "data-center-1",
		"Zürich-DC":       "zurich-dc",
		"  leading/trail": "leading-trail",
		"already-a-slug":  "already-a-slug",
	}
	for in, want := range tests {
		if got := Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}
