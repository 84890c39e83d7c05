package importer

import "testing"

func TestFormatPhoneNumber(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		region string
		want   string
	}{
		{"valid indian mobile", "9876543210", "IN", "+919876543210"},
		{"valid us number", "6502530000", "US", "+16502530000"},
		{"already e164", "+919876543210", "IN", "+919876543210"},
		{"invalid stays unchanged", "12345", "IN", "12345"},
		{"garbage stays unchanged", "not-a-number", "IN", "not-a-number"},
		{"empty", "", "IN", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatPhoneNumber(tc.raw, tc.region); got != tc.want {
				t.Fatalf("FormatPhoneNumber(%q, %q) = %q, want %q", tc.raw, tc.region, got, tc.want)
			}
		})
	}
}
