package validation

import (
	"strings"
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"admin@sekolahku.id", true},
		{"Admin@Sekolahku.ID", true},
		{"  admin@sekolahku.id  ", true},
		{"operator.tu@smkn2.sch.id", true},
		{"admin", false},
		{"admin@", false},
		{"@sekolahku.id", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Budi Santoso", true},
		{"Ed", true},
		{"A", false},
		{"   ", false},
		{strings.Repeat("a", 150), true},
		{strings.Repeat("a", 151), false},
	}
	for _, tt := range tests {
		if got := IsValidName(tt.name); got != tt.want {
			t.Errorf("IsValidName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStripTextMarker(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"'0051234567", "0051234567"},
		{"0051234567", "0051234567"},
		{"''0051234567", "'0051234567"},
		{"'", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripTextMarker(tt.in); got != tt.want {
			t.Errorf("StripTextMarker(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNISNAndNIKPatterns(t *testing.T) {
	if !CompiledPatterns.NISN.MatchString("0051234567") {
		t.Error("expected 10-digit NISN to match")
	}
	if CompiledPatterns.NISN.MatchString("005123456") {
		t.Error("expected 9-digit NISN to be rejected")
	}
	if !CompiledPatterns.NIK.MatchString("3273012345678901") {
		t.Error("expected 16-digit NIK to match")
	}
	if CompiledPatterns.NIK.MatchString("32730123456789011") {
		t.Error("expected 17-digit NIK to be rejected")
	}
}
