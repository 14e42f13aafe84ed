package models

import "testing"

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want StudentStatus
	}{
		{"Tidak Aktif", StatusInactive},
		{"Aktif", StatusActive},
		{"", StatusActive},
		{"tidak aktif", StatusActive},
		{"TIDAK AKTIF", StatusActive},
		{"Lulus", StatusActive},
	}
	for _, tt := range tests {
		if got := NormalizeStatus(tt.raw); got != tt.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
