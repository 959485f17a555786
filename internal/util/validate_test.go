package util

import (
	"errors"
	"strings"
	"testing"

	"nathanbeddoewebdev/hue/internal/palette/domain"
)

func TestValidateHex_Valid(t *testing.T) {
	valid := []string{
		"#000000",
		"#ffffff",
		"#FFFFFF",
		"#aBc123",
		"#0f0f0f",
	}
	for _, hex := range valid {
		t.Run(hex, func(t *testing.T) {
			if err := ValidateHex(hex); err != nil {
				t.Errorf("expected %q to be valid, got error: %v", hex, err)
			}
		})
	}
}

func TestValidateHex_Invalid(t *testing.T) {
	tests := []struct {
		hex     string
		wantMsg string
	}{
		{"", "must be 7 characters"},
		{"#fff", "must be 7 characters"},
		{"#1234567", "must be 7 characters"},
		{"1234567", "must start with '#'"},
		{"#12345g", "non-hexadecimal"},
		{"#zzzzzz", "non-hexadecimal"},
		{"# 12345", "non-hexadecimal"},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			err := ValidateHex(tt.hex)
			if err == nil {
				t.Fatalf("expected %q to be invalid, got nil", tt.hex)
			}
			if !errors.Is(err, domain.ErrInvalidHex) {
				t.Errorf("expected ErrInvalidHex, got %v", err)
			}
			if got := err.Error(); !strings.Contains(got, tt.wantMsg) {
				t.Errorf("expected error containing %q, got %q", tt.wantMsg, got)
			}
		})
	}
}

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"ABCDEF", "#abcdef"},
		{"  #AbCdEf ", "#abcdef"},
		{"#123456", "#123456"},
		{"zz", "#zz"},
		{"0af", "#00aaff"},
		{"#FA0", "#ffaa00"},
		{"#0ag", "#0ag"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeHex(tt.in); got != tt.want {
				t.Errorf("NormalizeHex(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
