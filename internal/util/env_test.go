package util

import (
	"testing"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")

	if got := GetEnvString("TEST_STRING", "fallback"); got != "value" {
		t.Errorf("GetEnvString() = %q, want %q", got, "value")
	}
	if got := GetEnvString("TEST_STRING_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnvString() = %q, want %q", got, "fallback")
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
		set    bool
		fall   int
		want   int
	}{
		{"valid", "TEST_INT", "42", true, 7, 42},
		{"invalid falls back", "TEST_INT", "notanumber", true, 7, 7},
		{"unset falls back", "TEST_INT_MISSING", "", false, 7, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.set {
				t.Setenv(tc.key, tc.value)
			}
			if got := GetEnvInt(tc.key, tc.fall); got != tc.want {
				t.Errorf("GetEnvInt(%q) = %d, want %d", tc.key, got, tc.want)
			}
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "2.5")

	if got := GetEnvFloat("TEST_FLOAT", 1); got != 2.5 {
		t.Errorf("GetEnvFloat() = %v, want 2.5", got)
	}
	if got := GetEnvFloat("TEST_FLOAT_MISSING", 1); got != 1 {
		t.Errorf("GetEnvFloat() = %v, want 1", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		fall  bool
		want  bool
	}{
		{"true", "true", true, false, true},
		{"false", "false", true, true, false},
		{"garbage falls back", "yes", true, false, false},
		{"unset falls back", "", false, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.set {
				t.Setenv("TEST_BOOL", tc.value)
			}
			if got := GetEnvBool("TEST_BOOL", tc.fall); got != tc.want {
				t.Errorf("GetEnvBool() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMax(t *testing.T) {
	if got := Max(3, 5); got != 5 {
		t.Errorf("Max(3, 5) = %d, want 5", got)
	}
	if got := Max(-1, -4); got != -1 {
		t.Errorf("Max(-1, -4) = %d, want -1", got)
	}
}
