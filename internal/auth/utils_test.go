package auth

import (
	"encoding/base64"
	"testing"
)

func TestGenerateRandString(t *testing.T) {
	value := GenerateRandString(32)
	if value == "" {
		t.Fatal("expected a non-empty value")
	}

	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		t.Fatalf("expected url-safe base64, got %q: %v", value, err)
	}

	if len(decoded) != 32 {
		t.Errorf("expected 32 bytes of entropy, got %d", len(decoded))
	}
}

func TestGenerateRandString_ShouldNotRepeat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		value := GenerateRandString(32)
		if seen[value] {
			t.Fatalf("generated a duplicate value: %s", value)
		}
		seen[value] = true
	}
}

func TestGenerateRandString_DefaultsByteCount(t *testing.T) {
	value := GenerateRandString(0)

	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	if len(decoded) != 32 {
		t.Errorf("expected the default of 32 bytes, got %d", len(decoded))
	}
}
