package crypto

import (
	"errors"
	"strings"
	"testing"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestKeyFromHex(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid", testKey, false},
		{"short", "0011", true},
		{"not hex", strings.Repeat("z", 64), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := KeyFromHex(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("KeyFromHex() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if _, err := KeyFromHex("0011"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("short key error = %v, want ErrInvalidKey", err)
	}
}

func TestSealer_RoundTrip(t *testing.T) {
	s, err := NewSealer(testKey)
	if err != nil {
		t.Fatalf("NewSealer() error = %v", err)
	}

	doc := []byte(`{"patients":[],"records":[]}`)
	sealed, err := s.Seal(doc)
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	if !IsSealed(sealed) {
		t.Fatalf("Seal() output missing prefix: %s", sealed)
	}
	if strings.Contains(string(sealed), "patients") {
		t.Fatalf("Seal() leaked plaintext")
	}

	opened, err := s.Open(sealed)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if string(opened) != string(doc) {
		t.Errorf("Open() = %s, want %s", opened, doc)
	}
}

func TestSealer_OpenPlaintextPassThrough(t *testing.T) {
	s, _ := NewSealer(testKey)

	plain := []byte(`{"patients":[]}`)
	got, err := s.Open(plain)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if string(got) != string(plain) {
		t.Errorf("Open() = %s, want passthrough", got)
	}
}

func TestSealer_WrongKey(t *testing.T) {
	a, _ := NewSealer(testKey)
	b, _ := NewSealer(strings.Repeat("ab", 32))

	sealed, err := a.Seal([]byte("segredo"))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	if _, err := b.Open(sealed); err == nil {
		t.Error("Open() with another key should fail")
	}
}
