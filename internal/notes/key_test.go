package notes

import (
	"errors"
	"testing"
)

func TestKeyOf(t *testing.T) {
	tests := []struct {
		index    int
		expected string
	}{
		{0, "C1"},
		{1, "C#1"},
		{11, "B1"},
		{12, "C2"},
		{22, "A#2"},
		{31, "G3"},
		{47, "B4"},
	}

	for _, tc := range tests {
		k, err := KeyOf(tc.index)
		if err != nil {
			t.Fatalf("KeyOf(%d) failed: %v", tc.index, err)
		}
		if k.Name() != tc.expected {
			t.Errorf("KeyOf(%d).Name() = %q, expected %q", tc.index, k.Name(), tc.expected)
		}
		if k.Index() != tc.index {
			t.Errorf("KeyOf(%d).Index() = %d, round trip failed", tc.index, k.Index())
		}
	}
}

func TestKeyOfOutOfRange(t *testing.T) {
	for _, index := range []int{-1, Count, 100} {
		if _, err := KeyOf(index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("KeyOf(%d) error = %v, expected ErrIndexOutOfRange", index, err)
		}
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name     string
		expected int
		wantErr  bool
	}{
		{"C1", 0, false},
		{"c#1", 1, false},
		{"A#3", 34, false},
		{"B4", 47, false},
		{"C5", 0, true},
		{"H2", 0, true},
		{"C", 0, true},
		{"Cx", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, err := ParseKey(tc.name)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseKey(%q) should fail", tc.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKey(%q) failed: %v", tc.name, err)
			}
			if k.Index() != tc.expected {
				t.Errorf("ParseKey(%q).Index() = %d, expected %d", tc.name, k.Index(), tc.expected)
			}
		})
	}
}

func TestAllKeysOrdered(t *testing.T) {
	keys := AllKeys()
	if len(keys) != Count {
		t.Fatalf("AllKeys() returned %d keys, expected %d", len(keys), Count)
	}
	for i, k := range keys {
		if k.Index() != i {
			t.Errorf("AllKeys()[%d] has index %d", i, k.Index())
		}
	}
}

func TestInvalidKey(t *testing.T) {
	k := Key{Octave: 5, Semitone: 0}
	if k.Valid() {
		t.Error("Octave 5 should be invalid")
	}
	if k.Index() != -1 {
		t.Errorf("Invalid key Index() = %d, expected -1", k.Index())
	}
}
