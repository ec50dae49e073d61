package security

import (
	"strings"
	"testing"
)

func TestRandomStringRejectsBadArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		length   int
		alphabet string
	}{
		{name: "negative length", length: -1, alphabet: "abc"},
		{name: "empty alphabet", length: 4, alphabet: ""},
		{name: "oversized alphabet", length: 4, alphabet: strings.Repeat("a", 257)},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if _, err := RandomString(test.length, test.alphabet); err == nil {
				t.Fatalf("RandomString(%d, alphabet len %d) expected error", test.length, len(test.alphabet))
			}
		})
	}
}

func TestRandomStringZeroLength(t *testing.T) {
	t.Parallel()

	got, err := RandomString(0, "abc")
	if err != nil {
		t.Fatalf("RandomString(0): %v", err)
	}
	if got != "" {
		t.Fatalf("RandomString(0) = %q, want empty", got)
	}
}

func TestRandomStringStaysInAlphabet(t *testing.T) {
	t.Parallel()

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	got, err := RandomString(64, alphabet)
	if err != nil {
		t.Fatalf("RandomString: %v", err)
	}
	if len(got) != 64 {
		t.Fatalf("len = %d, want 64", len(got))
	}
	for _, char := range got {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("produced %q outside alphabet", char)
		}
	}
}

func TestRandomStringSingleCharacterAlphabet(t *testing.T) {
	t.Parallel()

	got, err := RandomString(8, "X")
	if err != nil {
		t.Fatalf("RandomString: %v", err)
	}
	if got != "XXXXXXXX" {
		t.Fatalf("got %q, want XXXXXXXX", got)
	}
}
