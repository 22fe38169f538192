package starmap

import (
	"errors"
	"math"
	"testing"
)

func TestParseSeed(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"0x1", 1},
		{"1", 1},
		{"0xdeadbeef", 0xdeadbeef},
		{"DEADBEEF", 0xdeadbeef},
		{"0XFF", 0xff},
		{"  0x2a\n", 0x2a},
		{"0xffffffffffffffff", math.MaxUint64},
		{"0", 0},
	}

	for _, tt := range tests {
		got, err := ParseSeed(tt.input)
		if err != nil {
			t.Errorf("ParseSeed(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSeed(%q) = %#x, want %#x", tt.input, got, tt.want)
		}
	}
}

func TestParseSeed_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"0x",
		"   ",
		"xyz",
		"0xg1",
		"-1",
		"+1",
		"1_000",
		"0x10000000000000000", // 65 bits
		"12 34",
	}

	for _, in := range inputs {
		_, err := ParseSeed(in)
		if err == nil {
			t.Errorf("ParseSeed(%q) should fail", in)
			continue
		}
		if !errors.Is(err, ErrMalformedSeed) {
			t.Errorf("ParseSeed(%q) error = %v, want ErrMalformedSeed", in, err)
		}
	}
}

func TestFormatSeed_RoundTrip(t *testing.T) {
	seeds := []uint64{0, 1, 0x1f, 0xdeadbeef, math.MaxUint64}
	for _, seed := range seeds {
		text := FormatSeed(seed)
		got, err := ParseSeed(text)
		if err != nil {
			t.Fatalf("ParseSeed(FormatSeed(%#x)) error: %v", seed, err)
		}
		if got != seed {
			t.Errorf("round trip %#x -> %q -> %#x", seed, text, got)
		}
	}

	if got := FormatSeed(0x1f); got != "0x1f" {
		t.Errorf("FormatSeed(0x1f) = %q, want 0x1f", got)
	}
}
