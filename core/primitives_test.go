package core

import (
	"math/big"
	"testing"
)

// Invariant (spec §8 invariant 5): U256ToBytes/ParseU256BE round-trip.
func TestU256RoundTrip(t *testing.T) {
	want := u256(123456789)
	b := U256ToBytes(want)
	got, err := ParseU256BE(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %s, want %s", got.Dec(), want.Dec())
	}
}

func TestParseAddress_RejectsOversize(t *testing.T) {
	if _, err := ParseAddress(make([]byte, 21)); err == nil {
		t.Fatal("expected a decode error for a 21-byte address")
	}
}

func TestParseHash256_LeftPads(t *testing.T) {
	got, err := ParseHash256([]byte{0x01})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := hash(0x01)
	if got != want {
		t.Fatalf("expected left-padded hash %s, got %s", want.Hex(), got.Hex())
	}
}

func TestSignedBytesRoundTrip(t *testing.T) {
	for _, want := range []int64{0, 1, -1, 1000, -1000, 1 << 40, -(1 << 40)} {
		flow := big.NewInt(want)
		le := U256ToSignedBytes(flow)
		if len(le) != 32 {
			t.Fatalf("expected 32 bytes, got %d", len(le))
		}
		got := SignedBytesToU256(le)
		if got.Cmp(flow) != 0 {
			t.Errorf("round trip mismatch for %d: got %s", want, got.String())
		}
	}
}

func TestParseChangeType_RejectsUnspecified(t *testing.T) {
	if _, err := ParseChangeType(0); err == nil {
		t.Fatal("expected an error for the unspecified change type")
	}
	for raw, want := range map[int32]ChangeType{1: ChangeUpdate, 2: ChangeCreation, 3: ChangeDeletion} {
		got, err := ParseChangeType(raw)
		if err != nil {
			t.Fatalf("unexpected error for %d: %v", raw, err)
		}
		if got != want {
			t.Errorf("raw %d: expected %s, got %s", raw, want, got)
		}
	}
}
