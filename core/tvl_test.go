package core

import (
	"math"
	"testing"

	"github.com/synnergy-labs/chainstate-extractor/pb"
)

// S6 — a BalanceChange's 8 little-endian balance bytes decode to the IEEE-754
// double they encode.
func TestTvlChangeFromMessage(t *testing.T) {
	token, err := ParseAddress([]byte{
		0xC0, 0x2a, 0xaA, 0x39, 0xb2, 0x23, 0xFE, 0x8D, 0x0A, 0x0e,
		0x5C, 0x4F, 0x27, 0xeA, 0xD9, 0x08, 0x3C, 0x75, 0x6C, 0xc2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bits := math.Float64bits(3000.0)
	balance := make([]byte, 8)
	for i := 0; i < 8; i++ {
		balance[i] = byte(bits >> (8 * i))
	}

	msg := pb.BalanceChange{Token: token.Bytes(), Balance: balance, ComponentID: []byte("DIANA-THALES")}
	tx := Transaction{Hash: hash(0xAB)}

	got, err := TvlChangeFromMessage(msg, tx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Token != token {
		t.Errorf("expected token %s, got %s", token.Hex(), got.Token.Hex())
	}
	if got.NewBalance != 3000.0 {
		t.Errorf("expected new_balance 3000.0, got %v", got.NewBalance)
	}
	if got.ComponentID != "DIANA-THALES" {
		t.Errorf("expected component_id DIANA-THALES, got %q", got.ComponentID)
	}
	if got.ModifyTx != tx.Hash {
		t.Errorf("expected modify_tx %s, got %s", tx.Hash.Hex(), got.ModifyTx.Hex())
	}
}

func TestTvlChangeFromMessage_RejectsWrongBalanceLength(t *testing.T) {
	msg := pb.BalanceChange{Token: addr(0x01).Bytes(), Balance: []byte{0x01, 0x02}}
	if _, err := TvlChangeFromMessage(msg, Transaction{}); err == nil {
		t.Fatal("expected a decode error for a malformed balance length")
	}
}
