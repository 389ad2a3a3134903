package core

import (
	"strings"
	"testing"

	"github.com/holiman/uint256"
)

func addr(b byte) Address {
	var a Address
	a[19] = b
	return a
}

func hash(b byte) Hash256 {
	var h Hash256
	h[31] = b
	return h
}

func u256(v uint64) U256 {
	return *uint256.NewInt(v)
}

// S1 — two updates to the same account in different transactions merge into
// a single entry: a balance set only by the earlier update survives an
// update that leaves it unset, and slots accumulate.
func TestMergeAccountUpdates_TwoTxSameAccount(t *testing.T) {
	account := addr(0x11)
	blockHash := hash(0x01)

	tx1 := Transaction{Hash: hash(0x10), BlockHash: blockHash, Index: 10}
	tx2 := Transaction{Hash: hash(0x11), BlockHash: blockHash, Index: 11}

	balance := u256(10000)
	first := AccountUpdateWithTx{
		Update: AccountUpdate{Address: account, Balance: &balance, Slots: map[U256]U256{}},
		Tx:     tx1,
	}
	second := AccountUpdateWithTx{
		Update: AccountUpdate{
			Address: account,
			Slots:   map[U256]U256{u256(0): u256(1), u256(1): u256(2)},
		},
		Tx: tx2,
	}

	merged, err := MergeAccountUpdates([]AccountUpdateWithTx{first, second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(merged) != 1 {
		t.Fatalf("expected one merged account, got %d", len(merged))
	}
	got := merged[account]
	if got.Balance == nil || got.Balance.Uint64() != 10000 {
		t.Fatalf("expected balance 10000, got %v", got.Balance)
	}
	slot0, slot1 := got.Slots[u256(0)], got.Slots[u256(1)]
	if len(got.Slots) != 2 || slot0.Uint64() != 1 || slot1.Uint64() != 2 {
		t.Fatalf("unexpected merged slots: %v", got.Slots)
	}
}

// S2 — merging out of transaction-index order must fail with a MergeError
// naming both indices.
func TestAccountUpdateWithTxMerge_RejectsDecreasingIndex(t *testing.T) {
	blockHash := hash(0x01)
	first := AccountUpdateWithTx{
		Update: AccountUpdate{Address: addr(0x01)},
		Tx:     Transaction{Hash: hash(0xA0), BlockHash: blockHash, Index: 10},
	}
	second := AccountUpdateWithTx{
		Update: AccountUpdate{Address: addr(0x01)},
		Tx:     Transaction{Hash: hash(0xA1), BlockHash: blockHash, Index: 1},
	}

	err := first.Merge(second)
	if err == nil {
		t.Fatal("expected a merge error, got nil")
	}
	if !strings.Contains(err.Error(), "10 > 1") {
		t.Fatalf("expected error to mention both indices, got: %v", err)
	}
	if _, ok := err.(*MergeError); !ok {
		t.Fatalf("expected *MergeError, got %T", err)
	}
}

// S3 — merging updates from different blocks must fail, mentioning both
// block hashes.
func TestAccountUpdateWithTxMerge_RejectsCrossBlock(t *testing.T) {
	first := AccountUpdateWithTx{
		Update: AccountUpdate{Address: addr(0x01)},
		Tx:     Transaction{Hash: hash(0xA0), BlockHash: hash(0x00), Index: 1},
	}
	second := AccountUpdateWithTx{
		Update: AccountUpdate{Address: addr(0x01)},
		Tx:     Transaction{Hash: hash(0xA1), BlockHash: hash(0x01), Index: 2},
	}

	err := first.Merge(second)
	if err == nil {
		t.Fatal("expected a merge error, got nil")
	}
	if !strings.Contains(err.Error(), first.Tx.BlockHash.Hex()) || !strings.Contains(err.Error(), second.Tx.BlockHash.Hex()) {
		t.Fatalf("expected error to mention both block hashes, got: %v", err)
	}
}

func TestAccountUpdateMerge_RejectsDifferentAddress(t *testing.T) {
	first := AccountUpdate{Address: addr(0x01)}
	err := first.Merge(AccountUpdate{Address: addr(0x02)})
	if err == nil {
		t.Fatal("expected a merge error for differing addresses")
	}
}
