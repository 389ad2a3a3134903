package core

import (
	"testing"
	"time"

	"github.com/synnergy-labs/chainstate-extractor/pb"
)

func TestBlockFromMessage(t *testing.T) {
	msg := &pb.Block{Number: 42, Hash: ptr32(0x01), ParentHash: ptr32(0x00), Ts: 1700000000}
	block, err := BlockFromMessage(msg, ChainStarknet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if block.Number != 42 || block.Chain != ChainStarknet {
		t.Fatalf("unexpected block: %+v", block)
	}
	if block.Ts.Unix() != 1700000000 || block.Ts.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp from seconds, got %v", block.Ts)
	}
}

func TestBlockFromMessage_RejectsNil(t *testing.T) {
	if _, err := BlockFromMessage(nil, ChainEthereum); err != ErrEmpty {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestTransactionFromMessage_ContractCreationHasNoTo(t *testing.T) {
	msg := pb.Transaction{Hash: ptr32(0x01), From: ptr20(0x0A), To: nil, Index: 0}
	tx, err := TransactionFromMessage(msg, hash(0x01))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.To != nil {
		t.Fatalf("expected nil To for a contract-creation transaction, got %v", tx.To)
	}
}
