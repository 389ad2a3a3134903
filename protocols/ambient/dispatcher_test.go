package ambient

import (
	"math/big"
	"testing"

	"github.com/synnergy-labs/chainstate-extractor/pb"
)

func TestMapPoolChanges_SkipsRevertedCalls(t *testing.T) {
	base := testAddress(0x01)
	quote := testAddress(0x02)
	input := buildSwapInput(t, base, quote, big.NewInt(1), true, true,
		big.NewInt(1000), 0, new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(0), 0)

	block := pb.TraceBlock{
		Transactions: []pb.TraceTransaction{
			{
				Calls: []pb.Call{
					{Address: MainContract.Bytes(), Input: input, StateReverted: true, Index: 1},
					{Address: MainContract.Bytes(), Input: input, StateReverted: false, Index: 2},
				},
			},
		},
	}

	out, err := MapPoolChanges(block)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.BalanceDeltas) != 1 {
		t.Fatalf("expected exactly one balance delta (the non-reverted call), got %d", len(out.BalanceDeltas))
	}
	if out.BalanceDeltas[0].Ordinal != 2 {
		t.Fatalf("expected ordinal to be the call's block-wide index (2), got %d", out.BalanceDeltas[0].Ordinal)
	}
}

func TestMapPoolChanges_PoolInitAndFlowRoutingAreIndependent(t *testing.T) {
	base := testAddress(0x07)
	quote := testAddress(0x08)
	packed, err := poolInitArgs.Pack(base, quote, big.NewInt(3), new(big.Int).Lsh(big.NewInt(1), 64))
	if err != nil {
		t.Fatalf("pack pool init args: %v", err)
	}
	initInput := append(append([]byte{}, UserCmdFnSig[:]...), append([]byte{OpInitPool}, packed...)...)

	swapInput := buildSwapInput(t, base, quote, big.NewInt(3), true, true,
		big.NewInt(1000), 0, new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(0), 0)

	block := pb.TraceBlock{
		Transactions: []pb.TraceTransaction{
			{
				Calls: []pb.Call{
					{Address: MainContract.Bytes(), Input: initInput, Index: 1},
					{Address: MainContract.Bytes(), Input: swapInput, Index: 2},
				},
			},
		},
	}

	out, err := MapPoolChanges(block)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.ProtocolComponents) != 1 {
		t.Fatalf("expected exactly one new protocol component, got %d", len(out.ProtocolComponents))
	}
	if len(out.BalanceDeltas) != 1 {
		t.Fatalf("expected exactly one balance delta (from the swap, not the init call), got %d", len(out.BalanceDeltas))
	}
}

func TestMapPoolChanges_IgnoresCallsShorterThanASelector(t *testing.T) {
	block := pb.TraceBlock{
		Transactions: []pb.TraceTransaction{
			{Calls: []pb.Call{{Address: MainContract.Bytes(), Input: []byte{0x01}, Index: 1}}},
		},
	}
	out, err := MapPoolChanges(block)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.BalanceDeltas) != 0 || len(out.ProtocolComponents) != 0 {
		t.Fatal("expected no output for a call with too little input to carry a selector")
	}
}
