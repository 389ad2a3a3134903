package core

import (
	"math"

	"github.com/synnergy-labs/chainstate-extractor/pb"
)

// TvlChange is a per-token running TVL observation for a protocol component
// (spec §3). new_balance is reconstructed from 8 little-endian bytes as an
// IEEE-754 double.
type TvlChange struct {
	Token       Address
	NewBalance  float64
	ModifyTx    Hash256
	ComponentID string
}

// TvlChangeFromMessage decodes an upstream pb.BalanceChange.
func TvlChangeFromMessage(msg pb.BalanceChange, tx Transaction) (TvlChange, error) {
	token, err := ParseAddress(msg.Token)
	if err != nil {
		return TvlChange{}, NewDecodeError("balance_change.token: " + err.Error())
	}
	if len(msg.Balance) != 8 {
		return TvlChange{}, NewDecodeError("balance_change.balance must be exactly 8 bytes")
	}
	var bits uint64
	for i := 0; i < 8; i++ {
		bits |= uint64(msg.Balance[i]) << (8 * i)
	}
	return TvlChange{
		Token:       token,
		NewBalance:  math.Float64frombits(bits),
		ModifyTx:    tx.Hash,
		ComponentID: string(msg.ComponentID),
	}, nil
}
