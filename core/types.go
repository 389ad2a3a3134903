// Package core implements the decoder, merge, and aggregation layers of the
// state-change extractor (spec components C1–C6). It is a pure function of
// its input payload: a single block's worth of upstream messages in, a
// single aggregated result out, no I/O, no retries, no cross-block state.
package core

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Address is the 20-byte identifier of a contract or account.
type Address = common.Address

// Hash256 is a 32-byte identifier for transactions, blocks, code, and
// storage values.
type Hash256 = common.Hash

// U256 is an unsigned 256-bit integer used for storage keys/values, native
// balances, and token amounts.
type U256 = uint256.Int

// Bytes is an opaque variable-length byte string (contract code, attribute
// values).
type Bytes = []byte

// Chain enumerates the supported chains. The zero value is Ethereum;
// relying on that default outside of tests is a latent bug (spec §9).
type Chain int

const (
	ChainEthereum Chain = iota
	ChainStarknet
	ChainZkSync
)

func (c Chain) String() string {
	switch c {
	case ChainEthereum:
		return "ethereum"
	case ChainStarknet:
		return "starknet"
	case ChainZkSync:
		return "zksync"
	default:
		return fmt.Sprintf("chain(%d)", int(c))
	}
}

// ChangeType enumerates how an entity was mutated.
type ChangeType int

const (
	ChangeUpdate ChangeType = iota
	ChangeCreation
	ChangeDeletion
)

func (c ChangeType) String() string {
	switch c {
	case ChangeUpdate:
		return "update"
	case ChangeCreation:
		return "creation"
	case ChangeDeletion:
		return "deletion"
	default:
		return fmt.Sprintf("change(%d)", int(c))
	}
}

// ParseChangeType converts an upstream pb.ChangeType ordinal into a
// ChangeType. Encountering the upstream "Unspecified" value is fatal (spec
// §3): it surfaces as a DecodeError rather than silently defaulting.
func ParseChangeType(raw int32) (ChangeType, error) {
	switch raw {
	case 1:
		return ChangeUpdate, nil
	case 2:
		return ChangeCreation, nil
	case 3:
		return ChangeDeletion, nil
	default:
		return 0, NewDecodeError(fmt.Sprintf("unspecified or unknown change type: %d", raw))
	}
}

// addressHex lower-cases a hex-encoded address, matching the default
// account title derivation (spec §3).
func addressHex(a Address) string {
	return strings.ToLower(a.Hex())
}
