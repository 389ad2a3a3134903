package ambient

import (
	"bytes"

	"github.com/synnergy-labs/chainstate-extractor/core"
	"github.com/synnergy-labs/chainstate-extractor/pb"
)

type routeKey struct {
	address  core.Address
	selector Selector
}

type flowDecoder func(pb.Call) (*callResult, error)

var routes = map[routeKey]flowDecoder{
	{MainContract, SwapFnSig}:                decodeSwap,
	{MainContract, UserCmdFnSig}:             decodeUserCmdFlow,
	{HotProxyContract, UserCmdHotProxyFnSig}:  decodeHotProxySwap,
	{MicroPathsContract, SweepSwapFnSig}:      decodeSweepSwap,
	{MicroPathsContract, MintRangeFnSig}:      decodeMintRange,
	{MicroPathsContract, MintAmbientFnSig}:    decodeMintAmbient,
	{MicroPathsContract, BurnRangeFnSig}:      decodeBurnRange,
	{MicroPathsContract, BurnAmbientFnSig}:    decodeBurnAmbient,
	{WarmPathContract, UserCmdWarmPathFnSig}:  decodeWarmPathUserCmd,
	{KnockoutContract, UserCmdKnockoutFnSig}:  decodeKnockoutUserCmd,
}

func selectorOf(input []byte) (Selector, bool) {
	if len(input) < 4 {
		return Selector{}, false
	}
	var sel Selector
	copy(sel[:], input[:4])
	return sel, true
}

// MapPoolChanges walks a block's call traces in transaction order and
// produces the protocol components newly detected (pool-init) and the
// ordered TVL balance deltas (spec §4.3). Reverted calls are skipped
// entirely. Pool-init detection on the main contract's userCmd entry point
// and the general flow-routing table are independent matches against the
// same call; a call can in principle satisfy both (it never does for
// OpInitPool in practice, since an init call carries no token flow of its
// own, but the two passes are kept separate rather than unified).
func MapPoolChanges(block pb.TraceBlock) (BlockPoolChanges, error) {
	var out BlockPoolChanges

	for _, tx := range block.Transactions {
		for _, call := range tx.Calls {
			if call.StateReverted {
				continue
			}
			sel, ok := selectorOf(call.Input)
			if !ok {
				continue
			}

			if bytes.Equal(call.Address, MainContract.Bytes()) && sel == UserCmdFnSig {
				component, err := decodePoolInit(call)
				if err != nil {
					return BlockPoolChanges{}, err
				}
				if component != nil {
					out.ProtocolComponents = append(out.ProtocolComponents, *component)
				}
			}

			addr, err := core.ParseAddress(call.Address)
			if err != nil {
				return BlockPoolChanges{}, err
			}
			decode, ok := routes[routeKey{addr, sel}]
			if !ok {
				continue
			}
			result, err := decode(call)
			if err != nil {
				return BlockPoolChanges{}, err
			}
			if result == nil {
				continue
			}

			out.BalanceDeltas = append(out.BalanceDeltas, BalanceDelta{
				PoolHash:        result.poolHash,
				BaseTokenDelta:  core.U256ToSignedBytes(result.baseFlow),
				QuoteTokenDelta: core.U256ToSignedBytes(result.quoteFlow),
				Ordinal:         call.Index,
			})
		}
	}

	return out, nil
}
