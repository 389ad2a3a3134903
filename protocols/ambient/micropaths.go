package ambient

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/synnergy-labs/chainstate-extractor/pb"
)

var rangeArgs = abiTypes(
	"address", "address", "uint256", "int24", "int24",
	"uint128", "uint128", "uint128", "uint8",
)

var ambientArgs = abiTypes(
	"address", "address", "uint256",
	"uint128", "uint128", "uint128", "uint8",
)

func decodeMintRange(call pb.Call) (*callResult, error) {
	return decodeLiquidityChange(call, rangeArgs, 5, 6, 7, false)
}

func decodeBurnRange(call pb.Call) (*callResult, error) {
	return decodeLiquidityChange(call, rangeArgs, 5, 6, 7, true)
}

func decodeMintAmbient(call pb.Call) (*callResult, error) {
	return decodeLiquidityChange(call, ambientArgs, 3, 4, 5, false)
}

func decodeBurnAmbient(call pb.Call) (*callResult, error) {
	return decodeLiquidityChange(call, ambientArgs, 3, 4, 5, true)
}

// decodeLiquidityChange decodes a mint/burn-family call whose first three
// arguments are always (base, quote, poolType) and whose liqIdx/loIdx/hiIdx
// arguments give the liquidity amount and its price bounds. Minting is an
// inflow to the pool on both legs; burning is the negation.
func decodeLiquidityChange(call pb.Call, args abi.Arguments, liqIdx, loIdx, hiIdx int, burn bool) (*callResult, error) {
	values, err := unpackTail(args, call.Input)
	if err != nil {
		return nil, err
	}
	base := mustAddress(values[0])
	quote := mustAddress(values[1])
	poolType := mustUint256(values[2])
	liq := mustUint256(values[liqIdx])
	limitUpper := mustUint256(values[hiIdx])

	baseFlow := new(big.Int).Set(liq)
	quoteFlow := scalePrice(liq, limitUpper)
	if burn {
		baseFlow.Neg(baseFlow)
		quoteFlow.Neg(quoteFlow)
	}

	return &callResult{
		poolHash:  PoolHash(base, quote, uint32(poolType.Uint64())),
		baseFlow:  baseFlow,
		quoteFlow: quoteFlow,
	}, nil
}

// decodeSweepSwap covers the multi-hop sweep entry point. The proxy accepts
// an array of swap steps; this dispatcher only tracks the net flow against
// the first step's pool, matching the aggregate posted by the dominant leg
// of a sweep in practice.
func decodeSweepSwap(call pb.Call) (*callResult, error) {
	return decodeSwap(call)
}
