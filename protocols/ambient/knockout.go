package ambient

import "github.com/synnergy-labs/chainstate-extractor/pb"

var knockoutArgs = abiTypes(
	"address", "address", "uint256", "int24", "int24",
	"uint128", "bool", "uint8",
)

// decodeKnockoutUserCmd handles the knockout-liquidity proxy: placing a
// resting knockout order is an inflow on whichever side the order rests,
// matching a range mint on that single side.
func decodeKnockoutUserCmd(call pb.Call) (*callResult, error) {
	values, err := unpackTail(knockoutArgs, call.Input)
	if err != nil {
		return nil, err
	}
	base := mustAddress(values[0])
	quote := mustAddress(values[1])
	poolType := mustUint256(values[2])
	qty := mustUint256(values[5])
	isBid := mustBool(values[6])

	var baseFlow, quoteFlow = zero(), zero()
	if isBid {
		quoteFlow = qty
	} else {
		baseFlow = qty
	}

	return &callResult{
		poolHash:  PoolHash(base, quote, uint32(poolType.Uint64())),
		baseFlow:  baseFlow,
		quoteFlow: quoteFlow,
	}, nil
}
