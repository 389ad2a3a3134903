package ambient

import "github.com/synnergy-labs/chainstate-extractor/pb"

// decodeWarmPathUserCmd handles the warm-path proxy's administrative
// userCmd(bytes) entry point (collateral top-ups, surplus withdrawals).
// None of its opcodes move pool-owned token balances directly, so it never
// produces a flow.
func decodeWarmPathUserCmd(call pb.Call) (*callResult, error) {
	return nil, nil
}
