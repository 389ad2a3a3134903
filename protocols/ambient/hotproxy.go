package ambient

import "github.com/synnergy-labs/chainstate-extractor/pb"

// decodeHotProxySwap is the hot-path proxy's mirror of decodeSwap. The
// proxy forwards the identical argument layout to the main contract, so
// flow derivation is shared.
func decodeHotProxySwap(call pb.Call) (*callResult, error) {
	return decodeSwap(call)
}
