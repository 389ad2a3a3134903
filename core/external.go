package core

import (
	"context"

	"github.com/synnergy-labs/chainstate-extractor/pb"
)

// The following interfaces document, but do not implement, the external
// collaborators named in spec §6. They are out of scope for this module;
// no concrete type in this repository implements them.

// SourceStream is the upstream transport and cursor-management collaborator.
// It is expected to deliver one BlockContractChanges or BlockEntityChanges
// payload per block, in block order, and to own retry/cursor semantics.
type SourceStream interface {
	Next(ctx context.Context) (*pb.BlockContractChanges, *pb.BlockEntityChanges, error)
	Cursor() string
}

// Gateway is the state-persistence collaborator. It receives each
// aggregated, normalized result and owns writing it to a queryable store.
type Gateway interface {
	Write(ctx context.Context, msg NormalizedMessage) error
}

// TokenQuality mirrors the token-enrichment collaborator's quality scale
// (spec §6): 100 = clean ERC-20 with symbol+decimals, 50 = clean but taxed,
// 0 = degraded detection.
type TokenQuality uint8

const (
	TokenQualityDegraded TokenQuality = 0
	TokenQualityTaxed    TokenQuality = 50
	TokenQualityClean    TokenQuality = 100
)

// TokenInfo is the enriched token metadata the token-enrichment
// collaborator returns.
type TokenInfo struct {
	Address  Address
	Symbol   string
	Decimals uint8
	TaxBps   uint16
	Gas      uint64
	Chain    Chain
	Quality  TokenQuality
}

// OwnerFinder locates a plausible holder address for a token, used by the
// token-enrichment collaborator to probe balanceOf/transfer behavior.
type OwnerFinder interface {
	FindOwner(ctx context.Context, token Address) (Address, error)
}

// TokenEnricher is the token-metadata enrichment collaborator.
type TokenEnricher interface {
	GetTokens(ctx context.Context, addresses []Address, finder OwnerFinder) ([]TokenInfo, error)
}
