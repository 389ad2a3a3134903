package core

import (
	"time"

	"github.com/synnergy-labs/chainstate-extractor/pb"
)

// Block is the immutable, decoded block header (spec §3). It is built once
// during decoding of a single block payload and consumed for the duration of
// that block's aggregation pass.
type Block struct {
	Number     uint64
	Hash       Hash256
	ParentHash Hash256
	Chain      Chain
	Ts         time.Time
}

// BlockFromMessage decodes an upstream pb.Block into a Block. chain is
// supplied by the caller, as the upstream message carries no chain tag of
// its own.
func BlockFromMessage(msg *pb.Block, chain Chain) (Block, error) {
	if msg == nil {
		return Block{}, ErrEmpty
	}
	hash, err := ParseHash256(msg.Hash)
	if err != nil {
		return Block{}, NewDecodeError("block.hash: " + err.Error())
	}
	parentHash, err := ParseHash256(msg.ParentHash)
	if err != nil {
		return Block{}, NewDecodeError("block.parent_hash: " + err.Error())
	}
	ts, err := secondsToTime(msg.Ts)
	if err != nil {
		return Block{}, err
	}
	return Block{
		Number:     msg.Number,
		Hash:       hash,
		ParentHash: parentHash,
		Chain:      chain,
		Ts:         ts,
	}, nil
}

func secondsToTime(seconds uint64) (time.Time, error) {
	if seconds > 1<<62 {
		return time.Time{}, NewDecodeError("timestamp overflow")
	}
	return time.Unix(int64(seconds), 0).UTC(), nil
}
