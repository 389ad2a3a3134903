package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"

	"github.com/synnergy-labs/chainstate-extractor/pb"
	"github.com/synnergy-labs/chainstate-extractor/protocols/ambient"
)

func poolChangesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pool-changes [fixture.json]",
		Short: "run the protocol-call dispatcher over a block's call-trace fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read fixture: %w", err)
			}
			var trace pb.TraceBlock
			if err := json.Unmarshal(raw, &trace); err != nil {
				return fmt.Errorf("parse fixture: %w", err)
			}

			changes, err := ambient.MapPoolChanges(trace)
			if err != nil {
				return fmt.Errorf("dispatch: %w", err)
			}

			log.WithFields(log.Fields{
				"block":          trace.Number,
				"new_components": len(changes.ProtocolComponents),
				"balance_deltas": len(changes.BalanceDeltas),
			}).Info("extractor: dispatched pool changes")

			out, err := json.MarshalIndent(changes, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal result: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
