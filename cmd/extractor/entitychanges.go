package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"

	"github.com/synnergy-labs/chainstate-extractor/core"
	"github.com/synnergy-labs/chainstate-extractor/pb"
)

func entityChangesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entity-changes [fixture.json]",
		Short: "decode and aggregate a block's protocol-entity changes fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chainName, _ := cmd.Flags().GetString("chain")
			extractorName, _ := cmd.Flags().GetString("extractor-name")
			chain, err := parseChain(chainName)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read fixture: %w", err)
			}
			var msg pb.BlockEntityChanges
			if err := json.Unmarshal(raw, &msg); err != nil {
				return fmt.Errorf("parse fixture: %w", err)
			}

			changes, err := core.BlockEntityChangesFromMessage(&msg, chain, extractorName)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			result, err := changes.AggregateUpdates()
			if err != nil {
				return fmt.Errorf("aggregate: %w", err)
			}

			log.WithFields(log.Fields{
				"block":      result.Block.Number,
				"components": len(result.StateUpdates),
			}).Info("extractor: aggregated entity changes")

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal result: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
