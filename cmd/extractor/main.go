package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"

	"github.com/synnergy-labs/chainstate-extractor/pkg/config"
)

func main() {
	_ = godotenv.Load() // optional .env with SOURCE_*/GATEWAY_* overrides

	defaultChain, defaultExtractorName := "ethereum", "ambient"
	if cfg, err := config.LoadFromEnv(); err != nil {
		log.WithError(err).Debug("extractor: no config file found, using flag defaults")
	} else {
		if cfg.Extractor.Chain != "" {
			defaultChain = cfg.Extractor.Chain
		}
		if cfg.Extractor.Name != "" {
			defaultExtractorName = cfg.Extractor.Name
		}
	}

	rootCmd := &cobra.Command{
		Use:   "extractor",
		Short: "decode, merge, and aggregate EVM-style block trace fixtures",
	}
	rootCmd.PersistentFlags().String("chain", defaultChain, "chain the fixture was captured on (ethereum|starknet|zksync)")
	rootCmd.PersistentFlags().String("extractor-name", defaultExtractorName, "extractor_name tag stamped onto aggregated output")

	rootCmd.AddCommand(contractChangesCmd())
	rootCmd.AddCommand(entityChangesCmd())
	rootCmd.AddCommand(poolChangesCmd())

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("extractor: command failed")
		os.Exit(1)
	}
}
