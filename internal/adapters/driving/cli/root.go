// Package cli wires the cobra command tree to the conversion core.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openvocab/vocab-cli/internal/adapters/driven/config/file"
	"github.com/openvocab/vocab-cli/internal/adapters/driven/jsondump"
	"github.com/openvocab/vocab-cli/internal/adapters/driven/yamlvocab"
	"github.com/openvocab/vocab-cli/internal/core/ports/driven"
	"github.com/openvocab/vocab-cli/internal/core/ports/driving"
	"github.com/openvocab/vocab-cli/internal/core/services"
	"github.com/openvocab/vocab-cli/internal/logger"
	"github.com/openvocab/vocab-cli/internal/mappers"
)

var version = "0.1.0"

var (
	configPath string
	verbose    bool
)

// Services used by the commands. Tests replace these with fakes;
// wireServices fills in whatever is still nil.
var (
	converter   driving.Converter
	dumpReader  driven.DumpReader
	vocabWriter driven.VocabularyWriter
)

var rootCmd = &cobra.Command{
	Use:   "vocab-cli",
	Short: "Convert research-organisation dumps into controlled vocabularies",
	Long: `vocab-cli converts bulk JSON dumps of research-organisation entities
(affiliations, names, funding bodies, awards, subjects) into YAML
vocabulary files ready for repository import.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return wireServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML configuration file")
}

// wireServices constructs the default adapters for any service slot a
// test has not already filled.
func wireServices() error {
	if converter != nil && dumpReader != nil && vocabWriter != nil {
		return nil
	}

	store, err := file.NewStore(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	defaults := store.Defaults()

	if converter == nil {
		registry := mappers.NewRegistry(defaults)
		converter = services.NewBatchConverter(registry, defaults.Workers)
	}
	if dumpReader == nil {
		dumpReader = jsondump.New()
	}
	if vocabWriter == nil {
		vocabWriter = yamlvocab.New()
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
