package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openvocab/vocab-cli/internal/core/domain"
	"github.com/openvocab/vocab-cli/internal/logger"
)

var convertCmd = &cobra.Command{
	Use:   "convert [vocabulary] [input] [output]",
	Short: "Convert a JSON dump into a vocabulary YAML file",
	Long: `Converts every record of a bulk JSON dump into the named vocabulary.
Records that cannot be mapped are reported on stderr and skipped;
the remaining records are still written, in input order.

Supported vocabularies: affiliations, names, funding, awards, subjects.`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if converter == nil || dumpReader == nil || vocabWriter == nil {
		return errors.New("conversion service not configured")
	}

	vocabType, err := domain.ParseVocabularyType(args[0])
	if err != nil {
		return err
	}

	inputPath, outputPath := args[1], args[2]

	records, err := dumpReader.Read(inputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	report, err := converter.Convert(context.Background(), vocabType, records)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	for _, w := range report.Warnings {
		logger.Warn("record %d: %s", w.Index, w.Message)
	}
	for _, f := range report.Failures {
		if f.RecordID != "" {
			logger.Warn("record %d (%s) skipped: %v", f.Index, f.RecordID, f.Err)
		} else {
			logger.Warn("record %d skipped: %v", f.Index, f.Err)
		}
	}

	if err := vocabWriter.Write(outputPath, report.Records); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	cmd.Printf("Converted %d of %d records to %s.\n", len(report.Records), len(records), outputPath)
	if len(report.Failures) > 0 {
		cmd.Printf("%d records skipped, see warnings above.\n", len(report.Failures))
	}

	return nil
}
