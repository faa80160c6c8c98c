// Package yamlvocab implements the VocabularyWriter port. Output records
// are serialised as a YAML sequence matching the target vocabulary schema.
package yamlvocab

import (
	"bufio"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openvocab/vocab-cli/internal/core/domain"
	"github.com/openvocab/vocab-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.VocabularyWriter = (*Writer)(nil)

// Writer serialises output records to a YAML file.
type Writer struct{}

// New creates a new YAML vocabulary writer.
func New() *Writer {
	return &Writer{}
}

// Write serialises records to the file at path, preserving order.
// A UTF-8 BOM is written first so downstream tooling detects the encoding.
func (w *Writer) Write(path string, records []domain.OutputRecord) error {
	if records == nil {
		records = []domain.OutputRecord{}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	bw := bufio.NewWriter(f)
	if _, err := bw.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		f.Close()
		return fmt.Errorf("write BOM: %w", err)
	}

	enc := yaml.NewEncoder(bw)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		enc.Close()
		f.Close()
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close encoder: %w", err)
	}

	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush output: %w", err)
	}
	return f.Close()
}
