package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "testsmith.dev/pkg/testsmith/internal/model"
)

// recordsFileName is the file kept inside the reports directory.
const recordsFileName = "generations.yaml"

// ReportStore persists generation records between runs so the view
// command can show what was generated and where.
type ReportStore interface {
	SaveRecords(dir m.Path, records []m.GenerationRecord) error
	LoadRecords(dir m.Path) ([]m.GenerationRecord, error)
	AppendRecords(dir m.Path, records []m.GenerationRecord) error
}

// YAMLReportStore stores records as a single YAML document.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveRecords replaces the stored records with the provided slice.
func (s *YAMLReportStore) SaveRecords(dir m.Path, records []m.GenerationRecord) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	return os.WriteFile(filepath.Join(string(dir), recordsFileName), data, 0o600)
}

// LoadRecords returns the stored records; a missing file is an empty list.
func (s *YAMLReportStore) LoadRecords(dir m.Path) ([]m.GenerationRecord, error) {
	data, err := os.ReadFile(filepath.Join(string(dir), recordsFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read records: %w", err)
	}

	var records []m.GenerationRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	return records, nil
}

// AppendRecords loads, extends, and re-saves the stored records.
func (s *YAMLReportStore) AppendRecords(dir m.Path, records []m.GenerationRecord) error {
	existing, err := s.LoadRecords(dir)
	if err != nil {
		return err
	}

	return s.SaveRecords(dir, append(existing, records...))
}
