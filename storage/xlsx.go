package storage

import (
	"context"
	"fmt"
	"os"
	"sync"

	apperrors "lead-ingest/errors"
	"lead-ingest/models"

	"github.com/xuri/excelize/v2"
)

// XLSXStore appends lead rows to a local workbook file. It exists for
// development and tests, where a Google service account is overkill. A local
// file has no atomic append primitive, so writes are serialized with a mutex.
type XLSXStore struct {
	mu   sync.Mutex
	path string
	tab  string
}

// NewXLSXStore opens or creates the workbook and makes sure the lead tab
// exists with the header row in row 1.
func NewXLSXStore(path, tab string) (*XLSXStore, error) {
	s := &XLSXStore{path: path, tab: tab}
	if err := s.ensureWorkbook(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *XLSXStore) ensureWorkbook() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		f := excelize.NewFile()
		defer f.Close()

		if _, err := f.NewSheet(s.tab); err != nil {
			return fmt.Errorf("creating sheet %s: %w", s.tab, err)
		}
		if s.tab != "Sheet1" {
			if err := f.DeleteSheet("Sheet1"); err != nil {
				return fmt.Errorf("removing default sheet: %w", err)
			}
		}
		if err := s.writeHeader(f); err != nil {
			return err
		}
		if err := f.SaveAs(s.path); err != nil {
			return fmt.Errorf("saving workbook %s: %w", s.path, err)
		}
		return nil
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("opening workbook %s: %w", s.path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(s.tab)
	if err != nil {
		return fmt.Errorf("looking up sheet %s: %w", s.tab, err)
	}
	if idx >= 0 {
		return nil
	}

	if _, err := f.NewSheet(s.tab); err != nil {
		return fmt.Errorf("creating sheet %s: %w", s.tab, err)
	}
	if err := s.writeHeader(f); err != nil {
		return err
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("saving workbook %s: %w", s.path, err)
	}
	return nil
}

func (s *XLSXStore) writeHeader(f *excelize.File) error {
	header := make([]interface{}, len(models.HeaderRow))
	for i, col := range models.HeaderRow {
		header[i] = col
	}
	if err := f.SetSheetRow(s.tab, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}
	return nil
}

// AppendRow writes one lead row after the last populated row and saves the
// workbook. Failures are surfaced as Storage errors.
func (s *XLSXStore) AppendRow(ctx context.Context, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return apperrors.NewStorageError("opening workbook", err)
	}
	defer f.Close()

	rows, err := f.GetRows(s.tab)
	if err != nil {
		return apperrors.NewStorageError("reading workbook rows", err)
	}

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return apperrors.NewStorageError("computing target cell", err)
	}

	values := make([]interface{}, len(row))
	for i, c := range row {
		values[i] = c
	}
	if err := f.SetSheetRow(s.tab, cell, &values); err != nil {
		return apperrors.NewStorageError("writing row", err)
	}

	if err := f.Save(); err != nil {
		return apperrors.NewStorageError("saving workbook", err)
	}

	return nil
}
