package storage

import (
	"context"
	"path/filepath"
	"testing"

	"lead-ingest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestXLSXStore(t *testing.T) (*XLSXStore, string) {
	path := filepath.Join(t.TempDir(), "leads.xlsx")
	store, err := NewXLSXStore(path, "Leads")
	require.NoError(t, err)
	return store, path
}

func readRows(t *testing.T, path string) [][]string {
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Leads")
	require.NoError(t, err)
	return rows
}

func TestNewXLSXStore_WritesHeaderRow(t *testing.T) {
	_, path := newTestXLSXStore(t)

	rows := readRows(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, models.HeaderRow, rows[0])
}

func TestXLSXStore_AppendRow(t *testing.T) {
	store, path := newTestXLSXStore(t)

	row := []string{
		"2025-08-25T12:00:00Z", "9876543210", "ravi.kumar@example.com",
		"Ravi", "Kumar", "1990-01-01", "ABCDE1234F", "salaried",
		"560001", "50000", "", "", "CM",
	}
	require.NoError(t, store.AppendRow(context.Background(), row))

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	// trailing empty cells are not round-tripped by GetRows
	assert.Equal(t, "2025-08-25T12:00:00Z", rows[1][0])
	assert.Equal(t, "ABCDE1234F", rows[1][6])
	assert.Equal(t, "CM", rows[1][len(rows[1])-1])
}

func TestXLSXStore_AppendPreservesOrder(t *testing.T) {
	store, path := newTestXLSXStore(t)
	ctx := context.Background()

	first := []string{"t1", "1111111111", "a@example.com", "A", "One", "1990-01-01", "AAAAA1111A", "salaried", "110001", "1", "", "", "CM"}
	second := []string{"t2", "2222222222", "b@example.com", "B", "Two", "1991-02-02", "BBBBB2222B", "self-employed", "220002", "2", "", "", "CM"}

	require.NoError(t, store.AppendRow(ctx, first))
	require.NoError(t, store.AppendRow(ctx, second))

	rows := readRows(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, "t1", rows[1][0])
	assert.Equal(t, "t2", rows[2][0])
}

func TestNewXLSXStore_ReopensExistingWorkbook(t *testing.T) {
	store, path := newTestXLSXStore(t)
	ctx := context.Background()

	row := []string{"t1", "1111111111", "a@example.com", "A", "One", "1990-01-01", "AAAAA1111A", "salaried", "110001", "1", "", "", "CM"}
	require.NoError(t, store.AppendRow(ctx, row))

	// Reopening must not rewrite the header or lose existing rows
	reopened, err := NewXLSXStore(path, "Leads")
	require.NoError(t, err)
	require.NoError(t, reopened.AppendRow(ctx, row))

	rows := readRows(t, path)
	assert.Len(t, rows, 3)
}
