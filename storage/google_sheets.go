package storage

import (
	"context"
	"fmt"

	apperrors "lead-ingest/errors"
	"lead-ingest/logger"
	"lead-ingest/models"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleSheetsStore appends lead rows to a worksheet tab in a Google
// spreadsheet. The client is built once at startup and shared across
// requests; each append is a single atomic Values.Append call.
type GoogleSheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
	tab           string
}

// NewGoogleSheetsStore authenticates with the service-account credentials,
// resolves (or creates) the spreadsheet and makes sure the lead tab exists
// with the header row in row 1.
func NewGoogleSheetsStore(ctx context.Context, credJSON []byte, spreadsheetID, title, tab string) (*GoogleSheetsStore, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}

	s := &GoogleSheetsStore{svc: svc, spreadsheetID: spreadsheetID, tab: tab}

	if err := s.ensureSpreadsheet(ctx, title); err != nil {
		return nil, err
	}
	if err := s.ensureTab(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// SpreadsheetID returns the resolved spreadsheet id, which differs from the
// configured one when a new spreadsheet was created at startup.
func (s *GoogleSheetsStore) SpreadsheetID() string {
	return s.spreadsheetID
}

// ensureSpreadsheet opens the configured spreadsheet, or creates a new one
// when the id is missing or unresolvable and logs the new id so the operator
// can save it back to GOOGLE_SHEET_ID.
func (s *GoogleSheetsStore) ensureSpreadsheet(ctx context.Context, title string) error {
	if s.spreadsheetID != "" {
		if _, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do(); err == nil {
			return nil
		} else {
			logger.Warn("Spreadsheet %s not reachable (%v), creating a new one", s.spreadsheetID, err)
		}
	}

	created, err := s.svc.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("creating spreadsheet: %w", err)
	}

	s.spreadsheetID = created.SpreadsheetId
	logger.Warn("New spreadsheet created: %s. Set GOOGLE_SHEET_ID to this value so future deploys reuse it", s.spreadsheetID)
	return nil
}

// ensureTab makes sure the lead tab exists with the header row written once
// in row 1 and frozen.
func (s *GoogleSheetsStore) ensureTab(ctx context.Context) error {
	sh, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("reading spreadsheet %s: %w", s.spreadsheetID, err)
	}

	for _, sheet := range sh.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == s.tab {
			return nil
		}
	}

	_, err = s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{
						Title: s.tab,
						GridProperties: &sheets.GridProperties{
							ColumnCount:    int64(len(models.HeaderRow) + 5),
							FrozenRowCount: 1,
						},
					},
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("creating worksheet %s: %w", s.tab, err)
	}

	header := make([]interface{}, len(models.HeaderRow))
	for i, col := range models.HeaderRow {
		header[i] = col
	}
	_, err = s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.tab, &sheets.ValueRange{
		Values: [][]interface{}{header},
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("writing header row to %s: %w", s.tab, err)
	}

	logger.Info("Worksheet %s created with header row", s.tab)
	return nil
}

// AppendRow appends one lead row to the tab. Failures are surfaced as
// Storage errors; there is no retry and no replay queue.
func (s *GoogleSheetsStore) AppendRow(ctx context.Context, row []string) error {
	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}

	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.tab, &sheets.ValueRange{
		Values: [][]interface{}{values},
	}).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return apperrors.NewStorageError("appending row to sheet", err)
	}

	return nil
}
