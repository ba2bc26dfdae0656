// Package sheet loads the reference spreadsheet whose header defines the
// feature columns. Sources cover the Google Sheets export endpoint, local
// files and a static frame.
package sheet

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format is the serialization of a sheet.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts "csv" or "xlsx", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unsupported sheet format %q (use csv or xlsx)", s)
}

// ErrEmptySheet indicates the sheet has no header row.
var ErrEmptySheet = errors.New("sheet has no header row")

// ErrSheetTooLarge indicates a remote sheet exceeded the read limit.
var ErrSheetTooLarge = errors.New("sheet too large")

// Frame is a materialized sheet: its header and any data rows.
type Frame struct {
	Columns []string
	Rows    [][]string
}

// Source produces the reference frame.
type Source interface {
	Fetch(ctx context.Context) (*Frame, error)
	Describe() string
}

const exportBase = "https://docs.google.com/spreadsheets/d/"

// ExportURL returns the Google Sheets export URL for one tab of a sheet.
func ExportURL(sheetID, gid string, format Format) string {
	q := url.Values{}
	q.Set("format", string(format))
	q.Set("gid", gid)
	return exportBase + url.PathEscape(sheetID) + "/export?" + q.Encode()
}

// Parse decodes r in the given format.
func Parse(r io.Reader, format Format) (*Frame, error) {
	switch format {
	case FormatXLSX:
		return ParseXLSX(r)
	default:
		return ParseCSV(r)
	}
}

// ParseCSV reads a comma-separated sheet. Rows may have differing widths.
func ParseCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return frameFromRecords(records)
}

// ParseXLSX reads the first worksheet of a workbook.
func ParseXLSX(r io.Reader) (*Frame, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return frameFromRecords(records)
}

func frameFromRecords(records [][]string) (*Frame, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, ErrEmptySheet
	}
	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return &Frame{Columns: header, Rows: records[1:]}, nil
}
