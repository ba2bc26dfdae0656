package sheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sampleCSV = "\ufeffAkron,Beachwood,OH,ActualBudgetAmount\n1,0,1,2500\n0,1,0,900\n"

func xlsxBytes(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestExportURL(t *testing.T) {
	got := ExportURL("1-RpnD_G0mvaqW", "263876729", FormatCSV)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/1-RpnD_G0mvaqW/export?format=csv&gid=263876729", got)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("ods")
	assert.Error(t, err)
}

func TestParseCSV(t *testing.T) {
	frame, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, []string{"Akron", "Beachwood", "OH", "ActualBudgetAmount"}, frame.Columns)
	assert.Len(t, frame.Rows, 2)
}

func TestParseCSV_Empty(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptySheet)
}

func TestParseXLSX(t *testing.T) {
	data := xlsxBytes(t, [][]any{
		{"Akron", "Cleveland", "ActualBudgetAmount"},
		{1, 0, 1200},
	})
	frame, err := Parse(strings.NewReader(string(data)), FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, []string{"Akron", "Cleveland", "ActualBudgetAmount"}, frame.Columns)
	require.Len(t, frame.Rows, 1)
	assert.Equal(t, "1200", frame.Rows[0][2])
}

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "csv", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL+"/export?format=csv&gid=1", FormatCSV, time.Second)
	src.Client = srv.Client()
	defer srv.Client().CloseIdleConnections()

	frame, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Akron", frame.Columns[0])
	assert.Equal(t, srv.URL+"/export?format=csv&gid=1", src.Describe())
}

func TestHTTPSource_FetchXLSX(t *testing.T) {
	data := xlsxBytes(t, [][]any{{"Wooster", "South"}})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	src := &HTTPSource{URL: srv.URL, Format: FormatXLSX, Client: srv.Client()}
	defer srv.Client().CloseIdleConnections()

	frame, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Wooster", "South"}, frame.Columns)
	assert.Empty(t, frame.Rows)
}

func TestHTTPSource_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	src := &HTTPSource{URL: srv.URL, Format: FormatCSV, Client: srv.Client()}
	defer srv.Client().CloseIdleConnections()

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestHTTPSource_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()
	defer srv.Client().CloseIdleConnections()

	src := &HTTPSource{URL: srv.URL, Format: FormatCSV, Client: srv.Client(), MaxBytes: int64(len(sampleCSV)) - 1}
	_, err := src.Fetch(context.Background())
	require.ErrorIs(t, err, ErrSheetTooLarge)

	src.MaxBytes = int64(len(sampleCSV))
	frame, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, frame.Columns)
}

func TestHTTPSource_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	src := &HTTPSource{URL: srv.URL, Format: FormatCSV, Client: srv.Client(), Timeout: 20 * time.Millisecond}
	defer srv.Client().CloseIdleConnections()

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "ref.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(sampleCSV), 0o644))
	frame, err := (&FileSource{Path: csvPath}).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OH", frame.Columns[2])

	xlsxPath := filepath.Join(dir, "ref.XLSX")
	require.NoError(t, os.WriteFile(xlsxPath, xlsxBytes(t, [][]any{{"MCS"}}), 0o644))
	src := &FileSource{Path: xlsxPath}
	assert.Equal(t, FormatXLSX, src.Format())
	frame, err = src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"MCS"}, frame.Columns)

	_, err = (&FileSource{Path: filepath.Join(dir, "missing.csv")}).Fetch(context.Background())
	assert.Error(t, err)
}

func TestStaticSource(t *testing.T) {
	frame := &Frame{Columns: []string{"Akron"}}
	got, err := (&StaticSource{Frame: frame}).Fetch(context.Background())
	require.NoError(t, err)
	assert.Same(t, frame, got)

	_, err = (&StaticSource{}).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrEmptySheet)
}
