// Package config reads runtime settings from PROPOSAL_* environment
// variables, falling back to defaults for anything unset or invalid.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/alexanderramin/proposal/internal/sheet"
)

// Reference sheet defaults: the historical proposals tab.
const (
	DefaultSheetID  = "1-RpnD_G0mvaqWINletxUERqeQKOJ6K1ZiYyUqKIA6oU"
	DefaultSheetGID = "263876729"
)

type Config struct {
	SheetID        string
	SheetGID       string
	SchemaFormat   sheet.Format
	SchemaFile     string
	FetchTimeoutMs int
	LogLevel       string
	LogFile        string
	EncodeServices bool
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		SheetID:        DefaultSheetID,
		SheetGID:       DefaultSheetGID,
		SchemaFormat:   sheet.FormatCSV,
		FetchTimeoutMs: 15000,
		LogLevel:       "info",
	}
}

// Load reads configuration from the environment.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PROPOSAL_SHEET_ID"); v != "" {
		cfg.SheetID = v
	}
	if v := os.Getenv("PROPOSAL_SHEET_GID"); v != "" {
		cfg.SheetGID = v
	}
	if v := os.Getenv("PROPOSAL_SCHEMA_FORMAT"); v != "" {
		if f, err := sheet.ParseFormat(v); err == nil {
			cfg.SchemaFormat = f
		}
	}
	if v := os.Getenv("PROPOSAL_SCHEMA_FILE"); v != "" {
		cfg.SchemaFile = v
	}
	if v := os.Getenv("PROPOSAL_FETCH_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FetchTimeoutMs = n
		}
	}
	if v := os.Getenv("PROPOSAL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PROPOSAL_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("PROPOSAL_ENCODE_SERVICES"); v != "" {
		cfg.EncodeServices, _ = strconv.ParseBool(v)
	}

	return cfg
}

func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutMs) * time.Millisecond
}

// SheetURL is the export URL of the configured reference tab.
func (c Config) SheetURL() string {
	return sheet.ExportURL(c.SheetID, c.SheetGID, c.SchemaFormat)
}

// Source returns the local file source when SchemaFile is set, otherwise the
// remote export.
func (c Config) Source() sheet.Source {
	if c.SchemaFile != "" {
		return &sheet.FileSource{Path: c.SchemaFile}
	}
	return sheet.NewHTTPSource(c.SheetURL(), c.SchemaFormat, c.FetchTimeout())
}
