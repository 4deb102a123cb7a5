package cfg

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// HTTP server
	Port string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`

	// Google Sheets access
	SpreadsheetID string `long:"gsheet-id" env:"GSHEET_ID" description:"Spreadsheet (workbook) identifier (required)"`
	ClientEmail   string `long:"client-email" env:"GOOGLE_SHEETS_CLIENT_EMAIL" description:"Service account email (required)"`
	PrivateKey    string `long:"private-key" env:"GOOGLE_SHEETS_PRIVATE_KEY" description:"Service account private key, newline-escaped (required)"`

	// Sheet identifiers
	IssuesGID     string `long:"gid-issues" env:"GID_ISSUES" description:"Sheet GID for the issues category (required)"`
	ProtestsGID   string `long:"gid-protests" env:"GID_PROTEST" description:"Sheet GID for the protests category (required)"`
	PressGID      string `long:"gid-press" env:"GID_PRESS" description:"Sheet GID for the press meets category (optional)"`
	ConferenceGID string `long:"gid-conference" env:"GID_CONFERENCE" description:"Sheet GID for the conferences category (optional)"`

	// Application behavior
	CacheTTL  int    `long:"cache-ttl" env:"CACHE_TTL" default:"60" description:"Sheet cache TTL in seconds"`
	SchemaDir string `long:"schema-dir" env:"SCHEMA_DIR" description:"Directory with per-category header schema overrides (optional)"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for date calculations (e.g., UTC, Asia/Kolkata)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:          raw.Port,
		SpreadsheetID: raw.SpreadsheetID,
		ClientEmail:   raw.ClientEmail,
		PrivateKey:    normalizePrivateKey(raw.PrivateKey),
		IssuesGID:     raw.IssuesGID,
		ProtestsGID:   raw.ProtestsGID,
		PressGID:      raw.PressGID,
		ConferenceGID: raw.ConferenceGID,
		CacheTTL:      raw.CacheTTL,
		SchemaDir:     raw.SchemaDir,
		Timezone:      raw.Timezone,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	if missing := cfg.MissingSheetSettings(); len(missing) > 0 {
		return nil, fmt.Errorf("missing Google Sheets settings: %s", strings.Join(missing, ", "))
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

// MissingSheetSettings reports every required Sheets setting that is unset,
// by its environment variable name, so a misconfigured deployment fails with
// the full list at once instead of one variable per restart.
func (c *Cfg) MissingSheetSettings() []string {
	var missing []string
	if c.ClientEmail == "" {
		missing = append(missing, "GOOGLE_SHEETS_CLIENT_EMAIL")
	}
	if c.PrivateKey == "" {
		missing = append(missing, "GOOGLE_SHEETS_PRIVATE_KEY")
	}
	if c.SpreadsheetID == "" {
		missing = append(missing, "GSHEET_ID")
	}
	if c.IssuesGID == "" {
		missing = append(missing, "GID_ISSUES")
	}
	if c.ProtestsGID == "" {
		missing = append(missing, "GID_PROTEST")
	}
	return missing
}

// normalizePrivateKey strips optional wrapping quotes and unescapes the
// literal "\n" sequences that env files use for PEM material.
func normalizePrivateKey(key string) string {
	if strings.HasPrefix(key, `"`) && strings.HasSuffix(key, `"`) && len(key) >= 2 {
		key = key[1 : len(key)-1]
	}
	return strings.ReplaceAll(key, `\n`, "\n")
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
