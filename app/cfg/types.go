package cfg

type Cfg struct {
	// HTTP server
	Port string

	// Google Sheets access
	SpreadsheetID string
	ClientEmail   string
	PrivateKey    string

	// Sheet identifiers (numeric GIDs), one per category
	IssuesGID     string
	ProtestsGID   string
	PressGID      string
	ConferenceGID string

	// Application behavior
	CacheTTL  int // seconds
	SchemaDir string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
