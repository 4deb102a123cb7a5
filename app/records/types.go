package records

// RawRow is one spreadsheet row keyed by column header. Headers and values
// arrive trimmed; missing cells are empty strings.
type RawRow map[string]string

// Party codes tracked throughout. Opaque tags, never parsed further.
const (
	PartyNTK = "NTK"
	PartyTVK = "TVK"
)

// Issue is one row of the issues sheet. Every input row yields a record.
type Issue struct {
	ID         string `json:"id"`
	Issue      string `json:"issue"`
	IssueTamil string `json:"issue_ta"`
	NTKURL     string `json:"ntkUrl"`
	TVKURL     string `json:"tvkUrl"`
	DateDMY    string `json:"dateDMY"`
}

// Activity is one row of the protests / people-meets sheet.
type Activity struct {
	ID         string `json:"id"`
	Issue      string `json:"issue"`
	IssueTamil string `json:"issue_ta"`
	Type       string `json:"type"`
	NTKURL     string `json:"ntkUrl"`
	TVKURL     string `json:"tvkUrl"`
	NTKSpeech  int    `json:"ntkSpeech"`
	TVKSpeech  int    `json:"tvkSpeech"`
	DateDMY    string `json:"dateDMY"`
}

// MediaEvent is one row of the press-meets or conferences sheet. Party is
// always exactly NTK or TVK; rows with any other value are dropped during
// normalization. Topic fields are only set for conferences.
type MediaEvent struct {
	ID         string `json:"id"`
	Topic      string `json:"topic,omitempty"`
	TopicTamil string `json:"topic_ta,omitempty"`
	Party      string `json:"party"`
	Duration   int    `json:"duration"`
	YTURL      string `json:"ytUrl"`
	DateDMY    string `json:"dateDMY"`
}
