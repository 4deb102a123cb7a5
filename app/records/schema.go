package records

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Schema maps a logical field to an ordered list of candidate column
// headers, tried in priority order. The spreadsheet maintainers rename
// columns now and then; the ordered list replaces scattered inline fallback
// chains.
type Schema map[string][]string

// SchemaSet holds one schema per category.
type SchemaSet struct {
	Issues      Schema `yaml:"issues"`
	Activities  Schema `yaml:"activities"`
	Press       Schema `yaml:"press"`
	Conferences Schema `yaml:"conferences"`
}

// DefaultSchemas returns the compiled-in header aliases matching the sheets
// as they exist today.
func DefaultSchemas() *SchemaSet {
	return &SchemaSet{
		Issues: Schema{
			"issue":    {"Incident/Problem", "Incident", "Problem"},
			"issue_ta": {"Incident (Tamil)"},
			"ntk":      {"NTK"},
			"tvk":      {"TVK"},
			"date":     {"Date", "DATE", "date"},
		},
		Activities: Schema{
			"issue":      {"Issue", "Title"},
			"issue_ta":   {"Issue (Tamil)"},
			"type":       {"Protest/People Meet", "Type"},
			"ntk":        {"NTK"},
			"tvk":        {"TVK"},
			"ntk_speech": {"NTK Speech", "NTK speech"},
			"tvk_speech": {"TVK Speech", "TVK speech"},
			"date":       {"Date", "DATE", "date"},
		},
		Press: Schema{
			"party":    {"Party", "party"},
			"duration": {"Duration"},
			"youtube":  {"YouTube", "YT"},
			"date":     {"Date", "DATE", "date"},
		},
		Conferences: Schema{
			"topic":    {"Topic", "Conference"},
			"topic_ta": {"Topic (Tamil)"},
			"party":    {"Party", "party"},
			"duration": {"Duration"},
			"youtube":  {"YouTube", "YT"},
			"date":     {"Date", "DATE", "date"},
		},
	}
}

// LoadSchemas returns the defaults overlaid with any per-category YAML
// overrides found in dir ("" or a missing dir means defaults only). An
// override file replaces the candidate list per field it names and leaves
// the other fields alone.
func LoadSchemas(dir string) (*SchemaSet, error) {
	set := DefaultSchemas()
	if dir == "" {
		return set, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return set, nil
	}

	data, err := os.ReadFile(filepath.Join(dir, "schemas.yml"))
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return nil, fmt.Errorf("failed to read schema overrides: %w", err)
	}

	var overrides SchemaSet
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse schema overrides: %w", err)
	}

	merge := func(base, over Schema, category string, valid map[string]bool) error {
		for field, candidates := range over {
			if !valid[field] {
				return fmt.Errorf("unknown field %q in %s schema override", field, category)
			}
			if len(candidates) == 0 {
				return fmt.Errorf("field %q in %s schema override has no header candidates", field, category)
			}
			base[field] = candidates
		}
		return nil
	}

	if err := merge(set.Issues, overrides.Issues, "issues", validFields(set.Issues)); err != nil {
		return nil, err
	}
	if err := merge(set.Activities, overrides.Activities, "activities", validFields(set.Activities)); err != nil {
		return nil, err
	}
	if err := merge(set.Press, overrides.Press, "press", validFields(set.Press)); err != nil {
		return nil, err
	}
	if err := merge(set.Conferences, overrides.Conferences, "conferences", validFields(set.Conferences)); err != nil {
		return nil, err
	}

	return set, nil
}

func validFields(s Schema) map[string]bool {
	valid := make(map[string]bool, len(s))
	for field := range s {
		valid[field] = true
	}
	return valid
}

// pick returns the first non-empty value among the field's candidate
// headers, or "".
func (s Schema) pick(row RawRow, field string) string {
	for _, header := range s[field] {
		if v := strings.TrimSpace(row[header]); v != "" {
			return v
		}
	}
	return ""
}
