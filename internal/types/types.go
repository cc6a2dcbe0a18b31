package types

// Issue represents a single problem found in a formula file.
type Issue struct {
	Rule       string
	Category   string
	Filename   string
	Line       int // 1-based line in the file
	Column     int // 1-based column within the line
	Message    string
	Suggestion string
	Note       string
}

// ConfigRule controls a single rule from the configuration file.
type ConfigRule struct {
	Disabled bool   `yaml:"disabled,omitempty"`
	Severity string `yaml:"severity,omitempty"`
}
