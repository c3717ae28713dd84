package config

// GetDefault returns the default configuration
func GetDefault() *Config {
	return &Config{
		Sort: SortConfig{
			Key:        "name",
			Descending: false,
		},
		Output:  "summary",
		Confirm: true,
		DryRun:  false,
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// GetExampleConfig returns an annotated example configuration
func GetExampleConfig() string {
	return `# cleantemp configuration
# Location: ~/.config/cleantemp/config.yaml

# Initial ordering of the file list: name, size or date
sort:
  key: name
  descending: false

# Report format for the scan command: summary, table, json or yaml
output: summary

# Ask for confirmation before the clean command deletes anything
confirm: true

# Report what would be deleted without removing files
dry_run: false

# Directories the cleaner refuses to delete from, in addition to the
# built-in system paths
protected_paths: []

log:
  # debug, info, warn or error
  level: warn
  # Absolute path; empty logs to stderr (discarded in interactive mode)
  file: ""
`
}
