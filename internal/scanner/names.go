package scanner

// MaxDisplayName is the longest base name shown before truncation.
const MaxDisplayName = 50

const ellipsis = "..."

// DisplayName shortens a base name to MaxDisplayName runes, replacing the
// tail with an ellipsis when it is longer.
func DisplayName(name string) string {
	runes := []rune(name)
	if len(runes) <= MaxDisplayName {
		return name
	}
	return string(runes[:MaxDisplayName-len(ellipsis)]) + ellipsis
}
