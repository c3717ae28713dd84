package scanner

import (
	"fmt"
	"sort"
	"strings"
)

// SortKey selects the column records are ordered by
type SortKey int

const (
	ByName SortKey = iota
	BySize
	ByDate
)

// String returns the key's config/flag name
func (k SortKey) String() string {
	switch k {
	case ByName:
		return "name"
	case BySize:
		return "size"
	case ByDate:
		return "date"
	default:
		return "unknown"
	}
}

// ParseSortKey parses "name", "size" or "date".
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return ByName, nil
	case "size":
		return BySize, nil
	case "date":
		return ByDate, nil
	default:
		return ByName, fmt.Errorf("unknown sort key: %q", s)
	}
}

// SortState is the active sort key and direction
type SortState struct {
	Key        SortKey
	Descending bool
}

// DefaultSortState returns name ascending.
func DefaultSortState() SortState {
	return SortState{Key: ByName}
}

// Toggle returns the state after the user selects key: the same key flips
// direction, a new key starts ascending.
func (s SortState) Toggle(key SortKey) SortState {
	if s.Key == key {
		return SortState{Key: key, Descending: !s.Descending}
	}
	return SortState{Key: key}
}

// Arrow returns the header indicator for the direction.
func (s SortState) Arrow() string {
	if s.Descending {
		return "↓"
	}
	return "↑"
}

// Compare orders a and b by the state's key, ignoring direction.
func (s SortState) Compare(a, b FileRecord) int {
	switch s.Key {
	case BySize:
		return compareBySize(a, b)
	case ByDate:
		return compareByDate(a, b)
	default:
		return compareByName(a, b)
	}
}

// compareByName compares display names case-insensitively. Names that only
// differ past the truncation point compare equal.
func compareByName(a, b FileRecord) int {
	return strings.Compare(strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName))
}

func compareBySize(a, b FileRecord) int {
	switch {
	case a.Size < b.Size:
		return -1
	case a.Size > b.Size:
		return 1
	default:
		return 0
	}
}

func compareByDate(a, b FileRecord) int {
	return a.CreatedAt.Compare(b.CreatedAt)
}

// Sort orders records in place. The sort is stable in both directions, so
// equal records keep their relative order.
func Sort(records []FileRecord, state SortState) {
	sort.SliceStable(records, func(i, j int) bool {
		c := state.Compare(records[i], records[j])
		if state.Descending {
			return c > 0
		}
		return c < 0
	})
}
