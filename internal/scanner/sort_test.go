package scanner

import (
	"strings"
	"testing"
	"time"
)

func names(records []FileRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.DisplayName
	}
	return out
}

func sampleRecords() []FileRecord {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []FileRecord{
		{Path: "/t/B.tmp", DisplayName: "B.tmp", Size: 300, CreatedAt: base.Add(2 * time.Hour)},
		{Path: "/t/a.tmp", DisplayName: "a.tmp", Size: 100, CreatedAt: base.Add(3 * time.Hour)},
		{Path: "/t/c.tmp", DisplayName: "c.tmp", Size: 200, CreatedAt: base.Add(1 * time.Hour)},
	}
}

func TestSortByNameCaseInsensitive(t *testing.T) {
	records := sampleRecords()
	Sort(records, SortState{Key: ByName})

	got := strings.Join(names(records), ",")
	if got != "a.tmp,B.tmp,c.tmp" {
		t.Errorf("name ascending = %s", got)
	}
}

func TestSortBySize(t *testing.T) {
	records := sampleRecords()
	Sort(records, SortState{Key: BySize})

	for i := 1; i < len(records); i++ {
		if records[i-1].Size > records[i].Size {
			t.Fatalf("not ascending by size: %v", names(records))
		}
	}
	if records[0].DisplayName != "a.tmp" {
		t.Errorf("smallest first, got %s", records[0].DisplayName)
	}
}

func TestSortByDate(t *testing.T) {
	records := sampleRecords()
	Sort(records, SortState{Key: ByDate})

	got := strings.Join(names(records), ",")
	if got != "c.tmp,B.tmp,a.tmp" {
		t.Errorf("date ascending = %s", got)
	}
}

func TestSortDescendingReversesAscending(t *testing.T) {
	for _, key := range []SortKey{ByName, BySize, ByDate} {
		t.Run(key.String(), func(t *testing.T) {
			state := DefaultSortState()
			if key != state.Key {
				state = state.Toggle(key)
			}
			if state.Descending {
				t.Fatal("first selection must be ascending")
			}

			asc := sampleRecords()
			Sort(asc, state)

			state = state.Toggle(key)
			if !state.Descending {
				t.Fatal("second selection of the same key must be descending")
			}
			desc := sampleRecords()
			Sort(desc, state)

			for i := range asc {
				if asc[i].Path != desc[len(desc)-1-i].Path {
					t.Fatalf("descending is not the reverse of ascending: %v vs %v", names(asc), names(desc))
				}
			}
		})
	}
}

func TestSortTruncatedNamesCompareEqual(t *testing.T) {
	prefix := strings.Repeat("p", 47)
	records := []FileRecord{
		{Path: "/t/" + prefix + "zzzz-2", DisplayName: prefix + "...", Size: 2},
		{Path: "/t/" + prefix + "aaaa-1", DisplayName: prefix + "...", Size: 1},
	}

	Sort(records, SortState{Key: ByName})

	// Equal display names keep their input order
	if records[0].Size != 2 {
		t.Error("truncated names should compare equal and keep input order")
	}
}

func TestSortStateToggle(t *testing.T) {
	s := DefaultSortState()
	if s.Key != ByName || s.Descending {
		t.Fatalf("default = %+v", s)
	}

	s = s.Toggle(ByName)
	if s.Key != ByName || !s.Descending {
		t.Errorf("same key should flip: %+v", s)
	}

	s = s.Toggle(BySize)
	if s.Key != BySize || s.Descending {
		t.Errorf("new key should reset to ascending: %+v", s)
	}

	s = s.Toggle(BySize).Toggle(BySize)
	if s.Descending {
		t.Errorf("double toggle should return to ascending: %+v", s)
	}
}

func TestSortStateArrow(t *testing.T) {
	if got := (SortState{}).Arrow(); got != "↑" {
		t.Errorf("ascending arrow = %q", got)
	}
	if got := (SortState{Descending: true}).Arrow(); got != "↓" {
		t.Errorf("descending arrow = %q", got)
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in      string
		want    SortKey
		wantErr bool
	}{
		{"name", ByName, false},
		{"SIZE", BySize, false},
		{" date ", ByDate, false},
		{"path", ByName, true},
		{"", ByName, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortKey(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSortKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSortKey(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if !tt.wantErr && got.String() != strings.ToLower(strings.TrimSpace(tt.in)) {
				t.Errorf("String() = %q does not round trip", got.String())
			}
		})
	}
}

func TestOldest(t *testing.T) {
	r := &ScanResult{Records: sampleRecords()}
	oldest, ok := r.Oldest()
	if !ok || oldest.DisplayName != "c.tmp" {
		t.Errorf("Oldest = %v, %v", oldest.DisplayName, ok)
	}

	if _, ok := (&ScanResult{}).Oldest(); ok {
		t.Error("empty result has no oldest record")
	}
}
