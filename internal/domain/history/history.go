// Package history implements the capped, deduplicated search history list.
package history

import (
	"strings"
	"time"
)

// Cap is the maximum number of history entries retained.
const Cap = 50

// MinQueryLength is the minimum searchable query length in runes. Shorter
// queries are never recorded.
const MinQueryLength = 2

// Entry is one recorded search.
type Entry struct {
	Query       string    `json:"query"`
	Timestamp   time.Time `json:"timestamp"`
	ResultCount int       `json:"result_count"`
}

// Normalize trims and lower-cases a query. Stored queries and deduplication
// both use the normalized form, matching the case-insensitive search
// contract.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Recordable reports whether a query is long enough to be recorded.
func Recordable(query string) bool {
	return len([]rune(Normalize(query))) >= MinQueryLength
}

// List is a newest-first history of searches. The zero value is usable.
type List struct {
	entries []Entry
}

// FromEntries rebuilds a list from persisted entries, enforcing the cap.
func FromEntries(entries []Entry) List {
	if len(entries) > Cap {
		entries = entries[:Cap]
	}
	return List{entries: entries}
}

// Record inserts a query at the front. Any existing entry with the same
// normalized query is removed first (re-searching moves an entry to the
// front rather than growing the list), then the list is truncated to Cap.
// Too-short queries are ignored.
func (l *List) Record(query string, resultCount int, now time.Time) {
	if !Recordable(query) {
		return
	}
	q := Normalize(query)

	l.remove(q)
	l.entries = append([]Entry{{Query: q, Timestamp: now, ResultCount: resultCount}}, l.entries...)
	if len(l.entries) > Cap {
		l.entries = l.entries[:Cap]
	}
}

// Delete removes the entry with the given query. Returns true if found.
func (l *List) Delete(query string) bool {
	q := Normalize(query)
	before := len(l.entries)
	l.remove(q)
	return len(l.entries) != before
}

// Clear drops all entries.
func (l *List) Clear() {
	l.entries = nil
}

// Recent returns the newest n entries (all of them if n exceeds the length).
func (l List) Recent(n int) []Entry {
	if n <= 0 || n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Entry, n)
	copy(out, l.entries[:n])
	return out
}

// All returns a copy of every entry, newest first.
func (l List) All() []Entry {
	return l.Recent(len(l.entries))
}

// Len returns the number of entries.
func (l List) Len() int { return len(l.entries) }

// Clone returns a copy that shares no memory with the list. Mutating either
// afterwards leaves the other untouched.
func (l List) Clone() List {
	return List{entries: l.All()}
}

func (l *List) remove(normalized string) {
	kept := l.entries[:0]
	for _, e := range l.entries {
		if e.Query != normalized {
			kept = append(kept, e)
		}
	}
	l.entries = kept
}
