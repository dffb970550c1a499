package runconfig

import (
	"path"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// NamePlaceholder may appear in a preexec statement. The consumer replaces it with the base name,
// without extension, of the test file the statement is being run for.
const NamePlaceholder = "%name%"

// PreexecTable maps glob patterns to the statement to execute before any test file matching the
// pattern. Patterns are kept exactly as written in the document.
//
// The zero value is an empty table.
type PreexecTable struct {
	entries map[string]string
}

// NewPreexecTable copies the given map into a new table.
func NewPreexecTable(entries map[string]string) PreexecTable {
	if len(entries) == 0 {
		return PreexecTable{}
	}
	return PreexecTable{entries: maps.Clone(entries)}
}

// Get returns the statement for exactly this pattern, if any.
func (p PreexecTable) Get(pattern string) (string, bool) {
	s, ok := p.entries[pattern]
	return s, ok
}

func (p PreexecTable) Len() int { return len(p.entries) }

// Patterns returns all of the patterns in sorted order.
func (p PreexecTable) Patterns() []string {
	ret := maps.Keys(p.entries)
	slices.Sort(ret)
	if ret == nil {
		return []string{}
	}
	return ret
}

// AsMap returns a copy of the table as a map.
func (p PreexecTable) AsMap() map[string]string {
	ret := make(map[string]string, len(p.entries))
	for k, v := range p.entries {
		ret[k] = v
	}
	return ret
}

func (p PreexecTable) Equal(other PreexecTable) bool {
	return maps.Equal(p.entries, other.entries)
}

// ExpandStatement replaces NamePlaceholder in a preexec statement with the base name of testFile,
// minus its extension. Both "/" and "\" are treated as path separators.
func ExpandStatement(statement, testFile string) string {
	if !strings.Contains(statement, NamePlaceholder) {
		return statement
	}
	base := path.Base(NormalizePattern(testFile))
	name := strings.TrimSuffix(base, path.Ext(base))
	return strings.ReplaceAll(statement, NamePlaceholder, name)
}

// NormalizePattern converts "\" separators to "/", so that campaign files written with
// Windows-style paths can be matched the same way as any other.
func NormalizePattern(pattern string) string {
	return strings.ReplaceAll(pattern, `\`, "/")
}
