package selection

import (
	"fmt"
	"path"
	"strings"

	"github.com/uts-harness/runconfig/runconfig"
)

// GlobPattern matches test file paths. "*" matches any run of characters within one path
// segment; "\" and "/" are both treated as separators, in the pattern and in the path.
type GlobPattern struct {
	raw        string
	normalized string
}

func ParseGlobPattern(s string) (GlobPattern, error) {
	if err := runconfig.CheckPattern(s); err != nil {
		return GlobPattern{}, fmt.Errorf("invalid glob pattern %q: %w", s, err)
	}
	return GlobPattern{raw: s, normalized: runconfig.NormalizePattern(s)}, nil
}

func (p GlobPattern) Match(filePath string) bool {
	matched, _ := path.Match(p.normalized, runconfig.NormalizePattern(filePath))
	return matched
}

// String returns the pattern as it was written.
func (p GlobPattern) String() string {
	return p.raw
}

type GlobPatternList []GlobPattern

func ParseGlobPatternList(patterns []string) (GlobPatternList, error) {
	ret := make(GlobPatternList, 0, len(patterns))
	for _, s := range patterns {
		if err := ret.Set(s); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (l GlobPatternList) String() string {
	ss := make([]string, 0, len(l))
	for _, p := range l {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (l *GlobPatternList) Set(value string) error {
	p, err := ParseGlobPattern(value)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

func (l GlobPatternList) IsDefined() bool {
	return len(l) != 0
}

func (l GlobPatternList) AnyMatch(filePath string) bool {
	for _, p := range l {
		if p.Match(filePath) {
			return true
		}
	}
	return false
}

// Filters decides whether a test file is part of the run.
type Filters struct {
	Include GlobPatternList
	Exclude GlobPatternList
}

// FiltersFor builds Filters from a configuration's testfiles and remove_testfiles. It fails if any
// of the patterns is not valid glob syntax, which the loader itself does not check.
func FiltersFor(c *runconfig.TestRunConfiguration) (Filters, error) {
	include, err := ParseGlobPatternList(c.TestFiles())
	if err != nil {
		return Filters{}, fmt.Errorf("%s: %w", runconfig.KeyTestFiles, err)
	}
	exclude, err := ParseGlobPatternList(c.RemoveTestFiles())
	if err != nil {
		return Filters{}, fmt.Errorf("%s: %w", runconfig.KeyRemoveTestFiles, err)
	}
	return Filters{Include: include, Exclude: exclude}, nil
}

// Match returns true if the file matches at least one include pattern and no exclude pattern.
// Exclusion always wins. With no include patterns, nothing matches.
func (f Filters) Match(filePath string) bool {
	return f.Include.AnyMatch(filePath) && !f.Exclude.AnyMatch(filePath)
}

// Description summarizes the filters for display.
func (f Filters) Description() []string {
	var ret []string
	if f.Include.IsDefined() {
		ret = append(ret, fmt.Sprintf("include files matching %s", f.Include))
	} else {
		ret = append(ret, "no test files are included")
	}
	if f.Exclude.IsDefined() {
		ret = append(ret, fmt.Sprintf("skip files matching %s", f.Exclude))
	}
	return ret
}
