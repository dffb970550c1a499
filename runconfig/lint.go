package runconfig

import (
	"errors"
	"fmt"
	"path"
)

var errEmptyPattern = errors.New("empty pattern")

// LintError describes one problem found by Lint.
type LintError struct {
	Key   string
	Value string
	Err   error
}

func (e LintError) Error() string {
	return fmt.Sprintf("%s: %q: %s", e.Key, e.Value, e.Err)
}

func (e LintError) Unwrap() error { return e.Err }

// Lint checks the parts of a configuration that the loader deliberately leaves alone: that every
// test file pattern and preexec pattern is a valid glob (using the same syntax as path.Match, after
// NormalizePattern), and that no pattern or keyword is empty. It returns nil if there are no
// problems.
func Lint(c *TestRunConfiguration) []error {
	var errs []error
	checkPatterns := func(key string, patterns []string) {
		for _, p := range patterns {
			if err := CheckPattern(p); err != nil {
				errs = append(errs, LintError{Key: key, Value: p, Err: err})
			}
		}
	}
	checkPatterns(KeyTestFiles, c.testFiles)
	checkPatterns(KeyRemoveTestFiles, c.removeTestFiles)
	checkPatterns(KeyPreexec, c.preexec.Patterns())

	checkKeywords := func(key string, keywords KeywordSet) {
		if keywords.Has("") {
			errs = append(errs, LintError{Key: key, Value: "", Err: errors.New("empty keyword")})
		}
	}
	checkKeywords(KeySkipKeywords, c.skipKeywords)
	checkKeywords(KeyRequireKeywords, c.requireKeywords)
	return errs
}

// CheckPattern returns an error if the pattern is empty or is not valid glob syntax.
func CheckPattern(pattern string) error {
	if pattern == "" {
		return errEmptyPattern
	}
	// path.Match validates the whole pattern even when the name doesn't match.
	if _, err := path.Match(NormalizePattern(pattern), ""); err != nil {
		return err
	}
	return nil
}
