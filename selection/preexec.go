package selection

import "github.com/uts-harness/runconfig/runconfig"

// PreexecFor returns the statement to run before the given test file, with the %name%
// placeholder already expanded.
//
// A preexec pattern that is exactly equal to the path wins. Otherwise the patterns are tried in
// sorted order and the first that matches is used; patterns that are not valid globs are
// ignored. If nothing matches, the global preexec statement is used if there is one.
func PreexecFor(c *runconfig.TestRunConfiguration, testFile string) (string, bool) {
	table := c.Preexec()
	if s, ok := table.Get(testFile); ok {
		return runconfig.ExpandStatement(s, testFile), true
	}
	for _, pattern := range table.Patterns() {
		p, err := ParseGlobPattern(pattern)
		if err != nil {
			continue
		}
		if p.Match(testFile) {
			s, _ := table.Get(pattern)
			return runconfig.ExpandStatement(s, testFile), true
		}
	}
	if g := c.GlobalPreexec(); g != "" {
		return runconfig.ExpandStatement(g, testFile), true
	}
	return "", false
}
