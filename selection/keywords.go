package selection

import "github.com/uts-harness/runconfig/runconfig"

// KeywordFilter decides whether a test runs based on the keywords it is tagged with.
type KeywordFilter struct {
	// Skip is the kw_ko set. A test tagged with any of these is skipped.
	Skip runconfig.KeywordSet

	// Require is the kw_ok set. If it is not empty, a test must be tagged with at least one of
	// these to run.
	Require runconfig.KeywordSet
}

func KeywordFilterFor(c *runconfig.TestRunConfiguration) KeywordFilter {
	return KeywordFilter{Skip: c.SkippedKeywords(), Require: c.RequiredKeywords()}
}

// Allows returns true if a test with these keywords should run. Skip takes precedence over
// Require.
func (k KeywordFilter) Allows(keywords ...string) bool {
	if k.Skip.HasAny(keywords...) {
		return false
	}
	return k.Require.Len() == 0 || k.Require.HasAny(keywords...)
}
