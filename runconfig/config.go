package runconfig

import (
	"golang.org/x/exp/slices"

	"github.com/uts-harness/runconfig/framework/opt"
)

// Property names used in configuration documents.
const (
	KeyTestFiles       = "testfiles"
	KeyRemoveTestFiles = "remove_testfiles"
	KeyBreakFailed     = "breakfailed"
	KeyOnlyFailed      = "onlyfailed"
	KeyPreexec         = "preexec"
	KeySkipKeywords    = "kw_ko"
	KeyRequireKeywords = "kw_ok"
	KeyGlobalPreexec   = "global_preexec"
	KeyModules         = "modules"
	KeyLocal           = "local"
	KeyVerbosity       = "verb"
	KeyFormat          = "format"
	KeyOutputFile      = "outputfile"
)

// TestRunConfiguration is a loaded test-run configuration. It cannot be changed once loaded;
// every accessor returns a copy, so a single instance can be shared freely between goroutines.
//
// Any property that was absent from the document has its default: empty lists, tables and
// sets, false for booleans, and an undefined value for the optional scalars.
type TestRunConfiguration struct {
	testFiles       []string
	removeTestFiles []string
	breakFailed     bool
	onlyFailed      bool
	preexec         PreexecTable
	skipKeywords    KeywordSet
	requireKeywords KeywordSet
	globalPreexec   string
	modules         []string
	local           bool
	verbosity       opt.Maybe[int]
	format          opt.Maybe[string]
	outputFile      opt.Maybe[string]
}

// Default returns a configuration with every property at its default.
func Default() *TestRunConfiguration {
	return &TestRunConfiguration{}
}

// TestFiles returns the glob patterns of test files to include, in document order.
func (c *TestRunConfiguration) TestFiles() []string { return cloneStrings(c.testFiles) }

// RemoveTestFiles returns the glob patterns of test files to exclude even if TestFiles matches
// them, in document order.
func (c *TestRunConfiguration) RemoveTestFiles() []string { return cloneStrings(c.removeTestFiles) }

// BreakFailed is true if the run should stop at the first failure.
func (c *TestRunConfiguration) BreakFailed() bool { return c.breakFailed }

// OnlyFailed is true if only previously failed tests should be run.
func (c *TestRunConfiguration) OnlyFailed() bool { return c.onlyFailed }

// Preexec maps test file patterns to the statement to run before matching files.
func (c *TestRunConfiguration) Preexec() PreexecTable { return NewPreexecTable(c.preexec.entries) }

// SkippedKeywords is the kw_ko set: any test tagged with one of these is skipped.
func (c *TestRunConfiguration) SkippedKeywords() KeywordSet {
	return KeywordSet{keywords: slices.Clone(c.skipKeywords.keywords)}
}

// RequiredKeywords is the kw_ok set: if it is not empty, only tests tagged with one of these run.
func (c *TestRunConfiguration) RequiredKeywords() KeywordSet {
	return KeywordSet{keywords: slices.Clone(c.requireKeywords.keywords)}
}

// GlobalPreexec is the statement to run before every test file, or "" for none.
func (c *TestRunConfiguration) GlobalPreexec() string { return c.globalPreexec }

// Modules returns the modules the consumer should import before running tests, in document order.
func (c *TestRunConfiguration) Modules() []string { return cloneStrings(c.modules) }

// Local is true if the consumer should resolve test file paths relative to the configuration
// file rather than its own working directory.
func (c *TestRunConfiguration) Local() bool { return c.local }

// Verbosity is the verb level, if the document sets one.
func (c *TestRunConfiguration) Verbosity() opt.Maybe[int] { return c.verbosity }

// Format is the name of the report format, if the document sets one.
func (c *TestRunConfiguration) Format() opt.Maybe[string] { return c.format }

// OutputFile is the path the report should be written to, if the document sets one.
func (c *TestRunConfiguration) OutputFile() opt.Maybe[string] { return c.outputFile }

// WithSkippedKeywords returns a copy of the configuration whose kw_ko set also contains the
// given keywords. The receiver is unchanged.
func (c *TestRunConfiguration) WithSkippedKeywords(keywords ...string) *TestRunConfiguration {
	copied := c.clone()
	copied.skipKeywords = c.skipKeywords.Union(NewKeywordSet(keywords...))
	return copied
}

// Equal returns true if both configurations have the same properties. Keyword sets are compared
// without regard to order; everything else must match exactly.
func (c *TestRunConfiguration) Equal(other *TestRunConfiguration) bool {
	if c == nil || other == nil {
		return c == other
	}
	return slices.Equal(c.testFiles, other.testFiles) &&
		slices.Equal(c.removeTestFiles, other.removeTestFiles) &&
		c.breakFailed == other.breakFailed &&
		c.onlyFailed == other.onlyFailed &&
		c.preexec.Equal(other.preexec) &&
		c.skipKeywords.Equal(other.skipKeywords) &&
		c.requireKeywords.Equal(other.requireKeywords) &&
		c.globalPreexec == other.globalPreexec &&
		slices.Equal(c.modules, other.modules) &&
		c.local == other.local &&
		opt.Equal(c.verbosity, other.verbosity) &&
		opt.Equal(c.format, other.format) &&
		opt.Equal(c.outputFile, other.outputFile)
}

func (c *TestRunConfiguration) clone() *TestRunConfiguration {
	copied := *c
	copied.testFiles = slices.Clone(c.testFiles)
	copied.removeTestFiles = slices.Clone(c.removeTestFiles)
	copied.preexec = NewPreexecTable(c.preexec.entries)
	copied.skipKeywords = c.SkippedKeywords()
	copied.requireKeywords = c.RequiredKeywords()
	copied.modules = slices.Clone(c.modules)
	return &copied
}

func cloneStrings(s []string) []string {
	return append([]string{}, s...)
}
