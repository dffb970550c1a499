package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/uts-harness/runconfig/runconfig"
	"github.com/uts-harness/runconfig/selection"
)

var headingColor = color.New(color.Bold)                    //nolint:gochecknoglobals
var labelColor = color.New(color.Faint)                     //nolint:gochecknoglobals
var selectedColor = color.New(color.FgGreen)                //nolint:gochecknoglobals
var notSelectedColor = color.New(color.Faint, color.FgBlue) //nolint:gochecknoglobals
var warningColor = color.New(color.FgYellow)                //nolint:gochecknoglobals

func describeConfig(w io.Writer, location string, c *runconfig.TestRunConfiguration) {
	_, _ = headingColor.Fprintf(w, "Configuration %s\n", location)

	describeList(w, "Test files", c.TestFiles())
	describeList(w, "Removed test files", c.RemoveTestFiles())
	describeValue(w, "Stop on first failure", yesNo(c.BreakFailed()))
	describeValue(w, "Only failed tests", yesNo(c.OnlyFailed()))

	table := c.Preexec()
	if table.Len() == 0 {
		describeValue(w, "Preexec", "none")
	} else {
		_, _ = labelColor.Fprintln(w, "  Preexec:")
		for _, pattern := range table.Patterns() {
			statement, _ := table.Get(pattern)
			fmt.Fprintf(w, "    %s: %s\n", pattern, statement)
		}
	}
	describeList(w, "Skipped keywords", c.SkippedKeywords().Keywords())

	if kw := c.RequiredKeywords(); kw.Len() != 0 {
		describeList(w, "Required keywords", kw.Keywords())
	}
	if g := c.GlobalPreexec(); g != "" {
		describeValue(w, "Global preexec", g)
	}
	if modules := c.Modules(); len(modules) != 0 {
		describeList(w, "Modules", modules)
	}
	if c.Local() {
		describeValue(w, "Paths", "relative to the configuration file")
	}
	if v := c.Verbosity(); v.IsDefined() {
		describeValue(w, "Verbosity", v.String())
	}
	if f := c.Format(); f.IsDefined() {
		describeValue(w, "Output format", f.Value())
	}
	if f := c.OutputFile(); f.IsDefined() {
		describeValue(w, "Output file", f.Value())
	}
}

func describeMatch(w io.Writer, c *runconfig.TestRunConfiguration, filters selection.Filters, testFile string) {
	if !filters.Match(testFile) {
		_, _ = notSelectedColor.Fprintf(w, "%s: not selected\n", testFile)
		return
	}
	if statement, ok := selection.PreexecFor(c, testFile); ok {
		_, _ = selectedColor.Fprintf(w, "%s: selected, preexec %s\n", testFile, statement)
	} else {
		_, _ = selectedColor.Fprintf(w, "%s: selected\n", testFile)
	}
}

func describeLint(w io.Writer, errs []error) {
	for _, err := range errs {
		_, _ = warningColor.Fprintf(w, "warning: %s\n", err)
	}
}

func describeList(w io.Writer, label string, values []string) {
	if len(values) == 0 {
		describeValue(w, label, "none")
		return
	}
	describeValue(w, label, strings.Join(values, ", "))
}

func describeValue(w io.Writer, label, value string) {
	_, _ = labelColor.Fprintf(w, "  %s: ", label)
	fmt.Fprintln(w, value)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
