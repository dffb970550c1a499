package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/uts-harness/runconfig/runconfig"
)

const (
	printJSON = "json"
	printYAML = "yaml"
)

type commandParams struct {
	config   string
	keywords runconfig.KeywordSet
	print    string
	match    stringList
	strict   bool
	serve    string
	debug    bool
}

// stringList is a flag.Value for a flag that can be given more than once.
type stringList []string

func (l stringList) String() string { return strings.Join(l, ", ") }

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Read parses the command line. Usage errors are written to errOut.
func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	fs := flag.NewFlagSet("runconfig", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.config, "config", "", "configuration file path or URL (consul://, redis://, dynamodb://, http(s)://)")
	fs.Var(&c.keywords, "K", "keyword(s) whose tests should also be skipped; may be repeated or comma-separated")
	fs.StringVar(&c.print, "print", "", "print the loaded configuration as json or yaml instead of a summary")
	fs.Var(&c.match, "match", "test file path to check against the configuration; may be repeated")
	fs.BoolVar(&c.strict, "strict", false, "fail if any test file or preexec pattern is not a valid glob")
	fs.StringVar(&c.serve, "serve", "", "serve the configuration over HTTP on this address, e.g. :8111")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if c.config == "" {
		fmt.Fprintln(errOut, "-config is required")
		fs.Usage()
		return false
	}
	switch c.print {
	case "", printJSON, printYAML:
	default:
		fmt.Fprintf(errOut, "-print must be %q or %q\n", printJSON, printYAML)
		fs.Usage()
		return false
	}
	if c.print != "" && len(c.match) != 0 {
		fmt.Fprintln(errOut, "-print and -match cannot be used together")
		fs.Usage()
		return false
	}
	return true
}
