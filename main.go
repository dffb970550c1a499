package main

import (
	"context"
	_ "embed" // this is required in order for go:embed to work
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/uts-harness/runconfig/framework"
	"github.com/uts-harness/runconfig/runconfig"
	"github.com/uts-harness/runconfig/selection"
	"github.com/uts-harness/runconfig/server"
	"github.com/uts-harness/runconfig/source"
)

const (
	loadTimeout       = time.Second * 30
	readHeaderTimeout = time.Second * 10
)

//go:embed VERSION
var versionString string // comes from the VERSION file which we update for each release

var errLintFailed = errors.New("configuration has invalid patterns")

func main() {
	var params commandParams
	if !params.Read(os.Args, os.Stderr) {
		os.Exit(1)
	}

	if err := run(params, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(params commandParams, out, errOut io.Writer) error {
	debugLogger := framework.NullLogger()
	if params.debug {
		debugLogger = log.New(errOut, "", log.LstdFlags)
	}

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()
	c, err := source.Load(ctx, runconfig.Loader{Logger: debugLogger}, params.config,
		source.WithLogger(framework.LoggerWithPrefix(debugLogger, "[source] ")))
	if err != nil {
		return err
	}
	if params.keywords.Len() != 0 {
		c = c.WithSkippedKeywords(params.keywords.Keywords()...)
	}

	switch params.print {
	case printJSON:
		data, err := c.MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	case printYAML:
		data, err := c.ToYAML()
		if err != nil {
			return err
		}
		_, _ = out.Write(data)
	default:
		fmt.Fprintf(out, "runconfig v%s\n", strings.TrimSpace(versionString))
		describeConfig(out, params.config, c)
		if len(params.match) != 0 {
			filters, err := selection.FiltersFor(c)
			if err != nil {
				return err
			}
			for _, testFile := range params.match {
				describeMatch(out, c, filters, testFile)
			}
		}
	}

	lintErrs := runconfig.Lint(c)
	describeLint(errOut, lintErrs)
	if params.strict && len(lintErrs) != 0 {
		return errLintFailed
	}

	if params.serve != "" {
		fmt.Fprintf(errOut, "Serving configuration on %s\n", params.serve)
		httpServer := &http.Server{
			Addr:              params.serve,
			Handler:           server.NewHandler(c, framework.LoggerWithPrefix(debugLogger, "[server] ")),
			ReadHeaderTimeout: readHeaderTimeout,
		}
		return httpServer.ListenAndServe()
	}
	return nil
}
