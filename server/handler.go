// Package server provides a read-only HTTP view of a loaded test-run configuration, so that test
// runners on other hosts can ask which files and keywords are selected without parsing the
// document themselves.
package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/uts-harness/runconfig/framework"
	"github.com/uts-harness/runconfig/runconfig"
	"github.com/uts-harness/runconfig/selection"
)

const (
	jsonContentType = "application/json"
	yamlContentType = "application/yaml"
)

type configService struct {
	config     *runconfig.TestRunConfiguration
	filters    selection.Filters
	filtersErr error
	keywords   selection.KeywordFilter
	logger     framework.Logger
}

// NewHandler returns a handler serving these endpoints:
//
//	GET /config                 the configuration in canonical JSON, or YAML with ?format=yaml
//	GET /keywords/{keyword}     whether tests tagged with the keyword are skipped
//	GET /select?path=<file>     whether the file is selected, and its preexec statement
//
// Any other method on these paths gets a 405.
func NewHandler(c *runconfig.TestRunConfiguration, logger framework.Logger) http.Handler {
	s := &configService{
		config:   c,
		keywords: selection.KeywordFilterFor(c),
		logger:   framework.OrNull(logger),
	}
	s.filters, s.filtersErr = selection.FiltersFor(c)

	router := mux.NewRouter()
	router.HandleFunc("/config", s.getConfig).Methods("GET")
	router.HandleFunc("/keywords/{keyword}", s.getKeyword).Methods("GET")
	router.HandleFunc("/select", s.getSelection).Methods("GET")
	return router
}

func (s *configService) getConfig(w http.ResponseWriter, r *http.Request) {
	var (
		body        []byte
		err         error
		contentType = jsonContentType
	)
	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		body, err = s.config.MarshalJSON()
	case "yaml":
		body, err = s.config.ToYAML()
		contentType = yamlContentType
	default:
		s.writeError(w, http.StatusBadRequest, "unsupported format \""+format+"\"")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.write(w, r, contentType, body)
}

func (s *configService) getKeyword(w http.ResponseWriter, r *http.Request) {
	keyword := mux.Vars(r)["keyword"]
	body := ldvalue.ObjectBuild().
		Set("keyword", ldvalue.String(keyword)).
		Set("skipped", ldvalue.Bool(s.keywords.Skip.Has(keyword))).
		Set("allowed", ldvalue.Bool(s.keywords.Allows(keyword))).
		Build()
	s.write(w, r, jsonContentType, []byte(body.JSONString()))
}

func (s *configService) getSelection(w http.ResponseWriter, r *http.Request) {
	testFile := r.URL.Query().Get("path")
	if testFile == "" {
		s.writeError(w, http.StatusBadRequest, "path parameter is required")
		return
	}
	if s.filtersErr != nil {
		s.writeError(w, http.StatusInternalServerError, s.filtersErr.Error())
		return
	}
	body := ldvalue.ObjectBuild().
		Set("path", ldvalue.String(testFile)).
		Set("selected", ldvalue.Bool(s.filters.Match(testFile)))
	if statement, ok := selection.PreexecFor(s.config, testFile); ok {
		body.Set("preexec", ldvalue.String(statement))
	}
	s.write(w, r, jsonContentType, []byte(body.Build().JSONString()))
}

func (s *configService) write(w http.ResponseWriter, r *http.Request, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
	s.logger.Printf("%s %s responded with 200", r.Method, r.URL)
}

func (s *configService) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
	s.logger.Printf("responded with %d - %s", status, message)
}
