package runconfig

import (
	"errors"
	"math"

	"github.com/launchdarkly/go-jsonstream/v3/jreader"

	"github.com/uts-harness/runconfig/framework/opt"
)

type propertyReader func(r *jreader.Reader, c *TestRunConfiguration)

//nolint:gochecknoglobals
var propertyReaders = map[string]propertyReader{
	KeyTestFiles:       func(r *jreader.Reader, c *TestRunConfiguration) { c.testFiles = readStrings(r) },
	KeyRemoveTestFiles: func(r *jreader.Reader, c *TestRunConfiguration) { c.removeTestFiles = readStrings(r) },
	KeyBreakFailed:     func(r *jreader.Reader, c *TestRunConfiguration) { c.breakFailed = r.Bool() },
	KeyOnlyFailed:      func(r *jreader.Reader, c *TestRunConfiguration) { c.onlyFailed = r.Bool() },
	KeyPreexec:         func(r *jreader.Reader, c *TestRunConfiguration) { c.preexec = readPreexec(r) },
	KeySkipKeywords:    func(r *jreader.Reader, c *TestRunConfiguration) { c.skipKeywords = NewKeywordSet(readStrings(r)...) },
	KeyRequireKeywords: func(r *jreader.Reader, c *TestRunConfiguration) { c.requireKeywords = NewKeywordSet(readStrings(r)...) },
	KeyGlobalPreexec:   func(r *jreader.Reader, c *TestRunConfiguration) { c.globalPreexec = r.String() },
	KeyModules:         func(r *jreader.Reader, c *TestRunConfiguration) { c.modules = readStrings(r) },
	KeyLocal:           func(r *jreader.Reader, c *TestRunConfiguration) { c.local = r.Bool() },
	KeyVerbosity:       func(r *jreader.Reader, c *TestRunConfiguration) { c.verbosity = readInt(r) },
	KeyFormat:          func(r *jreader.Reader, c *TestRunConfiguration) { c.format = readString(r) },
	KeyOutputFile:      func(r *jreader.Reader, c *TestRunConfiguration) { c.outputFile = readString(r) },
}

// readDocument validates and reads a JSON document. Property names that are not recognized are
// skipped and returned in the order they were seen.
func readDocument(data []byte) (*TestRunConfiguration, []string, error) {
	r := jreader.NewReader(data)
	c := Default()
	var unknownKeys []string
	seen := make(map[string]bool)
	for obj := r.Object(); obj.Next(); {
		key := string(obj.Name())
		if seen[key] {
			return nil, nil, &SchemaError{Key: key, Message: "duplicate key", Offset: -1}
		}
		seen[key] = true
		read, ok := propertyReaders[key]
		if !ok {
			unknownKeys = append(unknownKeys, key)
			_ = r.SkipValue()
		} else {
			read(&r, c)
		}
		if err := r.Error(); err != nil {
			return nil, nil, classifyReadError(err, key)
		}
	}
	if err := r.Error(); err != nil {
		return nil, nil, classifyReadError(err, "")
	}
	if err := r.RequireEOF(); err != nil {
		return nil, nil, classifyReadError(err, "")
	}
	return c, unknownKeys, nil
}

func readStrings(r *jreader.Reader) []string {
	ret := []string{}
	for arr := r.Array(); arr.Next(); {
		s := r.String()
		if r.Error() != nil {
			return nil
		}
		ret = append(ret, s)
	}
	return ret
}

func readPreexec(r *jreader.Reader) PreexecTable {
	entries := make(map[string]string)
	for obj := r.Object(); obj.Next(); {
		pattern := string(obj.Name())
		if _, exists := entries[pattern]; exists {
			r.AddError(&SchemaError{Message: "duplicate preexec pattern " + quote(pattern), Offset: -1})
			return PreexecTable{}
		}
		statement := r.String()
		if r.Error() != nil {
			return PreexecTable{}
		}
		entries[pattern] = statement
	}
	return PreexecTable{entries: entries}
}

func readString(r *jreader.Reader) opt.Maybe[string] {
	s := r.String()
	if r.Error() != nil {
		return opt.None[string]()
	}
	return opt.Some(s)
}

func readInt(r *jreader.Reader) opt.Maybe[int] {
	f := r.Float64()
	if r.Error() != nil {
		return opt.None[int]()
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		r.AddError(&SchemaError{Expected: "integer", Actual: "number", Offset: -1})
		return opt.None[int]()
	}
	return opt.Some(int(f))
}

// classifyReadError turns a jreader error into a SchemaError if the JSON was well-formed but had
// the wrong type somewhere, or a ParseError otherwise.
func classifyReadError(err error, key string) error {
	var se *SchemaError
	if errors.As(err, &se) {
		if se.Key == "" {
			se.Key = key
		}
		return se
	}
	var te jreader.TypeError
	if errors.As(err, &te) {
		return &SchemaError{Key: key, Expected: kindName(te.Expected), Actual: kindName(te.Actual), Offset: te.Offset}
	}
	var tep *jreader.TypeError
	if errors.As(err, &tep) {
		return &SchemaError{Key: key, Expected: kindName(tep.Expected), Actual: kindName(tep.Actual), Offset: tep.Offset}
	}
	return &ParseError{Format: formatJSON, Err: err}
}

func kindName(kind jreader.ValueKind) string {
	switch kind {
	case jreader.NullValue:
		return "null"
	case jreader.BoolValue:
		return "boolean"
	case jreader.NumberValue:
		return "number"
	case jreader.StringValue:
		return "string"
	case jreader.ArrayValue:
		return "array"
	case jreader.ObjectValue:
		return "object"
	default:
		return "unknown"
	}
}

func quote(s string) string {
	return `"` + s + `"`
}
