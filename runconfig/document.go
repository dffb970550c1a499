package runconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	yaml "gopkg.in/yaml.v3"
)

const (
	formatJSON = "JSON"
	formatYAML = "YAML"
)

var errInvalidUTF8 = errors.New("document is not valid UTF-8")

// documentAsJSON returns the document in JSON form. JSON input is returned as is; anything else is
// parsed as YAML and converted to the equivalent JSON, so that a single reader can validate both.
func documentAsJSON(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &ParseError{Format: formatJSON, Err: errEmptyDocument}
	}
	if !utf8.Valid(trimmed) {
		format := formatYAML
		if looksLikeJSON(trimmed) {
			format = formatJSON
		}
		return nil, &ParseError{Format: format, Err: errInvalidUTF8}
	}
	if json.Valid(trimmed) {
		return trimmed, nil
	}
	// Decoding into a Node rather than a map keeps duplicate keys, so that they can be reported the
	// same way as in JSON, and keeps the original key order.
	var root yaml.Node
	if err := yaml.Unmarshal(trimmed, &root); err != nil {
		if looksLikeJSON(trimmed) {
			// A YAML parser's complaint about broken JSON is less helpful than the JSON parser's.
			return nil, &ParseError{Format: formatJSON, Err: jsonSyntaxError(trimmed)}
		}
		return nil, &ParseError{Format: formatYAML, Err: err}
	}
	content := &root
	if root.Kind == yaml.DocumentNode && len(root.Content) != 0 {
		content = root.Content[0]
	}
	if content.Kind == 0 || content.Kind == yaml.DocumentNode ||
		(content.Kind == yaml.ScalarNode && content.ShortTag() == "!!null") {
		return nil, &ParseError{Format: formatYAML, Err: errEmptyDocument}
	}
	w := jwriter.NewWriter()
	if err := writeYAMLNodeAsJSON(&w, content, "", 0); err != nil {
		return nil, err
	}
	if err := w.Error(); err != nil {
		return nil, &ParseError{Format: formatYAML, Err: err}
	}
	return w.Bytes(), nil
}

func looksLikeJSON(data []byte) bool {
	return data[0] == '{' || data[0] == '['
}

func jsonSyntaxError(data []byte) error {
	var ignored interface{}
	if err := json.Unmarshal(data, &ignored); err != nil {
		return err
	}
	return fmt.Errorf("invalid JSON")
}

// writeYAMLNodeAsJSON writes the JSON equivalent of a YAML node. topKey is the top-level property
// the node belongs to, and depth is 0 for the document itself.
func writeYAMLNodeAsJSON(w *jwriter.Writer, n *yaml.Node, topKey string, depth int) error {
	switch n.Kind {
	case yaml.AliasNode:
		return writeYAMLNodeAsJSON(w, n.Alias, topKey, depth)
	case yaml.SequenceNode:
		arr := w.Array()
		for _, item := range n.Content {
			if err := writeYAMLNodeAsJSON(w, item, topKey, depth+1); err != nil {
				return err
			}
		}
		arr.End()
		return nil
	case yaml.MappingNode:
		obj := w.Object()
		seen := make(map[string]bool, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valueNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode || keyNode.ShortTag() != "!!str" {
				return &ParseError{Format: formatYAML, Err: fmt.Errorf(
					"YAML data contained a map key of type %s at line %d; only string keys are allowed",
					keyNode.ShortTag(), keyNode.Line)}
			}
			name := keyNode.Value
			valueTopKey := topKey
			if depth == 0 {
				valueTopKey = name
			}
			if seen[name] {
				return duplicateKeyError(topKey, name, depth)
			}
			seen[name] = true
			if depth == 0 && propertyReaders[name] == nil {
				// The reader only needs to see the name of an ignored property.
				obj.Name(name).Null()
				continue
			}
			if err := writeYAMLNodeAsJSON(obj.Name(name), valueNode, valueTopKey, depth+1); err != nil {
				return err
			}
		}
		obj.End()
		return nil
	case yaml.ScalarNode:
		return writeYAMLScalarAsJSON(w, n)
	default:
		return &ParseError{Format: formatYAML, Err: fmt.Errorf("unexpected YAML node at line %d", n.Line)}
	}
}

func duplicateKeyError(topKey, name string, depth int) error {
	switch {
	case depth == 0:
		return &SchemaError{Key: name, Message: "duplicate key", Offset: -1}
	case topKey == KeyPreexec && depth == 1:
		return &SchemaError{Key: topKey, Message: "duplicate preexec pattern " + quote(name), Offset: -1}
	default:
		return &SchemaError{Key: topKey, Message: "duplicate key " + quote(name), Offset: -1}
	}
}

func writeYAMLScalarAsJSON(w *jwriter.Writer, n *yaml.Node) error {
	var value interface{}
	if err := n.Decode(&value); err != nil {
		return &ParseError{Format: formatYAML, Err: err}
	}
	switch v := value.(type) {
	case nil:
		w.Null()
	case bool:
		w.Bool(v)
	case int:
		w.Int(v)
	case int64:
		w.Float64(float64(v))
	case uint64:
		w.Float64(float64(v))
	case float64:
		// JSON has no infinity or NaN. The largest finite number stands in for them: every property
		// that takes a number rejects it, and ignored properties never look at it.
		switch {
		case math.IsNaN(v), math.IsInf(v, 1):
			v = math.MaxFloat64
		case math.IsInf(v, -1):
			v = -math.MaxFloat64
		}
		w.Float64(v)
	case string:
		w.String(v)
	default:
		w.String(n.Value)
	}
	return nil
}
