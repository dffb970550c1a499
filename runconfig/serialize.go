package runconfig

import (
	"strconv"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	yaml "gopkg.in/yaml.v3"
)

// MarshalJSON writes the configuration in canonical form: properties in a fixed order, every
// property from the core schema present even if it has its default value, preexec patterns
// sorted, and optional properties only if they were set. Loading the output gives back an equal
// configuration.
func (c *TestRunConfiguration) MarshalJSON() ([]byte, error) {
	w := jwriter.NewWriter()
	c.WriteToJSONWriter(&w)
	return w.Bytes(), w.Error()
}

// WriteToJSONWriter is the streaming form of MarshalJSON.
func (c *TestRunConfiguration) WriteToJSONWriter(w *jwriter.Writer) {
	obj := w.Object()
	writeStrings(obj.Name(KeyTestFiles), c.testFiles)
	writeStrings(obj.Name(KeyRemoveTestFiles), c.removeTestFiles)
	obj.Name(KeyBreakFailed).Bool(c.breakFailed)
	obj.Name(KeyOnlyFailed).Bool(c.onlyFailed)
	preexecObj := obj.Name(KeyPreexec).Object()
	for _, pattern := range c.preexec.Patterns() {
		preexecObj.Name(pattern).String(c.preexec.entries[pattern])
	}
	preexecObj.End()
	writeStrings(obj.Name(KeySkipKeywords), c.skipKeywords.keywords)
	if c.requireKeywords.Len() != 0 {
		writeStrings(obj.Name(KeyRequireKeywords), c.requireKeywords.keywords)
	}
	if c.globalPreexec != "" {
		obj.Name(KeyGlobalPreexec).String(c.globalPreexec)
	}
	if len(c.modules) != 0 {
		writeStrings(obj.Name(KeyModules), c.modules)
	}
	if c.local {
		obj.Name(KeyLocal).Bool(true)
	}
	if c.verbosity.IsDefined() {
		obj.Name(KeyVerbosity).Int(c.verbosity.Value())
	}
	if c.format.IsDefined() {
		obj.Name(KeyFormat).String(c.format.Value())
	}
	if c.outputFile.IsDefined() {
		obj.Name(KeyOutputFile).String(c.outputFile.Value())
	}
	obj.End()
}

func writeStrings(w *jwriter.Writer, values []string) {
	arr := w.Array()
	for _, v := range values {
		arr.String(v)
	}
	arr.End()
}

// MarshalYAML implements yaml.Marshaler, producing the same properties in the same order as
// MarshalJSON.
func (c *TestRunConfiguration) MarshalYAML() (interface{}, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value *yaml.Node) {
		doc.Content = append(doc.Content, stringNode(key), value)
	}
	add(KeyTestFiles, stringsNode(c.testFiles))
	add(KeyRemoveTestFiles, stringsNode(c.removeTestFiles))
	add(KeyBreakFailed, boolNode(c.breakFailed))
	add(KeyOnlyFailed, boolNode(c.onlyFailed))
	preexecNode := &yaml.Node{Kind: yaml.MappingNode}
	for _, pattern := range c.preexec.Patterns() {
		preexecNode.Content = append(preexecNode.Content,
			stringNode(pattern), stringNode(c.preexec.entries[pattern]))
	}
	if len(preexecNode.Content) == 0 {
		preexecNode.Style = yaml.FlowStyle
	}
	add(KeyPreexec, preexecNode)
	add(KeySkipKeywords, stringsNode(c.skipKeywords.keywords))
	if c.requireKeywords.Len() != 0 {
		add(KeyRequireKeywords, stringsNode(c.requireKeywords.keywords))
	}
	if c.globalPreexec != "" {
		add(KeyGlobalPreexec, stringNode(c.globalPreexec))
	}
	if len(c.modules) != 0 {
		add(KeyModules, stringsNode(c.modules))
	}
	if c.local {
		add(KeyLocal, boolNode(true))
	}
	if c.verbosity.IsDefined() {
		add(KeyVerbosity, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(c.verbosity.Value())})
	}
	if c.format.IsDefined() {
		add(KeyFormat, stringNode(c.format.Value()))
	}
	if c.outputFile.IsDefined() {
		add(KeyOutputFile, stringNode(c.outputFile.Value()))
	}
	return doc, nil
}

// ToYAML returns the configuration as a YAML document.
func (c *TestRunConfiguration) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func boolNode(b bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
}

func stringsNode(values []string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, v := range values {
		n.Content = append(n.Content, stringNode(v))
	}
	if len(values) == 0 {
		n.Style = yaml.FlowStyle
	}
	return n
}
