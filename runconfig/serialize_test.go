package runconfig

import (
	"encoding/json"
	"testing"

	m "github.com/launchdarkly/go-test-helpers/v2/matchers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullDocument = `{
  "testfiles": ["test\\*.uts", "test/scapy/layers/*.uts"],
  "remove_testfiles": ["test\\bpf.uts"],
  "breakfailed": true,
  "onlyfailed": true,
  "preexec": {
    "test/cert.uts": "load_layer(\"tls\")",
    "test/contrib/*.uts": "load_contrib(\"%name%\")"
  },
  "kw_ko": ["osx", "linux", "crypto_advanced"],
  "kw_ok": ["basic"],
  "global_preexec": "conf.verb = 0",
  "modules": ["scapy.layers.tls"],
  "local": true,
  "verb": 3,
  "format": "ansi",
  "outputfile": "results.txt"
}`

func TestMarshalJSONDefaults(t *testing.T) {
	data, err := Default().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"testfiles":[],"remove_testfiles":[],"breakfailed":false,"onlyfailed":false,"preexec":{},"kw_ko":[]}`,
		string(data))
}

func TestMarshalJSONIsCanonical(t *testing.T) {
	c := mustLoad(t, `{"kw_ko": ["b", "a"], "preexec": {"z.uts": "z()", "a.uts": "a()"}, "breakfailed": true}`)
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t,
		`{"testfiles":[],"remove_testfiles":[],"breakfailed":true,"onlyfailed":false,`+
			`"preexec":{"a.uts":"a()","z.uts":"z()"},"kw_ko":["b","a"]}`,
		string(data))
}

func TestMarshalJSONFullDocument(t *testing.T) {
	c := mustLoad(t, fullDocument)
	m.In(t).Assert(c, m.JSONStrEqual(fullDocument))
}

func TestJSONRoundTrip(t *testing.T) {
	for _, params := range []struct {
		desc  string
		input string
	}{
		{"defaults", `{}`},
		{"breakfailed only", `{"breakfailed": true}`},
		{"duplicated keywords", `{"kw_ko": ["ipv6", "ipv6"]}`},
		{"full document", fullDocument},
	} {
		t.Run(params.desc, func(t *testing.T) {
			c := mustLoad(t, params.input)
			data, err := c.MarshalJSON()
			require.NoError(t, err)
			reloaded, err := Load(data)
			require.NoError(t, err)
			assert.True(t, c.Equal(reloaded), "reloaded from %s", string(data))
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	for _, params := range []struct {
		desc  string
		input string
	}{
		{"defaults", `{}`},
		{"strings that look like other types", `{"testfiles": ["true", "1", "null", "~"], "format": "yes"}`},
		{"full document", fullDocument},
	} {
		t.Run(params.desc, func(t *testing.T) {
			c := mustLoad(t, params.input)
			data, err := c.ToYAML()
			require.NoError(t, err)
			reloaded, err := Load(data)
			require.NoError(t, err, "YAML was:\n%s", string(data))
			assert.True(t, c.Equal(reloaded), "reloaded from:\n%s", string(data))
		})
	}
}

func TestToYAMLKeepsPropertyOrder(t *testing.T) {
	data, err := Default().ToYAML()
	require.NoError(t, err)
	assert.Equal(t, `testfiles: []
remove_testfiles: []
breakfailed: false
onlyfailed: false
preexec: {}
kw_ko: []
`, string(data))
}
