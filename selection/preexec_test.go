package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uts-harness/runconfig/runconfig"
)

func TestPreexecFor(t *testing.T) {
	c, err := runconfig.Load([]byte(`{
  "preexec": {
    "test/cert.uts": "load_layer(\"tls\")",
    "test/contrib/*.uts": "load_contrib(\"%name%\")",
    "test\\contrib\\special.uts": "special()",
    "[broken": "never()"
  }
}`))
	require.NoError(t, err)

	for _, params := range []struct {
		testFile string
		expected string
		found    bool
	}{
		{"test/cert.uts", `load_layer("tls")`, true},
		{"test/contrib/bgp.uts", `load_contrib("bgp")`, true},
		{`test\contrib\isotp.uts`, `load_contrib("isotp")`, true},
		{`test\contrib\special.uts`, "special()", true},
		{"test/other.uts", "", false},
		{"[broken", "never()", true},
	} {
		t.Run(params.testFile, func(t *testing.T) {
			s, ok := PreexecFor(c, params.testFile)
			assert.Equal(t, params.found, ok)
			assert.Equal(t, params.expected, s)
		})
	}
}

func TestPreexecForFallsBackToGlobal(t *testing.T) {
	c, err := runconfig.Load([]byte(`{"preexec": {"a.uts": "a()"}, "global_preexec": "setup(\"%name%\")"}`))
	require.NoError(t, err)

	s, ok := PreexecFor(c, "a.uts")
	assert.True(t, ok)
	assert.Equal(t, "a()", s)

	s, ok = PreexecFor(c, "dir/b.uts")
	assert.True(t, ok)
	assert.Equal(t, `setup("b")`, s)
}
