package runconfig

import (
	"errors"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLintAcceptsValidConfiguration(t *testing.T) {
	c := mustLoad(t, fullDocument)
	assert.Nil(t, Lint(c))
	assert.Nil(t, Lint(Default()))
}

func TestLintReportsBadPatterns(t *testing.T) {
	c := mustLoad(t, `{
  "testfiles": ["ok/*.uts", "bad[.uts"],
  "remove_testfiles": [""],
  "preexec": {"[z": "x()"},
  "kw_ko": ["", "a"]
}`)
	errs := Lint(c)
	require.Len(t, errs, 4)

	var le LintError
	require.True(t, errors.As(errs[0], &le))
	assert.Equal(t, KeyTestFiles, le.Key)
	assert.Equal(t, "bad[.uts", le.Value)
	assert.True(t, errors.Is(errs[0], path.ErrBadPattern))

	require.True(t, errors.As(errs[1], &le))
	assert.Equal(t, KeyRemoveTestFiles, le.Key)
	assert.True(t, errors.Is(errs[1], errEmptyPattern))

	require.True(t, errors.As(errs[2], &le))
	assert.Equal(t, KeyPreexec, le.Key)
	assert.Equal(t, "[z", le.Value)

	require.True(t, errors.As(errs[3], &le))
	assert.Equal(t, KeySkipKeywords, le.Key)
}

func TestLintDoesNotAffectLoading(t *testing.T) {
	_, err := Load([]byte(`{"testfiles": ["bad[.uts"]}`))
	assert.NoError(t, err)
}

func TestCheckPattern(t *testing.T) {
	assert.NoError(t, CheckPattern(`test\*.uts`))
	assert.NoError(t, CheckPattern("x.uts"))
	assert.NoError(t, CheckPattern("a/[bc]/*.uts"))
	assert.Error(t, CheckPattern("a/[bc"))
	assert.Error(t, CheckPattern(""))
}
