package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadParams(t *testing.T) {
	var params commandParams
	var errOut bytes.Buffer
	ok := params.Read([]string{"runconfig",
		"-config", "windows.utsc",
		"-K", "ipv6,netaccess", "-K", "crypto",
		"-match", "test/a.uts", "-match", "test/b.uts",
		"-strict", "-debug",
	}, &errOut)
	require.True(t, ok, errOut.String())

	assert.Equal(t, "windows.utsc", params.config)
	assert.Equal(t, []string{"ipv6", "netaccess", "crypto"}, params.keywords.Keywords())
	assert.Equal(t, stringList{"test/a.uts", "test/b.uts"}, params.match)
	assert.True(t, params.strict)
	assert.True(t, params.debug)
	assert.Equal(t, "", params.print)
	assert.Equal(t, "", params.serve)
}

func TestReadParamsErrors(t *testing.T) {
	for _, p := range []struct {
		name    string
		args    []string
		message string
	}{
		{"no config", []string{}, "-config is required"},
		{"bad print format", []string{"-config", "a.utsc", "-print", "xml"}, "-print must be"},
		{"print with match", []string{"-config", "a.utsc", "-print", "json", "-match", "a.uts"}, "cannot be used together"},
		{"unknown flag", []string{"-config", "a.utsc", "-x"}, "-x"},
	} {
		t.Run(p.name, func(t *testing.T) {
			var params commandParams
			var errOut bytes.Buffer
			assert.False(t, params.Read(append([]string{"runconfig"}, p.args...), &errOut))
			assert.Contains(t, errOut.String(), p.message)
		})
	}
}
