package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestTemplatesCommand(t *testing.T) {
	out := run(t, "templates")
	assert.True(t, strings.HasPrefix(out, "ID"))
	assert.Contains(t, out, "nda")
}

func TestTemplatesShowUnknown(t *testing.T) {
	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"templates", "show", "no-such-template"})
	assert.Error(t, root.Execute())
}

func TestQRRoundTrip(t *testing.T) {
	t.Setenv("VERIFICATION_BASE_URL", "https://agreements.example.com")
	file := filepath.Join(t.TempDir(), "code.png")

	run(t, "qr", "encode", "0123456789ab", "--challenge", "tok", "-o", file)
	out := run(t, "qr", "decode", file)

	assert.Equal(t, "0123456789ab\nchallenge: tok\n", out)
}
