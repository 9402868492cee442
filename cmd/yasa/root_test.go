package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/corvidnlp/yasa/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_OneSentPerLineBeamFillHumanOutput(t *testing.T) {
	dir := t.TempDir()
	srcPath := writeTemp(t, dir, "src.txt", "one fish\ntwo fish\n")
	tgtPath := writeTemp(t, dir, "tgt.txt", "un poisson\ndeux poissons\n")

	opts := config.Default()
	opts.SourcePath = srcPath
	opts.TargetPath = tgtPath
	opts.CognateMode = "none"
	opts.OutputFormat = "human"

	var buf bytes.Buffer
	require.NoError(t, run(&buf, opts))
	assert.Contains(t, buf.String(), "one fish")
	assert.Contains(t, buf.String(), "un poisson")
}

func TestRun_InvalidOptionsFails(t *testing.T) {
	opts := config.Default()
	err := run(&bytes.Buffer{}, opts)
	assert.Error(t, err)
}

func TestRun_LinkedIDOutput(t *testing.T) {
	dir := t.TempDir()
	srcPath := writeTemp(t, dir, "src.txt", "hello world\n")
	tgtPath := writeTemp(t, dir, "tgt.txt", "bonjour monde\n")

	opts := config.Default()
	opts.SourcePath = srcPath
	opts.TargetPath = tgtPath
	opts.CognateMode = "none"
	opts.OutputFormat = "linked-id"

	var buf bytes.Buffer
	require.NoError(t, run(&buf, opts))
	assert.Contains(t, buf.String(), "<link xtargets=")
}
