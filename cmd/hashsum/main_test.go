package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestProcessFileMatchesKnownAnswer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abc.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o600))

	// processFile writes its digest line to stdout; capture it.
	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = w
	err = processFile(path, "MD5")
	os.Stdout = stdout
	require.NoError(t, w.Close())
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "900150983cd24fb0d6963f7d28e17f72  "+path+"\n", string(out))
}

func TestRootCmdRejectsUnknownAlgorithm(t *testing.T) {
	viper.Reset()
	cmd := rootCmd()
	cmd.SetArgs([]string{"--algorithm", "does-not-exist", "somefile"})
	err := cmd.Execute()
	require.Error(t, err)
}

func TestRunSelfTestPasses(t *testing.T) {
	require.NoError(t, runSelfTest())
}
