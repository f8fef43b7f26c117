package main

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestBenchHashRuns(t *testing.T) {
	require.NoError(t, benchHash("MD5", 5*time.Millisecond))
}

func TestBenchStreamRuns(t *testing.T) {
	require.NoError(t, benchStream("RC4", 5*time.Millisecond))
}

func TestBenchBlockRuns(t *testing.T) {
	require.NoError(t, benchBlock("AES", "CBC", 5*time.Millisecond))
}

func TestRunBenchmarkRejectsUnrecognizedPrimitive(t *testing.T) {
	viper.Reset()
	cmd := rootCmd()
	cmd.SetArgs([]string{"does-not-exist"})
	require.Error(t, cmd.Execute())
}

func TestRunBenchmarkRequiresModeForBlockCipher(t *testing.T) {
	viper.Reset()
	cmd := rootCmd()
	cmd.SetArgs([]string{"--duration", "5ms", "AES"})
	require.Error(t, cmd.Execute())
}
