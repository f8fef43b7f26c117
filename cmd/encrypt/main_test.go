package main

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTripViaCLI(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "plaintext.txt")
	encPath := filepath.Join(dir, "ciphertext.bin")
	decPath := filepath.Join(dir, "decrypted.txt")

	plaintext := []byte("round trip through the encrypt sample")
	require.NoError(t, os.WriteFile(inPath, plaintext, 0o600))

	key := make([]byte, 16)
	iv := make([]byte, 16)
	keyHex, ivHex := hex.EncodeToString(key), hex.EncodeToString(iv)

	viper.Reset()
	encryptCmd := rootCmd()
	encryptCmd.SetArgs([]string{"--cipher", "AES", "--mode", "CBC", "--key", keyHex, "--iv", ivHex, inPath, encPath})
	require.NoError(t, encryptCmd.Execute())

	viper.Reset()
	decryptCmd := rootCmd()
	decryptCmd.SetArgs([]string{"--cipher", "AES", "--mode", "CBC", "--key", keyHex, "--iv", ivHex, "--decrypt", encPath, decPath})
	require.NoError(t, decryptCmd.Execute())

	got, err := os.ReadFile(decPath)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestEncryptRejectsUnknownCipher(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(inPath, []byte("x"), 0o600))

	viper.Reset()
	cmd := rootCmd()
	cmd.SetArgs([]string{"--cipher", "does-not-exist", inPath, filepath.Join(dir, "out.bin")})
	require.Error(t, cmd.Execute())
}

func TestRunSelfTestPasses(t *testing.T) {
	require.NoError(t, runSelfTest())
}
