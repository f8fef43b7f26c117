// hashsum - digest files named on the command line
//
// Mirrors extra/samples/src/hashsum.c from the original library: read each
// named file in chunks, feed it through the selected hash function, and
// print its hex digest followed by the path, one line per file.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"hermannm.dev/devlog"

	"github.com/ordolib/ordo/hashes"
	"github.com/ordolib/ordo/internal/compliance"
	"github.com/ordolib/ordo/registry"
)

var logLevel slog.LevelVar

func main() {
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stderr, &devlog.Options{
		Level: &logLevel,
	})))

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hashsum [FILE ...]",
		Short: "Digest files under a selectable hash function",
		RunE:  runHashsum,
	}

	cmd.Flags().StringP("algorithm", "a", "MD5", "hash function (prefix-matched, e.g. MD5, SHA-256, Skein-256)")
	cmd.Flags().Bool("debug", false, "print debug logging")
	cmd.Flags().Bool("self-test", false, "run the known-answer self-test suite and exit without digesting")
	_ = viper.BindPFlags(cmd.Flags())

	return cmd
}

func runHashsum(cmd *cobra.Command, args []string) error {
	if viper.GetBool("debug") {
		logLevel.Set(slog.LevelDebug)
	}

	if viper.GetBool("self-test") {
		return runSelfTest()
	}

	algorithm := viper.GetString("algorithm")
	desc, ok := registry.HashByName(algorithm)
	if !ok {
		return fmt.Errorf("invalid hash function %q", algorithm)
	}

	if len(args) == 0 {
		return cmd.Usage()
	}

	for _, path := range args {
		if err := processFile(path, desc.Name); err != nil {
			slog.Error("digest failed", "path", path, "error", err)
			return err
		}
	}
	return nil
}

func processFile(path, hashName string) error {
	h := hashes.New(hashName)
	if st := h.Init(nil); !st.OK() {
		return st
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	buf := make([]byte, 4096)
	for {
		n, err := file.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	digest := h.Final(nil)
	fmt.Printf("%s  %s\n", hex.EncodeToString(digest), path)
	return nil
}

func runSelfTest() error {
	report := compliance.Run(compliance.DefaultSuite())
	for _, r := range report.Results {
		if r.Passed {
			slog.Info("self-test vector passed", "id", r.Vector.ID, "description", r.Vector.Description)
		} else {
			slog.Error("self-test vector failed", "id", r.Vector.ID, "description", r.Vector.Description, "got", r.Got, "error", r.Err)
		}
	}
	if !report.Compliant() {
		return fmt.Errorf("self-test failed: %d passed, %d failed", report.Passed, report.Failed)
	}
	slog.Info("self-test suite passed", "vectors", report.Passed)
	return nil
}
