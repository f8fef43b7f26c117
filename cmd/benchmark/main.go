// benchmark - time each primitive's per-call throughput
//
// Modeled on extra/samples/src/benchmark2.c's fixed-duration timing loop
// (run update() repeatedly until a deadline, divide bytes processed by
// elapsed time) and on the teacher's own benchmarkPhase3SHA3 harness in
// main.go, which timed a fixed iteration count with time.Since instead.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"hermannm.dev/devlog"

	"github.com/ordolib/ordo"
	"github.com/ordolib/ordo/ciphers"
	"github.com/ordolib/ordo/hashes"
	"github.com/ordolib/ordo/modes"
	"github.com/ordolib/ordo/registry"
	"github.com/ordolib/ordo/streamciphers"
)

var logLevel slog.LevelVar

var bufferSizes = []int{16, 256, 1024, 4096, 65536}

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
		Use:   "benchmark NAME [MODE]",
		Short: "Time a hash function, stream cipher, or block cipher's throughput",
		Long: `Benchmarks one registered primitive:

  benchmark SHA-256
  benchmark RC4
  benchmark AES CBC`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runBenchmark,
	}

	cmd.Flags().Duration("duration", 250*time.Millisecond, "time budget per buffer size")
	cmd.Flags().Bool("debug", false, "print debug logging")
	_ = viper.BindPFlags(cmd.Flags())

	return cmd
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	if viper.GetBool("debug") {
		logLevel.Set(slog.LevelDebug)
	}
	duration := viper.GetDuration("duration")
	name := args[0]

	if desc, ok := registry.HashByName(name); ok {
		return benchHash(desc.Name, duration)
	}
	if desc, ok := registry.StreamCipherByName(name); ok {
		return benchStream(desc.Name, duration)
	}
	if desc, ok := registry.BlockCipherByName(name); ok {
		if len(args) != 2 {
			return fmt.Errorf("please specify a mode of operation for block cipher %s", desc.Name)
		}
		modeDesc, ok := registry.BlockModeByName(args[1])
		if !ok {
			return fmt.Errorf("unrecognized mode of operation %q", args[1])
		}
		return benchBlock(desc.Name, modeDesc.Name, duration)
	}

	return fmt.Errorf("unrecognized primitive %q", name)
}

func megabytesPerSecond(bytes int, elapsed time.Duration) float64 {
	return float64(bytes) / elapsed.Seconds() / (1024 * 1024)
}

func timeBlock(duration time.Duration, step func()) (iterations uint64, elapsed time.Duration) {
	deadline := time.Now().Add(duration)
	start := time.Now()
	for time.Now().Before(deadline) {
		step()
		iterations++
	}
	return iterations, time.Since(start)
}

func benchHash(name string, duration time.Duration) error {
	fmt.Printf("Benchmarking hash function %s:\n\n", name)
	for _, size := range bufferSizes {
		buf := make([]byte, size)
		h := hashes.New(name)
		if st := h.Init(nil); !st.OK() {
			return st
		}
		iterations, elapsed := timeBlock(duration, func() { h.Write(buf) })
		fmt.Printf("\t* %6d bytes: %4.0f MiB/s\n", size, megabytesPerSecond(size*int(iterations), elapsed))
	}
	return nil
}

func benchStream(name string, duration time.Duration) error {
	fmt.Printf("Benchmarking stream cipher %s:\n\n", name)
	c := streamciphers.New(name)
	key := make([]byte, c.KeyLen(32))
	if st := c.Init(key, nil); !st.OK() {
		return st
	}

	for _, size := range bufferSizes {
		buf := make([]byte, size)
		iterations, elapsed := timeBlock(duration, func() { c.Process(buf) })
		fmt.Printf("\t* %6d bytes: %4.0f MiB/s\n", size, megabytesPerSecond(size*int(iterations), elapsed))
	}
	return nil
}

func benchBlock(cipherName, modeName string, duration time.Duration) error {
	fmt.Printf("Benchmarking block cipher %s in %s mode:\n\n", cipherName, modeName)

	if accel, st := ordo.QueryBlockCipher(cipherName, ordo.QueryPlatformAccel, 0); st.OK() {
		if accel == 1 {
			fmt.Println("\t(hardware-accelerated)")
		} else {
			fmt.Println("\t(software path)")
		}
	}

	c := ciphers.New(cipherName)
	key := make([]byte, c.KeyLen(32))
	if st := c.Init(key, nil); !st.OK() {
		return st
	}
	iv := make([]byte, c.BlockSize())

	for _, size := range bufferSizes {
		m := modes.New(modeName)
		if st := m.Init(c.Copy(), iv, modes.Encrypt, nil); !st.OK() {
			return st
		}
		buf := make([]byte, size)
		iterations, elapsed := timeBlock(duration, func() { m.Update(buf) })
		fmt.Printf("\t* %6d bytes: %4.0f MiB/s\n", size, megabytesPerSecond(size*int(iterations), elapsed))
	}
	return nil
}
