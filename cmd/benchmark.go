package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HydroshieldMKII/rainbow-table-generator/appstate"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/config"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/display"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/engine"
)

// benchmarkCmd measures single-thread hash throughput for the current
// configuration over candidates of the maximum length.
var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Measure single-thread hash throughput for the current configuration",
	Long: "Repeatedly draws candidates of the maximum configured length and computes\n" +
		"their salted digests for a fixed wall-clock duration, then reports the\n" +
		"achieved hash rate. Digests are discarded; nothing is stored.",
	RunE: runBenchmark,
}

func init() {
	benchmarkCmd.Flags().IntP("duration", "d", 10, "Benchmark duration in seconds")
	err := viper.BindPFlag("benchmark_duration", benchmarkCmd.Flags().Lookup("duration"))
	cobra.CheckErr(err)

	rootCmd.AddCommand(benchmarkCmd)
}

func runBenchmark(_ *cobra.Command, _ []string) error {
	display.Startup(Version)

	duration := time.Duration(viper.GetInt("benchmark_duration")) * time.Second
	if err := config.ValidateBenchmarkDuration(duration); err != nil {
		return err
	}

	cfg, err := config.FromViper()
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}

	display.RunParameters(cfg, len([]rune(eng.Charset())), eng.Keyspace().Total())
	appstate.State.SetCurrentActivity(appstate.CurrentActivityBenchmarking)
	display.BenchmarkStarting(duration)

	sample, err := eng.Benchmark(duration)
	if err != nil {
		return err
	}

	display.Benchmark(sample)

	appstate.State.SetCurrentActivity(appstate.CurrentActivityStopping)
	display.ShuttingDown()

	return nil
}
