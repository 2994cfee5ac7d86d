package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/HydroshieldMKII/rainbow-table-generator/appstate"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/config"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/display"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/engine"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/progress"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/table"
)

var (
	generateOutput string
	generateFormat string
	generateForce  bool
	generateSearch string
)

// generateCmd builds the full rainbow table, optionally searching for a
// target digest in the same pass and serializing the result to disk.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build a rainbow table over the configured candidate space",
	Long: "Enumerates every candidate in the configured charset and length range,\n" +
		"computes the salted digest of each, and accumulates a digest-to-plaintext table.\n" +
		"With --search, the same pass also records the plaintext of a target digest.",
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Destination file for the finished table")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "txt", "Output format (txt, csv, json)")
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "Overwrite an existing output file")
	generateCmd.Flags().StringVar(&generateSearch, "search", "", "Also search for this target digest while building")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	display.Startup(Version)

	cfg, err := config.FromViper()
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}

	// Resolve the serialization request before any hashing starts.
	var format table.Format
	if generateOutput != "" {
		format, err = table.ParseFormat(generateFormat)
		if err != nil {
			return err
		}
	}

	display.RunParameters(cfg, len([]rune(eng.Charset())), eng.Keyspace().Total())
	appstate.State.SetCurrentActivity(appstate.CurrentActivityGenerating)

	obs := progress.NewBar(eng.Keyspace().Total())
	start := time.Now()

	var (
		tbl *table.Table
		res *engine.Result
	)

	if generateSearch != "" {
		tbl, res, err = eng.BuildTableAndSearch(generateSearch, obs)
	} else {
		tbl, err = eng.BuildTable(obs)
	}

	if err != nil {
		return err
	}

	display.TableComplete(tbl, time.Since(start))

	if generateSearch != "" {
		if res != nil {
			display.SearchHit(res)
		} else {
			display.SearchExhausted(eng.Keyspace().Total())
		}
	}

	if generateOutput != "" {
		appstate.State.SetCurrentActivity(appstate.CurrentActivityWriting)

		if err := table.Write(tbl, generateOutput, format, generateForce); err != nil {
			return err
		}

		display.TableWritten(generateOutput, format)
	}

	appstate.State.SetCurrentActivity(appstate.CurrentActivityStopping)
	display.ShuttingDown()

	return nil
}
