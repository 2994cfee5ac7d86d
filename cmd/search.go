package cmd

import (
	"github.com/spf13/cobra"

	"github.com/HydroshieldMKII/rainbow-table-generator/appstate"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/config"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/display"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/engine"
)

var searchOutput string

// searchCmd looks for the plaintext of one target digest without building a
// table. Asking it to also persist a table is ambiguous and rejected.
var searchCmd = &cobra.Command{
	Use:   "search <digest>",
	Short: "Search the candidate space for the plaintext of a target digest",
	Long: "Enumerates the configured candidate space until some candidate's salted digest\n" +
		"matches the target, then stops cooperatively. No table is accumulated; to get\n" +
		"both a table and a search result in one pass, use generate --search.",
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchOutput, "output", "o", "", "Unsupported here; searching does not produce a table")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	display.Startup(Version)

	target := args[0]
	if err := engine.CheckRequest(false, searchOutput, target); err != nil {
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
	appstate.State.SetCurrentActivity(appstate.CurrentActivitySearching)

	res, err := eng.Search(target)
	if err != nil {
		return err
	}

	if res != nil {
		display.SearchHit(res)
	} else {
		display.SearchExhausted(eng.Keyspace().Total())
	}

	appstate.State.SetCurrentActivity(appstate.CurrentActivityStopping)
	display.ShuttingDown()

	return nil
}
