// Package cmd wires the command-line surface of the generator.
package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HydroshieldMKII/rainbow-table-generator/appstate"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/config"
)

// Version is the current version of the generator.
const Version = "1.2.0"

var (
	cfgFile     string
	enableDebug bool
	scope       = gap.NewScope(gap.User, "RainbowTableGenerator")
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "rainbowgen",
	Version: Version,
	Short:   "Rainbow table generator",
	Long: "Generates digest-to-plaintext rainbow tables by exhaustive enumeration,\n" +
		"searches the candidate space for a target digest, and benchmarks hash throughput.",
}

// Root returns the fully wired root command for execution by main.
func Root() *cobra.Command {
	return rootCmd
}

// init registers persistent flags, binds them to viper, and sets defaults.
func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/rainbowgen.yaml)")
	rootCmd.PersistentFlags().BoolVar(&enableDebug, "debug", false, "Enable debug mode")
	rootCmd.PersistentFlags().StringP("algorithm", "a", "", "Digest algorithm (md5, sha1, sha256, sha512)")
	rootCmd.PersistentFlags().StringP("salt", "s", "", "Salt prepended to every candidate before hashing")
	rootCmd.PersistentFlags().Int("min-length", 1, "Minimum candidate length")
	rootCmd.PersistentFlags().Int("max-length", 0, "Maximum candidate length (required)")
	rootCmd.PersistentFlags().IntP("threads", "t", config.DefaultThreads(), "Worker thread count")
	rootCmd.PersistentFlags().Bool("uppercase", false, "Include uppercase letters in the charset")
	rootCmd.PersistentFlags().Bool("digits", false, "Include digits in the charset")
	rootCmd.PersistentFlags().Bool("special", false, "Include special symbols in the charset")

	bindings := map[string]string{
		"debug":      "debug",
		"algorithm":  "algorithm",
		"salt":       "salt",
		"min_length": "min-length",
		"max_length": "max-length",
		"threads":    "threads",
		"uppercase":  "uppercase",
		"digits":     "digits",
		"special":    "special",
	}
	for key, flag := range bindings {
		err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
		cobra.CheckErr(err)
	}

	config.SetDefaults()
}

// initConfig reads configuration files, prioritizing an explicit --config
// path over the cwd, scope config dirs, and the user config dir.
func initConfig() {
	appstate.ErrorLogger.SetReportCaller(true)

	home, err := os.UserConfigDir()
	cobra.CheckErr(err)

	cwd, err := os.Getwd()
	cobra.CheckErr(err)
	viper.AddConfigPath(cwd)

	configDirs, err := scope.ConfigDirs()
	cobra.CheckErr(err)

	for _, dir := range configDirs {
		viper.AddConfigPath(dir)
	}

	viper.AddConfigPath(home)
	viper.SetConfigType("yaml")
	viper.SetConfigName("rainbowgen")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		appstate.State.ConfigFileUsed = viper.ConfigFileUsed()
		appstate.Logger.Debug("Using config file", "config_file", viper.ConfigFileUsed())
	}

	initLogger()
}

// initLogger raises the log level when debug mode is enabled.
func initLogger() {
	appstate.State.Debug = viper.GetBool("debug")

	if appstate.State.Debug {
		appstate.Logger.SetLevel(log.DebugLevel)
		appstate.Logger.SetReportCaller(true)
	} else {
		appstate.Logger.SetLevel(log.InfoLevel)
	}
}
