package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"codeclass/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "codeclass",
	Short:         "Guess the programming language of a source snippet",
	Long:          `codeclass trains token-pattern and token-frequency models on a labelled corpus and names the language of a snippet`,
	SilenceUsage: true,
}

// main registers subcommands and persistent flags, then executes the root
// command. If command execution returns an error, the process exits with
// status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("config", "", "path to codeclass.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("corpus", "", "training corpus directory (overrides [corpus].path)")
	rootCmd.PersistentFlags().String("layout", "", "corpus layout: dirs|flat (overrides [corpus].layout)")
	rootCmd.PersistentFlags().String("model", "", "frequency model: gaussian|difference (overrides [frequency].model)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "neither read nor write the model cache")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to this file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a runtime trace to this file")
	rootCmd.PersistentPreRunE = setupProfiling

	err := rootCmd.Execute()
	stopProfiling()
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
