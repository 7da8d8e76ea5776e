package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "configs/config.yml"

var (
	// Global flags
	configPath string
	debugMode  bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "moodtracker",
	Short: "Daily mood tracking with weekly trends and wellness suggestions",
	Long: `moodtracker records one mood per day on a 1-5 scale
(1 Poor, 2 Low, 3 Neutral, 4 Good, 5 Excellent), keeps a week-long
history and derives a sentiment, a wellness score and a trend from it.

Run "moodtracker serve" to expose the HTTP API, or use the
record/summary/history/recommend commands directly.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var recordCmd = &cobra.Command{
	Use:   "record [1-5]",
	Short: "Record today's mood",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecord,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the current mood, wellness score and weekly trend",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the mood history, oldest first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest wellness activities",
	Args:  cobra.NoArgs,
	RunE:  runRecommend,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "Log to the console as well as the log file")

	for _, cmd := range []*cobra.Command{summaryCmd, historyCmd, recommendCmd} {
		cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of the rendered view")
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(recommendCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
