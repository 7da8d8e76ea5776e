package main

import (
	"fmt"
	"io"
	"moodtracker/internal"
	"moodtracker/internal/di"
	"moodtracker/internal/models"
	"moodtracker/internal/providers"
	"moodtracker/internal/services"
	"moodtracker/internal/structures"
	"moodtracker/internal/views"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

func cliFlags() *structures.CliFlags {
	return &structures.CliFlags{ConfigPath: configPath, DebugMode: debugMode}
}

func runServe(cmd *cobra.Command, _ []string) error {
	app, cleanup, err := di.InitApp(cliFlags())
	if err != nil {
		return err
	}
	defer cleanup()

	return app.Run(cmd.Context())
}

// withCore loads the store, runs fn and flushes the snapshot afterwards.
func withCore(fn func(core *internal.Core) error) error {
	core, cleanup, err := di.InitCore(cliFlags())
	if err != nil {
		return err
	}
	defer cleanup()

	if err = fn(core); err != nil {
		return err
	}
	return core.Persist()
}

func runRecord(cmd *cobra.Command, args []string) error {
	mood, err := cast.ToIntE(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", services.ErrInvalidMoodValue, args[0])
	}

	return withCore(func(core *internal.Core) error {
		snap, err := core.Service.RecordMood(cmd.Context(), mood)
		if err != nil {
			return err
		}
		core.Logger.Infof(providers.TypeApp, "Mood recorded: %s", models.LabelOf(mood))

		summary := services.Summarize(snap)
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s\n\n", summary.CurrentLabel)
		fmt.Fprintln(cmd.OutOrStdout(), views.RenderSummary(summary, views.DefaultStyles()))
		return nil
	})
}

func runSummary(cmd *cobra.Command, _ []string) error {
	return withCore(func(core *internal.Core) error {
		snap := core.Service.Snapshot()
		summary := services.Summarize(snap)
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), summary)
		}
		recs := services.Recommendations(snap.CurrentMood)
		fmt.Fprintln(cmd.OutOrStdout(), views.RenderDashboard(summary, recs, views.DefaultStyles()))
		return nil
	})
}

func runHistory(cmd *cobra.Command, _ []string) error {
	return withCore(func(core *internal.Core) error {
		history := core.Service.History()
		if jsonOutput {
			if history == nil {
				history = []models.MoodRecord{}
			}
			return printJSON(cmd.OutOrStdout(), history)
		}
		styles := views.DefaultStyles()
		fmt.Fprintln(cmd.OutOrStdout(), views.RenderHistory(history, styles))
		fmt.Fprintln(cmd.OutOrStdout(), views.RenderMoodLegend(styles))
		return nil
	})
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	return withCore(func(core *internal.Core) error {
		recs := services.Recommendations(core.Service.Snapshot().CurrentMood)
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), recs)
		}
		fmt.Fprintln(cmd.OutOrStdout(), views.RenderRecommendations(recs, views.DefaultStyles()))
		return nil
	})
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
