// Command trackandtreat is the CLI front end for the Track and Treat
// diet/health tracker: profile and assessment management, daily tracking,
// reminders, feedback, and AI-generated plans, recipes, and guidance.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mny978/track-and-treat/internal/config"
	"github.com/Mny978/track-and-treat/internal/gemini"
	"github.com/Mny978/track-and-treat/internal/storage"
	"github.com/Mny978/track-and-treat/internal/store"
)

var version = "dev"

var noColor bool

var rootCmd = &cobra.Command{
	Use:           "trackandtreat",
	Short:         "Personal diet and health tracking with AI-assisted dietetics",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("trackandtreat version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(langCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(recipesCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(guidanceCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(chatCmd)
}

// app bundles the opened storage and stores for one command invocation.
type app struct {
	cfg       config.Config
	kv        *storage.Store
	store     *store.Store
	reminders *store.ReminderStore
	feedback  *store.FeedbackStore
}

// openApp loads config, initializes logging, and opens the SQLite-backed
// stores.
var openApp = func() (*app, error) {
	cfg := config.Load()

	logLevel := slog.LevelInfo
	if strings.EqualFold(cfg.Log.Level, "debug") {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	kv, err := storage.Open(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	return &app{
		cfg:       cfg,
		kv:        kv,
		store:     store.New(kv),
		reminders: store.NewReminderStore(kv),
		feedback:  store.NewFeedbackStore(kv),
	}, nil
}

func (a *app) Close() {
	if err := a.kv.Close(); err != nil {
		slog.Warn("closing storage", "error", err)
	}
}

// gemini builds the AI gateway client from config.
func (a *app) gemini(cmd *cobra.Command) (*gemini.Client, error) {
	if a.cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set; AI commands need it (a .env file works too)")
	}
	return gemini.NewWithModels(cmd.Context(), a.cfg.Gemini.APIKey, a.cfg.Gemini.FlashModel, a.cfg.Gemini.ProModel)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v", err)
		os.Exit(1)
	}
}
