package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/avasse/grabby/internal/cli/styles"
	"github.com/avasse/grabby/internal/config"
	"github.com/avasse/grabby/internal/logging"
	"github.com/avasse/grabby/pkg/download"
	"github.com/avasse/grabby/pkg/download/downloadtest"
)

var (
	simDir     string
	simPrompt  bool
	simCount   int
	simWorkers int
	simUpdates int
)

// sampleFiles are cycled through to fabricate download requests.
var sampleFiles = []struct {
	name  string
	bytes int64
}{
	{"report.pdf", 1 << 20},
	{"photo.jpg", 3 << 20},
	{"archive.tar.gz", 48 << 20},
	{"notes.txt", 4 << 10},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Drive a download handler through the built-in fake engine",
	Long: `Simulate builds a handler from the configured destination policy and runs
it against the fake engine, printing the decision each download produced.

Examples:
  grabby simulate                      # folder policy, configured dir
  grabby simulate --dir /tmp/dl -n 10  # ten downloads into /tmp/dl
  grabby simulate --prompt             # engine save dialog for each`,
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringVar(&simDir, "dir", "", "folder to save downloads into")
	simulateCmd.Flags().BoolVar(&simPrompt, "prompt", false, "defer to the engine save dialog instead of a folder")
	simulateCmd.Flags().IntVarP(&simCount, "count", "n", 0, "number of downloads to simulate")
	simulateCmd.Flags().IntVar(&simWorkers, "workers", 0, "concurrent downloads (0 = configured default)")
	simulateCmd.Flags().IntVar(&simUpdates, "updates", 0, "progress updates per download")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applySimFlags(cmd, cfg)

	logger := newLogger(cfg.Logging)
	ctx := logging.WithContext(cmd.Context(), logger)
	ctx = logging.WithComponent(ctx, "simulate")

	theme := styles.DefaultTheme()

	onUpdated := func(ctx context.Context, item download.Item) {
		logging.FromContext(ctx).Debug().
			Uint32("id", item.ID).
			Str("state", item.State()).
			Int("percent", item.PercentComplete).
			Msg("download updated")
	}

	var handler download.Handler
	var policy string
	if cfg.Downloads.Prompt {
		handler = download.PromptUser(onUpdated)
		policy = "prompt for every download"
	} else {
		handler = download.UseFolder(cfg.Downloads.Dir, onUpdated)
		policy = fmt.Sprintf("save into %s", cfg.Downloads.Dir)
	}

	reqs := make([]downloadtest.Request, cfg.Simulate.Count)
	for i := range reqs {
		sample := sampleFiles[i%len(sampleFiles)]
		reqs[i] = downloadtest.Request{
			URL:               fmt.Sprintf("https://example.org/files/%d/%s", i+1, sample.name),
			SuggestedFilename: sample.name,
			TotalBytes:        sample.bytes,
			Updates:           cfg.Simulate.Updates,
		}
	}

	fmt.Println(theme.Title("grabby simulate"))
	fmt.Println(theme.KV("policy", policy))
	fmt.Println(theme.KV("downloads", fmt.Sprintf("%d (%d workers)", cfg.Simulate.Count, cfg.Simulate.Workers)))
	fmt.Println()

	engine := downloadtest.NewEngine(handler)
	results, err := engine.RunMany(ctx, reqs, cfg.Simulate.Workers)
	if err != nil {
		return fmt.Errorf("simulate downloads: %w", err)
	}

	completed := 0
	for i, res := range results {
		dest := res.Destination
		if res.ShowDialog {
			dest = "(engine save dialog)"
		}
		status := theme.OK(res.Final.State())
		if !res.Allowed {
			status = theme.Fail("blocked")
		} else if res.Final.IsComplete {
			completed++
		}
		fmt.Printf("  %2d. %-16s %-9s %s\n", i+1, reqs[i].SuggestedFilename, status, dest)
	}

	fmt.Println()
	fmt.Println(theme.KV("completed", fmt.Sprintf("%d/%d", completed, len(results))))
	return nil
}

// applySimFlags lets explicit flags override file/env configuration.
func applySimFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("dir") {
		cfg.Downloads.Dir = simDir
	}
	if cmd.Flags().Changed("prompt") {
		cfg.Downloads.Prompt = simPrompt
	}
	if cmd.Flags().Changed("count") {
		cfg.Simulate.Count = simCount
	}
	if cmd.Flags().Changed("workers") {
		cfg.Simulate.Workers = simWorkers
	}
	if cmd.Flags().Changed("updates") {
		cfg.Simulate.Updates = simUpdates
	}
}

func newLogger(cfg config.LoggingConfig) zerolog.Logger {
	lc := logging.DefaultConfig()
	if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil && parsed != zerolog.NoLevel {
		lc.Level = parsed
	}
	if cfg.Format == "json" || cfg.Format == "console" {
		lc.Format = cfg.Format
	}
	return logging.New(lc)
}
