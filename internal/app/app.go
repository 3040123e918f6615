package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/alesr/pricewatch/internal/client"
	"github.com/alesr/pricewatch/internal/config"
	"github.com/alesr/pricewatch/internal/logging"
	"github.com/alesr/pricewatch/internal/pkg/progress"
	"github.com/alesr/pricewatch/internal/pkg/strx"
	"github.com/alesr/pricewatch/internal/provider"
	"github.com/alesr/pricewatch/internal/report"
	"github.com/alesr/pricewatch/internal/server"
	"github.com/alesr/pricewatch/internal/tui"
	"github.com/alesr/pricewatch/internal/view"
)

const (
	userAgent     = "pricewatch/dev"
	clientTimeout = 30 * time.Second
)

var (
	errUsage        = errors.New("usage: pricewatch <command> (run 'pricewatch --help')")
	errSearchFailed = errors.New("could not load listings")
)

func Run(args []string) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	return rootCmd.Execute()
}

type serveOptions struct {
	addr        string
	latency     time.Duration
	corsOrigins string
	rateLimit   int
}

type clientOptions struct {
	url    string
	format string
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "pricewatch"
	cmd.Short = "appliance price comparison"
	cmd.RunE = func(_ *cobra.Command, _ []string) error {
		if err := cmd.Help(); err != nil {
			return err
		}
		return errUsage
	}
	cmd.AddCommand(newServeCmd(), newBrowseCmd(), newSearchCmd(), newDoctorCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the listing api",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return err
			}
			applyServeFlags(cmd, &cfg, opts)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (defaults to PRICEWATCH_ADDR)")
	cmd.Flags().DurationVar(&opts.latency, "latency", 0, "simulated fetch latency (defaults to PRICEWATCH_LATENCY)")
	cmd.Flags().StringVar(&opts.corsOrigins, "cors-origins", "", "comma-separated allowed origins (defaults to PRICEWATCH_CORS_ORIGINS)")
	cmd.Flags().IntVar(&opts.rateLimit, "rate-limit", 0, "requests per minute per client ip, 0 disables (defaults to PRICEWATCH_RATE_LIMIT)")

	return cmd
}

func newBrowseCmd() *cobra.Command {
	var opts clientOptions

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "browse listings in an interactive terminal ui",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadClientConfig(opts)
			if err != nil {
				return err
			}
			return runBrowse(cfg)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "listing api base url (defaults to PRICEWATCH_API_BASE_URL)")

	return cmd
}

func newSearchCmd() *cobra.Command {
	var opts clientOptions

	cmd := &cobra.Command{
		Use:   "search",
		Short: "fetch listings once and print them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadClientConfig(opts)
			if err != nil {
				return err
			}

			c, err := newClient(cfg)
			if err != nil {
				return err
			}
			return runSearch(cmd.Context(), view.New(c), cfg, opts.format, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "listing api base url (defaults to PRICEWATCH_API_BASE_URL)")
	cmd.Flags().StringVar(&opts.format, "format", "table", "output format: table|json")

	return cmd
}

func newDoctorCmd() *cobra.Command {
	var opts clientOptions

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "run diagnostics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadClientConfig(opts)
			if err != nil {
				return err
			}
			return runDoctor(cmd.Context(), cfg, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "listing api base url (defaults to PRICEWATCH_API_BASE_URL)")

	return cmd
}

func applyServeFlags(cmd *cobra.Command, cfg *config.Config, opts serveOptions) {
	if opts.addr != "" {
		cfg.Addr = opts.addr
	}
	if cmd.Flags().Changed("latency") {
		cfg.Latency = opts.latency
	}
	if origins := strx.ParseCSV(opts.corsOrigins); origins != nil {
		cfg.CORSOrigins = origins
	}
	if cmd.Flags().Changed("rate-limit") {
		cfg.RateLimit = opts.rateLimit
	}
}

func runServe(ctx context.Context, cfg config.Config, logOut io.Writer) error {
	logger, err := logging.New(cfg.LogLevel, logOut)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	p := provider.New(
		provider.WithLatency(cfg.Latency),
		provider.WithLogger(logger.Named("provider")),
	)

	srv := server.New(server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		CORSOrigins:     cfg.CORSOrigins,
		RateLimit:       cfg.RateLimit,
	}, p, logger.Named("http"))

	logger.Info("listing provider configured",
		zap.Duration("latency", cfg.Latency),
		zap.Strings("cors_origins", cfg.CORSOrigins),
		zap.Int("rate_limit", cfg.RateLimit),
	)
	return srv.ListenAndServe(ctx)
}

func runBrowse(cfg config.Config) error {
	c, err := newClient(cfg)
	if err != nil {
		return err
	}
	return tui.RunBrowse(view.New(c), tui.WithFormatter(cfg.Formatter()))
}

// runSearch drives the controller through one fetch. A Failed state prints
// the banner and returns errSearchFailed so the process exits non-zero.
func runSearch(ctx context.Context, ctrl *view.Controller, cfg config.Config, format string, out io.Writer) error {
	format = normalizeFormat(format)
	if format != "table" && format != "json" {
		return fmt.Errorf("could not render output format %q (use table or json)", format)
	}

	ctrl.Start()
	load := func() (view.State, error) { return ctrl.Load(ctx), nil }

	var state view.State
	if isTerminal(os.Stderr) {
		state, _ = progress.Run(os.Stderr, view.LoadingMessage, load)
	} else {
		state, _ = load()
	}

	var err error
	switch format {
	case "json":
		err = report.PrintJSON(out, state)
	default:
		err = report.PrintTable(out, state, cfg.Formatter())
	}
	if err != nil {
		return err
	}

	if failed, ok := state.(view.Failed); ok {
		return fmt.Errorf("%w: %s", errSearchFailed, failed.Message)
	}
	return nil
}

func runDoctor(ctx context.Context, cfg config.Config, out io.Writer) error {
	status := map[string]string{
		"api_base_url": cfg.APIBaseURL,
		"locale":       cfg.Locale,
		"currency":     cfg.Currency,
		"sample_price": cfg.Formatter().Format(24990),
	}

	c, err := client.New(
		client.WithBaseURL(cfg.APIBaseURL),
		client.WithUserAgent(userAgent),
		client.WithTimeout(10*time.Second),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	env, err := c.FetchListings(ctx)
	switch {
	case err != nil:
		status["search"] = "error: " + err.Error()
	case !env.Success:
		status["search"] = "failure: " + env.Error
	default:
		status["search"] = fmt.Sprintf("ok (%d listings)", env.Count)
	}

	keys := slices.Collect(maps.Keys(status))
	slices.Sort(keys)

	for _, k := range keys {
		fmt.Fprintf(out, "%s: %s\n", k, status[k])
	}
	return nil
}

func loadClientConfig(opts clientOptions) (config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return config.Config{}, err
	}
	if u := strings.TrimSpace(opts.url); u != "" {
		cfg.APIBaseURL = u
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

func newClient(cfg config.Config) (*client.Client, error) {
	return client.New(
		client.WithBaseURL(cfg.APIBaseURL),
		client.WithUserAgent(userAgent),
		client.WithTimeout(clientTimeout),
	)
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
