package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/urlsum"
	"github.com/fwojciec/urlsum/chi"
	"github.com/fwojciec/urlsum/gemini"
	"github.com/fwojciec/urlsum/goquery"
	"github.com/fwojciec/urlsum/htmltomarkdown"
	sumhttp "github.com/fwojciec/urlsum/http"
	"github.com/fwojciec/urlsum/readability"
	"github.com/fwojciec/urlsum/rod"
	sumslog "github.com/fwojciec/urlsum/slog"
	"github.com/fwojciec/urlsum/smtp"
	"github.com/fwojciec/urlsum/sqlite"
	"github.com/fwojciec/urlsum/summarize"
	"github.com/fwojciec/urlsum/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loadEnvFiles(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// loadEnvFiles reads .env into the environment. Variables that are already
// set win.
func loadEnvFiles() error {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// closers run in reverse order on Close.
	closers []func() error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	if m.DB != nil {
		if err := m.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		m.DB = nil
	}
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("urlsum"),
		kong.Description("Summarize the text of a web page with Gemini."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'urlsum --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	defer m.Close()

	cmd := strings.Fields(kongCtx.Command())[0]
	deps.Logger = newLogger(stderr, cli.Verbose, cmd == "serve")

	// Wire command-specific dependencies based on command
	switch cmd {
	case "serve":
		if err := m.openDB(stderr); err != nil {
			return err
		}
		deps.Ratings = sqlite.NewRatingService(m.DB)
		if deps.Notifier, err = newNotifier(cli.Serve.SMTP, deps.Logger); err != nil {
			return err
		}
		if deps.Summaries, err = m.newPipeline(ctx, cli.Serve.Pipeline, deps.Logger, stderr); err != nil {
			return err
		}
		deps.Server = chi.NewServer()
		deps.Server.Addr = cli.Serve.Addr
		deps.Server.Logger = deps.Logger

	case "summarize":
		if deps.Summaries, err = m.newPipeline(ctx, cli.Summarize.Pipeline, deps.Logger, stderr); err != nil {
			return err
		}

	case "rate":
		if err := m.openDB(stderr); err != nil {
			return err
		}
		deps.Ratings = sqlite.NewRatingService(m.DB)
		if deps.Notifier, err = newNotifier(cli.Rate.SMTP, deps.Logger); err != nil {
			return err
		}

	case "ratings":
		if err := m.openDB(stderr); err != nil {
			return err
		}
		deps.Ratings = sqlite.NewRatingService(m.DB)
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB(stderr io.Writer) error {
	if dir := filepath.Dir(m.DBPath); dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		fmt.Fprintf(stderr, "Hint: Set URLSUM_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	return nil
}

// newPipeline assembles the summary service from the pipeline flags.
func (m *Main) newPipeline(ctx context.Context, flags PipelineFlags, logger *slog.Logger, stderr io.Writer) (urlsum.SummaryService, error) {
	if flags.APIKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  flags.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	var fetcher urlsum.Fetcher
	if flags.Browser {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(flags.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = sumhttp.NewFetcher(sumhttp.WithTimeout(flags.Timeout))
	}
	fetcher = sumslog.NewLoggingFetcher(fetcher, logger)
	m.closers = append(m.closers, fetcher.Close)

	extractor, err := newExtractor(flags.Extractor)
	if err != nil {
		return nil, err
	}

	aggregator := &summarize.Aggregator{
		Summarizer:  sumslog.NewLoggingSummarizer(gemini.NewSummarizer(client, flags.Model), logger),
		ChunkSize:   flags.ChunkSize,
		Concurrency: flags.Concurrency,
		Options: urlsum.SummaryOptions{
			MaxLength: flags.MaxLength,
			MinLength: flags.MinLength,
		},
		TokenLimit: flags.TokenLimit,
	}

	// The local tokenizer only knows some models; without it the token
	// check is skipped.
	if flags.TokenLimit > 0 {
		if counter, err := gemini.NewTokenCounter(flags.Model); err != nil {
			logger.Warn("token counting disabled", "model", flags.Model, "err", err)
		} else {
			aggregator.TokenCounter = counter
		}
	}

	pipeline := &summarize.Pipeline{
		Fetcher:    fetcher,
		Extractor:  extractor,
		Aggregator: aggregator,
		Progress:   sumslog.ProgressLogger(logger),
	}
	if flags.RateLimit > 0 {
		pipeline.RateLimiter = summarize.NewDomainLimiter(flags.RateLimit)
	}

	return sumslog.NewLoggingSummaryService(pipeline, logger), nil
}

func newExtractor(name string) (urlsum.Extractor, error) {
	switch name {
	case "", "paragraphs":
		return goquery.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	case "markdown":
		return htmltomarkdown.NewExtractor(), nil
	default:
		return nil, urlsum.Errorf(urlsum.EINVALID, "unknown extractor %q", name)
	}
}

// newNotifier returns nil when no sender is configured.
func newNotifier(flags SMTPFlags, logger *slog.Logger) (urlsum.Notifier, error) {
	if flags.Sender == "" {
		logger.Info("email notifications disabled", "reason", "EMAIL_SENDER not set")
		return nil, nil
	}

	n, err := smtp.NewNotifier(smtp.Config{
		Host:     flags.SMTPHost,
		Port:     flags.SMTPPort,
		Password: flags.Password,
		From:     flags.Sender,
		To:       flags.Recipient,
	})
	if err != nil {
		return nil, err
	}
	return sumslog.NewLoggingNotifier(n, logger), nil
}

// newLogger logs at debug when verbose. Otherwise the server logs at info
// and one-shot commands stay quiet.
func newLogger(w io.Writer, verbose, serving bool) *slog.Logger {
	switch {
	case verbose:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case serving:
		return slog.New(slog.NewTextHandler(w, nil))
	default:
		return slog.New(slog.DiscardHandler)
	}
}

func defaultDBPath() string {
	if path := os.Getenv("URLSUM_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "urlsum.db"
	}
	return filepath.Join(home, ".urlsum", "urlsum.db")
}
