package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/urlsum"
	"github.com/fwojciec/urlsum/chi"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Summaries urlsum.SummaryService
	Writer    urlsum.SummaryWriter
	Ratings   urlsum.RatingService
	Notifier  urlsum.Notifier
	Server    *chi.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging to stderr"`

	Serve     ServeCmd     `cmd:"" help:"Run the web interface"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize the page behind a URL"`
	Rate      RateCmd      `cmd:"" help:"Rate the app from 1 to 5 stars"`
	Ratings   RatingsCmd   `cmd:"" help:"List recorded ratings"`
}

// PipelineFlags configures fetching, extraction and summarization.
type PipelineFlags struct {
	APIKey      string        `name:"api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	Model       string        `default:"gemini-2.5-flash" env:"URLSUM_MODEL" help:"Gemini model"`
	ChunkSize   int           `default:"1024" help:"Maximum characters per chunk"`
	Concurrency int           `short:"c" default:"1" help:"Chunks summarized at once"`
	MaxLength   int           `default:"200" help:"Maximum words per chunk summary"`
	MinLength   int           `default:"50" help:"Minimum words per chunk summary"`
	TokenLimit  int           `default:"1024" help:"Warn about chunks above this many tokens (0 disables)"`
	Timeout     time.Duration `default:"10s" help:"Page fetch timeout"`
	Browser     bool          `help:"Fetch pages with a headless browser"`
	Extractor   string        `default:"paragraphs" enum:"paragraphs,readability,trafilatura,markdown" help:"Text extraction strategy (${enum})"`
	RateLimit   float64       `default:"0" help:"Requests per second per host (0 disables)"`
}

// SMTPFlags configures rating notification emails.
type SMTPFlags struct {
	SMTPHost  string `name:"smtp-host" default:"smtp.gmail.com" env:"SMTP_HOST" help:"SMTP server host"`
	SMTPPort  int    `name:"smtp-port" default:"587" env:"SMTP_PORT" help:"SMTP server port"`
	Sender    string `name:"email-sender" env:"EMAIL_SENDER" help:"Sender address; notifications are off when empty"`
	Password  string `name:"email-password" env:"EMAIL_PASSWORD" help:"Sender password"`
	Recipient string `name:"email-recipient" env:"EMAIL_RECIPIENT" help:"Recipient address (defaults to sender)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8501" env:"URLSUM_ADDR" help:"Listen address"`

	Pipeline PipelineFlags `embed:""`
	SMTP     SMTPFlags     `embed:""`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL  string `arg:"" help:"Page URL"`
	Out  string `short:"o" type:"path" help:"Also write the summary under this directory"`
	JSON bool   `help:"Print the summary as JSON"`

	Pipeline PipelineFlags `embed:""`
}

// RateCmd is the "rate" subcommand.
type RateCmd struct {
	Stars int `arg:"" help:"Stars from 1 to 5"`

	SMTP SMTPFlags `embed:""`
}

// RatingsCmd is the "ratings" subcommand.
type RatingsCmd struct {
	Stars *int `help:"Only show ratings with this many stars"`
	Limit int  `short:"n" default:"20" help:"Maximum ratings to show (0 for all)"`
}
