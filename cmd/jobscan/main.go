package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobscan"
	"github.com/fwojciec/jobscan/gemini"
	"github.com/fwojciec/jobscan/goquery"
	jobhttp "github.com/fwojciec/jobscan/http"
	"github.com/fwojciec/jobscan/htmltomarkdown"
	"github.com/fwojciec/jobscan/pipeline"
	"github.com/fwojciec/jobscan/readability"
	jobslog "github.com/fwojciec/jobscan/slog"
	"github.com/fwojciec/jobscan/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Pipeline assembled during Run. Exposed for end-to-end testing.
	Pipeline *pipeline.Pipeline
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobscan"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobscan --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cmd == "extract" {
		m.Pipeline, err = buildPipeline(ctx, &cli.Extract, stderr)
		if err != nil {
			return err
		}
		deps.Pipeline = m.Pipeline
	}

	return kongCtx.Run(deps)
}

// buildPipeline wires the extraction pipeline from extract command flags.
func buildPipeline(ctx context.Context, cmd *ExtractCmd, stderr io.Writer) (*pipeline.Pipeline, error) {
	var logger *slog.Logger
	if cmd.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	fetchOpts := []jobhttp.Option{
		jobhttp.WithTimeout(time.Duration(cmd.Timeout) * time.Second),
		jobhttp.WithLimiter(pipeline.NewDomainLimiter(1.0)),
	}
	if cmd.UserAgent != "" {
		fetchOpts = append(fetchOpts, jobhttp.WithUserAgent(cmd.UserAgent))
	}

	var fetcher jobscan.Fetcher = jobhttp.NewFetcher(fetchOpts...)
	if logger != nil {
		fetcher = jobslog.NewLoggingFetcher(fetcher, logger)
	}

	converter := htmltomarkdown.NewConverter()

	var registry jobscan.SelectorRegistry = goquery.NewDefaultRegistry()
	if logger != nil {
		registry = jobslog.NewLoggingRegistry(registry, goquery.NewDetector(), logger)
	}

	config := pipeline.DefaultConfig()
	config.Timeout = time.Duration(cmd.Timeout) * time.Second
	config.AcceptThreshold = cmd.Threshold
	config.MaxKeywords = cmd.MaxKeywords
	config.MinKeywordCount = cmd.MinKeywordCount

	p := &pipeline.Pipeline{
		Fetcher: fetcher,
		Parsers: []jobscan.Parser{
			goquery.NewStructuredParser(converter),
			goquery.NewHeuristicParser(registry),
			readability.NewParser(),
			trafilatura.NewParser(),
		},
		Logger:      logger,
		Concurrency: cmd.Concurrency,
		Config:      config,
	}

	if cmd.Analyze {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		p.Analyzer = gemini.NewAnalyzer(client)
	}

	return p, nil
}
