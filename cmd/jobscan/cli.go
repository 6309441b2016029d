package main

import (
	"context"
	"io"

	"github.com/fwojciec/jobscan/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Pipeline *pipeline.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract job posting content from one or more URLs"`
	Detect  DetectCmd  `cmd:"" help:"Detect the ATS platform behind a job posting URL"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs            []string `arg:"" help:"Job posting URLs"`
	Timeout         int      `short:"t" default:"30" help:"Per-URL timeout in seconds"`
	UserAgent       string   `help:"Override the User-Agent header"`
	Threshold       float64  `default:"0.6" help:"Confidence needed to accept a parser result without trying later stages"`
	MaxKeywords     int      `default:"30" help:"Maximum number of ranked keywords"`
	MinKeywordCount int      `default:"2" help:"Minimum occurrences for a keyword to rank"`
	Concurrency     int      `short:"c" default:"4" help:"Concurrent fetch limit for multiple URLs"`
	JSON            bool     `short:"j" help:"Emit results as JSON"`
	Analyze         bool     `short:"a" help:"Run LLM analysis on extracted content (requires GEMINI_API_KEY)"`
	Verbose         bool     `short:"v" help:"Log pipeline stages to stderr"`
}

// DetectCmd is the "detect" subcommand.
type DetectCmd struct {
	URL string `arg:"" help:"Job posting URL"`
}
