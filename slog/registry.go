package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/jobscan"
)

// Ensure LoggingRegistry implements jobscan.SelectorRegistry.
var _ jobscan.SelectorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a SelectorRegistry with debug logging for
// platform detection.
type LoggingRegistry struct {
	next     jobscan.SelectorRegistry
	detector jobscan.PlatformDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next jobscan.SelectorRegistry, detector jobscan.PlatformDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(platform jobscan.Platform) jobscan.SiteSelector {
	return r.next.Get(platform)
}

// GetForHTML detects the platform, logs it, and returns the appropriate
// selector.
func (r *LoggingRegistry) GetForHTML(html string) jobscan.SiteSelector {
	begin := time.Now()
	platform := r.detector.Detect(html)
	platformName := string(platform)
	if platform == jobscan.PlatformUnknown {
		platformName = "(unknown)"
	}
	r.logger.Info("platform detection",
		"platform", platformName,
		"duration", time.Since(begin),
	)
	return r.next.GetForHTML(html)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(platform jobscan.Platform, selector jobscan.SiteSelector) {
	r.next.Register(platform, selector)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []jobscan.Platform {
	return r.next.List()
}
