package mock

import "github.com/fwojciec/jobscan"

var _ jobscan.PlatformDetector = (*Detector)(nil)

// Detector is a mock implementation of jobscan.PlatformDetector.
type Detector struct {
	DetectFn func(html string) jobscan.Platform
}

func (d *Detector) Detect(html string) jobscan.Platform {
	return d.DetectFn(html)
}
