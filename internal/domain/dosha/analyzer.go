package dosha

import (
	"fmt"
	"sort"

	"jyotish-backend/internal/domain/chart"
)

// Detector is one pattern family. Implementations are pure: same chart and
// thresholds in, same result out.
type Detector interface {
	Name() string
	Detect(c *chart.Chart, th Thresholds) Result
}

// DefaultDetectors returns every built-in pattern family.
func DefaultDetectors() []Detector {
	return []Detector{
		GajaKesariDetector{},
		GrahanDetector{},
		KalaSarpaDetector{},
		ManglikDetector{},
		PitraDetector{},
	}
}

// remedyCap bounds each merged remedy category in the aggregate.
const remedyCap = 5

// Aggregate is the combined outcome of running every detector against one
// chart.
type Aggregate struct {
	Results          []Result `json:"results"`
	PresentCount     int      `json:"presentCount"`
	FailedCount      int      `json:"failedCount"`
	AverageIntensity float64  `json:"averageIntensity"`
	OverallLevel     Level    `json:"overallLevel"`
	CombinedRemedies Remedies `json:"combinedRemedies"`
}

// Analyzer runs a set of detectors and aggregates their results.
type Analyzer struct {
	detectors  []Detector
	thresholds Thresholds
}

// NewAnalyzer builds an analyzer. A nil detector slice means the built-in
// set; zero-value thresholds mean the defaults.
func NewAnalyzer(detectors []Detector, th Thresholds) *Analyzer {
	if detectors == nil {
		detectors = DefaultDetectors()
	}
	if th == (Thresholds{}) {
		th = DefaultThresholds()
	}
	return &Analyzer{detectors: detectors, thresholds: th}
}

// Analyze runs every detector against the chart. A panicking detector is
// substituted with a failed stand-in so one broken family never aborts the
// rest. Results are ordered by detector name and remedy lists are sorted, so
// identical input always produces byte-identical output.
func (a *Analyzer) Analyze(c *chart.Chart) Aggregate {
	results := make([]Result, 0, len(a.detectors))
	for _, d := range a.detectors {
		results = append(results, a.runDetector(d, c))
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	agg := Aggregate{Results: results, CombinedRemedies: Remedies{}}
	var intensitySum float64
	for _, r := range results {
		if r.Failed {
			agg.FailedCount++
			continue
		}
		if !r.Present {
			continue
		}
		agg.PresentCount++
		intensitySum += r.Intensity
		mergeRemedies(agg.CombinedRemedies, r.Remedies)
	}
	if agg.PresentCount > 0 {
		agg.AverageIntensity = intensitySum / float64(agg.PresentCount)
	}
	agg.OverallLevel = a.thresholds.Classify(agg.AverageIntensity)
	capRemedies(agg.CombinedRemedies, remedyCap)
	return agg
}

// runDetector executes one detector, converting a panic into the error
// stand-in result.
func (a *Analyzer) runDetector(d Detector, c *chart.Chart) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{
				Name:    d.Name(),
				Failed:  true,
				Level:   LevelNone,
				Message: fmt.Sprintf("detector panicked: %v", r),
			}
		}
	}()
	return d.Detect(c, a.thresholds)
}

// mergeRemedies folds src into dst, de-duplicating entries per category.
func mergeRemedies(dst, src Remedies) {
	for category, entries := range src {
		existing := dst[category]
		seen := make(map[string]bool, len(existing))
		for _, e := range existing {
			seen[e] = true
		}
		for _, e := range entries {
			if !seen[e] {
				existing = append(existing, e)
				seen[e] = true
			}
		}
		dst[category] = existing
	}
}

// capRemedies sorts each category and keeps the first n entries, bounding
// the aggregate's output regardless of how many patterns fired.
func capRemedies(r Remedies, n int) {
	for category, entries := range r {
		sort.Strings(entries)
		if len(entries) > n {
			entries = entries[:n]
		}
		r[category] = entries
	}
}
