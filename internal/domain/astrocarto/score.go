package astrocarto

import (
	"math"
	"sort"

	"jyotish-backend/internal/domain/astro"
	"jyotish-backend/internal/domain/chart"
	"jyotish-backend/pkg/errors"
)

// Purpose selects the relocation goal a location is scored for.
type Purpose string

const (
	PurposeGeneral      Purpose = "general"
	PurposeCareer       Purpose = "career"
	PurposeHealth       Purpose = "health"
	PurposeRelationship Purpose = "relationship"
	PurposeWealth       Purpose = "wealth"
	PurposeSpiritual    Purpose = "spiritual"
)

var purposeMultipliers = map[Purpose]float64{
	PurposeGeneral:      1.0,
	PurposeCareer:       1.2,
	PurposeHealth:       1.0,
	PurposeRelationship: 1.1,
	PurposeWealth:       1.3,
	PurposeSpiritual:    0.9,
}

const (
	// lineOrb is the angular reach of a meridian line; influence decays
	// linearly to zero at the orb edge.
	lineOrb = 15.0
	// parallelOrb is the narrower reach of a latitude band.
	parallelOrb = 10.0
	// scoreScale converts the signed influence aggregate to score points
	// around the neutral midpoint of 50.
	scoreScale = 10.0

	minScore = 0.0
	maxScore = 100.0
)

// Influence is one line's contribution at the queried coordinate.
type Influence struct {
	Body     chart.Body `json:"body"`
	Aspect   AspectType `json:"aspectType,omitempty"`
	Distance float64    `json:"distance"`
	Weight   float64    `json:"weight"`
}

// LineInfluences groups the in-orb contributions by character. TotalScore is
// the signed aggregate: beneficial entries add, challenging subtract,
// neutral are reported but contribute nothing.
type LineInfluences struct {
	Beneficial  []Influence `json:"beneficial"`
	Challenging []Influence `json:"challenging"`
	Neutral     []Influence `json:"neutral"`
	TotalScore  float64     `json:"totalScore"`
}

// LocationScore is the composite verdict for one coordinate and purpose.
type LocationScore struct {
	Latitude          float64        `json:"latitude"`
	Longitude         float64        `json:"longitude"`
	Purpose           Purpose        `json:"purpose"`
	Influences        LineInfluences `json:"lineInfluences"`
	PurposeMultiplier float64        `json:"purposeMultiplier"`
	OverallScore      float64        `json:"overallScore"`
}

// validateCoordinate rejects out-of-range or non-finite coordinates. Values
// are never clamped; a bad coordinate is the caller's error to fix.
func validateCoordinate(latitude, longitude float64) error {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) || latitude < -90 || latitude > 90 {
		return errors.NewValidationf("latitude", "must be between -90 and 90, got %g", latitude)
	}
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) || longitude < -180 || longitude > 180 {
		return errors.NewValidationf("longitude", "must be between -180 and 180, got %g", longitude)
	}
	return nil
}

// multiplierFor resolves the purpose multiplier. An empty purpose means
// general; an unknown purpose is a validation error, not a silent default.
func multiplierFor(purpose Purpose) (float64, error) {
	if purpose == "" {
		purpose = PurposeGeneral
	}
	m, ok := purposeMultipliers[purpose]
	if !ok {
		return 0, errors.NewValidationf("purpose", "unknown purpose %q", purpose)
	}
	return m, nil
}

// characterOf decides which bucket a line's contribution lands in. Only an
// unambiguous pairing carries sign: a harmonious aspect from a natural
// benefic helps, a hard aspect from a natural malefic strains, and every
// mixed pairing is reported as neutral.
func characterOf(body chart.Body, harmonious bool) int {
	switch {
	case harmonious && body.IsBenefic():
		return 1
	case !harmonious && body.IsMalefic():
		return -1
	default:
		return 0
	}
}

// ScoreLocation scores one coordinate against every line the chart projects.
// Meridian lines are compared by wraparound-aware angular distance, so a
// query at -179 sits two degrees from a line at 179; parallels compare plain
// latitude. The purpose multiplier scales the signed aggregate before the
// final clamp to [0,100].
func ScoreLocation(c *chart.Chart, latitude, longitude float64, purpose Purpose) (LocationScore, error) {
	if err := validateCoordinate(latitude, longitude); err != nil {
		return LocationScore{}, err
	}
	multiplier, err := multiplierFor(purpose)
	if err != nil {
		return LocationScore{}, err
	}
	if purpose == "" {
		purpose = PurposeGeneral
	}

	influences := LineInfluences{
		Beneficial:  []Influence{},
		Challenging: []Influence{},
		Neutral:     []Influence{},
	}

	queryLongitude := astro.NormalizeAngle(longitude)
	for _, line := range LinesFromChart(c) {
		distance := astro.AngularDistance(queryLongitude, line.Longitude)
		if distance >= lineOrb {
			continue
		}
		weight := (1 - distance/lineOrb) * line.Strength
		entry := Influence{Body: line.Body, Aspect: line.Aspect, Distance: distance, Weight: weight}
		switch characterOf(line.Body, line.harmonious) {
		case 1:
			influences.Beneficial = append(influences.Beneficial, entry)
			influences.TotalScore += weight
		case -1:
			influences.Challenging = append(influences.Challenging, entry)
			influences.TotalScore -= weight
		default:
			influences.Neutral = append(influences.Neutral, entry)
		}
	}

	for _, parallel := range ParallelsFromChart(c) {
		distance := math.Abs(latitude - parallel.Latitude)
		if distance >= parallelOrb {
			continue
		}
		weight := (1 - distance/parallelOrb) * parallel.Strength
		entry := Influence{Body: parallel.Body, Distance: distance, Weight: weight}
		switch {
		case parallel.Body.IsBenefic():
			influences.Beneficial = append(influences.Beneficial, entry)
			influences.TotalScore += weight
		case parallel.Body.IsMalefic():
			influences.Challenging = append(influences.Challenging, entry)
			influences.TotalScore -= weight
		default:
			influences.Neutral = append(influences.Neutral, entry)
		}
	}

	sortInfluences(influences.Beneficial)
	sortInfluences(influences.Challenging)
	sortInfluences(influences.Neutral)

	overall := 50 + influences.TotalScore*multiplier*scoreScale
	overall = math.Min(maxScore, math.Max(minScore, overall))

	return LocationScore{
		Latitude:          latitude,
		Longitude:         longitude,
		Purpose:           purpose,
		Influences:        influences,
		PurposeMultiplier: multiplier,
		OverallScore:      overall,
	}, nil
}

// sortInfluences orders strongest first, breaking ties by body then aspect
// so identical input always serializes identically.
func sortInfluences(entries []Influence) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Weight != entries[j].Weight {
			return entries[i].Weight > entries[j].Weight
		}
		if entries[i].Body != entries[j].Body {
			return entries[i].Body < entries[j].Body
		}
		return entries[i].Aspect < entries[j].Aspect
	})
}
