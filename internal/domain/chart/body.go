// Package chart defines the canonical birth-chart record consumed by every
// higher engine: a validated birth moment, planetary positions and twelve
// house cusps. The package normalizes and validates what the ephemeris
// collaborator supplies; it computes no planetary positions itself.
package chart

// Body identifies a tracked celestial body.
type Body string

// The nine grahas of the Vedic chart. Rahu and Ketu are the lunar nodes.
const (
	Sun     Body = "sun"
	Moon    Body = "moon"
	Mars    Body = "mars"
	Mercury Body = "mercury"
	Jupiter Body = "jupiter"
	Venus   Body = "venus"
	Saturn  Body = "saturn"
	Rahu    Body = "rahu"
	Ketu    Body = "ketu"
)

// AllBodies is the full graha set in canonical order.
var AllBodies = []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// RequiredBodies are the bodies a chart must carry. The nodes are optional:
// detectors whose preconditions need them report the pattern absent with a
// diagnostic instead of failing, so a nodeless chart is still a valid chart.
var RequiredBodies = []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

// ClassicalPlanets are the seven non-node bodies, the participants of
// hemming-type patterns such as the nodal-axis dosha.
var ClassicalPlanets = []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

// naturalBenefics per the standard classification. Mercury and the Moon are
// conditional benefics in the full tradition; the engine treats them as
// benefic, matching the reference behavior.
var naturalBenefics = map[Body]bool{
	Jupiter: true,
	Venus:   true,
	Mercury: true,
	Moon:    true,
}

var naturalMalefics = map[Body]bool{
	Sun:    true,
	Mars:   true,
	Saturn: true,
	Rahu:   true,
	Ketu:   true,
}

// IsBenefic reports whether the body is a natural benefic.
func (b Body) IsBenefic() bool { return naturalBenefics[b] }

// IsMalefic reports whether the body is a natural malefic.
func (b Body) IsMalefic() bool { return naturalMalefics[b] }

// IsNode reports whether the body is one of the two lunar nodes.
func (b Body) IsNode() bool { return b == Rahu || b == Ketu }

// String returns the body name.
func (b Body) String() string { return string(b) }
