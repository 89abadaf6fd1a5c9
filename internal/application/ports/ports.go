// Package ports defines the interfaces the application layer depends on.
// Adapters in internal/infrastructure implement them; services consume them.
package ports

import (
	"context"
	"time"

	"jyotish-backend/internal/domain/chart"
)

// EphemerisProvider supplies planetary positions for a continuous-time
// instant (a Julian Day). Positions are sidereal ecliptic longitudes; the
// provider is trusted but its output is still validated by the chart
// builder.
type EphemerisProvider interface {
	PositionsAt(ctx context.Context, jd float64) (map[chart.Body]chart.PlanetaryPosition, error)
}

// StoredChart is a computed chart kept for later analysis requests.
type StoredChart struct {
	ID        string
	Moment    chart.BirthMoment
	Chart     *chart.Chart
	CreatedAt time.Time
}

// ChartRepository stores computed charts by ID. Implementations own
// retention; the domain never touches storage directly.
type ChartRepository interface {
	Save(ctx context.Context, record *StoredChart) error
	FindByID(ctx context.Context, id string) (*StoredChart, error)
}
