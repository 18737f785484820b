package deps

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brujula-viajes/brujula/internal/domain"
	"github.com/brujula-viajes/brujula/internal/index"
	"github.com/brujula-viajes/brujula/internal/logger"
)

// ItineraryStore is the slice of the Redis store the itinerary handlers need.
// Narrowed to an interface so handler tests can stub it without Redis.
type ItineraryStore interface {
	ReadItinerary(ctx context.Context, session string) ([]domain.Reservation, error)
	AppendReservation(ctx context.Context, session string, r domain.Reservation) error
	RemoveReservationAt(ctx context.Context, session string, index int) error
	ClearItinerary(ctx context.Context, session string) error
}

// ContactStore persists contact form submissions.
type ContactStore interface {
	SaveContact(ctx context.Context, form domain.ContactForm) (string, error)
}

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time   // for testing, defaults to time.Now
	AllowedHosts  []string           // Host headers allowed to reach the admin endpoints
	AllowedCIDRS  []string           // IPs allowed to reach readyz/infra/reload
	TrustProxy    bool               // true if running behind a trusted reverse proxy
	CORSOrigins   []string           // origins of the storefront frontend
	CatalogFile   string             // Path to the destination catalog file
	RedisClient   *redis.Client      // Redis client connection
	MemoryIndex   *index.MemoryIndex // In-memory destination index
	Itineraries   ItineraryStore     // Per-session itinerary storage
	Contacts      ContactStore       // Contact inbox storage
	ReloadTrigger chan struct{}      // Channel to trigger manual catalog reload

	// Contact endpoint rate limiting
	ContactBurst        int
	ContactPerMin       int
	ContactMaxIPBuckets int
}
