package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mullinsd/fishing-companion/internal/gear"
	"github.com/mullinsd/fishing-companion/internal/geo"
	"github.com/mullinsd/fishing-companion/internal/journal"
	"github.com/mullinsd/fishing-companion/internal/species"
	"github.com/mullinsd/fishing-companion/internal/trips"
	"github.com/mullinsd/fishing-companion/internal/weather"
)

var validate = validator.New()

// Services bundles everything the HTTP layer serves.
type Services struct {
	Trips   *trips.Service
	Gear    *gear.Service
	Journal *journal.Service
	Species *species.Service
	Weather *weather.Service
	Namer   *geo.Namer
}

// RegisterRoutes wires all handlers into the Fiber app under /api/v1.
func RegisterRoutes(app *fiber.App, s Services) {
	v1 := app.Group("/api/v1")

	registerTripRoutes(v1, s)
	registerGearRoutes(v1, s.Gear)
	registerJournalRoutes(v1, s.Journal)
	registerSpeciesRoutes(v1, s.Species)
	registerWeatherRoutes(v1, s.Weather)
}

// parseCoord parses a latitude/longitude path parameter.
func parseCoord(c *fiber.Ctx, name string) (float64, error) {
	v, err := strconv.ParseFloat(c.Params(name), 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}

// parseDateParam parses a YYYY-MM-DD path parameter.
func parseDateParam(c *fiber.Ctx, name string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", c.Params(name))
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "invalid "+name+"; use YYYY-MM-DD")
	}
	return d, nil
}

// parseTimeQuery parses an optional query parameter as RFC3339 or YYYY-MM-DD.
// Returns nil when the parameter is absent.
func parseTimeQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return &ts, nil
	}
	if ts, err := time.Parse("2006-01-02", raw); err == nil {
		return &ts, nil
	}
	return nil, errors.New("invalid " + name + "; use RFC3339 or YYYY-MM-DD")
}
