package httpapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mullinsd/fishing-companion/internal/geo"
	"github.com/mullinsd/fishing-companion/internal/trips"
	"github.com/mullinsd/fishing-companion/internal/weather"
)

// tripRequest is the JSON body for creating or updating a trip. Checklist
// contents are managed through the dedicated checklist endpoints, never
// through this body.
type tripRequest struct {
	Name     string          `json:"name" validate:"required"`
	Date     time.Time       `json:"date" validate:"required"`
	Notes    string          `json:"notes"`
	Location *trips.Location `json:"location"`
}

// locationRequest is the JSON body for creating or updating a location.
type locationRequest struct {
	Name      string  `json:"name" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Notes     string  `json:"notes"`
}

// checklistItemRequest is the JSON body for adding a checklist item.
type checklistItemRequest struct {
	Name string `json:"name" validate:"required"`
}

func registerTripRoutes(r fiber.Router, s Services) {
	svc := s.Trips

	r.Get("/trips", func(c *fiber.Ctx) error {
		return c.JSON(orEmpty(svc.AllTrips()))
	})

	r.Get("/trips/upcoming", func(c *fiber.Ctx) error {
		return c.JSON(orEmpty(svc.UpcomingTrips()))
	})

	r.Post("/trips", func(c *fiber.Ctx) error {
		var req tripRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		trip := svc.AddTrip(trips.TripInput{
			Name:     req.Name,
			Date:     req.Date,
			Notes:    req.Notes,
			Location: req.Location,
		})
		return c.Status(fiber.StatusCreated).JSON(trip)
	})

	r.Get("/trips/:id", func(c *fiber.Ctx) error {
		trip, ok := svc.TripByID(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "trip not found")
		}
		return c.JSON(trip)
	})

	r.Put("/trips/:id", func(c *fiber.Ctx) error {
		var req tripRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		id := c.Params("id")
		current, ok := svc.TripByID(id)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "trip not found")
		}
		trip := trips.Trip{
			ID:        id,
			Name:      req.Name,
			Date:      req.Date,
			Notes:     req.Notes,
			Location:  req.Location,
			Checklist: current.Checklist,
		}
		svc.UpdateTrip(trip)
		return c.JSON(trip)
	})

	r.Delete("/trips/:id", func(c *fiber.Ctx) error {
		svc.DeleteTrip(c.Params("id"))
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Post("/trips/:id/checklist", func(c *fiber.Ctx) error {
		var req checklistItemRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		item, ok := svc.AddChecklistItem(c.Params("id"), req.Name)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "trip not found")
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	})

	r.Delete("/trips/:id/checklist/:itemID", func(c *fiber.Ctx) error {
		svc.RemoveChecklistItem(c.Params("id"), c.Params("itemID"))
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Post("/trips/:id/checklist/:itemID/toggle", func(c *fiber.Ctx) error {
		checked, ok := svc.ToggleChecklistItem(c.Params("id"), c.Params("itemID"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "trip or checklist item not found")
		}
		return c.JSON(fiber.Map{"checked": checked})
	})

	registerLocationRoutes(r, s)
}

func registerLocationRoutes(r fiber.Router, s Services) {
	svc := s.Trips

	r.Get("/locations", func(c *fiber.Ctx) error {
		return c.JSON(orEmpty(svc.AllLocations()))
	})

	// Reverse geocoding is optional; without a key the endpoint reports the
	// feature as unavailable.
	r.Get("/locations/suggest-name", func(c *fiber.Ctx) error {
		if c.Query("lat") == "" || c.Query("lon") == "" {
			return fiber.NewError(fiber.StatusBadRequest, "lat and lon query parameters are required")
		}
		lat := c.QueryFloat("lat")
		lon := c.QueryFloat("lon")

		name, err := s.Namer.SuggestName(lat, lon)
		if err != nil {
			if errors.Is(err, geo.ErrNotConfigured) {
				return fiber.NewError(fiber.StatusServiceUnavailable, "reverse geocoding is not configured")
			}
			if errors.Is(err, geo.ErrNoMatch) {
				return fiber.NewError(fiber.StatusNotFound, "no address found for coordinates")
			}
			return fiber.NewError(fiber.StatusBadGateway, "reverse geocoding failed")
		}
		return c.JSON(fiber.Map{"name": name})
	})

	r.Post("/locations", func(c *fiber.Ctx) error {
		var req locationRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loc := svc.AddLocation(trips.LocationInput{
			Name:      req.Name,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Notes:     req.Notes,
		})
		return c.Status(fiber.StatusCreated).JSON(loc)
	})

	r.Get("/locations/:id", func(c *fiber.Ctx) error {
		loc, ok := svc.LocationByID(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "location not found")
		}
		return c.JSON(loc)
	})

	r.Put("/locations/:id", func(c *fiber.Ctx) error {
		var req locationRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		id := c.Params("id")
		if _, ok := svc.LocationByID(id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "location not found")
		}
		loc := trips.Location{
			ID:        id,
			Name:      req.Name,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Notes:     req.Notes,
		}
		svc.UpdateLocation(loc)
		return c.JSON(loc)
	})

	r.Delete("/locations/:id", func(c *fiber.Ctx) error {
		svc.DeleteLocation(c.Params("id"))
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Conditions come from the snapshot cache the scheduler keeps warm.
	r.Get("/locations/:id/conditions", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, ok := svc.LocationByID(id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "location not found")
		}
		snap, err := s.Weather.CachedConditions(id)
		if err != nil {
			if errors.Is(err, weather.ErrNoSnapshot) {
				return fiber.NewError(fiber.StatusNotFound, "no conditions snapshot yet for location")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read conditions")
		}
		return c.JSON(snap)
	})
}

// orEmpty turns a nil slice into an empty one so list endpoints always emit a
// JSON array.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
