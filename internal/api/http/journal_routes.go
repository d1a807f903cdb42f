package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mullinsd/fishing-companion/internal/journal"
)

// catchRequest is the JSON body for creating or updating a catch entry.
type catchRequest struct {
	Date         time.Time `json:"date" validate:"required"`
	LocationName string    `json:"locationName" validate:"required"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	Species      string    `json:"species" validate:"required"`
	Length       *float64  `json:"length"`
	Weight       *float64  `json:"weight"`
	Technique    string    `json:"technique"`
	Bait         string    `json:"bait"`
	Weather      string    `json:"weather"`
	WaterState   string    `json:"waterConditions"`
	Notes        string    `json:"notes"`
}

func (r catchRequest) toEntry() journal.CatchEntry {
	return journal.CatchEntry{
		Date:         r.Date,
		LocationName: r.LocationName,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		Species:      r.Species,
		Length:       r.Length,
		Weight:       r.Weight,
		Technique:    r.Technique,
		Bait:         r.Bait,
		Weather:      r.Weather,
		WaterState:   r.WaterState,
		Notes:        r.Notes,
	}
}

func registerJournalRoutes(r fiber.Router, svc *journal.Service) {
	r.Get("/catches", func(c *fiber.Ctx) error {
		start, err := parseTimeQuery(c, "startDate")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		end, err := parseTimeQuery(c, "endDate")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		filter := journal.Filter{
			Species:   c.Query("species"),
			Location:  c.Query("location"),
			Technique: c.Query("technique"),
			StartDate: start,
			EndDate:   end,
		}
		return c.JSON(orEmpty(svc.FilterEntries(filter)))
	})

	r.Get("/catches/stats", func(c *fiber.Ctx) error {
		return c.JSON(svc.JournalStats())
	})

	r.Delete("/catches", func(c *fiber.Ctx) error {
		svc.ClearAll()
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Post("/catches", func(c *fiber.Ctx) error {
		var req catchRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		entry := svc.AddEntry(req.toEntry())
		return c.Status(fiber.StatusCreated).JSON(entry)
	})

	r.Get("/catches/:id", func(c *fiber.Ctx) error {
		entry, ok := svc.EntryByID(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "catch entry not found")
		}
		return c.JSON(entry)
	})

	r.Put("/catches/:id", func(c *fiber.Ctx) error {
		var req catchRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		id := c.Params("id")
		if _, ok := svc.EntryByID(id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "catch entry not found")
		}
		entry := req.toEntry()
		entry.ID = id
		svc.UpdateEntry(entry)
		return c.JSON(entry)
	})

	r.Delete("/catches/:id", func(c *fiber.Ctx) error {
		svc.DeleteEntry(c.Params("id"))
		return c.SendStatus(fiber.StatusNoContent)
	})
}
