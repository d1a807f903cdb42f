package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mullinsd/fishing-companion/internal/species"
)

// speciesRequest is the JSON body for creating or updating a species.
type speciesRequest struct {
	CommonName     string   `json:"commonName" validate:"required"`
	ScientificName string   `json:"scientificName"`
	Description    string   `json:"description"`
	Habitat        string   `json:"habitat"`
	Seasonality    []string `json:"seasonality"`
	Techniques     []string `json:"techniques"`
	ImageURL       string   `json:"imageUrl"`
}

func (r speciesRequest) toSpecies() species.FishSpecies {
	return species.FishSpecies{
		CommonName:     r.CommonName,
		ScientificName: r.ScientificName,
		Description:    r.Description,
		Habitat:        r.Habitat,
		Seasonality:    r.Seasonality,
		Techniques:     r.Techniques,
		ImageURL:       r.ImageURL,
	}
}

func registerSpeciesRoutes(r fiber.Router, svc *species.Service) {
	r.Get("/species", func(c *fiber.Ctx) error {
		if q := c.Query("q"); q != "" {
			return c.JSON(orEmpty(svc.Search(q)))
		}

		habitat := c.Query("habitat")
		technique := c.Query("technique")
		if habitat != "" || technique != "" {
			return c.JSON(orEmpty(svc.FilterSpecies(species.FilterCriteria{
				Habitat:   habitat,
				Technique: technique,
			})))
		}

		return c.JSON(orEmpty(svc.AllSpecies()))
	})

	r.Post("/species", func(c *fiber.Ctx) error {
		var req speciesRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		sp := svc.AddSpecies(req.toSpecies())
		return c.Status(fiber.StatusCreated).JSON(sp)
	})

	r.Get("/species/:id", func(c *fiber.Ctx) error {
		sp, ok := svc.SpeciesByID(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "species not found")
		}
		return c.JSON(sp)
	})

	r.Put("/species/:id", func(c *fiber.Ctx) error {
		var req speciesRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		id := c.Params("id")
		if _, ok := svc.SpeciesByID(id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "species not found")
		}
		sp := req.toSpecies()
		sp.ID = id
		svc.UpdateSpecies(sp)
		return c.JSON(sp)
	})

	r.Delete("/species/:id", func(c *fiber.Ctx) error {
		svc.DeleteSpecies(c.Params("id"))
		return c.SendStatus(fiber.StatusNoContent)
	})
}
