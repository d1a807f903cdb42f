package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mullinsd/fishing-companion/internal/gear"
)

// gearItemRequest is the JSON body for creating or updating a gear item.
type gearItemRequest struct {
	Name                string            `json:"name" validate:"required"`
	Category            gear.Category     `json:"category" validate:"required"`
	Brand               string            `json:"brand"`
	Model               string            `json:"model"`
	Specs               map[string]string `json:"specs"`
	Notes               string            `json:"notes"`
	LastMaintenance     *time.Time        `json:"lastMaintenance"`
	MaintenanceInterval int               `json:"maintenanceInterval" validate:"gte=0"`
	Quantity            int               `json:"quantity" validate:"gte=0"`
}

// gearSetRequest is the JSON body for creating or updating a gear set.
type gearSetRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
}

func registerGearRoutes(r fiber.Router, svc *gear.Service) {
	r.Get("/gear", func(c *fiber.Ctx) error {
		if category := c.Query("category"); category != "" {
			if !gear.ValidCategory(gear.Category(category)) {
				return fiber.NewError(fiber.StatusBadRequest, "unknown gear category")
			}
			return c.JSON(orEmpty(svc.ItemsByCategory(gear.Category(category))))
		}
		return c.JSON(orEmpty(svc.AllItems()))
	})

	r.Get("/gear/maintenance", func(c *fiber.Ctx) error {
		return c.JSON(orEmpty(svc.ItemsNeedingMaintenance()))
	})

	r.Post("/gear", func(c *fiber.Ctx) error {
		var req gearItemRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if !gear.ValidCategory(req.Category) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown gear category")
		}

		item := svc.AddItem(gear.ItemInput{
			Name:                req.Name,
			Category:            req.Category,
			Brand:               req.Brand,
			Model:               req.Model,
			Specs:               req.Specs,
			Notes:               req.Notes,
			LastMaintenance:     req.LastMaintenance,
			MaintenanceInterval: req.MaintenanceInterval,
			Quantity:            req.Quantity,
		})
		return c.Status(fiber.StatusCreated).JSON(item)
	})

	r.Get("/gear/:id", func(c *fiber.Ctx) error {
		item, ok := svc.ItemByID(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "gear item not found")
		}
		return c.JSON(item)
	})

	r.Put("/gear/:id", func(c *fiber.Ctx) error {
		var req gearItemRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if !gear.ValidCategory(req.Category) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown gear category")
		}

		id := c.Params("id")
		if _, ok := svc.ItemByID(id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "gear item not found")
		}
		item := gear.Item{
			ID:                  id,
			Name:                req.Name,
			Category:            req.Category,
			Brand:               req.Brand,
			Model:               req.Model,
			Specs:               req.Specs,
			Notes:               req.Notes,
			LastMaintenance:     req.LastMaintenance,
			MaintenanceInterval: req.MaintenanceInterval,
			Quantity:            req.Quantity,
		}
		svc.UpdateItem(item)
		return c.JSON(item)
	})

	r.Delete("/gear/:id", func(c *fiber.Ctx) error {
		svc.DeleteItem(c.Params("id"))
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Negative quantities are silently ignored: the response echoes whatever
	// quantity the item ends up with.
	r.Patch("/gear/:id/quantity", func(c *fiber.Ctx) error {
		var req struct {
			Quantity int `json:"quantity"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		id := c.Params("id")
		if _, ok := svc.ItemByID(id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "gear item not found")
		}
		svc.UpdateQuantity(id, req.Quantity)
		item, _ := svc.ItemByID(id)
		return c.JSON(item)
	})

	r.Patch("/gear/:id/maintenance", func(c *fiber.Ctx) error {
		var req struct {
			Date time.Time `json:"date" validate:"required"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		id := c.Params("id")
		if _, ok := svc.ItemByID(id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "gear item not found")
		}
		svc.UpdateMaintenanceDate(id, req.Date)
		item, _ := svc.ItemByID(id)
		return c.JSON(item)
	})

	r.Get("/gear-sets", func(c *fiber.Ctx) error {
		return c.JSON(orEmpty(svc.AllSets()))
	})

	r.Post("/gear-sets", func(c *fiber.Ctx) error {
		var req gearSetRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		set := svc.AddSet(gear.SetInput{
			Name:        req.Name,
			Description: req.Description,
			Items:       req.Items,
		})
		return c.Status(fiber.StatusCreated).JSON(set)
	})

	r.Get("/gear-sets/:id", func(c *fiber.Ctx) error {
		set, ok := svc.SetByID(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "gear set not found")
		}
		return c.JSON(set)
	})

	r.Get("/gear-sets/:id/items", func(c *fiber.Ctx) error {
		if _, ok := svc.SetByID(c.Params("id")); !ok {
			return fiber.NewError(fiber.StatusNotFound, "gear set not found")
		}
		return c.JSON(orEmpty(svc.SetItems(c.Params("id"))))
	})

	r.Put("/gear-sets/:id", func(c *fiber.Ctx) error {
		var req gearSetRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		id := c.Params("id")
		if _, ok := svc.SetByID(id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "gear set not found")
		}
		set := gear.Set{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			Items:       req.Items,
		}
		if set.Items == nil {
			set.Items = []string{}
		}
		svc.UpdateSet(set)
		return c.JSON(set)
	})

	r.Delete("/gear-sets/:id", func(c *fiber.Ctx) error {
		svc.DeleteSet(c.Params("id"))
		return c.SendStatus(fiber.StatusNoContent)
	})
}
