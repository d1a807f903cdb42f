package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mullinsd/fishing-companion/internal/weather"
)

func registerWeatherRoutes(r fiber.Router, svc *weather.Service) {
	r.Get("/weather/:lat/:lon", func(c *fiber.Ctx) error {
		lat, err := parseCoord(c, "lat")
		if err != nil {
			return err
		}
		lon, err := parseCoord(c, "lon")
		if err != nil {
			return err
		}

		report, err := svc.Current(c.Context(), lat, lon)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to fetch weather data")
		}
		return c.JSON(report)
	})

	r.Get("/forecast/:lat/:lon", func(c *fiber.Ctx) error {
		lat, err := parseCoord(c, "lat")
		if err != nil {
			return err
		}
		lon, err := parseCoord(c, "lon")
		if err != nil {
			return err
		}

		observations, err := svc.Forecast(c.Context(), lat, lon)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to fetch forecast data")
		}
		return c.JSON(observations)
	})

	r.Get("/forecast/:lat/:lon/daily", func(c *fiber.Ctx) error {
		lat, err := parseCoord(c, "lat")
		if err != nil {
			return err
		}
		lon, err := parseCoord(c, "lon")
		if err != nil {
			return err
		}

		reports, err := svc.DailyForecast(c.Context(), lat, lon)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to fetch forecast data")
		}
		return c.JSON(reports)
	})

	r.Get("/sun/:lat/:lon/:date", func(c *fiber.Ctx) error {
		lat, err := parseCoord(c, "lat")
		if err != nil {
			return err
		}
		lon, err := parseCoord(c, "lon")
		if err != nil {
			return err
		}
		date, err := parseDateParam(c, "date")
		if err != nil {
			return err
		}

		sun, err := svc.Sun(c.Context(), lat, lon, date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to fetch sun data")
		}
		return c.JSON(sun)
	})

	r.Get("/tides/:lat/:lon/:date", func(c *fiber.Ctx) error {
		lat, err := parseCoord(c, "lat")
		if err != nil {
			return err
		}
		lon, err := parseCoord(c, "lon")
		if err != nil {
			return err
		}
		if _, err := parseDateParam(c, "date"); err != nil {
			return err
		}

		tides, err := svc.Tides(lat, lon, c.Params("date"))
		if err != nil {
			if errors.Is(err, weather.ErrNoTideData) {
				return fiber.NewError(fiber.StatusNotFound, "no tide data available for inland locations")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to compute tide data")
		}
		return c.JSON(tides)
	})
}
