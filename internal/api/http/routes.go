package httpapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/advisory"
	"github.com/i474232898/weather-dashboard/internal/render"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

var validate = validator.New()

// Dashboard builds a report for a free-text location.
type Dashboard interface {
	Build(ctx context.Context, location string) (*weather.Report, error)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, dashboard Dashboard) {
	v1 := app.Group("/api/v1")

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		report, err := buildReport(c, dashboard)
		if err != nil {
			return err
		}
		return c.JSON(report)
	})

	v1.Get("/dashboard/text", func(c *fiber.Ctx) error {
		report, err := buildReport(c, dashboard)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := render.Text(&buf, report); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render dashboard")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Send(buf.Bytes())
	})

	v1.Get("/comfort", func(c *fiber.Ctx) error {
		var q conditionsQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		score := weather.ComfortIndex(*q.Temperature, *q.Humidity, *q.WindSpeed)
		return c.JSON(advisory.Banner(score))
	})

	v1.Get("/advice", func(c *fiber.Ctx) error {
		var q conditionsQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		cond := advisory.Conditions{
			Description: q.Description,
			Temperature: *q.Temperature,
			Humidity:    *q.Humidity,
			WindSpeed:   *q.WindSpeed,
		}
		score := weather.ComfortIndex(cond.Temperature, cond.Humidity, cond.WindSpeed)
		return c.JSON(advisory.Evaluate(cond, score))
	})
}

func buildReport(c *fiber.Ctx, dashboard Dashboard) (*weather.Report, error) {
	q := locationQuery{Location: strings.TrimSpace(c.Query("location"))}
	if err := validate.Struct(q); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "location query parameter is required (max 100 characters)")
	}

	report, err := dashboard.Build(c.UserContext(), q.Location)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return report, nil
}

// toHTTPError turns pipeline failures into the user-visible messages of the dashboard.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, weather.ErrLookup):
		return fiber.NewError(fiber.StatusNotFound, "Error retrieving coordinates. Please check the location.")
	case errors.Is(err, weather.ErrDataShape):
		return fiber.NewError(fiber.StatusBadGateway, "Weather service returned an unexpected response.")
	case errors.Is(err, weather.ErrService):
		return fiber.NewError(fiber.StatusBadGateway, "Error retrieving weather data.")
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.NewError(fiber.StatusGatewayTimeout, "Weather lookup timed out.")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build dashboard")
	}
}

// locationQuery holds the free-text location of a dashboard request.
type locationQuery struct {
	Location string `validate:"required,max=100"`
}

// conditionsQuery holds raw readings for the stateless comfort and advice endpoints.
type conditionsQuery struct {
	Temperature *float64 `validate:"required"`
	Humidity    *float64 `validate:"required"`
	WindSpeed   *float64 `validate:"required"`
	Description string   `validate:"max=100"`
}

func (q *conditionsQuery) bind(c *fiber.Ctx) error {
	var err error
	if q.Temperature, err = parseFloatParam(c, "temp"); err != nil {
		return err
	}
	if q.Humidity, err = parseFloatParam(c, "humidity"); err != nil {
		return err
	}
	if q.WindSpeed, err = parseFloatParam(c, "wind"); err != nil {
		return err
	}
	q.Description = c.Query("description")

	return validate.Struct(q)
}

// parseFloatParam returns nil for an absent parameter so validation can report it.
func parseFloatParam(c *fiber.Ctx, key string) (*float64, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q is not a number", key, s)
	}
	return &v, nil
}
