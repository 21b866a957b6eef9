package httpapi

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/invopop/jsonschema"

	"github.com/i474232898/weather-search/internal/store"
	"github.com/i474232898/weather-search/internal/weather"
)

var validate = validator.New()

// reportSchema is reflected once from weather.Report.
var reportSchema = sync.OnceValue(func() *jsonschema.Schema {
	r := &jsonschema.Reflector{ExpandedStruct: true}
	return r.Reflect(&weather.Report{})
})

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
		})
	})

	app.Post("/weather", func(c *fiber.Ctx) error {
		var req searchRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		req.City = strings.TrimSpace(req.City)

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, weather.ErrCityRequired.Error())
		}

		report, err := service.Lookup(c.UserContext(), req.City)
		if err != nil {
			return lookupError(req.City, err)
		}
		return c.JSON(report)
	})

	v1 := app.Group("/api/v1")

	v1.Get("/weather/latest", func(c *fiber.Ctx) error {
		q, err := bindLookupQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		record, err := service.GetLatest(q.City)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no lookup recorded for requested city")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch lookup history")
		}

		return c.JSON(record)
	})

	v1.Get("/weather/history", func(c *fiber.Ctx) error {
		q, err := bindLookupQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		from, to, err := q.window()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		records, err := service.GetRange(q.City, from, to)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no lookups for requested range")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch lookup history")
		}

		return c.JSON(fiber.Map{
			"city":    q.City,
			"from":    from,
			"to":      to,
			"lookups": records,
		})
	})

	v1.Get("/weather/schema", func(c *fiber.Ctx) error {
		return c.JSON(reportSchema())
	})
}

// lookupError maps service errors to the documented status codes and messages.
func lookupError(city string, err error) error {
	switch {
	case errors.Is(err, weather.ErrCityRequired):
		return fiber.NewError(fiber.StatusBadRequest, weather.ErrCityRequired.Error())
	case errors.Is(err, weather.ErrCityNotFound):
		return fiber.NewError(fiber.StatusNotFound, weather.ErrCityNotFound.Error())
	case errors.Is(err, weather.ErrWeatherUnavailable):
		return fiber.NewError(fiber.StatusInternalServerError, weather.ErrWeatherUnavailable.Error())
	case errors.Is(err, weather.ErrForecastUnavailable):
		return fiber.NewError(fiber.StatusInternalServerError, weather.ErrForecastUnavailable.Error())
	default:
		log.Printf("ERROR: lookup for %q failed: %v", city, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
	}
}

// searchRequest is the POST /weather body.
type searchRequest struct {
	City string `json:"city" form:"city" validate:"required"`
}

// lookupQuery is the query string shared by the lookup history endpoints.
// From and To are only consulted by the range endpoint.
type lookupQuery struct {
	City string `query:"city" validate:"required"`
	From string `query:"from"`
	To   string `query:"to"`
}

func bindLookupQuery(c *fiber.Ctx) (lookupQuery, error) {
	var q lookupQuery
	if err := c.QueryParser(&q); err != nil {
		return q, err
	}
	q.City = strings.TrimSpace(q.City)
	if err := validate.Struct(q); err != nil {
		return q, errors.New("city query parameter is required")
	}
	return q, nil
}

// window returns the inclusive [from, to] range. Bounds are unix seconds
// or RFC3339 timestamps.
func (q lookupQuery) window() (time.Time, time.Time, error) {
	if q.From == "" || q.To == "" {
		return time.Time{}, time.Time{}, errors.New("from and to query parameters are required")
	}
	from, err := instant(q.From)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("from: %w", err)
	}
	to, err := instant(q.To)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("to: %w", err)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("to must not be before from")
	}
	return from, to, nil
}

func instant(s string) (time.Time, error) {
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return ts, nil
}
