package rental

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	rs "github.com/CS490-Individual-Project/Backend/service/rental"
	"github.com/CS490-Individual-Project/Backend/util/database"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// PUT /rentfilm
func (h *Controller) Rent(c echo.Context) error {
	var req RentFilmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	rentalDate, ok := parseDate(req.RentalDate)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "rental_date must be RFC 3339"})
	}

	out, err := h.Svc.Allocate(c.Request().Context(), req.FilmID, req.CustomerID, req.StaffID, rentalDate)
	if err != nil {
		h.Log.Error("rent film", "err", err, "film_id", req.FilmID)
		switch rs.Code(err) {
		case rs.ErrNoInventory:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "no inventory available"})
		case rs.ErrFilmNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "film not found"})
		case rs.ErrUnknownCustomer:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown customer"})
		}
		if errors.Is(err, database.ErrStoreUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "store unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":      "film rented",
		"rental_id":    out.RentalID,
		"inventory_id": out.InventoryID,
	})
}

// PUT /returnfilm
func (h *Controller) Return(c echo.Context) error {
	var req ReturnFilmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	returnDate, ok := parseDate(req.ReturnDate)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "return_date must be RFC 3339"})
	}

	if err := h.Svc.Return(c.Request().Context(), req.RentalID, returnDate); err != nil {
		h.Log.Error("return film", "err", err, "rental_id", req.RentalID)
		switch rs.Code(err) {
		case rs.ErrRentalNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		case rs.ErrAlreadyReturned:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "rental already returned"})
		}
		if errors.Is(err, database.ErrStoreUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "store unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "film returned"})
}

// parseDate accepts an empty string (the service defaults to now) or an
// RFC 3339 timestamp.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
