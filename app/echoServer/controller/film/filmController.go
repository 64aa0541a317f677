package film

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	filmsvc "github.com/CS490-Individual-Project/Backend/service/film"
	"github.com/CS490-Individual-Project/Backend/util/database"
)

type Controller struct {
	Svc filmsvc.Service
	Log *slog.Logger
}

// GET /top5rented
func (h *Controller) TopRented(c echo.Context) error {
	rows, err := h.Svc.TopRented(c.Request().Context())
	if err != nil {
		return h.storeError(c, "top rented", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /searchfilms?search=
func (h *Controller) Search(c echo.Context) error {
	term := c.QueryParam("search")
	rows, err := h.Svc.Search(c.Request().Context(), term)
	if err != nil {
		if errors.Is(err, filmsvc.ErrEmptySearch) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "search term is required"})
		}
		return h.storeError(c, "film search", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /filmdetails?film_id=
func (h *Controller) Details(c echo.Context) error {
	id, err := strconv.ParseInt(c.QueryParam("film_id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "film_id is required"})
	}
	f, err := h.Svc.Details(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, filmsvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "film not found"})
		}
		return h.storeError(c, "film details", err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *Controller) storeError(c echo.Context, op string, err error) error {
	h.Log.Error(op, "err", err)
	if errors.Is(err, database.ErrStoreUnavailable) {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "store unavailable"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
}
