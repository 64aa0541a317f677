package actor

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	actorsvc "github.com/CS490-Individual-Project/Backend/service/actor"
	"github.com/CS490-Individual-Project/Backend/util/database"
)

type Controller struct {
	Svc actorsvc.Service
	Log *slog.Logger
}

// GET /top5actors
func (h *Controller) TopActors(c echo.Context) error {
	rows, err := h.Svc.TopActors(c.Request().Context())
	if err != nil {
		return h.storeError(c, "top actors", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /actordetails?actor_id=
func (h *Controller) Details(c echo.Context) error {
	id, err := strconv.ParseInt(c.QueryParam("actor_id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "actor_id is required"})
	}
	d, err := h.Svc.Details(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, actorsvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "actor not found"})
		}
		return h.storeError(c, "actor details", err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Controller) storeError(c echo.Context, op string, err error) error {
	h.Log.Error(op, "err", err)
	if errors.Is(err, database.ErrStoreUnavailable) {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "store unavailable"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
}
