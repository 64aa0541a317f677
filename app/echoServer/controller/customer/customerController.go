package customer

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	customersvc "github.com/CS490-Individual-Project/Backend/service/customer"
	"github.com/CS490-Individual-Project/Backend/util/database"
)

type Controller struct {
	Svc customersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /customers
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return h.storeError(c, "customer list", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /searchcustomers?search=
func (h *Controller) Search(c echo.Context) error {
	rows, err := h.Svc.Search(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return h.storeError(c, "customer search", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /addcustomer
func (h *Controller) Add(c echo.Context) error {
	var req AddCustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	id, err := h.Svc.Create(c.Request().Context(), customersvc.CreateParams{
		StoreID:   req.StoreID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		AddressID: req.AddressID,
	})
	if err != nil {
		h.Log.Error("customer create", "err", err)
		switch customersvc.Code(err) {
		case customersvc.ErrDuplicateEmail:
			return c.JSON(http.StatusConflict, echo.Map{"message": "email already registered"})
		case customersvc.ErrBadReference:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown store or address"})
		}
		if errors.Is(err, database.ErrStoreUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "store unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"customer_id": id})
}

// PUT /deletecustomer?customer_id=
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.QueryParam("customer_id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "customer_id is required"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		h.Log.Error("customer delete", "err", err)
		switch customersvc.Code(err) {
		case customersvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		case customersvc.ErrOpenRental:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "customer has an open rental"})
		}
		if errors.Is(err, database.ErrStoreUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "store unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "customer deleted"})
}

// GET /customerdetails?customer_id=
func (h *Controller) Details(c echo.Context) error {
	id, err := strconv.ParseInt(c.QueryParam("customer_id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "customer_id is required"})
	}
	d, err := h.Svc.Details(c.Request().Context(), id)
	if err != nil {
		if customersvc.Code(err) == customersvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		}
		return h.storeError(c, "customer details", err)
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
