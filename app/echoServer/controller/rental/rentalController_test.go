package rental_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	rentalctrl "github.com/CS490-Individual-Project/Backend/app/echoServer/controller/rental"
	rs "github.com/CS490-Individual-Project/Backend/service/rental"
)

type svcStub struct {
	allocateFn func(ctx context.Context, filmID, customerID, staffID int64, rentalDate time.Time) (*rs.Allocated, error)
	returnFn   func(ctx context.Context, rentalID int64, returnDate time.Time) error
}

func (s *svcStub) Allocate(ctx context.Context, filmID, customerID, staffID int64, rentalDate time.Time) (*rs.Allocated, error) {
	return s.allocateFn(ctx, filmID, customerID, staffID, rentalDate)
}
func (s *svcStub) Return(ctx context.Context, rentalID int64, returnDate time.Time) error {
	return s.returnFn(ctx, rentalID, returnDate)
}

func newController(t *testing.T, svc rs.Service) *rentalctrl.Controller {
	t.Helper()
	return &rentalctrl.Controller{
		Svc: svc,
		V:   validator.New(),
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func doPut(h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))
	return rec
}

func TestRent_MissingFieldsRejectedBeforeStore(t *testing.T) {
	svc := &svcStub{
		allocateFn: func(ctx context.Context, filmID, customerID, staffID int64, rentalDate time.Time) (*rs.Allocated, error) {
			t.Fatal("service must not be called for an invalid request")
			return nil, nil
		},
	}
	h := newController(t, svc)

	for _, body := range []string{
		`{}`,
		`{"film_id": 5}`,
		`{"customer_id": 7}`,
		`not json`,
	} {
		rec := doPut(h.Rent, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d; want 400", body, rec.Code)
		}
	}
}

func TestRent_NoInventoryIsDecline(t *testing.T) {
	called := false
	svc := &svcStub{
		allocateFn: func(ctx context.Context, filmID, customerID, staffID int64, rentalDate time.Time) (*rs.Allocated, error) {
			called = true
			return nil, rs.AsError(rs.ErrNoInventory)
		},
	}
	h := newController(t, svc)

	rec := doPut(h.Rent, `{"film_id": 5, "customer_id": 7}`)
	if !called {
		t.Fatal("service was not reached")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no inventory") {
		t.Fatalf("body %q should say why the request was declined", rec.Body.String())
	}
}

func TestRent_Success(t *testing.T) {
	svc := &svcStub{
		allocateFn: func(ctx context.Context, filmID, customerID, staffID int64, rentalDate time.Time) (*rs.Allocated, error) {
			if filmID != 5 || customerID != 7 {
				t.Fatalf("got film=%d customer=%d", filmID, customerID)
			}
			return &rs.Allocated{RentalID: 900, InventoryID: 102}, nil
		},
	}
	h := newController(t, svc)

	rec := doPut(h.Rent, `{"film_id": 5, "customer_id": 7}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200; body %s", rec.Code, rec.Body.String())
	}
}

func TestReturn_AlreadyReturnedIsDecline(t *testing.T) {
	svc := &svcStub{
		returnFn: func(ctx context.Context, rentalID int64, returnDate time.Time) error {
			return rs.AsError(rs.ErrAlreadyReturned)
		},
	}
	h := newController(t, svc)

	rec := doPut(h.Return, `{"rental_id": 12}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
}

func TestReturn_BadDateRejected(t *testing.T) {
	svc := &svcStub{
		returnFn: func(ctx context.Context, rentalID int64, returnDate time.Time) error {
			t.Fatal("service must not be called with an unparsable date")
			return nil
		},
	}
	h := newController(t, svc)

	rec := doPut(h.Return, `{"rental_id": 12, "return_date": "yesterday"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
}
