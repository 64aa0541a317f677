package customersvc_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/CS490-Individual-Project/Backend/model"
	customersvc "github.com/CS490-Individual-Project/Backend/service/customer"
)

type passthroughTx struct{}

func (passthroughTx) WithTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	return fn(ctx, nil)
}

type repoMock struct {
	allFn     func(ctx context.Context) ([]model.Customer, error)
	searchFn  func(ctx context.Context, term string) ([]model.Customer, error)
	byIDFn    func(ctx context.Context, id int64) (*model.Customer, error)
	createFn  func(ctx context.Context, p customersvc.CreateParams) (int64, error)
	historyFn func(ctx context.Context, id int64) ([]model.HistoryRow, error)

	lockFn       func(ctx context.Context, id int64) (bool, error)
	openFn       func(ctx context.Context, id int64) (bool, error)
	delRentalsFn func(ctx context.Context, id int64) error
	delCustFn    func(ctx context.Context, id int64) error
}

func (m *repoMock) All(ctx context.Context) ([]model.Customer, error) { return m.allFn(ctx) }
func (m *repoMock) Search(ctx context.Context, term string) ([]model.Customer, error) {
	return m.searchFn(ctx, term)
}
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Customer, error) {
	return m.byIDFn(ctx, id)
}
func (m *repoMock) Create(ctx context.Context, p customersvc.CreateParams) (int64, error) {
	return m.createFn(ctx, p)
}
func (m *repoMock) History(ctx context.Context, id int64) ([]model.HistoryRow, error) {
	return m.historyFn(ctx, id)
}
func (m *repoMock) LockCustomer(ctx context.Context, _ pgx.Tx, id int64) (bool, error) {
	return m.lockFn(ctx, id)
}
func (m *repoMock) HasOpenRental(ctx context.Context, _ pgx.Tx, id int64) (bool, error) {
	return m.openFn(ctx, id)
}
func (m *repoMock) DeleteRentals(ctx context.Context, _ pgx.Tx, id int64) error {
	return m.delRentalsFn(ctx, id)
}
func (m *repoMock) DeleteCustomer(ctx context.Context, _ pgx.Tx, id int64) error {
	return m.delCustFn(ctx, id)
}

func TestDelete_DeclinedWhileRentalOpen(t *testing.T) {
	deleted := false
	m := &repoMock{
		lockFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
		openFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
		delRentalsFn: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
		delCustFn: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}
	s := customersvc.New(passthroughTx{}, m)

	err := s.Delete(context.Background(), 7)
	if customersvc.Code(err) != customersvc.ErrOpenRental {
		t.Fatalf("err = %v; want HAS_OPEN_RENTAL", err)
	}
	if deleted {
		t.Fatal("nothing may be deleted while a rental is open")
	}
}

func TestDelete_RemovesHistoryThenCustomer(t *testing.T) {
	var order []string
	m := &repoMock{
		lockFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
		openFn: func(ctx context.Context, id int64) (bool, error) { return false, nil },
		delRentalsFn: func(ctx context.Context, id int64) error {
			order = append(order, "rentals")
			return nil
		},
		delCustFn: func(ctx context.Context, id int64) error {
			order = append(order, "customer")
			return nil
		},
	}
	s := customersvc.New(passthroughTx{}, m)

	if err := s.Delete(context.Background(), 7); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(order) != 2 || order[0] != "rentals" || order[1] != "customer" {
		t.Fatalf("delete order = %v; want [rentals customer]", order)
	}
}

func TestDelete_UnknownCustomer(t *testing.T) {
	m := &repoMock{
		lockFn: func(ctx context.Context, id int64) (bool, error) { return false, nil },
	}
	s := customersvc.New(passthroughTx{}, m)

	err := s.Delete(context.Background(), 404)
	if customersvc.Code(err) != customersvc.ErrNotFound {
		t.Fatalf("err = %v; want CUSTOMER_NOT_FOUND", err)
	}
}

func TestCreate_MapsDuplicateEmail(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, p customersvc.CreateParams) (int64, error) {
			return 0, &pgconn.PgError{Code: "23505", ConstraintName: "customer_email_key"}
		},
	}
	s := customersvc.New(passthroughTx{}, m)

	_, err := s.Create(context.Background(), customersvc.CreateParams{Email: "a@b.c"})
	if customersvc.Code(err) != customersvc.ErrDuplicateEmail {
		t.Fatalf("err = %v; want DUPLICATE_EMAIL", err)
	}
}

func TestCreate_MapsBadReference(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, p customersvc.CreateParams) (int64, error) {
			return 0, &pgconn.PgError{Code: "23503", ConstraintName: "customer_address_id_fkey"}
		},
	}
	s := customersvc.New(passthroughTx{}, m)

	_, err := s.Create(context.Background(), customersvc.CreateParams{Email: "a@b.c"})
	if customersvc.Code(err) != customersvc.ErrBadReference {
		t.Fatalf("err = %v; want BAD_REFERENCE", err)
	}
}

func TestDetails_NotFound(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Customer, error) { return nil, nil },
	}
	s := customersvc.New(passthroughTx{}, m)

	_, err := s.Details(context.Background(), 404)
	if customersvc.Code(err) != customersvc.ErrNotFound {
		t.Fatalf("err = %v; want CUSTOMER_NOT_FOUND", err)
	}
}

func TestSearch_EmptyTermListsAll(t *testing.T) {
	m := &repoMock{
		allFn: func(ctx context.Context) ([]model.Customer, error) {
			return []model.Customer{{ID: 1}}, nil
		},
		searchFn: func(ctx context.Context, term string) ([]model.Customer, error) {
			t.Fatal("empty term must not hit the search query")
			return nil, nil
		},
	}
	s := customersvc.New(passthroughTx{}, m)

	rows, err := s.Search(context.Background(), "")
	if err != nil || len(rows) != 1 {
		t.Fatalf("got %v, %v; want the full list", rows, err)
	}
}
