package customersvc

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/CS490-Individual-Project/Backend/model"
	customerrepo "github.com/CS490-Individual-Project/Backend/repository/customer"
	"github.com/CS490-Individual-Project/Backend/util/database"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound       ErrCode = "CUSTOMER_NOT_FOUND"
	ErrOpenRental     ErrCode = "HAS_OPEN_RENTAL"
	ErrDuplicateEmail ErrCode = "DUPLICATE_EMAIL"
	ErrBadReference   ErrCode = "BAD_REFERENCE"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type CreateParams = customerrepo.CreateParams

type Repo interface {
	All(ctx context.Context) ([]model.Customer, error)
	Search(ctx context.Context, term string) ([]model.Customer, error)
	ByID(ctx context.Context, customerID int64) (*model.Customer, error)
	Create(ctx context.Context, p CreateParams) (int64, error)
	History(ctx context.Context, customerID int64) ([]model.HistoryRow, error)

	LockCustomer(ctx context.Context, tx pgx.Tx, customerID int64) (bool, error)
	HasOpenRental(ctx context.Context, tx pgx.Tx, customerID int64) (bool, error)
	DeleteRentals(ctx context.Context, tx pgx.Tx, customerID int64) error
	DeleteCustomer(ctx context.Context, tx pgx.Tx, customerID int64) error
}

type Service interface {
	List(ctx context.Context) ([]model.Customer, error)
	Search(ctx context.Context, term string) ([]model.Customer, error)
	Create(ctx context.Context, p CreateParams) (int64, error)

	// Delete removes a customer and their closed rentals; declined while
	// any rental is still open.
	Delete(ctx context.Context, customerID int64) error

	Details(ctx context.Context, customerID int64) (*model.CustomerDetails, error)
}

type service struct {
	tx database.TxRunner
	r  Repo
}

func New(tx database.TxRunner, r Repo) Service { return &service{tx: tx, r: r} }

func (s *service) List(ctx context.Context) ([]model.Customer, error) {
	return s.r.All(ctx)
}

func (s *service) Search(ctx context.Context, term string) ([]model.Customer, error) {
	if term == "" {
		return s.r.All(ctx)
	}
	return s.r.Search(ctx, term)
}

func (s *service) Create(ctx context.Context, p CreateParams) (int64, error) {
	id, err := s.r.Create(ctx, p)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return 0, makeErr(ErrDuplicateEmail)
		}
		if database.IsForeignKeyViolation(err) {
			return 0, makeErr(ErrBadReference)
		}
		return 0, err
	}
	return id, nil
}

func (s *service) Delete(ctx context.Context, customerID int64) error {
	return s.tx.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		found, err := s.r.LockCustomer(ctx, tx, customerID)
		if err != nil {
			return err
		}
		if !found {
			return makeErr(ErrNotFound)
		}
		open, err := s.r.HasOpenRental(ctx, tx, customerID)
		if err != nil {
			return err
		}
		if open {
			return makeErr(ErrOpenRental)
		}
		if err := s.r.DeleteRentals(ctx, tx, customerID); err != nil {
			return err
		}
		return s.r.DeleteCustomer(ctx, tx, customerID)
	})
}

func (s *service) Details(ctx context.Context, customerID int64) (*model.CustomerDetails, error) {
	c, err := s.r.ByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, makeErr(ErrNotFound)
	}
	history, err := s.r.History(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return &model.CustomerDetails{Customer: *c, Rentals: history}, nil
}
