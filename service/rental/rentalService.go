package rental

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/CS490-Individual-Project/Backend/model"
	rentalrepo "github.com/CS490-Individual-Project/Backend/repository/rental"
	"github.com/CS490-Individual-Project/Backend/util/database"
)

// errors used by controllers

type ErrCode string

const (
	ErrNoInventory     ErrCode = "NO_INVENTORY"
	ErrFilmNotFound    ErrCode = "FILM_NOT_FOUND"
	ErrRentalNotFound  ErrCode = "RENTAL_NOT_FOUND"
	ErrAlreadyReturned ErrCode = "ALREADY_RETURNED"
	ErrUnknownCustomer ErrCode = "UNKNOWN_CUSTOMER"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// AsError wraps a code as an error; handy when a caller needs to
// synthesize a coded outcome.
func AsError(c ErrCode) error { return makeErr(c) }

// Code extracts the error code, or "" for uncoded errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Allocated is the outcome of a successful allocation.
type Allocated struct {
	RentalID    int64
	InventoryID int64
}

// Sakila seeds staff ids from 1; used when the caller doesn't say who
// handled the rental.
const defaultStaffID = 1

type Repo interface {
	LockFreeInventory(ctx context.Context, tx pgx.Tx, filmID int64) (int64, error)
	InsertRental(ctx context.Context, tx pgx.Tx, inventoryID, customerID, staffID int64, rentalDate time.Time) (int64, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, rentalID int64) (*model.Rental, error)
	Close(ctx context.Context, tx pgx.Tx, rentalID int64, returnDate time.Time) error
}

// FilmChecker answers whether a film exists at all, so a bad film id is
// reported as not-found rather than out-of-stock.
type FilmChecker interface {
	Exists(ctx context.Context, filmID int64) (bool, error)
}

type Service interface {
	// Allocate picks one in-stock inventory unit of the film and opens a
	// rental on it insulated from concurrent allocations (see Repo).
	Allocate(ctx context.Context, filmID, customerID, staffID int64, rentalDate time.Time) (*Allocated, error)

	// Return closes an open rental; closing a closed one is declined.
	Return(ctx context.Context, rentalID int64, returnDate time.Time) error
}

type service struct {
	tx    database.TxRunner
	r     Repo
	films FilmChecker
}

func New(tx database.TxRunner, r Repo, films FilmChecker) Service {
	return &service{tx: tx, r: r, films: films}
}

func (s *service) Allocate(ctx context.Context, filmID, customerID, staffID int64, rentalDate time.Time) (*Allocated, error) {
	exists, err := s.films.Exists(ctx, filmID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, makeErr(ErrFilmNotFound)
	}

	if staffID <= 0 {
		staffID = defaultStaffID
	}
	if rentalDate.IsZero() {
		rentalDate = time.Now().UTC()
	}

	var out Allocated
	err = s.tx.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		inventoryID, err := s.r.LockFreeInventory(ctx, tx, filmID)
		if errors.Is(err, rentalrepo.ErrNoFreeInventory) {
			return makeErr(ErrNoInventory)
		}
		if err != nil {
			return err
		}

		rentalID, err := s.r.InsertRental(ctx, tx, inventoryID, customerID, staffID, rentalDate)
		if err != nil {
			if database.IsForeignKeyViolation(err) {
				return makeErr(ErrUnknownCustomer)
			}
			return err
		}

		out = Allocated{RentalID: rentalID, InventoryID: inventoryID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Return(ctx context.Context, rentalID int64, returnDate time.Time) error {
	if returnDate.IsZero() {
		returnDate = time.Now().UTC()
	}
	return s.tx.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		row, err := s.r.GetForUpdate(ctx, tx, rentalID)
		if err != nil {
			return err
		}
		if row == nil {
			return makeErr(ErrRentalNotFound)
		}
		if row.ReturnDate != nil {
			return makeErr(ErrAlreadyReturned)
		}
		return s.r.Close(ctx, tx, rentalID, returnDate)
	})
}
