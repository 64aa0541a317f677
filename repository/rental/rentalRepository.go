package rentalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/CS490-Individual-Project/Backend/model"
	"github.com/CS490-Individual-Project/Backend/util/database"
)

// ErrNoFreeInventory reports that every inventory unit of the film either
// holds an open rental or is locked by a concurrent allocation.
var ErrNoFreeInventory = errors.New("no free inventory")

type Repo interface {
	// LockFreeInventory locks the lowest-id inventory unit of the film
	// that has no open rental. SKIP LOCKED makes concurrent allocators
	// claim disjoint units instead of queueing on the same row, so the
	// lock held here is exactly the mutual exclusion the insert needs.
	LockFreeInventory(ctx context.Context, tx pgx.Tx, filmID int64) (int64, error)

	// InsertRental creates the open rental row for a unit locked in the
	// same transaction.
	InsertRental(ctx context.Context, tx pgx.Tx, inventoryID, customerID, staffID int64, rentalDate time.Time) (int64, error)

	// GetForUpdate locks one rental row; nil when it does not exist.
	GetForUpdate(ctx context.Context, tx pgx.Tx, rentalID int64) (*model.Rental, error)

	// Close stamps the return date on an open rental.
	Close(ctx context.Context, tx pgx.Tx, rentalID int64, returnDate time.Time) error
}

type repo struct{ g *database.Gateway }

func New(g *database.Gateway) Repo { return &repo{g: g} }

func (r *repo) LockFreeInventory(ctx context.Context, tx pgx.Tx, filmID int64) (int64, error) {
	const q = `
		SELECT i.inventory_id
		FROM inventory i
		WHERE i.film_id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM rental r
			WHERE r.inventory_id = i.inventory_id
			  AND r.return_date IS NULL
		  )
		ORDER BY i.inventory_id
		FOR UPDATE OF i SKIP LOCKED
		LIMIT 1`
	var inventoryID int64
	err := tx.QueryRow(ctx, q, filmID).Scan(&inventoryID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNoFreeInventory
	}
	if err != nil {
		return 0, err
	}
	return inventoryID, nil
}

func (r *repo) InsertRental(ctx context.Context, tx pgx.Tx, inventoryID, customerID, staffID int64, rentalDate time.Time) (int64, error) {
	const q = `
		INSERT INTO rental (rental_date, inventory_id, customer_id, staff_id)
		VALUES ($1, $2, $3, $4)
		RETURNING rental_id`
	var rentalID int64
	if err := tx.QueryRow(ctx, q, rentalDate, inventoryID, customerID, staffID).Scan(&rentalID); err != nil {
		return 0, err
	}
	return rentalID, nil
}

func (r *repo) GetForUpdate(ctx context.Context, tx pgx.Tx, rentalID int64) (*model.Rental, error) {
	const q = `
		SELECT rental_id, rental_date, inventory_id, customer_id, return_date, staff_id
		FROM rental
		WHERE rental_id = $1
		FOR UPDATE`
	var m model.Rental
	err := tx.QueryRow(ctx, q, rentalID).Scan(
		&m.ID, &m.RentalDate, &m.InventoryID, &m.CustomerID, &m.ReturnDate, &m.StaffID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repo) Close(ctx context.Context, tx pgx.Tx, rentalID int64, returnDate time.Time) error {
	const q = `
		UPDATE rental
		SET return_date = $2, last_update = NOW()
		WHERE rental_id = $1`
	_, err := tx.Exec(ctx, q, rentalID, returnDate)
	return err
}
