package customerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/CS490-Individual-Project/Backend/model"
	"github.com/CS490-Individual-Project/Backend/util/database"
)

type CreateParams struct {
	StoreID   int64
	FirstName string
	LastName  string
	Email     string
	AddressID int64
}

type Repo interface {
	All(ctx context.Context) ([]model.Customer, error)
	Search(ctx context.Context, term string) ([]model.Customer, error)
	ByID(ctx context.Context, customerID int64) (*model.Customer, error)
	Create(ctx context.Context, p CreateParams) (int64, error)
	History(ctx context.Context, customerID int64) ([]model.HistoryRow, error)

	// Delete protocol, tx-scoped: lock the customer row, check for open
	// rentals, then remove history and the customer.
	LockCustomer(ctx context.Context, tx pgx.Tx, customerID int64) (bool, error)
	HasOpenRental(ctx context.Context, tx pgx.Tx, customerID int64) (bool, error)
	DeleteRentals(ctx context.Context, tx pgx.Tx, customerID int64) error
	DeleteCustomer(ctx context.Context, tx pgx.Tx, customerID int64) error
}

type repo struct{ g *database.Gateway }

func New(g *database.Gateway) Repo { return &repo{g: g} }

const customerColumns = `
	customer_id, store_id, first_name, last_name, email,
	address_id, active, create_date, last_update`

func (r *repo) All(ctx context.Context) ([]model.Customer, error) {
	const q = `
		SELECT ` + customerColumns + `
		FROM customer
		ORDER BY customer_id`
	return database.FetchAll[model.Customer](ctx, r.g, q)
}

// Search matches the term against customer id (exact) and first/last name
// (case-insensitive wildcard).
func (r *repo) Search(ctx context.Context, term string) ([]model.Customer, error) {
	const q = `
		SELECT ` + customerColumns + `
		FROM customer
		WHERE first_name ILIKE '%' || $1 || '%'
		   OR last_name ILIKE '%' || $1 || '%'
		   OR customer_id::text = $1
		ORDER BY customer_id`
	return database.FetchAll[model.Customer](ctx, r.g, q, term)
}

func (r *repo) ByID(ctx context.Context, customerID int64) (*model.Customer, error) {
	const q = `
		SELECT ` + customerColumns + `
		FROM customer
		WHERE customer_id = $1`
	return database.FetchOne[model.Customer](ctx, r.g, q, customerID)
}

func (r *repo) Create(ctx context.Context, p CreateParams) (int64, error) {
	const q = `
		INSERT INTO customer (store_id, first_name, last_name, email, address_id, active, create_date)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW())
		RETURNING customer_id`
	return r.g.ExecuteWrite(ctx, q, p.StoreID, p.FirstName, p.LastName, p.Email, p.AddressID)
}

func (r *repo) History(ctx context.Context, customerID int64) ([]model.HistoryRow, error) {
	const q = `
		SELECT r.rental_id, f.film_id, f.title, r.rental_date, r.return_date
		FROM rental r
		JOIN inventory i ON i.inventory_id = r.inventory_id
		JOIN film f ON f.film_id = i.film_id
		WHERE r.customer_id = $1
		ORDER BY r.rental_date DESC, r.rental_id DESC`
	return database.FetchAll[model.HistoryRow](ctx, r.g, q, customerID)
}

func (r *repo) LockCustomer(ctx context.Context, tx pgx.Tx, customerID int64) (bool, error) {
	const q = `
		SELECT customer_id
		FROM customer
		WHERE customer_id = $1
		FOR UPDATE`
	var id int64
	err := tx.QueryRow(ctx, q, customerID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *repo) HasOpenRental(ctx context.Context, tx pgx.Tx, customerID int64) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM rental
			WHERE customer_id = $1 AND return_date IS NULL
		)`
	var open bool
	if err := tx.QueryRow(ctx, q, customerID).Scan(&open); err != nil {
		return false, err
	}
	return open, nil
}

func (r *repo) DeleteRentals(ctx context.Context, tx pgx.Tx, customerID int64) error {
	const q = `DELETE FROM rental WHERE customer_id = $1`
	_, err := tx.Exec(ctx, q, customerID)
	return err
}

func (r *repo) DeleteCustomer(ctx context.Context, tx pgx.Tx, customerID int64) error {
	const q = `DELETE FROM customer WHERE customer_id = $1`
	_, err := tx.Exec(ctx, q, customerID)
	return err
}
