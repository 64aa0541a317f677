package filmrepo

import (
	"context"
	"time"

	"github.com/CS490-Individual-Project/Backend/model"
	"github.com/CS490-Individual-Project/Backend/util/database"
)

type Repo interface {
	TopRented(ctx context.Context, limit int) ([]model.RentedFilm, error)
	Search(ctx context.Context, term string) ([]model.FilmSearchHit, error)
	Details(ctx context.Context, filmID int64) (*model.Film, error)
	Exists(ctx context.Context, filmID int64) (bool, error)
}

type repo struct{ g *database.Gateway }

func New(g *database.Gateway) Repo { return &repo{g: g} }

func (r *repo) TopRented(ctx context.Context, limit int) ([]model.RentedFilm, error) {
	const q = `
		SELECT f.film_id, f.title, COUNT(r.rental_id) AS rental_count
		FROM film f
		JOIN inventory i ON i.film_id = f.film_id
		JOIN rental r ON r.inventory_id = i.inventory_id
		GROUP BY f.film_id, f.title
		ORDER BY rental_count DESC, f.film_id
		LIMIT $1`
	return database.FetchAll[model.RentedFilm](ctx, r.g, q, limit)
}

// Search matches the wildcard term against film title, actor name and
// category name, case-insensitively. Each hit carries its category and the
// distinct actor names concatenated by the store.
func (r *repo) Search(ctx context.Context, term string) ([]model.FilmSearchHit, error) {
	const q = `
		SELECT f.film_id, f.title, f.release_year, f.rating::text AS rating,
		       COALESCE(c.name, '') AS category,
		       COALESCE(string_agg(DISTINCT a.first_name || ' ' || a.last_name, ', '), '') AS actors
		FROM film f
		LEFT JOIN film_category fc ON fc.film_id = f.film_id
		LEFT JOIN category c ON c.category_id = fc.category_id
		LEFT JOIN film_actor fa ON fa.film_id = f.film_id
		LEFT JOIN actor a ON a.actor_id = fa.actor_id
		WHERE f.title ILIKE '%' || $1 || '%'
		   OR c.name ILIKE '%' || $1 || '%'
		   OR (a.first_name || ' ' || a.last_name) ILIKE '%' || $1 || '%'
		GROUP BY f.film_id, f.title, f.release_year, f.rating, c.name
		ORDER BY f.title, f.film_id`
	return database.FetchAll[model.FilmSearchHit](ctx, r.g, q, term)
}

// filmRow is the raw details row; special_features stays the store's array
// until the repo canonicalizes it.
type filmRow struct {
	ID              int64     `db:"film_id"`
	Title           string    `db:"title"`
	Description     *string   `db:"description"`
	ReleaseYear     *int32    `db:"release_year"`
	Language        string    `db:"language"`
	RentalDuration  int32     `db:"rental_duration"`
	RentalRate      float64   `db:"rental_rate"`
	Length          *int32    `db:"length"`
	ReplacementCost float64   `db:"replacement_cost"`
	Rating          *string   `db:"rating"`
	SpecialFeatures []string  `db:"special_features"`
	LastUpdate      time.Time `db:"last_update"`
}

func (r *repo) Details(ctx context.Context, filmID int64) (*model.Film, error) {
	const q = `
		SELECT f.film_id, f.title, f.description, f.release_year,
		       l.name AS language, f.rental_duration, f.rental_rate,
		       f.length, f.replacement_cost, f.rating::text AS rating,
		       f.special_features, f.last_update
		FROM film f
		JOIN language l ON l.language_id = f.language_id
		WHERE f.film_id = $1`
	row, err := database.FetchOne[filmRow](ctx, r.g, q, filmID)
	if err != nil || row == nil {
		return nil, err
	}
	return &model.Film{
		ID:              row.ID,
		Title:           row.Title,
		Description:     row.Description,
		ReleaseYear:     row.ReleaseYear,
		Language:        row.Language,
		RentalDuration:  row.RentalDuration,
		RentalRate:      row.RentalRate,
		Length:          row.Length,
		ReplacementCost: row.ReplacementCost,
		Rating:          row.Rating,
		SpecialFeatures: model.CanonicalFeatures(row.SpecialFeatures),
		LastUpdate:      row.LastUpdate,
	}, nil
}

type existsRow struct {
	Found bool `db:"found"`
}

func (r *repo) Exists(ctx context.Context, filmID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM film WHERE film_id = $1) AS found`
	row, err := database.FetchOne[existsRow](ctx, r.g, q, filmID)
	if err != nil || row == nil {
		return false, err
	}
	return row.Found, nil
}
