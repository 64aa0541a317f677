package actorrepo

import (
	"context"

	"github.com/CS490-Individual-Project/Backend/model"
	"github.com/CS490-Individual-Project/Backend/util/database"
)

type Repo interface {
	TopByFilmCount(ctx context.Context, limit int) ([]model.RankedActor, error)
	ByID(ctx context.Context, actorID int64) (*model.Actor, error)
	TopRentedFilms(ctx context.Context, actorID int64, limit int) ([]model.RentedFilm, error)
}

type repo struct{ g *database.Gateway }

func New(g *database.Gateway) Repo { return &repo{g: g} }

func (r *repo) TopByFilmCount(ctx context.Context, limit int) ([]model.RankedActor, error) {
	const q = `
		SELECT a.actor_id, a.first_name, a.last_name,
		       COUNT(fa.film_id) AS film_count
		FROM actor a
		JOIN film_actor fa ON fa.actor_id = a.actor_id
		GROUP BY a.actor_id, a.first_name, a.last_name
		ORDER BY film_count DESC, a.actor_id
		LIMIT $1`
	return database.FetchAll[model.RankedActor](ctx, r.g, q, limit)
}

func (r *repo) ByID(ctx context.Context, actorID int64) (*model.Actor, error) {
	const q = `
		SELECT actor_id, first_name, last_name
		FROM actor
		WHERE actor_id = $1`
	return database.FetchOne[model.Actor](ctx, r.g, q, actorID)
}

// TopRentedFilms ranks the actor's films by how often they were rented.
func (r *repo) TopRentedFilms(ctx context.Context, actorID int64, limit int) ([]model.RentedFilm, error) {
	const q = `
		SELECT f.film_id, f.title, COUNT(r.rental_id) AS rental_count
		FROM film_actor fa
		JOIN film f ON f.film_id = fa.film_id
		JOIN inventory i ON i.film_id = f.film_id
		JOIN rental r ON r.inventory_id = i.inventory_id
		WHERE fa.actor_id = $1
		GROUP BY f.film_id, f.title
		ORDER BY rental_count DESC, f.film_id
		LIMIT $2`
	return database.FetchAll[model.RentedFilm](ctx, r.g, q, actorID, limit)
}
