package model

type Actor struct {
	ID        int64  `db:"actor_id" json:"actor_id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
}

// RankedActor is one row of the top-actors ranking.
type RankedActor struct {
	ActorID   int64  `db:"actor_id" json:"actor_id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	FilmCount int64  `db:"film_count" json:"film_count"`
}

// ActorDetails is the /actordetails payload: the actor plus their five most
// rented films.
type ActorDetails struct {
	Actor    Actor        `json:"actor"`
	TopFilms []RentedFilm `json:"top_rented_films"`
}
