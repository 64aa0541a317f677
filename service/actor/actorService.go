package actorsvc

import (
	"context"
	"errors"

	"github.com/CS490-Individual-Project/Backend/model"
)

const (
	topActorsLimit = 5
	topFilmsLimit  = 5
)

var ErrNotFound = errors.New("actor not found")

type Repo interface {
	TopByFilmCount(ctx context.Context, limit int) ([]model.RankedActor, error)
	ByID(ctx context.Context, actorID int64) (*model.Actor, error)
	TopRentedFilms(ctx context.Context, actorID int64, limit int) ([]model.RentedFilm, error)
}

type Service interface {
	TopActors(ctx context.Context) ([]model.RankedActor, error)
	Details(ctx context.Context, actorID int64) (*model.ActorDetails, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) TopActors(ctx context.Context) ([]model.RankedActor, error) {
	return s.r.TopByFilmCount(ctx, topActorsLimit)
}

func (s *service) Details(ctx context.Context, actorID int64) (*model.ActorDetails, error) {
	a, err := s.r.ByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	films, err := s.r.TopRentedFilms(ctx, actorID, topFilmsLimit)
	if err != nil {
		return nil, err
	}
	return &model.ActorDetails{Actor: *a, TopFilms: films}, nil
}
