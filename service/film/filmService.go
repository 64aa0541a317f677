package filmsvc

import (
	"context"
	"errors"
	"strings"

	"github.com/CS490-Individual-Project/Backend/model"
)

const topRentedLimit = 5

var (
	ErrEmptySearch = errors.New("empty search term")
	ErrNotFound    = errors.New("film not found")
)

type Repo interface {
	TopRented(ctx context.Context, limit int) ([]model.RentedFilm, error)
	Search(ctx context.Context, term string) ([]model.FilmSearchHit, error)
	Details(ctx context.Context, filmID int64) (*model.Film, error)
}

type Service interface {
	TopRented(ctx context.Context) ([]model.RentedFilm, error)
	Search(ctx context.Context, term string) ([]model.FilmSearchHit, error)
	Details(ctx context.Context, filmID int64) (*model.Film, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) TopRented(ctx context.Context) ([]model.RentedFilm, error) {
	return s.r.TopRented(ctx, topRentedLimit)
}

func (s *service) Search(ctx context.Context, term string) ([]model.FilmSearchHit, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptySearch
	}
	return s.r.Search(ctx, term)
}

func (s *service) Details(ctx context.Context, filmID int64) (*model.Film, error) {
	f, err := s.r.Details(ctx, filmID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNotFound
	}
	return f, nil
}
