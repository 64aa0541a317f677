package model

import (
	"sort"
	"time"
)

// SpecialFeature is one of the enumerated extras a film release can carry.
type SpecialFeature string

const (
	FeatureTrailers     SpecialFeature = "Trailers"
	FeatureCommentaries SpecialFeature = "Commentaries"
	FeatureDeletedScn   SpecialFeature = "Deleted Scenes"
	FeatureBehindScenes SpecialFeature = "Behind the Scenes"
)

// CanonicalFeatures returns the tags as an ordered set: known tags first in
// lexicographic order, then anything the store added that we don't know
// about, also sorted. Duplicates are dropped. The store's array order is
// never trusted for serialization.
func CanonicalFeatures(raw []string) []SpecialFeature {
	known := map[string]bool{
		string(FeatureTrailers):     true,
		string(FeatureCommentaries): true,
		string(FeatureDeletedScn):   true,
		string(FeatureBehindScenes): true,
	}
	seen := map[string]bool{}
	var ours, extra []string
	for _, f := range raw {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		if known[f] {
			ours = append(ours, f)
		} else {
			extra = append(extra, f)
		}
	}
	sort.Strings(ours)
	sort.Strings(extra)
	out := make([]SpecialFeature, 0, len(ours)+len(extra))
	for _, f := range append(ours, extra...) {
		out = append(out, SpecialFeature(f))
	}
	return out
}

// Film is the full film record as served by /filmdetails.
type Film struct {
	ID              int64            `db:"film_id" json:"film_id"`
	Title           string           `db:"title" json:"title"`
	Description     *string          `db:"description" json:"description,omitempty"`
	ReleaseYear     *int32           `db:"release_year" json:"release_year,omitempty"`
	Language        string           `db:"language" json:"language"`
	RentalDuration  int32            `db:"rental_duration" json:"rental_duration"`
	RentalRate      float64          `db:"rental_rate" json:"rental_rate"`
	Length          *int32           `db:"length" json:"length,omitempty"`
	ReplacementCost float64          `db:"replacement_cost" json:"replacement_cost"`
	Rating          *string          `db:"rating" json:"rating,omitempty"`
	SpecialFeatures []SpecialFeature `db:"-" json:"special_features"`
	LastUpdate      time.Time        `db:"last_update" json:"last_update"`
}

// RentedFilm is one row of a rental-count ranking (landing page, actor page).
type RentedFilm struct {
	FilmID      int64  `db:"film_id" json:"film_id"`
	Title       string `db:"title" json:"title"`
	RentalCount int64  `db:"rental_count" json:"rental_count"`
}

// FilmSearchHit is one /searchfilms result: the film plus its category and
// the distinct actor names concatenated by the store.
type FilmSearchHit struct {
	FilmID      int64   `db:"film_id" json:"film_id"`
	Title       string  `db:"title" json:"title"`
	ReleaseYear *int32  `db:"release_year" json:"release_year,omitempty"`
	Rating      *string `db:"rating" json:"rating,omitempty"`
	Category    string  `db:"category" json:"category"`
	Actors      string  `db:"actors" json:"actors"`
}
