package model_test

import (
	"reflect"
	"testing"

	"github.com/CS490-Individual-Project/Backend/model"
)

func TestCanonicalFeatures_LexicographicAndDeduped(t *testing.T) {
	got := model.CanonicalFeatures([]string{
		"Trailers", "Deleted Scenes", "Commentaries", "Trailers",
	})
	want := []model.SpecialFeature{
		"Commentaries", "Deleted Scenes", "Trailers",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v; want %v", got, want)
	}
}

func TestCanonicalFeatures_StoreOrderIgnored(t *testing.T) {
	a := model.CanonicalFeatures([]string{"Behind the Scenes", "Trailers"})
	b := model.CanonicalFeatures([]string{"Trailers", "Behind the Scenes"})
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("ordering depends on store representation: %v vs %v", a, b)
	}
}

func TestCanonicalFeatures_UnknownTagsAfterKnown(t *testing.T) {
	got := model.CanonicalFeatures([]string{"Director Cut", "Trailers", ""})
	want := []model.SpecialFeature{"Trailers", "Director Cut"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v; want %v", got, want)
	}
}

func TestCanonicalFeatures_Empty(t *testing.T) {
	if got := model.CanonicalFeatures(nil); len(got) != 0 {
		t.Fatalf("got %v; want empty", got)
	}
}
