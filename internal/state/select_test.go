package state

import (
	"reflect"
	"testing"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
)

func cityPlace(id, city string, price int, rating float64, favorite bool) sixcities.Place {
	return makePlace(id, func(p *sixcities.Place) {
		p.City.Name = city
		p.Price = price
		p.Rating = rating
		p.IsFavorite = favorite
	})
}

func TestCitiesFirstSeenOrder(t *testing.T) {
	places := []sixcities.Place{
		cityPlace("1", "Amsterdam", 100, 4, false),
		cityPlace("2", "Paris", 80, 3, false),
		cityPlace("3", "Amsterdam", 120, 5, false),
		cityPlace("4", "Hamburg", 90, 4, false),
	}

	cities := Cities(places)
	got := make([]string, len(cities))
	for i, c := range cities {
		got[i] = c.Name
	}
	want := []string{"Amsterdam", "Paris", "Hamburg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Cities = %v, want %v", got, want)
	}
}

func TestPlacesByCity(t *testing.T) {
	places := []sixcities.Place{
		cityPlace("1", "Paris", 100, 4, false),
		cityPlace("2", "Cologne", 80, 3, false),
		cityPlace("3", "Paris", 120, 5, false),
	}

	paris := PlacesByCity(places, "Paris")
	if len(paris) != 2 || paris[0].ID != "1" || paris[1].ID != "3" {
		t.Fatalf("PlacesByCity(Paris) = %#v", paris)
	}
	if got := PlacesByCity(places, "Brussels"); got != nil {
		t.Fatalf("PlacesByCity(Brussels) = %#v, want nil", got)
	}
}

func TestFavorites(t *testing.T) {
	places := []sixcities.Place{
		cityPlace("1", "Paris", 100, 4, true),
		cityPlace("2", "Paris", 80, 3, false),
		cityPlace("3", "Hamburg", 120, 5, true),
	}

	favorites := Favorites(places)
	if len(favorites) != 2 || favorites[0].ID != "1" || favorites[1].ID != "3" {
		t.Fatalf("Favorites = %#v", favorites)
	}
}

func TestSortPlaces(t *testing.T) {
	places := []sixcities.Place{
		cityPlace("a", "Paris", 120, 3.5, false),
		cityPlace("b", "Paris", 80, 4.8, false),
		cityPlace("c", "Paris", 100, 4.8, false),
	}
	// Keep the original IDs so we can prove the input did not reorder.
	originalOrder := []string{places[0].ID, places[1].ID, places[2].ID}

	ids := func(sorted []sixcities.Place) []string {
		out := make([]string, len(sorted))
		for i, p := range sorted {
			out[i] = p.ID
		}
		return out
	}

	cases := []struct {
		option SortOption
		want   []string
	}{
		{SortPopular, []string{"a", "b", "c"}},
		{SortPriceAsc, []string{"b", "c", "a"}},
		{SortPriceDesc, []string{"a", "c", "b"}},
		// Equal ratings keep server order: b before c.
		{SortTopRated, []string{"b", "c", "a"}},
	}
	for _, tc := range cases {
		got := ids(SortPlaces(places, tc.option))
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SortPlaces(%v) = %v, want %v", tc.option, got, tc.want)
		}
	}

	after := []string{places[0].ID, places[1].ID, places[2].ID}
	if !reflect.DeepEqual(after, originalOrder) {
		t.Fatalf("input reordered: %v", after)
	}
}

func TestSortOptionLabelsAndCycle(t *testing.T) {
	labels := map[SortOption]string{
		SortPopular:   "Popular",
		SortPriceAsc:  "Price: low to high",
		SortPriceDesc: "Price: high to low",
		SortTopRated:  "Top rated first",
	}
	for option, want := range labels {
		if got := option.String(); got != want {
			t.Fatalf("String(%d) = %q, want %q", option, got, want)
		}
	}

	if got := SortTopRated.Next(); got != SortPopular {
		t.Fatalf("Next after last = %v, want %v", got, SortPopular)
	}
	if got := SortPopular.Next(); got != SortPriceAsc {
		t.Fatalf("Next after first = %v, want %v", got, SortPriceAsc)
	}
}
