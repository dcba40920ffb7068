package state

import (
	"sort"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
)

// StaticCities is the fixed city tab order shown before the catalog loads.
var StaticCities = []string{"Paris", "Cologne", "Brussels", "Amsterdam", "Hamburg", "Dusseldorf"}

// SortOption orders a listing collection for display.
type SortOption int

const (
	// SortPopular keeps the server order.
	SortPopular SortOption = iota
	// SortPriceAsc orders by nightly price, cheapest first.
	SortPriceAsc
	// SortPriceDesc orders by nightly price, priciest first.
	SortPriceDesc
	// SortTopRated orders by rating, best first.
	SortTopRated
)

// String implements fmt.Stringer with the labels the web client shows.
func (o SortOption) String() string {
	switch o {
	case SortPriceAsc:
		return "Price: low to high"
	case SortPriceDesc:
		return "Price: high to low"
	case SortTopRated:
		return "Top rated first"
	default:
		return "Popular"
	}
}

// Next cycles through the sort options.
func (o SortOption) Next() SortOption {
	if o >= SortTopRated {
		return SortPopular
	}
	return o + 1
}

// Cities returns the distinct cities present in places, in first-seen order.
func Cities(places []sixcities.Place) []sixcities.City {
	seen := make(map[string]bool, len(places))
	var cities []sixcities.City
	for _, place := range places {
		if seen[place.City.Name] {
			continue
		}
		seen[place.City.Name] = true
		cities = append(cities, place.City)
	}
	return cities
}

// PlacesByCity filters places to the named city. The catalog is always
// fetched whole; city scoping happens here, in memory.
func PlacesByCity(places []sixcities.Place, city string) []sixcities.Place {
	var filtered []sixcities.Place
	for _, place := range places {
		if place.City.Name == city {
			filtered = append(filtered, place)
		}
	}
	return filtered
}

// Favorites returns the places the user has bookmarked.
func Favorites(places []sixcities.Place) []sixcities.Place {
	var favorites []sixcities.Place
	for _, place := range places {
		if place.IsFavorite {
			favorites = append(favorites, place)
		}
	}
	return favorites
}

// SortPlaces returns a sorted copy of places. The input is never reordered,
// and SortPopular preserves the incoming order exactly. Sorting is stable so
// equal prices and ratings keep their relative server order.
func SortPlaces(places []sixcities.Place, option SortOption) []sixcities.Place {
	sorted := make([]sixcities.Place, len(places))
	copy(sorted, places)

	switch option {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case SortTopRated:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	}
	return sorted
}
