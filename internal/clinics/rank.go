package clinics

import (
	"math"
	"sort"

	"afyabuddy/internal/models"
)

// MaxResults caps the number of clinics returned by Rank
const MaxResults = 8

// earthRadiusKm is the mean Earth radius used by the haversine formula
const earthRadiusKm = 6371.0

// Rank annotates each candidate with its distance from origin and returns the
// closest MaxResults in ascending order. The input slice is not modified.
func Rank(origin models.Location, candidates []models.Clinic) []models.Clinic {
	ranked := make([]models.Clinic, len(candidates))
	copy(ranked, candidates)

	for i := range ranked {
		ranked[i].Distance = Distance(
			origin.Latitude,
			origin.Longitude,
			ranked[i].Latitude,
			ranked[i].Longitude,
		)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	if len(ranked) > MaxResults {
		ranked = ranked[:MaxResults]
	}
	return ranked
}

// Distance uses the Haversine formula to calculate distance between coordinates in kilometers
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
