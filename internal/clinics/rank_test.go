package clinics

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"afyabuddy/internal/models"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 0.0, Distance(-1.3, 36.8, -1.3, 36.8))

	// one degree of latitude is ~111.19 km on a 6371 km sphere
	d := Distance(0, 0, 1, 0)
	assert.InDelta(t, 111.19, d, 0.01)

	// symmetric
	assert.InDelta(t, Distance(-1.3067, 36.7906, -1.2635, 36.8017), Distance(-1.2635, 36.8017, -1.3067, 36.7906), 1e-9)
}

func TestRank_AscendingOrder(t *testing.T) {
	origin := models.Location{Latitude: 0, Longitude: 0}
	far := models.Clinic{ID: "far", Latitude: 2, Longitude: 2}
	near := models.Clinic{ID: "near", Latitude: 0.1, Longitude: 0.1}

	got := Rank(origin, []models.Clinic{far, near})

	require.Len(t, got, 2)
	assert.Equal(t, "near", got[0].ID)
	assert.Equal(t, "far", got[1].ID)
	assert.Less(t, got[0].Distance, got[1].Distance)
}

func TestRank_CapsAtEight(t *testing.T) {
	origin := models.Location{}
	for _, n := range []int{0, 1, 8, 12} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			var candidates []models.Clinic
			for i := 0; i < n; i++ {
				candidates = append(candidates, models.Clinic{ID: fmt.Sprint(i), Latitude: float64(n - i)})
			}
			got := Rank(origin, candidates)
			assert.Len(t, got, int(math.Min(MaxResults, float64(n))))
		})
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := []models.Clinic{{ID: "b", Latitude: 1}, {ID: "a", Latitude: 0.5}}
	Rank(models.Location{}, in)

	assert.Equal(t, "b", in[0].ID)
	assert.Zero(t, in[0].Distance)
}

func TestDirectory_Nearby(t *testing.T) {
	dir := NewDirectory(nil)
	require.Len(t, dir.All(), 8)

	// standing at Aga Khan University Hospital
	origin := models.Location{Latitude: -1.2635, Longitude: 36.8017}
	got := dir.Nearby(origin, "general")

	require.Len(t, got, 8)
	assert.Equal(t, "Aga Khan University Hospital", got[0].Name)
	assert.InDelta(t, 0, got[0].Distance, 1e-9)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Distance, got[i].Distance)
	}
}

func TestDirectory_EmergencyKeywordKeepsHospitals(t *testing.T) {
	dir := NewDirectory(nil)
	got := dir.Nearby(models.Location{Latitude: -1.2634, Longitude: 36.7908}, "Emergency care")

	assert.Len(t, got, 7)
	for _, c := range got {
		assert.True(t, c.HasType("hospital"), c.Name)
	}
}

func TestRecommendations(t *testing.T) {
	high := Recommendations(models.UrgencyHigh)
	assert.Contains(t, high[0], "24/7 emergency departments")
	assert.Len(t, high, 3)

	normal := Recommendations(models.UrgencyNormal)
	assert.Equal(t, "Consider appointment availability and waiting times", normal[0])
	assert.Equal(t, "Check current traffic conditions for fastest route", normal[len(normal)-1])
}
