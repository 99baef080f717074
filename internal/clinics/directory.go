package clinics

import (
	"strings"

	"afyabuddy/internal/models"
)

// Directory is a fixed set of clinics that can be searched by proximity
type Directory struct {
	clinics []models.Clinic
}

// NewDirectory creates a directory over the given clinics. With no clinics the
// built-in Nairobi table is used.
func NewDirectory(clinics []models.Clinic) *Directory {
	if len(clinics) == 0 {
		clinics = nairobiClinics
	}
	return &Directory{clinics: clinics}
}

// All returns a copy of every clinic in the directory
func (d *Directory) All() []models.Clinic {
	out := make([]models.Clinic, len(d.clinics))
	copy(out, d.clinics)
	return out
}

// Nearby ranks the directory around origin. Keywords mentioning "emergency"
// restrict the search to hospitals.
func (d *Directory) Nearby(origin models.Location, keyword string) []models.Clinic {
	candidates := d.clinics

	if strings.Contains(strings.ToLower(keyword), "emergency") {
		candidates = FilterByType(candidates, "hospital")
	}

	return Rank(origin, candidates)
}

// FilterByType keeps only clinics tagged with the given place type
func FilterByType(clinics []models.Clinic, placeType string) []models.Clinic {
	var filtered []models.Clinic
	for _, c := range clinics {
		if c.HasType(placeType) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

var nairobiClinics = []models.Clinic{
	{
		ID: "ChIJ1", Name: "Nairobi Hospital", Address: "Argwings Kodhek Rd, Nairobi",
		Phone: "+254-20-2845000", Types: []string{"hospital", "health", "establishment"},
		Rating: 4.5, OpenNow: true, Latitude: -1.3067, Longitude: 36.7906,
		Specializations: []string{"Emergency Medicine", "Surgery", "Internal Medicine"},
	},
	{
		ID: "ChIJ2", Name: "Kenyatta National Hospital", Address: "Hospital Rd, Nairobi",
		Phone: "+254-20-2726300", Types: []string{"hospital", "health", "establishment"},
		Rating: 4.2, OpenNow: true, Latitude: -1.3013, Longitude: 36.8073,
		Specializations: []string{"All Specialties", "Research", "Teaching"},
	},
	{
		ID: "ChIJ3", Name: "Aga Khan University Hospital", Address: "3rd Parklands Ave, Nairobi",
		Phone: "+254-20-3662000", Types: []string{"hospital", "health", "establishment"},
		Rating: 4.8, OpenNow: true, Latitude: -1.2635, Longitude: 36.8017,
		Specializations: []string{"Cardiology", "Oncology", "Neurology"},
	},
	{
		ID: "ChIJ4", Name: "MP Shah Hospital", Address: "Shivachi Rd, Nairobi",
		Phone: "+254-20-4285000", Types: []string{"hospital", "health", "establishment"},
		Rating: 4.3, OpenNow: true, Latitude: -1.2921, Longitude: 36.7856,
	},
	{
		ID: "ChIJ5", Name: "Gertrude's Children's Hospital", Address: "Muthaiga Rd, Nairobi",
		Phone: "+254-20-2712000", Types: []string{"hospital", "health", "establishment"},
		Rating: 4.6, OpenNow: true, Latitude: -1.2505, Longitude: 36.8126,
	},
	{
		ID: "ChIJ6", Name: "Avenue Healthcare", Address: "Ralph Bunche Rd, Nairobi",
		Phone: "+254-20-2720000", Types: []string{"doctor", "health", "establishment"},
		Rating: 4.4, OpenNow: true, Latitude: -1.2634, Longitude: 36.7908,
	},
	{
		ID: "ChIJ7", Name: "Karen Hospital", Address: "Karen Rd, Nairobi",
		Phone: "+254-20-6600000", Types: []string{"hospital", "health", "establishment"},
		Rating: 4.1, OpenNow: true, Latitude: -1.3197, Longitude: 36.7025,
	},
	{
		ID: "ChIJ8", Name: "Mater Hospital", Address: "Dunga Rd, Nairobi",
		Phone: "+254-20-2717000", Types: []string{"hospital", "health", "establishment"},
		Rating: 4.0, OpenNow: true, Latitude: -1.3108, Longitude: 36.7856,
	},
}
