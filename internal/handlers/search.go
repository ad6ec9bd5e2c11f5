package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cat-shelter-server/internal/models"
	"cat-shelter-server/internal/utils"
	"cat-shelter-server/internal/vaccine"
)

// SearchHandler filters the cat roster.
type SearchHandler struct {
	DB *gorm.DB
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(db *gorm.DB) *SearchHandler {
	return &SearchHandler{DB: db}
}

// SearchCats composes roster filters from query parameters (all ANDed):
//
//	q       - case-insensitive name substring
//	status  - status equality
//	vet     - case-insensitive substring over record veterinarians and
//	          appointment locations
//	missing - cats with no dose of the named vaccine in the trailing year;
//	          never-vaccinated cats count as missing
func (h *SearchHandler) SearchCats(c *gin.Context) {
	var cats []models.Cat
	err := h.DB.Preload("Vaccinations").Preload("Appointments.Appointment").Order("name").Find(&cats).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch cats: "+err.Error())
		return
	}

	query := strings.ToLower(c.Query("q"))
	status := c.Query("status")
	vet := strings.ToLower(c.Query("vet"))
	missing := c.Query("missing")
	today := time.Now()

	results := make([]catProjection, 0)
	for i := range cats {
		cat := &cats[i]
		if query != "" && !strings.Contains(strings.ToLower(cat.Name), query) {
			continue
		}
		if status != "" && string(cat.Status) != status {
			continue
		}
		if vet != "" && !matchesVetOrLocation(cat, vet) {
			continue
		}
		if missing != "" && !vaccine.MissingVaccine(*cat, missing, today) {
			continue
		}
		results = append(results, projectCat(cat))
	}

	utils.Success(c, "Search completed successfully", results)
}

// matchesVetOrLocation reports whether the lowercased needle appears in any
// of the cat's record veterinarians or appointment locations.
func matchesVetOrLocation(cat *models.Cat, needle string) bool {
	for _, record := range cat.Vaccinations {
		if strings.Contains(strings.ToLower(record.Veterinarian), needle) {
			return true
		}
	}
	for _, link := range cat.Appointments {
		if strings.Contains(strings.ToLower(link.Appointment.Location), needle) {
			return true
		}
	}
	return false
}
