package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cat-shelter-server/internal/config"
	"cat-shelter-server/internal/models"
	"cat-shelter-server/internal/utils"
	"cat-shelter-server/internal/vaccine"
)

// DashboardHandler serves entity counts and vaccination alerts.
type DashboardHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(db *gorm.DB, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{DB: db, Cfg: cfg}
}

// loadRoster fetches the full cat roster with vaccination records, the
// snapshot the evaluator runs over. Alerts are recomputed on every request.
func (h *DashboardHandler) loadRoster() ([]models.Cat, error) {
	var cats []models.Cat
	err := h.DB.Preload("Vaccinations").Order("name").Find(&cats).Error
	return cats, err
}

// horizonDays reads the horizon query parameter, falling back to the
// configured default.
func (h *DashboardHandler) horizonDays(c *gin.Context) int {
	if raw := c.Query("horizon"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return parsed
		}
	}
	return h.Cfg.AlertHorizonDays
}

// GetAlerts returns the overdue and due-soon vaccination alerts.
func (h *DashboardHandler) GetAlerts(c *gin.Context) {
	cats, err := h.loadRoster()
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch cats: "+err.Error())
		return
	}

	overdue, dueSoon := vaccine.Evaluate(cats, time.Now(), h.horizonDays(c))

	utils.Success(c, "Alerts computed successfully", gin.H{
		"overdue": overdue,
		"dueSoon": dueSoon,
	})
}

// GetDashboard returns the entity counts plus the alert lists.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	counts := gin.H{}
	for name, model := range map[string]interface{}{
		"cats":         &models.Cat{},
		"employees":    &models.Employee{},
		"appointments": &models.Appointment{},
		"vaccineTypes": &models.VaccineType{},
	} {
		var count int64
		if err := h.DB.Model(model).Count(&count).Error; err != nil {
			utils.InternalServerError(c, "Failed to count "+name+": "+err.Error())
			return
		}
		counts[name] = count
	}

	cats, err := h.loadRoster()
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch cats: "+err.Error())
		return
	}
	overdue, dueSoon := vaccine.Evaluate(cats, time.Now(), h.horizonDays(c))

	utils.Success(c, "Dashboard fetched successfully", gin.H{
		"counts":  counts,
		"overdue": overdue,
		"dueSoon": dueSoon,
	})
}
