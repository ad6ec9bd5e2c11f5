package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cat-shelter-server/internal/config"
	"cat-shelter-server/internal/models"
	"cat-shelter-server/internal/vaccine"
)

// PageHandler serves the server-rendered pages. Everything interactive on
// them talks to the JSON API.
type PageHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(db *gorm.DB, cfg *config.Config) *PageHandler {
	return &PageHandler{DB: db, Cfg: cfg}
}

// Index renders the roster page with current vaccination alerts.
func (h *PageHandler) Index(c *gin.Context) {
	var cats []models.Cat
	if err := h.DB.Preload("Vaccinations").Order("name").Find(&cats).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch cats: %v", err)
		return
	}

	overdue, dueSoon := vaccine.Evaluate(cats, time.Now(), h.Cfg.AlertHorizonDays)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Cats":    cats,
		"Overdue": overdue,
		"DueSoon": dueSoon,
	})
}

// Dashboard renders the counts page.
func (h *PageHandler) Dashboard(c *gin.Context) {
	var totalCats, totalAppointments, totalEmployees, totalVaccines int64
	h.DB.Model(&models.Cat{}).Count(&totalCats)
	h.DB.Model(&models.Appointment{}).Count(&totalAppointments)
	h.DB.Model(&models.Employee{}).Count(&totalEmployees)
	h.DB.Model(&models.VaccineType{}).Count(&totalVaccines)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"TotalCats":         totalCats,
		"TotalAppointments": totalAppointments,
		"TotalEmployees":    totalEmployees,
		"TotalVaccines":     totalVaccines,
	})
}

// Calendar renders the calendar page; it loads its events from the
// appointments API.
func (h *PageHandler) Calendar(c *gin.Context) {
	c.HTML(http.StatusOK, "calendar.html", nil)
}
