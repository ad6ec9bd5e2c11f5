package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cat-shelter-server/internal/models"
	"cat-shelter-server/internal/utils"
)

// VaccineHandler handles the vaccine type catalog and per-cat vaccination
// records. The two stay decoupled: records carry the vaccine name as text,
// the catalog is only a pick-list.
type VaccineHandler struct {
	DB *gorm.DB
}

// NewVaccineHandler creates a new VaccineHandler.
func NewVaccineHandler(db *gorm.DB) *VaccineHandler {
	return &VaccineHandler{DB: db}
}

// VaccineTypeForm represents the form fields for a catalog entry.
type VaccineTypeForm struct {
	Name string `form:"name" binding:"required"`
}

// ListVaccineTypes handles fetching the vaccine catalog.
func (h *VaccineHandler) ListVaccineTypes(c *gin.Context) {
	var types []models.VaccineType
	if err := h.DB.Order("name").Find(&types).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch vaccine types: "+err.Error())
		return
	}
	utils.Success(c, "Vaccine types fetched successfully", types)
}

// CreateVaccineType adds a catalog entry. Names carry a unique index, so a
// duplicate (same case) is rejected by the store.
func (h *VaccineHandler) CreateVaccineType(c *gin.Context) {
	var form VaccineTypeForm
	if !utils.BindForm(c, &form) {
		return
	}

	vaccineType := models.VaccineType{Name: form.Name}
	if err := h.DB.Create(&vaccineType).Error; err != nil {
		utils.BadRequest(c, "Failed to create vaccine type: "+err.Error())
		return
	}

	utils.Created(c, "Vaccine type created successfully", vaccineType)
}

// DeleteVaccineType removes a catalog entry. Existing records keep their
// vaccine name; only the pick-list shrinks.
func (h *VaccineHandler) DeleteVaccineType(c *gin.Context) {
	var vaccineType models.VaccineType
	if err := h.DB.First(&vaccineType, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Vaccine type not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&vaccineType).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete vaccine type: "+err.Error())
		return
	}

	utils.Success(c, "Vaccine type deleted successfully", nil)
}

// VaccineRecordForm represents the form fields for a vaccination record.
type VaccineRecordForm struct {
	VaccineName  string `form:"vaccine_name" binding:"required"`
	Date         string `form:"date" binding:"required"`
	Lot          string `form:"lot"`
	Veterinarian string `form:"veterinarian"`
	Reaction     string `form:"reaction"`
}

// ListVaccineRecords handles fetching a cat's vaccination records, most
// recent dose first.
func (h *VaccineHandler) ListVaccineRecords(c *gin.Context) {
	var cat models.Cat
	if err := h.DB.First(&cat, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Cat not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var records []models.VaccineRecord
	if err := h.DB.Where("cat_id = ?", cat.ID).Order("date desc").Find(&records).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch vaccination records: "+err.Error())
		return
	}

	utils.Success(c, "Vaccination records fetched successfully", records)
}

// CreateVaccineRecord records an administered dose for a cat.
func (h *VaccineHandler) CreateVaccineRecord(c *gin.Context) {
	var cat models.Cat
	if err := h.DB.First(&cat, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Cat not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var form VaccineRecordForm
	if !utils.BindForm(c, &form) {
		return
	}

	date, err := time.Parse(dateLayout, form.Date)
	if err != nil {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	record := models.VaccineRecord{
		CatID:        cat.ID,
		VaccineName:  form.VaccineName,
		Date:         date,
		Lot:          form.Lot,
		Veterinarian: form.Veterinarian,
		Reaction:     form.Reaction,
	}

	if err := h.DB.Create(&record).Error; err != nil {
		utils.InternalServerError(c, "Failed to create vaccination record: "+err.Error())
		return
	}

	utils.Created(c, "Vaccination record created successfully", record)
}

// UpdateVaccineRecord handles updating a vaccination record from a form
// post. Empty fields keep their current value.
func (h *VaccineHandler) UpdateVaccineRecord(c *gin.Context) {
	var record models.VaccineRecord
	if err := h.DB.First(&record, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Vaccination record not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if name := c.PostForm("vaccine_name"); name != "" {
		record.VaccineName = name
	}
	if dateStr := c.PostForm("date"); dateStr != "" {
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		record.Date = date
	}
	if lot := c.PostForm("lot"); lot != "" {
		record.Lot = lot
	}
	if vet := c.PostForm("veterinarian"); vet != "" {
		record.Veterinarian = vet
	}
	if reaction := c.PostForm("reaction"); reaction != "" {
		record.Reaction = reaction
	}

	if err := h.DB.Save(&record).Error; err != nil {
		utils.InternalServerError(c, "Failed to update vaccination record: "+err.Error())
		return
	}

	utils.Success(c, "Vaccination record updated successfully", record)
}

// DeleteVaccineRecord removes a vaccination record.
func (h *VaccineHandler) DeleteVaccineRecord(c *gin.Context) {
	var record models.VaccineRecord
	if err := h.DB.First(&record, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Vaccination record not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&record).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete vaccination record: "+err.Error())
		return
	}

	utils.Success(c, "Vaccination record deleted successfully", nil)
}
