package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cat-shelter-server/internal/config"
	"cat-shelter-server/internal/models"
	"cat-shelter-server/internal/utils"
)

const dateLayout = "2006-01-02"

// CatHandler handles cat related requests.
type CatHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewCatHandler creates a new CatHandler.
func NewCatHandler(db *gorm.DB, cfg *config.Config) *CatHandler {
	return &CatHandler{DB: db, Cfg: cfg}
}

// CatForm represents the form fields for creating or updating a cat.
type CatForm struct {
	Name      string `form:"name" binding:"required"`
	Status    string `form:"status"`
	Birthdate string `form:"birthdate"`
}

// catProjection is the JSON shape the cat list and detail endpoints return.
type catProjection struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	Birthdate *string `json:"birthdate"`
	Photo     string  `json:"photo,omitempty"`
	Age       string  `json:"age,omitempty"`
}

func projectCat(cat *models.Cat) catProjection {
	p := catProjection{
		ID:     cat.ID,
		Name:   cat.Name,
		Status: string(cat.Status),
		Photo:  cat.PhotoFilename,
		Age:    cat.AgeString(time.Now()),
	}
	if cat.Birthdate != nil {
		iso := cat.Birthdate.Format(dateLayout)
		p.Birthdate = &iso
	}
	return p
}

// ListCats handles fetching all cats ordered by name.
func (h *CatHandler) ListCats(c *gin.Context) {
	var cats []models.Cat
	if err := h.DB.Order("name").Find(&cats).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch cats: "+err.Error())
		return
	}

	projections := make([]catProjection, len(cats))
	for i := range cats {
		projections[i] = projectCat(&cats[i])
	}

	utils.Success(c, "Cats fetched successfully", projections)
}

// CreateCat handles creating a new cat from a multipart form, with an
// optional photo upload.
func (h *CatHandler) CreateCat(c *gin.Context) {
	var form CatForm
	if !utils.BindForm(c, &form) {
		return
	}

	var birthdate *time.Time
	if form.Birthdate != "" {
		parsed, err := time.Parse(dateLayout, form.Birthdate)
		if err != nil {
			utils.BadRequest(c, "Invalid birthdate, expected YYYY-MM-DD")
			return
		}
		birthdate = &parsed
	}

	cat := models.Cat{
		Name:      form.Name,
		Status:    models.CatStatus(form.Status),
		Birthdate: birthdate,
	}
	if cat.Status == "" {
		cat.Status = models.StatusNormal
	}

	if photo, err := c.FormFile("photo"); err == nil {
		storedName, err := saveUpload(c, photo, h.Cfg.UploadDir, photoExtensions)
		if err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		cat.PhotoFilename = storedName
	}

	if err := h.DB.Create(&cat).Error; err != nil {
		utils.InternalServerError(c, "Failed to create cat: "+err.Error())
		return
	}

	utils.Created(c, "Cat created successfully", projectCat(&cat))
}

// GetCat handles fetching a single cat with its vaccination records and notes.
func (h *CatHandler) GetCat(c *gin.Context) {
	var cat models.Cat
	err := h.DB.Preload("Vaccinations", func(db *gorm.DB) *gorm.DB {
		return db.Order("date desc")
	}).Preload("Notes", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at desc")
	}).First(&cat, "id = ?", c.Param("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Cat not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Cat fetched successfully", cat)
}

// UpdateCat handles updating a cat from a form post. Empty fields keep
// their current value; a new photo replaces the old file.
func (h *CatHandler) UpdateCat(c *gin.Context) {
	var cat models.Cat
	if err := h.DB.First(&cat, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Cat not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if name := c.PostForm("name"); name != "" {
		cat.Name = name
	}
	if status := c.PostForm("status"); status != "" {
		cat.Status = models.CatStatus(status)
	}
	if birthdate := c.PostForm("birthdate"); birthdate != "" {
		parsed, err := time.Parse(dateLayout, birthdate)
		if err != nil {
			utils.BadRequest(c, "Invalid birthdate, expected YYYY-MM-DD")
			return
		}
		cat.Birthdate = &parsed
	}

	if photo, err := c.FormFile("photo"); err == nil {
		storedName, err := saveUpload(c, photo, h.Cfg.UploadDir, photoExtensions)
		if err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		removeUpload(h.Cfg.UploadDir, cat.PhotoFilename)
		cat.PhotoFilename = storedName
	}

	if err := h.DB.Save(&cat).Error; err != nil {
		utils.InternalServerError(c, "Failed to update cat: "+err.Error())
		return
	}

	utils.Success(c, "Cat updated successfully", projectCat(&cat))
}

// DeleteCat removes a cat together with its notes, vaccination records and
// appointment links. Appointments themselves survive; only the cat's
// participation disappears.
func (h *CatHandler) DeleteCat(c *gin.Context) {
	var cat models.Cat
	if err := h.DB.Preload("Notes").First(&cat, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Cat not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cat_id = ?", cat.ID).Delete(&models.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cat_id = ?", cat.ID).Delete(&models.VaccineRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cat_id = ?", cat.ID).Delete(&models.AppointmentCat{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cat).Error
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to delete cat: "+err.Error())
		return
	}

	// Best-effort cleanup of files owned by the deleted records.
	removeUpload(h.Cfg.UploadDir, cat.PhotoFilename)
	for _, note := range cat.Notes {
		removeUpload(h.Cfg.UploadDir, note.AttachmentFilename)
	}

	utils.Success(c, "Cat deleted successfully", nil)
}
