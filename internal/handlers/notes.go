package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cat-shelter-server/internal/config"
	"cat-shelter-server/internal/models"
	"cat-shelter-server/internal/utils"
)

// NoteHandler handles caretaker notes attached to cats.
type NoteHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(db *gorm.DB, cfg *config.Config) *NoteHandler {
	return &NoteHandler{DB: db, Cfg: cfg}
}

// NoteForm represents the form fields for creating a note.
type NoteForm struct {
	Author  string `form:"author"`
	Content string `form:"content" binding:"required"`
}

// ListNotes handles fetching a cat's notes, newest first.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	var cat models.Cat
	if err := h.DB.First(&cat, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Cat not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var notes []models.Note
	if err := h.DB.Where("cat_id = ?", cat.ID).Order("created_at desc").Find(&notes).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch notes: "+err.Error())
		return
	}

	utils.Success(c, "Notes fetched successfully", notes)
}

// CreateNote handles adding a note to a cat, with an optional attachment
// (images or PDF).
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var cat models.Cat
	if err := h.DB.First(&cat, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Cat not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var form NoteForm
	if !utils.BindForm(c, &form) {
		return
	}

	note := models.Note{
		CatID:   cat.ID,
		Author:  form.Author,
		Content: form.Content,
	}

	if file, err := c.FormFile("attachment"); err == nil {
		storedName, err := saveUpload(c, file, h.Cfg.UploadDir, attachmentExtensions)
		if err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		note.AttachmentFilename = storedName
	}

	if err := h.DB.Create(&note).Error; err != nil {
		utils.InternalServerError(c, "Failed to create note: "+err.Error())
		return
	}

	utils.Created(c, "Note created successfully", note)
}

// DeleteNote removes a note. Its attachment file is removed best-effort;
// a missing file on disk does not block the deletion.
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	var note models.Note
	if err := h.DB.First(&note, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Note not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&note).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete note: "+err.Error())
		return
	}

	removeUpload(h.Cfg.UploadDir, note.AttachmentFilename)

	utils.Success(c, "Note deleted successfully", nil)
}
