package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cat-shelter-server/internal/config"
	"cat-shelter-server/internal/middleware"
	"cat-shelter-server/internal/models"
	"cat-shelter-server/internal/utils"
)

// AuthHandler handles staff login and session lookups.
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

// LoginRequest represents the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an employee with credentials and issues a signed
// session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var employee models.Employee
	if err := h.DB.Where("email = ?", req.Email).First(&employee).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Unauthorized(c, "Invalid email or password")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if !employee.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	token, err := utils.GenerateSessionToken(employee.ID, employee.Name, h.Cfg.SessionSecret)
	if err != nil {
		utils.InternalServerError(c, "Failed to sign session token: "+err.Error())
		return
	}

	utils.Success(c, "Login successful", gin.H{
		"token":    token,
		"employee": projectEmployee(&employee),
	})
}

// GetProfile returns the logged-in employee.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	employeeID, exists := middleware.GetEmployeeIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Employee ID not found in token")
		return
	}

	var employee models.Employee
	if err := h.DB.First(&employee, "id = ?", employeeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Employee not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Profile fetched successfully", projectEmployee(&employee))
}
