package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cat-shelter-server/internal/models"
	"cat-shelter-server/internal/utils"
)

// EmployeeHandler handles staff member requests.
type EmployeeHandler struct {
	DB *gorm.DB
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{DB: db}
}

// EmployeeForm represents the form fields for creating an employee. Email
// and password are optional; employees with both set can log in.
type EmployeeForm struct {
	Name     string `form:"name" binding:"required"`
	Role     string `form:"role"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

// employeeProjection keeps the password hash out of responses.
type employeeProjection struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
}

func projectEmployee(e *models.Employee) employeeProjection {
	return employeeProjection{ID: e.ID, Name: e.Name, Role: e.Role, Email: e.Email}
}

// ListEmployees handles fetching all employees ordered by name.
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	var employees []models.Employee
	if err := h.DB.Order("name").Find(&employees).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch employees: "+err.Error())
		return
	}

	projections := make([]employeeProjection, len(employees))
	for i := range employees {
		projections[i] = projectEmployee(&employees[i])
	}

	utils.Success(c, "Employees fetched successfully", projections)
}

// CreateEmployee handles creating a new employee.
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var form EmployeeForm
	if !utils.BindForm(c, &form) {
		return
	}

	employee := models.Employee{
		Name:  form.Name,
		Role:  form.Role,
		Email: form.Email,
	}
	if form.Password != "" {
		if err := employee.SetPassword(form.Password); err != nil {
			utils.InternalServerError(c, "Failed to hash password: "+err.Error())
			return
		}
	}

	if err := h.DB.Create(&employee).Error; err != nil {
		utils.InternalServerError(c, "Failed to create employee: "+err.Error())
		return
	}

	utils.Created(c, "Employee created successfully", projectEmployee(&employee))
}

// UpdateEmployee handles updating an employee from a form post.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var employee models.Employee
	if err := h.DB.First(&employee, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Employee not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if name := c.PostForm("name"); name != "" {
		employee.Name = name
	}
	if role := c.PostForm("role"); role != "" {
		employee.Role = role
	}
	if email := c.PostForm("email"); email != "" {
		employee.Email = email
	}
	if password := c.PostForm("password"); password != "" {
		if err := employee.SetPassword(password); err != nil {
			utils.InternalServerError(c, "Failed to hash password: "+err.Error())
			return
		}
	}

	if err := h.DB.Save(&employee).Error; err != nil {
		utils.InternalServerError(c, "Failed to update employee: "+err.Error())
		return
	}

	utils.Success(c, "Employee updated successfully", projectEmployee(&employee))
}

// DeleteEmployee removes an employee and their appointment links. The
// appointments themselves are kept.
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	var employee models.Employee
	if err := h.DB.First(&employee, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Employee not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", employee.ID).Delete(&models.AppointmentEmployee{}).Error; err != nil {
			return err
		}
		return tx.Delete(&employee).Error
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to delete employee: "+err.Error())
		return
	}

	utils.Success(c, "Employee deleted successfully", nil)
}
