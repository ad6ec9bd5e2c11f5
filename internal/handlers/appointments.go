package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cat-shelter-server/internal/models"
	"cat-shelter-server/internal/utils"
)

const datetimeLayout = "2006-01-02T15:04"

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	DB *gorm.DB
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB) *AppointmentHandler {
	return &AppointmentHandler{DB: db}
}

// AppointmentForm represents the form fields for creating an appointment.
// cat_ids and employee_ids link participants.
type AppointmentForm struct {
	Date        string   `form:"date" binding:"required"`
	Location    string   `form:"location"`
	Notes       string   `form:"notes"`
	CatIDs      []string `form:"cat_ids"`
	EmployeeIDs []string `form:"employee_ids"`
}

// appointmentProjection is the calendar-facing JSON shape.
type appointmentProjection struct {
	ID        string   `json:"id"`
	DateDB    string   `json:"date_db"`
	DateISO   string   `json:"date_iso"`
	Location  string   `json:"location,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Cats      []string `json:"cats"`
	Employees []string `json:"employees"`
}

func projectAppointment(a *models.Appointment) appointmentProjection {
	p := appointmentProjection{
		ID:        a.ID,
		DateDB:    a.Date.Format("2006-01-02 15:04:05"),
		DateISO:   a.Date.Format(time.RFC3339),
		Location:  a.Location,
		Notes:     a.Notes,
		Cats:      make([]string, 0, len(a.Cats)),
		Employees: make([]string, 0, len(a.Employees)),
	}
	for _, link := range a.Cats {
		p.Cats = append(p.Cats, link.Cat.Name)
	}
	for _, link := range a.Employees {
		p.Employees = append(p.Employees, link.Employee.Name)
	}
	return p
}

// parseAppointmentDate accepts the datetime-local form layout or RFC3339
// (the calendar widget sends the latter).
func parseAppointmentDate(value string) (time.Time, error) {
	if t, err := time.Parse(datetimeLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// ListAppointments handles fetching all appointments with their linked cat
// and employee names, as consumed by the calendar view.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	var appointments []models.Appointment
	err := h.DB.Preload("Cats.Cat").Preload("Employees.Employee").Order("date asc").Find(&appointments).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	items := make([]appointmentProjection, len(appointments))
	for i := range appointments {
		items[i] = projectAppointment(&appointments[i])
	}

	utils.Success(c, "Appointments fetched successfully", gin.H{
		"count": len(items),
		"items": items,
	})
}

// CreateAppointment handles creating an appointment and linking the given
// cats and employees. Unknown participant ids fail the whole request.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var form AppointmentForm
	if !utils.BindForm(c, &form) {
		return
	}

	date, err := parseAppointmentDate(form.Date)
	if err != nil {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DDTHH:MM")
		return
	}

	appointment := models.Appointment{
		Date:     date,
		Location: form.Location,
		Notes:    form.Notes,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&appointment).Error; err != nil {
			return err
		}
		return h.linkParticipants(tx, &appointment, form.CatIDs, form.EmployeeIDs)
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to create appointment: "+err.Error())
		return
	}

	h.respondWithAppointment(c, appointment.ID, true)
}

// GetAppointment handles fetching a single appointment.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	h.respondWithAppointment(c, c.Param("id"), false)
}

// UpdateAppointment handles updating an appointment from a form post. When
// participant lists are supplied they replace the existing links.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if dateStr := c.PostForm("date"); dateStr != "" {
		date, err := parseAppointmentDate(dateStr)
		if err != nil {
			utils.BadRequest(c, "Invalid date, expected YYYY-MM-DDTHH:MM")
			return
		}
		appointment.Date = date
	}
	if location := c.PostForm("location"); location != "" {
		appointment.Location = location
	}
	if notes := c.PostForm("notes"); notes != "" {
		appointment.Notes = notes
	}

	catIDs, replaceCats := c.GetPostFormArray("cat_ids")
	employeeIDs, replaceEmployees := c.GetPostFormArray("employee_ids")

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&appointment).Error; err != nil {
			return err
		}
		if replaceCats {
			if err := tx.Where("appointment_id = ?", appointment.ID).Delete(&models.AppointmentCat{}).Error; err != nil {
				return err
			}
		}
		if replaceEmployees {
			if err := tx.Where("appointment_id = ?", appointment.ID).Delete(&models.AppointmentEmployee{}).Error; err != nil {
				return err
			}
		}
		var newCats, newEmployees []string
		if replaceCats {
			newCats = catIDs
		}
		if replaceEmployees {
			newEmployees = employeeIDs
		}
		return h.linkParticipants(tx, &appointment, newCats, newEmployees)
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to update appointment: "+err.Error())
		return
	}

	h.respondWithAppointment(c, appointment.ID, false)
}

// RescheduleRequest represents the payload for drag-and-drop rescheduling
// from the calendar view.
type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
}

// RescheduleAppointment moves an appointment to a new date, keeping all
// participant links.
func (h *AppointmentHandler) RescheduleAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req RescheduleRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	date, err := parseAppointmentDate(req.Date)
	if err != nil {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DDTHH:MM or RFC3339")
		return
	}

	appointment.Date = date
	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to reschedule appointment: "+err.Error())
		return
	}

	h.respondWithAppointment(c, appointment.ID, false)
}

// DeleteAppointment removes an appointment and its participant links. The
// linked cats and employees are untouched.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("appointment_id = ?", appointment.ID).Delete(&models.AppointmentCat{}).Error; err != nil {
			return err
		}
		if err := tx.Where("appointment_id = ?", appointment.ID).Delete(&models.AppointmentEmployee{}).Error; err != nil {
			return err
		}
		return tx.Delete(&appointment).Error
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to delete appointment: "+err.Error())
		return
	}

	utils.Success(c, "Appointment deleted successfully", nil)
}

// linkParticipants creates join rows for the given cat and employee ids
// after verifying they exist.
func (h *AppointmentHandler) linkParticipants(tx *gorm.DB, appointment *models.Appointment, catIDs, employeeIDs []string) error {
	for _, catID := range catIDs {
		var cat models.Cat
		if err := tx.First(&cat, "id = ?", catID).Error; err != nil {
			return err
		}
		link := models.AppointmentCat{AppointmentID: appointment.ID, CatID: cat.ID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	for _, employeeID := range employeeIDs {
		var employee models.Employee
		if err := tx.First(&employee, "id = ?", employeeID).Error; err != nil {
			return err
		}
		link := models.AppointmentEmployee{AppointmentID: appointment.ID, EmployeeID: employee.ID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// respondWithAppointment reloads an appointment with its links and writes
// the calendar projection.
func (h *AppointmentHandler) respondWithAppointment(c *gin.Context, id string, created bool) {
	var appointment models.Appointment
	err := h.DB.Preload("Cats.Cat").Preload("Employees.Employee").First(&appointment, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if created {
		utils.Created(c, "Appointment created successfully", projectAppointment(&appointment))
		return
	}
	utils.Success(c, "Appointment fetched successfully", projectAppointment(&appointment))
}
