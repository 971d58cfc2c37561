// ================== internal/features/reminders/handler.go ==================
package reminders

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KKaanaakk/pet-reminder/internal/pkg/response"
	apperrors "github.com/KKaanaakk/pet-reminder/pkg/errors"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func queryFromRequest(c *gin.Context) Query {
	return Query{
		PetID:    c.Query("petId"),
		Category: c.Query("category"),
		Date:     c.Query("date"),
	}
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		response.NotFound(c, "Reminder not found", "NOT_FOUND")
	case errors.Is(err, apperrors.ErrValidation):
		response.ValidationFailed(c, err.Error())
	case errors.Is(err, apperrors.ErrUnavailable):
		response.StoreUnavailable(c, fallback)
	default:
		response.DatabaseError(c, fallback)
	}
}

// Create godoc
// @Summary Create a reminder
// @Description Create a new reminder; an unknown petId degrades to the "Unknown Pet" display name
// @Tags reminders
// @Accept json
// @Produce json
// @Param request body CreateReminderRequest true "Reminder creation data"
// @Success 201 {object} response.APIResponse{data=Reminder}
// @Failure 400 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Failure 500 {object} response.APIResponse
// @Router /reminders [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateReminder(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	reminder, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "Failed to create reminder")
		return
	}

	response.Created(c, reminder)
}

// List godoc
// @Summary List reminders
// @Description List reminders filtered by pet, category, and active date, ordered by time ascending. petId=all and category=all mean no filter.
// @Tags reminders
// @Produce json
// @Param petId query string false "Pet ID filter (all = no filter)"
// @Param category query string false "Category filter (all = no filter)" Enums(all, General, Lifestyle, Health)
// @Param date query string false "Only reminders active on this YYYY-MM-DD date"
// @Success 200 {object} response.APIResponse{data=[]Reminder}
// @Failure 503 {object} response.APIResponse
// @Router /reminders [get]
func (h *Handler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), queryFromRequest(c))
	if err != nil {
		h.writeError(c, err, "Failed to fetch reminders")
		return
	}

	response.Success(c, result)
}

// ListGrouped godoc
// @Summary List reminders grouped by time slot
// @Description Same filters as the flat list, bucketed into morning/afternoon/evening/night. All four keys are always present.
// @Tags reminders
// @Produce json
// @Param petId query string false "Pet ID filter (all = no filter)"
// @Param category query string false "Category filter (all = no filter)" Enums(all, General, Lifestyle, Health)
// @Param date query string false "Only reminders active on this YYYY-MM-DD date"
// @Success 200 {object} response.APIResponse{data=map[string][]Reminder}
// @Failure 503 {object} response.APIResponse
// @Router /reminders/grouped [get]
func (h *Handler) ListGrouped(c *gin.Context) {
	grouped, err := h.service.ListGrouped(c.Request.Context(), queryFromRequest(c))
	if err != nil {
		h.writeError(c, err, "Failed to fetch reminders")
		return
	}

	response.Success(c, grouped)
}

// Get godoc
// @Summary Get a reminder by ID
// @Tags reminders
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} response.APIResponse{data=Reminder}
// @Failure 404 {object} response.APIResponse
// @Router /reminders/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	reminder, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to fetch reminder")
		return
	}

	response.Success(c, reminder)
}

// Update godoc
// @Summary Update a reminder
// @Description Merge the given fields into an existing reminder. A patched petId re-resolves the pet name; a patched time re-derives the slot.
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "Reminder ID"
// @Param request body UpdateReminderRequest true "Reminder update data"
// @Success 200 {object} response.APIResponse{data=Reminder}
// @Failure 404 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /reminders/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdateReminder(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	reminder, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err, "Failed to update reminder")
		return
	}

	response.Success(c, reminder)
}

// Toggle godoc
// @Summary Toggle a reminder's completion status
// @Description Flip pending/completed; completedAt is stamped on completion and cleared on the way back
// @Tags reminders
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} response.APIResponse{data=Reminder}
// @Failure 404 {object} response.APIResponse
// @Router /reminders/{id}/toggle [put]
func (h *Handler) Toggle(c *gin.Context) {
	reminder, err := h.service.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to toggle reminder")
		return
	}

	response.Success(c, reminder)
}

// Delete godoc
// @Summary Delete a reminder
// @Tags reminders
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /reminders/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "Failed to delete reminder")
		return
	}

	response.Success(c, map[string]string{"message": "Reminder deleted successfully"})
}
