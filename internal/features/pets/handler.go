// ================== internal/features/pets/handler.go ==================
package pets

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/KKaanaakk/pet-reminder/internal/pkg/cloudinary"
	"github.com/KKaanaakk/pet-reminder/internal/pkg/response"
	apperrors "github.com/KKaanaakk/pet-reminder/pkg/errors"
)

type Handler struct {
	repo       *Repository
	cloudinary *cloudinary.Service
}

func NewHandler(repo *Repository, cld *cloudinary.Service) *Handler {
	return &Handler{repo: repo, cloudinary: cld}
}

// List godoc
// @Summary List pets
// @Description Get all pets; an empty collection is seeded with defaults
// @Tags pets
// @Produce json
// @Success 200 {object} response.APIResponse{data=[]Pet}
// @Failure 503 {object} response.APIResponse
// @Router /pets [get]
func (h *Handler) List(c *gin.Context) {
	result, err := h.repo.List(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrUnavailable) {
			response.StoreUnavailable(c, "Failed to fetch pets")
			return
		}
		response.DatabaseError(c, "Failed to fetch pets")
		return
	}

	response.Success(c, result)
}

// Create godoc
// @Summary Create a pet
// @Description Create a new pet profile
// @Tags pets
// @Accept json
// @Produce json
// @Param request body CreatePetRequest true "Pet creation data"
// @Success 201 {object} response.APIResponse{data=Pet}
// @Failure 400 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /pets [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreatePet(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	pet := &Pet{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		Avatar:  req.Avatar,
	}

	if err := h.repo.Insert(c.Request.Context(), pet); err != nil {
		response.DatabaseError(c, "Failed to create pet")
		return
	}

	response.Created(c, pet)
}

// Get godoc
// @Summary Get a pet by ID
// @Tags pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} response.APIResponse{data=Pet}
// @Failure 404 {object} response.APIResponse
// @Router /pets/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	pet, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.DatabaseError(c, "Failed to fetch pet")
		return
	}
	if pet == nil {
		response.NotFound(c, "Pet not found", "NOT_FOUND")
		return
	}

	response.Success(c, pet)
}

// Update godoc
// @Summary Update a pet
// @Description Merge the given fields into an existing pet profile
// @Tags pets
// @Accept json
// @Produce json
// @Param id path string true "Pet ID"
// @Param request body UpdatePetRequest true "Pet update data"
// @Success 200 {object} response.APIResponse{data=Pet}
// @Failure 404 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /pets/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdatePet(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	fields := bson.M{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Species != "" {
		fields["species"] = req.Species
	}
	if req.Breed != "" {
		fields["breed"] = req.Breed
	}
	if req.Avatar != "" {
		fields["avatar"] = req.Avatar
	}

	if len(fields) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	pet, err := h.repo.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Pet not found", "NOT_FOUND")
			return
		}
		response.DatabaseError(c, "Failed to update pet")
		return
	}

	response.Success(c, pet)
}

// Delete godoc
// @Summary Delete a pet
// @Tags pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /pets/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Pet not found", "NOT_FOUND")
			return
		}
		response.DatabaseError(c, "Failed to delete pet")
		return
	}

	response.Success(c, map[string]string{"message": "Pet deleted successfully"})
}

// UploadAvatar godoc
// @Summary Upload a pet avatar
// @Description Upload an avatar image; store the returned URL in the pet's avatar field
// @Tags pets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Avatar image"
// @Success 200 {object} response.APIResponse{data=cloudinary.UploadResult}
// @Failure 400 {object} response.APIResponse
// @Failure 503 {object} response.APIResponse
// @Router /pets/avatar [post]
func (h *Handler) UploadAvatar(c *gin.Context) {
	if h.cloudinary == nil {
		response.ServiceUnavailable(c, "Avatar uploads are not configured", "UPLOADS_DISABLED")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required", "MISSING_FILE")
		return
	}
	defer file.Close()

	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILE")
		return
	}

	result, err := h.cloudinary.UploadImage(c.Request.Context(), file, header.Filename)
	if err != nil {
		response.InternalServerError(c, "Failed to upload avatar", "UPLOAD_FAILED")
		return
	}

	response.Success(c, result)
}
