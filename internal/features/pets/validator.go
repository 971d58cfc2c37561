package pets

import (
	"errors"
	"strings"

	"github.com/KKaanaakk/pet-reminder/internal/pkg/validator"
)

// ValidateCreatePet validates pet creation data
func ValidateCreatePet(req *CreatePetRequest) error {
	if !validator.IsValidName(req.Name) {
		return errors.New("pet name is required and may only contain letters, numbers, spaces, and common punctuation")
	}
	return nil
}

// ValidateUpdatePet validates the fields present in a pet update
func ValidateUpdatePet(req *UpdatePetRequest) error {
	if strings.TrimSpace(req.Name) != "" && !validator.IsValidName(req.Name) {
		return errors.New("pet name may only contain letters, numbers, spaces, and common punctuation")
	}
	return nil
}
