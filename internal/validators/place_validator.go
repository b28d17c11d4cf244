package validators

import (
	"strings"
	"unicode/utf8"

	"oksimin/internal/models/request_models"
	"oksimin/pkg/utils"
)

// ValidateUpdatePlace checks an administrative place update. Same field
// constraints as the submission validator minus the letter and email
// rules, plus a status value check.
func ValidateUpdatePlace(req request_models.UpdatePlaceRequest) utils.ValidationErrors {
	var errs utils.ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, utils.FieldError{Field: "name", Message: "Name is required"})
	} else if utf8.RuneCountInString(req.Name) > 200 {
		errs = append(errs, utils.FieldError{Field: "name", Message: "Name cannot exceed 200 characters"})
	}

	if strings.TrimSpace(req.Municipality) == "" {
		errs = append(errs, utils.FieldError{Field: "municipality", Message: "Municipality is required"})
	} else {
		if utf8.RuneCountInString(req.Municipality) > 100 {
			errs = append(errs, utils.FieldError{Field: "municipality", Message: "Municipality cannot exceed 100 characters"})
		}
		if !utils.IsValidMunicipality(req.Municipality) {
			errs = append(errs, utils.FieldError{Field: "municipality", Message: "Invalid municipality"})
		}
	}

	if req.CategoryID <= 0 {
		errs = append(errs, utils.FieldError{Field: "categoryId", Message: "Valid category is required"})
	}

	if notBlank(req.Address) && utf8.RuneCountInString(*req.Address) > 300 {
		errs = append(errs, utils.FieldError{Field: "address", Message: "Address cannot exceed 300 characters"})
	}

	if notBlank(req.Description) && utf8.RuneCountInString(*req.Description) > 2000 {
		errs = append(errs, utils.FieldError{Field: "description", Message: "Description cannot exceed 2000 characters"})
	}

	if notBlank(req.LandmarkDirections) && utf8.RuneCountInString(*req.LandmarkDirections) > 1000 {
		errs = append(errs, utils.FieldError{Field: "landmarkDirections", Message: "Landmark directions cannot exceed 1000 characters"})
	}

	if req.Latitude != nil && (*req.Latitude < -90 || *req.Latitude > 90) {
		errs = append(errs, utils.FieldError{Field: "latitude", Message: "Latitude must be between -90 and 90"})
	}

	if req.Longitude != nil && (*req.Longitude < -180 || *req.Longitude > 180) {
		errs = append(errs, utils.FieldError{Field: "longitude", Message: "Longitude must be between -180 and 180"})
	}

	if notBlank(req.Tags) && utf8.RuneCountInString(*req.Tags) > 500 {
		errs = append(errs, utils.FieldError{Field: "tags", Message: "Tags cannot exceed 500 characters"})
	}

	if req.Status != "" && req.Status != "Approved" && req.Status != "Archived" {
		errs = append(errs, utils.FieldError{Field: "status", Message: "Status must be Approved or Archived"})
	}

	return errs
}
