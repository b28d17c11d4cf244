// Package validators holds the pure request validators. Each rule is
// evaluated independently so the caller receives every violation at once,
// in rule order.
package validators

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"oksimin/internal/models/request_models"
	"oksimin/pkg/utils"
)

// ValidateCreateSubmission checks a public submission request. It has no
// side effects; an empty result means the request is structurally valid.
// Category existence is a separate service-level check.
func ValidateCreateSubmission(req request_models.CreateSubmissionRequest) utils.ValidationErrors {
	var errs utils.ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, utils.FieldError{Field: "name", Message: "Name is required"})
	} else {
		if utf8.RuneCountInString(req.Name) > 200 {
			errs = append(errs, utils.FieldError{Field: "name", Message: "Name cannot exceed 200 characters"})
		}
		if !containsLetter(req.Name) {
			errs = append(errs, utils.FieldError{Field: "name", Message: "Name contains invalid characters"})
		}
	}

	if strings.TrimSpace(req.Municipality) == "" {
		errs = append(errs, utils.FieldError{Field: "municipality", Message: "Municipality is required"})
	} else {
		if utf8.RuneCountInString(req.Municipality) > 100 {
			errs = append(errs, utils.FieldError{Field: "municipality", Message: "Municipality cannot exceed 100 characters"})
		}
		if !utils.IsValidMunicipality(req.Municipality) {
			errs = append(errs, utils.FieldError{
				Field:   "municipality",
				Message: "Invalid municipality. Must be one of the 11 municipalities in Occidental Mindoro.",
			})
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

	if (req.Latitude != nil) != (req.Longitude != nil) {
		errs = append(errs, utils.FieldError{Field: "latitude", Message: "Both latitude and longitude must be provided together"})
	}

	if notBlank(req.Tags) && utf8.RuneCountInString(*req.Tags) > 500 {
		errs = append(errs, utils.FieldError{Field: "tags", Message: "Tags cannot exceed 500 characters"})
	}

	if notBlank(req.SubmitterEmail) {
		if !isValidEmail(*req.SubmitterEmail) {
			errs = append(errs, utils.FieldError{Field: "submitterEmail", Message: "Invalid email format"})
		}
		if utf8.RuneCountInString(*req.SubmitterEmail) > 100 {
			errs = append(errs, utils.FieldError{Field: "submitterEmail", Message: "Email cannot exceed 100 characters"})
		}
	}

	return errs
}

func notBlank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func isValidEmail(s string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	// Reject display-name forms like `Name <a@b.c>`; only the bare
	// address is acceptable.
	return err == nil && addr.Address == strings.TrimSpace(s)
}
