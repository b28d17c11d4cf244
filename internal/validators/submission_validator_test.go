package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oksimin/internal/models/request_models"
	"oksimin/pkg/utils"
)

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }

func validRequest() request_models.CreateSubmissionRequest {
	return request_models.CreateSubmissionRequest{
		Name:         "Blue Lagoon",
		Municipality: "Sablayan",
		CategoryID:   3,
		Latitude:     floatPtr(12.8),
		Longitude:    floatPtr(120.77),
	}
}

func fieldsOf(errs utils.ValidationErrors) []string {
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field)
	}
	return fields
}

func TestValidateCreateSubmissionValid(t *testing.T) {
	assert.Empty(t, ValidateCreateSubmission(validRequest()))

	full := validRequest()
	full.Address = strPtr("Brgy. Buenavista")
	full.Description = strPtr("A quiet lagoon near Apo Reef.")
	full.LandmarkDirections = strPtr("Past the pier, second road on the left")
	full.Tags = strPtr("lagoon,swimming,nature")
	full.SubmitterEmail = strPtr("visitor@example.com")
	assert.Empty(t, ValidateCreateSubmission(full))
}

func TestValidateCreateSubmissionName(t *testing.T) {
	req := validRequest()
	req.Name = ""
	errs := ValidateCreateSubmission(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "Name is required", errs[0].Message)

	req.Name = strings.Repeat("a", 201)
	errs = ValidateCreateSubmission(req)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "200")

	req.Name = "12345"
	errs = ValidateCreateSubmission(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "Name contains invalid characters", errs[0].Message)

	// Limits count characters, not bytes: 200 two-byte runes are fine.
	req.Name = strings.Repeat("ñ", 200)
	assert.Empty(t, ValidateCreateSubmission(req))

	req.Name = strings.Repeat("ñ", 201)
	errs = ValidateCreateSubmission(req)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "200")
}

func TestValidateCreateSubmissionMunicipality(t *testing.T) {
	req := validRequest()
	req.Municipality = "Atlantis"
	errs := ValidateCreateSubmission(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "municipality", errs[0].Field)
	assert.Contains(t, errs[0].Message, "11 municipalities")

	// Membership is case-insensitive.
	req.Municipality = "sablayan"
	assert.Empty(t, ValidateCreateSubmission(req))
	req.Municipality = "SAN JOSE"
	assert.Empty(t, ValidateCreateSubmission(req))
}

func TestValidateCreateSubmissionCategoryID(t *testing.T) {
	req := validRequest()
	req.CategoryID = 0
	errs := ValidateCreateSubmission(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "categoryId", errs[0].Field)

	req.CategoryID = -5
	assert.Len(t, ValidateCreateSubmission(req), 1)
}

func TestValidateCreateSubmissionCoordinates(t *testing.T) {
	req := validRequest()
	req.Latitude = floatPtr(91)
	errs := ValidateCreateSubmission(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "latitude", errs[0].Field)

	req = validRequest()
	req.Longitude = floatPtr(-180.5)
	errs = ValidateCreateSubmission(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "longitude", errs[0].Field)

	// Latitude without longitude violates the pairing rule.
	req = validRequest()
	req.Longitude = nil
	errs = ValidateCreateSubmission(req)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "together")

	// Neither coordinate is fine.
	req = validRequest()
	req.Latitude = nil
	req.Longitude = nil
	assert.Empty(t, ValidateCreateSubmission(req))
}

func TestValidateCreateSubmissionOptionalLengths(t *testing.T) {
	req := validRequest()
	req.Address = strPtr(strings.Repeat("a", 301))
	req.Description = strPtr(strings.Repeat("b", 2001))
	req.LandmarkDirections = strPtr(strings.Repeat("c", 1001))
	req.Tags = strPtr(strings.Repeat("d", 501))

	errs := ValidateCreateSubmission(req)
	assert.Equal(t, []string{"address", "description", "landmarkDirections", "tags"}, fieldsOf(errs))

	// Blank optionals are skipped entirely.
	req = validRequest()
	req.Address = strPtr("   ")
	req.Tags = strPtr("")
	assert.Empty(t, ValidateCreateSubmission(req))
}

func TestValidateCreateSubmissionEmail(t *testing.T) {
	req := validRequest()
	req.SubmitterEmail = strPtr("not-an-email")
	errs := ValidateCreateSubmission(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "submitterEmail", errs[0].Field)

	req.SubmitterEmail = strPtr(strings.Repeat("a", 95) + "@example.com")
	errs = ValidateCreateSubmission(req)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "100")

	req.SubmitterEmail = strPtr("someone@example.com")
	assert.Empty(t, ValidateCreateSubmission(req))
}

func TestValidateCreateSubmissionCollectsAllViolations(t *testing.T) {
	req := request_models.CreateSubmissionRequest{
		Name:         "",
		Municipality: "Atlantis",
		CategoryID:   0,
		Latitude:     floatPtr(100),
	}
	errs := ValidateCreateSubmission(req)
	// name missing, bad municipality, bad category, latitude range,
	// unpaired latitude.
	assert.Equal(t, []string{"name", "municipality", "categoryId", "latitude", "latitude"}, fieldsOf(errs))
}

func TestValidateUpdatePlace(t *testing.T) {
	req := request_models.UpdatePlaceRequest{
		Name:         "Apo Reef View Deck",
		Municipality: "Sablayan",
		CategoryID:   3,
		Status:       "Approved",
	}
	assert.Empty(t, ValidateUpdatePlace(req))

	req.Status = "Pending"
	errs := ValidateUpdatePlace(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "status", errs[0].Field)

	// Digit-only names are allowed on update, unlike intake.
	req.Status = "Archived"
	req.Name = "12345"
	assert.Empty(t, ValidateUpdatePlace(req))
}
