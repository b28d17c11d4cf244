package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"oksimin/internal/models/db_models"
)

// In-memory repository fakes. Each carries a failWith error that, when
// set, makes every method fail the way a broken database would.

var errBoom = errors.New("connection refused")

type fakeCategoryRepo struct {
	categories []db_models.Category
	failWith   error
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]db_models.Category, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := append([]db_models.Category(nil), f.categories...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id uint) (*db_models.Category, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.categories {
		if f.categories[i].ID == id {
			return &f.categories[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Exists(ctx context.Context, id uint) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	for _, c := range f.categories {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakePlaceRepo struct {
	places   []db_models.Place
	failWith error
}

func (f *fakePlaceRepo) approved() []db_models.Place {
	var out []db_models.Place
	for _, p := range f.places {
		if p.Status == db_models.PlaceApproved {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (f *fakePlaceRepo) ListApproved(ctx context.Context) ([]db_models.Place, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.approved(), nil
}

func (f *fakePlaceRepo) GetApprovedByID(ctx context.Context, id uint) (*db_models.Place, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.places {
		if f.places[i].ID == id && f.places[i].Status == db_models.PlaceApproved {
			return &f.places[i], nil
		}
	}
	return nil, nil
}

func (f *fakePlaceRepo) ListApprovedByMunicipality(ctx context.Context, municipality string) ([]db_models.Place, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []db_models.Place
	for _, p := range f.approved() {
		if strings.EqualFold(p.Municipality, municipality) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlaceRepo) ListApprovedByCategory(ctx context.Context, categoryID uint) ([]db_models.Place, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []db_models.Place
	for _, p := range f.approved() {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlaceRepo) SearchApproved(ctx context.Context, term string) ([]db_models.Place, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	lower := strings.ToLower(term)
	matches := func(s *string) bool {
		return s != nil && strings.Contains(strings.ToLower(*s), lower)
	}
	var out []db_models.Place
	for _, p := range f.approved() {
		if strings.Contains(strings.ToLower(p.Name), lower) || matches(p.Description) || matches(p.Tags) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlaceRepo) CountApprovedByCategory(ctx context.Context, categoryID uint) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	var count int64
	for _, p := range f.approved() {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (f *fakePlaceRepo) GetByID(ctx context.Context, id uint) (*db_models.Place, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.places {
		if f.places[i].ID == id {
			return &f.places[i], nil
		}
	}
	return nil, nil
}

func (f *fakePlaceRepo) ListEmbedded(ctx context.Context) ([]db_models.Place, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []db_models.Place
	for _, p := range f.places {
		if len(p.Embedding) > 0 {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePlaceRepo) Count(ctx context.Context) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.places)), nil
}

func (f *fakePlaceRepo) Save(ctx context.Context, place *db_models.Place) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.places {
		if f.places[i].ID == place.ID {
			f.places[i] = *place
			return nil
		}
	}
	f.places = append(f.places, *place)
	return nil
}

type fakeSubmissionRepo struct {
	submissions []db_models.Submission
	nextID      uint
	failWith    error
}

func (f *fakeSubmissionRepo) Create(ctx context.Context, submission *db_models.Submission) (uint, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	f.nextID++
	submission.ID = f.nextID
	f.submissions = append(f.submissions, *submission)
	return submission.ID, nil
}

func (f *fakeSubmissionRepo) GetByIDWithRelations(ctx context.Context, id uint) (*db_models.Submission, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.submissions {
		if f.submissions[i].ID == id {
			return &f.submissions[i], nil
		}
	}
	return nil, nil
}

func (f *fakeSubmissionRepo) ListByStatus(ctx context.Context, status *db_models.SubmissionStatus) ([]db_models.Submission, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []db_models.Submission
	for _, s := range f.submissions {
		if status == nil || s.Status == *status {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeSubmissionRepo) CountByStatus(ctx context.Context, status db_models.SubmissionStatus) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	var count int64
	for _, s := range f.submissions {
		if s.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeSubmissionRepo) CountPendingByCategory(ctx context.Context, categoryID uint) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	var count int64
	for _, s := range f.submissions {
		if s.CategoryID == categoryID && s.Status == db_models.SubmissionPending {
			count++
		}
	}
	return count, nil
}

type fakeAuditRepo struct {
	entries  []db_models.AuditLog
	failWith error
}

func (f *fakeAuditRepo) Append(ctx context.Context, entry *db_models.AuditLog) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }
