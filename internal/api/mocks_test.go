package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/endorsa/endorsa-api/internal/api/shared"
	"github.com/endorsa/endorsa-api/internal/domain"
	"github.com/endorsa/endorsa-api/internal/platform/logger"
	"github.com/endorsa/endorsa-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// MockProfileService is a mock implementation of service.ProfileService for testing
type MockProfileService struct {
	ListProfilesFn      func(ctx context.Context) ([]*domain.Profile, error)
	CreateProfileFn     func(ctx context.Context, profile *domain.Profile) error
	GetProfileFn        func(ctx context.Context, id int64) (*service.ProfileDetail, error)
	UpdateProfileFn     func(ctx context.Context, id int64, patch domain.ProfilePatch) (*domain.Profile, error)
	DeleteProfileFn     func(ctx context.Context, id int64) (*domain.Profile, error)
	DeleteAllProfilesFn func(ctx context.Context) (int64, error)
}

func (m *MockProfileService) ListProfiles(ctx context.Context) ([]*domain.Profile, error) {
	return m.ListProfilesFn(ctx)
}

func (m *MockProfileService) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	return m.CreateProfileFn(ctx, profile)
}

func (m *MockProfileService) GetProfile(ctx context.Context, id int64) (*service.ProfileDetail, error) {
	return m.GetProfileFn(ctx, id)
}

func (m *MockProfileService) UpdateProfile(
	ctx context.Context,
	id int64,
	patch domain.ProfilePatch,
) (*domain.Profile, error) {
	return m.UpdateProfileFn(ctx, id, patch)
}

func (m *MockProfileService) DeleteProfile(ctx context.Context, id int64) (*domain.Profile, error) {
	return m.DeleteProfileFn(ctx, id)
}

func (m *MockProfileService) DeleteAllProfiles(ctx context.Context) (int64, error) {
	return m.DeleteAllProfilesFn(ctx)
}

// MockSkillService is a mock implementation of service.SkillService for testing
type MockSkillService struct {
	ListSkillsFn      func(ctx context.Context) ([]*domain.Skill, error)
	CreateSkillFn     func(ctx context.Context, skill *domain.Skill) error
	GetSkillFn        func(ctx context.Context, id int64) (*service.SkillDetail, error)
	UpdateSkillFn     func(ctx context.Context, id int64, patch domain.SkillPatch) (*domain.Skill, error)
	DeleteSkillFn     func(ctx context.Context, id int64) (*domain.Skill, error)
	DeleteAllSkillsFn func(ctx context.Context) (int64, error)
}

func (m *MockSkillService) ListSkills(ctx context.Context) ([]*domain.Skill, error) {
	return m.ListSkillsFn(ctx)
}

func (m *MockSkillService) CreateSkill(ctx context.Context, skill *domain.Skill) error {
	return m.CreateSkillFn(ctx, skill)
}

func (m *MockSkillService) GetSkill(ctx context.Context, id int64) (*service.SkillDetail, error) {
	return m.GetSkillFn(ctx, id)
}

func (m *MockSkillService) UpdateSkill(ctx context.Context, id int64, patch domain.SkillPatch) (*domain.Skill, error) {
	return m.UpdateSkillFn(ctx, id, patch)
}

func (m *MockSkillService) DeleteSkill(ctx context.Context, id int64) (*domain.Skill, error) {
	return m.DeleteSkillFn(ctx, id)
}

func (m *MockSkillService) DeleteAllSkills(ctx context.Context) (int64, error) {
	return m.DeleteAllSkillsFn(ctx)
}

// MockEndorsementService is a mock implementation of service.EndorsementService for testing
type MockEndorsementService struct {
	ListEndorsementsFn      func(ctx context.Context) ([]*domain.EndorsementDetail, error)
	GetEndorsementFn        func(ctx context.Context, id int64) (*domain.EndorsementDetail, error)
	CreateEndorsementFn     func(ctx context.Context, endorsement *domain.Endorsement) error
	DeleteEndorsementFn     func(ctx context.Context, id int64) (*domain.Endorsement, error)
	DeleteAllEndorsementsFn func(ctx context.Context) (int64, error)
}

func (m *MockEndorsementService) ListEndorsements(ctx context.Context) ([]*domain.EndorsementDetail, error) {
	return m.ListEndorsementsFn(ctx)
}

func (m *MockEndorsementService) GetEndorsement(ctx context.Context, id int64) (*domain.EndorsementDetail, error) {
	return m.GetEndorsementFn(ctx, id)
}

func (m *MockEndorsementService) CreateEndorsement(ctx context.Context, endorsement *domain.Endorsement) error {
	return m.CreateEndorsementFn(ctx, endorsement)
}

func (m *MockEndorsementService) DeleteEndorsement(ctx context.Context, id int64) (*domain.Endorsement, error) {
	return m.DeleteEndorsementFn(ctx, id)
}

func (m *MockEndorsementService) DeleteAllEndorsements(ctx context.Context) (int64, error) {
	return m.DeleteAllEndorsementsFn(ctx)
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func testLogger() *slog.Logger {
	log, _ := logger.NewTestLogger()
	return log
}

// testRouter mounts the handlers the way the server does, minus permissions.
func testRouter(profiles service.ProfileService, skills service.SkillService, endorsements service.EndorsementService) http.Handler {
	r := chi.NewRouter()
	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)
	r.Get("/", Welcome)
	r.Get("/health", Health)

	if profiles != nil {
		h := NewProfileHandler(profiles, testLogger())
		r.Get("/users", h.ListProfiles)
		r.Post("/users", h.CreateProfile)
		r.Delete("/users", h.DeleteAllProfiles)
		r.Get("/users/{id}", h.GetProfile)
		r.Patch("/users/{id}", h.UpdateProfile)
		r.Delete("/users/{id}", h.DeleteProfile)
	}
	if skills != nil {
		h := NewSkillHandler(skills, testLogger())
		r.Get("/skills", h.ListSkills)
		r.Post("/skills", h.CreateSkill)
		r.Delete("/skills", h.DeleteAllSkills)
		r.Get("/skills/{id}", h.GetSkill)
		r.Patch("/skills/{id}", h.UpdateSkill)
		r.Delete("/skills/{id}", h.DeleteSkill)
	}
	if endorsements != nil {
		h := NewEndorsementHandler(endorsements, testLogger())
		r.Get("/endorsements", h.ListEndorsements)
		r.Post("/endorsements", h.CreateEndorsement)
		r.Delete("/endorsements", h.DeleteAllEndorsements)
		r.Get("/endorsements/{id}", h.GetEndorsement)
		r.Delete("/endorsements/{id}", h.DeleteEndorsement)
	}
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}

func requireErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, w.Code, "body: %s", w.Body.String())
	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.Equal(t, status, body.Error)
	require.Equal(t, message, body.Message)
}
