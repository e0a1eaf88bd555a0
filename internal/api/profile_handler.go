package api

import (
	"log/slog"
	"net/http"

	"github.com/endorsa/endorsa-api/internal/api/shared"
	"github.com/endorsa/endorsa-api/internal/domain"
	"github.com/endorsa/endorsa-api/internal/platform/logger"
	"github.com/endorsa/endorsa-api/internal/service"
)

// ProfileHandler handles /users requests.
type ProfileHandler struct {
	profileService service.ProfileService
	logger         *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService service.ProfileService, logger *slog.Logger) *ProfileHandler {
	if profileService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("profileService cannot be nil for ProfileHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProfileHandler")
	}

	return &ProfileHandler{
		profileService: profileService,
		logger:         logger.With(slog.String("component", "profile_handler")),
	}
}

// ListProfiles handles GET /users requests.
func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileService.ListProfiles(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileListResponse{
		Success:  true,
		Users:    profiles,
		NumUsers: len(profiles),
	})
}

// CreateProfile handles POST /users requests.
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateProfileRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	profile, err := domain.NewProfile(req.FirstName, req.LastName, req.Location, req.Description, req.Contact.Int64Ptr())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.profileService.CreateProfile(r.Context(), profile); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("profile created", slog.Int64("profile_id", profile.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{Success: true, User: profile})
}

// DeleteAllProfiles handles DELETE /users requests.
func (h *ProfileHandler) DeleteAllProfiles(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.profileService.DeleteAllProfiles(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("all profiles deleted", slog.Int64("count", deleted))
	shared.RespondWithJSON(w, r, http.StatusOK, ProfilesDeletedResponse{Success: true, NumUsersDeleted: deleted})
}

// GetProfile handles GET /users/{id} requests. The profile comes with the
// endorsements it received and gave.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	detail, err := h.profileService.GetProfile(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileDetailResponse{
		Success:              true,
		User:                 detail.Profile,
		EndorsementsReceived: emptyIfNil(detail.Received),
		EndorsementsGiven:    emptyIfNil(detail.Given),
	})
}

// UpdateProfile handles PATCH /users/{id} requests.
// Only fields present with a non-empty value are overwritten.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateProfileRequest
	if err := shared.DecodePatchAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	profile, err := h.profileService.UpdateProfile(r.Context(), id, req.patch())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{Success: true, User: profile})
}

// DeleteProfile handles DELETE /users/{id} requests.
func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	profile, err := h.profileService.DeleteProfile(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("profile deleted", slog.Int64("profile_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{Success: true, User: profile})
}
