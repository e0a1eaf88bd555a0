package api

import (
	"log/slog"
	"net/http"

	"github.com/endorsa/endorsa-api/internal/api/shared"
	"github.com/endorsa/endorsa-api/internal/domain"
	"github.com/endorsa/endorsa-api/internal/platform/logger"
	"github.com/endorsa/endorsa-api/internal/service"
)

// EndorsementHandler handles /endorsements requests.
type EndorsementHandler struct {
	endorsementService service.EndorsementService
	logger             *slog.Logger
}

// NewEndorsementHandler creates a new EndorsementHandler
func NewEndorsementHandler(endorsementService service.EndorsementService, logger *slog.Logger) *EndorsementHandler {
	if endorsementService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("endorsementService cannot be nil for EndorsementHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for EndorsementHandler")
	}

	return &EndorsementHandler{
		endorsementService: endorsementService,
		logger:             logger.With(slog.String("component", "endorsement_handler")),
	}
}

// ListEndorsements handles GET /endorsements requests.
func (h *EndorsementHandler) ListEndorsements(w http.ResponseWriter, r *http.Request) {
	endorsements, err := h.endorsementService.ListEndorsements(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EndorsementListResponse{
		Success:         true,
		Endorsements:    endorsements,
		NumEndorsements: len(endorsements),
	})
}

// CreateEndorsement handles POST /endorsements requests. Giver, receiver and
// skill must exist; the creation date is set by the database.
func (h *EndorsementHandler) CreateEndorsement(w http.ResponseWriter, r *http.Request) {
	var req CreateEndorsementRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	endorsement, err := domain.NewEndorsement(int64(req.GiverID), int64(req.ReceiverID), int64(req.SkillID))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.endorsementService.CreateEndorsement(r.Context(), endorsement); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("endorsement created",
		slog.Int64("endorsement_id", endorsement.ID),
		slog.Int64("giver_id", endorsement.GiverID),
		slog.Int64("receiver_id", endorsement.ReceiverID),
		slog.Int64("skill_id", endorsement.SkillID))
	shared.RespondWithJSON(w, r, http.StatusOK, EndorsementResponse{Success: true, Endorsement: endorsement})
}

// DeleteAllEndorsements handles DELETE /endorsements requests.
func (h *EndorsementHandler) DeleteAllEndorsements(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.endorsementService.DeleteAllEndorsements(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("all endorsements deleted", slog.Int64("count", deleted))
	shared.RespondWithJSON(w, r, http.StatusOK, EndorsementsDeletedResponse{
		Success:                true,
		NumEndorsementsDeleted: deleted,
	})
}

// GetEndorsement handles GET /endorsements/{id} requests.
func (h *EndorsementHandler) GetEndorsement(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	endorsement, err := h.endorsementService.GetEndorsement(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EndorsementResponse{Success: true, Endorsement: endorsement})
}

// DeleteEndorsement handles DELETE /endorsements/{id} requests.
func (h *EndorsementHandler) DeleteEndorsement(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	endorsement, err := h.endorsementService.DeleteEndorsement(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("endorsement deleted", slog.Int64("endorsement_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, EndorsementResponse{Success: true, Endorsement: endorsement})
}
