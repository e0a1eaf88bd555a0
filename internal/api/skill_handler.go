package api

import (
	"log/slog"
	"net/http"

	"github.com/endorsa/endorsa-api/internal/api/shared"
	"github.com/endorsa/endorsa-api/internal/domain"
	"github.com/endorsa/endorsa-api/internal/platform/logger"
	"github.com/endorsa/endorsa-api/internal/service"
)

// SkillHandler handles /skills requests.
type SkillHandler struct {
	skillService service.SkillService
	logger       *slog.Logger
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(skillService service.SkillService, logger *slog.Logger) *SkillHandler {
	if skillService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("skillService cannot be nil for SkillHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SkillHandler")
	}

	return &SkillHandler{
		skillService: skillService,
		logger:       logger.With(slog.String("component", "skill_handler")),
	}
}

// ListSkills handles GET /skills requests.
func (h *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skillService.ListSkills(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SkillListResponse{
		Success:   true,
		Skills:    skills,
		NumSkills: len(skills),
	})
}

// CreateSkill handles POST /skills requests.
func (h *SkillHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req CreateSkillRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	skill, err := domain.NewSkill(req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.skillService.CreateSkill(r.Context(), skill); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("skill created", slog.Int64("skill_id", skill.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, SkillResponse{Success: true, Skill: skill})
}

// DeleteAllSkills handles DELETE /skills requests.
func (h *SkillHandler) DeleteAllSkills(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.skillService.DeleteAllSkills(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("all skills deleted", slog.Int64("count", deleted))
	shared.RespondWithJSON(w, r, http.StatusOK, SkillsDeletedResponse{Success: true, NumSkillsDeleted: deleted})
}

// GetSkill handles GET /skills/{id} requests, including who endorsed whom for the skill.
func (h *SkillHandler) GetSkill(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	detail, err := h.skillService.GetSkill(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SkillDetailResponse{
		Success:      true,
		Skill:        detail.Skill,
		Endorsements: emptyIfNil(detail.Endorsements),
	})
}

// UpdateSkill handles PATCH /skills/{id} requests.
func (h *SkillHandler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateSkillRequest
	if err := shared.DecodePatchAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	skill, err := h.skillService.UpdateSkill(r.Context(), id, req.patch())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SkillResponse{Success: true, Skill: skill})
}

// DeleteSkill handles DELETE /skills/{id} requests.
func (h *SkillHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	skill, err := h.skillService.DeleteSkill(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("skill deleted", slog.Int64("skill_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, SkillResponse{Success: true, Skill: skill})
}
