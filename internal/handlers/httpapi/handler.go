// Package httpapi exposes the character service over a JSON HTTP API.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/KirkDiggler/character-builder/internal/entities"
	"github.com/KirkDiggler/character-builder/internal/errors"
	"github.com/KirkDiggler/character-builder/internal/services/character"
)

// Config holds the handler dependencies
type Config struct {
	Service character.Service
}

// Validate ensures the config is valid
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	return vb.Build()
}

// Handler routes HTTP requests to the character service
type Handler struct {
	service character.Service
	mux     *http.ServeMux
}

// New creates a handler with all routes registered
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h := &Handler{
		service: cfg.Service,
		mux:     http.NewServeMux(),
	}
	h.registerRoutes()
	return h, nil
}

func (h *Handler) registerRoutes() {
	h.mux.HandleFunc("POST /v1/drafts", h.handleCreateDraft)
	h.mux.HandleFunc("GET /v1/drafts/{id}", h.handleGetDraft)
	h.mux.HandleFunc("DELETE /v1/drafts/{id}", h.handleDeleteDraft)
	h.mux.HandleFunc("GET /v1/players/{playerID}/draft", h.handleGetDraftByPlayer)

	h.mux.HandleFunc("POST /v1/drafts/{id}/roll", h.handleRollAbilityScores)
	h.mux.HandleFunc("PUT /v1/drafts/{id}/name", h.handleUpdateName)
	h.mux.HandleFunc("PUT /v1/drafts/{id}/ability-scores", h.handleUpdateAbilityScores)
	h.mux.HandleFunc("PUT /v1/drafts/{id}/race", h.handleUpdateRace)
	h.mux.HandleFunc("PUT /v1/drafts/{id}/class", h.handleUpdateClass)
	h.mux.HandleFunc("PUT /v1/drafts/{id}/skills", h.handleUpdateSkills)
	h.mux.HandleFunc("PUT /v1/drafts/{id}/equipment", h.handleUpdateEquipment)
	h.mux.HandleFunc("PUT /v1/drafts/{id}/spells", h.handleUpdateSpells)

	h.mux.HandleFunc("GET /v1/drafts/{id}/validation", h.handleValidateDraft)
	h.mux.HandleFunc("POST /v1/drafts/{id}/finalize", h.handleFinalizeDraft)

	h.mux.HandleFunc("GET /v1/rules/races", h.handleListRaces)
	h.mux.HandleFunc("GET /v1/rules/classes", h.handleListClasses)
	h.mux.HandleFunc("GET /v1/rules/classes/{id}/spells", h.handleListClassSpells)
	h.mux.HandleFunc("GET /v1/rules/skills", h.handleListSkills)
	h.mux.HandleFunc("GET /v1/rules/equipment", h.handleListEquipment)

	h.mux.HandleFunc("GET /v1/characters/{id}", h.handleGetCharacter)
	h.mux.HandleFunc("DELETE /v1/characters/{id}", h.handleDeleteCharacter)
	h.mux.HandleFunc("GET /v1/characters/{id}/sheet", h.handleCharacterSheet)
	h.mux.HandleFunc("GET /v1/players/{playerID}/characters", h.handleListCharacters)
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string `json:"player_id"`
		Name     string `json:"name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.service.CreateDraft(r.Context(), &character.CreateDraftInput{
		PlayerID: req.PlayerID,
		Name:     req.Name,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, draftResponse(output.Draft))
}

func (h *Handler) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetDraft(r.Context(), &character.GetDraftInput{
		DraftID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse(output.Draft))
}

func (h *Handler) handleGetDraftByPlayer(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetDraftByPlayer(r.Context(), &character.GetDraftByPlayerInput{
		PlayerID: r.PathValue("playerID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse(output.Draft))
}

func (h *Handler) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	_, err := h.service.DeleteDraft(r.Context(), &character.DeleteDraftInput{
		DraftID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRollAbilityScores(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Method string `json:"method"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.service.RollAbilityScores(r.Context(), &character.RollAbilityScoresInput{
		DraftID: r.PathValue("id"),
		Method:  req.Method,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"draft":  output.Draft,
		"scores": output.Scores,
	})
}

func (h *Handler) handleUpdateName(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.service.UpdateName(r.Context(), &character.UpdateNameInput{
		DraftID: r.PathValue("id"),
		Name:    req.Name,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse(output.Draft))
}

func (h *Handler) handleUpdateAbilityScores(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Assignments map[string]int32 `json:"assignments"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.service.UpdateAbilityScores(r.Context(), &character.UpdateAbilityScoresInput{
		DraftID:     r.PathValue("id"),
		Assignments: req.Assignments,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse(output.Draft))
}

func (h *Handler) handleUpdateRace(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RaceID string `json:"race_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.service.UpdateRace(r.Context(), &character.UpdateRaceInput{
		DraftID: r.PathValue("id"),
		RaceID:  req.RaceID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse(output.Draft))
}

func (h *Handler) handleUpdateClass(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClassID       string `json:"class_id"`
		FightingStyle string `json:"fighting_style"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.service.UpdateClass(r.Context(), &character.UpdateClassInput{
		DraftID:       r.PathValue("id"),
		ClassID:       req.ClassID,
		FightingStyle: req.FightingStyle,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse(output.Draft))
}

func (h *Handler) handleUpdateSkills(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SkillIDs          []string `json:"skill_ids"`
		ExpertiseSkillIDs []string `json:"expertise_skill_ids"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.service.UpdateSkills(r.Context(), &character.UpdateSkillsInput{
		DraftID:           r.PathValue("id"),
		SkillIDs:          req.SkillIDs,
		ExpertiseSkillIDs: req.ExpertiseSkillIDs,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse(output.Draft))
}

func (h *Handler) handleUpdateEquipment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Selections []entities.EquipmentSelection `json:"selections"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.service.UpdateEquipment(r.Context(), &character.UpdateEquipmentInput{
		DraftID:    r.PathValue("id"),
		Selections: req.Selections,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"draft":           output.Draft,
		"warnings":        output.Warnings,
		"remaining_coins": output.RemainingCoins,
	})
}

func (h *Handler) handleUpdateSpells(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CantripIDs []string `json:"cantrip_ids"`
		SpellIDs   []string `json:"spell_ids"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.service.UpdateSpells(r.Context(), &character.UpdateSpellsInput{
		DraftID:    r.PathValue("id"),
		CantripIDs: req.CantripIDs,
		SpellIDs:   req.SpellIDs,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse(output.Draft))
}

func (h *Handler) handleValidateDraft(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ValidateDraft(r.Context(), &character.ValidateDraftInput{
		DraftID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	steps := make([]map[string]any, 0, len(output.Steps))
	for _, step := range output.Steps {
		steps = append(steps, map[string]any{
			"step":     step.Step,
			"complete": step.Complete,
			"required": step.Required,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"draft":        output.Draft,
		"steps":        steps,
		"can_finalize": output.CanFinalize,
		"missing_step": output.MissingStep,
	})
}

func (h *Handler) handleFinalizeDraft(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.FinalizeDraft(r.Context(), &character.FinalizeDraftInput{
		DraftID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"character": output.Character})
}

func (h *Handler) handleListRaces(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ListRaces(r.Context(), &character.ListRacesInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"races": output.Races})
}

func (h *Handler) handleListClasses(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ListClasses(r.Context(), &character.ListClassesInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"classes": output.Classes})
}

func (h *Handler) handleListSkills(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ListSkills(r.Context(), &character.ListSkillsInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"skills": output.Skills})
}

func (h *Handler) handleListEquipment(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ListEquipment(r.Context(), &character.ListEquipmentInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"equipment": output.Items})
}

func (h *Handler) handleListClassSpells(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ListClassSpells(r.Context(), &character.ListClassSpellsInput{
		ClassID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"spells": output.Spells})
}

func (h *Handler) handleGetCharacter(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetCharacter(r.Context(), &character.GetCharacterInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"character": output.Character})
}

func (h *Handler) handleListCharacters(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ListCharacters(r.Context(), &character.ListCharactersInput{
		PlayerID: r.PathValue("playerID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"characters": output.Characters})
}

func (h *Handler) handleDeleteCharacter(w http.ResponseWriter, r *http.Request) {
	_, err := h.service.DeleteCharacter(r.Context(), &character.DeleteCharacterInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCharacterSheet(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.RenderCharacterSheet(r.Context(), &character.RenderCharacterSheetInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(output.Sheet)
}

func draftResponse(draft *entities.CharacterDraft) map[string]any {
	return map[string]any{"draft": draft}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, errors.InvalidArgument("invalid request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"code":    string(code),
			"message": errors.GetMessage(err),
		},
	})
}
