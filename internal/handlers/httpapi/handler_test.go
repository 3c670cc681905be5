package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/character-builder/internal/entities"
	"github.com/KirkDiggler/character-builder/internal/errors"
	"github.com/KirkDiggler/character-builder/internal/handlers/httpapi"
	"github.com/KirkDiggler/character-builder/internal/rulebook"
	"github.com/KirkDiggler/character-builder/internal/services/character"
	charactermock "github.com/KirkDiggler/character-builder/internal/services/character/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *charactermock.MockService
	handler     *httpapi.Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = charactermock.NewMockService(s.ctrl)

	handler, err := httpapi.New(&httpapi.Config{Service: s.mockService})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) TestCreateDraft() {
	s.Run("returns 201 with the draft", func() {
		s.mockService.EXPECT().
			CreateDraft(gomock.Any(), &character.CreateDraftInput{PlayerID: "player_1"}).
			Return(&character.CreateDraftOutput{
				Draft: &entities.CharacterDraft{ID: "draft_1", PlayerID: "player_1"},
			}, nil)

		rec := s.request(http.MethodPost, "/v1/drafts", map[string]string{"player_id": "player_1"})
		s.Equal(http.StatusCreated, rec.Code)
		s.Equal("application/json", rec.Header().Get("Content-Type"))

		var resp struct {
			Draft entities.CharacterDraft `json:"draft"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("draft_1", resp.Draft.ID)
	})

	s.Run("maps validation errors to 400", func() {
		s.mockService.EXPECT().
			CreateDraft(gomock.Any(), gomock.Any()).
			Return(nil, errors.InvalidArgument("playerID is required"))

		rec := s.request(http.MethodPost, "/v1/drafts", map[string]string{})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("rejects a malformed body", func() {
		req := httptest.NewRequest(http.MethodPost, "/v1/drafts", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerTestSuite) TestGetDraft() {
	s.Run("maps not found to 404", func() {
		s.mockService.EXPECT().
			GetDraft(gomock.Any(), &character.GetDraftInput{DraftID: "missing"}).
			Return(nil, errors.NotFound("draft not found"))

		rec := s.request(http.MethodGet, "/v1/drafts/missing", nil)
		s.Equal(http.StatusNotFound, rec.Code)

		var resp struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("NOT_FOUND", resp.Error.Code)
	})
}

func (s *HandlerTestSuite) TestUpdateSkills() {
	s.Run("passes selections through", func() {
		s.mockService.EXPECT().
			UpdateSkills(gomock.Any(), &character.UpdateSkillsInput{
				DraftID:           "draft_1",
				SkillIDs:          []string{"athletics", "perception"},
				ExpertiseSkillIDs: nil,
			}).
			Return(&character.UpdateSkillsOutput{
				Draft: &entities.CharacterDraft{ID: "draft_1"},
			}, nil)

		rec := s.request(http.MethodPut, "/v1/drafts/draft_1/skills", map[string]any{
			"skill_ids": []string{"athletics", "perception"},
		})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("maps rule violations to 400", func() {
		s.mockService.EXPECT().
			UpdateSkills(gomock.Any(), gomock.Any()).
			Return(nil, errors.InvalidArgument("skill limit exceeded"))

		rec := s.request(http.MethodPut, "/v1/drafts/draft_1/skills", map[string]any{
			"skill_ids": []string{"athletics", "perception", "survival"},
		})
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "skill limit exceeded")
	})
}

func (s *HandlerTestSuite) TestFinalizeDraft() {
	s.Run("returns 201 with the character", func() {
		s.mockService.EXPECT().
			FinalizeDraft(gomock.Any(), &character.FinalizeDraftInput{DraftID: "draft_1"}).
			Return(&character.FinalizeDraftOutput{
				Character: &entities.Character{ID: "char_1", Name: "Borin"},
			}, nil)

		rec := s.request(http.MethodPost, "/v1/drafts/draft_1/finalize", nil)
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), "char_1")
	})

	s.Run("maps missing steps to 412", func() {
		s.mockService.EXPECT().
			FinalizeDraft(gomock.Any(), gomock.Any()).
			Return(nil, errors.FailedPreconditionf("missing required step %s", "skills"))

		rec := s.request(http.MethodPost, "/v1/drafts/draft_1/finalize", nil)
		s.Equal(http.StatusPreconditionFailed, rec.Code)
	})
}

func (s *HandlerTestSuite) TestCharacterSheet() {
	s.Run("returns plain text", func() {
		s.mockService.EXPECT().
			RenderCharacterSheet(gomock.Any(), &character.RenderCharacterSheetInput{CharacterID: "char_1"}).
			Return(&character.RenderCharacterSheetOutput{Sheet: []byte("BORIN\n")}, nil)

		rec := s.request(http.MethodGet, "/v1/characters/char_1/sheet", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		s.Equal("BORIN\n", rec.Body.String())
	})
}

func (s *HandlerTestSuite) TestDeleteDraft() {
	s.Run("returns 204", func() {
		s.mockService.EXPECT().
			DeleteDraft(gomock.Any(), &character.DeleteDraftInput{DraftID: "draft_1"}).
			Return(&character.DeleteDraftOutput{}, nil)

		rec := s.request(http.MethodDelete, "/v1/drafts/draft_1", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *HandlerTestSuite) TestListCharacters() {
	s.Run("lists by player", func() {
		s.mockService.EXPECT().
			ListCharacters(gomock.Any(), &character.ListCharactersInput{PlayerID: "player_1"}).
			Return(&character.ListCharactersOutput{
				Characters: []*entities.Character{{ID: "char_1"}, {ID: "char_2"}},
			}, nil)

		rec := s.request(http.MethodGet, "/v1/players/player_1/characters", nil)
		s.Equal(http.StatusOK, rec.Code)

		var resp struct {
			Characters []*entities.Character `json:"characters"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Len(resp.Characters, 2)
	})
}

func (s *HandlerTestSuite) TestRuleRoutes() {
	s.Run("lists races", func() {
		s.mockService.EXPECT().
			ListRaces(gomock.Any(), &character.ListRacesInput{}).
			Return(&character.ListRacesOutput{
				Races: []*rulebook.Race{
					{ID: "dwarf", Name: "Dwarf", Speed: 25},
					{ID: "human", Name: "Human", Speed: 30},
				},
			}, nil)

		rec := s.request(http.MethodGet, "/v1/rules/races", nil)
		s.Equal(http.StatusOK, rec.Code)

		var resp struct {
			Races []*rulebook.Race `json:"races"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Require().Len(resp.Races, 2)
		s.Equal("dwarf", resp.Races[0].ID)
	})

	s.Run("lists classes", func() {
		s.mockService.EXPECT().
			ListClasses(gomock.Any(), &character.ListClassesInput{}).
			Return(&character.ListClassesOutput{
				Classes: []*rulebook.Class{
					{ID: "fighter", Name: "Fighter", HitDie: 10},
				},
			}, nil)

		rec := s.request(http.MethodGet, "/v1/rules/classes", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"hit_die":10`)
	})

	s.Run("lists skills", func() {
		s.mockService.EXPECT().
			ListSkills(gomock.Any(), &character.ListSkillsInput{}).
			Return(&character.ListSkillsOutput{
				Skills: []*rulebook.Skill{
					{ID: "athletics", Name: "Athletics", Ability: "strength"},
				},
			}, nil)

		rec := s.request(http.MethodGet, "/v1/rules/skills", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "athletics")
	})

	s.Run("lists equipment", func() {
		s.mockService.EXPECT().
			ListEquipment(gomock.Any(), &character.ListEquipmentInput{}).
			Return(&character.ListEquipmentOutput{
				Items: []*rulebook.Item{
					{ID: "longsword", Name: "Longsword", CostCopper: 1500},
				},
			}, nil)

		rec := s.request(http.MethodGet, "/v1/rules/equipment", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"cost_copper":1500`)
	})

	s.Run("lists class spells", func() {
		s.mockService.EXPECT().
			ListClassSpells(gomock.Any(), &character.ListClassSpellsInput{ClassID: "wizard"}).
			Return(&character.ListClassSpellsOutput{
				Spells: []*rulebook.Spell{
					{ID: "fire_bolt", Name: "Fire Bolt", Level: 0},
					{ID: "magic_missile", Name: "Magic Missile", Level: 1},
				},
			}, nil)

		rec := s.request(http.MethodGet, "/v1/rules/classes/wizard/spells", nil)
		s.Equal(http.StatusOK, rec.Code)

		var resp struct {
			Spells []*rulebook.Spell `json:"spells"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Require().Len(resp.Spells, 2)
		s.Equal("magic_missile", resp.Spells[1].ID)
	})

	s.Run("maps unknown class to 404", func() {
		s.mockService.EXPECT().
			ListClassSpells(gomock.Any(), &character.ListClassSpellsInput{ClassID: "warlock"}).
			Return(nil, errors.NotFoundf("class %q not found", "warlock"))

		rec := s.request(http.MethodGet, "/v1/rules/classes/warlock/spells", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
