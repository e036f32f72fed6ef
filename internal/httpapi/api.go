package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/DoyleJ11/map-veto/internal/engine"
	"github.com/DoyleJ11/map-veto/internal/i18n"
	"github.com/DoyleJ11/map-veto/internal/session"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondWithError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

func respondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	render.Status(r, status)
	render.JSON(w, r, data)
}

// handleTeamError turns a team validation failure into a 400.
func (s *Server) handleTeamError(w http.ResponseWriter, r *http.Request, err error) {
	msg := s.tr.Printer(r.Header.Get("Accept-Language")).Sprintf(i18n.ErrorKey(err))
	switch {
	case errors.Is(err, engine.ErrEmptyTeamName):
		respondWithError(w, r, http.StatusBadRequest, "EMPTY_TEAM_NAME", msg)
	case errors.Is(err, engine.ErrDuplicateTeamName):
		respondWithError(w, r, http.StatusBadRequest, "DUPLICATE_TEAM_NAME", msg)
	default:
		respondWithError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", msg)
	}
}

type StepsResponse struct {
	Steps     []engine.Step `json:"steps"`
	SideSteps int           `json:"side_steps"`
	Maps      []engine.Map  `json:"maps"`
}

// GetSteps handles GET /api/steps
func (s *Server) GetSteps(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, r, http.StatusOK, StepsResponse{
		Steps:     engine.VetoOrder,
		SideSteps: engine.SideSteps,
		Maps:      engine.NewMapPool(),
	})
}

type TeamsRequest struct {
	Team1 string `json:"team1"`
	Team2 string `json:"team2"`
}

// ValidateTeams handles POST /api/teams/validate
func (s *Server) ValidateTeams(w http.ResponseWriter, r *http.Request) {
	var req TeamsRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}
	if err := engine.ValidateTeams(req.Team1, req.Team2); err != nil {
		s.handleTeamError(w, r, err)
		return
	}
	respondWithJSON(w, r, http.StatusOK, map[string]bool{"valid": true})
}

type VetoRequest struct {
	Team1      string   `json:"team1"`
	Team2      string   `json:"team2"`
	FirstTeam  string   `json:"first_team,omitempty"`
	SecondTeam string   `json:"second_team,omitempty"`
	Veto       []string `json:"veto"`
}

type VetoResponse struct {
	Teams     engine.Teams       `json:"teams"`
	Phase     engine.Phase       `json:"phase"`
	Cursor    int                `json:"cursor"`
	NextStep  *engine.Step       `json:"next_step,omitempty"`
	NextTeam  string             `json:"next_team,omitempty"`
	Applied   []string           `json:"applied"`
	Maps      []engine.Map       `json:"maps"`
	Picked    []engine.PickedMap `json:"picked"`
	Completed bool               `json:"completed"`
	SidesURL  string             `json:"sides_url,omitempty"`
}

// ReplayVeto handles POST /api/veto. Without a turn order it draws one.
func (s *Server) ReplayVeto(w http.ResponseWriter, r *http.Request) {
	var req VetoRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}
	if err := engine.ValidateTeams(req.Team1, req.Team2); err != nil {
		s.handleTeamError(w, r, err)
		return
	}

	teams := engine.Teams{Team1: req.Team1, Team2: req.Team2, First: req.FirstTeam, Second: req.SecondTeam}
	if !teams.Drawn() {
		teams = engine.Draw(s.coin, req.Team1, req.Team2)
		s.logger.Info("first team drawn", zap.String("first", teams.First), zap.String("second", teams.Second))
	}

	st := engine.Replay(teams, req.Veto)
	resp := VetoResponse{
		Teams:     st.Teams,
		Phase:     st.Phase,
		Cursor:    st.Cursor,
		NextTeam:  engine.NextTeam(st),
		Applied:   engine.Applied(st),
		Maps:      st.Maps,
		Picked:    engine.PickedMaps(st),
		Completed: engine.Completed(st),
	}
	if step, done := engine.CurrentStep(st); !done {
		resp.NextStep = &step
	}
	if resp.Completed {
		resp.SidesURL = session.ForSides(st.Teams, resp.Picked).URL("/sides")
	}
	respondWithJSON(w, r, http.StatusOK, resp)
}

type SidesRequest struct {
	Maps  []engine.PickedMap `json:"maps"`
	Sides []engine.Side      `json:"sides"`
}

type SidesResponse struct {
	Step       int                 `json:"step"`
	CurrentMap string              `json:"current_map,omitempty"`
	Chooser    string              `json:"chooser,omitempty"`
	Choices    []engine.SideChoice `json:"choices"`
	Completed  bool                `json:"completed"`
}

// ReplaySides handles POST /api/sides
func (s *Server) ReplaySides(w http.ResponseWriter, r *http.Request) {
	var req SidesRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	st := engine.ReplaySides(req.Maps, req.Sides)
	resp := SidesResponse{
		Step:      st.Step,
		Choices:   st.Choices,
		Completed: engine.SidesDone(st),
	}
	if current, ok := engine.CurrentMap(st); ok {
		resp.CurrentMap = current.Name
		resp.Chooser = engine.Chooser(st.Maps, st.Step)
	}
	respondWithJSON(w, r, http.StatusOK, resp)
}
