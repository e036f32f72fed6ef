package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/DoyleJ11/map-veto/internal/engine"
	"github.com/DoyleJ11/map-veto/internal/i18n"
	"github.com/DoyleJ11/map-veto/internal/session"
)

type entryView struct {
	page
	Team1 string
	Team2 string
	Error string
}

type mapCard struct {
	engine.Map
	Href  string // empty when the map can't be clicked
	Badge string
}

type mapsView struct {
	page
	HasTeams   bool
	NextAction string
	NextTeam   string
	Maps       []mapCard
	Done       bool
	SidesURL   string
}

type choiceView struct {
	Map      string
	Team     string
	SideName string
}

type sidesView struct {
	page
	HasMaps    bool
	FirstStep  bool
	CurrentMap string
	Chooser    string
	TURL       string
	CTURL      string
	Done       bool
	Choices    []choiceView
}

func (s *Server) Entry(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "entry", entryView{page: s.page(r)})
}

// Start validates the team names. Failures stay on the entry form.
func (s *Server) Start(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	team1, team2 := r.PostForm.Get("team1"), r.PostForm.Get("team2")

	if err := engine.ValidateTeams(team1, team2); err != nil {
		p := s.page(r)
		s.logger.Debug("team entry rejected", zap.Error(err))
		s.render(w, r, http.StatusUnprocessableEntity, "entry", entryView{
			page:  p,
			Team1: team1,
			Team2: team2,
			Error: p.T.Sprintf(i18n.ErrorKey(err)),
		})
		return
	}

	next := session.Context{Teams: engine.Teams{Team1: team1, Team2: team2}}
	http.Redirect(w, r, next.URL("/maps"), http.StatusSeeOther)
}

func (s *Server) Maps(w http.ResponseWriter, r *http.Request) {
	c := session.Decode(r.URL.Query())
	view := mapsView{page: s.page(r), HasTeams: c.HasTeams()}
	if !view.HasTeams {
		s.render(w, r, http.StatusOK, "maps", view)
		return
	}

	// Draw once, then pin the result in the URL so reloads keep it.
	if !c.Teams.Drawn() {
		teams := engine.Draw(s.coin, c.Teams.Team1, c.Teams.Team2)
		s.logger.Info("first team drawn", zap.String("first", teams.First), zap.String("second", teams.Second))
		c = c.WithTeams(teams)
		c.Veto = nil
		http.Redirect(w, r, c.URL("/maps"), http.StatusFound)
		return
	}

	st := engine.Replay(c.Teams, c.Veto)
	if skipped := len(c.Veto) - st.Cursor; skipped > 0 {
		s.logger.Debug("ignored map clicks", zap.Int("skipped", skipped), zap.Strings("veto", c.Veto))
	}
	c.Veto = engine.Applied(st)

	view.Done = engine.Completed(st)
	if step, done := engine.CurrentStep(st); !done {
		view.NextTeam = engine.NextTeam(st)
		if step.Action == engine.ActionBan {
			view.NextAction = view.T.Sprintf(i18n.MsgBan)
		} else {
			view.NextAction = view.T.Sprintf(i18n.MsgPick)
		}
	}

	for _, m := range st.Maps {
		card := mapCard{Map: m}
		switch m.Status {
		case engine.StatusAvailable:
			if !view.Done {
				card.Href = c.WithVetoClick(m.ID).URL("/maps")
			}
		case engine.StatusBanned:
			card.Badge = view.T.Sprintf(i18n.MsgBannedBy, m.BannedBy)
		case engine.StatusPicked:
			card.Badge = view.T.Sprintf(i18n.MsgPickedBy, m.PickedBy)
		}
		view.Maps = append(view.Maps, card)
	}

	if view.Done {
		view.SidesURL = session.ForSides(st.Teams, engine.PickedMaps(st)).URL("/sides")
	}
	s.render(w, r, http.StatusOK, "maps", view)
}

func (s *Server) Sides(w http.ResponseWriter, r *http.Request) {
	c := session.Decode(r.URL.Query())
	st := engine.ReplaySides(c.PickedMaps(), c.Sides)

	c.Sides = c.Sides[:0:0]
	for _, choice := range st.Choices {
		c.Sides = append(c.Sides, choice.Side)
	}

	view := sidesView{
		page:      s.page(r),
		HasMaps:   st.Step > 0,
		FirstStep: st.Step == 1,
		Done:      engine.SidesDone(st),
	}

	if current, ok := engine.CurrentMap(st); ok {
		view.CurrentMap = current.Name
		view.Chooser = engine.Chooser(st.Maps, st.Step)
		view.TURL = c.WithSide(engine.SideT).URL("/sides")
		view.CTURL = c.WithSide(engine.SideCT).URL("/sides")
	}

	assigned := engine.Assignments(st)
	for _, m := range st.Maps {
		choice, ok := assigned[m.Name]
		if !ok {
			continue
		}
		delete(assigned, m.Name)
		name := i18n.MsgCounter
		if choice.Side == engine.SideT {
			name = i18n.MsgTerrorist
		}
		view.Choices = append(view.Choices, choiceView{
			Map:      choice.Map,
			Team:     choice.Team,
			SideName: view.T.Sprintf(name),
		})
	}
	s.render(w, r, http.StatusOK, "sides", view)
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
