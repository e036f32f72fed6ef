package session

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoyleJ11/map-veto/internal/engine"
)

func TestDecode_MissingParamsIsEmpty(t *testing.T) {
	c := Decode(url.Values{})
	assert.False(t, c.HasTeams())
	assert.False(t, c.Teams.Drawn())
	assert.Nil(t, c.Veto)
	assert.Empty(t, c.PickedMaps())
}

func TestDecode_SideScreenParams(t *testing.T) {
	q, err := url.ParseQuery("team1=Alpha&team2=Beta&firstTeam=Beta&secondTeam=Alpha&maps=Mirage,Nuke,Anubis&pickedBy=Beta,Alpha,Beta&sides=T")
	require.NoError(t, err)

	c := Decode(q)
	assert.Equal(t, engine.Teams{Team1: "Alpha", Team2: "Beta", First: "Beta", Second: "Alpha"}, c.Teams)
	assert.Equal(t, []engine.PickedMap{
		{Name: "Mirage", PickedBy: "Beta"},
		{Name: "Nuke", PickedBy: "Alpha"},
		{Name: "Anubis", PickedBy: "Beta"},
	}, c.PickedMaps())
	assert.Equal(t, []engine.Side{engine.SideT}, c.Sides)
}

func TestPickedMaps_ShortPickedByPads(t *testing.T) {
	c := Context{Maps: []string{"Mirage", "Nuke"}, PickedBy: []string{"Alpha"}}
	assert.Equal(t, "", c.PickedMaps()[1].PickedBy)
}

func TestPickedMaps_RequiresBothLists(t *testing.T) {
	assert.Nil(t, Context{Maps: []string{"Mirage", "Nuke"}}.PickedMaps())
	assert.Nil(t, Context{PickedBy: []string{"Alpha", "Beta"}}.PickedMaps())
}

func TestURL_KeepsNamesVerbatim(t *testing.T) {
	c := Context{Teams: engine.Teams{Team1: " Team & Co ", Team2: "Beta"}}
	link := c.URL("/maps")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/maps", u.Path)
	assert.Equal(t, " Team & Co ", u.Query().Get(ParamTeam1))
	assert.Equal(t, "", u.Query().Get(ParamFirstTeam))
}

func TestWithVetoClick_DoesNotAlias(t *testing.T) {
	base := Context{Veto: make([]string, 1, 4)}
	base.Veto[0] = "train"

	a := base.WithVetoClick("nuke")
	b := base.WithVetoClick("mirage")

	assert.Equal(t, []string{"train", "nuke"}, a.Veto)
	assert.Equal(t, []string{"train", "mirage"}, b.Veto)
	assert.Equal(t, []string{"train"}, base.Veto)
}

func TestForSides(t *testing.T) {
	teams := engine.Teams{Team1: "Alpha", Team2: "Beta", First: "Alpha", Second: "Beta"}
	c := ForSides(teams, []engine.PickedMap{{Name: "Dust 2", PickedBy: "Alpha"}, {Name: "Train", PickedBy: "Beta"}})

	q := c.Encode()
	assert.Equal(t, "Dust 2,Train", q.Get(ParamMaps))
	assert.Equal(t, "Alpha,Beta", q.Get(ParamPickedBy))
	assert.Equal(t, "Alpha", q.Get(ParamFirstTeam))
	assert.Empty(t, q.Get(ParamVeto))
}

// Lists are comma-joined, so a comma inside a team name splits it into two
// pickedBy entries and shifts every picker after it.
func TestForSides_CommaInTeamNameShiftsPickers(t *testing.T) {
	teams := engine.Teams{Team1: "A,B", Team2: "C", First: "A,B", Second: "C"}
	c := ForSides(teams, []engine.PickedMap{
		{Name: "Mirage", PickedBy: "A,B"},
		{Name: "Nuke", PickedBy: "C"},
		{Name: "Anubis", PickedBy: "A,B"},
	})

	q := c.Encode()
	assert.Equal(t, "A,B,C,A,B", q.Get(ParamPickedBy))

	picked := Decode(q).PickedMaps()
	require.Len(t, picked, 3)
	assert.Equal(t, "B", picked[1].PickedBy)
	assert.Equal(t, "B", engine.Chooser(picked, 1))
}
