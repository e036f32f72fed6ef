package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DoyleJ11/map-veto/internal/engine"
	"github.com/DoyleJ11/map-veto/internal/session"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "vetoctl",
		Short:        "Run map ban/pick and side selection from the terminal",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.AddCommand(newStepsCmd(), newRunCmd())
	return root
}

func newStepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "Print the ban/pick order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "STEP\tACTION\tTEAM")
			for i, step := range engine.VetoOrder {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, step.Action, step.Slot)
			}
			return w.Flush()
		},
	}
}

type runOptions struct {
	team1  string
	team2  string
	first  string
	veto   []string
	sides  []string
	asURLs bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay a veto and optional side choices",
		Example: `  vetoctl run --team1 Alpha --team2 Beta --first Alpha \
    --veto train,inferno,mirage,nuke,dust2,ancient,anubis --sides CT,T`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVeto(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.team1, "team1", "", "first team name")
	f.StringVar(&opts.team2, "team2", "", "second team name")
	f.StringVar(&opts.first, "first", "", "team acting on first-slot steps; drawn at random if empty")
	f.StringSliceVar(&opts.veto, "veto", nil, "map ids in click order")
	f.StringSliceVar(&opts.sides, "sides", nil, "sides chosen for the first two picks (T or CT)")
	f.BoolVar(&opts.asURLs, "urls", false, "also print the side screen link")
	return cmd
}

func runVeto(out io.Writer, opts *runOptions) error {
	if err := engine.ValidateTeams(opts.team1, opts.team2); err != nil {
		return err
	}

	var teams engine.Teams
	switch opts.first {
	case "":
		teams = engine.Draw(engine.CryptoCoin{}, opts.team1, opts.team2)
	case opts.team1:
		teams = engine.Teams{Team1: opts.team1, Team2: opts.team2, First: opts.team1, Second: opts.team2}
	case opts.team2:
		teams = engine.Teams{Team1: opts.team1, Team2: opts.team2, First: opts.team2, Second: opts.team1}
	default:
		return fmt.Errorf("--first must be one of %q or %q", opts.team1, opts.team2)
	}

	st := engine.Replay(teams, opts.veto)
	fmt.Fprintf(out, "First team: %s\nSecond team: %s\n\n", teams.First, teams.Second)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MAP\tSTATUS\tBY")
	for _, m := range st.Maps {
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.Name, m.Status, m.BannedBy+m.PickedBy)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !engine.Completed(st) {
		step, _ := engine.CurrentStep(st)
		fmt.Fprintf(out, "\nNext: %s by %s\n", step.Action, engine.NextTeam(st))
		return nil
	}

	picked := engine.PickedMaps(st)
	sides := make([]engine.Side, 0, len(opts.sides))
	for _, s := range opts.sides {
		side, ok := engine.ParseSide(strings.ToUpper(strings.TrimSpace(s)))
		if !ok {
			return fmt.Errorf("unknown side %q", s)
		}
		sides = append(sides, side)
	}
	ss := engine.ReplaySides(picked, sides)

	fmt.Fprintln(out)
	assigned := engine.Assignments(ss)
	for _, m := range ss.Maps {
		if c, ok := assigned[m.Name]; ok {
			fmt.Fprintf(out, "%s: %s chose %s\n", c.Map, c.Team, c.Side.DisplayName())
		}
	}
	if current, ok := engine.CurrentMap(ss); ok {
		fmt.Fprintf(out, "Next: side on %s by %s\n", current.Name, engine.Chooser(ss.Maps, ss.Step))
	}
	if engine.SidesDone(ss) {
		fmt.Fprintln(out, "Third map side is decided by the score differential of the first two maps.")
	}

	if opts.asURLs {
		fmt.Fprintln(out, session.ForSides(teams, picked).URL("/sides"))
	}
	return nil
}
