package match

import (
	"fmt"

	"gridduel/internal/domain/match"
	errs "gridduel/internal/errors"
)

// Command is an inbound placement or move issued by an already seated side.
type Command interface {
	Actor() match.Side
	Name() string
}

type PlaceCommand struct {
	Side match.Side
	Kind string
	Row  int
	Col  int
}

func (c PlaceCommand) Actor() match.Side { return c.Side }
func (c PlaceCommand) Name() string      { return match.CommandPlace }

type MoveCommand struct {
	Side      match.Side
	Unit      string
	Direction match.Direction
}

func (c MoveCommand) Actor() match.Side { return c.Side }
func (c MoveCommand) Name() string      { return match.CommandMove }

// Result carries what an accepted command changed. Err is set, and nothing
// else, when the command was rejected.
type Result struct {
	Placement *PlacementResult
	Move      *MoveOutcome
	Snapshot  match.StateSnapshot
	Err       error
}

// Game is the turn and phase state machine. It owns the match exclusively
// and is not safe for concurrent use; Processor serializes access.
type Game struct {
	m *match.Match
}

func NewGame(matchID string) *Game {
	return &Game{m: match.New(matchID)}
}

func (g *Game) Phase() match.Phase {
	return g.m.Phase
}

func (g *Game) Snapshot() match.StateSnapshot {
	return g.m.Snapshot()
}

// State returns a copy of the match.
func (g *Game) State() *match.Match {
	return g.m.Clone()
}

func (g *Game) Place(side match.Side, kind string, row, col int) (PlacementResult, error) {
	if !side.Valid() {
		return PlacementResult{}, fmt.Errorf("%w: %q", errs.ErrUnknownSide, side)
	}
	if g.m.Phase != match.PhaseSetup {
		return PlacementResult{}, fmt.Errorf("%w: placement is only allowed during setup", errs.ErrWrongPhase)
	}
	if g.m.Side(side).Ready {
		return PlacementResult{}, errs.ErrRosterFull
	}

	k, err := match.ParseKind(kind)
	if err != nil {
		return PlacementResult{}, fmt.Errorf("%w: %q", err, kind)
	}
	return PlaceUnit(g.m, side, k, row, col)
}

func (g *Game) Move(side match.Side, unit string, dir match.Direction) (MoveOutcome, error) {
	if !side.Valid() {
		return MoveOutcome{}, fmt.Errorf("%w: %q", errs.ErrUnknownSide, side)
	}
	if g.m.Phase != match.PhaseActive {
		return MoveOutcome{}, fmt.Errorf("%w: moves are only allowed once both sides are ready", errs.ErrWrongPhase)
	}
	if !g.m.Side(side).HasTurn {
		return MoveOutcome{}, errs.ErrNotYourTurn
	}
	return ApplyMove(g.m, side, unit, dir)
}

// Apply dispatches cmd and returns the committed state on success.
func (g *Game) Apply(cmd Command) Result {
	switch c := cmd.(type) {
	case PlaceCommand:
		res, err := g.Place(c.Side, c.Kind, c.Row, c.Col)
		if err != nil {
			return Result{Err: err}
		}
		return Result{Placement: &res, Snapshot: g.m.Snapshot()}
	case MoveCommand:
		res, err := g.Move(c.Side, c.Unit, c.Direction)
		if err != nil {
			return Result{Err: err}
		}
		return Result{Move: &res, Snapshot: g.m.Snapshot()}
	}
	return Result{Err: fmt.Errorf("%w: unsupported command %T", errs.ErrMalformedMessage, cmd)}
}
