package errors

import "errors"

var (
	// placement
	ErrInvalidKind  = errors.New("invalid character kind")
	ErrOutOfBounds  = errors.New("invalid placement position")
	ErrRosterFull   = errors.New("cannot place more than 5 characters")
	ErrWrongHomeRow = errors.New("invalid placement row")
	ErrCellOccupied = errors.New("position already occupied")

	// move
	ErrUnitNotFound       = errors.New("character not found")
	ErrInvalidDirection   = errors.New("invalid move direction for character")
	ErrInvalidDestination = errors.New("move goes out of bounds")
	ErrBlocked            = errors.New("path is blocked by own character")

	// turn gating
	ErrWrongPhase  = errors.New("command not allowed in current phase")
	ErrNotYourTurn = errors.New("not your turn")

	ErrUnknownSide      = errors.New("unknown side")
	ErrMalformedMessage = errors.New("malformed message")
	ErrGameFull         = errors.New("game is full")
	ErrInternal         = errors.New("internal error")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrInvalidKind, "InvalidKind"},
	{ErrOutOfBounds, "OutOfBounds"},
	{ErrRosterFull, "RosterFull"},
	{ErrWrongHomeRow, "WrongHomeRow"},
	{ErrCellOccupied, "CellOccupied"},
	{ErrUnitNotFound, "UnitNotFound"},
	{ErrInvalidDirection, "InvalidDirection"},
	{ErrInvalidDestination, "InvalidDestination"},
	{ErrBlocked, "Blocked"},
	{ErrWrongPhase, "WrongPhase"},
	{ErrNotYourTurn, "NotYourTurn"},
	{ErrUnknownSide, "UnknownSide"},
	{ErrMalformedMessage, "MalformedMessage"},
	{ErrGameFull, "GameFull"},
}

// Kind returns the wire name of the rule error wrapped in err,
// or "Internal" if err is not a rule error.
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Internal"
}

// IsRuleError reports whether err is a recoverable rule violation.
func IsRuleError(err error) bool {
	return Kind(err) != "Internal"
}
