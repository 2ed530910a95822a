package game

import (
	"fmt"

	"gridduel/internal/domain/match"
	errs "gridduel/internal/errors"
	"gridduel/internal/utils"
)

// Client -> Server
//   placeCharacter: character, row, col
//   move:           character, move
//
// Server -> Client
//   assignPlayer:    player
//   update:          gameState
//   placementUpdate: characters
//   startGame
//   error:           kind, message
const (
	MsgPlaceCharacter  = "placeCharacter"
	MsgMove            = "move"
	MsgAssignPlayer    = "assignPlayer"
	MsgUpdate          = "update"
	MsgPlacementUpdate = "placementUpdate"
	MsgStartGame       = "startGame"
	MsgError           = "error"
)

// InboundMessage is a client frame. Player, TargetRow and TargetCol may be
// sent by older clients and are ignored; the side always comes from the seat.
type InboundMessage struct {
	Type      string `json:"type"`
	Player    string `json:"player,omitempty"`
	Character string `json:"character,omitempty"`
	Row       *int   `json:"row,omitempty"`
	Col       *int   `json:"col,omitempty"`
	Move      string `json:"move,omitempty"`
	TargetRow *int   `json:"targetRow,omitempty"`
	TargetCol *int   `json:"targetCol,omitempty"`
}

func DecodeInbound(data []byte) (InboundMessage, error) {
	var msg InboundMessage
	if err := utils.DecodeJSON(data, &msg); err != nil {
		return msg, fmt.Errorf("%w: %v", errs.ErrMalformedMessage, err)
	}

	switch msg.Type {
	case MsgPlaceCharacter:
		if msg.Character == "" || msg.Row == nil || msg.Col == nil {
			return msg, fmt.Errorf("%w: placeCharacter needs character, row and col", errs.ErrMalformedMessage)
		}
	case MsgMove:
		if msg.Character == "" || msg.Move == "" {
			return msg, fmt.Errorf("%w: move needs character and move", errs.ErrMalformedMessage)
		}
	default:
		return msg, fmt.Errorf("%w: unknown message type %q", errs.ErrMalformedMessage, msg.Type)
	}
	return msg, nil
}

type AssignPlayerMessage struct {
	Type   string     `json:"type"`
	Player match.Side `json:"player"`
}

type UpdateMessage struct {
	Type      string              `json:"type"`
	GameState match.StateSnapshot `json:"gameState"`
}

type PlacementUpdateMessage struct {
	Type       string       `json:"type"`
	Characters []match.Unit `json:"characters"`
}

type StartGameMessage struct {
	Type string `json:"type"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func NewAssignPlayer(side match.Side) AssignPlayerMessage {
	return AssignPlayerMessage{Type: MsgAssignPlayer, Player: side}
}

func NewUpdate(snap match.StateSnapshot) UpdateMessage {
	return UpdateMessage{Type: MsgUpdate, GameState: snap}
}

func NewPlacementUpdate(roster []match.Unit) PlacementUpdateMessage {
	if roster == nil {
		roster = []match.Unit{}
	}
	return PlacementUpdateMessage{Type: MsgPlacementUpdate, Characters: roster}
}

func NewStartGame() StartGameMessage {
	return StartGameMessage{Type: MsgStartGame}
}

func NewError(kind, message string) ErrorMessage {
	return ErrorMessage{Type: MsgError, Kind: kind, Message: message}
}
