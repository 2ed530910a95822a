package match

import "time"

const (
	CommandPlace = "place"
	CommandMove  = "move"
)

// Event is the archived record of one committed command.
type Event struct {
	MatchID   string    `json:"match_id" bson:"match_id"`
	Seq       int       `json:"seq" bson:"seq"`
	Side      Side      `json:"side" bson:"side"`
	Command   string    `json:"command" bson:"command"`
	Unit      string    `json:"unit" bson:"unit"`
	Kind      Kind      `json:"kind" bson:"kind"`
	Direction Direction `json:"direction,omitempty" bson:"direction,omitempty"`
	From      *Position `json:"from,omitempty" bson:"from,omitempty"`
	To        Position  `json:"to" bson:"to"`
	Captured  []string  `json:"captured,omitempty" bson:"captured,omitempty"`
	Phase     Phase     `json:"phase" bson:"phase"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
