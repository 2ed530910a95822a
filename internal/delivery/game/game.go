package game

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"gridduel/internal/domain/game"
	"gridduel/internal/domain/match"
	errs "gridduel/internal/errors"
	"gridduel/internal/httpresponse"
	gameuc "gridduel/internal/usecase/match"
)

type GameHandler struct {
	log       *zap.SugaredLogger
	processor *gameuc.Processor
	hub       *Hub
	seats     *Seats
	upgrader  websocket.Upgrader
}

func NewGameHandler(log *zap.SugaredLogger, processor *gameuc.Processor, hub *Hub) *GameHandler {
	return &GameHandler{
		log:       log,
		processor: processor,
		hub:       hub,
		seats:     NewSeats(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnect upgrades to a websocket, seats the caller and feeds its
// frames to the processor until the connection drops.
func (g *GameHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Error("upgrade error: ", err)
		return
	}
	defer conn.Close()

	side, err := g.seats.Acquire()
	if err != nil {
		g.log.Info("rejecting connection: game is full")
		_ = conn.WriteJSON(game.NewError(errs.Kind(err), err.Error()))
		return
	}
	defer g.seats.Release(side)

	g.log.Infof("side %s connected from %s", side, r.RemoteAddr)

	if err = conn.WriteJSON(game.NewAssignPlayer(side)); err != nil {
		g.log.Error("write error: ", err)
		return
	}
	g.hub.Register(side, conn)
	defer g.hub.Unregister(side, conn)
	g.hub.Send(side, game.NewUpdate(g.processor.Snapshot()))

	ctx := r.Context()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.log.Error("read error: ", err)
			}
			g.log.Infof("side %s disconnected", side)
			return
		}

		msg, err := game.DecodeInbound(data)
		if err != nil {
			g.log.Debugf("malformed frame from side %s: %v", side, err)
			g.hub.Send(side, game.NewError(errs.Kind(err), err.Error()))
			continue
		}

		if _, err = g.processor.Submit(ctx, toCommand(side, msg)); err != nil {
			if !errors.Is(err, gameuc.ErrStopped) {
				g.log.Error("submit error: ", err)
			}
			return
		}
	}
}

// HandleState returns the last committed snapshot.
func (g *GameHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, g.processor.Snapshot())
}

func (g *GameHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Players: g.seats.Taken(),
	})
}

type HealthResponse struct {
	Status  string `json:"status"`
	Players int    `json:"players"`
}

func toCommand(side match.Side, msg game.InboundMessage) gameuc.Command {
	if msg.Type == game.MsgPlaceCharacter {
		return gameuc.PlaceCommand{
			Side: side,
			Kind: msg.Character,
			Row:  *msg.Row,
			Col:  *msg.Col,
		}
	}
	return gameuc.MoveCommand{
		Side:      side,
		Unit:      msg.Character,
		Direction: match.ParseDirection(msg.Move),
	}
}

func (g *GameHandler) Routes(r chi.Router) {
	r.Get("/ws", g.HandleConnect)
	r.Get("/state", g.HandleState)
	r.Get("/healthz", g.HandleHealth)
}
