package match

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"gridduel/internal/domain/match"
	errs "gridduel/internal/errors"
)

var ErrStopped = errors.New("command processor stopped")

// Broadcaster fans committed state out to the seated sides. Implementations
// must not block the processor for long.
type Broadcaster interface {
	BroadcastState(snap match.StateSnapshot)
	BroadcastStart()
	SendPlacement(side match.Side, roster []match.Unit)
	SendRejected(side match.Side, kind, message string)
}

// MatchStore archives committed commands. It is never read back into a live
// match.
type MatchStore interface {
	SaveSnapshot(ctx context.Context, snap match.StateSnapshot) error
	AppendEvent(ctx context.Context, e match.Event) error
}

type Option func(*Processor)

func WithInboxSize(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.inbox = make(chan request, n)
		}
	}
}

func WithArchiveBuffer(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.archive = make(chan archiveRecord, n)
		}
	}
}

func WithStore(store MatchStore) Option {
	return func(p *Processor) {
		p.store = store
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		p.now = now
	}
}

type request struct {
	cmd   Command
	reply chan Result
}

type archiveRecord struct {
	event    match.Event
	snapshot match.StateSnapshot
}

// Processor is the single owner of the Game. Commands from every connection
// go through its inbox and are applied one at a time to completion.
type Processor struct {
	game    *Game
	out     Broadcaster
	store   MatchStore
	log     *zap.SugaredLogger
	metrics *metrics
	now     func() time.Time

	inbox   chan request
	archive chan archiveRecord
	done    chan struct{}
	seq     int

	mu   sync.RWMutex
	last match.StateSnapshot
}

func NewProcessor(game *Game, out Broadcaster, log *zap.SugaredLogger, opts ...Option) (*Processor, error) {
	m, err := newMetrics()
	if err != nil {
		return nil, err
	}

	p := &Processor{
		game:    game,
		out:     out,
		log:     log,
		metrics: m,
		now:     time.Now,
		inbox:   make(chan request, 64),
		archive: make(chan archiveRecord, 256),
		done:    make(chan struct{}),
		last:    game.Snapshot(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run drains the inbox until ctx is done. Queued archive records are
// flushed before Run returns.
func (p *Processor) Run(ctx context.Context) {
	var wg sync.WaitGroup
	if p.store != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.archiveLoop()
		}()
	}

	defer func() {
		close(p.done)
		close(p.archive)
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case req := <-p.inbox:
			req.reply <- p.handle(ctx, req.cmd)
		}
	}
}

// Submit queues cmd and waits for its result. It fails with ErrStopped once
// Run has returned.
func (p *Processor) Submit(ctx context.Context, cmd Command) (Result, error) {
	req := request{cmd: cmd, reply: make(chan Result, 1)}
	select {
	case p.inbox <- req:
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-p.done:
		return Result{}, ErrStopped
	}

	select {
	case res := <-req.reply:
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-p.done:
		return Result{}, ErrStopped
	}
}

// Snapshot returns the state as of the last committed command.
func (p *Processor) Snapshot() match.StateSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last
}

func (p *Processor) handle(ctx context.Context, cmd Command) Result {
	res := p.game.Apply(cmd)
	if res.Err != nil {
		kind := errs.Kind(res.Err)
		p.metrics.rejection(ctx, cmd.Name(), kind)
		p.log.Infof("rejected %s from side %s: %v", cmd.Name(), cmd.Actor(), res.Err)
		p.out.SendRejected(cmd.Actor(), kind, res.Err.Error())
		return res
	}

	p.metrics.accepted(ctx, cmd.Name())

	p.mu.Lock()
	p.last = res.Snapshot
	p.mu.Unlock()

	if res.Placement != nil {
		p.log.Infof("side %s placed %s at (%d, %d)", cmd.Actor(), res.Placement.Unit.Name,
			res.Placement.Unit.Row, res.Placement.Unit.Col)
		p.out.SendPlacement(cmd.Actor(), res.Placement.Roster)
		if res.Placement.Started {
			p.log.Info("both sides ready, match started")
			p.out.BroadcastStart()
		}
	}
	if res.Move != nil {
		p.log.Infof("side %s moved %s %s from (%d, %d) to (%d, %d), captured %d",
			cmd.Actor(), res.Move.Unit.Name, res.Move.Direction,
			res.Move.From.Row, res.Move.From.Col, res.Move.To.Row, res.Move.To.Col, len(res.Move.Captured))
	}
	p.out.BroadcastState(res.Snapshot)

	p.enqueueArchive(cmd, res)
	return res
}

func (p *Processor) enqueueArchive(cmd Command, res Result) {
	if p.store == nil {
		return
	}

	p.seq++
	ev := match.Event{
		MatchID:   res.Snapshot.MatchID,
		Seq:       p.seq,
		Side:      cmd.Actor(),
		Command:   cmd.Name(),
		Phase:     res.Snapshot.Phase,
		CreatedAt: p.now(),
	}
	if res.Placement != nil {
		ev.Unit = res.Placement.Unit.Name
		ev.Kind = res.Placement.Unit.Kind
		ev.To = res.Placement.Unit.Position
	}
	if res.Move != nil {
		from := res.Move.From
		ev.Unit = res.Move.Unit.Name
		ev.Kind = res.Move.Unit.Kind
		ev.Direction = res.Move.Direction
		ev.From = &from
		ev.To = res.Move.To
		for _, c := range res.Move.Captured {
			ev.Captured = append(ev.Captured, c.Name)
		}
	}

	select {
	case p.archive <- archiveRecord{event: ev, snapshot: res.Snapshot}:
	default:
		p.metrics.dropped.Add(context.Background(), 1)
		p.log.Warnf("archive queue full, dropping event %d", ev.Seq)
	}
}

func (p *Processor) archiveLoop() {
	for rec := range p.archive {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := p.store.AppendEvent(ctx, rec.event); err != nil {
			p.log.Errorf("failed to archive event %d: %v", rec.event.Seq, err)
		}
		if err := p.store.SaveSnapshot(ctx, rec.snapshot); err != nil {
			p.log.Errorf("failed to save snapshot after event %d: %v", rec.event.Seq, err)
		}
		cancel()
	}
}
