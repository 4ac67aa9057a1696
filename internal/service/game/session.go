package game

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/iamasit07/connect4-hotseat/internal/domain"
	"github.com/iamasit07/connect4-hotseat/internal/render"
)

// frontEnd is one attached view of a session, e.g. a browser tab.
type frontEnd struct {
	renderer render.Renderer
	notifier render.Notifier
}

// Session owns one game from page load to page load. Every click goes
// through HandleColumnClick, which is the only path that mutates the board.
type Session struct {
	ID         string
	Game       *domain.Game
	CreatedAt  time.Time
	FinishedAt time.Time

	// read by the cleanup sweep without taking mu
	lastActive atomic.Int64
	attached   atomic.Bool

	frontEnds []frontEnd
	mu        sync.Mutex
}

// State is a read-only copy of a session for transport.
type State struct {
	SessionID     string        `json:"sessionId"`
	Board         [][]int       `json:"board"`
	CurrentPlayer int           `json:"currentPlayer"`
	Status        string        `json:"status"`
	Winner        int           `json:"winner,omitempty"`
	WinningLine   []domain.Cell `json:"winningLine,omitempty"`
	Message       string        `json:"message,omitempty"`
	Moves         []domain.Move `json:"moves"`
	MoveCount     int           `json:"moveCount"`
}

func NewSession(id string) *Session {
	now := time.Now()
	s := &Session{
		ID:        id,
		Game:      domain.NewGame(),
		CreatedAt: now,
	}
	s.touch(now)
	return s
}

func (s *Session) touch(now time.Time) {
	s.lastActive.Store(now.UnixNano())
}

// Attach adds a front end that mirrors this session. Every attached front
// end sees every move, so two tabs on the same game stay in sync.
// Attaching the same renderer twice replaces its notifier.
func (s *Session) Attach(r render.Renderer, n render.Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch(time.Now())
	s.attached.Store(true)

	for i := range s.frontEnds {
		if s.frontEnds[i].renderer == r {
			s.frontEnds[i].notifier = n
			return
		}
	}
	s.frontEnds = append(s.frontEnds, frontEnd{renderer: r, notifier: n})
}

// Detach drops the front end that renders through r, if attached.
func (s *Session) Detach(r render.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.frontEnds {
		if s.frontEnds[i].renderer == r {
			s.frontEnds = append(s.frontEnds[:i], s.frontEnds[i+1:]...)
			return
		}
	}
}

// FrontEnds reports how many views are attached right now.
func (s *Session) FrontEnds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frontEnds)
}

// HandleColumnClick plays the current player's disk into column. Clicks on
// full or unknown columns are dropped and report placed == false with a nil
// error. Once the game is over every click fails with domain.ErrGameOver.
func (s *Session) HandleColumnClick(column int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch(time.Now())

	move, err := s.Game.MakeMove(column)
	if err != nil {
		if domain.IsIgnorable(err) {
			return false, nil
		}
		return false, err
	}

	for _, fe := range s.frontEnds {
		if err := fe.renderer.PlacePiece(move); err != nil {
			log.Printf("[SESSION] %s: render failed: %v", s.ID, err)
		}
	}

	if s.Game.IsFinished() {
		s.FinishedAt = time.Now()
		log.Printf("[SESSION] %s finished after %d moves: %s", s.ID, s.Game.MoveCount, s.Game.OutcomeMessage())

		outcome := render.OutcomeOf(s.Game)
		for _, fe := range s.frontEnds {
			if fe.notifier == nil {
				continue
			}
			if err := fe.notifier.EndGame(outcome); err != nil {
				log.Printf("[SESSION] %s: end game notification failed: %v", s.ID, err)
			}
		}
	}

	return true, nil
}

func (s *Session) IsFinished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.IsFinished()
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	moves := make([]domain.Move, len(s.Game.Moves))
	copy(moves, s.Game.Moves)

	return State{
		SessionID:     s.ID,
		Board:         s.Game.Board.Snapshot(),
		CurrentPlayer: int(s.Game.CurrentPlayer),
		Status:        string(s.Game.Status),
		Winner:        int(s.Game.Winner),
		WinningLine:   s.Game.WinningLine,
		Message:       s.Game.OutcomeMessage(),
		Moves:         moves,
		MoveCount:     s.Game.MoveCount,
	}
}

// idleSince reports how long the session has gone without a click or
// attach. It never blocks on a click in progress.
func (s *Session) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, s.lastActive.Load()))
}

// everAttached is false for page loads whose websocket never connected.
func (s *Session) everAttached() bool {
	return s.attached.Load()
}

// IsGameOver is a helper for transports deciding how to answer a failed click.
func IsGameOver(err error) bool {
	return errors.Is(err, domain.ErrGameOver)
}
