package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/apperror"
	"github.com/AbdulkadirSalihuAbdulhamid/distributed-two-player-battleship/internal/entity"
)

// Store maps a room to its live match. Implementations must guarantee that
// CreateIfAbsent creates exactly one session per room even under races.
type Store interface {
	CreateIfAbsent(roomID, player1ID, player2ID string) (*Session, bool)
	Get(roomID string) (*Session, error)
	Delete(roomID string)
}

// Session owns one room's match and its mutual-exclusion domain. Operations
// on the same room serialize; distinct rooms do not contend.
type Session struct {
	mu    sync.Mutex
	match *entity.Match
}

// Do runs fn with exclusive access to the match. fn must not block: no
// network calls, no broadcasts, no collaborator lookups.
func (that *Session) Do(fn func(match *entity.Match) error) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return fn(that.match)
}

// Snapshot returns a copy of the match taken under the session lock.
func (that *Session) Snapshot() entity.Match {
	that.mu.Lock()
	defer that.mu.Unlock()

	return *that.match
}

var _ Store = (*MemoryStore)(nil)

type MemoryStore struct {
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	finishedTTL time.Duration
}

func NewMemoryStore(logger *slog.Logger, finishedTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		logger:      logger.With("component", "session-store"),
		sessions:    make(map[string]*Session),
		finishedTTL: finishedTTL,
	}
}

func (that *MemoryStore) CreateIfAbsent(roomID, player1ID, player2ID string) (*Session, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if existing, ok := that.sessions[roomID]; ok {
		return existing, false
	}

	created := &Session{match: entity.NewMatch(roomID, player1ID, player2ID)}
	that.sessions[roomID] = created

	return created, true
}

func (that *MemoryStore) Get(roomID string) (*Session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	existing, ok := that.sessions[roomID]
	if !ok {
		return nil, apperror.ErrMatchNotFound
	}

	return existing, nil
}

func (that *MemoryStore) Delete(roomID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.sessions, roomID)
}

// RunJanitor evicts finished matches once they are older than the configured
// TTL. Blocks until ctx is canceled.
func (that *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			that.evictExpired(now)
		}
	}
}

func (that *MemoryStore) evictExpired(now time.Time) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for roomID, sess := range that.sessions {
		sess.mu.Lock()
		expired := sess.match.IsFinished() && now.Sub(sess.match.FinishedAt) >= that.finishedTTL
		sess.mu.Unlock()

		if expired {
			delete(that.sessions, roomID)
			that.logger.Info("evicted finished match", "roomID", roomID)
		}
	}
}
