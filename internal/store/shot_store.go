package store

import (
	"github.com/julianstephens/crema/internal/constants"
	"github.com/julianstephens/crema/internal/logger"
	"github.com/julianstephens/crema/internal/models"
	"github.com/julianstephens/crema/internal/storage"
)

// ShotStore is the ordered collection of recorded shots, most recent first.
// Shots are never updated or deleted.
type ShotStore struct {
	provider storage.Provider
	shots    []models.Shot
	subs     []func()
	lastHash uint64
}

// NewShotStore loads the persisted shots from the provider.
func NewShotStore(p storage.Provider) *ShotStore {
	s := &ShotStore{
		provider: p,
		shots:    storage.LoadRecords[models.Shot](p, constants.ShotsKey),
	}
	s.lastHash = collectionHash(s.shots)
	return s
}

// Record inserts a shot at the front and persists the collection.
func (s *ShotStore) Record(shot models.Shot) {
	s.shots = append([]models.Shot{shot}, s.shots...)
	s.persist()
	s.notify()
}

// Recent returns the newest n shots, fewer if the collection is smaller.
func (s *ShotStore) Recent(n int) []models.Shot {
	if n > len(s.shots) {
		n = len(s.shots)
	}
	if n < 0 {
		n = 0
	}
	out := make([]models.Shot, n)
	copy(out, s.shots[:n])
	return out
}

// All returns a snapshot of the collection, most recent first.
func (s *ShotStore) All() []models.Shot {
	out := make([]models.Shot, len(s.shots))
	copy(out, s.shots)
	return out
}

// Len returns the number of recorded shots.
func (s *ShotStore) Len() int {
	return len(s.shots)
}

// Subscribe registers a callback invoked after every mutation.
func (s *ShotStore) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

func (s *ShotStore) notify() {
	for _, fn := range s.subs {
		fn()
	}
}

func (s *ShotStore) persist() {
	hash := collectionHash(s.shots)
	if hash != 0 && hash == s.lastHash {
		return
	}

	if err := storage.SaveRecords(s.provider, constants.ShotsKey, s.shots); err != nil {
		logger.Warn("failed to persist shots", "error", err)
		return
	}
	s.lastHash = hash
}
