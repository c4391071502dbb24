// Package store holds the in-memory collections backing the UI. Stores load
// eagerly on construction and write the full collection back through the
// storage provider after every mutation. A failed save is logged and otherwise
// ignored: the in-memory state stays authoritative for the session.
package store

import (
	"github.com/mitchellh/hashstructure/v2"

	"github.com/julianstephens/crema/internal/constants"
	"github.com/julianstephens/crema/internal/logger"
	"github.com/julianstephens/crema/internal/models"
	"github.com/julianstephens/crema/internal/storage"
)

// BeanStore is the ordered collection of recorded beans, in add order.
type BeanStore struct {
	provider storage.Provider
	beans    []models.Bean
	subs     []func()
	lastHash uint64
}

// NewBeanStore loads the persisted beans from the provider.
func NewBeanStore(p storage.Provider) *BeanStore {
	s := &BeanStore{
		provider: p,
		beans:    storage.LoadRecords[models.Bean](p, constants.BeansKey),
	}
	s.lastHash = collectionHash(s.beans)
	return s
}

// Add appends a bean and persists the collection.
func (s *BeanStore) Add(bean models.Bean) {
	s.beans = append(s.beans, bean)
	s.persist()
	s.notify()
}

// Delete removes the bean with the given id and persists. Deleting an unknown
// id is a no-op. Shots keep their embedded bean copy regardless.
func (s *BeanStore) Delete(id string) {
	for i, bean := range s.beans {
		if bean.ID == id {
			s.beans = append(s.beans[:i], s.beans[i+1:]...)
			s.persist()
			s.notify()
			return
		}
	}
}

// All returns a snapshot of the collection in add order.
func (s *BeanStore) All() []models.Bean {
	out := make([]models.Bean, len(s.beans))
	copy(out, s.beans)
	return out
}

// Get returns the bean with the given id.
func (s *BeanStore) Get(id string) (models.Bean, bool) {
	for _, bean := range s.beans {
		if bean.ID == id {
			return bean, true
		}
	}
	return models.Bean{}, false
}

// Len returns the number of recorded beans.
func (s *BeanStore) Len() int {
	return len(s.beans)
}

// Subscribe registers a callback invoked after every mutation.
func (s *BeanStore) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

func (s *BeanStore) notify() {
	for _, fn := range s.subs {
		fn()
	}
}

func (s *BeanStore) persist() {
	hash := collectionHash(s.beans)
	if hash != 0 && hash == s.lastHash {
		return
	}

	if err := storage.SaveRecords(s.provider, constants.BeansKey, s.beans); err != nil {
		logger.Warn("failed to persist beans", "error", err)
		return
	}
	s.lastHash = hash
}

// collectionHash fingerprints a collection so unchanged collections skip the
// disk write. A hash of 0 signals failure and disables the skip.
func collectionHash(v any) uint64 {
	hash, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}
	return hash
}
