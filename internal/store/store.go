// internal/store/store.go
package store

import (
	"sync"

	"github.com/blendsoft/pos-terminal/internal/models"
)

// Snapshot is a point-in-time copy of every collection, safe to hand to
// subscribers and views.
type Snapshot struct {
	Products  []models.Product  `json:"productos"`
	Providers []models.Provider `json:"proveedores"`
	Users     []models.User     `json:"usuarios"`
	Sales     []models.Sale     `json:"ventas"`
}

// Store is the in-memory mirror of the remote collections. It is constructed
// once at startup and shared by reference; there are no hidden singletons.
// Every mutator runs to completion under the lock and then notifies
// subscribers with a fresh snapshot after the lock is released, so a
// subscriber may read the Store from its callback. Mutators serialize on the
// lock; notifications from a single goroutine arrive in mutation order.
type Store struct {
	mtx       sync.Mutex
	products  *collection[int, models.Product]
	providers *collection[int, models.Provider]
	users     *collection[int, models.User]
	sales     *collection[int, models.Sale]
	subs      map[int]func(Snapshot)
	nextSub   int
}

func New() *Store {
	return &Store{
		products:  newCollection(func(p models.Product) int { return p.ID }),
		providers: newCollection(func(p models.Provider) int { return p.ID }),
		users:     newCollection(func(u models.User) int { return u.Document }),
		sales:     newCollection(func(s models.Sale) int { return s.ID }),
		subs:      make(map[int]func(Snapshot)),
	}
}

// Subscribe registers fn to receive a snapshot after every mutation. The
// returned function cancels the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mtx.Lock()
		defer s.mtx.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Products:  s.products.list(),
		Providers: s.providers.list(),
		Users:     s.users.list(),
		Sales:     s.sales.list(),
	}
}

// mutate runs fn under the lock, captures the snapshot and the subscriber
// list, then invokes the callbacks with the lock released.
func (s *Store) mutate(fn func()) {
	s.mtx.Lock()

	fn()

	if len(s.subs) == 0 {
		s.mtx.Unlock()
		return
	}
	snap := s.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mtx.Unlock()

	for _, sub := range subs {
		sub(snap)
	}
}

// Products

func (s *Store) Products() []models.Product {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.products.list()
}

func (s *Store) Product(id int) (models.Product, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.products.get(id)
}

// UpsertProduct inserts or replaces; applying the same value twice leaves
// the collection unchanged after the second call.
func (s *Store) UpsertProduct(p models.Product) {
	s.mutate(func() { s.products.upsert(p) })
}

// RemoveProduct on an absent key is a no-op, not an error.
func (s *Store) RemoveProduct(id int) {
	s.mutate(func() { s.products.remove(id) })
}

func (s *Store) ReplaceProducts(list []models.Product) {
	s.mutate(func() { s.products.replaceAll(list) })
}

// Providers

func (s *Store) Providers() []models.Provider {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.providers.list()
}

func (s *Store) Provider(id int) (models.Provider, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.providers.get(id)
}

func (s *Store) UpsertProvider(p models.Provider) {
	s.mutate(func() { s.providers.upsert(p) })
}

func (s *Store) RemoveProvider(id int) {
	s.mutate(func() { s.providers.remove(id) })
}

func (s *Store) ReplaceProviders(list []models.Provider) {
	s.mutate(func() { s.providers.replaceAll(list) })
}

// Users

func (s *Store) Users() []models.User {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.users.list()
}

func (s *Store) User(document int) (models.User, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.users.get(document)
}

func (s *Store) UpsertUser(u models.User) {
	s.mutate(func() { s.users.upsert(u) })
}

func (s *Store) RemoveUser(document int) {
	s.mutate(func() { s.users.remove(document) })
}

func (s *Store) ReplaceUsers(list []models.User) {
	s.mutate(func() { s.users.replaceAll(list) })
}

// Sales
//
// Sales are never mutated or deleted through this core; deleting other
// entities has no cascading effect here because sale lines are snapshots,
// not live references.

func (s *Store) Sales() []models.Sale {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.sales.list()
}

func (s *Store) Sale(id int) (models.Sale, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.sales.get(id)
}

func (s *Store) UpsertSale(sale models.Sale) {
	s.mutate(func() { s.sales.upsert(sale) })
}

func (s *Store) ReplaceSales(list []models.Sale) {
	s.mutate(func() { s.sales.replaceAll(list) })
}
