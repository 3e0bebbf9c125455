package drawing

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
)

const defaultShardCount = 16

// shardedTable is an attribute table keyed by entity id, split across
// independently-locked shards so heavy attribute churn on disjoint entities
// doesn't contend on one mutex.
type shardedTable[T any] struct {
	shards []tableShard[T]
}

type tableShard[T any] struct {
	mx     sync.RWMutex
	values map[EntityID]T
}

func newShardedTable[T any](shardCount int) *shardedTable[T] {
	if shardCount <= 0 {
		shardCount = defaultShardCount
	}
	t := &shardedTable[T]{shards: make([]tableShard[T], shardCount)}
	for i := range t.shards {
		t.shards[i].values = make(map[EntityID]T)
	}
	return t
}

func (t *shardedTable[T]) shard(id EntityID) *tableShard[T] {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], uint64(id))
	return &t.shards[xxhash.Sum64(key[:])%uint64(len(t.shards))]
}

func (t *shardedTable[T]) Get(id EntityID) (T, bool) {
	sh := t.shard(id)
	sh.mx.RLock()
	defer sh.mx.RUnlock()

	value, ok := sh.values[id]
	return value, ok
}

func (t *shardedTable[T]) Contains(id EntityID) bool {
	_, ok := t.Get(id)
	return ok
}

func (t *shardedTable[T]) Set(id EntityID, value T) {
	sh := t.shard(id)
	sh.mx.Lock()
	defer sh.mx.Unlock()

	sh.values[id] = value
}

// Delete removes the entry for id, reporting whether one existed.
func (t *shardedTable[T]) Delete(id EntityID) bool {
	sh := t.shard(id)
	sh.mx.Lock()
	defer sh.mx.Unlock()

	_, ok := sh.values[id]
	delete(sh.values, id)
	return ok
}

// Each visits every entry. Returning false stops the walk. Visit order is
// unspecified.
func (t *shardedTable[T]) Each(visit func(EntityID, T) bool) {
	for i := range t.shards {
		sh := &t.shards[i]
		sh.mx.RLock()
		for id, value := range sh.values {
			if !visit(id, value) {
				sh.mx.RUnlock()
				return
			}
		}
		sh.mx.RUnlock()
	}
}

func (t *shardedTable[T]) Len() int {
	total := 0
	for i := range t.shards {
		sh := &t.shards[i]
		sh.mx.RLock()
		total += len(sh.values)
		sh.mx.RUnlock()
	}
	return total
}
