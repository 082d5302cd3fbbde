// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/Ekkarat1988/airswap-protocols/intent"

	"github.com/bitmark-inc/logger"
)

// key prefixes, one per pool
const (
	prefixPairs     = 'P'
	prefixIntents   = 'I'
	prefixBlacklist = 'B'
	prefixState     = 'S'
)

// state pool keys
var (
	modeKey     = []byte("mode")
	sequenceKey = []byte("sequence")
)

// StoredIntent - one persisted intent row
//
// Seq preserves insertion recency so equal stake ordering survives a
// restart.
type StoredIntent struct {
	Pair    intent.PairKey
	Owner   common.Address
	Stake   uint64
	Seq     uint64
	Locator intent.Locator
}

// Snapshot - everything needed to rebuild a registry
//
// Intents are sorted for direct re-insertion: stake descending, then
// sequence ascending within equal stakes.
type Snapshot struct {
	Pairs      []intent.PairKey
	Intents    []StoredIntent
	Blacklist  []common.Address
	Paused     bool
	Terminated bool
	Sequence   uint64
}

// Store - the write-through interface consumed by the registry
//
// A nil Store leaves the registry memory only.
type Store interface {
	SavePair(pair intent.PairKey)
	SaveIntent(record StoredIntent)
	DeleteIntent(pair intent.PairKey, owner common.Address)
	SetBlacklist(token common.Address, blacklisted bool)
	SaveMode(paused bool, terminated bool)
	SaveSequence(seq uint64)
}

// PoolStore - LevelDB backed Store
type PoolStore struct {
	sync.Mutex
	log *logger.L
	db  *leveldb.DB
}

// Open - open or create the database
func Open(path string, log *logger.L) (*PoolStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if nil != err {
		return nil, err
	}
	return &PoolStore{
		log: log,
		db:  db,
	}, nil
}

// Close - release the database
func (s *PoolStore) Close() error {
	s.Lock()
	defer s.Unlock()
	return s.db.Close()
}

// prepend a pool prefix onto a key
func prefixKey(prefix byte, key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = prefix
	return append(prefixedKey, key...)
}

func intentKey(pair intent.PairKey, owner common.Address) []byte {
	key := make([]byte, 0, 60)
	key = append(key, pair.Bytes()...)
	key = append(key, owner.Bytes()...)
	return key
}

// write a key/value pair, panic on database failure as the registry
// and database must not diverge
func (s *PoolStore) put(prefix byte, key []byte, value []byte) {
	s.Lock()
	defer s.Unlock()
	err := s.db.Put(prefixKey(prefix, key), value, nil)
	logger.PanicIfError("storage.put", err)
}

func (s *PoolStore) delete(prefix byte, key []byte) {
	s.Lock()
	defer s.Unlock()
	err := s.db.Delete(prefixKey(prefix, key), nil)
	logger.PanicIfError("storage.delete", err)
}

// SavePair - record a created pair
func (s *PoolStore) SavePair(pair intent.PairKey) {
	s.put(prefixPairs, pair.Bytes(), []byte{0x01})
}

// SaveIntent - record or replace an intent row
func (s *PoolStore) SaveIntent(record StoredIntent) {
	value := make([]byte, 16, 16+intent.LocatorLength)
	binary.BigEndian.PutUint64(value[0:8], record.Stake)
	binary.BigEndian.PutUint64(value[8:16], record.Seq)
	value = append(value, record.Locator.Bytes()...)

	s.put(prefixIntents, intentKey(record.Pair, record.Owner), value)
}

// DeleteIntent - drop an intent row
func (s *PoolStore) DeleteIntent(pair intent.PairKey, owner common.Address) {
	s.delete(prefixIntents, intentKey(pair, owner))
}

// SetBlacklist - record or clear blacklist membership
func (s *PoolStore) SetBlacklist(token common.Address, blacklisted bool) {
	if blacklisted {
		s.put(prefixBlacklist, token.Bytes(), []byte{0x01})
	} else {
		s.delete(prefixBlacklist, token.Bytes())
	}
}

// SaveMode - record the pause/terminated flags
func (s *PoolStore) SaveMode(paused bool, terminated bool) {
	value := []byte{0x00, 0x00}
	if paused {
		value[0] = 0x01
	}
	if terminated {
		value[1] = 0x01
	}
	s.put(prefixState, modeKey, value)
}

// SaveSequence - record the insertion sequence counter
func (s *PoolStore) SaveSequence(seq uint64) {
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, seq)
	s.put(prefixState, sequenceKey, value)
}

// Load - read the whole database back into a Snapshot
func (s *PoolStore) Load() (*Snapshot, error) {
	s.Lock()
	defer s.Unlock()

	snapshot := &Snapshot{}

	err := s.scan(prefixPairs, func(key []byte, value []byte) error {
		pair, err := intent.PairKeyFromBytes(key)
		if nil != err {
			return err
		}
		snapshot.Pairs = append(snapshot.Pairs, pair)
		return nil
	})
	if nil != err {
		return nil, err
	}

	maximumSeq := uint64(0)
	err = s.scan(prefixIntents, func(key []byte, value []byte) error {
		pair, err := intent.PairKeyFromBytes(key[:2*common.AddressLength])
		if nil != err {
			return err
		}
		record := StoredIntent{
			Pair:  pair,
			Owner: common.BytesToAddress(key[2*common.AddressLength:]),
			Stake: binary.BigEndian.Uint64(value[0:8]),
			Seq:   binary.BigEndian.Uint64(value[8:16]),
		}
		copy(record.Locator[:], value[16:])
		if record.Seq > maximumSeq {
			maximumSeq = record.Seq
		}
		snapshot.Intents = append(snapshot.Intents, record)
		return nil
	})
	if nil != err {
		return nil, err
	}

	err = s.scan(prefixBlacklist, func(key []byte, value []byte) error {
		snapshot.Blacklist = append(snapshot.Blacklist, common.BytesToAddress(key))
		return nil
	})
	if nil != err {
		return nil, err
	}

	if value, err := s.db.Get(prefixKey(prefixState, modeKey), nil); nil == err {
		snapshot.Paused = 0x01 == value[0]
		snapshot.Terminated = 0x01 == value[1]
	} else if leveldb.ErrNotFound != err {
		return nil, err
	}

	if value, err := s.db.Get(prefixKey(prefixState, sequenceKey), nil); nil == err {
		snapshot.Sequence = binary.BigEndian.Uint64(value)
	} else if leveldb.ErrNotFound != err {
		return nil, err
	}

	// counter writes from different pairs are not ordered, so the
	// stored counter can lag an intent row; the rows are authoritative
	if maximumSeq > snapshot.Sequence {
		snapshot.Sequence = maximumSeq
	}

	// re-insertion order: stake descending, recency ascending
	sort.Slice(snapshot.Intents, func(i int, j int) bool {
		if snapshot.Intents[i].Stake != snapshot.Intents[j].Stake {
			return snapshot.Intents[i].Stake > snapshot.Intents[j].Stake
		}
		return snapshot.Intents[i].Seq < snapshot.Intents[j].Seq
	})

	return snapshot, nil
}

// internal: caller holds the lock; key passed to fn has the pool
// prefix stripped
func (s *PoolStore) scan(prefix byte, fn func(key []byte, value []byte) error) error {
	iter := s.db.NewIterator(ldb_util.BytesPrefix([]byte{prefix}), nil)
	defer iter.Release()

	for iter.Next() {
		key := make([]byte, len(iter.Key())-1)
		copy(key, iter.Key()[1:])
		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())
		if err := fn(key, value); nil != err {
			return err
		}
	}
	return iter.Error()
}
