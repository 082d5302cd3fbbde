// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package registry - pair lifecycle and the composition of ledger and
// index
//
// The registry owns every pair index and the stake ledger.  Each
// mutating operation runs the same gauntlet: operating mode, pair
// existence, blacklist; then the pair's mutation lock is taken and the
// custody adjustment is made before the index is touched, so a reader
// can never observe an entry whose bond is not actually in custody.
//
// Operations on different pairs do not contend.  Pausing and the
// terminal sweep take the operation gate exclusively; every mutating
// path, pair creation and blacklist edits included, holds it shared,
// which makes the mode flips linearizable against in-flight mutations.
package registry

import (
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Ekkarat1988/airswap-protocols/custody"
	"github.com/Ekkarat1988/airswap-protocols/fault"
	"github.com/Ekkarat1988/airswap-protocols/intent"
	"github.com/Ekkarat1988/airswap-protocols/messagebus"
	"github.com/Ekkarat1988/airswap-protocols/mode"
	"github.com/Ekkarat1988/airswap-protocols/pairindex"
	"github.com/Ekkarat1988/airswap-protocols/stakeledger"
	"github.com/Ekkarat1988/airswap-protocols/storage"

	"github.com/bitmark-inc/logger"
)

// Administrator - authorises privileged callers
type Administrator interface {
	IsAuthorised(caller common.Address) bool
}

// AdministratorFunc - adapter to use a plain function
type AdministratorFunc func(caller common.Address) bool

func (f AdministratorFunc) IsAuthorised(caller common.Address) bool {
	return f(caller)
}

// Single - an administrator consisting of one fixed address
func Single(administrator common.Address) Administrator {
	return AdministratorFunc(func(caller common.Address) bool {
		return caller == administrator
	})
}

// one pair's index and the mutex spanning its ledger rows and index
// entries as a single consistency domain
type pairEntry struct {
	sync.Mutex
	index *pairindex.Index
}

// Registry - the stake ordered intent registry
type Registry struct {
	sync.RWMutex // guards pairs and blacklist

	log       *logger.L
	machine   *mode.Machine
	custodian custody.Custodian
	admin     Administrator
	bus       *messagebus.Bus
	store     storage.Store // nil for memory only
	ledger    *stakeledger.Ledger

	opGate    sync.RWMutex // shared by all mutations, exclusive for pause/terminate
	sequence  uint64       // insertion recency, persisted with each intent
	pairs     map[intent.PairKey]*pairEntry
	blacklist map[common.Address]struct{}
}

// New - create an empty registry
//
// store may be nil, in which case nothing is persisted.
func New(log *logger.L, custodian custody.Custodian, admin Administrator, bus *messagebus.Bus, store storage.Store) *Registry {
	return &Registry{
		log:       log,
		machine:   mode.NewMachine(log),
		custodian: custodian,
		admin:     admin,
		bus:       bus,
		store:     store,
		ledger:    stakeledger.New(log, custodian),
		pairs:     make(map[intent.PairKey]*pairEntry),
		blacklist: make(map[common.Address]struct{}),
	}
}

// Restore - rebuild state from a storage snapshot
//
// No custody calls are made and no events are emitted: custody already
// holds the restored bonds and the events were emitted in the run that
// recorded them.  Snapshot intents must be ordered stake descending,
// sequence ascending, which is what storage.Load produces.
func (r *Registry) Restore(snapshot *storage.Snapshot) {
	r.Lock()
	defer r.Unlock()

	for _, pair := range snapshot.Pairs {
		if _, ok := r.pairs[pair]; !ok {
			r.pairs[pair] = &pairEntry{index: pairindex.New()}
		}
	}

	for _, record := range snapshot.Intents {
		entry, ok := r.pairs[record.Pair]
		if !ok {
			r.log.Errorf("restore: intent on unknown pair %s dropped", record.Pair)
			continue
		}
		_, _ = entry.index.Set(record.Owner, record.Stake, record.Locator)
		r.ledger.Restore(record.Owner, record.Pair, record.Stake)
	}

	for _, token := range snapshot.Blacklist {
		r.blacklist[token] = struct{}{}
	}

	atomic.StoreUint64(&r.sequence, snapshot.Sequence)

	if snapshot.Terminated {
		r.machine.Set(mode.Terminated)
	} else if snapshot.Paused {
		r.machine.Set(mode.Paused)
	}

	r.log.Infof("restore: %d pairs, %d intents, %d blacklisted, mode %s",
		len(snapshot.Pairs), len(snapshot.Intents), len(snapshot.Blacklist), r.machine)
}

// gate for mutating operations, re-checked on every call
func (r *Registry) mutationGate() error {
	switch {
	case r.machine.Is(mode.Terminated):
		return fault.ErrTerminated
	case r.machine.Is(mode.Paused):
		return fault.ErrPaused
	default:
		return nil
	}
}

// CreatePair - register a directional pair index
//
// Idempotent: a duplicate is a no-op signalled by created == false,
// with no event.  Blacklist membership is deliberately not checked, an
// index for a later blacklisted token merely becomes hidden.
func (r *Registry) CreatePair(signerToken common.Address, senderToken common.Address) (bool, error) {
	r.opGate.RLock()
	defer r.opGate.RUnlock()

	if err := r.mutationGate(); nil != err {
		return false, err
	}

	pair := intent.PairKey{SignerToken: signerToken, SenderToken: senderToken}

	r.Lock()
	if _, ok := r.pairs[pair]; ok {
		r.Unlock()
		return false, nil
	}
	r.pairs[pair] = &pairEntry{index: pairindex.New()}
	r.Unlock()

	if nil != r.store {
		r.store.SavePair(pair)
	}
	r.bus.Send(messagebus.PairCreated{Pair: pair})
	r.log.Infof("create pair: %s", pair)
	return true, nil
}

// HasPair - true once the exact directional pair has been created,
// always answerable regardless of mode
func (r *Registry) HasPair(pair intent.PairKey) bool {
	r.RLock()
	defer r.RUnlock()
	_, ok := r.pairs[pair]
	return ok
}

func (r *Registry) pairEntry(pair intent.PairKey) (*pairEntry, error) {
	r.RLock()
	defer r.RUnlock()

	entry, ok := r.pairs[pair]
	if !ok {
		return nil, fault.ErrIndexNotFound
	}
	return entry, nil
}

// IsBlacklisted - membership test for a single token
func (r *Registry) IsBlacklisted(token common.Address) bool {
	r.RLock()
	defer r.RUnlock()
	_, ok := r.blacklist[token]
	return ok
}

// a pair is hidden if either of its tokens is blacklisted
func (r *Registry) pairBlacklisted(pair intent.PairKey) bool {
	r.RLock()
	defer r.RUnlock()

	if _, ok := r.blacklist[pair.SignerToken]; ok {
		return true
	}
	_, ok := r.blacklist[pair.SenderToken]
	return ok
}

// RegisterIntent - set or update an owner's intent on a pair
//
// The bond adjustment must clear custody before the index changes;
// a refused transfer leaves ledger and index exactly as they were.
func (r *Registry) RegisterIntent(pair intent.PairKey, owner common.Address, stake uint64, locator intent.Locator) error {
	r.opGate.RLock()
	defer r.opGate.RUnlock()

	if err := r.mutationGate(); nil != err {
		return err
	}

	entry, err := r.pairEntry(pair)
	if nil != err {
		return err
	}

	if r.pairBlacklisted(pair) {
		return fault.ErrPairIsBlacklisted
	}

	entry.Lock()
	defer entry.Unlock()

	priorStake, err := r.ledger.AdjustStake(owner, pair, stake)
	if nil != err {
		return err
	}

	_, _ = entry.index.Set(owner, stake, locator)

	seq := atomic.AddUint64(&r.sequence, 1)
	if nil != r.store {
		r.store.SaveIntent(storage.StoredIntent{
			Pair:    pair,
			Owner:   owner,
			Stake:   stake,
			Seq:     seq,
			Locator: locator,
		})
		r.store.SaveSequence(seq)
	}

	r.bus.Send(messagebus.IntentRegistered{
		Pair:       pair,
		Owner:      owner,
		Stake:      stake,
		PriorStake: priorStake,
	})
	r.log.Infof("register: %s on %s stake %d (prior %d)", owner.Hex(), pair, stake, priorStake)
	return nil
}

// UnregisterIntent - remove an owner's intent and refund the bond
//
// Blacklist status never blocks an exit.  Custody confirms the refund
// before the entry goes, so a failed refund leaves the entry in place
// to be retried.
func (r *Registry) UnregisterIntent(pair intent.PairKey, owner common.Address) error {
	r.opGate.RLock()
	defer r.opGate.RUnlock()

	if err := r.mutationGate(); nil != err {
		return err
	}

	entry, err := r.pairEntry(pair)
	if nil != err {
		return err
	}

	entry.Lock()
	defer entry.Unlock()

	if !entry.index.Has(owner) {
		return fault.ErrEntryNotFound
	}

	refunded, err := r.ledger.ReleaseAll(owner, pair)
	if nil != err {
		return err
	}

	_, _ = entry.index.Remove(owner)

	if nil != r.store {
		r.store.DeleteIntent(pair, owner)
	}

	r.bus.Send(messagebus.IntentUnregistered{
		Pair:     pair,
		Owner:    owner,
		Refunded: refunded,
	})
	r.log.Infof("unregister: %s on %s refunded %d", owner.Hex(), pair, refunded)
	return nil
}

// ForceUnregister - administrator removal of another owner's intent
//
// Same semantics as UnregisterIntent, the bond is refunded to its
// owner, never to the administrator.
func (r *Registry) ForceUnregister(caller common.Address, pair intent.PairKey, target common.Address) error {
	if !r.admin.IsAuthorised(caller) {
		return fault.ErrNotAuthorised
	}
	return r.UnregisterIntent(pair, target)
}

// QueryLocators - stake ordered page of entries for a pair
//
// A blacklisted pair answers with an empty page rather than an error:
// hidden, not destroyed.  count entries are always returned for a
// visible pair, padded with zero entries, so callers need no separate
// "has more" signal.
func (r *Registry) QueryLocators(pair intent.PairKey, start *common.Address, count int) ([]intent.Entry, error) {
	if r.machine.Is(mode.Terminated) {
		return nil, fault.ErrTerminated
	}

	entry, err := r.pairEntry(pair)
	if nil != err {
		return []intent.Entry{}, err
	}

	if r.pairBlacklisted(pair) {
		return []intent.Entry{}, nil
	}

	return entry.index.Page(start, count), nil
}

// StakeOf - the amount escrowed for an owner on a pair
//
// A pure read: not gated by pause or blacklist, and still answerable
// after termination as the historical record of the swept ledger.
func (r *Registry) StakeOf(owner common.Address, pair intent.PairKey) uint64 {
	return r.ledger.StakeOf(owner, pair)
}

// Paused - the pause flag, always readable
func (r *Registry) Paused() bool {
	return r.machine.Is(mode.Paused)
}

// Terminated - the terminal flag, always readable
func (r *Registry) Terminated() bool {
	return r.machine.Is(mode.Terminated)
}
