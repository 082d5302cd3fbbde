// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package pairindex - the stake ordered intent collection for one
// directional token pair
//
// Entries are held in descending stake order.  Equal stakes are
// resolved by recency: an entry is placed after all existing entries
// of the same stake, so earlier stakers keep their position.  An
// updated entry is removed and re-inserted, which means it goes to the
// back of the run of its new stake value.
//
// An owner address appears at most once.  A side map from owner to
// slice position gives O(1) existence checks and page anchoring; the
// per pair population is expected to stay small so the linear cost of
// keeping positions current on insert and remove is acceptable.
//
// Note: an individual Index is safe for concurrent use, all access is
// through its read/write mutex.
package pairindex

import (
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Ekkarat1988/airswap-protocols/fault"
	"github.com/Ekkarat1988/airswap-protocols/intent"
)

// Index - the ordered collection of entries for a single pair
type Index struct {
	sync.RWMutex
	entries  []intent.Entry
	position map[common.Address]int
}

// New - create an initially empty index
func New() *Index {
	return &Index{
		entries:  make([]intent.Entry, 0, 10),
		position: make(map[common.Address]int),
	}
}

// Count - number of entries currently in the index
func (ix *Index) Count() int {
	ix.RLock()
	defer ix.RUnlock()
	return len(ix.entries)
}

// Has - true if the owner currently holds an entry
func (ix *Index) Has(owner common.Address) bool {
	ix.RLock()
	defer ix.RUnlock()
	_, ok := ix.position[owner]
	return ok
}

// StakeOf - the stake behind an owner's entry
func (ix *Index) StakeOf(owner common.Address) (uint64, bool) {
	ix.RLock()
	defer ix.RUnlock()

	n, ok := ix.position[owner]
	if !ok {
		return 0, false
	}
	return ix.entries[n].Stake, true
}

// Set - insert a new entry or update an existing one
//
// An update is a removal followed by a fresh insertion at the position
// implied by the new stake.  Returns the stake previously held, zero
// for a new entry.
func (ix *Index) Set(owner common.Address, stake uint64, locator intent.Locator) (uint64, bool) {
	ix.Lock()
	defer ix.Unlock()

	priorStake := uint64(0)
	existed := false

	if n, ok := ix.position[owner]; ok {
		priorStake = ix.entries[n].Stake
		existed = true
		ix.removeAt(n)
	}

	ix.insert(intent.Entry{
		Owner:   owner,
		Stake:   stake,
		Locator: locator,
	})

	return priorStake, existed
}

// Remove - delete an owner's entry, closing the gap
//
// The relative order of the remaining entries is undisturbed.
func (ix *Index) Remove(owner common.Address) (uint64, error) {
	ix.Lock()
	defer ix.Unlock()

	n, ok := ix.position[owner]
	if !ok {
		return 0, fault.ErrEntryNotFound
	}

	stake := ix.entries[n].Stake
	ix.removeAt(n)
	return stake, nil
}

// Page - a fixed length, stake descending view
//
// When start is nil the page begins at the head.  When start names an
// owner that currently holds an entry the page begins at that entry
// inclusive.  A start owner without an entry yields a zero length
// result: the anchor has vanished or never existed.  Otherwise the
// result always has exactly count entries, right padded with zero
// entries past the end of the index.
func (ix *Index) Page(start *common.Address, count int) []intent.Entry {
	ix.RLock()
	defer ix.RUnlock()

	if count <= 0 {
		return []intent.Entry{}
	}

	begin := 0
	if nil != start {
		n, ok := ix.position[*start]
		if !ok {
			return []intent.Entry{}
		}
		begin = n
	}

	page := make([]intent.Entry, count)
	copy(page, ix.entries[begin:])
	return page
}

// Entries - snapshot of all entries in order
func (ix *Index) Entries() []intent.Entry {
	ix.RLock()
	defer ix.RUnlock()

	all := make([]intent.Entry, len(ix.entries))
	copy(all, ix.entries)
	return all
}

// internal: caller holds the write lock
//
// slot after every entry with an equal or greater stake, so ties go to
// whoever staked first
func (ix *Index) insert(entry intent.Entry) {
	n := sort.Search(len(ix.entries), func(i int) bool {
		return ix.entries[i].Stake < entry.Stake
	})

	ix.entries = append(ix.entries, intent.Entry{})
	copy(ix.entries[n+1:], ix.entries[n:])
	ix.entries[n] = entry

	ix.position[entry.Owner] = n
	for i := n + 1; i < len(ix.entries); i += 1 {
		ix.position[ix.entries[i].Owner] = i
	}
}

// internal: caller holds the write lock
func (ix *Index) removeAt(n int) {
	delete(ix.position, ix.entries[n].Owner)

	copy(ix.entries[n:], ix.entries[n+1:])
	ix.entries = ix.entries[:len(ix.entries)-1]

	for i := n; i < len(ix.entries); i += 1 {
		ix.position[ix.entries[i].Owner] = i
	}
}
