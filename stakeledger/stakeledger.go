// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package stakeledger - escrowed bond accounting
//
// One row per (owner, pair): the amount of staking token held in
// custody on the owner's behalf for that pair.  The ledger mediates
// every custody movement and a row only ever changes after custody has
// confirmed, so the recorded amount and the externally held balance
// cannot drift apart.
package stakeledger

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Ekkarat1988/airswap-protocols/custody"
	"github.com/Ekkarat1988/airswap-protocols/fault"
	"github.com/Ekkarat1988/airswap-protocols/intent"

	"github.com/bitmark-inc/logger"
)

type rowKey struct {
	owner common.Address
	pair  intent.PairKey
}

// Ledger - the set of escrowed bond rows
type Ledger struct {
	sync.RWMutex
	log       *logger.L
	custodian custody.Custodian
	rows      map[rowKey]uint64
}

// New - an empty ledger over a custody capability
func New(log *logger.L, custodian custody.Custodian) *Ledger {
	return &Ledger{
		log:       log,
		custodian: custodian,
		rows:      make(map[rowKey]uint64),
	}
}

// StakeOf - the amount currently escrowed for an owner on a pair,
// zero when there is no row
func (l *Ledger) StakeOf(owner common.Address, pair intent.PairKey) uint64 {
	l.RLock()
	defer l.RUnlock()
	return l.rows[rowKey{owner: owner, pair: pair}]
}

// TotalEscrowed - sum over all rows, the full custodial balance the
// ledger accounts for
func (l *Ledger) TotalEscrowed() uint64 {
	l.RLock()
	defer l.RUnlock()

	total := uint64(0)
	for _, amount := range l.rows {
		total += amount
	}
	return total
}

// AdjustStake - move the row to newStake, transferring only the
// difference
//
// A positive difference is pulled from the owner, a negative one is
// returned to the owner.  If custody refuses the move nothing changes
// and the failure is surfaced as ErrCustodyTransferFailed.  Returns
// the stake held before the adjustment.
func (l *Ledger) AdjustStake(owner common.Address, pair intent.PairKey, newStake uint64) (uint64, error) {
	l.Lock()
	defer l.Unlock()

	key := rowKey{owner: owner, pair: pair}
	current := l.rows[key]

	switch {
	case newStake > current:
		delta := newStake - current
		if err := l.custodian.TransferIn(owner, delta); nil != err {
			l.log.Warnf("adjust: transfer in %d for %s on %s failed: %s", delta, owner.Hex(), pair, err)
			return current, fault.ErrCustodyTransferFailed
		}

	case newStake < current:
		delta := current - newStake
		if err := l.custodian.TransferOut(owner, delta); nil != err {
			l.log.Warnf("adjust: transfer out %d for %s on %s failed: %s", delta, owner.Hex(), pair, err)
			return current, fault.ErrCustodyTransferFailed
		}

	default:
		// no custody call for an unchanged stake
	}

	if 0 == newStake {
		delete(l.rows, key)
	} else {
		l.rows[key] = newStake
	}
	return current, nil
}

// ReleaseAll - refund the full escrowed amount to the owner and drop
// the row
//
// Custody confirms first; on failure the row is untouched and the
// release can be retried.  Returns the amount refunded.
func (l *Ledger) ReleaseAll(owner common.Address, pair intent.PairKey) (uint64, error) {
	l.Lock()
	defer l.Unlock()

	key := rowKey{owner: owner, pair: pair}
	amount := l.rows[key]

	if amount > 0 {
		if err := l.custodian.TransferOut(owner, amount); nil != err {
			l.log.Warnf("release: transfer out %d for %s on %s failed: %s", amount, owner.Hex(), pair, err)
			return 0, fault.ErrCustodyTransferFailed
		}
	}

	delete(l.rows, key)
	return amount, nil
}

// Restore - reinstate a row without any custody movement
//
// Only for rebuilding state from storage at startup: the custody
// balance already reflects the row.
func (l *Ledger) Restore(owner common.Address, pair intent.PairKey, amount uint64) {
	l.Lock()
	defer l.Unlock()

	if amount > 0 {
		l.rows[rowKey{owner: owner, pair: pair}] = amount
	}
}
