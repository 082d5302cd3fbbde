// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/Ekkarat1988/airswap-protocols/fault"
	"github.com/Ekkarat1988/airswap-protocols/messagebus"
	"github.com/Ekkarat1988/airswap-protocols/mode"
)

// SetPaused - toggle the pause flag
//
// Setting the already current value is an idempotent no-op: success,
// no event.
func (r *Registry) SetPaused(caller common.Address, paused bool) error {
	if !r.admin.IsAuthorised(caller) {
		return fault.ErrNotAuthorised
	}

	r.opGate.Lock()
	defer r.opGate.Unlock()

	if r.machine.Is(mode.Terminated) {
		return fault.ErrTerminated
	}

	target := mode.Active
	if paused {
		target = mode.Paused
	}
	if r.machine.Is(target) {
		return nil
	}
	r.machine.Set(target)

	if nil != r.store {
		r.store.SaveMode(paused, false)
	}
	r.bus.Send(messagebus.PauseChanged{Paused: paused})
	return nil
}

// AddToBlacklist - hide every pair containing the token
//
// Idempotent: adding a member again reports changed == false with no
// event.  Stored entries and stakes are untouched.
func (r *Registry) AddToBlacklist(caller common.Address, token common.Address) (bool, error) {
	if !r.admin.IsAuthorised(caller) {
		return false, fault.ErrNotAuthorised
	}

	r.opGate.RLock()
	defer r.opGate.RUnlock()

	if r.machine.Is(mode.Terminated) {
		return false, fault.ErrTerminated
	}

	r.Lock()
	_, present := r.blacklist[token]
	if present {
		r.Unlock()
		return false, nil
	}
	r.blacklist[token] = struct{}{}
	r.Unlock()

	if nil != r.store {
		r.store.SetBlacklist(token, true)
	}
	r.bus.Send(messagebus.BlacklistChanged{Token: token, Blacklisted: true})
	r.log.Infof("blacklist: added %s", token.Hex())
	return true, nil
}

// RemoveFromBlacklist - unhide pairs containing the token
//
// Idempotent in the same way as AddToBlacklist.
func (r *Registry) RemoveFromBlacklist(caller common.Address, token common.Address) (bool, error) {
	if !r.admin.IsAuthorised(caller) {
		return false, fault.ErrNotAuthorised
	}

	r.opGate.RLock()
	defer r.opGate.RUnlock()

	if r.machine.Is(mode.Terminated) {
		return false, fault.ErrTerminated
	}

	r.Lock()
	_, present := r.blacklist[token]
	if !present {
		r.Unlock()
		return false, nil
	}
	delete(r.blacklist, token)
	r.Unlock()

	if nil != r.store {
		r.store.SetBlacklist(token, false)
	}
	r.bus.Send(messagebus.BlacklistChanged{Token: token, Blacklisted: false})
	r.log.Infof("blacklist: removed %s", token.Hex())
	return true, nil
}

// SweepAndTerminate - the irreversible shutdown
//
// Only callable while paused.  The full custodial balance is moved to
// destination by one custody transfer, and only after custody confirms
// does the mode flip to Terminated.  There is no way back: every later
// mutating call fails with ErrTerminated.
func (r *Registry) SweepAndTerminate(caller common.Address, destination common.Address) error {
	if !r.admin.IsAuthorised(caller) {
		return fault.ErrNotAuthorised
	}
	if r.machine.Is(mode.Terminated) {
		return fault.ErrTerminated
	}
	if r.machine.IsNot(mode.Paused) {
		return fault.ErrNotPaused
	}

	r.opGate.Lock()
	defer r.opGate.Unlock()

	total := r.ledger.TotalEscrowed()
	if total > 0 {
		if err := r.custodian.TransferOut(destination, total); nil != err {
			r.log.Errorf("terminate: sweep of %d to %s failed: %s", total, destination.Hex(), err)
			return fault.ErrCustodyTransferFailed
		}
	}

	r.machine.Set(mode.Terminated)

	if nil != r.store {
		r.store.SaveMode(true, true)
	}
	r.bus.Send(messagebus.Terminated{Destination: destination, Swept: total})
	r.log.Warnf("terminated: swept %d to %s", total, destination.Hex())
	return nil
}
