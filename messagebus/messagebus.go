// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package messagebus - the registry's observable events
//
// Every successful mutating operation puts exactly one event on the
// bus; failed operations put none.  Delivery is best effort: when the
// buffer is full the event is dropped rather than stalling the
// operation that produced it.
package messagebus

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/Ekkarat1988/airswap-protocols/intent"
)

// internal constants
const (
	queueSize = 1000
)

// PairCreated - a new directional pair index exists
type PairCreated struct {
	Pair intent.PairKey
}

// IntentRegistered - an intent was set or updated
type IntentRegistered struct {
	Pair       intent.PairKey
	Owner      common.Address
	Stake      uint64
	PriorStake uint64
}

// IntentUnregistered - an intent was removed and its bond refunded
type IntentUnregistered struct {
	Pair     intent.PairKey
	Owner    common.Address
	Refunded uint64
}

// PauseChanged - the pause flag was toggled
type PauseChanged struct {
	Paused bool
}

// BlacklistChanged - a token entered or left the blacklist
type BlacklistChanged struct {
	Token       common.Address
	Blacklisted bool
}

// Terminated - the registry was irreversibly shut down
type Terminated struct {
	Destination common.Address
	Swept       uint64
}

// Bus - a buffered event queue
type Bus struct {
	queue chan interface{}
}

// New - create a bus with the default buffer
func New() *Bus {
	return &Bus{
		queue: make(chan interface{}, queueSize),
	}
}

// Send - queue an event, dropped if the buffer is full
func (bus *Bus) Send(event interface{}) {
	select {
	case bus.queue <- event:
	default:
	}
}

// Chan - channel to read events from
func (bus *Bus) Chan() <-chan interface{} {
	return bus.queue
}
