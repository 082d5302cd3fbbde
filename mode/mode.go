// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package mode - the registry operating state
//
// A registry is Active when it accepts every operation, Paused when
// mutating operations are refused and Terminated after the final
// shutdown.  Terminated is absorbing: once set no later Set call has
// any effect.
package mode

import (
	"sync"

	"github.com/bitmark-inc/logger"
)

// Mode - type to hold the operating state
type Mode int

// all possible modes
const (
	Active Mode = iota
	Paused
	Terminated
	maximum
)

// Machine - holds the current mode of one registry instance
type Machine struct {
	sync.RWMutex
	log  *logger.L
	mode Mode
}

// NewMachine - create a machine in Active mode
func NewMachine(log *logger.L) *Machine {
	return &Machine{
		log:  log,
		mode: Active,
	}
}

// Set - change mode, the transition to Terminated is irreversible
func (m *Machine) Set(mode Mode) {
	if mode < Active || mode >= maximum {
		m.log.Errorf("ignore invalid set: %d", mode)
		return
	}

	m.Lock()
	defer m.Unlock()

	if Terminated == m.mode {
		m.log.Warnf("ignore set: %s after termination", mode)
		return
	}
	m.mode = mode
	m.log.Infof("set: %s", mode)
}

// Is - detect mode
func (m *Machine) Is(mode Mode) bool {
	m.RLock()
	defer m.RUnlock()
	return mode == m.mode
}

// IsNot - detect mode
func (m *Machine) IsNot(mode Mode) bool {
	m.RLock()
	defer m.RUnlock()
	return mode != m.mode
}

// Get - current mode
func (m *Machine) Get() Mode {
	m.RLock()
	defer m.RUnlock()
	return m.mode
}

// String - current mode of the machine represented as a string
func (m *Machine) String() string {
	m.RLock()
	defer m.RUnlock()
	return m.mode.String()
}

// String - mode value represented as a string
func (m Mode) String() string {
	switch m {
	case Active:
		return "Active"
	case Paused:
		return "Paused"
	case Terminated:
		return "Terminated"
	default:
		return "*Unknown*"
	}
}
