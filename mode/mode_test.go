// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ekkarat1988/airswap-protocols/fixtures"
	"github.com/Ekkarat1988/airswap-protocols/mode"

	"github.com/bitmark-inc/logger"
)

func TestInitialMode(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	m := mode.NewMachine(logger.New(fixtures.LogCategory))

	assert.True(t, m.Is(mode.Active), "not initially active")
	assert.True(t, m.IsNot(mode.Paused), "initially paused")
	assert.Equal(t, "Active", m.String(), "wrong string")
}

func TestPauseResume(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	m := mode.NewMachine(logger.New(fixtures.LogCategory))

	m.Set(mode.Paused)
	assert.True(t, m.Is(mode.Paused), "not paused")
	assert.Equal(t, "Paused", m.String(), "wrong string")

	m.Set(mode.Active)
	assert.True(t, m.Is(mode.Active), "not active")
}

// Terminated is absorbing, nothing transitions away from it
func TestTerminatedIsAbsorbing(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	m := mode.NewMachine(logger.New(fixtures.LogCategory))

	m.Set(mode.Paused)
	m.Set(mode.Terminated)
	assert.True(t, m.Is(mode.Terminated), "not terminated")

	m.Set(mode.Active)
	assert.True(t, m.Is(mode.Terminated), "terminated state was reversed")

	m.Set(mode.Paused)
	assert.True(t, m.Is(mode.Terminated), "terminated state was reversed")
	assert.Equal(t, "Terminated", m.String(), "wrong string")
}

func TestInvalidSetIsIgnored(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	m := mode.NewMachine(logger.New(fixtures.LogCategory))

	m.Set(mode.Mode(-1))
	assert.True(t, m.Is(mode.Active), "invalid set changed mode")

	m.Set(mode.Mode(100))
	assert.True(t, m.Is(mode.Active), "invalid set changed mode")
	assert.Equal(t, "*Unknown*", mode.Mode(100).String(), "wrong string")
}
