// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package admin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ekkarat1988/airswap-protocols/custody"
	"github.com/Ekkarat1988/airswap-protocols/fault"
	"github.com/Ekkarat1988/airswap-protocols/fixtures"
	"github.com/Ekkarat1988/airswap-protocols/intent"
	"github.com/Ekkarat1988/airswap-protocols/messagebus"
	"github.com/Ekkarat1988/airswap-protocols/registry"
	"github.com/Ekkarat1988/airswap-protocols/rpc/admin"

	"github.com/bitmark-inc/logger"
)

func setupService(t *testing.T) (*admin.Admin, *registry.Registry, *custody.Token) {
	t.Helper()
	fixtures.SetupTestLogger()
	t.Cleanup(fixtures.TeardownTestLogger)

	token := custody.NewToken()
	token.Mint(fixtures.Alice, 1000)
	token.Approve(fixtures.Alice, fixtures.Administrator, 10000)

	r := registry.New(
		logger.New(fixtures.LogCategory),
		custody.NewAccount(token, fixtures.Administrator),
		registry.Single(fixtures.Administrator),
		messagebus.New(),
		nil,
	)
	service := admin.New(logger.New(fixtures.LogCategory), r, fixtures.Administrator)
	return service, r, token
}

func TestAdminPauseResume(t *testing.T) {
	service, r, _ := setupService(t)

	var reply admin.SetPausedReply
	err := service.SetPaused(&admin.SetPausedArguments{Paused: true}, &reply)
	assert.Nil(t, err, "wrong SetPaused")
	assert.True(t, reply.Paused, "wrong paused")
	assert.True(t, r.Paused(), "wrong registry state")

	_, err = r.CreatePair(fixtures.TokenWETH, fixtures.TokenDAI)
	assert.Equal(t, fault.ErrPaused, err, "wrong error while paused")

	reply = admin.SetPausedReply{}
	err = service.SetPaused(&admin.SetPausedArguments{Paused: false}, &reply)
	assert.Nil(t, err, "wrong resume")
	assert.False(t, reply.Paused, "wrong resumed")
}

func TestAdminBlacklist(t *testing.T) {
	service, r, _ := setupService(t)

	_, err := r.CreatePair(fixtures.TokenWETH, fixtures.TokenDAI)
	assert.Nil(t, err, "wrong CreatePair")

	var reply admin.BlacklistReply
	err = service.AddToBlacklist(&admin.BlacklistArguments{Token: fixtures.TokenDAI}, &reply)
	assert.Nil(t, err, "wrong AddToBlacklist")
	assert.True(t, reply.Changed, "wrong changed")
	assert.True(t, r.IsBlacklisted(fixtures.TokenDAI), "wrong blacklist state")

	// repeat reports no change
	reply = admin.BlacklistReply{}
	err = service.AddToBlacklist(&admin.BlacklistArguments{Token: fixtures.TokenDAI}, &reply)
	assert.Nil(t, err, "wrong duplicate AddToBlacklist")
	assert.False(t, reply.Changed, "wrong duplicate changed")

	reply = admin.BlacklistReply{}
	err = service.RemoveFromBlacklist(&admin.BlacklistArguments{Token: fixtures.TokenDAI}, &reply)
	assert.Nil(t, err, "wrong RemoveFromBlacklist")
	assert.True(t, reply.Changed, "wrong removal changed")
	assert.False(t, r.IsBlacklisted(fixtures.TokenDAI), "wrong cleared state")
}

func TestAdminForceUnset(t *testing.T) {
	service, r, token := setupService(t)

	_, err := r.CreatePair(fixtures.TokenWETH, fixtures.TokenDAI)
	assert.Nil(t, err, "wrong CreatePair")

	pair := intent.PairKey{
		SignerToken: fixtures.TokenWETH,
		SenderToken: fixtures.TokenDAI,
	}
	err = r.RegisterIntent(pair, fixtures.Alice, 250, intent.LocatorFromAddress(fixtures.Alice))
	assert.Nil(t, err, "wrong RegisterIntent")

	var reply admin.ForceUnsetReply
	err = service.ForceUnset(&admin.ForceUnsetArguments{
		SignerToken: fixtures.TokenWETH,
		SenderToken: fixtures.TokenDAI,
		Owner:       fixtures.Alice,
	}, &reply)
	assert.Nil(t, err, "wrong ForceUnset")
	assert.True(t, reply.OK, "wrong ok")

	// the bond returns to the owner, not the administrator
	assert.Equal(t, uint64(1000), token.BalanceOf(fixtures.Alice), "wrong refund")
	assert.Equal(t, uint64(0), r.StakeOf(fixtures.Alice, pair), "wrong residual stake")
}

func TestAdminTerminate(t *testing.T) {
	service, r, token := setupService(t)

	_, err := r.CreatePair(fixtures.TokenWETH, fixtures.TokenDAI)
	assert.Nil(t, err, "wrong CreatePair")

	pair := intent.PairKey{
		SignerToken: fixtures.TokenWETH,
		SenderToken: fixtures.TokenDAI,
	}
	err = r.RegisterIntent(pair, fixtures.Alice, 800, intent.LocatorFromAddress(fixtures.Alice))
	assert.Nil(t, err, "wrong RegisterIntent")

	// termination requires a pause first
	var reply admin.TerminateReply
	err = service.Terminate(&admin.TerminateArguments{Destination: fixtures.Carol}, &reply)
	assert.Equal(t, fault.ErrNotPaused, err, "wrong unpaused error")

	var pausedReply admin.SetPausedReply
	err = service.SetPaused(&admin.SetPausedArguments{Paused: true}, &pausedReply)
	assert.Nil(t, err, "wrong SetPaused")

	reply = admin.TerminateReply{}
	err = service.Terminate(&admin.TerminateArguments{Destination: fixtures.Carol}, &reply)
	assert.Nil(t, err, "wrong Terminate")
	assert.True(t, reply.Terminated, "wrong terminated")
	assert.Equal(t, uint64(800), token.BalanceOf(fixtures.Carol), "wrong swept amount")

	// terminal state is absorbing
	err = service.SetPaused(&admin.SetPausedArguments{Paused: false}, &pausedReply)
	assert.Equal(t, fault.ErrTerminated, err, "wrong terminal error")
}
