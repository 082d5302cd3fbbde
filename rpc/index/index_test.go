// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ekkarat1988/airswap-protocols/custody"
	"github.com/Ekkarat1988/airswap-protocols/fault"
	"github.com/Ekkarat1988/airswap-protocols/fixtures"
	"github.com/Ekkarat1988/airswap-protocols/intent"
	"github.com/Ekkarat1988/airswap-protocols/messagebus"
	"github.com/Ekkarat1988/airswap-protocols/registry"
	"github.com/Ekkarat1988/airswap-protocols/rpc/index"

	"github.com/bitmark-inc/logger"
)

func setupService(t *testing.T) (*index.Index, *custody.Token) {
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
	return index.New(logger.New(fixtures.LogCategory), r), token
}

func TestIndexCreatePair(t *testing.T) {
	service, _ := setupService(t)

	arg := index.CreatePairArguments{
		SignerToken: fixtures.TokenWETH,
		SenderToken: fixtures.TokenDAI,
	}
	var reply index.CreatePairReply
	err := service.CreatePair(&arg, &reply)
	assert.Nil(t, err, "wrong CreatePair")
	assert.True(t, reply.Created, "wrong created")

	// repeat is accepted but reports no change
	reply = index.CreatePairReply{}
	err = service.CreatePair(&arg, &reply)
	assert.Nil(t, err, "wrong duplicate CreatePair")
	assert.False(t, reply.Created, "wrong duplicate created")
}

func TestIndexSetAndGet(t *testing.T) {
	service, token := setupService(t)

	createArg := index.CreatePairArguments{
		SignerToken: fixtures.TokenWETH,
		SenderToken: fixtures.TokenDAI,
	}
	var createReply index.CreatePairReply
	err := service.CreatePair(&createArg, &createReply)
	assert.Nil(t, err, "wrong CreatePair")

	setArg := index.SetIntentArguments{
		SignerToken: fixtures.TokenWETH,
		SenderToken: fixtures.TokenDAI,
		Owner:       fixtures.Alice,
		Stake:       400,
		Locator:     intent.LocatorFromAddress(fixtures.Alice),
	}
	var setReply index.SetIntentReply
	err = service.SetIntent(&setArg, &setReply)
	assert.Nil(t, err, "wrong SetIntent")
	assert.True(t, setReply.OK, "wrong set ok")
	assert.Equal(t, uint64(600), token.BalanceOf(fixtures.Alice), "wrong bonded balance")

	getArg := index.GetLocatorsArguments{
		SignerToken: fixtures.TokenWETH,
		SenderToken: fixtures.TokenDAI,
		Count:       3,
	}
	var getReply index.GetLocatorsReply
	err = service.GetLocators(&getArg, &getReply)
	assert.Nil(t, err, "wrong GetLocators")
	assert.Equal(t, 3, len(getReply.Entries), "wrong page size")
	assert.Equal(t, fixtures.Alice, getReply.Entries[0].Owner, "wrong first owner")
	assert.Equal(t, uint64(400), getReply.Entries[0].Stake, "wrong first stake")
	assert.True(t, getReply.Entries[1].Locator.IsZero(), "wrong padding")

	stakeArg := index.GetStakedAmountArguments{
		Owner:       fixtures.Alice,
		SignerToken: fixtures.TokenWETH,
		SenderToken: fixtures.TokenDAI,
	}
	var stakeReply index.GetStakedAmountReply
	err = service.GetStakedAmount(&stakeArg, &stakeReply)
	assert.Nil(t, err, "wrong GetStakedAmount")
	assert.Equal(t, uint64(400), stakeReply.Amount, "wrong staked amount")

	unsetArg := index.UnsetIntentArguments{
		SignerToken: fixtures.TokenWETH,
		SenderToken: fixtures.TokenDAI,
		Owner:       fixtures.Alice,
	}
	var unsetReply index.UnsetIntentReply
	err = service.UnsetIntent(&unsetArg, &unsetReply)
	assert.Nil(t, err, "wrong UnsetIntent")
	assert.Equal(t, uint64(1000), token.BalanceOf(fixtures.Alice), "wrong refunded balance")
}

func TestIndexSetIntentWithoutPair(t *testing.T) {
	service, _ := setupService(t)

	setArg := index.SetIntentArguments{
		SignerToken: fixtures.TokenWETH,
		SenderToken: fixtures.TokenDAI,
		Owner:       fixtures.Alice,
		Stake:       100,
		Locator:     intent.LocatorFromAddress(fixtures.Alice),
	}
	var setReply index.SetIntentReply
	err := service.SetIntent(&setArg, &setReply)
	assert.Equal(t, fault.ErrIndexNotFound, err, "wrong error")
}

func TestIndexGetLocatorsRejectsExcessiveCount(t *testing.T) {
	service, _ := setupService(t)

	getArg := index.GetLocatorsArguments{
		SignerToken: fixtures.TokenWETH,
		SenderToken: fixtures.TokenDAI,
		Count:       1000,
	}
	var getReply index.GetLocatorsReply
	err := service.GetLocators(&getArg, &getReply)
	assert.Equal(t, fault.ErrInvalidCount, err, "wrong error")
}
