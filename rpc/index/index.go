// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package index - the public intent RPC
//
// Callers self-identify by address; binding an address to a transport
// credential is the deployment's concern, not this service's.
package index

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/Ekkarat1988/airswap-protocols/intent"
	"github.com/Ekkarat1988/airswap-protocols/registry"
	"github.com/Ekkarat1988/airswap-protocols/rpc/ratelimit"

	"github.com/bitmark-inc/logger"
)

// Index - RPC service for pair and intent operations
type Index struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry *registry.Registry
}

const (
	maximumLocators = 100
	rateLimitIndex  = rate.Limit(200)
	rateBurstIndex  = 100
)

// New - create the service
func New(log *logger.L, r *registry.Registry) *Index {
	return &Index{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitIndex, rateBurstIndex),
		Registry: r,
	}
}

// ---

// CreatePairArguments - arguments for RPC request
type CreatePairArguments struct {
	SignerToken common.Address `json:"signerToken"`
	SenderToken common.Address `json:"senderToken"`
}

// CreatePairReply - results from RPC request
type CreatePairReply struct {
	Created bool `json:"created"`
}

// CreatePair - register a directional pair index
func (index *Index) CreatePair(arguments *CreatePairArguments, reply *CreatePairReply) error {
	if err := ratelimit.Limit(index.Limiter); nil != err {
		return err
	}
	index.Log.Infof("Index.CreatePair: %+v", arguments)

	created, err := index.Registry.CreatePair(arguments.SignerToken, arguments.SenderToken)
	if nil != err {
		return err
	}
	reply.Created = created
	return nil
}

// ---

// SetIntentArguments - arguments for RPC request
type SetIntentArguments struct {
	SignerToken common.Address `json:"signerToken"`
	SenderToken common.Address `json:"senderToken"`
	Owner       common.Address `json:"owner"`
	Stake       uint64         `json:"stake"`
	Locator     intent.Locator `json:"locator"`
}

// SetIntentReply - results from RPC request
type SetIntentReply struct {
	OK bool `json:"ok"`
}

// SetIntent - stake and advertise an intent
func (index *Index) SetIntent(arguments *SetIntentArguments, reply *SetIntentReply) error {
	if err := ratelimit.Limit(index.Limiter); nil != err {
		return err
	}
	index.Log.Infof("Index.SetIntent: %+v", arguments)

	pair := intent.PairKey{
		SignerToken: arguments.SignerToken,
		SenderToken: arguments.SenderToken,
	}
	err := index.Registry.RegisterIntent(pair, arguments.Owner, arguments.Stake, arguments.Locator)
	if nil != err {
		return err
	}
	reply.OK = true
	return nil
}

// ---

// UnsetIntentArguments - arguments for RPC request
type UnsetIntentArguments struct {
	SignerToken common.Address `json:"signerToken"`
	SenderToken common.Address `json:"senderToken"`
	Owner       common.Address `json:"owner"`
}

// UnsetIntentReply - results from RPC request
type UnsetIntentReply struct {
	OK bool `json:"ok"`
}

// UnsetIntent - withdraw an intent and recover the bond
func (index *Index) UnsetIntent(arguments *UnsetIntentArguments, reply *UnsetIntentReply) error {
	if err := ratelimit.Limit(index.Limiter); nil != err {
		return err
	}
	index.Log.Infof("Index.UnsetIntent: %+v", arguments)

	pair := intent.PairKey{
		SignerToken: arguments.SignerToken,
		SenderToken: arguments.SenderToken,
	}
	err := index.Registry.UnregisterIntent(pair, arguments.Owner)
	if nil != err {
		return err
	}
	reply.OK = true
	return nil
}

// ---

// GetLocatorsArguments - arguments for RPC request
type GetLocatorsArguments struct {
	SignerToken common.Address  `json:"signerToken"`
	SenderToken common.Address  `json:"senderToken"`
	StartOwner  *common.Address `json:"startOwner,omitempty"`
	Count       int             `json:"count"`
}

// GetLocatorsReply - results from RPC request
type GetLocatorsReply struct {
	Entries []intent.Entry `json:"entries"`
}

// GetLocators - stake ordered discovery page
func (index *Index) GetLocators(arguments *GetLocatorsArguments, reply *GetLocatorsReply) error {
	if err := ratelimit.LimitN(index.Limiter, arguments.Count, maximumLocators); nil != err {
		return err
	}
	index.Log.Infof("Index.GetLocators: %+v", arguments)

	pair := intent.PairKey{
		SignerToken: arguments.SignerToken,
		SenderToken: arguments.SenderToken,
	}
	entries, err := index.Registry.QueryLocators(pair, arguments.StartOwner, arguments.Count)
	if nil != err {
		return err
	}
	reply.Entries = entries
	return nil
}

// ---

// GetStakedAmountArguments - arguments for RPC request
type GetStakedAmountArguments struct {
	Owner       common.Address `json:"owner"`
	SignerToken common.Address `json:"signerToken"`
	SenderToken common.Address `json:"senderToken"`
}

// GetStakedAmountReply - results from RPC request
type GetStakedAmountReply struct {
	Amount uint64 `json:"amount"`
}

// GetStakedAmount - the bond escrowed for an owner on a pair
func (index *Index) GetStakedAmount(arguments *GetStakedAmountArguments, reply *GetStakedAmountReply) error {
	if err := ratelimit.Limit(index.Limiter); nil != err {
		return err
	}

	pair := intent.PairKey{
		SignerToken: arguments.SignerToken,
		SenderToken: arguments.SenderToken,
	}
	reply.Amount = index.Registry.StakeOf(arguments.Owner, pair)
	return nil
}
