// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package admin - the operator RPC
//
// This service is only registered on the administrative listener so
// reaching it at all requires the operator's client certificate. Calls
// are made with the configured administrator address as caller.
package admin

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/Ekkarat1988/airswap-protocols/intent"
	"github.com/Ekkarat1988/airswap-protocols/registry"
	"github.com/Ekkarat1988/airswap-protocols/rpc/ratelimit"

	"github.com/bitmark-inc/logger"
)

// Admin - RPC service for lifecycle and blacklist operations
type Admin struct {
	Log           *logger.L
	Limiter       *rate.Limiter
	Registry      *registry.Registry
	Administrator common.Address
}

const (
	rateLimitAdmin = rate.Limit(10)
	rateBurstAdmin = 10
)

// New - create the service
func New(log *logger.L, r *registry.Registry, administrator common.Address) *Admin {
	return &Admin{
		Log:           log,
		Limiter:       rate.NewLimiter(rateLimitAdmin, rateBurstAdmin),
		Registry:      r,
		Administrator: administrator,
	}
}

// ---

// SetPausedArguments - arguments for RPC request
type SetPausedArguments struct {
	Paused bool `json:"paused"`
}

// SetPausedReply - results from RPC request
type SetPausedReply struct {
	Paused bool `json:"paused"`
}

// SetPaused - halt or resume pair and intent mutations
func (admin *Admin) SetPaused(arguments *SetPausedArguments, reply *SetPausedReply) error {
	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}
	admin.Log.Warnf("Admin.SetPaused: %+v", arguments)

	if err := admin.Registry.SetPaused(admin.Administrator, arguments.Paused); nil != err {
		return err
	}
	reply.Paused = admin.Registry.Paused()
	return nil
}

// ---

// BlacklistArguments - arguments for RPC request
type BlacklistArguments struct {
	Token common.Address `json:"token"`
}

// BlacklistReply - results from RPC request
type BlacklistReply struct {
	Changed bool `json:"changed"`
}

// AddToBlacklist - hide every pair involving a token
func (admin *Admin) AddToBlacklist(arguments *BlacklistArguments, reply *BlacklistReply) error {
	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}
	admin.Log.Warnf("Admin.AddToBlacklist: %+v", arguments)

	changed, err := admin.Registry.AddToBlacklist(admin.Administrator, arguments.Token)
	if nil != err {
		return err
	}
	reply.Changed = changed
	return nil
}

// RemoveFromBlacklist - restore visibility of a token's pairs
func (admin *Admin) RemoveFromBlacklist(arguments *BlacklistArguments, reply *BlacklistReply) error {
	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}
	admin.Log.Warnf("Admin.RemoveFromBlacklist: %+v", arguments)

	changed, err := admin.Registry.RemoveFromBlacklist(admin.Administrator, arguments.Token)
	if nil != err {
		return err
	}
	reply.Changed = changed
	return nil
}

// ---

// ForceUnsetArguments - arguments for RPC request
type ForceUnsetArguments struct {
	SignerToken common.Address `json:"signerToken"`
	SenderToken common.Address `json:"senderToken"`
	Owner       common.Address `json:"owner"`
}

// ForceUnsetReply - results from RPC request
type ForceUnsetReply struct {
	OK bool `json:"ok"`
}

// ForceUnset - evict an intent, refunding its owner
func (admin *Admin) ForceUnset(arguments *ForceUnsetArguments, reply *ForceUnsetReply) error {
	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}
	admin.Log.Warnf("Admin.ForceUnset: %+v", arguments)

	pair := intent.PairKey{
		SignerToken: arguments.SignerToken,
		SenderToken: arguments.SenderToken,
	}
	err := admin.Registry.ForceUnregister(admin.Administrator, pair, arguments.Owner)
	if nil != err {
		return err
	}
	reply.OK = true
	return nil
}

// ---

// TerminateArguments - arguments for RPC request
type TerminateArguments struct {
	Destination common.Address `json:"destination"`
}

// TerminateReply - results from RPC request
type TerminateReply struct {
	Terminated bool `json:"terminated"`
}

// Terminate - sweep all escrowed stake and retire the registry
func (admin *Admin) Terminate(arguments *TerminateArguments, reply *TerminateReply) error {
	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}
	admin.Log.Criticalf("Admin.Terminate: %+v", arguments)

	err := admin.Registry.SweepAndTerminate(admin.Administrator, arguments.Destination)
	if nil != err {
		return err
	}
	reply.Terminated = admin.Registry.Terminated()
	return nil
}
