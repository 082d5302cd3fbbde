// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/Ekkarat1988/airswap-protocols/rpc/admin"
)

// SetPaused - halt or resume mutations
func (c *Client) SetPaused(paused bool) (*admin.SetPausedReply, error) {

	args := admin.SetPausedArguments{Paused: paused}
	c.printJson("SetPaused Request", args)

	reply := &admin.SetPausedReply{}
	err := c.client.Call("Admin.SetPaused", args, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("SetPaused Reply", reply)
	return reply, nil
}

// AddToBlacklist - hide pairs containing a token
func (c *Client) AddToBlacklist(token common.Address) (*admin.BlacklistReply, error) {

	args := admin.BlacklistArguments{Token: token}
	c.printJson("AddToBlacklist Request", args)

	reply := &admin.BlacklistReply{}
	err := c.client.Call("Admin.AddToBlacklist", args, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("AddToBlacklist Reply", reply)
	return reply, nil
}

// RemoveFromBlacklist - unhide pairs containing a token
func (c *Client) RemoveFromBlacklist(token common.Address) (*admin.BlacklistReply, error) {

	args := admin.BlacklistArguments{Token: token}
	c.printJson("RemoveFromBlacklist Request", args)

	reply := &admin.BlacklistReply{}
	err := c.client.Call("Admin.RemoveFromBlacklist", args, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("RemoveFromBlacklist Reply", reply)
	return reply, nil
}

// ForceUnset - evict an intent, refunding its owner
func (c *Client) ForceUnset(signerToken common.Address, senderToken common.Address, owner common.Address) (*admin.ForceUnsetReply, error) {

	args := admin.ForceUnsetArguments{
		SignerToken: signerToken,
		SenderToken: senderToken,
		Owner:       owner,
	}
	c.printJson("ForceUnset Request", args)

	reply := &admin.ForceUnsetReply{}
	err := c.client.Call("Admin.ForceUnset", args, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("ForceUnset Reply", reply)
	return reply, nil
}

// Terminate - sweep all stake and retire the registry
func (c *Client) Terminate(destination common.Address) (*admin.TerminateReply, error) {

	args := admin.TerminateArguments{Destination: destination}
	c.printJson("Terminate Request", args)

	reply := &admin.TerminateReply{}
	err := c.client.Call("Admin.Terminate", args, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("Terminate Reply", reply)
	return reply, nil
}
