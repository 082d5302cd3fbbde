// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/Ekkarat1988/airswap-protocols/intent"
	"github.com/Ekkarat1988/airswap-protocols/rpc/index"
)

// CreatePair - register a directional pair index
func (c *Client) CreatePair(signerToken common.Address, senderToken common.Address) (*index.CreatePairReply, error) {

	args := index.CreatePairArguments{
		SignerToken: signerToken,
		SenderToken: senderToken,
	}
	c.printJson("CreatePair Request", args)

	reply := &index.CreatePairReply{}
	err := c.client.Call("Index.CreatePair", args, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("CreatePair Reply", reply)
	return reply, nil
}

// SetIntent - stake and advertise an intent
func (c *Client) SetIntent(signerToken common.Address, senderToken common.Address, owner common.Address, stake uint64, locator intent.Locator) (*index.SetIntentReply, error) {

	args := index.SetIntentArguments{
		SignerToken: signerToken,
		SenderToken: senderToken,
		Owner:       owner,
		Stake:       stake,
		Locator:     locator,
	}
	c.printJson("SetIntent Request", args)

	reply := &index.SetIntentReply{}
	err := c.client.Call("Index.SetIntent", args, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("SetIntent Reply", reply)
	return reply, nil
}

// UnsetIntent - withdraw an intent
func (c *Client) UnsetIntent(signerToken common.Address, senderToken common.Address, owner common.Address) (*index.UnsetIntentReply, error) {

	args := index.UnsetIntentArguments{
		SignerToken: signerToken,
		SenderToken: senderToken,
		Owner:       owner,
	}
	c.printJson("UnsetIntent Request", args)

	reply := &index.UnsetIntentReply{}
	err := c.client.Call("Index.UnsetIntent", args, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("UnsetIntent Reply", reply)
	return reply, nil
}

// GetLocators - fetch a page of the stake ordered index
func (c *Client) GetLocators(signerToken common.Address, senderToken common.Address, start *common.Address, count int) (*index.GetLocatorsReply, error) {

	args := index.GetLocatorsArguments{
		SignerToken: signerToken,
		SenderToken: senderToken,
		StartOwner:  start,
		Count:       count,
	}
	c.printJson("GetLocators Request", args)

	reply := &index.GetLocatorsReply{}
	err := c.client.Call("Index.GetLocators", args, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("GetLocators Reply", reply)
	return reply, nil
}

// GetStakedAmount - fetch the bonded stake for one owner
func (c *Client) GetStakedAmount(owner common.Address, signerToken common.Address, senderToken common.Address) (*index.GetStakedAmountReply, error) {

	args := index.GetStakedAmountArguments{
		Owner:       owner,
		SignerToken: signerToken,
		SenderToken: senderToken,
	}
	c.printJson("GetStakedAmount Request", args)

	reply := &index.GetStakedAmountReply{}
	err := c.client.Call("Index.GetStakedAmount", args, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("GetStakedAmount Reply", reply)
	return reply, nil
}
