// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package main

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"
)

func runCreatePair(c *cli.Context) error {

	signer, err := checkAddress("signer", c.String("signer"))
	if nil != err {
		return err
	}
	sender, err := checkAddress("sender", c.String("sender"))
	if nil != err {
		return err
	}

	m, client, err := clientFromContext(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreatePair(signer, sender)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runSetIntent(c *cli.Context) error {

	signer, err := checkAddress("signer", c.String("signer"))
	if nil != err {
		return err
	}
	sender, err := checkAddress("sender", c.String("sender"))
	if nil != err {
		return err
	}
	owner, err := checkAddress("owner", c.String("owner"))
	if nil != err {
		return err
	}
	locator, err := checkLocator(c.String("locator"))
	if nil != err {
		return err
	}

	m, client, err := clientFromContext(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetIntent(signer, sender, owner, c.Uint64("stake"), locator)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runUnsetIntent(c *cli.Context) error {

	signer, err := checkAddress("signer", c.String("signer"))
	if nil != err {
		return err
	}
	sender, err := checkAddress("sender", c.String("sender"))
	if nil != err {
		return err
	}
	owner, err := checkAddress("owner", c.String("owner"))
	if nil != err {
		return err
	}

	m, client, err := clientFromContext(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.UnsetIntent(signer, sender, owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runLocators(c *cli.Context) error {

	signer, err := checkAddress("signer", c.String("signer"))
	if nil != err {
		return err
	}
	sender, err := checkAddress("sender", c.String("sender"))
	if nil != err {
		return err
	}

	var start *common.Address
	if "" != c.String("start") {
		anchor, err := checkAddress("start", c.String("start"))
		if nil != err {
			return err
		}
		start = &anchor
	}

	m, client, err := clientFromContext(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetLocators(signer, sender, start, c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runStake(c *cli.Context) error {

	signer, err := checkAddress("signer", c.String("signer"))
	if nil != err {
		return err
	}
	sender, err := checkAddress("sender", c.String("sender"))
	if nil != err {
		return err
	}
	owner, err := checkAddress("owner", c.String("owner"))
	if nil != err {
		return err
	}

	m, client, err := clientFromContext(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetStakedAmount(owner, signer, sender)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
