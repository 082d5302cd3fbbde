// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runPause(c *cli.Context) error {
	return setPaused(c, true)
}

func runResume(c *cli.Context) error {
	return setPaused(c, false)
}

func setPaused(c *cli.Context, paused bool) error {

	m, client, err := clientFromContext(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetPaused(paused)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBlacklist(c *cli.Context) error {

	token, err := checkAddress("token", c.String("token"))
	if nil != err {
		return err
	}

	m, client, err := clientFromContext(c)
	if nil != err {
		return err
	}
	defer client.Close()

	call := client.AddToBlacklist
	if c.Bool("remove") {
		call = client.RemoveFromBlacklist
	}

	response, err := call(token)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runForceUnset(c *cli.Context) error {

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

	response, err := client.ForceUnset(signer, sender, owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTerminate(c *cli.Context) error {

	destination, err := checkAddress("destination", c.String("destination"))
	if nil != err {
		return err
	}

	m, client, err := clientFromContext(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Terminate(destination)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
