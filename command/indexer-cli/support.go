// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"

	"github.com/Ekkarat1988/airswap-protocols/command/indexer-cli/rpccalls"
	"github.com/Ekkarat1988/airswap-protocols/fault"
	"github.com/Ekkarat1988/airswap-protocols/intent"
)

func clientFromContext(c *cli.Context) (*metadata, *rpccalls.Client, error) {
	m := c.App.Metadata["config"].(*metadata)
	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return m, client, nil
}

// checkAddress - flag value must be a 20 byte hex address
func checkAddress(name string, value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("%s: %q is not a hex address", name, value)
	}
	return common.HexToAddress(value), nil
}

// checkLocator - hex string of at most 32 bytes, left aligned
func checkLocator(value string) (intent.Locator, error) {
	var locator intent.Locator
	b, err := hex.DecodeString(strings.TrimPrefix(value, "0x"))
	if nil != err {
		return locator, fault.ErrInvalidLocator
	}
	if len(b) > intent.LocatorLength {
		return locator, fault.ErrInvalidLocator
	}
	copy(locator[:], b)
	return locator, nil
}

func printJson(w io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(w, "marshal error: %s\n", err)
		return
	}
	fmt.Fprintf(w, "%s\n", b)
}
