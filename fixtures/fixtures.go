// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known accounts for tests
var (
	Administrator = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	Alice         = common.HexToAddress("0x0000000000000000000000000000000000000a11")
	Bob           = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	Carol         = common.HexToAddress("0x00000000000000000000000000000000000ca201")

	TokenAST  = common.HexToAddress("0x0000000000000000000000000000000000000a57")
	TokenDAI  = common.HexToAddress("0x0000000000000000000000000000000000000da1")
	TokenWETH = common.HexToAddress("0x000000000000000000000000000000000000e7e7")
)

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}
