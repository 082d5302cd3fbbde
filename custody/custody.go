// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package custody - the token custody capability consumed by the
// registry
//
// The registry never touches token balances directly; it asks a
// Custodian to move the staking token between an owner and the custody
// account.  Either call can fail for reasons the registry treats as
// opaque: insufficient balance, insufficient allowance, a rejected
// transfer.
package custody

import (
	"github.com/ethereum/go-ethereum/common"
)

// Custodian - move staking tokens in and out of custody
//
// TransferIn moves amount from the owner's account into custody and
// TransferOut moves amount from custody back to the owner.  A transfer
// either fully completes or fully fails, there are no partial effects.
type Custodian interface {
	TransferIn(owner common.Address, amount uint64) error
	TransferOut(owner common.Address, amount uint64) error
}
