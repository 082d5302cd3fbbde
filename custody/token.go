// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package custody

import (
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// transfer failure reasons, deliberately plain errors: the registry
// folds every one of them into the same custody failure
var (
	errInsufficientAllowance = errors.New("insufficient allowance")
	errInsufficientBalance   = errors.New("insufficient balance")
)

// Token - an in-memory fungible staking token
//
// Implements the balance/allowance behaviour of an ERC-20 style token
// so the registry can be exercised without a chain: a holder must
// Approve the custody account before TransferIn can pull a stake.
type Token struct {
	sync.Mutex
	balances   map[common.Address]uint64
	allowances map[common.Address]map[common.Address]uint64
}

// NewToken - create a token with no balances
func NewToken() *Token {
	return &Token{
		balances:   make(map[common.Address]uint64),
		allowances: make(map[common.Address]map[common.Address]uint64),
	}
}

// Mint - create amount new units on an account
func (t *Token) Mint(account common.Address, amount uint64) {
	t.Lock()
	defer t.Unlock()
	t.balances[account] += amount
}

// Approve - allow spender to withdraw up to amount from owner
func (t *Token) Approve(owner common.Address, spender common.Address, amount uint64) {
	t.Lock()
	defer t.Unlock()

	a, ok := t.allowances[owner]
	if !ok {
		a = make(map[common.Address]uint64)
		t.allowances[owner] = a
	}
	a[spender] = amount
}

// BalanceOf - current balance of an account
func (t *Token) BalanceOf(account common.Address) uint64 {
	t.Lock()
	defer t.Unlock()
	return t.balances[account]
}

// Transfer - move amount between accounts
func (t *Token) Transfer(from common.Address, to common.Address, amount uint64) error {
	t.Lock()
	defer t.Unlock()
	return t.transfer(from, to, amount)
}

// TransferFrom - spender moves amount from one account to another
// inside its approved allowance
func (t *Token) TransferFrom(spender common.Address, from common.Address, to common.Address, amount uint64) error {
	t.Lock()
	defer t.Unlock()

	allowed := t.allowances[from][spender]
	if allowed < amount {
		return errInsufficientAllowance
	}

	if err := t.transfer(from, to, amount); nil != err {
		return err
	}
	t.allowances[from][spender] = allowed - amount
	return nil
}

// internal: caller holds the lock
func (t *Token) transfer(from common.Address, to common.Address, amount uint64) error {
	if t.balances[from] < amount {
		return errInsufficientBalance
	}
	t.balances[from] -= amount
	t.balances[to] += amount
	return nil
}

// Account - binds a token and a custody holding account into the
// Custodian capability
type Account struct {
	token  *Token
	holder common.Address
}

// NewAccount - custody backed by an in-memory token
func NewAccount(token *Token, holder common.Address) *Account {
	return &Account{
		token:  token,
		holder: holder,
	}
}

// Holder - the custody holding account
func (a *Account) Holder() common.Address {
	return a.holder
}

// TransferIn - pull a stake from the owner into custody
func (a *Account) TransferIn(owner common.Address, amount uint64) error {
	return a.token.TransferFrom(a.holder, owner, a.holder, amount)
}

// TransferOut - return part of the custody balance to an owner
func (a *Account) TransferOut(owner common.Address, amount uint64) error {
	return a.token.Transfer(a.holder, owner, amount)
}
