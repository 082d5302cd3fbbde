// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package intent - the types stored by the registry
//
// An intent is an advertisement of trading interest on one directional
// token pair: an owner, the amount of staking token bonded behind the
// advertisement, and an opaque locator telling takers how to reach the
// owner off-registry.
package intent

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Ekkarat1988/airswap-protocols/fault"
)

// LocatorLength - number of bytes in a locator
const LocatorLength = 32

// Locator - fixed size opaque bytes identifying how to reach an
// intent's owner off-registry
//
// The registry stores and returns these verbatim; it never interprets
// them.  A common convention is a 20 byte server address right-aligned
// in the 32 bytes, but nothing here depends on that.
type Locator [LocatorLength]byte

// Entry - one intent as recorded on a pair index
//
// The zero Entry doubles as the padding sentinel returned by paginated
// queries: null owner, zero stake, all-zero locator.
type Entry struct {
	Owner   common.Address `json:"owner"`
	Stake   uint64         `json:"stake"`
	Locator Locator        `json:"locator"`
}

// PairKey - one directional market: signer side token then sender side
// token
//
// Direction matters: (A,B) and (B,A) are distinct indexes.
type PairKey struct {
	SignerToken common.Address `json:"signerToken"`
	SenderToken common.Address `json:"senderToken"`
}

// Reverse - the key of the opposite direction market
func (p PairKey) Reverse() PairKey {
	return PairKey{
		SignerToken: p.SenderToken,
		SenderToken: p.SignerToken,
	}
}

// Bytes - 40 byte form used as a storage key
func (p PairKey) Bytes() []byte {
	b := make([]byte, 0, 2*common.AddressLength)
	b = append(b, p.SignerToken.Bytes()...)
	b = append(b, p.SenderToken.Bytes()...)
	return b
}

// PairKeyFromBytes - reverse of Bytes
func PairKeyFromBytes(b []byte) (PairKey, error) {
	if len(b) != 2*common.AddressLength {
		return PairKey{}, errors.New("pair key length is invalid")
	}
	return PairKey{
		SignerToken: common.BytesToAddress(b[:common.AddressLength]),
		SenderToken: common.BytesToAddress(b[common.AddressLength:]),
	}, nil
}

func (p PairKey) String() string {
	return p.SignerToken.Hex() + "/" + p.SenderToken.Hex()
}

// IsZero - true for the zero locator
func (l Locator) IsZero() bool {
	return l == Locator{}
}

// Bytes - the raw underlying bytes
func (l Locator) Bytes() []byte {
	return l[:]
}

func (l Locator) String() string {
	return "0x" + hex.EncodeToString(l[:])
}

// MarshalJSON - serialise the locator as a hex string
func (l Locator) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON - parse a hex string, shorter input is left-aligned
// and zero padded
func (l *Locator) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimPrefix(s, "0x")

	b, err := hex.DecodeString(s)
	if err != nil {
		return fault.ErrInvalidLocator
	}
	if len(b) > LocatorLength {
		return fault.ErrInvalidLocator
	}

	*l = Locator{}
	copy(l[:], b)
	return nil
}

// LocatorFromAddress - pack a server address into locator form,
// right-aligned with zero padding
func LocatorFromAddress(address common.Address) Locator {
	l := Locator{}
	copy(l[LocatorLength-common.AddressLength:], address.Bytes())
	return l
}
