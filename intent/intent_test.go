// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package intent_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ekkarat1988/airswap-protocols/fault"
	"github.com/Ekkarat1988/airswap-protocols/fixtures"
	"github.com/Ekkarat1988/airswap-protocols/intent"
)

func TestPairKeyIsDirectional(t *testing.T) {
	wethDai := intent.PairKey{
		SignerToken: fixtures.TokenWETH,
		SenderToken: fixtures.TokenDAI,
	}
	daiWeth := wethDai.Reverse()

	assert.NotEqual(t, wethDai, daiWeth, "reversed key equals original")
	assert.Equal(t, wethDai, daiWeth.Reverse(), "double reverse is not identity")
}

func TestPairKeyBytesRoundTrip(t *testing.T) {
	key := intent.PairKey{
		SignerToken: fixtures.TokenWETH,
		SenderToken: fixtures.TokenDAI,
	}

	b := key.Bytes()
	assert.Equal(t, 40, len(b), "wrong key length")

	decoded, err := intent.PairKeyFromBytes(b)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, key, decoded, "round trip mismatch")

	_, err = intent.PairKeyFromBytes(b[:39])
	assert.NotNil(t, err, "short key accepted")
}

func TestLocatorFromAddress(t *testing.T) {
	l := intent.LocatorFromAddress(fixtures.Alice)

	assert.False(t, l.IsZero(), "padded locator is zero")

	// 12 zero bytes then the address
	for i := 0; i < 12; i += 1 {
		assert.Equal(t, byte(0), l[i], "padding byte %d not zero", i)
	}
	assert.Equal(t, fixtures.Alice.Bytes(), l.Bytes()[12:], "address not right-aligned")
}

func TestLocatorJSON(t *testing.T) {
	l := intent.LocatorFromAddress(fixtures.Bob)

	data, err := json.Marshal(l)
	assert.Nil(t, err, "marshal error")

	var back intent.Locator
	err = json.Unmarshal(data, &back)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, l, back, "round trip mismatch")

	err = json.Unmarshal([]byte(`"0x0102"`), &back)
	assert.Nil(t, err, "short locator rejected")
	assert.Equal(t, byte(0x01), back[0], "short locator not left-aligned")

	err = json.Unmarshal([]byte(`"not-hex"`), &back)
	assert.Equal(t, fault.ErrInvalidLocator, err, "wrong error for invalid hex")

	tooLong := `"0x` + strings.Repeat("ab", intent.LocatorLength+1) + `"`
	err = json.Unmarshal([]byte(tooLong), &back)
	assert.Equal(t, fault.ErrInvalidLocator, err, "wrong error for oversize locator")
}
