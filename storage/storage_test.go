// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ekkarat1988/airswap-protocols/fixtures"
	"github.com/Ekkarat1988/airswap-protocols/intent"
	"github.com/Ekkarat1988/airswap-protocols/storage"

	"github.com/bitmark-inc/logger"
)

var wethDai = intent.PairKey{
	SignerToken: fixtures.TokenWETH,
	SenderToken: fixtures.TokenDAI,
}

func openStore(t *testing.T) *storage.PoolStore {
	t.Helper()
	fixtures.SetupTestLogger()
	t.Cleanup(fixtures.TeardownTestLogger)

	store, err := storage.Open(filepath.Join(t.TempDir(), "registry.leveldb"), logger.New(fixtures.LogCategory))
	assert.Nil(t, err, "open error")
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestEmptySnapshot(t *testing.T) {
	store := openStore(t)

	snapshot, err := store.Load()
	assert.Nil(t, err, "load error")
	assert.Equal(t, 0, len(snapshot.Pairs), "pairs in empty store")
	assert.Equal(t, 0, len(snapshot.Intents), "intents in empty store")
	assert.False(t, snapshot.Paused, "paused in empty store")
	assert.False(t, snapshot.Terminated, "terminated in empty store")
}

func TestRoundTrip(t *testing.T) {
	store := openStore(t)

	store.SavePair(wethDai)
	store.SavePair(wethDai.Reverse())

	store.SaveIntent(storage.StoredIntent{
		Pair:    wethDai,
		Owner:   fixtures.Alice,
		Stake:   500,
		Seq:     1,
		Locator: intent.LocatorFromAddress(fixtures.Alice),
	})
	store.SaveIntent(storage.StoredIntent{
		Pair:    wethDai,
		Owner:   fixtures.Bob,
		Stake:   1000,
		Seq:     2,
		Locator: intent.LocatorFromAddress(fixtures.Bob),
	})

	store.SetBlacklist(fixtures.TokenDAI, true)
	store.SaveMode(true, false)
	store.SaveSequence(3)

	snapshot, err := store.Load()
	assert.Nil(t, err, "load error")

	assert.Equal(t, 2, len(snapshot.Pairs), "wrong pair count")
	assert.ElementsMatch(t, []intent.PairKey{wethDai, wethDai.Reverse()}, snapshot.Pairs, "wrong pairs")

	// sorted for re-insertion: bob's larger stake first
	assert.Equal(t, 2, len(snapshot.Intents), "wrong intent count")
	assert.Equal(t, fixtures.Bob, snapshot.Intents[0].Owner, "wrong first intent")
	assert.Equal(t, uint64(1000), snapshot.Intents[0].Stake, "wrong stake")
	assert.Equal(t, intent.LocatorFromAddress(fixtures.Alice), snapshot.Intents[1].Locator, "wrong locator")

	assert.Equal(t, []string{fixtures.TokenDAI.Hex()}, []string{snapshot.Blacklist[0].Hex()}, "wrong blacklist")
	assert.True(t, snapshot.Paused, "paused flag lost")
	assert.False(t, snapshot.Terminated, "terminated flag invented")
	assert.Equal(t, uint64(3), snapshot.Sequence, "wrong sequence")
}

func TestEqualStakeLoadOrder(t *testing.T) {
	store := openStore(t)

	// same stake: the earlier sequence must come back first
	store.SaveIntent(storage.StoredIntent{Pair: wethDai, Owner: fixtures.Carol, Stake: 500, Seq: 9})
	store.SaveIntent(storage.StoredIntent{Pair: wethDai, Owner: fixtures.Alice, Stake: 500, Seq: 4})

	snapshot, err := store.Load()
	assert.Nil(t, err, "load error")
	assert.Equal(t, fixtures.Alice, snapshot.Intents[0].Owner, "sequence order lost")
	assert.Equal(t, fixtures.Carol, snapshot.Intents[1].Owner, "sequence order lost")
}

func TestDeleteAndOverwrite(t *testing.T) {
	store := openStore(t)

	store.SaveIntent(storage.StoredIntent{Pair: wethDai, Owner: fixtures.Alice, Stake: 500, Seq: 1})
	store.SaveIntent(storage.StoredIntent{Pair: wethDai, Owner: fixtures.Alice, Stake: 900, Seq: 2})
	store.SaveIntent(storage.StoredIntent{Pair: wethDai, Owner: fixtures.Bob, Stake: 100, Seq: 3})
	store.DeleteIntent(wethDai, fixtures.Bob)

	snapshot, err := store.Load()
	assert.Nil(t, err, "load error")
	assert.Equal(t, 1, len(snapshot.Intents), "wrong intent count")
	assert.Equal(t, uint64(900), snapshot.Intents[0].Stake, "overwrite lost")

	store.SetBlacklist(fixtures.TokenDAI, true)
	store.SetBlacklist(fixtures.TokenDAI, false)

	snapshot, err = store.Load()
	assert.Nil(t, err, "load error")
	assert.Equal(t, 0, len(snapshot.Blacklist), "blacklist removal lost")
}

// counter writes from registrations on different pairs are not ordered,
// so a stale value can land last; reload must never hand out a
// sequence number an intent row already carries
func TestLoadRecoversLaggingSequence(t *testing.T) {
	store := openStore(t)

	store.SaveIntent(storage.StoredIntent{Pair: wethDai, Owner: fixtures.Bob, Stake: 500, Seq: 5})
	store.SaveSequence(5)
	store.SaveSequence(4)

	snapshot, err := store.Load()
	assert.Nil(t, err, "load error")
	assert.Equal(t, uint64(5), snapshot.Sequence, "sequence regressed below stored intents")
}
