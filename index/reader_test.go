// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index_test

import (
	"bytes"
	"encoding/hex"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claimtrie/claimd/chain"
	"github.com/claimtrie/claimd/fault"
	"github.com/claimtrie/claimd/index"
	"github.com/claimtrie/claimd/storage"
)

// seeded claims: three compete for "gold", one stands alone
var (
	goldBig   = seedEntry(0xaa, "gold", 900, 20)
	goldSmall = seedEntry(0xbb, "gold", 100, 10)
	goldOld   = seedEntry(0xcc, "gold", 900, 5)
	lone      = seedEntry(0xdd, "lone", 50, 30)
)

func seedEntry(fill byte, name string, effective uint64, height uint64) *index.Entry {
	return &index.Entry{
		ClaimId:         bytes.Repeat([]byte{fill}, 20),
		Name:            name,
		TxId:            bytes.Repeat([]byte{fill ^ 0xff}, 32),
		NOut:            1,
		Amount:          effective / 2,
		EffectiveAmount: effective,
		Height:          height,
		ValidAtHeight:   height + 1,
	}
}

func seedDatabase(t *testing.T) string {
	dir, err := ioutil.TempDir("", "index-test")
	if nil != err {
		t.Fatalf("tempdir error: %s", err)
	}

	database := filepath.Join(dir, "index.leveldb")
	conn, err := storage.Open(database, storage.ReadWrite)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}

	for _, e := range []*index.Entry{goldBig, goldSmall, goldOld, lone} {
		if err := conn.Claims.Put(e.ClaimId, e.Pack()); nil != err {
			t.Fatalf("put error: %s", err)
		}
	}

	// controlling order is computed at query time, store worst first
	goldIds := append(append(append([]byte{}, goldSmall.ClaimId...), goldBig.ClaimId...), goldOld.ClaimId...)
	if err := conn.Names.Put([]byte("gold"), goldIds); nil != err {
		t.Fatalf("put error: %s", err)
	}
	if err := conn.Names.Put([]byte("lone"), lone.ClaimId); nil != err {
		t.Fatalf("put error: %s", err)
	}

	if err := conn.State.Put(storage.ChainKey, []byte(chain.Regtest)); nil != err {
		t.Fatalf("put error: %s", err)
	}
	if err := conn.State.PutN(storage.HeightKey, 100); nil != err {
		t.Fatalf("put error: %s", err)
	}

	if err := conn.Close(); nil != err {
		t.Fatalf("close error: %s", err)
	}
	return database
}

func setupReader(t *testing.T) (*index.Reader, func()) {
	database := seedDatabase(t)

	r, err := index.Open(database, chain.Regtest)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	return r, func() {
		_ = r.Close()
		_ = os.RemoveAll(filepath.Dir(database))
	}
}

func searchClaims(t *testing.T, r *index.Reader, criteria map[string]interface{}) []*index.Entry {
	payload, err := r.Search(criteria)
	assert.NoError(t, err, "search error")

	entries, err := index.UnpackClaims(payload)
	assert.NoError(t, err, "unpack error")
	return entries
}

func TestOpenWrongChain(t *testing.T) {
	database := seedDatabase(t)
	defer os.RemoveAll(filepath.Dir(database))

	_, err := index.Open(database, chain.Mainnet)
	assert.Equal(t, fault.WrongChain, err, "chain mismatch not detected")

	_, err = index.Open(database, "sidechain")
	assert.Equal(t, fault.InvalidChain, err, "bad chain name accepted")
}

func TestSearchByClaimId(t *testing.T) {
	r, teardown := setupReader(t)
	defer teardown()

	entries := searchClaims(t, r, map[string]interface{}{
		"claim_id": hex.EncodeToString(lone.ClaimId),
	})
	assert.Equal(t, []*index.Entry{lone}, entries, "claim mismatch")

	entries = searchClaims(t, r, map[string]interface{}{
		"claim_id": "00112233445566778899aabbccddeeff00112233",
	})
	assert.Empty(t, entries, "unknown claim id must return an empty set")

	_, err := r.Search(map[string]interface{}{"claim_id": "beef"})
	assert.Equal(t, fault.InvalidClaimId, err, "short claim id accepted")
}

func TestSearchByName(t *testing.T) {
	r, teardown := setupReader(t)
	defer teardown()

	entries := searchClaims(t, r, map[string]interface{}{"name": "Gold"})
	assert.Equal(t, []*index.Entry{goldOld, goldBig, goldSmall}, entries,
		"claims must sort by effective amount then height")
}

func TestSearchPagination(t *testing.T) {
	r, teardown := setupReader(t)
	defer teardown()

	entries := searchClaims(t, r, map[string]interface{}{
		"name":   "gold",
		"offset": float64(1),
		"limit":  float64(1),
	})
	assert.Equal(t, []*index.Entry{goldBig}, entries, "page mismatch")

	entries = searchClaims(t, r, map[string]interface{}{
		"name":   "gold",
		"offset": float64(10),
	})
	assert.Empty(t, entries, "offset past the end must return an empty set")

	_, err := r.Search(map[string]interface{}{"name": "gold", "limit": float64(-1)})
	assert.Equal(t, fault.InvalidCount, err, "negative limit accepted")
}

func TestSearchMissingCriteria(t *testing.T) {
	r, teardown := setupReader(t)
	defer teardown()

	_, err := r.Search(map[string]interface{}{})
	assert.Equal(t, fault.MissingParameters, err, "empty criteria accepted")
}

func TestResolve(t *testing.T) {
	r, teardown := setupReader(t)
	defer teardown()

	payload, err := r.Resolve([]string{
		"gold",
		"claim://gold#" + hex.EncodeToString(goldSmall.ClaimId),
		"gold#bb",
		"nothing-here",
	})
	assert.NoError(t, err, "resolve error")

	resolutions, err := index.UnpackResolutions(payload)
	assert.NoError(t, err, "unpack error")
	assert.Equal(t, 4, len(resolutions), "resolution count")

	// bare name selects the controlling claim
	assert.Equal(t, goldOld, resolutions[0].Claim, "controlling claim mismatch")
	// full id and prefix both select the exact claim
	assert.Equal(t, goldSmall, resolutions[1].Claim, "full id mismatch")
	assert.Equal(t, goldSmall, resolutions[2].Claim, "prefix mismatch")
	// unknown name misses, without error
	assert.Equal(t, "nothing-here", resolutions[3].URL, "url mismatch")
	assert.Nil(t, resolutions[3].Claim, "miss must carry no claim")
}

func TestResolveBadURL(t *testing.T) {
	r, teardown := setupReader(t)
	defer teardown()

	_, err := r.Resolve([]string{"gold#zz"})
	assert.Equal(t, fault.InvalidClaimURL, err, "bad claim id digits accepted")
}
