// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package daemon_test

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/claimtrie/claimd/daemon"
)

const (
	logDirectory = "testing"
	logCategory  = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(logDirectory)
	_ = os.Mkdir(logDirectory, 0700)

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()
	_ = os.RemoveAll(logDirectory)
	os.Exit(rc)
}

type daemonCall struct {
	Id     uint64        `json:"id"`
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

// canned daemon answering from a method → result table
func testDaemon(t *testing.T, results map[string]string, requests *int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		assert.True(t, ok, "missing basic auth")
		assert.Equal(t, "user", username, "wrong username")
		assert.Equal(t, "secret", password, "wrong password")

		body, err := ioutil.ReadAll(r.Body)
		assert.Nil(t, err, "wrong body read")

		call := daemonCall{}
		err = json.Unmarshal(body, &call)
		assert.Nil(t, err, "wrong request encoding")

		if nil != requests {
			*requests += 1
		}

		result, ok := results[call.Method]
		if !ok {
			result = "null"
		}
		_, _ = w.Write([]byte(`{"id":1,"result":` + result + `,"error":null}`))
	}))
}

func testClient(t *testing.T, url string) *daemon.Client {
	client, err := daemon.New(logger.New(logCategory), &daemon.Configuration{
		URL:      url,
		Username: "user",
		Password: "secret",
	})
	assert.Nil(t, err, "wrong New")
	return client
}

func TestGetRawTransactionConfirmed(t *testing.T) {
	server := testDaemon(t, map[string]string{
		"getrawtransaction": `{"hex":"0100","confirmations":3}`,
	}, nil)
	defer server.Close()

	client := testClient(t, server.URL)

	info, err := client.GetRawTransaction("00")
	assert.Nil(t, err, "wrong GetRawTransaction")
	assert.NotNil(t, info, "missing transaction")
	assert.Equal(t, "0100", info.Hex, "wrong hex")
	assert.NotNil(t, info.Confirmations, "missing confirmations")
	assert.Equal(t, int64(3), *info.Confirmations, "wrong confirmations")
}

func TestGetRawTransactionMempool(t *testing.T) {
	server := testDaemon(t, map[string]string{
		"getrawtransaction": `{"hex":"0100"}`,
	}, nil)
	defer server.Close()

	client := testClient(t, server.URL)

	info, err := client.GetRawTransaction("00")
	assert.Nil(t, err, "wrong GetRawTransaction")
	assert.NotNil(t, info, "missing transaction")
	assert.Nil(t, info.Confirmations, "unexpected confirmations")
}

func TestGetRawTransactionUnknown(t *testing.T) {
	server := testDaemon(t, nil, nil)
	defer server.Close()

	client := testClient(t, server.URL)

	info, err := client.GetRawTransaction("00")
	assert.Nil(t, err, "wrong GetRawTransaction")
	assert.Nil(t, info, "transaction fabricated from null result")
}

func TestDaemonError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"result":null,"error":{"code":-1,"message":"boom"}}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	_, err := client.GetRawTransaction("00")
	assert.NotNil(t, err, "daemon error swallowed")
	assert.Contains(t, err.Error(), "boom", "wrong error text")
}

func TestGetClaimsByIds(t *testing.T) {
	requests := 0
	server := testDaemon(t, map[string]string{
		"getclaimsbyids": `[{"claimId":"ab","name":"one","value":"xx","amount":1.5}]`,
	}, &requests)
	defer server.Close()

	client := testClient(t, server.URL)

	claims, err := client.GetClaimsByIds("ab")
	assert.Nil(t, err, "wrong GetClaimsByIds")
	assert.Equal(t, 1, len(claims), "wrong claim count")
	assert.Equal(t, "one", claims[0]["name"], "wrong name")

	// amounts must survive exactly as sent
	assert.Equal(t, json.Number("1.5"), claims[0]["amount"], "wrong amount type")

	// second fetch must come from the cache
	claims, err = client.GetClaimsByIds("ab")
	assert.Nil(t, err, "wrong GetClaimsByIds")
	assert.Equal(t, 1, len(claims), "wrong cached claim count")
	assert.Equal(t, 1, requests, "cache missed")
}

func TestNewRequiresURL(t *testing.T) {
	_, err := daemon.New(logger.New(logCategory), &daemon.Configuration{})
	assert.NotNil(t, err, "missing url accepted")
}
