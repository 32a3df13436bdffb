// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/claimtrie/claimd/daemon"
	"github.com/claimtrie/claimd/fault"
	"github.com/claimtrie/claimd/rpc/fixtures"
	"github.com/claimtrie/claimd/rpc/mocks"
	"github.com/claimtrie/claimd/rpc/transaction"
)

const testHash = "00000000000000000000000000000000000000000000000000000000deadbeef"

func testHeight() uint64 { return 100 }

func TestGetHeightConfirmed(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDaemon(ctl)
	confirmations := int64(3)
	d.EXPECT().
		GetRawTransaction(testHash).
		Return(&daemon.RawTransaction{Hex: "00", Confirmations: &confirmations}, nil).
		Times(1)

	tr := transaction.New(logger.New(fixtures.LogCategory), d, testHeight)

	var reply transaction.HeightReply
	err := tr.GetHeight(&transaction.HeightArguments{TxHash: testHash}, &reply)
	assert.Nil(t, err, "wrong GetHeight")
	assert.NotNil(t, reply.Height, "missing height")
	assert.Equal(t, int64(98), *reply.Height, "wrong height")
}

func TestGetHeightMempool(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDaemon(ctl)
	d.EXPECT().
		GetRawTransaction(testHash).
		Return(&daemon.RawTransaction{Hex: "00"}, nil).
		Times(1)

	tr := transaction.New(logger.New(fixtures.LogCategory), d, testHeight)

	var reply transaction.HeightReply
	err := tr.GetHeight(&transaction.HeightArguments{TxHash: testHash}, &reply)
	assert.Nil(t, err, "wrong GetHeight")
	assert.NotNil(t, reply.Height, "missing height")
	assert.Equal(t, int64(-1), *reply.Height, "mempool transaction must read -1")
}

func TestGetHeightUnknown(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDaemon(ctl)
	d.EXPECT().GetRawTransaction(testHash).Return(nil, nil).Times(1)

	tr := transaction.New(logger.New(fixtures.LogCategory), d, testHeight)

	var reply transaction.HeightReply
	err := tr.GetHeight(&transaction.HeightArguments{TxHash: testHash}, &reply)
	assert.Nil(t, err, "wrong GetHeight")
	assert.Nil(t, reply.Height, "unknown transaction must read null")
}

func TestGetHeightBadHash(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no expectations: a bad hash must never reach the daemon
	d := mocks.NewMockDaemon(ctl)

	tr := transaction.New(logger.New(fixtures.LogCategory), d, testHeight)

	badHashes := []string{
		"",
		"beef",
		testHash[:63],
		testHash + "00",
		strings.Replace(testHash, "d", "x", 1),
	}
	for _, hash := range badHashes {
		var reply transaction.HeightReply
		err := tr.GetHeight(&transaction.HeightArguments{TxHash: hash}, &reply)
		assert.Equal(t, fault.InvalidTransactionHash, err, "bad hash accepted: %q", hash)
	}
}
