// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claimtrie

import (
	"encoding/base64"
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/claimtrie/claimd/claim"
	"github.com/claimtrie/claimd/daemon"
	"github.com/claimtrie/claimd/fault"
	"github.com/claimtrie/claimd/queryexec"
	"github.com/claimtrie/claimd/rpc/ratelimit"
)

const (
	rateLimitClaimtrie = 200
	rateBurstClaimtrie = 100

	maximumClaimIds = 100

	claimIdHexLength = 40
)

// Claimtrie - an RPC entry for claim trie related functions
type Claimtrie struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Executor  queryexec.Executor
	Daemon    daemon.Daemon
	Formatter *claim.Formatter
}

// SearchArguments - criteria for the claim search RPC request
type SearchArguments struct {
	Criteria map[string]interface{} `json:"criteria"`
}

// ResolveArguments - urls for the resolve RPC request
type ResolveArguments struct {
	URLs []string `json:"urls"`
}

// PayloadReply - an opaque serialized result set
type PayloadReply struct {
	Payload string `json:"payload"`
}

// ClaimsArguments - claim ids for the get claims RPC request
type ClaimsArguments struct {
	Ids []string `json:"ids"`
}

// ClaimsReply - one canonical record per found claim
//
// every requested id gets an entry; ids the daemon or the local
// index does not know map to an empty record
type ClaimsReply struct {
	Claims map[string]interface{} `json:"claims"`
}

func New(
	log *logger.L,
	executor queryexec.Executor,
	d daemon.Daemon,
	index claim.AddressGetter,
	height func() uint64,
) *Claimtrie {
	return &Claimtrie{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitClaimtrie, rateBurstClaimtrie),
		Executor: executor,
		Daemon:   d,
		Formatter: &claim.Formatter{
			Index:  index,
			Height: height,
		},
	}
}

func validClaimId(claimId string) bool {
	if claimIdHexLength != len(claimId) {
		return false
	}
	_, err := hex.DecodeString(claimId)
	return nil == err
}

// Search - find claims matching the criteria
//
// a claim_id criterion is validated before the query ever reaches a
// worker
func (c *Claimtrie) Search(arguments *SearchArguments, reply *PayloadReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	if claimId, ok := arguments.Criteria["claim_id"]; ok {
		s, ok := claimId.(string)
		if !ok || !validClaimId(s) {
			return fault.InvalidClaimId
		}
	}

	payload, err := c.Executor.Search(arguments.Criteria)
	if nil != err {
		return err
	}

	reply.Payload = base64.StdEncoding.EncodeToString(payload)
	return nil
}

// Resolve - find the claim each url refers to
func (c *Claimtrie) Resolve(arguments *ResolveArguments, reply *PayloadReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	payload, err := c.Executor.Resolve(arguments.URLs)
	if nil != err {
		return err
	}

	reply.Payload = base64.StdEncoding.EncodeToString(payload)
	return nil
}

// GetClaimsByIds - fetch canonical claim records from the daemon
//
// claims the daemon returns without a value are not real published
// claims and map to empty records, as do claims the local index has
// no address for
func (c *Claimtrie) GetClaimsByIds(arguments *ClaimsArguments, reply *ClaimsReply) error {

	if err := ratelimit.LimitN(c.Limiter, len(arguments.Ids), maximumClaimIds); nil != err {
		return err
	}

	for _, claimId := range arguments.Ids {
		if !validClaimId(claimId) {
			return fault.InvalidClaimId
		}
	}

	reply.Claims = make(map[string]interface{}, len(arguments.Ids))
	for _, claimId := range arguments.Ids {
		reply.Claims[claimId] = map[string]interface{}{}
	}

	records, err := c.Daemon.GetClaimsByIds(arguments.Ids...)
	if nil != err {
		return err
	}

	for _, raw := range records {
		if !raw.HasValue() {
			continue
		}

		record, err := c.Formatter.Format(raw)
		if nil != err {
			return err
		}
		if nil == record {
			continue
		}

		// keyed by the record's own id, not request position
		reply.Claims[record.ClaimId] = record
	}

	return nil
}
