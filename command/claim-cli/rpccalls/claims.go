// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/base64"
	"fmt"

	"github.com/claimtrie/claimd/index"
	"github.com/claimtrie/claimd/rpc/claimtrie"
)

// Search - find claims matching the criteria
//
// the server payload is opaque, decode it locally for display
func (c *Client) Search(criteria map[string]interface{}) ([]*index.Entry, error) {

	args := claimtrie.SearchArguments{Criteria: criteria}

	if c.verbose {
		fmt.Fprintf(c.handle, "search criteria: %v\n", criteria)
	}

	var reply claimtrie.PayloadReply
	if err := c.client.Call("Blockchain.Claimtrie.Search", &args, &reply); nil != err {
		return nil, err
	}

	payload, err := base64.StdEncoding.DecodeString(reply.Payload)
	if nil != err {
		return nil, err
	}
	return index.UnpackClaims(payload)
}

// Resolve - find the claim each url refers to
func (c *Client) Resolve(urls []string) ([]index.Resolution, error) {

	args := claimtrie.ResolveArguments{URLs: urls}

	if c.verbose {
		fmt.Fprintf(c.handle, "resolve urls: %v\n", urls)
	}

	var reply claimtrie.PayloadReply
	if err := c.client.Call("Blockchain.Claimtrie.Resolve", &args, &reply); nil != err {
		return nil, err
	}

	payload, err := base64.StdEncoding.DecodeString(reply.Payload)
	if nil != err {
		return nil, err
	}
	return index.UnpackResolutions(payload)
}

// GetClaimsByIds - fetch canonical claim records
func (c *Client) GetClaimsByIds(ids []string) (map[string]interface{}, error) {

	args := claimtrie.ClaimsArguments{Ids: ids}

	if c.verbose {
		fmt.Fprintf(c.handle, "claim ids: %v\n", ids)
	}

	var reply claimtrie.ClaimsReply
	if err := c.client.Call("Blockchain.Claimtrie.GetClaimsByIds", &args, &reply); nil != err {
		return nil, err
	}
	return reply.Claims, nil
}
