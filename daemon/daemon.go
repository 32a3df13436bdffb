// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package daemon

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/claimtrie/claimd/claim"
	"github.com/claimtrie/claimd/fault"
)

const (
	requestTimeout = 30 * time.Second

	// raw claims change rarely compared to how often wallets
	// re-request them
	claimCacheTTL   = 30 * time.Second
	claimCachePurge = 2 * time.Minute
)

// Configuration - access parameters for the chain daemon
type Configuration struct {
	URL           string `gluamapper:"url" json:"url"`
	Username      string `gluamapper:"username" json:"username"`
	Password      string `gluamapper:"password" json:"password"`
	CACertificate string `gluamapper:"ca_certificate" json:"ca_certificate"`
}

// Daemon - the daemon calls the RPC handlers depend on
type Daemon interface {
	GetRawTransaction(hash string) (*RawTransaction, error)
	GetClaimsByIds(ids ...string) ([]claim.Raw, error)
}

// RawTransaction - verbose getrawtransaction result
//
// an unconfirmed transaction has no confirmations field at all,
// hence the pointer
type RawTransaction struct {
	Hex           string `json:"hex"`
	Confirmations *int64 `json:"confirmations"`
}

// Client - connection to one chain daemon
type Client struct {
	sync.Mutex // the request id counter and log interleaving

	log    *logger.L
	client *http.Client
	url    string

	username string
	password string

	id uint64

	claims *cache.Cache
}

// New - create a daemon client
func New(log *logger.L, conf *Configuration) (*Client, error) {

	if "" == conf.URL {
		return nil, fault.MissingDaemonURL
	}

	httpClient := &http.Client{
		Timeout: requestTimeout,
	}

	if "" != conf.CACertificate {
		pool := x509.NewCertPool()
		data, err := ioutil.ReadFile(conf.CACertificate)
		if nil != err {
			return nil, err
		}
		if !pool.AppendCertsFromPEM(data) {
			log.Criticalf("failed to parse certificate from: %q", conf.CACertificate)
			return nil, fault.MissingParameters
		}
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{
				RootCAs: pool,
			},
		}
	}

	return &Client{
		log:      log,
		client:   httpClient,
		url:      conf.URL,
		username: conf.Username,
		password: conf.Password,
		claims:   cache.New(claimCacheTTL, claimCachePurge),
	}, nil
}

// GetRawTransaction - fetch a verbose raw transaction
//
// returns nil without error when the daemon does not know the hash
func (d *Client) GetRawTransaction(hash string) (*RawTransaction, error) {
	var info *RawTransaction
	if err := d.call("getrawtransaction", []interface{}{hash, 1}, &info); nil != err {
		return nil, err
	}
	return info, nil
}

// GetClaimsByIds - batch fetch raw claim records
//
// recently fetched claims are served from a short lived cache; the
// returned order is unspecified
func (d *Client) GetClaimsByIds(ids ...string) ([]claim.Raw, error) {

	result := make([]claim.Raw, 0, len(ids))
	missing := make([]string, 0, len(ids))

	for _, id := range ids {
		if cached, ok := d.claims.Get(id); ok {
			result = append(result, cached.(claim.Raw))
		} else {
			missing = append(missing, id)
		}
	}

	if 0 == len(missing) {
		return result, nil
	}

	var fetched []claim.Raw
	if err := d.call("getclaimsbyids", []interface{}{missing}, &fetched); nil != err {
		return nil, err
	}

	for _, raw := range fetched {
		if claimId, ok := raw.ClaimId(); ok {
			d.claims.Set(claimId, raw, cache.DefaultExpiration)
		}
		result = append(result, raw)
	}

	return result, nil
}

// for encoding the RPC arguments
type rpcArguments struct {
	Id     uint64        `json:"id"`
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

// the RPC error response
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// for decoding the RPC reply
type rpcReply struct {
	Id     int64           `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// perform one HTTP JSON-RPC round trip
func (d *Client) call(method string, params []interface{}, result interface{}) error {
	d.Lock()
	defer d.Unlock()

	d.id += 1

	arguments := rpcArguments{
		Id:     d.id,
		Method: method,
		Params: params,
	}

	s, err := json.Marshal(&arguments)
	if nil != err {
		return err
	}

	d.log.Tracef("rpc send: %s", s)

	request, err := http.NewRequest("POST", d.url, bytes.NewBuffer(s))
	if nil != err {
		return err
	}
	if "" != d.username {
		request.SetBasicAuth(d.username, d.password)
	}

	response, err := d.client.Do(request)
	if nil != err {
		return err
	}
	defer response.Body.Close()

	body, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return err
	}

	d.log.Tracef("rpc receive: %s", body)

	reply := rpcReply{}
	if err := json.Unmarshal(body, &reply); nil != err {
		return err
	}

	if nil != reply.Error {
		return fault.ProcessError("daemon rpc error: " + reply.Error.Message)
	}

	if nil == result || 0 == len(reply.Result) {
		return nil
	}

	// UseNumber keeps claim amounts exactly as the daemon sent them
	decoder := json.NewDecoder(bytes.NewReader(reply.Result))
	decoder.UseNumber()
	return decoder.Decode(result)
}
