// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all supported chains
const (
	Mainnet = "mainnet"
	Testnet = "testnet"
	Regtest = "regtest"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Mainnet, Testnet, Regtest:
		return true
	default:
		return false
	}
}
