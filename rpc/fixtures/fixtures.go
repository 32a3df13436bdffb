// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

var (
	keyPairOnce sync.Once
	certificate string
	privateKey  string
)

// a throwaway self signed pair, generated once per test binary
func makeKeyPair() {
	validUntil := time.Now().Add(time.Hour)
	cert, key, err := certgen.NewTLSCertPair("claimd testing", validUntil, false, nil)
	if nil != err {
		panic(fmt.Sprintf("certificate generation failed: %s", err))
	}
	certificate = string(cert)
	privateKey = string(key)
}

// Certificate - PEM certificate for TLS tests
func Certificate() string {
	keyPairOnce.Do(makeKeyPair)
	return certificate
}

// Key - PEM private key for TLS tests
func Key() string {
	keyPairOnce.Do(makeKeyPair)
	return privateKey
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
