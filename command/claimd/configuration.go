// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/claimtrie/claimd/chain"
	"github.com/claimtrie/claimd/configuration"
	"github.com/claimtrie/claimd/daemon"
	"github.com/claimtrie/claimd/queryexec"
	"github.com/claimtrie/claimd/rpc"
	"github.com/claimtrie/claimd/rpc/listeners"
	"github.com/claimtrie/claimd/util"
)

// basic defaults (directories and files are relative to the
// "data_directory" from the configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultMainnetDatabase  = chain.Mainnet + ".leveldb"
	defaultTestnetDatabase  = chain.Testnet + ".leveldb"
	defaultRegtestDatabase  = chain.Regtest + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "claimd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients   = 10
	defaultRPCBandwidth = 25000000 // 25Mbps
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	ProfileHTTP   string       `gluamapper:"profile_http" json:"profile_http"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	ClientRPC listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Query     rpc.QueryConfiguration     `gluamapper:"query" json:"query"`
	Daemon    daemon.Configuration       `gluamapper:"daemon" json:"daemon"`
	Logging   logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Mainnet,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultMainnetDatabase,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Bandwidth:          defaultRPCBandwidth,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// a zero worker count is a valid setting, so the unset
		// sentinel must be seeded before the file is parsed
		Query: rpc.QueryConfiguration{
			Workers: queryexec.UnsetWorkers,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// abort if the chain name is not recognised
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default, pick the chain's own
	if options.Database.Name == defaultMainnetDatabase {
		switch options.Chain {
		case chain.Mainnet:
			// already correct default
		case chain.Testnet:
			options.Database.Name = defaultTestnetDatabase
		case chain.Regtest:
			options.Database.Name = defaultRegtestDatabase
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths cannot be forced
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// the database name is relative to the database directory
	options.Database.Name = util.EnsureAbsolute(options.Database.Directory, options.Database.Name)

	// the query workers run against the same index unless the
	// configuration points them elsewhere
	if "" == options.Query.IndexDatabase {
		options.Query.IndexDatabase = options.Database.Name
	} else {
		options.Query.IndexDatabase = util.EnsureAbsolute(options.DataDirectory, options.Query.IndexDatabase)
	}
	options.Query.Chain = options.Chain

	// done
	return options, nil
}
