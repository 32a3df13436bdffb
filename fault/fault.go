// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	CorruptedPayload             = ProcessError("corrupted tlv payload")
	DatabaseIsNotSet             = NotFoundError("database is not set")
	ExecutorStopped              = ProcessError("query executor is stopped")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidClaimId               = InvalidError("claim id must be 20 hex encoded bytes")
	InvalidClaimURL              = InvalidError("invalid claim url")
	InvalidCount                 = InvalidError("invalid count")
	InvalidIpAddress             = InvalidError("invalid ip address")
	InvalidLegacyEncoding        = InvalidError("legacy encoded string has code points above 0xff")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	InvalidTransactionHash       = InvalidError("transaction hash must be 32 hex encoded bytes")
	InvalidWorkerCount           = InvalidError("invalid worker count")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingClaimId               = InvalidError("daemon claim record has no claim id")
	MissingDaemonURL             = InvalidError("daemon url is required")
	MissingParameters            = InvalidError("missing parameters")
	NotInitialised               = NotFoundError("not initialised")
	RateLimiting                 = ProcessError("rate limiting")
	WrongChain                   = InvalidError("index database belongs to a different chain")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine if an exists error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine if an invalid error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine if a not found error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine if a process error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
