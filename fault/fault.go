// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrAlreadyListed                = ExistsError("kitty is already listed for sale")
	ErrAlreadyOwner                 = ExistsError("caller already owns kitty")
	ErrCannotDecodeAccount          = InvalidError("cannot decode account")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrChecksumMismatch             = InvalidError("checksum mismatch")
	ErrConfigurationNotTable        = InvalidError("configuration did not return a table")
	ErrDatabaseVersion              = InvalidError("database version is newer than this program supports")
	ErrIdentifierOverflow           = InvalidError("kitty identifier overflow")
	ErrInvalidEntropy               = InvalidError("invalid entropy")
	ErrInvalidIdentifier            = InvalidError("invalid kitty identifier")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMigrationRequired            = ProcessError("database is in an old layout: run migrate first")
	ErrNameTooLong                  = LengthError("kitty name is too long")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrNotListed                    = NotFoundError("kitty is not listed for sale")
	ErrNotOwner                     = PermissionError("caller does not own kitty")
	ErrRecordLength                 = LengthError("record length is invalid")
	ErrSameIdentifier               = InvalidError("parents must be different kitties")
	ErrTransactionInUse             = ProcessError("transaction already in use")
	ErrTransactionNotInUse          = ProcessError("transaction not started")
	InvalidCount                    = InvalidError("invalid count")
	InvalidCursor                   = InvalidError("invalid cursor")
	InvalidIpAddress                = InvalidError("invalid IP address")
	MissingParameters               = NotFoundError("missing parameters")
	NotAvailableInReadOnlyMode      = ProcessError("not available in read-only mode")
	RateLimiting                    = ProcessError("rate limiting")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
