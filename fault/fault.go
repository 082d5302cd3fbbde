// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AccessError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrCustodyTransferFailed = ProcessError("custody transfer failed")
	ErrEntryNotFound         = NotFoundError("entry not found")
	ErrIndexNotFound         = NotFoundError("index not found")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidIPAddress      = InvalidError("invalid ip address")
	ErrInvalidLocator        = InvalidError("invalid locator")
	ErrMissingParameters     = InvalidError("missing parameters")
	ErrNotAuthorised         = AccessError("not authorised")
	ErrNotInitialised        = ProcessError("not initialised")
	ErrNotPaused             = InvalidError("registry is not paused")
	ErrPairIsBlacklisted     = AccessError("pair is blacklisted")
	ErrPaused                = AccessError("registry is paused")
	ErrRateLimiting          = ProcessError("rate limiting")
	ErrTerminated            = AccessError("registry is terminated")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccessError) Error() string   { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrAccess(e error) bool   { _, ok := e.(AccessError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
