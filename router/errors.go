package router

import "errors"

var (
	// ErrTransactionRejected is returned when a router transaction reverts or cannot be submitted
	ErrTransactionRejected = errors.New("transaction rejected")
	// ErrEnrollmentRejected is returned together with ErrTransactionRejected when enrollRemoteRouter fails
	ErrEnrollmentRejected = errors.New("enrollment rejected")
	// ErrDispatchFailed is returned when the fee estimation or the send transaction fails
	ErrDispatchFailed = errors.New("dispatch failed")
	// ErrInvalidPayload is returned when a message payload can not be encoded
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrInstanceNotFound is returned when the local mirror has no record of a router
	ErrInstanceNotFound = errors.New("router instance not found")
)
