package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured = errors.New("content: store is not configured")
	ErrTransport     = errors.New("content: transport error")
	ErrRemote        = errors.New("content: store returned an error")
)

/*
TransportError is returned when the content store answers with a
non-success status code.
*/
type TransportError struct {
	Status      int
	Description string
}

func (e *TransportError) Error() string {
	if e == nil {
		return ErrTransport.Error()
	}

	return fmt.Sprintf("content store error: %d. %s", e.Status, e.Description)
}

func (e *TransportError) Unwrap() error {
	return ErrTransport
}

/*
RemoteError is returned when the store answers successfully but the
payload itself describes an error.
*/
type RemoteError struct {
	Description string
}

func (e *RemoteError) Error() string {
	if e == nil || e.Description == "" {
		return ErrRemote.Error()
	}

	return fmt.Sprintf("content store error: %s", e.Description)
}

func (e *RemoteError) Unwrap() error {
	return ErrRemote
}
