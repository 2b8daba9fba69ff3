// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUnsupportedMediaType is returned when a delivery is not application/json.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrNoActionNeeded signals a delivery that requires no reconciliation; not a failure.
	ErrNoActionNeeded = errors.New("no action needed")
	// ErrInvalidPayload signals a payload missing required fields.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrUnexpectedStatus signals an outbound call that answered with status >= 300.
	ErrUnexpectedStatus = errors.New("unexpected upstream status")
)
