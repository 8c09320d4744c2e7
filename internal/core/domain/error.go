package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid login or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrInvalidCallbackToken       = errors.New("callback token is invalid")

	// * Business errors.
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCartBadQuantity  = errors.New("line item quantity must be at least one")
	ErrBadOrderStatus   = errors.New("unknown order status")
	ErrStatusTransition = errors.New("status transition is not allowed")
	ErrOrderUnlinked    = errors.New("order is not linked to a payment transaction")
	ErrInvoiceRequest   = errors.New("payment gateway rejected the invoice request")
)
