// Package apierrors defines the error taxonomy surfaced by the gas estimate
// endpoint and the HTTP status each kind maps to.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure.
type Kind string

const (
	KindInvalidRequest    Kind = "InvalidRequest"
	KindMissingParameters Kind = "MissingParameters"
	KindInvalidAddress    Kind = "InvalidAddress"
	KindInvalidABI        Kind = "InvalidABI"
	KindFunctionNotFound  Kind = "FunctionNotFound"
	KindWouldRevert       Kind = "WouldRevert"
	KindBlockRangeInvalid Kind = "BlockRangeInvalid"
	KindFeeUnavailable    Kind = "FeeUnavailable"
	KindChainError        Kind = "ChainError"
	KindPriceServiceError Kind = "PriceServiceError"
)

// Messages returned to callers
const (
	MsgMissingParameters  = "Missing required parameters for contract interaction."
	MsgInvalidContract    = "Invalid contract address."
	MsgInvalidArgAddress  = "Invalid address in arguments."
	MsgWouldRevert        = "Transaction would revert, likely due to insufficient balance or invalid parameters."
	MsgBlockRangeInvalid  = "Number of blocks must be between 1 and 100"
	MsgFeeUnavailable     = "Unable to fetch gas price"
	PrefixBlocks          = "Failed to fetch blocks: "
	PrefixGasPrice        = "Failed to fetch gas price: "
	PrefixViewFunction    = "Failed to execute view function: "
	PrefixEthPrice        = "Failed to fetch ETH price: "
	PrefixInvalidABI      = "Invalid ABI: "
	PrefixInvalidRequest  = "Invalid request body: "
	formatFunctionMissing = "Function %s not found in ABI"
)

// Error is a classified failure carrying the caller-facing message.
type Error struct {
	Kind    Kind
	Message string
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the kind to a response status code. Caller mistakes and
// predicted reverts are 400; remote-dependency failures are 500.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidRequest,
		KindMissingParameters,
		KindInvalidAddress,
		KindInvalidABI,
		KindFunctionNotFound,
		KindWouldRevert,
		KindBlockRangeInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error of the given kind around a cause.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// FunctionNotFound reports a name absent from the supplied ABI.
func FunctionNotFound(name string) *Error {
	return New(KindFunctionNotFound, fmt.Sprintf(formatFunctionMissing, name))
}

// WouldRevert reports a simulated call that reverted; reason is the node's
// message, passed through verbatim.
func WouldRevert(err error, reason string) *Error {
	return &Error{Kind: KindWouldRevert, Message: MsgWouldRevert, Details: reason, Err: err}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err is a classified error of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Kind == kind
}

// WithPrefix re-labels a remote failure with a mode-specific prefix. Errors of
// other kinds (reverts, missing fee data) keep their own message.
func WithPrefix(err error, prefix string) error {
	if err == nil {
		return nil
	}

	apiErr, ok := As(err)
	if !ok {
		return Wrap(KindChainError, err, prefix+err.Error())
	}

	switch apiErr.Kind {
	case KindChainError, KindPriceServiceError:
		return &Error{Kind: apiErr.Kind, Message: prefix + apiErr.Message, Details: apiErr.Details, Err: apiErr.Err}
	default:
		return apiErr
	}
}
