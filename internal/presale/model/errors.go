package model

import "errors"

// Rejections of the sale protocol. Every one aborts the whole call with no state change.
var (
	ErrUnauthorized         = errors.New("presale: caller is not the administrator")
	ErrPhaseClosed          = errors.New("presale: phase is closed")
	ErrPhaseAlreadyOpen     = errors.New("presale: phase already opened")
	ErrPhaseAlreadyClosed   = errors.New("presale: phase already closed")
	ErrNotWhitelisted       = errors.New("presale: address not whitelisted")
	ErrMintLimitExceeded    = errors.New("presale: mint limit exceeded")
	ErrInvalidAmount        = errors.New("presale: amount should be positive")
	ErrSoldOut              = errors.New("presale: not enough items left")
	ErrInvalidPayment       = errors.New("presale: invalid payment")
	ErrInvalidConfiguration = errors.New("presale: invalid configuration")
	ErrUnknownToken         = errors.New("presale: unknown token id")
)

var rejections = []error{
	ErrUnauthorized,
	ErrPhaseClosed,
	ErrPhaseAlreadyOpen,
	ErrPhaseAlreadyClosed,
	ErrNotWhitelisted,
	ErrMintLimitExceeded,
	ErrInvalidAmount,
	ErrSoldOut,
	ErrInvalidPayment,
	ErrInvalidConfiguration,
	ErrUnknownToken,
}

// IsRejection reports whether err is a protocol rejection rather than an infrastructure failure.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}
