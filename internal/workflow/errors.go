package workflow

import "errors"

var (
	// ErrRegisterNotOnhold signals an approve/reject attempt on a
	// registration that already left the Onhold state.
	ErrRegisterNotOnhold = errors.New("registration is no longer on hold")

	// ErrRegisterNotAssignable signals a zone assignment attempt on a
	// registration that is neither on hold nor approved-without-zone.
	ErrRegisterNotAssignable = errors.New("registration cannot take a zone assignment in its current state")

	// ErrZoneRequired signals a zone assignment attempt without a zone.
	ErrZoneRequired = errors.New("a zone must be selected")

	// ErrSwapAlreadyDecided signals an approve/reject attempt on a swap
	// request that already reached a terminal state.
	ErrSwapAlreadyDecided = errors.New("swap request has already been decided")
)
