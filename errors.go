package sellergrid

import (
	"errors"
	"fmt"
)

// User-visible failures. None of them is fatal: every operation that
// returns one leaves the prior ledger state intact.
var (
	// ErrNoSelection rejects a bulk removal when no item is selected.
	ErrNoSelection = errors.New("no items are selected")

	// ErrMissingSellerID rejects a print request while the seller id is empty.
	ErrMissingSellerID = errors.New("a seller id is required before printing")

	// ErrNoValidItems rejects a print request when no selected item has a
	// positive price.
	ErrNoValidItems = errors.New("no valid items selected for printing")
)

// ImportParseError reports a malformed import payload. The current ledger
// state is guaranteed untouched when it is returned.
type ImportParseError struct {
	Err error
}

func (e *ImportParseError) Error() string {
	return fmt.Sprintf("cannot parse imported data: %v", e.Err)
}

func (e *ImportParseError) Unwrap() error { return e.Err }
