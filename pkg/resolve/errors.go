package resolve

import (
	"errors"
	"fmt"

	"github.com/modweaver/modweaver/pkg/module"
)

// ContradictionError reports that two capabilities in effective conflict
// within the same conflict group declare different preferred modules. It is
// a configuration error: retrying resolution cannot fix it, only changing
// the capability declarations can.
//
// Narrowing performed for earlier capabilities in the same invocation stays
// in effect; the contradiction is detected before any removal for the
// offending pair.
type ContradictionError struct {
	// FirstCapability is the capability whose preference was selected first.
	FirstCapability string

	// FirstPreferred is the preferred module of the first capability.
	FirstPreferred module.Identifier

	// SecondCapability is the capability whose preference disagreed.
	SecondCapability string

	// SecondPreferred is the preferred module of the second capability.
	SecondPreferred module.Identifier

	// Participants is the full participant history of the conflict group,
	// including modules already eliminated.
	Participants []module.Identifier
}

// Error implements the error interface.
func (e *ContradictionError) Error() string {
	return fmt.Sprintf(
		"cannot choose between %s because they provide the same capabilities (%s and %s) but disagree on the preferred module (%s vs %s)",
		module.Join(e.Participants, " or "),
		e.FirstCapability, e.SecondCapability,
		e.FirstPreferred, e.SecondPreferred,
	)
}

// IsContradiction reports whether err is (or wraps) a ContradictionError.
func IsContradiction(err error) bool {
	var e *ContradictionError
	return errors.As(err, &e)
}
