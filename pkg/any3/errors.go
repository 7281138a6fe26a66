package any3

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrInvalidArgument is wrapped by every error caused by an absent
	// payload or a nil function argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIllegalState reports a union with no active variant.
	ErrIllegalState = errors.New("illegal state")
)

func errAbsent(name string) error {
	return fmt.Errorf("%w: %s is nil", ErrInvalidArgument, name)
}

func errNoVariant() error {
	return fmt.Errorf("%w: no active variant", ErrIllegalState)
}

// requireFuncs reports every nil entry of fns, named f1, f2, f3.
// All of them are checked before anything is dispatched.
func requireFuncs(fns ...bool) error {
	var result *multierror.Error
	for i, isNil := range fns {
		if isNil {
			result = multierror.Append(result, errAbsent(fmt.Sprintf("f%d", i+1)))
		}
	}
	return result.ErrorOrNil()
}
