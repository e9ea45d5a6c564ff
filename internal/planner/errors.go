package planner

import (
	"errors"
	"fmt"
)

// ErrStoreRequired indicates the planner was constructed without a translation store.
var ErrStoreRequired = errors.New("planner: translation store is required")

// ErrPathCollision indicates two pages localized to the same path.
var ErrPathCollision = errors.New("planner: localized path collision")

// PathCollisionError reports the two contending original paths behind a
// duplicate localized path. It unwraps to ErrPathCollision.
type PathCollisionError struct {
	LocalizedPath  string
	FirstOriginal  string
	SecondOriginal string
}

func (e *PathCollisionError) Error() string {
	return fmt.Sprintf("planner: pages %q and %q both localize to %q",
		e.FirstOriginal, e.SecondOriginal, e.LocalizedPath)
}

func (e *PathCollisionError) Unwrap() error {
	return ErrPathCollision
}
