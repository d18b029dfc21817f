package heap

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

var (
	ErrEmptyHeap     = errors.New("heap is empty")
	ErrIncomparable  = errors.New("elements are not mutually orderable")
	ErrAbsentElement = errors.New("comparator does not accept absent elements")
)

// IncomparableElementError is returned by the natural ordering when two elements
// have no intrinsic order relative to each other.
type IncomparableElementError struct {
	Left  reflect.Type
	Right reflect.Type
}

func (me *IncomparableElementError) Error() string {
	return fmt.Sprintf("cannot order %v against %v", me.Left, me.Right)
}

func (me *IncomparableElementError) Is(target error) bool {
	return target == ErrIncomparable
}
