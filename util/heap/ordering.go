package heap

import (
	"cmp"
	"reflect"
	"strings"

	"github.com/navijation/njheap/util"
)

// Comparator is a three-way comparison over possibly absent elements. A
// non-nil error aborts the heap operation that asked for the comparison.
type Comparator[T any] func(a, b util.Optional[T]) (int, error)

// Comparable types order themselves.
type Comparable[T any] interface {
	Compare(T) int
}

// NaturalOrder orders elements by their intrinsic ordering, placing absent
// elements after every present one. Elements are ordered through a
// Compare(T) int method, or by value when both share a type whose kind is an
// integer, float or string. Anything else fails with *IncomparableElementError.
func NaturalOrder[T any]() Comparator[T] {
	return absentLast(compareDynamic[T])
}

// Ordered is the ordering used by New: cmp.Compare, with absent elements last.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return absentLast(compareOrdered[T])
}

// Strict adapts a plain comparator. Absent elements fail with ErrAbsentElement.
func Strict[T any](compare func(a, b T) int) Comparator[T] {
	return func(a, b util.Optional[T]) (int, error) {
		aValue, aExists := a.Unpack()
		bValue, bExists := b.Unpack()
		if !aExists || !bExists {
			return 0, ErrAbsentElement
		}
		return compare(aValue, bValue), nil
	}
}

// Reversed inverts compare, turning the min-heap into a max-first ordering.
func Reversed[T any](compare Comparator[T]) Comparator[T] {
	return func(a, b util.Optional[T]) (int, error) {
		return compare(b, a)
	}
}

func absentLast[T any](compare func(a, b T) (int, error)) Comparator[T] {
	return func(a, b util.Optional[T]) (int, error) {
		aValue, aExists := a.Unpack()
		bValue, bExists := b.Unpack()
		switch {
		case !aExists && !bExists:
			return 0, nil
		case !aExists:
			return 1, nil
		case !bExists:
			return -1, nil
		}
		return compare(aValue, bValue)
	}
}

func compareOrdered[T cmp.Ordered](a, b T) (int, error) {
	return cmp.Compare(a, b), nil
}

func compareComparable[T Comparable[T]](a, b T) (int, error) {
	return a.Compare(b), nil
}

func compareDynamic[T any](a, b T) (int, error) {
	if self, ok := any(a).(Comparable[T]); ok {
		return self.Compare(b), nil
	}

	aValue, bValue := reflect.ValueOf(a), reflect.ValueOf(b)
	if !aValue.IsValid() || !bValue.IsValid() || aValue.Type() != bValue.Type() {
		return 0, incomparable(aValue, bValue)
	}

	switch aValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(aValue.Int(), bValue.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(aValue.Uint(), bValue.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(aValue.Float(), bValue.Float()), nil
	case reflect.String:
		return strings.Compare(aValue.String(), bValue.String()), nil
	default:
		return 0, incomparable(aValue, bValue)
	}
}

func incomparable(a, b reflect.Value) error {
	err := &IncomparableElementError{}
	if a.IsValid() {
		err.Left = a.Type()
	}
	if b.IsValid() {
		err.Right = b.Type()
	}
	return err
}
