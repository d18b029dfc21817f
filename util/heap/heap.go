package heap

import (
	"cmp"
	"iter"
	"math/bits"
	"strings"

	"github.com/navijation/njheap/util"
)

const (
	// DefaultCapacity is the initial number of slots, including the unused slot 0.
	DefaultCapacity = 11
	// MaxLoadFactor is the occupancy above which Add grows the storage.
	MaxLoadFactor = 0.64
)

// MinHeap is a binary min-heap over possibly absent elements. Storage is
// indexed from 1 so that the parent of slot i is i/2 and its children are 2i
// and 2i+1; slot 0 is never used.
//
// A MinHeap must be created with one of the constructors, and is not safe for
// concurrent use.
type MinHeap[T any] struct {
	storage []util.Optional[T]
	count   int
	compare Comparator[T]
	// natural orderings place absent elements last, so they never sift up
	natural bool
}

// New creates a heap ordered by the natural ordering of T.
func New[T cmp.Ordered]() *MinHeap[T] {
	return newMinHeap(Ordered[T](), true)
}

// NewComparable creates a heap ordered by the elements' Compare method.
func NewComparable[T Comparable[T]]() *MinHeap[T] {
	return newMinHeap(absentLast(compareComparable[T]), true)
}

// NewWithComparator creates a heap ordered by compare. A nil compare falls back
// to NaturalOrder, which fails on elements that cannot be ordered.
func NewWithComparator[T any](compare Comparator[T]) *MinHeap[T] {
	if compare == nil {
		return newMinHeap(NaturalOrder[T](), true)
	}
	return newMinHeap(compare, false)
}

func newMinHeap[T any](compare Comparator[T], natural bool) *MinHeap[T] {
	return &MinHeap[T]{
		storage: make([]util.Optional[T], DefaultCapacity),
		compare: compare,
		natural: natural,
	}
}

func (me *MinHeap[T]) Size() int {
	return me.count
}

func (me *MinHeap[T]) IsEmpty() bool {
	return me.count == 0
}

// Capacity returns the number of allocated slots, including slot 0.
func (me *MinHeap[T]) Capacity() int {
	return len(me.storage)
}

// Peek returns the smallest element without removing it.
func (me *MinHeap[T]) Peek() (out util.Optional[T], _ error) {
	if me.count == 0 {
		return out, ErrEmptyHeap
	}
	return me.storage[1], nil
}

func (me *MinHeap[T]) Push(value T) error {
	return me.Add(util.Some(value))
}

// Add inserts item, which may be absent. Errors from the comparator are
// returned as is, and leave the contents of the heap unchanged.
func (me *MinHeap[T]) Add(item util.Optional[T]) error {
	me.grow()

	hole := me.count + 1
	if !me.natural || item.Exists() {
		for hole > 1 {
			parent := hole / 2
			c, err := me.compare(item, me.storage[parent])
			if err != nil {
				return err
			}
			if c >= 0 {
				break
			}
			hole = parent
		}
	}

	for i := me.count + 1; i > hole; i /= 2 {
		me.storage[i] = me.storage[i/2]
	}
	me.storage[hole] = item
	me.count++

	return nil
}

// Remove extracts the smallest element. Errors from the comparator are
// returned as is, and leave the contents of the heap unchanged.
func (me *MinHeap[T]) Remove() (out util.Optional[T], _ error) {
	if me.count == 0 {
		return out, ErrEmptyHeap
	}

	out = me.storage[1]
	last := me.storage[me.count]
	path, err := me.siftDownPath(last, me.count-1)
	if err != nil {
		return util.None[T](), err
	}

	me.storage[me.count] = util.None[T]()
	me.count--
	if me.count == 0 {
		return out, nil
	}

	hole := 1
	for _, child := range path {
		me.storage[hole] = me.storage[child]
		hole = child
	}
	me.storage[hole] = last

	return out, nil
}

// Drain removes elements in order until the heap is empty or a comparison
// fails; the failure is yielded and ends the sequence.
func (me *MinHeap[T]) Drain() iter.Seq2[util.Optional[T], error] {
	return func(yield func(util.Optional[T], error) bool) {
		for me.count > 0 {
			item, err := me.Remove()
			if !yield(item, err) || err != nil {
				return
			}
		}
	}
}

// String renders the occupied slots in array order, not in sorted order.
func (me *MinHeap[T]) String() string {
	var builder strings.Builder
	builder.WriteString("[")
	for i := 1; i <= me.count; i++ {
		builder.WriteString(" ")
		builder.WriteString(me.storage[i].String())
	}
	builder.WriteString(" ]")
	return builder.String()
}

func (me *MinHeap[T]) grow() {
	if float64(me.count)/float64(len(me.storage)) <= MaxLoadFactor {
		return
	}
	storage := make([]util.Optional[T], 2*len(me.storage)+1)
	copy(storage, me.storage)
	me.storage = storage
}

// siftDownPath returns the slots that item passes through when sifted down
// from the root of a heap occupying slots 1..size. It only reads storage.
func (me *MinHeap[T]) siftDownPath(item util.Optional[T], size int) ([]int, error) {
	path := make([]int, 0, bits.Len(uint(size)))

	for hole := 1; 2*hole <= size; {
		child := 2 * hole
		if child+1 <= size {
			// ties go right
			c, err := me.compare(me.storage[child], me.storage[child+1])
			if err != nil {
				return nil, err
			}
			if c >= 0 {
				child++
			}
		}

		c, err := me.compare(me.storage[child], item)
		if err != nil {
			return nil, err
		}
		if c >= 0 {
			break
		}

		path = append(path, child)
		hole = child
	}

	return path, nil
}
