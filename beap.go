//the order in datas,row r(1-based) covers [r(r-1)/2,r(r+1)/2)
//            0
//          1   2
//        3   4   5
//      6   7   8   9
//the element at row r column c has parents (r-1,c-1) and (r-1,c)
//and children (r+1,c) and (r+1,c+1),missing ones at the row edges
//no element outranks any of its parents,so index 0 is always the
//highest priority element

package beap

import (
	"math"

	"golang.org/x/exp/constraints"
)

//thread unsafe
type Beap[T any] struct {
	//direction return a > b max beap
	//direction return a < b min beap
	direction func(a, b T) bool
	datas     []T
	//number of the last,possibly partial,row
	height int
}

//direction return a > b max beap
//direction return a < b min beap
func New[T any](direction func(a, b T) bool) *Beap[T] {
	if direction == nil {
		return nil
	}
	return &Beap[T]{direction: direction}
}

//same as New but the storage is preallocated for cap elements
func NewWithCap[T any](direction func(a, b T) bool, cap int) *Beap[T] {
	if direction == nil || cap < 0 {
		return nil
	}
	return &Beap[T]{direction: direction, datas: make([]T, 0, cap)}
}

//max beap on the natural order,the root is the maximum
func NewMax[T constraints.Ordered]() *Beap[T] {
	return New(func(a, b T) bool { return a > b })
}

//min beap on the natural order,the root is the minimum
func NewMin[T constraints.Ordered]() *Beap[T] {
	return New(func(a, b T) bool { return a < b })
}

func (b *Beap[T]) Len() int {
	return len(b.datas)
}

func (b *Beap[T]) Cap() int {
	return cap(b.datas)
}

func (b *Beap[T]) IsEmpty() bool {
	return len(b.datas) == 0
}

//drop all elements,the storage is kept for reuse
func (b *Beap[T]) Clear() {
	clear(b.datas)
	b.datas = b.datas[:0]
	b.height = 0
}

//only get not delete,return false means index is out of range
func (b *Beap[T]) Get(index int) (data T, ok bool) {
	if index < 0 || index >= len(b.datas) {
		return
	}
	return b.datas[index], true
}

//only get not delete,return false means this is an empty beap
func (b *Beap[T]) GetRoot() (data T, ok bool) {
	if len(b.datas) == 0 {
		return
	}
	return b.datas[0], true
}

//first index of row r
func tri(r int) int {
	return r * (r - 1) / 2
}

//first and last index of row r
func span(r int) (int, int) {
	return r * (r - 1) / 2, r*(r+1)/2 - 1
}

//the row covering index,a float estimate of the inverse triangular
//number first,then integer steps to undo any rounding error
func rowOf(index int) int {
	r := int(math.Round(math.Sqrt(float64(2 * (index + 1)))))
	if r < 1 {
		r = 1
	}
	for tri(r) > index {
		r--
	}
	for tri(r+1) <= index {
		r++
	}
	return r
}
