package beap

import "sort"

//get and delete the element at index,the last element takes its slot
//and rises or falls as needed,return false means index is out of range
func (b *Beap[T]) RemoveIndex(index int) (data T, ok bool) {
	if index < 0 || index >= len(b.datas) {
		return
	}
	data, ok = b.datas[index], true
	last := len(b.datas) - 1
	if tri(b.height) == last {
		//the removed slot was the only one in the last row
		b.height--
	}
	b.datas[index] = b.datas[last]
	var zero T
	b.datas[last] = zero
	b.datas = b.datas[:last]
	if last == 0 {
		b.height = 0
	} else if index < last {
		b.repair(index)
	}
	return
}

//get and delete the first element equal to data on the search path,
//return false means no equal element exists and nothing was touched
func (b *Beap[T]) Remove(data T) (T, bool) {
	index, ok := b.Index(data)
	if !ok {
		var zero T
		return zero, false
	}
	return b.RemoveIndex(index)
}

//overwrite the element at index and restore the invariant,return false
//means index is out of range
func (b *Beap[T]) Replace(index int, data T) bool {
	if index < 0 || index >= len(b.datas) {
		return false
	}
	b.datas[index] = data
	b.repair(index)
	return true
}

//overwrite the first element equal to old with new,return false means
//no equal element exists and nothing was touched
func (b *Beap[T]) Update(old, new T) bool {
	index, ok := b.Index(old)
	if !ok {
		return false
	}
	return b.Replace(index, new)
}

//build a beap from an unordered slice with a single sort
//a globally non-increasing fill satisfies the invariant on its own
//because every parent index is smaller than every child index,so this
//is cheaper than pushing the elements one by one
func From[T any](direction func(a, b T) bool, datas []T) *Beap[T] {
	if direction == nil {
		return nil
	}
	b := &Beap[T]{direction: direction, datas: make([]T, len(datas))}
	copy(b.datas, datas)
	b.resort()
	return b
}

//move all elements of other into b,leaving other empty,one sort covers both
func (b *Beap[T]) Merge(other *Beap[T]) {
	b.datas = append(b.datas, other.datas...)
	clear(other.datas)
	other.datas = other.datas[:0]
	other.height = 0
	b.resort()
}

//bulk insert,append everything and sort once
func (b *Beap[T]) PushSlice(datas []T) {
	b.datas = append(b.datas, datas...)
	b.resort()
}

//hand the storage back sorted ascending under the comparator,lowest
//priority first,the beap is empty afterwards
//popping one by one would cost O(n*sqrt(2n)),a single sort is cheaper
func (b *Beap[T]) IntoSortedSlice() []T {
	datas := b.datas
	b.datas = nil
	b.height = 0
	sort.Slice(datas, func(i, j int) bool { return b.direction(datas[j], datas[i]) })
	return datas
}

func (b *Beap[T]) resort() {
	sort.Slice(b.datas, func(i, j int) bool { return b.direction(b.datas[i], b.datas[j]) })
	if len(b.datas) == 0 {
		b.height = 0
	} else {
		b.height = rowOf(len(b.datas) - 1)
	}
}
