package beap

//index of the first element equal to data under the comparator,walking
//the staircase of the triangular layout:start at column 0 of the last
//row,climb the column while the target outranks the current element,
//otherwise step down-right along the diagonal,retreating to the next
//column's deepest existing slot when the storage ends below,every step
//retires a whole column or row so the walk is O(sqrt(2n))
//equal elements are found in walk order,deterministic for a given state
func (b *Beap[T]) Index(data T) (int, bool) {
	n := len(b.datas)
	if n == 0 {
		return 0, false
	}
	row, col := b.height, 0
	pos := tri(row)
	for {
		cur := b.datas[pos]
		curHigher := b.direction(cur, data)
		if !curHigher && !b.direction(data, cur) {
			return pos, true
		}
		if !curHigher {
			//the target outranks this element and the whole column below it
			if col >= row-1 {
				//no row above in this column
				return 0, false
			}
			row--
			pos = tri(row) + col
			continue
		}
		//everything above in this column outranks the target,continue at
		//the deepest existing slot of the next column
		if next := tri(row+1) + col + 1; next < n {
			row++
			col++
			pos = next
		} else if col < row-1 && pos+1 < n {
			col++
			pos++
		} else if col < row-2 {
			//the last row ends before the next column,retreat to the
			//full row above
			row--
			col++
			pos = tri(row) + col
		} else {
			return 0, false
		}
	}
}

func (b *Beap[T]) Contains(data T) bool {
	_, ok := b.Index(data)
	return ok
}

//only get not delete,the lowest priority element,return false means
//this is an empty beap
func (b *Beap[T]) Tail() (data T, ok bool) {
	if len(b.datas) == 0 {
		return
	}
	return b.datas[b.tailIndex()], true
}

//get and delete the lowest priority element,return false means this is
//an empty beap
func (b *Beap[T]) PopTail() (data T, ok bool) {
	if len(b.datas) == 0 {
		return
	}
	return b.RemoveIndex(b.tailIndex())
}

//the last height slots of the storage cover every childless position,
//one of which holds the lowest priority element,ties keep the first
func (b *Beap[T]) tailIndex() int {
	lo := len(b.datas) - b.height
	if lo < 0 {
		lo = 0
	}
	index := lo
	for i := lo + 1; i < len(b.datas); i++ {
		if b.direction(b.datas[index], b.datas[i]) {
			index = i
		}
	}
	return index
}
