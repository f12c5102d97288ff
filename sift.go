package beap

//append at the first free slot of the last row,or open a new row,then
//let the element rise,cost is one compare and maybe one swap per row
func (b *Beap[T]) Push(data T) {
	if b.height == 0 {
		b.height = 1
	} else if _, end := span(b.height); len(b.datas) > end {
		//the last row is full,this element opens a new row
		b.height++
	}
	b.datas = append(b.datas, data)
	b.siftUp(len(b.datas)-1, b.height)
}

//get and delete,return false means this is an empty beap
func (b *Beap[T]) PopRoot() (data T, ok bool) {
	if len(b.datas) == 0 {
		return
	}
	data, ok = b.datas[0], true
	last := len(b.datas) - 1
	if tri(b.height) == last {
		//the removed slot was the only one in the last row
		b.height--
	}
	b.datas[0] = b.datas[last]
	var zero T
	b.datas[last] = zero
	b.datas = b.datas[:last]
	if last == 0 {
		b.height = 0
	} else {
		b.siftDown(0, 1)
	}
	return
}

//equivalent to a Push followed by a PopRoot but the storage never grows
func (b *Beap[T]) PushPop(data T) T {
	if len(b.datas) > 0 && b.direction(b.datas[0], data) {
		data, b.datas[0] = b.datas[0], data
		b.siftDown(0, 1)
	}
	return data
}

//swap the element with a violated parent until no parent is outranked
//when both parents are outranked the swap takes the lower priority one,
//the demoted parent then still outranks everything below its new slot,
//so a single upward pass restores the invariant
func (b *Beap[T]) siftUp(pos, row int) {
	start := tri(row)
	for row > 1 {
		posInRow := pos - start
		prevStart, prevEnd := span(row - 1)
		var parent int
		if posInRow == 0 {
			//no up-left parent
			parent = prevStart
		} else if posInRow == row-1 {
			//no up-right parent
			parent = prevEnd
		} else {
			parent = prevStart + posInRow - 1
			if b.direction(b.datas[parent], b.datas[prevStart+posInRow]) {
				//the up-right parent has the lower priority
				parent = prevStart + posInRow
			}
		}
		if !b.direction(b.datas[pos], b.datas[parent]) {
			break
		}
		b.datas[pos], b.datas[parent] = b.datas[parent], b.datas[pos]
		pos = parent
		start = prevStart
		row--
	}
}

//swap the element with its highest priority child until no child
//outranks it,ties keep the first child
func (b *Beap[T]) siftDown(pos, row int) {
	start := tri(row)
	for row < b.height {
		nextStart := tri(row + 1)
		child := nextStart + (pos - start)
		if child >= len(b.datas) {
			break
		}
		if child+1 < len(b.datas) && b.direction(b.datas[child+1], b.datas[child]) {
			child++
		}
		if !b.direction(b.datas[child], b.datas[pos]) {
			break
		}
		b.datas[pos], b.datas[child] = b.datas[child], b.datas[pos]
		pos = child
		start = nextStart
		row++
	}
}

//restore the invariant after the element at pos changed,the element
//either rises past a parent or falls past a child,never both
func (b *Beap[T]) repair(pos int) {
	if pos == 0 {
		b.siftDown(0, 1)
		return
	}
	row := rowOf(pos)
	b.siftUp(pos, row)
	b.siftDown(pos, row)
}
