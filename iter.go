package beap

//call fn for every element in storage order,stop early when fn returns
//false,each call starts a fresh traversal,the order carries no meaning
func (b *Beap[T]) Range(fn func(data T) bool) {
	for i := range b.datas {
		if !fn(b.datas[i]) {
			return
		}
	}
}

//copy of the storage in its current order
func (b *Beap[T]) Slice() []T {
	datas := make([]T, len(b.datas))
	copy(datas, b.datas)
	return datas
}
