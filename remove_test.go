package beap

import (
	"math/rand"
	"testing"
)

func Test_RemoveIndex(t *testing.T) {
	b := From(maxInt, []int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if d, ok := b.RemoveIndex(7); !ok || d != 2 {
		t.Fatal("should remove 2,but get:", d)
	}
	checkInvariant(t, b)
	if d, ok := b.RemoveIndex(0); !ok || d != 9 {
		t.Fatal("should remove 9,but get:", d)
	}
	checkInvariant(t, b)
	index, ok := b.Index(4)
	if !ok {
		t.Fatal("4 should still be there")
	}
	if d, ok := b.RemoveIndex(index); !ok || d != 4 {
		t.Fatal("should remove 4,but get:", d)
	}
	checkInvariant(t, b)
	if _, ok := b.RemoveIndex(100); ok {
		t.Fatal("out of range removal should fail")
	}
	if _, ok := b.RemoveIndex(-1); ok {
		t.Fatal("out of range removal should fail")
	}
	if b.Len() != 6 {
		t.Fatal("len should be 6,but is:", b.Len())
	}
}

func Test_Remove(t *testing.T) {
	b := From(maxInt, []int{1, 5, 3})
	if d, ok := b.Remove(3); !ok || d != 3 {
		t.Fatal("should remove 3,but get:", d)
	}
	if b.Len() != 2 {
		t.Fatal("len should be 2,but is:", b.Len())
	}
	before := b.Slice()
	if _, ok := b.Remove(3); ok {
		t.Fatal("3 was already removed")
	}
	after := b.Slice()
	if len(before) != len(after) {
		t.Fatal("failed removal must not mutate")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("failed removal must not mutate")
		}
	}
}

func Test_Replace(t *testing.T) {
	b := From(maxInt, []int{9, 8, 7, 6, 5})
	if b.Replace(-1, 0) || b.Replace(5, 0) {
		t.Fatal("out of range replace should fail")
	}
	if !b.Replace(0, 0) {
		t.Fatal("replacing the root should work")
	}
	checkInvariant(t, b)
	if d, ok := b.GetRoot(); !ok || d != 8 {
		t.Fatal("root should be 8,but is:", d)
	}
	//replace a tail element with a new maximum,it must rise to the root
	if !b.Replace(b.Len()-1, 100) {
		t.Fatal("replace should work")
	}
	checkInvariant(t, b)
	if d, ok := b.GetRoot(); !ok || d != 100 {
		t.Fatal("root should be 100,but is:", d)
	}
}

func Test_Update(t *testing.T) {
	b := New(maxInt)
	b.Push(5)
	b.Push(10)
	if !b.Update(10, 100) {
		t.Fatal("10 should be found")
	}
	if b.Update(1, 200) {
		t.Fatal("1 should be absent")
	}
	got := b.IntoSortedSlice()
	if len(got) != 2 || got[0] != 5 || got[1] != 100 {
		t.Fatal("sorted slice should be [5 100],but is:", got)
	}
}

//membership law plus removing arbitrary present values until empty
func Test_ExhaustiveRemoval(t *testing.T) {
	r := rand.New(rand.NewSource(271828))
	for round := 0; round < 20; round++ {
		size := r.Intn(60) + 1
		elements := make([]int, size)
		b := New(maxInt)
		for i := range elements {
			elements[i] = r.Intn(31) //duplicate heavy
			b.Push(elements[i])
			if !b.Contains(elements[i]) {
				t.Fatal("pushed element should be found")
			}
		}
		for len(elements) > 0 {
			pick := r.Intn(len(elements))
			v := elements[pick]
			if d, ok := b.Remove(v); !ok || d != v {
				t.Fatal("present element", v, "should be removable")
			}
			elements[pick] = elements[len(elements)-1]
			elements = elements[:len(elements)-1]
			if b.Len() != len(elements) {
				t.Fatal("len should be", len(elements), "but is:", b.Len())
			}
			checkInvariant(t, b)
		}
		if !b.IsEmpty() {
			t.Fatal("beap should be empty")
		}
		if b.Contains(0) {
			t.Fatal("nothing should be found in an empty beap")
		}
	}
}

//random Replace calls keep the structure valid whichever way the new
//value has to move
func Test_Replace_Random(t *testing.T) {
	r := rand.New(rand.NewSource(5150))
	elements := make([]int, 70)
	for i := range elements {
		elements[i] = r.Intn(1000)
	}
	b := From(maxInt, elements)
	for i := 0; i < 300; i++ {
		if !b.Replace(r.Intn(b.Len()), r.Intn(1000)) {
			t.Fatal("in range replace should work")
		}
		checkInvariant(t, b)
	}
}
