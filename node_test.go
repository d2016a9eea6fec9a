package bst

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

var (
	sampleValues = []int{1, 8, 5, 7, 6, 3, 4, 2}
)

func TestNode_Insert(t *testing.T) {
	root := Build(32, 21, 38, 47, 28, 7, 35)

	if root.Value() != 32 {
		t.Fatalf("want %d, got %d", 32, root.Value())
	}

	if root.Left().Value() != 21 || root.Right().Value() != 38 {
		t.Fatalf("want 21,38 got %d,%d", root.Left().Value(), root.Right().Value())
	}

	if root.Right().Left().Value() != 35 {
		t.Fatalf("want %d, got %d", 35, root.Right().Left().Value())
	}
}

func TestNode_InsertTieGoesRight(t *testing.T) {
	root := NewNode(5)
	root.Insert(5)
	root.Insert(5)

	if root.Left() != nil {
		t.Fatalf("want nil left, got %v", root.Left())
	}

	if root.Right() == nil || root.Right().Right() == nil {
		t.Fatal("want equal values chained on the right")
	}

	if root.Len() != 3 {
		t.Fatalf("want %d, got %d", 3, root.Len())
	}
}

func TestNode_Contains(t *testing.T) {
	root := Build(sampleValues...)
	before := root.BreadthFirst()

	for _, val := range sampleValues {
		if !root.Contains(val) {
			t.Fatalf("want true for %d, got false", val)
		}
	}

	for _, val := range []int{0, 9, -3, 100} {
		if root.Contains(val) {
			t.Fatalf("want false for %d, got true", val)
		}
	}

	//多次查询不改变树
	for index := 0; index < 3; index++ {
		root.Contains(6)
		root.Contains(42)
	}

	if after := root.BreadthFirst(); !reflect.DeepEqual(before, after) {
		t.Fatalf("want %v, got %v", before, after)
	}
}

func TestNode_ContainsRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for round := 0; round < 20; round++ {
		values := make([]int, 1+r.Intn(64))
		inserted := make(map[int]bool, len(values))
		for index := range values {
			values[index] = r.Intn(100)
			inserted[values[index]] = true
		}

		root := Build(values...)
		for val := -1; val <= 100; val++ {
			if root.Contains(val) != inserted[val] {
				t.Fatalf("values %v: want %t for %d", values, inserted[val], val)
			}
		}

		if root.Distinct() != len(inserted) {
			t.Fatalf("want %d, got %d", len(inserted), root.Distinct())
		}

		if root.Len() != len(values) {
			t.Fatalf("want %d, got %d", len(values), root.Len())
		}
	}
}

func TestNode_GetMax(t *testing.T) {
	root := Build(sampleValues...)
	if root.GetMax() != 8 {
		t.Fatalf("want %d, got %d", 8, root.GetMax())
	}

	if root.GetMin() != 1 {
		t.Fatalf("want %d, got %d", 1, root.GetMin())
	}

	//没有右子树时返回根节点的值
	left := Build(10, 4, 2, 7)
	if left.GetMax() != 10 {
		t.Fatalf("want %d, got %d", 10, left.GetMax())
	}

	words := Build("m", "c", "x", "a", "z")
	if words.GetMax() != "z" || words.GetMin() != "a" {
		t.Fatalf("want z,a got %s,%s", words.GetMax(), words.GetMin())
	}
}

func TestNode_GetMaxRandom(t *testing.T) {
	r := rand.New(rand.NewSource(11))

	for round := 0; round < 20; round++ {
		values := make([]float64, 1+r.Intn(64))
		for index := range values {
			values[index] = r.Float64()*200 - 100
		}

		sorted := append([]float64(nil), values...)
		sort.Float64s(sorted)

		root := Build(values...)
		if root.GetMax() != sorted[len(sorted)-1] {
			t.Fatalf("want %f, got %f", sorted[len(sorted)-1], root.GetMax())
		}

		if got := root.InOrder(); !reflect.DeepEqual(sorted, got) {
			t.Fatalf("want %v, got %v", sorted, got)
		}
	}
}

func TestNode_ForEach(t *testing.T) {
	root := Build(sampleValues...)

	var visited []int
	root.ForEach(func(value int) {
		visited = append(visited, value)
	})

	want := []int{6, 7, 4, 2, 3, 5, 8, 1}
	if !reflect.DeepEqual(want, visited) {
		t.Fatalf("want %v, got %v", want, visited)
	}

	sum := 0
	Build(5, 3, 7, 3, 5, 9, 1).ForEach(func(value int) {
		sum += value
	})

	if sum != 33 {
		t.Fatalf("want %d, got %d", 33, sum)
	}
}

func TestNode_Height(t *testing.T) {
	var empty *Node[int]

	caseList := []struct {
		root *Node[int]
		want int
	}{
		{root: empty, want: -1},
		{root: NewNode(1), want: 0},
		{root: Build(sampleValues...), want: 4},
		{root: Build(32, 21, 38, 47, 28, 7, 35), want: 2},
		{root: Build(1, 2, 3, 4, 5), want: 4},
	}

	for _, c := range caseList {
		if got := c.root.Height(); got != c.want {
			t.Fatalf("want %d, got %d", c.want, got)
		}
	}
}

func TestNode_Release(t *testing.T) {
	values := make([]int, 10000)
	for index := range values {
		values[index] = index
	}

	//有序插入退化成链表
	root := Build(values...)
	if root.Height() != len(values)-1 {
		t.Fatalf("want %d, got %d", len(values)-1, root.Height())
	}

	last := root
	for last.Right() != nil {
		last = last.Right()
	}

	root.Release()

	if root.Left() != nil || root.Right() != nil {
		t.Fatal("want leaf root after release")
	}

	if root.Value() != 0 || root.Len() != 1 {
		t.Fatalf("want single node 0, got %d nodes", root.Len())
	}

	if last.Value() != len(values)-1 {
		t.Fatalf("want %d, got %d", len(values)-1, last.Value())
	}
}

func TestNode_Accessors(t *testing.T) {
	var empty *Node[int]

	if empty.Value() != 0 || empty.Left() != nil || empty.Right() != nil {
		t.Fatal("want zero value and nil children for nil node")
	}

	var word *Node[string]
	if word.Value() != "" {
		t.Fatalf("want empty string, got %q", word.Value())
	}

	root := Build(2, 1, 3)
	if root.Value() != 2 || root.Left().Value() != 1 || root.Right().Value() != 3 {
		t.Fatalf("want 2,1,3 got %d,%d,%d", root.Value(), root.Left().Value(), root.Right().Value())
	}

	if root.Left().Left().Value() != 0 {
		t.Fatalf("want %d, got %d", 0, root.Left().Left().Value())
	}
}

func TestBuild(t *testing.T) {
	if root := Build[int](); root != nil {
		t.Fatalf("want nil, got %v", root)
	}

	root := Build(3)
	if root.Len() != 1 || root.Height() != 0 {
		t.Fatalf("want single node, got %d nodes", root.Len())
	}
}

// go test -bench=. -benchmem -v
func BenchmarkNode_Insert(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	root := NewNode(r.Int())

	b.ResetTimer()
	for index := 0; index < b.N; index++ {
		root.Insert(r.Int())
	}
}

func BenchmarkNode_Contains(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	root := NewNode(r.Intn(1 << 20))
	for index := 0; index < 1<<16; index++ {
		root.Insert(r.Intn(1 << 20))
	}

	b.ResetTimer()
	for index := 0; index < b.N; index++ {
		root.Contains(index & (1<<20 - 1))
	}
}
