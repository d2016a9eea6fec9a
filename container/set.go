package container

// Set 非线程安全版本，如需要线程安全版本，需要自行加锁
type Set[T comparable] struct {
	items map[T]struct{}
}

func NewSet[T comparable](values ...T) *Set[T] {
	set := &Set[T]{items: make(map[T]struct{}, len(values))}
	for _, value := range values {
		set.Add(value)
	}
	return set
}

// Add 返回值表示item此前是否不存在
func (set *Set[T]) Add(item T) (added bool) {
	if _, exists := set.items[item]; exists {
		return false
	}

	set.items[item] = struct{}{}
	return true
}

func (set *Set[T]) Remove(items ...T) {
	for _, item := range items {
		delete(set.items, item)
	}
}

func (set *Set[T]) Contains(items ...T) bool {
	for _, item := range items {
		if _, contains := set.items[item]; !contains {
			return false
		}
	}
	return true
}

func (set *Set[T]) Size() int {
	return len(set.items)
}

func (set *Set[T]) Empty() bool {
	return len(set.items) == 0
}

func (set *Set[T]) Clear() {
	set.items = make(map[T]struct{})
}
