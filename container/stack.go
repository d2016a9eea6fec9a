package container

// Stack 后进先出，语义与Queue相同：空栈Pop返回ok=false
type Stack[T any] struct {
	storage *List[T]
	size    int
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{storage: NewList[T]()}
}

func (s *Stack[T]) Push(value T) {
	s.storage.PushBack(value)
	s.size++
}

func (s *Stack[T]) Pop() (value T, ok bool) {
	value, err := s.storage.PopBack()
	if err != nil {
		return value, false
	}

	s.size--
	return value, true
}

func (s *Stack[T]) Len() int {
	return s.size
}

func (s *Stack[T]) Empty() bool {
	return s.size == 0
}
