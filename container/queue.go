package container

// Queue 先进先出，出队为空时返回ok=false而不是error，方便遍历循环以此为结束条件
type Queue[T any] struct {
	storage *List[T]
	size    int
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{storage: NewList[T]()}
}

func (q *Queue[T]) Enqueue(value T) {
	q.storage.PushBack(value)
	q.size++
}

func (q *Queue[T]) Dequeue() (value T, ok bool) {
	value, err := q.storage.PopFront()
	if err != nil {
		return value, false
	}

	q.size--
	return value, true
}

func (q *Queue[T]) Len() int {
	return q.size
}

func (q *Queue[T]) Empty() bool {
	return q.size == 0
}
