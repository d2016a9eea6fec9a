package container

import "errors"

var (
	ErrEmptyContainer = errors.New(`container is empty`)
)

type element[T any] struct {
	value T
	prev  *element[T]
	next  *element[T]
}

// List 双向链表，Stack与Queue的底层存储，非线程安全
type List[T any] struct {
	head   *element[T]
	tail   *element[T]
	length int
}

func NewList[T any]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) PushFront(value T) {
	node := &element[T]{value: value, next: l.head}
	if l.head == nil {
		l.tail = node
	} else {
		l.head.prev = node
	}

	l.head = node
	l.length++
}

func (l *List[T]) PushBack(value T) {
	node := &element[T]{value: value, prev: l.tail}
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}

	l.tail = node
	l.length++
}

func (l *List[T]) PopFront() (value T, err error) {
	if l.head == nil {
		return value, ErrEmptyContainer
	}

	node := l.head
	l.head = node.next
	if l.head == nil {
		//最后一个元素，head与tail都要清空
		l.tail = nil
	} else {
		l.head.prev = nil
	}

	return l.unlink(node), nil
}

func (l *List[T]) PopBack() (value T, err error) {
	if l.tail == nil {
		return value, ErrEmptyContainer
	}

	node := l.tail
	l.tail = node.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}

	return l.unlink(node), nil
}

func (l *List[T]) Len() int {
	return l.length
}

func (l *List[T]) unlink(node *element[T]) (value T) {
	value = node.value
	node.prev = nil
	node.next = nil
	l.length--
	return value
}
