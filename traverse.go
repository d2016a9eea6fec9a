package bst

import (
	"cmp"
	"fmt"
	"io"
	"os"

	"github.com/grpc-boot/bst/container"
)

// Walk 按order遍历，fn返回error时立即停止；n为nil时不遍历
func (n *Node[T]) Walk(order Order, fn func(value T) error) error {
	switch order {
	case OrderIn:
		return n.walkInOrder(fn)
	case OrderPre:
		return n.walkPreOrder(fn)
	case OrderPost:
		return n.walkPostOrder(fn)
	case OrderBft:
		return n.walkBreadthFirst(fn)
	case OrderDft:
		return n.walkDepthFirst(fn)
	}
	return fmt.Errorf("%w: %q", ErrUnknownOrder, order)
}

func (n *Node[T]) walkInOrder(fn func(value T) error) (err error) {
	if n == nil {
		return nil
	}

	if err = n.left.walkInOrder(fn); err != nil {
		return err
	}

	if err = fn(n.value); err != nil {
		return err
	}

	return n.right.walkInOrder(fn)
}

func (n *Node[T]) walkPreOrder(fn func(value T) error) (err error) {
	if n == nil {
		return nil
	}

	if err = fn(n.value); err != nil {
		return err
	}

	if err = n.left.walkPreOrder(fn); err != nil {
		return err
	}

	return n.right.walkPreOrder(fn)
}

func (n *Node[T]) walkPostOrder(fn func(value T) error) (err error) {
	if n == nil {
		return nil
	}

	if err = n.left.walkPostOrder(fn); err != nil {
		return err
	}

	if err = n.right.walkPostOrder(fn); err != nil {
		return err
	}

	return fn(n.value)
}

// 层序遍历，同层从左到右
func (n *Node[T]) walkBreadthFirst(fn func(value T) error) (err error) {
	queue := container.NewQueue[*Node[T]]()
	queue.Enqueue(n)

	for current, ok := queue.Dequeue(); ok; current, ok = queue.Dequeue() {
		if current == nil {
			continue
		}

		if err = fn(current.value); err != nil {
			return err
		}

		if current.left != nil {
			queue.Enqueue(current.left)
		}

		if current.right != nil {
			queue.Enqueue(current.right)
		}
	}
	return nil
}

// 先压左再压右，出栈时右子树先输出
func (n *Node[T]) walkDepthFirst(fn func(value T) error) (err error) {
	stack := container.NewStack[*Node[T]]()
	stack.Push(n)

	for current, ok := stack.Pop(); ok; current, ok = stack.Pop() {
		if current == nil {
			continue
		}

		if err = fn(current.value); err != nil {
			return err
		}

		if current.left != nil {
			stack.Push(current.left)
		}

		if current.right != nil {
			stack.Push(current.right)
		}
	}
	return nil
}

func (n *Node[T]) collect(order Order) (values []T) {
	_ = n.Walk(order, func(value T) error {
		values = append(values, value)
		return nil
	})
	return values
}

func (n *Node[T]) InOrder() []T {
	return n.collect(OrderIn)
}

func (n *Node[T]) PreOrder() []T {
	return n.collect(OrderPre)
}

func (n *Node[T]) PostOrder() []T {
	return n.collect(OrderPost)
}

func (n *Node[T]) BreadthFirst() []T {
	return n.collect(OrderBft)
}

func (n *Node[T]) DepthFirst() []T {
	return n.collect(OrderDft)
}

// Fprint 按order把值写入w，每行一个
func Fprint[T cmp.Ordered](w io.Writer, order Order, node *Node[T]) error {
	return node.Walk(order, func(value T) error {
		_, err := fmt.Fprintln(w, value)
		return err
	})
}

func (n *Node[T]) FprintInOrder(w io.Writer) error {
	return Fprint(w, OrderIn, n)
}

func (n *Node[T]) FprintPreOrder(w io.Writer) error {
	return Fprint(w, OrderPre, n)
}

func (n *Node[T]) FprintPostOrder(w io.Writer) error {
	return Fprint(w, OrderPost, n)
}

func (n *Node[T]) FprintBft(w io.Writer) error {
	return Fprint(w, OrderBft, n)
}

func (n *Node[T]) FprintDft(w io.Writer) error {
	return Fprint(w, OrderDft, n)
}

func (n *Node[T]) InOrderPrint() {
	_ = n.FprintInOrder(os.Stdout)
}

func (n *Node[T]) PreOrderPrint() {
	_ = n.FprintPreOrder(os.Stdout)
}

func (n *Node[T]) PostOrderPrint() {
	_ = n.FprintPostOrder(os.Stdout)
}

func (n *Node[T]) BftPrint() {
	_ = n.FprintBft(os.Stdout)
}

func (n *Node[T]) DftPrint() {
	_ = n.FprintDft(os.Stdout)
}
