package bst

import (
	"cmp"

	"github.com/grpc-boot/bst/container"
)

// Insert 小于节点值进左子树，大于等于进右子树（相等的值放右边）
func (n *Node[T]) Insert(value T) {
	current := n
	for {
		if value < current.value {
			if current.left == nil {
				current.left = NewNode(value)
				return
			}
			current = current.left
			continue
		}

		if current.right == nil {
			current.right = NewNode(value)
			return
		}
		current = current.right
	}
}

func (n *Node[T]) Contains(target T) bool {
	current := n
	for current != nil {
		switch {
		case target < current.value:
			current = current.left
		case target > current.value:
			current = current.right
		default:
			return true
		}
	}
	return false
}

// GetMax n不能为nil
func (n *Node[T]) GetMax() T {
	current := n
	for current.right != nil {
		current = current.right
	}
	return current.value
}

// GetMin n不能为nil
func (n *Node[T]) GetMin() T {
	current := n
	for current.left != nil {
		current = current.left
	}
	return current.value
}

// ForEach 每个值调用一次fn，顺序为右子树、左子树、当前节点，调用方不应依赖该顺序
func (n *Node[T]) ForEach(fn func(value T)) {
	if n == nil {
		return
	}

	if n.right != nil {
		n.right.ForEach(fn)
	}

	if n.left != nil {
		n.left.ForEach(fn)
	}

	fn(n.value)
}

func (n *Node[T]) Len() (length int) {
	_ = n.walkBreadthFirst(func(T) error {
		length++
		return nil
	})
	return length
}

type level[T cmp.Ordered] struct {
	node  *Node[T]
	depth int
}

// Height 根到最深叶子的边数，nil返回-1
func (n *Node[T]) Height() (height int) {
	height = -1
	if n == nil {
		return height
	}

	queue := container.NewQueue[level[T]]()
	queue.Enqueue(level[T]{node: n})
	for current, ok := queue.Dequeue(); ok; current, ok = queue.Dequeue() {
		if current.depth > height {
			height = current.depth
		}

		if current.node.left != nil {
			queue.Enqueue(level[T]{node: current.node.left, depth: current.depth + 1})
		}

		if current.node.right != nil {
			queue.Enqueue(level[T]{node: current.node.right, depth: current.depth + 1})
		}
	}
	return height
}

func (n *Node[T]) Distinct() int {
	set := container.NewSet[T]()
	n.ForEach(func(value T) {
		set.Add(value)
	})
	return set.Size()
}

// Release 非递归断开所有子节点，n保留自身的值变为叶子节点
func (n *Node[T]) Release() {
	stack := container.NewStack[*Node[T]]()
	stack.Push(n)
	for current, ok := stack.Pop(); ok; current, ok = stack.Pop() {
		if current == nil {
			continue
		}

		if current.left != nil {
			stack.Push(current.left)
		}

		if current.right != nil {
			stack.Push(current.right)
		}

		current.left, current.right = nil, nil
	}
}
