package bst

import "cmp"

// Node 二叉搜索树节点，左子树所有值严格小于value，右子树所有值大于等于value
type Node[T cmp.Ordered] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

func NewNode[T cmp.Ordered](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Build 以第一个值为根，按顺序插入其余值；没有值时返回nil
func Build[T cmp.Ordered](values ...T) (root *Node[T]) {
	if len(values) < 1 {
		return nil
	}

	root = NewNode(values[0])
	for _, value := range values[1:] {
		root.Insert(value)
	}
	return root
}

// Value nil节点返回零值
func (n *Node[T]) Value() (value T) {
	if n == nil {
		return value
	}
	return n.value
}

func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}
