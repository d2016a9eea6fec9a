package bst

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonNode[T any] struct {
	Value T            `json:"value"`
	Left  *jsonNode[T] `json:"left,omitempty"`
	Right *jsonNode[T] `json:"right,omitempty"`
}

func (n *Node[T]) toJson() *jsonNode[T] {
	if n == nil {
		return nil
	}

	return &jsonNode[T]{
		Value: n.value,
		Left:  n.left.toJson(),
		Right: n.right.toJson(),
	}
}

// MarshalJSON 输出树结构，如{"value":2,"left":{"value":1}}
func (n *Node[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJson())
}

// Dump 带缩进输出到w
func (n *Node[T]) Dump(w io.Writer) (err error) {
	data, err := json.MarshalIndent(n.toJson(), "", "  ")
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
