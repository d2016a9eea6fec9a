package bst

import (
	"errors"
	"fmt"
)

type Order string

const (
	OrderIn   Order = "in"
	OrderPre  Order = "pre"
	OrderPost Order = "post"
	OrderBft  Order = "bft"
	OrderDft  Order = "dft"
)

var (
	ErrUnknownOrder  = errors.New(`unknown traversal order`)
	ErrUnknownFormat = errors.New(`unknown config format`)
)

var (
	// DefaultValues 示例树的插入顺序
	DefaultValues = []int{1, 8, 5, 7, 6, 3, 4, 2}
	DefaultOrders = []Order{OrderBft, OrderDft}
)

func ParseOrder(name string) (order Order, err error) {
	switch order = Order(name); order {
	case OrderIn, OrderPre, OrderPost, OrderBft, OrderDft:
		return order, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}
