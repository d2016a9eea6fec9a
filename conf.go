package bst

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type Conf struct {
	Values []int    `yaml:"values" json:"values"`
	Probes []int    `yaml:"probes" json:"probes"`
	Orders []string `yaml:"orders" json:"orders"`
	Dump   bool     `yaml:"dump" json:"dump"`
}

// Normalize 补全默认值并校验遍历方式
func (c *Conf) Normalize() (orders []Order, err error) {
	if len(c.Values) < 1 {
		c.Values = append([]int(nil), DefaultValues...)
	}

	if len(c.Orders) < 1 {
		return append([]Order(nil), DefaultOrders...), nil
	}

	orders = make([]Order, 0, len(c.Orders))
	for _, name := range c.Orders {
		order, err := ParseOrder(name)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func Yaml(filePath string, out interface{}) (err error) {
	conf, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(conf, out)
}

func Json(filePath string, out interface{}) (err error) {
	conf, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	return json.Unmarshal(conf, out)
}

// Load 按扩展名选择yaml或json
func Load(filePath string, out interface{}) (err error) {
	switch filepath.Ext(filePath) {
	case ".yml", ".yaml":
		return Yaml(filePath, out)
	case ".json":
		return Json(filePath, out)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, filePath)
}
