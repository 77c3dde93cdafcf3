package dao

import "Minimart/models"

// Cart 进行中的销售。不持久化：关页即废，但库存预占已落在目录上
type Cart struct {
	lines []models.CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Lines 返回底层切片，定价调整直接就地改写
func (c *Cart) Lines() []models.CartLine {
	return c.lines
}

func (c *Cart) Append(l models.CartLine) {
	c.lines = append(c.lines, l)
}

func (c *Cart) RemoveAt(i int) (models.CartLine, bool) {
	if i < 0 || i >= len(c.lines) {
		return models.CartLine{}, false
	}
	l := c.lines[i]
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return l, true
}

func (c *Cart) SetLine(i int, l models.CartLine) {
	c.lines[i] = l
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Take 取走全部行并清空（预约选品流转用）
func (c *Cart) Take() []models.CartLine {
	out := c.lines
	c.lines = nil
	return out
}

func (c *Cart) Total() float64 {
	var sum float64
	for _, l := range c.lines {
		sum += l.Total
	}
	return sum
}
