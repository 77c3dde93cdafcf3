package utils

import "math"

// Round2 金额保留两位小数，对应原价格计算口径
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
