package format

import (
	"math/big"
)

const maxProgress = 100

var hundred = big.NewInt(100)

// Progress 计算募资进度百分比: min(100, raised/goal*100)
func Progress(raised, goal string) (float64, error) {
	r, err := ParseBaseUnits(raised)
	if err != nil {
		return 0, err
	}
	g, err := ParseBaseUnits(goal)
	if err != nil {
		return 0, err
	}
	return ProgressOf(r, g)
}

// ProgressOf 使用已解析的金额计算进度, goal 为 0 时返回 ErrProgressUndefined
func ProgressOf(raised, goal *big.Int) (float64, error) {
	if goal.Sign() == 0 {
		return 0, ErrProgressUndefined
	}
	if raised.Cmp(goal) >= 0 {
		return maxProgress, nil
	}

	pct := new(big.Rat).SetFrac(new(big.Int).Mul(raised, hundred), goal)
	f, _ := pct.Float64()
	if f > maxProgress {
		f = maxProgress
	}
	return f, nil
}
