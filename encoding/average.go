package encoding

import (
	"github.com/shopspring/decimal"
)

//mean averages the non-null values, nil when there are none
func mean(values ...*float64) *float64 {
	var sum float64
	var n int
	for _, v := range values {
		if v == nil {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return nil
	}
	m := sum / float64(n)
	return &m
}

// average accumulates in decimal so rounding sees the exact mean of the inputs
type average struct {
	sum decimal.Decimal
	n   int64
}

func (a *average) add(v *float64) {
	if v == nil {
		return
	}
	a.sum = a.sum.Add(decimal.NewFromFloat(*v))
	a.n++
}

//rounded returns the mean rounded half away from zero, nil when nothing was added
func (a *average) rounded(places int32) *float64 {
	if a.n == 0 {
		return nil
	}
	f := a.sum.Div(decimal.NewFromInt(a.n)).Round(places).InexactFloat64()
	return &f
}
