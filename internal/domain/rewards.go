package domain

import "fmt"

// Range is an inclusive integer interval.
type Range struct {
	Min int `mapstructure:"min" yaml:"min"`
	Max int `mapstructure:"max" yaml:"max"`
}

func (r Range) Validate() error {
	if r.Min < 0 {
		return fmt.Errorf("range min %d is negative", r.Min)
	}
	if r.Min > r.Max {
		return fmt.Errorf("range min %d exceeds max %d", r.Min, r.Max)
	}
	return nil
}

func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

type BattleReward struct {
	Experience int
	Currency   int
}
