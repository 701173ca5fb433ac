package ryuutama

import (
	"encoding/json"
	"strconv"
	"strings"
)

// StatKey names one of the four tracked attributes
type StatKey string

// Tracked attributes
const (
	StatStr StatKey = "str"
	StatDex StatKey = "dex"
	StatInt StatKey = "int"
	StatSpi StatKey = "spi"
)

var statKeys = []StatKey{StatStr, StatDex, StatInt, StatSpi}

// StatKeys returns the tracked attributes in sheet order
func StatKeys() []StatKey {
	keys := make([]StatKey, len(statKeys))
	copy(keys, statKeys)
	return keys
}

// Valid reports whether k is one of the four tracked attributes
func (k StatKey) Valid() bool {
	for _, key := range statKeys {
		if k == key {
			return true
		}
	}
	return false
}

// DieSize is the die linked to an attribute
type DieSize string

// Die sizes in ascending order
const (
	D4  DieSize = "d4"
	D6  DieSize = "d6"
	D8  DieSize = "d8"
	D10 DieSize = "d10"
	D12 DieSize = "d12"
	D20 DieSize = "d20"
)

var dieSizes = []DieSize{D4, D6, D8, D10, D12, D20}

// DefaultStatValue is the score of a fresh attribute
const DefaultStatValue = 6

// DieSizes returns the ordered die sequence
func DieSizes() []DieSize {
	sizes := make([]DieSize, len(dieSizes))
	copy(sizes, dieSizes)
	return sizes
}

func (d DieSize) index() int {
	for i, size := range dieSizes {
		if d == size {
			return i
		}
	}
	return -1
}

// Valid reports whether d is one of the six die sizes
func (d DieSize) Valid() bool {
	return d.index() >= 0
}

// Sides returns the face count of the die, or 0 for an unknown size
func (d DieSize) Sides() int {
	if !d.Valid() {
		return 0
	}
	sides, err := strconv.Atoi(strings.TrimPrefix(string(d), "d"))
	if err != nil {
		return 0
	}
	return sides
}

// Average returns the mean roll of the die
func (d DieSize) Average() float64 {
	return float64(d.Sides()+1) / 2
}

// RoundedAverage returns the mean roll rounded half up: d4→3, d6→4, d8→5, d10→6, d12→7, d20→11.
func (d DieSize) RoundedAverage() int {
	if !d.Valid() {
		return 0
	}
	return (d.Sides() + 2) / 2
}

// Direction moves a die one step along the sequence
type Direction int

// Step directions
const (
	StepDown Direction = -1
	StepUp   Direction = 1
)

// StatBlock is a die-linked attribute
type StatBlock struct {
	Value   int     `json:"value"`
	DieSize DieSize `json:"die_size"`
}

// NewStatBlock returns an attribute at the default score on a d6
func NewStatBlock() StatBlock {
	return StatBlock{Value: DefaultStatValue, DieSize: D6}
}

// StepDie moves the die one step up or down and resets Value to the new die's
// rounded average. It is a no-op at either end of the sequence and reports
// whether the die changed.
func (s *StatBlock) StepDie(dir Direction) bool {
	i := s.DieSize.index()
	if i < 0 || dir == 0 {
		return false
	}

	step := 1
	if dir < 0 {
		step = -1
	}
	next := i + step
	if next < 0 || next >= len(dieSizes) {
		return false
	}

	s.DieSize = dieSizes[next]
	s.Value = s.DieSize.RoundedAverage()
	return true
}

// ReducibleStat is an attribute that also tracks a max and current score (STR, SPI)
type ReducibleStat struct {
	StatBlock
	Max     int `json:"max"`
	Current int `json:"current"`
}

// NewReducibleStat returns a default attribute with max and current equal to its value
func NewReducibleStat() ReducibleStat {
	block := NewStatBlock()
	return ReducibleStat{StatBlock: block, Max: block.Value, Current: block.Value}
}

// SetMax changes the max and pulls current down when it would exceed it
func (r *ReducibleStat) SetMax(maxValue int) {
	r.Max = maxValue
	if r.Current > r.Max {
		r.Current = r.Max
	}
}

// SetCurrent changes current, clamped to [0, Max]
func (r *ReducibleStat) SetCurrent(current int) {
	r.Current = clamp(current, 0, r.Max)
}

// UnmarshalJSON fills missing max/current from value. The legacy max_value and
// current_value keys are accepted as well.
func (r *ReducibleStat) UnmarshalJSON(data []byte) error {
	var raw struct {
		Value         *int     `json:"value"`
		DieSize       *DieSize `json:"die_size"`
		Max           *int     `json:"max"`
		Current       *int     `json:"current"`
		LegacyMax     *int     `json:"max_value"`
		LegacyCurrent *int     `json:"current_value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	next := NewReducibleStat()
	if raw.Value != nil {
		next.Value = *raw.Value
	}
	if raw.DieSize != nil {
		next.DieSize = *raw.DieSize
	}
	next.Max = firstInt(next.Value, raw.Max, raw.LegacyMax)
	next.Current = firstInt(next.Value, raw.Current, raw.LegacyCurrent)

	*r = next
	return nil
}

// Pool is a max/current resource such as HP or MP
type Pool struct {
	Max     int `json:"max"`
	Current int `json:"current"`
}

// NewPool returns a full pool
func NewPool(maxValue int) Pool {
	return Pool{Max: maxValue, Current: maxValue}
}

// SetCurrent changes current, clamped to [0, Max]
func (p *Pool) SetCurrent(current int) {
	p.Current = clamp(current, 0, p.Max)
}

// UnmarshalJSON defaults a missing current to max
func (p *Pool) UnmarshalJSON(data []byte) error {
	var raw struct {
		Max     *int `json:"max"`
		Current *int `json:"current"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var next Pool
	if raw.Max != nil {
		next.Max = *raw.Max
	}
	next.Current = firstInt(next.Max, raw.Current)

	*p = next
	return nil
}

func firstInt(fallback int, candidates ...*int) int {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return fallback
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
