package starmap

import (
	"encoding/json"
	"fmt"
)

// Class is a Harvard spectral class.
type Class byte

const (
	ClassO Class = 'O'
	ClassB Class = 'B'
	ClassA Class = 'A'
	ClassF Class = 'F'
	ClassG Class = 'G'
	ClassK Class = 'K'
	ClassM Class = 'M'
)

// ClassWeight pairs a class with its relative occurrence weight.
type ClassWeight struct {
	Class  Class
	Weight float64
}

// https://en.wikipedia.org/wiki/Stellar_classification#Harvard_spectral_classification
var classWeights = [...]ClassWeight{
	{ClassO, 0.00003},
	{ClassB, 0.12},
	{ClassA, 0.61},
	{ClassF, 3.0},
	{ClassG, 7.6},
	{ClassK, 12.0},
	{ClassM, 76.0},
}

var classWeightTotal = func() float64 {
	var total float64
	for _, cw := range classWeights {
		total += cw.Weight
	}
	return total
}()

// Classes returns every class with its weight, hottest first.
func Classes() []ClassWeight {
	out := make([]ClassWeight, len(classWeights))
	copy(out, classWeights[:])
	return out
}

// Probability returns the class weight divided by the total weight.
func (c Class) Probability() float64 {
	for _, cw := range classWeights {
		if cw.Class == c {
			return cw.Weight / classWeightTotal
		}
	}
	return 0
}

// Valid reports whether c is one of the seven classes.
func (c Class) Valid() bool {
	return c.Probability() > 0
}

func (c Class) String() string {
	return string(rune(c))
}

// MarshalJSON encodes the class as a one-letter string.
func (c Class) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a one-letter class string.
func (c *Class) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if len(s) != 1 || !Class(s[0]).Valid() {
		return fmt.Errorf("unknown star class %q", s)
	}
	*c = Class(s[0])
	return nil
}

// MarshalText lets Class be used as a JSON object key.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (c *Class) UnmarshalText(text []byte) error {
	if len(text) != 1 || !Class(text[0]).Valid() {
		return fmt.Errorf("unknown star class %q", text)
	}
	*c = Class(text[0])
	return nil
}

// pickClass scales one uniform draw to the weight sum and scans the
// cumulative weights.
func pickClass(src *Source) Class {
	x := src.Float64() * classWeightTotal
	var acc float64
	for _, cw := range classWeights {
		acc += cw.Weight
		if x < acc {
			return cw.Class
		}
	}
	return classWeights[len(classWeights)-1].Class
}
