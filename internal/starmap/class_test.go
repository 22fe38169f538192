package starmap

import (
	"encoding/json"
	"math"
	"testing"
)

func TestClasses_Order(t *testing.T) {
	want := "OBAFGKM"
	got := ""
	for _, cw := range Classes() {
		got += cw.Class.String()
	}
	if got != want {
		t.Errorf("class order = %q, want %q", got, want)
	}
}

func TestClass_Probability(t *testing.T) {
	var sum float64
	for _, cw := range Classes() {
		sum += cw.Class.Probability()
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("probabilities sum to %v, want 1", sum)
	}

	if ClassO.Probability() >= ClassB.Probability() {
		t.Error("O should be rarer than B")
	}
	if p := ClassM.Probability(); p < 0.76 || p > 0.77 {
		t.Errorf("M probability = %v, want ~0.765", p)
	}
	if p := Class('X').Probability(); p != 0 {
		t.Errorf("unknown class probability = %v, want 0", p)
	}
}

func TestPickClass_Valid(t *testing.T) {
	src := NewSource(3)
	counts := make(map[Class]int)
	for i := 0; i < 10000; i++ {
		counts[pickClass(src)]++
	}
	for c := range counts {
		if !c.Valid() {
			t.Errorf("pickClass returned invalid class %q", c)
		}
	}
}

func TestClass_JSON(t *testing.T) {
	data, err := json.Marshal(ClassG)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"G"` {
		t.Errorf("Marshal = %s, want \"G\"", data)
	}

	var c Class
	if err := json.Unmarshal([]byte(`"K"`), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if c != ClassK {
		t.Errorf("Unmarshal = %v, want K", c)
	}

	if err := json.Unmarshal([]byte(`"Z"`), &c); err == nil {
		t.Error("Unmarshal of unknown class should fail")
	}
}
