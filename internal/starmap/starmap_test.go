package starmap

import (
	"math"
	"testing"
)

func TestGenerate_ReferenceStar(t *testing.T) {
	stars := Generate(0x1, 1)
	if len(stars) != 1 {
		t.Fatalf("len = %d, want 1", len(stars))
	}

	// Raw planet sample is about -3.0, clamped to 0.
	want := Star{
		Name:    "Merga",
		Class:   ClassM,
		Planets: 0,
		Pos:     Point{X: 0.44426470082635805, Y: 0.762894391911761},
	}
	if stars[0] != want {
		t.Errorf("Generate(0x1, 1)[0] = %+v, want %+v", stars[0], want)
	}
}

func TestGenerate_ReferenceSequence(t *testing.T) {
	want := []Star{
		{"Elgafar", ClassM, 7, Point{0.2342915173999448, 0.6684607454196415}},
		{"Gienah", ClassM, 8, Point{0.8836963885529311, 0.9823853106393488}},
		{"Anser", ClassM, 6, Point{0.07635353132485789, 0.5829139110006895}},
	}

	got := Generate(0xdeadbeef, len(want))
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("star %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	seeds := []uint64{0, 1, 42, 0xdeadbeef, math.MaxUint64}
	for _, seed := range seeds {
		a := Generate(seed, MaxStars)
		b := Generate(seed, MaxStars)
		if len(a) != len(b) {
			t.Fatalf("seed %#x: lengths differ %d vs %d", seed, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("seed %#x: star %d differs: %+v vs %+v", seed, i, a[i], b[i])
			}
		}
	}
}

func TestGenerate_PrefixStable(t *testing.T) {
	full := Generate(1234, MaxStars)
	short := Generate(1234, 32)
	for i := range short {
		if short[i] != full[i] {
			t.Fatalf("star %d differs between count 32 and %d", i, MaxStars)
		}
	}
}

func TestGenerate_CountBounds(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{-5, 0},
		{0, 0},
		{1, 1},
		{MaxStars, MaxStars},
		{MaxStars + 100, MaxStars},
	}

	for _, tt := range tests {
		if got := len(Generate(7, tt.count)); got != tt.want {
			t.Errorf("len(Generate(7, %d)) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestGenerate_DistinctSeeds(t *testing.T) {
	same := 0
	for seed := uint64(0); seed < 200; seed++ {
		a := Generate(seed, 16)
		b := Generate(seed+1, 16)
		equal := true
		for i := range a {
			if a[i] != b[i] {
				equal = false
				break
			}
		}
		if equal {
			same++
		}
	}
	if same != 0 {
		t.Errorf("%d of 200 adjacent seed pairs produced identical populations", same)
	}
}

func TestGenerate_FieldRanges(t *testing.T) {
	pool := make(map[string]bool, len(names))
	for _, n := range names {
		pool[n] = true
	}

	for seed := uint64(0); seed < 50; seed++ {
		for _, s := range Generate(seed, MaxStars) {
			if s.Pos.X < 0 || s.Pos.X >= 1 || s.Pos.Y < 0 || s.Pos.Y >= 1 {
				t.Fatalf("seed %d: %s at (%v, %v) outside [0,1)", seed, s.Name, s.Pos.X, s.Pos.Y)
			}
			if !s.Class.Valid() {
				t.Fatalf("seed %d: invalid class %q", seed, s.Class)
			}
			if !pool[s.Name] {
				t.Fatalf("seed %d: name %q not in pool", seed, s.Name)
			}
		}
	}
}

func TestGenerate_ClassDistribution(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping distribution test in short mode")
	}

	// 1953 seeds x 512 stars is just over 1,000,000 draws.
	counts := make(map[Class]int)
	total := 0
	for seed := uint64(0); total < 1_000_000; seed++ {
		for _, s := range Generate(seed, MaxStars) {
			counts[s.Class]++
			total++
		}
	}

	for _, cw := range Classes() {
		got := float64(counts[cw.Class]) / float64(total)
		want := cw.Class.Probability()
		if math.Abs(got-want) > 0.003 {
			t.Errorf("class %s frequency = %.5f, want %.5f", cw.Class, got, want)
		}
	}
}

func TestGenerate_PlanetMean(t *testing.T) {
	var sum float64
	n := 0
	for seed := uint64(0); seed < 200; seed++ {
		for _, s := range Generate(seed, MaxStars) {
			sum += float64(s.Planets)
			n++
		}
	}
	// Clamping negative samples to zero lifts the mean slightly above 7.
	mean := sum / float64(n)
	if mean < 6.9 || mean > 7.25 {
		t.Errorf("planet mean = %.3f, want ~7", mean)
	}
}

func TestPlanetCount(t *testing.T) {
	tests := []struct {
		sample float64
		want   uint8
	}{
		{7.0, 7},
		{6.5, 7},
		{6.49, 6},
		{0.4, 0},
		{-0.4, 0},
		{-3.0, 0},
		{-300, 0},
		{254.6, 255},
		{1000, 255},
	}

	for _, tt := range tests {
		if got := planetCount(tt.sample); got != tt.want {
			t.Errorf("planetCount(%v) = %d, want %d", tt.sample, got, tt.want)
		}
	}
}

func TestGenerateRandom(t *testing.T) {
	stars, seed := GenerateRandom()
	if len(stars) != MaxStars {
		t.Fatalf("len = %d, want %d", len(stars), MaxStars)
	}

	again := Generate(seed, MaxStars)
	for i := range stars {
		if stars[i] != again[i] {
			t.Fatalf("GenerateRandom population not reproducible from seed %#x at star %d", seed, i)
		}
	}
}

func TestNamePool_IsCopy(t *testing.T) {
	pool := NamePool()
	if len(pool) != len(names) {
		t.Fatalf("len = %d, want %d", len(pool), len(names))
	}
	pool[0] = "changed"
	if names[0] == "changed" {
		t.Error("NamePool should return a copy")
	}
}
