package environment

import (
	"testing"

	ts "github.com/samuelfneumann/cabdriver/timestep"
	"gonum.org/v1/gonum/mat"
)

func TestCategoricalStarterBounds(t *testing.T) {
	bounds := []int{5, 24, 7}
	s, err := NewCategoricalStarter(bounds, 42)
	if err != nil {
		t.Fatal(err)
	}

	seen := make([]map[int]bool, len(bounds))
	for i := range seen {
		seen[i] = make(map[int]bool)
	}

	for i := 0; i < 5000; i++ {
		start := s.Start()
		if start.Len() != len(bounds) {
			t.Fatalf("start length: want(%v) have(%v)", len(bounds),
				start.Len())
		}
		for j, bound := range bounds {
			v := int(start.AtVec(j))
			if v < 0 || v >= bound {
				t.Fatalf("dimension %d: %v ∉ [0, %v)", j, v, bound)
			}
			seen[j][v] = true
		}
	}

	for j, bound := range bounds {
		if len(seen[j]) != bound {
			t.Errorf("dimension %d: sampled %v of %v categories", j,
				len(seen[j]), bound)
		}
	}
}

func TestCategoricalStarterErrors(t *testing.T) {
	if _, err := NewCategoricalStarter(nil, 1); err == nil {
		t.Error("expected error for empty bounds")
	}
	if _, err := NewCategoricalStarter([]int{3, 0}, 1); err == nil {
		t.Error("expected error for zero bound")
	}
}

func TestCategoricalStarterSeed(t *testing.T) {
	a, _ := NewCategoricalStarter([]int{5, 24, 7}, 7)
	b, _ := NewCategoricalStarter([]int{5, 24, 7}, 7)

	for i := 0; i < 10; i++ {
		if !mat.Equal(a.Start(), b.Start()) {
			t.Fatal("starters with equal seeds diverged")
		}
	}
}

func TestEnders(t *testing.T) {
	tests := []struct {
		name   string
		ender  Ender
		number int
		clock  int
		want   bool
	}{
		{"StepBelow", NewStepLimit(10), 9, 100, false},
		{"StepAt", NewStepLimit(10), 10, 0, true},
		{"ClockBelow", NewClockLimit(720), 1000, 719, false},
		{"ClockAt", NewClockLimit(720), 1, 720, true},
		{"ClockAbove", NewClockLimit(720), 1, 725, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			step := ts.New(ts.Mid, 0, 1, nil, test.number, 1, test.clock)
			if got := test.ender.End(&step); got != test.want {
				t.Errorf("want(%v) have(%v)", test.want, got)
			}
			if step.Last() != test.want {
				t.Errorf("step type: want last(%v) have(%v)", test.want,
					step.StepType)
			}
			if test.want && step.EndType() != ts.Timeout {
				t.Errorf("end type: want(%v) have(%v)", ts.Timeout,
					step.EndType())
			}
		})
	}
}

func TestNewSpecPanicsOnShapeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewSpec(mat.NewVecDense(2, nil), Observation, mat.NewVecDense(1, nil),
		mat.NewVecDense(2, nil), Discrete)
}
