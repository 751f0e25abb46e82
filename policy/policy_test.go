package policy

import (
	"errors"
	"testing"
)

func TestThresholdPredicates(t *testing.T) {
	p := Threshold(8)
	cases := []struct {
		arity        int
		split, merge bool
	}{
		{arity: 1, split: false, merge: true},
		{arity: 3, split: false, merge: true},
		{arity: 4, split: false, merge: false},
		{arity: 8, split: false, merge: false},
		{arity: 9, split: true, merge: false},
	}
	for _, c := range cases {
		if got := p.PageShouldSplit(c.arity); got != c.split {
			t.Errorf("PageShouldSplit(%d) = %v, want %v", c.arity, got, c.split)
		}
		if got := p.PageShouldMerge(c.arity); got != c.merge {
			t.Errorf("PageShouldMerge(%d) = %v, want %v", c.arity, got, c.merge)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default policy rejected: %v", err)
	}
	if err := Validate(nil); !errors.Is(err, ErrInvalidPolicy) {
		t.Fatalf("expected ErrInvalidPolicy for nil policy, got %v", err)
	}
	if err := Validate(Threshold(2)); !errors.Is(err, ErrInvalidPolicy) {
		t.Fatalf("expected ErrInvalidPolicy for tiny threshold, got %v", err)
	}
}
