package shared

import (
	"reflect"
	"testing"
)

func TestSeatingRotation(t *testing.T) {
	s := NewSeating(4)
	if !reflect.DeepEqual(s.Order(), []int{0, 1, 2, 3}) {
		t.Fatalf("initial order %v", s.Order())
	}

	s.RotateLeft(1)
	if !reflect.DeepEqual(s.Order(), []int{1, 2, 3, 0}) {
		t.Fatalf("after rotate 1: %v", s.Order())
	}
	s.RotateLeft(6)
	if !reflect.DeepEqual(s.Order(), []int{3, 0, 1, 2}) {
		t.Fatalf("after rotate 6: %v", s.Order())
	}
	if s.At(0) != 3 || s.Index(3) != 0 || s.Index(9) != -1 {
		t.Fatalf("At/Index disagree with %v", s.Order())
	}

	order := s.Order()
	order[0] = 42
	if s.At(0) == 42 {
		t.Fatalf("Order must return a copy")
	}

	s.Reset()
	if !reflect.DeepEqual(s.Order(), []int{0, 1, 2, 3}) {
		t.Fatalf("after reset: %v", s.Order())
	}
}
