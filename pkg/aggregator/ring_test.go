package aggregator

import (
	"reflect"
	"testing"
)

func TestPointsRingEvictsOldest(t *testing.T) {
	r := newPointsRing(RecentFieldGoalCap)
	for i := 1; i <= 13; i++ {
		r.Push(i)
		if len(r.Values()) > RecentFieldGoalCap {
			t.Fatalf("ring holds %d entries, cap is %d", len(r.Values()), RecentFieldGoalCap)
		}
	}

	want := []int{4, 5, 6, 7, 8, 9, 10, 11, 12, 13}
	if got := r.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if got := r.SumLast(3); got != 11+12+13 {
		t.Errorf("SumLast(3) = %d, want %d", got, 36)
	}
	if got := r.SumLast(RecentFieldGoalCap); got != 85 {
		t.Errorf("SumLast(10) = %d, want 85", got)
	}
}

func TestPointsRingPartial(t *testing.T) {
	r := newPointsRing(RecentFieldGoalCap)
	if got := r.SumLast(3); got != 0 {
		t.Errorf("empty SumLast(3) = %d, want 0", got)
	}
	if got := r.Values(); len(got) != 0 {
		t.Errorf("empty Values() = %v", got)
	}

	r.Push(2)
	r.Push(3)
	if got := r.SumLast(3); got != 5 {
		t.Errorf("SumLast(3) with 2 entries = %d, want 5", got)
	}
	if got := r.SumLast(5); got != 5 {
		t.Errorf("SumLast(5) with 2 entries = %d, want 5", got)
	}
}
