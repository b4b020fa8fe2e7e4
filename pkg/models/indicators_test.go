package models

import "testing"

func TestIndicatorRecordAddAndMap(t *testing.T) {
	var totals IndicatorRecord
	totals.Add(IndicatorRecord{ThreePoints: 3, FieldGoals: 3, ShotDistance: 24})
	totals.Add(IndicatorRecord{Twos: 2, FieldGoals: 2, ShotDistance: 1, EfficientShot: 1, Assist: 1})
	totals.Add(IndicatorRecord{DefReb: 1, Foul: 1})

	m := totals.AsMap()
	want := map[string]int{
		IndicatorThreePoints:   3,
		IndicatorFreeThrows:    0,
		IndicatorTwos:          2,
		IndicatorDefReb:        1,
		IndicatorOffReb:        0,
		IndicatorAssist:        1,
		IndicatorSteal:         0,
		IndicatorBlock:         0,
		IndicatorFoul:          1,
		IndicatorShotDistance:  25,
		IndicatorFieldGoals:    5,
		IndicatorEfficientShot: 1,
	}
	if len(m) != len(want) {
		t.Fatalf("AsMap has %d keys, want %d", len(m), len(want))
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("%s = %d, want %d", k, m[k], v)
		}
	}

	if _, ok := totals.Get("rebounds"); ok {
		t.Error("Get should reject unknown indicator names")
	}
}
