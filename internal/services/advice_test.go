package services

import (
	"strings"
	"testing"
)

func TestSelectAdviceTextCascade(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		signals     TrendSignals
		wantParts   []string
		absentParts []string
	}{
		{
			name:        "rising weight and rare gym",
			signals:     TrendSignals{WeightDeltaAvg: 0.3, AttendanceRate: 0.1},
			wantParts:   []string{"体重が増加傾向", "ジムの頻度を増やしましょう"},
			absentParts: []string{"素晴らしいジム習慣"},
		},
		{
			name:        "falling weight and excellent gym",
			signals:     TrendSignals{WeightDeltaAvg: -0.3, AttendanceRate: 0.8},
			wantParts:   []string{"体重が減少傾向", "素晴らしいジム習慣"},
			absentParts: []string{"ジムの頻度を増やしましょう"},
		},
		{
			name:        "stable weight and middling gym gets no gym paragraph",
			signals:     TrendSignals{WeightDeltaAvg: 0.0, AttendanceRate: 0.5},
			wantParts:   []string{"体重は安定しています"},
			absentParts: []string{"ジムの頻度", "素晴らしいジム習慣"},
		},
		{
			name:      "thresholds are exclusive at +0.2",
			signals:   TrendSignals{WeightDeltaAvg: 0.2, AttendanceRate: 0.5},
			wantParts: []string{"体重は安定しています"},
		},
		{
			name:      "attendance 0.7 counts as excellent",
			signals:   TrendSignals{WeightDeltaAvg: 0.0, AttendanceRate: 0.7},
			wantParts: []string{"素晴らしいジム習慣"},
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			text, _, _ := SelectAdvice(testCase.signals)
			for _, part := range testCase.wantParts {
				if !strings.Contains(text, part) {
					t.Errorf("advice text missing %q:\n%s", part, text)
				}
			}
			for _, part := range testCase.absentParts {
				if strings.Contains(text, part) {
					t.Errorf("advice text unexpectedly contains %q:\n%s", part, text)
				}
			}
		})
	}
}

func TestSelectAdviceJoinsParagraphsWithBlankLine(t *testing.T) {
	t.Parallel()

	text, _, _ := SelectAdvice(TrendSignals{WeightDeltaAvg: 0.3, AttendanceRate: 0.1})
	if !strings.Contains(text, "\n\n") {
		t.Fatalf("expected paragraphs joined by a blank line:\n%s", text)
	}
}

func TestSelectRecipeRuleOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		signals      TrendSignals
		wantCategory string
	}{
		{
			name:         "weight gain wins over everything",
			signals:      TrendSignals{WeightDeltaAvg: 0.25, AttendanceRate: 0.8, AvgCalories: 500},
			wantCategory: CategoryWeightManagement,
		},
		{
			name:         "frequent gym without weight gain",
			signals:      TrendSignals{WeightDeltaAvg: 0.0, AttendanceRate: 0.5, AvgCalories: 100},
			wantCategory: CategoryMuscleBuilding,
		},
		{
			name:         "low calories without gym",
			signals:      TrendSignals{WeightDeltaAvg: 0.0, AttendanceRate: 0.2, AvgCalories: 150},
			wantCategory: CategoryMetabolismBoost,
		},
		{
			name:         "default upkeep",
			signals:      TrendSignals{WeightDeltaAvg: 0.0, AttendanceRate: 0.2, AvgCalories: 400},
			wantCategory: CategoryHealthUpkeep,
		},
		{
			name:         "calorie boundary 200 falls through to upkeep",
			signals:      TrendSignals{WeightDeltaAvg: 0.0, AttendanceRate: 0.2, AvgCalories: 200},
			wantCategory: CategoryHealthUpkeep,
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			_, category, query := SelectAdvice(testCase.signals)
			if category != testCase.wantCategory {
				t.Fatalf("category = %q, want %q", category, testCase.wantCategory)
			}
			if strings.TrimSpace(query) == "" {
				t.Fatal("expected non-empty recipe query")
			}
		})
	}
}

func TestGymTitleLadder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		streak int
		want   string
	}{
		{0, "ジム未経験者"},
		{1, "ジム練習生"},
		{2, "ジム初心者"},
		{3, "ジム慣れ"},
		{4, "ジム慣れ"},
		{5, "ジムの常連さん"},
		{7, "ジムマスター"},
		{10, "ジム師範代"},
		{15, "ジム仙人"},
		{29, "ジム仙人"},
		{30, "ジム神"},
		{100, "ジム神"},
	}

	for _, testCase := range cases {
		if got := GymTitle(testCase.streak); got != testCase.want {
			t.Errorf("GymTitle(%d) = %q, want %q", testCase.streak, got, testCase.want)
		}
	}
}
