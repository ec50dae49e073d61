package services

type gymTitleRung struct {
	MinStreak int
	Title     string
}

// Ordered highest first; the first rung the streak reaches wins.
var gymTitleLadder = []gymTitleRung{
	{30, "ジム神"},
	{15, "ジム仙人"},
	{10, "ジム師範代"},
	{7, "ジムマスター"},
	{5, "ジムの常連さん"},
	{3, "ジム慣れ"},
	{2, "ジム初心者"},
	{1, "ジム練習生"},
}

const gymTitleNone = "ジム未経験者"

// GymTitle returns the rank shown on the dashboard for a consecutive
// attendance streak.
func GymTitle(streak int) string {
	for _, rung := range gymTitleLadder {
		if streak >= rung.MinStreak {
			return rung.Title
		}
	}
	return gymTitleNone
}
