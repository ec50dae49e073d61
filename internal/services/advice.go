package services

import "strings"

// MinAdviceDays is the amount of dense weight history required before the
// advice pipeline runs.
const MinAdviceDays = 30

// Recipe categories and the search queries they map to. The strings are the
// user-facing Japanese labels; the UI renders them as-is.
const (
	CategoryWeightManagement = "体重管理"
	CategoryMuscleBuilding   = "筋肉増強"
	CategoryMetabolismBoost  = "代謝改善"
	CategoryHealthUpkeep     = "健康維持"
)

const (
	queryWeightManagement = "低カロリー 高タンパク ダイエット レシピ"
	queryMuscleBuilding   = "高タンパク 筋トレ 食事 レシピ"
	queryMetabolismBoost  = "代謝アップ バランス 栄養 レシピ"
	queryHealthUpkeep     = "バランス 健康 簡単 レシピ"
)

const (
	adviceWeightRising  = "⚠️ **体重が増加傾向です**\n- 食事量を見直しましょう\n- 低カロリー・高タンパクの食事を意識"
	adviceWeightFalling = "📉 **体重が減少傾向です**\n- 良いペースです!この調子で続けましょう\n- 栄養バランスも忘れずに"
	adviceWeightStable  = "✅ **体重は安定しています**\n- 現在の生活習慣を維持しましょう"
	adviceGymTooRare    = "💪 **ジムの頻度を増やしましょう**\n- 週3回以上を目標に!\n- 筋肉をつけて基礎代謝アップ"
	adviceGymExcellent  = "🏆 **素晴らしいジム習慣です!**\n- 継続は力なり!\n- タンパク質をしっかり摂取しましょう"
)

// SelectAdvice maps the trend signals to the advice text and the recipe
// category/query. The text cascade and the recipe rules are evaluated
// independently: the calorie signal picks a recipe category but contributes
// no paragraph to the text.
func SelectAdvice(signals TrendSignals) (string, string, string) {
	paragraphs := make([]string, 0, 2)

	switch {
	case signals.WeightDeltaAvg > 0.2:
		paragraphs = append(paragraphs, adviceWeightRising)
	case signals.WeightDeltaAvg < -0.2:
		paragraphs = append(paragraphs, adviceWeightFalling)
	default:
		paragraphs = append(paragraphs, adviceWeightStable)
	}

	if signals.AttendanceRate < 0.3 {
		paragraphs = append(paragraphs, adviceGymTooRare)
	} else if signals.AttendanceRate >= 0.7 {
		paragraphs = append(paragraphs, adviceGymExcellent)
	}

	category, query := selectRecipeRule(signals)
	return strings.Join(paragraphs, "\n\n"), category, query
}

// selectRecipeRule is first-match-wins, in this exact order.
func selectRecipeRule(signals TrendSignals) (string, string) {
	switch {
	case signals.WeightDeltaAvg > 0.2:
		return CategoryWeightManagement, queryWeightManagement
	case signals.AttendanceRate >= 0.5:
		return CategoryMuscleBuilding, queryMuscleBuilding
	case signals.AvgCalories < 200:
		return CategoryMetabolismBoost, queryMetabolismBoost
	default:
		return CategoryHealthUpkeep, queryHealthUpkeep
	}
}
