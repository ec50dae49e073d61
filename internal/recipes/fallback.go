package recipes

import "strings"

const (
	fallbackKeyHighProtein = "高タンパク"
	fallbackKeyLowCalorie  = "低カロリー"
)

var highProteinFallback = []Recipe{
	{
		Title:   "鶏胸肉のグリル - クックパッド",
		URL:     "https://cookpad.com/search/%E9%B6%8F%E8%83%B8%E8%82%89%20%E3%82%B0%E3%83%AA%E3%83%AB",
		Snippet: "高タンパク・低脂質の鶏胸肉を使った簡単レシピ",
		Source:  "クックパッド",
	},
	{
		Title:   "サーモンのソテー - クラシル",
		URL:     "https://www.kurashiru.com/search?query=%E3%82%B5%E3%83%BC%E3%83%A2%E3%83%B3%20%E3%82%BD%E3%83%86%E3%83%BC",
		Snippet: "オメガ3脂肪酸豊富なサーモンレシピ",
		Source:  "クラシル",
	},
}

var lowCalorieFallback = []Recipe{
	{
		Title:   "豆腐ハンバーグ - デリッシュキッチン",
		URL:     "https://delishkitchen.tv/search?q=%E8%B1%86%E8%85%90%E3%83%8F%E3%83%B3%E3%83%90%E3%83%BC%E3%82%B0",
		Snippet: "ヘルシーで満足感のある豆腐ハンバーグ",
		Source:  "デリッシュキッチン",
	},
	{
		Title:   "野菜たっぷりスープ - E・レシピ",
		URL:     "https://erecipe.woman.excite.co.jp/search/?keyword=%E9%87%8E%E8%8F%9C%E3%82%B9%E3%83%BC%E3%83%97",
		Snippet: "栄養満点の野菜スープレシピ",
		Source:  "E・レシピ",
	},
}

// FallbackRecipes picks the static set whose keyword appears in the query.
// The high-protein key is checked first; a query matching neither keyword
// also gets the high-protein set.
func FallbackRecipes(query string) []Recipe {
	if strings.Contains(query, fallbackKeyHighProtein) {
		return cloneRecipes(highProteinFallback)
	}
	if strings.Contains(query, fallbackKeyLowCalorie) {
		return cloneRecipes(lowCalorieFallback)
	}
	return cloneRecipes(highProteinFallback)
}

func cloneRecipes(recipes []Recipe) []Recipe {
	cloned := make([]Recipe, len(recipes))
	copy(cloned, recipes)
	return cloned
}
