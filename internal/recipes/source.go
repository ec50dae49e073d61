package recipes

import "strings"

const SourceOther = "その他"

var knownSources = []struct {
	Domain string
	Name   string
}{
	{"cookpad.com", "クックパッド"},
	{"kurashiru.com", "クラシル"},
	{"delishkitchen.tv", "デリッシュキッチン"},
	{"erecipe.woman.excite.co.jp", "E・レシピ"},
}

// SourceFromURL attributes a result to a known recipe site by domain.
func SourceFromURL(rawURL string) string {
	for _, source := range knownSources {
		if strings.Contains(rawURL, source.Domain) {
			return source.Name
		}
	}
	return SourceOther
}
