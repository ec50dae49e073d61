package api

const (
	authCookieName     = "health_auth"
	languageCookieName = "health_lang"
	flashCookieName    = "health_flash"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
)
