package automation

import (
	"strings"

	"replydesk.app/server/internal/model"
)

const finnishLetters = "äöåÄÖÅ"

// DetectLanguage tags a reply as Finnish when it contains any of ä, ö or å and as
// English otherwise.
func DetectLanguage(reply string) model.Language {
	if strings.ContainsAny(reply, finnishLetters) {
		return model.LanguageFinnish
	}
	return model.LanguageEnglish
}
