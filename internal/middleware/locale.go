package middleware

import (
	"personnel/internal/i18n"
	"personnel/internal/model"

	"github.com/gin-gonic/gin"
)

const (
	ctxLocale         = "locale"
	ctxLocaleExplicit = "localeExplicit"
)

// Localize picks the response language from Accept-Language.
// Without the header the authenticated user's own locale wins.
func Localize(tr *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Accept-Language")
		c.Set(ctxLocale, tr.Match(header, model.LocaleEnglish))
		c.Set(ctxLocaleExplicit, header != "")
		c.Next()
	}
}

// Locale returns the negotiated locale, English when none was set.
func Locale(c *gin.Context) string {
	if v := c.GetString(ctxLocale); v != "" {
		return v
	}
	return model.LocaleEnglish
}

func hasExplicitLocale(c *gin.Context) bool {
	return c.GetBool(ctxLocaleExplicit)
}
