package handler

import (
	"errors"
	"fmt"
	"net/http"

	"personnel/internal/i18n"
	"personnel/internal/middleware"
	"personnel/internal/payroll"
	"personnel/internal/service"
	"personnel/pkg/response"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	key    string
}

// first match wins
var errorMappings = []errorMapping{
	{payroll.ErrInvalidAmount, http.StatusBadRequest, i18n.KeyInvalidAmount},
	{payroll.ErrInvalidRate, http.StatusBadRequest, i18n.KeyInvalidRate},
	{payroll.ErrInvalidTaxStatus, http.StatusBadRequest, i18n.KeyInvalidTaxStatus},
	{payroll.ErrInvalidDirection, http.StatusBadRequest, i18n.KeyInvalidDirection},
	{payroll.ErrNoApplicableRule, http.StatusNotFound, i18n.KeyNoApplicableRule},
	{payroll.ErrDivisionUndefined, http.StatusUnprocessableEntity, i18n.KeyDivisionUndefined},
	{payroll.ErrDuplicateEffectiveDate, http.StatusConflict, i18n.KeyRuleConflict},
	{service.ErrNotFound, http.StatusNotFound, i18n.KeyNotFound},
	{service.ErrRuleVersionInUse, http.StatusConflict, i18n.KeyRuleInUse},
	{service.ErrRuleVersionConflict, http.StatusConflict, i18n.KeyRuleConflict},
	{service.ErrRuleVersionChanged, http.StatusConflict, i18n.KeyRuleChanged},
	{service.ErrEmailTaken, http.StatusConflict, i18n.KeyEmailTaken},
	{service.ErrUserExists, http.StatusConflict, i18n.KeyUserExists},
	{service.ErrUnauthenticated, http.StatusUnauthorized, i18n.KeyBadCredentials},
}

// classify returns the HTTP status and message key for err.
func classify(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.key
		}
	}
	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusBadRequest, i18n.KeyInvalidRequest
	}
	return http.StatusInternalServerError, i18n.KeyInternal
}

// respondError writes the translated error envelope. Internal details never reach the client.
func respondError(c *gin.Context, tr *i18n.Translator, err error) {
	status, key := classify(err)
	locale := middleware.Locale(c)

	var msg string
	if key == i18n.KeyInvalidRequest {
		msg = tr.T(locale, key, err.Error())
	} else {
		msg = tr.T(locale, key)
	}

	var lineErr *service.LineError
	if errors.As(err, &lineErr) && status < http.StatusInternalServerError {
		msg = fmt.Sprintf("#%d: %s", lineErr.Line, msg)
	}

	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, response.Error(status, msg))
}

// respondBindError reports a malformed body or query.
func respondBindError(c *gin.Context, tr *i18n.Translator, err error) {
	c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, tr.T(middleware.Locale(c), i18n.KeyInvalidRequest, err.Error())))
}
