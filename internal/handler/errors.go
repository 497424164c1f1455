package handler

import (
	"errors"
	"net/http"

	"github.com/damoang/angple-community/internal/common"
	"github.com/damoang/angple-community/internal/middleware"
	"github.com/damoang/angple-community/internal/service"
	"github.com/damoang/angple-community/pkg/ginutil"
	"github.com/damoang/angple-community/pkg/i18n"
	"github.com/gin-gonic/gin"
)

// action names the operation an error came from, for picking the message
type action int

const (
	actionView action = iota
	actionCreate
	actionEdit
	actionDelete
	actionRemoveFile
)

// respondError writes the error envelope for err
func (h *CommunityHandler) respondError(c *gin.Context, err error, act action, category string) {
	status, info := h.errorInfo(c, err, act, category)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	if gin.Mode() != gin.ReleaseMode {
		info.Details = err.Error()
	}
	common.ErrorWithInfo(c, status, info)
}

// errorInfo maps a view error onto a status, a localized message and,
// where the client has to move on, a redirect target
func (h *CommunityHandler) errorInfo(c *gin.Context, err error, act action, category string) (int, *common.ErrorInfo) {
	locale := middleware.GetLocale(c)
	t := func(key string, args ...interface{}) string { return h.bundle.T(locale, key, args...) }
	info := &common.ErrorInfo{}
	status := http.StatusInternalServerError

	var ve *common.ValidationError
	switch {
	case errors.Is(err, common.ErrNotAuthenticated):
		status = http.StatusUnauthorized
		info.Code = "NOT_AUTHENTICATED"
		info.Message = t(i18n.KeyLoginRequired)
		if middleware.SessionExpired(c) {
			info.Message = t(i18n.KeyTokenExpired)
		}
		info.Redirect = h.loginPath

	case errors.Is(err, common.ErrSuspendedAccount):
		status = http.StatusForbidden
		info.Code = "SUSPENDED_ACCOUNT"
		info.Message = t(i18n.KeySuspended)
		info.Redirect = service.ListPath(category)

	case errors.Is(err, common.ErrNotAuthor):
		status = http.StatusForbidden
		info.Code = "NOT_AUTHOR"
		info.Message = t(i18n.KeyNotAuthorEdit)
		if act == actionDelete {
			info.Message = t(i18n.KeyNotAuthorDelete)
		}

	case errors.As(err, &ve):
		status = http.StatusUnprocessableEntity
		info.Code = "VALIDATION_FAILED"
		info.Reason = ve.Reason
		switch ve.Reason {
		case common.ReasonTitleTooLong:
			info.Message = t(i18n.KeyTitleTooLong, ve.Limit)
		case common.ReasonContentTooLong:
			info.Message = t(i18n.KeyContentTooLong, ve.Limit)
		default:
			info.Message = t(i18n.KeyBadRequest)
		}

	case errors.Is(err, common.ErrNoPrevious):
		status = http.StatusNotFound
		info.Message = t(i18n.KeyNoPrevious)

	case errors.Is(err, common.ErrNoNext):
		status = http.StatusNotFound
		info.Message = t(i18n.KeyNoNext)

	case errors.Is(err, common.ErrPostNotFound):
		status = http.StatusNotFound
		info.Message = t(i18n.KeyPostNotFound)
		info.Redirect = service.ListPath(category)

	case errors.Is(err, common.ErrFileNotFound):
		status = http.StatusNotFound
		info.Message = t(i18n.KeyFileNotFound)

	case errors.Is(err, common.ErrRemoteFetchFailed):
		status = http.StatusBadGateway
		info.Code = "REMOTE_FETCH_FAILED"
		info.Message = t(i18n.KeyFetchFailed)
		if act == actionView {
			info.Redirect = service.ListPath(category)
		}

	case errors.Is(err, common.ErrRemoteWriteFailed):
		status = http.StatusBadGateway
		info.Code = "REMOTE_WRITE_FAILED"
		info.Message = t(writeFailureKey(act))

	case errors.Is(err, ginutil.ErrInvalidID), errors.Is(err, common.ErrInvalidInput):
		status = http.StatusBadRequest
		info.Message = t(i18n.KeyBadRequest)

	default:
		info.Message = t(i18n.KeyInternal)
	}

	return status, info
}

func writeFailureKey(act action) string {
	switch act {
	case actionEdit:
		return i18n.KeyUpdateFailed
	case actionDelete:
		return i18n.KeyDeleteFailed
	case actionRemoveFile:
		return i18n.KeyFileRemoveFail
	default:
		return i18n.KeyCreateFailed
	}
}
