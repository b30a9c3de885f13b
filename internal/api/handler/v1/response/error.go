package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the JSON error envelope every failed request renders.
type Err struct {
	statusCode int
	cause      error

	RequestID string `json:"request_id"`
	ErrCode   int    `json:"err_code"`
	ErrMsg    string `json:"err_msg"`
}

func (e *Err) Error() string {
	return e.ErrMsg
}

func newErr(statusCode, errCode int, err error) *Err {
	return &Err{
		statusCode: statusCode,
		cause:      err,
		ErrCode:    errCode,
		ErrMsg:     err.Error(),
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, 40001, err)
}

func ErrWrongCredentials(err error) *Err {
	return newErr(http.StatusUnauthorized, 40101, err)
}

func ErrPermissionDenied(err error) *Err {
	return newErr(http.StatusForbidden, 40301, err)
}

func ErrNotFound(err error) *Err {
	return newErr(http.StatusNotFound, 40401, err)
}

func ErrConflict(err error) *Err {
	return newErr(http.StatusConflict, 40901, err)
}

func ErrInternalServerError(err error) *Err {
	return newErr(http.StatusInternalServerError, 50001, err)
}

// RenderErr writes the envelope and logs server-side failures with the
// request ID so log lines and responses can be correlated.
func RenderErr(ctx *gin.Context, err *Err) {
	err.RequestID = requestid.Get(ctx)

	if err.statusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", err.RequestID),
			zap.Int("err_code", err.ErrCode),
			zap.Error(err.cause),
		)
	}

	ctx.JSON(err.statusCode, err)
}
