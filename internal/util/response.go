package util

import (
	"net/http"

	"github.com/mariaed-2103/Dashboard-Financeiro/internal/apperr"

	"github.com/gin-gonic/gin"
)

// Response is the data payload of a successful reply.
type Response map[string]interface{}

// business codes
const (
	CodeOK           = 0
	CodeInvalidParam = 40001
	CodeAuth         = 40101
	CodeNotFound     = 40401
	CodeConflict     = 40901
	CodePolicy       = 42201
	CodeLimit        = 42901
	CodeServerErr    = 50001
)

// Success writes the uniform success envelope.
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Error writes the uniform error envelope.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}

// Fail maps a service error to the response envelope. Business errors keep
// their message; anything unclassified becomes a generic 500.
func Fail(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		Error(c, http.StatusBadRequest, CodeInvalidParam, err.Error())
	case apperr.KindNotFound:
		Error(c, http.StatusNotFound, CodeNotFound, err.Error())
	case apperr.KindConflict:
		Error(c, http.StatusConflict, CodeConflict, err.Error())
	case apperr.KindLimit:
		Error(c, http.StatusTooManyRequests, CodeLimit, err.Error())
	case apperr.KindPolicy:
		Error(c, http.StatusUnprocessableEntity, CodePolicy, err.Error())
	case apperr.KindAuth:
		Error(c, http.StatusUnauthorized, CodeAuth, err.Error())
	default:
		Error(c, http.StatusInternalServerError, CodeServerErr, "internal error")
	}
}
