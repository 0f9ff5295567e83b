package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petcarebr/petshop-scheduler/internal/apperr"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// FromError mapeia a taxonomia de erros de negócio para HTTP. A
// mensagem do próprio erro já é apresentável.
func FromError(c *gin.Context, err error) {
	var validation *apperr.ValidationError
	if errors.As(err, &validation) {
		BadRequest(c, "validation_error", validation.Error())
		return
	}

	var conflict *apperr.SchedulingConflictError
	if errors.As(err, &conflict) {
		Conflict(c, "time_conflict", conflict.Error())
		return
	}

	var notFound *apperr.NotFoundError
	if errors.As(err, &notFound) {
		NotFound(c, "not_found", notFound.Error())
		return
	}

	var integrity *apperr.ReferentialIntegrityError
	if errors.As(err, &integrity) {
		Conflict(c, "referential_integrity", integrity.Error())
		return
	}

	Internal(c, "internal_error", "Erro interno.")
}
