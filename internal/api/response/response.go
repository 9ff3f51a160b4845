// Package response writes the JSON envelope shared by every endpoint:
// {"success": bool, "data": ..., "error": "...", "pagination": {...}}.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/pkg/logger"
)

// Envelope response body
type Envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination metadata of a paginated list
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// OK 200 with data
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created 201 with the new resource
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// Deleted 200 without data
func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, Envelope{Success: true})
}

// Page 200 with the page items as data
func Page[T any](c *gin.Context, p *model.Paginated[T]) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    p.Items,
		Pagination: &Pagination{
			Page:       p.Page,
			PageSize:   p.PageSize,
			Total:      p.Total,
			TotalPages: p.TotalPages(),
		},
	})
}

// Fail aborts with status and message
func Fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Error: msg})
}

// Error maps a domain error to its status code. Server errors are logged with the request path;
// the client only sees the message attached to the error or a generic one.
func Error(c *gin.Context, log *logger.Logger, err error) {
	status, def := classify(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
	}
	Fail(c, status, constants.ClientMessage(err, def))
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, constants.ErrBadRequest):
		return http.StatusBadRequest, constants.MsgInvalidParams
	case errors.Is(err, constants.ErrUnauthorized):
		return http.StatusUnauthorized, constants.MsgUnauthorized
	case errors.Is(err, constants.ErrForbidden):
		return http.StatusForbidden, constants.MsgForbidden
	case errors.Is(err, constants.ErrNotFound):
		return http.StatusNotFound, constants.MsgNotFound
	case errors.Is(err, constants.ErrConflict):
		return http.StatusConflict, constants.MsgConflict
	case errors.Is(err, constants.ErrTooManyRequests):
		return http.StatusTooManyRequests, constants.MsgTooManyRequest
	default:
		return http.StatusInternalServerError, constants.MsgInternalServer
	}
}

// BindError 400 describing the first invalid field
func BindError(c *gin.Context, err error) {
	Fail(c, http.StatusBadRequest, bindMessage(err))
}

func bindMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s alanı zorunludur", fe.Field())
		case "email":
			return fmt.Sprintf("%s geçerli bir e-posta adresi olmalıdır", fe.Field())
		case "slug":
			return fmt.Sprintf("%s yalnızca küçük harf, rakam ve tire içerebilir", fe.Field())
		default:
			return fmt.Sprintf("%s alanı geçersiz", fe.Field())
		}
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return "İstek gövdesi boş"
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return "Geçersiz JSON"
	case errors.As(err, &typeErr):
		return fmt.Sprintf("%s alanı geçersiz", typeErr.Field)
	}
	return constants.MsgInvalidParams
}

// ParamID parses a positive integer path parameter, answering 400 when it is not one
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		Fail(c, http.StatusBadRequest, constants.MsgInvalidID)
		return 0, false
	}
	return id, true
}
