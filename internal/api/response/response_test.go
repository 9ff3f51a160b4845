package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func run(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	h(c)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{constants.NewError(constants.ErrNotFound, "Haber bulunamadı"), http.StatusNotFound, "Haber bulunamadı"},
		{fmt.Errorf("wrapped: %w", constants.ErrConflict), http.StatusConflict, constants.MsgConflict},
		{constants.ErrBadRequest, http.StatusBadRequest, constants.MsgInvalidParams},
		{constants.ErrUnauthorized, http.StatusUnauthorized, constants.MsgUnauthorized},
		{constants.ErrForbidden, http.StatusForbidden, constants.MsgForbidden},
		{constants.ErrTooManyRequests, http.StatusTooManyRequests, constants.MsgTooManyRequest},
		{errors.New("connection refused"), http.StatusInternalServerError, constants.MsgInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w, env := run(t, func(c *gin.Context) { Error(c, logger.NewNop(), tt.err) })
			assert.Equal(t, tt.status, w.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.msg, env.Error)
		})
	}
}

func TestPage(t *testing.T) {
	p := model.NewPaginated([]string{"a", "b"}, 45, 2, 20)
	w, env := run(t, func(c *gin.Context) { Page(c, p) })

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, Pagination{Page: 2, PageSize: 20, Total: 45, TotalPages: 3}, *env.Pagination)
	assert.Equal(t, []interface{}{"a", "b"}, env.Data)
}

func TestBindError(t *testing.T) {
	type body struct {
		Email string `json:"email" binding:"required,email"`
		Count int    `json:"count"`
	}
	bind := func(raw string) string {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		var b body
		err := c.ShouldBindJSON(&b)
		require.Error(t, err)
		BindError(c, err)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		return bindMessage(err)
	}

	assert.Equal(t, "İstek gövdesi boş", bind(""))
	assert.Equal(t, "Geçersiz JSON", bind("{"))
	assert.Equal(t, "Geçersiz JSON", bind("{x"))
	assert.Equal(t, "count alanı geçersiz", bind(`{"email":"a@b.co","count":"x"}`))
	assert.Contains(t, bind(`{"email":"nope"}`), "geçerli bir e-posta")
	assert.Contains(t, bind(`{}`), "zorunludur")
}

func TestParamID(t *testing.T) {
	for raw, want := range map[string]bool{"12": true, "0": false, "-3": false, "abc": false} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		id, ok := ParamID(c, "id")
		assert.Equal(t, want, ok, raw)
		if ok {
			assert.Equal(t, int64(12), id)
		} else {
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}
