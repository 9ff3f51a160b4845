package validate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kentkonut/internal/types"
)

func bindJSON(t *testing.T, raw string, dst interface{}) error {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(dst)
}

func TestRegister(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, Register())
	require.NoError(t, Register())

	var news types.NewsRequest
	assert.NoError(t, bindJSON(t, `{"slug":"yeni-santiye"}`, &news))

	err := bindJSON(t, `{"slug":"Yeni Şantiye"}`, &news)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "slug", verrs[0].Tag())
	assert.Equal(t, "slug", verrs[0].Field())

	var link types.QuickAccessLinkRequest
	assert.NoError(t, bindJSON(t, `{"moduleType":"department"}`, &link))
	err = bindJSON(t, `{"moduleType":"blog"}`, &link)
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "moduleType", verrs[0].Field())
}
