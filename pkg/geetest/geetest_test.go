package geetest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

var params = VerifyParams{LotNumber: "lot", CaptchaOutput: "out", PassToken: "pass", GenTime: "1700000000"}

func TestClient_Verify_Success(t *testing.T) {
	c := NewClient("cid", "key", "")
	srv := newTestServer(t, `{"status":"success","result":"success"}`, func(r *http.Request) {
		assert.Equal(t, "/validate", r.URL.Path)
		assert.Equal(t, "cid", r.URL.Query().Get("captcha_id"))
		assert.Equal(t, c.signToken("lot"), r.PostForm.Get("sign_token"))
	})
	c.apiServer = srv.URL

	assert.NoError(t, c.Verify(context.Background(), params))
}

func TestClient_Verify_Rejected(t *testing.T) {
	srv := newTestServer(t, `{"status":"success","result":"fail","reason":"pass_token expire"}`, nil)
	c := NewClient("cid", "key", srv.URL+"/")

	err := c.Verify(context.Background(), params)
	assert.ErrorIs(t, err, ErrCaptchaFailed)
}

func TestClient_Verify_APIError(t *testing.T) {
	srv := newTestServer(t, `{"status":"error","msg":"bad captcha_id"}`, nil)
	c := NewClient("cid", "key", srv.URL)

	err := c.Verify(context.Background(), params)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCaptchaFailed)
}

func TestClient_Verify_MissingFields(t *testing.T) {
	c := NewClient("cid", "key", "http://unused")
	assert.ErrorIs(t, c.Verify(context.Background(), VerifyParams{}), ErrCaptchaFailed)
}

func TestSignToken(t *testing.T) {
	c := NewClient("cid", "key", "")
	// HMAC-SHA256("key", "lot")
	assert.Len(t, c.signToken("lot"), 64)
	assert.Equal(t, c.signToken("lot"), c.signToken("lot"))
	assert.NotEqual(t, c.signToken("lot"), c.signToken("lot2"))
}
