package email

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_FeedbackNotification(t *testing.T) {
	html, err := Render(TypeFeedbackNotification, EmailData{
		ProductName:     "Kent Konut",
		FeedbackID:      7,
		Category:        "COMPLAINT",
		Name:            "Ayşe Yılmaz",
		Email:           "ayse@example.com",
		FeedbackSubject: "Asansör arızası",
		Message:         "<script>alert(1)</script>",
		CreatedAt:       time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Ayşe Yılmaz")
	assert.Contains(t, html, "09.03.2024 14:30")
	assert.Contains(t, html, "#7")
	assert.NotContains(t, html, "<script>", "message must be escaped")
	assert.NotContains(t, html, "Telefon", "empty phone row is omitted")
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("Kent Konut <noreply@kentkonut.com.tr>", "staff@kentkonut.com.tr", "Yeni geri bildirim", "<p>body</p>"))

	assert.True(t, strings.HasPrefix(msg, "From: Kent Konut <noreply@kentkonut.com.tr>\r\n"))
	assert.Contains(t, msg, "To: staff@kentkonut.com.tr\r\n")
	assert.Contains(t, msg, "Content-Type: text/html; charset=UTF-8\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\n<p>body</p>"))
}

func TestService_Enabled(t *testing.T) {
	assert.False(t, (&Service{}).Enabled())
}
