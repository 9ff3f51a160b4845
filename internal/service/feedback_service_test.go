package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/pkg/database/databasetest"
	"kentkonut/pkg/email"
	"kentkonut/pkg/geetest"
	"kentkonut/pkg/logger"
)

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) Verify(ctx context.Context, params geetest.VerifyParams) error {
	return m.Called(params).Error(0)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendEmail(emailType email.EmailType, data email.EmailData) error {
	return m.Called(emailType, data).Error(0)
}

func feedbackRequest() types.FeedbackRequest {
	return types.FeedbackRequest{
		Category: "COMPLAINT",
		Name:     " Ayşe Yılmaz ",
		Email:    "Ayse@Example.com",
		Subject:  "Asansör arızası",
		Message:  "B blok asansörü çalışmıyor.",
		Captcha:  types.CaptchaParams{LotNumber: "lot", CaptchaOutput: "out", PassToken: "pass", GenTime: "1"},
	}
}

func TestFeedbackService_SubmitNotifiesStaff(t *testing.T) {
	ctx := context.Background()
	db := databasetest.NewDB(t)
	verifier := &mockVerifier{}
	verifier.On("Verify", geetest.VerifyParams{LotNumber: "lot", CaptchaOutput: "out", PassToken: "pass", GenTime: "1"}).Return(nil)
	sender := &mockSender{}
	sender.On("SendEmail", email.TypeFeedbackNotification, mock.MatchedBy(func(d email.EmailData) bool {
		return d.To == "halkla.iliskiler@kentkonut.com.tr" && d.FeedbackSubject == "Asansör arızası"
	})).Return(nil)
	tasks := &inlineTasks{}

	svc := NewFeedbackService(repository.NewFeedbackRepository(db), verifier, sender, "halkla.iliskiler@kentkonut.com.tr", tasks, logger.NewNop())

	f, err := svc.Submit(ctx, feedbackRequest(), "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, model.FeedbackNew, f.Status)
	assert.Equal(t, "Ayşe Yılmaz", f.Name)
	assert.Equal(t, "ayse@example.com", f.Email)
	assert.Equal(t, "10.0.0.1", f.IPAddress)

	verifier.AssertExpectations(t)
	sender.AssertExpectations(t)
	assert.Equal(t, []string{"feedback-notification"}, tasks.names)
}

func TestFeedbackService_CaptchaRejected(t *testing.T) {
	ctx := context.Background()
	db := databasetest.NewDB(t)
	verifier := &mockVerifier{}
	verifier.On("Verify", mock.Anything).Return(geetest.ErrCaptchaFailed)
	tasks := &inlineTasks{}

	svc := NewFeedbackService(repository.NewFeedbackRepository(db), verifier, nil, "", tasks, logger.NewNop())

	_, err := svc.Submit(ctx, feedbackRequest(), "10.0.0.1")
	assert.ErrorIs(t, err, constants.ErrBadRequest)
	assert.Equal(t, constants.MsgCaptchaFailed, constants.ClientMessage(err, ""))

	page, err := svc.List(ctx, types.FeedbackQuery{})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.Empty(t, tasks.names)
}

func TestFeedbackService_AdminWorkflow(t *testing.T) {
	ctx := context.Background()
	db := databasetest.NewDB(t)
	svc := NewFeedbackService(repository.NewFeedbackRepository(db), nil, nil, "", nil, logger.NewNop())
	responded := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return responded }

	f, err := svc.Submit(ctx, feedbackRequest(), "10.0.0.2")
	require.NoError(t, err)
	req := feedbackRequest()
	req.Category = "THANKS"
	_, err = svc.Submit(ctx, req, "10.0.0.3")
	require.NoError(t, err)

	page, err := svc.List(ctx, types.FeedbackQuery{Category: "COMPLAINT"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	updated, err := svc.UpdateStatus(ctx, f.ID, types.FeedbackStatusRequest{Status: "IN_PROGRESS"})
	require.NoError(t, err)
	assert.Nil(t, updated.RespondedAt)

	updated, err = svc.UpdateStatus(ctx, f.ID, types.FeedbackStatusRequest{Status: "RESOLVED", Response: strPtr("Arıza giderildi.")})
	require.NoError(t, err)
	require.NotNil(t, updated.RespondedAt)

	got, err := svc.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, model.FeedbackResolved, got.Status)
	assert.Equal(t, "Arıza giderildi.", got.Response)
	require.NotNil(t, got.RespondedAt)
	assert.True(t, got.RespondedAt.Equal(responded))

	page, err = svc.List(ctx, types.FeedbackQuery{Status: "NEW"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	require.NoError(t, svc.Delete(ctx, f.ID))
	_, err = svc.Get(ctx, f.ID)
	assert.ErrorIs(t, err, constants.ErrNotFound)
}

func TestSystemService_StatsAndHealth(t *testing.T) {
	ctx := context.Background()
	db := databasetest.NewDB(t)
	mr, rdb := newTestRedis(t)
	fb := NewFeedbackService(repository.NewFeedbackRepository(db), nil, nil, "", nil, logger.NewNop())
	svc := NewSystemService(repository.NewSystemRepository(db), rdb, logger.NewNop())

	_, err := fb.Submit(ctx, feedbackRequest(), "10.0.0.1")
	require.NoError(t, err)

	stats, err := svc.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.NewFeedback)
	assert.True(t, mr.Exists(CachePrefix+"stats:dashboard"))

	// served from cache until it expires
	_, err = fb.Submit(ctx, feedbackRequest(), "10.0.0.1")
	require.NoError(t, err)
	stats, err = svc.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.NewFeedback)

	mr.FastForward(2 * time.Minute)
	stats, err = svc.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.NewFeedback)

	h := svc.Health(ctx)
	assert.True(t, h.Healthy())
	assert.Equal(t, "ok", h.Redis)

	mr.SetError("ERR server unavailable")
	h = svc.Health(ctx)
	assert.False(t, h.Healthy())
	assert.Equal(t, "down", h.Redis)
	assert.Equal(t, "ok", h.Database)
}
