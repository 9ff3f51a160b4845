package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/pkg/email"
	"kentkonut/pkg/geetest"
	"kentkonut/pkg/logger"
)

// FeedbackService citizen contact form
type FeedbackService struct {
	repo     repository.FeedbackRepository
	captcha  geetest.Verifier
	mailer   email.Sender
	notifyTo string
	tasks    TaskQueue
	logger   *logger.Logger
	now      func() time.Time
}

// NewFeedbackService creates the feedback service. A nil captcha accepts every
// submission and an empty notifyTo disables staff notifications.
func NewFeedbackService(repo repository.FeedbackRepository, captcha geetest.Verifier, mailer email.Sender, notifyTo string, tasks TaskQueue, logger *logger.Logger) *FeedbackService {
	if captcha == nil {
		captcha = geetest.NoopVerifier{}
	}
	return &FeedbackService{
		repo:     repo,
		captcha:  captcha,
		mailer:   mailer,
		notifyTo: notifyTo,
		tasks:    tasks,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit stores a public submission with status NEW
func (s *FeedbackService) Submit(ctx context.Context, req types.FeedbackRequest, ip string) (*model.Feedback, error) {
	err := s.captcha.Verify(ctx, geetest.VerifyParams{
		LotNumber:     req.Captcha.LotNumber,
		CaptchaOutput: req.Captcha.CaptchaOutput,
		PassToken:     req.Captcha.PassToken,
		GenTime:       req.Captcha.GenTime,
	})
	if err != nil {
		if !errors.Is(err, geetest.ErrCaptchaFailed) {
			s.logger.Warn("captcha verification error", "ip", ip, "error", err)
		}
		return nil, constants.NewError(constants.ErrBadRequest, constants.MsgCaptchaFailed)
	}

	f := &model.Feedback{
		Category:  req.Category,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		Status:    model.FeedbackNew,
		IPAddress: ip,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	f.CreatedAt = s.now()
	s.logger.Info("feedback received", "id", f.ID, "category", f.Category)

	s.notify(f)
	return f, nil
}

func (s *FeedbackService) notify(f *model.Feedback) {
	if s.mailer == nil || s.notifyTo == "" || s.tasks == nil {
		return
	}
	data := email.EmailData{
		To:              s.notifyTo,
		Subject:         "Yeni geri bildirim: " + f.Subject,
		FeedbackID:      f.ID,
		Category:        f.Category,
		Name:            f.Name,
		Email:           f.Email,
		Phone:           f.Phone,
		FeedbackSubject: f.Subject,
		Message:         f.Message,
		CreatedAt:       f.CreatedAt,
	}
	queued := s.tasks.AddTask("feedback-notification", func(context.Context) error {
		return s.mailer.SendEmail(email.TypeFeedbackNotification, data)
	})
	if !queued {
		s.logger.Warn("feedback notification dropped, queue full", "id", f.ID)
	}
}

// List admin listing, newest first
func (s *FeedbackService) List(ctx context.Context, q types.FeedbackQuery) (*model.Paginated[model.Feedback], error) {
	q.Pagination = normalize(q.Pagination)
	items, total, err := s.repo.List(ctx, model.FeedbackFilter{
		Status:   model.FeedbackStatus(q.Status),
		Category: q.Category,
		Offset:   q.Offset(),
		Limit:    q.PageSize,
	})
	if err != nil {
		return nil, err
	}
	return model.NewPaginated(items, total, q.Page, q.PageSize), nil
}

func (s *FeedbackService) Get(ctx context.Context, id int64) (*model.Feedback, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus moves the submission along; a response stamps responded_at
func (s *FeedbackService) UpdateStatus(ctx context.Context, id int64, req types.FeedbackStatusRequest) (*model.Feedback, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f.Status = model.FeedbackStatus(req.Status)
	if req.Response != nil {
		f.Response = strings.TrimSpace(*req.Response)
		if f.Response != "" {
			now := s.now().UTC()
			f.RespondedAt = &now
		}
	}
	if err := s.repo.UpdateStatus(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FeedbackService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
