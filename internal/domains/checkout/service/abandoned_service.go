package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"storefront-backend/internal/domains/checkout/model"
	"storefront-backend/internal/domains/checkout/repository"
	"storefront-backend/internal/infrastructure/email"
)

type RecoveryConfig struct {
	MinAge      time.Duration // giỏ phải cũ hơn MinAge
	MaxAge      time.Duration // và mới hơn MaxAge
	BatchSize   int
	Concurrency int
	FrontendURL string
	StoreName   string
}

type abandonedService struct {
	repo   repository.CheckoutRepository
	sender email.Sender
	cfg    RecoveryConfig
	now    func() time.Time
}

func NewAbandonedService(repo repository.CheckoutRepository, sender email.Sender, cfg RecoveryConfig) ServiceInterface {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 20
	}
	return &abandonedService{
		repo:   repo,
		sender: sender,
		cfg:    cfg,
		now:    time.Now,
	}
}

// ================================================
// CAPTURE
// ================================================

func (s *abandonedService) Capture(ctx context.Context, req model.CaptureRequest) error {
	snap := req.ToSnapshot()
	if snap.Email == "" && snap.Phone == "" {
		return model.ErrContactRequired
	}

	if err := s.repo.Upsert(ctx, snap, s.now().UTC()); err != nil {
		return err
	}

	log.Debug().
		Bool("has_email", snap.Email != "").
		Int("items", len(snap.CartItems)).
		Msg("abandoned checkout captured")
	return nil
}

// ================================================
// RECOVER
// ================================================

func (s *abandonedService) Recover(ctx context.Context, id string) (*model.AbandonedCheckout, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrCheckoutNotFound
	}

	doc, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if doc.ClickedAt == nil {
		now := s.now().UTC()
		first, err := s.repo.MarkClicked(ctx, oid, now)
		if err != nil {
			return nil, err
		}
		if first {
			doc.ClickedAt = &now
			log.Info().Str("checkout_id", id).Msg("🔗 Recovery link opened")
		}
	}

	return doc, nil
}

// ================================================
// SWEEP
// ================================================

// RunRecoverySweep
//  1. chọn tối đa BatchSize giỏ có updated_at trong [now-MaxAge, now-MinAge], cũ nhất trước
//  2. gửi email song song (tối đa Concurrency goroutine)
//  3. gửi xong mới stamp recovery_sent_at, lỗi từng item không ảnh hưởng item khác
//
// Chỉ trả error khi query DB thất bại
func (s *abandonedService) RunRecoverySweep(ctx context.Context) (*model.SweepReport, error) {
	now := s.now().UTC()

	candidates, err := s.repo.FindRecoveryCandidates(ctx, now.Add(-s.cfg.MaxAge), now.Add(-s.cfg.MinAge), s.cfg.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("find recovery candidates: %w", err)
	}

	results := make([]model.SweepResult, len(candidates))

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Concurrency)

	for i := range candidates {
		i := i
		doc := &candidates[i]
		g.Go(func() error {
			results[i] = s.sendRecovery(ctx, doc)
			return nil
		})
	}
	_ = g.Wait()

	report := &model.SweepReport{
		Success:   true,
		Processed: len(results),
		Results:   results,
	}
	for _, r := range results {
		if r.Status == model.SweepStatusSent {
			report.Sent++
		}
	}

	log.Info().
		Int("processed", report.Processed).
		Int("sent", report.Sent).
		Msg("📧 Abandoned checkout recovery sweep finished")

	return report, nil
}

func (s *abandonedService) sendRecovery(ctx context.Context, doc *model.AbandonedCheckout) model.SweepResult {
	result := model.SweepResult{
		ID:    doc.ID.Hex(),
		Email: doc.Email,
	}

	req, err := buildRecoveryEmail(doc, s.cfg.FrontendURL, s.cfg.StoreName)
	if err == nil {
		err = s.sender.Send(ctx, req)
	}
	if err != nil {
		log.Warn().Err(err).Str("checkout_id", result.ID).Msg("recovery email failed")
		result.Status = model.SweepStatusFailed
		result.Error = err.Error()
		return result
	}

	result.Status = model.SweepStatusSent

	// Email đã gửi: stamp lỗi vẫn tính là sent, kèm error
	if err := s.repo.MarkRecoverySent(ctx, doc.ID, s.now().UTC()); err != nil {
		log.Error().Err(err).Str("checkout_id", result.ID).Msg("recovery email sent but not recorded")
		result.Error = fmt.Sprintf("email sent but not recorded: %v", err)
	}

	return result
}

// ================================================
// MARK RECOVERED / ADMIN
// ================================================

func (s *abandonedService) MarkRecovered(ctx context.Context, contact string) error {
	if model.NormalizeEmail(contact) == "" {
		return model.ErrContactRequired
	}

	err := s.repo.MarkRecovered(ctx, contact, s.now().UTC())
	if errors.Is(err, model.ErrCheckoutNotFound) {
		// Khách đặt hàng mà chưa từng bị capture → không có gì để đánh dấu
		return nil
	}
	return err
}

func (s *abandonedService) List(ctx context.Context, status string, page, limit int) ([]model.AbandonedCheckout, int64, error) {
	return s.repo.List(ctx, status, (page-1)*limit, limit)
}
