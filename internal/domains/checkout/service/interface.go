package service

import (
	"context"

	"storefront-backend/internal/domains/checkout/model"
)

type ServiceInterface interface {
	Capture(ctx context.Context, req model.CaptureRequest) error
	// Recover trả snapshot và stamp clicked_at ở lần mở đầu tiên
	Recover(ctx context.Context, id string) (*model.AbandonedCheckout, error)
	// RunRecoverySweep gửi email cho một batch giỏ bị bỏ quên
	RunRecoverySweep(ctx context.Context) (*model.SweepReport, error)
	// MarkRecovered gọi khi contact hoàn tất một đơn hàng thật
	MarkRecovered(ctx context.Context, contact string) error
	List(ctx context.Context, status string, page, limit int) ([]model.AbandonedCheckout, int64, error)
}
