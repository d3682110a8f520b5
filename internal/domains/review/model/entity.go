package model

import (
	"time"

	"github.com/google/uuid"
)

// Review - publish ngay khi submit, không qua duyệt
type Review struct {
	ID        uuid.UUID
	ProductID int64
	UserID    *uuid.UUID // nil khi khách vãng lai
	Name      string
	Rating    int
	Comment   string
	CreatedAt time.Time
}
