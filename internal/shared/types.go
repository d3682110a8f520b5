package shared

// Queue names (asynq)
const (
	QueueCheckout = "checkout"
	QueueDefault  = "default"
)

// Task types
const (
	TypeAbandonedRecoverySweep = "checkout:abandoned_recovery_sweep"
)

// RecoverySweepPayload - payload rỗng, sweep tự chọn batch theo config
type RecoverySweepPayload struct {
	TriggeredBy string `json:"triggeredBy"`
}

// Context keys set by auth middleware
const (
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
	CtxUserRole  = "role"
	CtxRequestID = "request_id"
)
