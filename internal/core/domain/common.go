package domain

import "time"

// AuditFields holds standard audit information for voucher documents.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
	UpdatedAt time.Time `json:"updatedAt"`
	// Version is bumped on every write and used as the optimistic-concurrency token.
	Version int64 `json:"version"`
}

// LifecycleStamps records who moved a voucher out of Draft, and when.
type LifecycleStamps struct {
	PostedAt     *time.Time `json:"postedAt,omitempty"`
	PostedBy     string     `json:"postedBy,omitempty"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`
	CancelledBy  string     `json:"cancelledBy,omitempty"`
	CancelReason string     `json:"cancelReason,omitempty"`
}
