package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// CreatedBy and LastUpdatedBy hold the subject of the token that performed the write.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Touch stamps the audit fields for a write performed by userID at now.
// CreatedAt/CreatedBy are only set when still empty.
func (a *AuditFields) Touch(userID string, now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
		a.CreatedBy = userID
	}
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}
