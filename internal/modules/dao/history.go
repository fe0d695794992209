package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/reusedev/tutor-voice/internal/modules/ai"
	"github.com/reusedev/tutor-voice/internal/modules/model"
	"gorm.io/gorm"
)

const maxFailedRespBody = 2000

// HistoryRecorder persists every dispatcher round trip into invoke_history.
type HistoryRecorder struct {
	db *gorm.DB
}

func NewHistoryRecorder(db *gorm.DB) *HistoryRecorder {
	return &HistoryRecorder{db: db}
}

func (r *HistoryRecorder) Record(ctx context.Context, o *ai.Outcome) error {
	h := NewInvokeHistory(o, time.Now())
	return r.db.WithContext(ctx).Create(&h).Error
}

func (r *HistoryRecorder) Recent(ctx context.Context, limit int) ([]model.InvokeHistory, error) {
	var ret []model.InvokeHistory
	err := r.db.WithContext(ctx).Model(&model.InvokeHistory{}).Order("id desc").Limit(limit).Find(&ret).Error
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func NewInvokeHistory(o *ai.Outcome, now time.Time) model.InvokeHistory {
	h := model.InvokeHistory{
		Endpoint:   o.Path,
		Model:      o.Model,
		Status:     model.InvokeStatusSucceed.String(),
		StatusCode: o.StatusCode,
		DurationMs: o.Duration.Milliseconds(),
		CreatedAt:  now,
	}
	if o.Succeed() {
		return h
	}
	h.Status = model.InvokeStatusFailed.String()
	h.FailedKind = sql.NullString{String: ai.KindOf(o.Err).String(), Valid: true}
	if len(o.Body) > 0 {
		h.FailedRespBody = sql.NullString{String: truncate(string(o.Body), maxFailedRespBody), Valid: true}
	}
	return h
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
