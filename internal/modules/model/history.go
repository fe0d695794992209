package model

import (
	"database/sql"
	"time"
)

type InvokeHistory struct {
	Id             int            `json:"id" gorm:"primaryKey"`
	Endpoint       string         `json:"endpoint" gorm:"column:endpoint;type:varchar(100)"`
	Model          string         `json:"model" gorm:"column:model;type:varchar(50)"`
	Status         string         `json:"status" gorm:"column:status;type:enum('succeed', 'failed')"`
	StatusCode     int            `json:"status_code" gorm:"column:status_code;type:int"`
	DurationMs     int64          `json:"duration_ms" gorm:"column:duration_ms;type:bigint"`
	FailedKind     sql.NullString `json:"failed_kind" gorm:"column:failed_kind;type:varchar(20)"`
	FailedRespBody sql.NullString `json:"failed_resp_body" gorm:"column:failed_resp_body;type:varchar(2000)"`
	CreatedAt      time.Time      `json:"created_at" gorm:"column:created_at;type:datetime;not null;default:CURRENT_TIMESTAMP"`
}

func (InvokeHistory) TableName() string {
	return "invoke_history"
}

type InvokeStatus string

const (
	InvokeStatusSucceed InvokeStatus = "succeed"
	InvokeStatusFailed  InvokeStatus = "failed"
)

func (s InvokeStatus) String() string {
	return string(s)
}
