package audit

import (
	"encoding/json"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/fixera/marketplace-api/internal/models"
)

// GormSink writes audit events to the audit_logs table.
type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Write(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		Principal: ev.Principal,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
	}

	return s.db.Create(&row).Error
}

// LogSink emits audit events to the application log. Used when the
// server runs on the in-memory store.
type LogSink struct {
	logger *zerolog.Logger
}

func NewLogSink(logger *zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Write(ev Event) error {
	s.logger.Info().
		Str("principal", ev.Principal).
		Str("action", ev.Action).
		Str("entity", ev.Entity).
		Str("entity_id", ev.EntityID).
		Msg("audit")
	return nil
}
