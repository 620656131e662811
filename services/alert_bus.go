package services

import (
	"time"

	"github.com/vanshikasingh06/health-mate/models"
	"github.com/vanshikasingh06/health-mate/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AlertBus persists an alert and pushes it to the owner's live sockets.
type AlertBus struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewAlertBus(db *gorm.DB, hub *RealtimeHub) *AlertBus {
	return &AlertBus{db: db, hub: hub}
}

func (b *AlertBus) Emit(userID uint, typ, message string) {
	a := models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	if err := b.db.Create(&a).Error; err != nil {
		utils.L().Warn("alert_persist_failed", zap.Error(err), zap.Uint("user_id", userID))
		return
	}

	if b.hub != nil {
		b.hub.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
}

func (b *AlertBus) List(userID uint) ([]models.Alert, error) {
	var alerts []models.Alert
	err := b.db.Where("user_id = ?", userID).Order("created_at desc").Find(&alerts).Error
	return alerts, err
}
