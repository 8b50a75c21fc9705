package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/david8219501/leader-app-server-08-09-25/internal/config"
	"github.com/david8219501/leader-app-server-08-09-25/internal/events"
)

// NotificationService handles emitting notifications for domain events.
// Delivery is best-effort logging plus an optional webhook stub; it never
// affects the request that produced the event.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventManagerRegistered, n.handleEvent)
	n.dispatcher.Subscribe(events.EventEmployeeAdded, n.handleEvent)
	n.dispatcher.Subscribe(events.EventEmployeeRemoved, n.handleEvent)
	n.dispatcher.Subscribe(events.EventShiftCreated, n.handleEvent)
	n.dispatcher.Subscribe(events.EventShiftSlotCleared, n.handleEvent)
	n.dispatcher.Subscribe(events.EventWeekReset, n.handleEvent)
}

func (n *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.Int64("manager_id", event.ManagerID),
		zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.Int64("manager_id", event.ManagerID),
		zap.String("event_type", string(event.Type)))
}
