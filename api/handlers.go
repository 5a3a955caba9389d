package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/alexose/planka-notifications/integrations"
	"github.com/alexose/planka-notifications/internal/relay"
)

type Handler struct {
	Slack *integrations.SlackClient
}

// PlankaWebhookHandler receives one Planka event and relays it to Slack when
// the card's description asks for a notification. Planka never retries a
// webhook, so delivery is strictly best-effort: one attempt, failures show
// up in the logs and the response code only.
func (h *Handler) PlankaWebhookHandler(c *gin.Context) {
	// Probes and webhook testers send HEAD or GET; Planka itself only POSTs.
	if c.Request.Method != http.MethodPost {
		c.Status(http.StatusOK)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		zap.L().Warn("Could not read webhook body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	// Extraction never fails: a malformed payload comes back as an
	// all-defaults record with no targets, which the dispatcher declines.
	kind, details := relay.ExtractDetails(body)
	if !relay.ShouldNotify(kind, details) {
		zap.L().Debug("Event ignored",
			zap.String("event", string(kind)),
			zap.Int("targets", len(details.NotificationTargets)))
		c.JSON(http.StatusOK, gin.H{"message": "ignored"})
		return
	}

	channel := relay.PickTarget(details.NotificationTargets)
	if channel == "" {
		channel = viper.GetString("slack.default_channel")
	}
	if channel == "" {
		zap.L().Warn("No channel target and no default channel configured; dropping event",
			zap.String("event", string(kind)),
			zap.String("card", details.CardTitle))
		c.JSON(http.StatusOK, gin.H{"message": "no channel"})
		return
	}

	deliveryID := uuid.NewString()
	msg := relay.FormatMessage(kind, details)

	zap.L().Info("Relaying event",
		zap.String("deliveryID", deliveryID),
		zap.String("event", string(kind)),
		zap.String("card", details.CardTitle),
		zap.String("channel", channel))

	if err := h.Slack.PostMessage(c.Request.Context(), channel, msg); err != nil {
		zap.L().Error("Delivery failed",
			zap.String("deliveryID", deliveryID),
			zap.String("channel", channel),
			zap.Error(err))
		if integrations.IsAccessError(err) {
			if noticeErr := h.Slack.PostAccessNotice(c.Request.Context(), channel); noticeErr != nil {
				zap.L().Error("Access notice failed",
					zap.String("deliveryID", deliveryID),
					zap.Error(noticeErr))
			}
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "delivery failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "delivered"})
}

func (h *Handler) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
