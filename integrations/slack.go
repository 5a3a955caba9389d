package integrations

import (
	"context"
	"fmt"
	"strings"
	"time"

	retry "github.com/avast/retry-go"
	"github.com/slack-go/slack"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/alexose/planka-notifications/internal/relay"
)

// Sender identity when the config leaves it out.
const (
	defaultUsername  = "Planka"
	defaultIconEmoji = ":clipboard:"
)

// Slack error strings that mean the bot cannot post where it was asked to,
// as opposed to a transport or request problem.
var accessErrors = []string{
	"channel_not_found",
	"not_in_channel",
	"is_archived",
}

type SlackClient struct {
	api *slack.Client
}

// NewSlackClient builds a client for Slack's Web API. Options are passed
// through to slack-go; tests use slack.OptionAPIURL to point the client at a
// local server.
func NewSlackClient(token string, opts ...slack.Option) *SlackClient {
	return &SlackClient{api: slack.New(token, opts...)}
}

// CheckAuth verifies the bot token against auth.test and logs the identity
// Slack reports. The call is retried a few times so a slow network at boot
// does not kill the process; message delivery itself is never retried.
func (sc *SlackClient) CheckAuth(ctx context.Context) error {
	return retry.Do(
		func() error {
			resp, err := sc.api.AuthTestContext(ctx)
			if err != nil {
				return fmt.Errorf("slack auth.test failed: %w", err)
			}
			zap.L().Info("Authenticated with Slack", zap.String("team", resp.Team), zap.String("user", resp.User))
			return nil
		},
		retry.Attempts(3),
		retry.Delay(2*time.Second),
		retry.DelayType(retry.FixedDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
}

// PostMessage delivers one formatted message to a channel as a single
// color-coded attachment. One attempt only; the caller decides what a
// failure means.
func (sc *SlackClient) PostMessage(ctx context.Context, channel string, msg relay.Message) error {
	username := viper.GetString("slack.username")
	if username == "" {
		username = defaultUsername
	}
	icon := viper.GetString("slack.icon_emoji")
	if icon == "" {
		icon = defaultIconEmoji
	}

	attachment := slack.Attachment{
		Fallback: msg.Text,
		Color:    msg.Color,
		Text:     msg.Text,
	}

	_, _, err := sc.api.PostMessageContext(ctx, NormalizeChannel(channel),
		slack.MsgOptionUsername(username),
		slack.MsgOptionIconEmoji(icon),
		slack.MsgOptionAttachments(attachment),
	)
	if err != nil {
		return fmt.Errorf("slack chat.postMessage to %s failed: %w", channel, err)
	}
	return nil
}

// PostAccessNotice tells the configured logging channel that a delivery
// could not reach its target, typically because the bot was never invited.
// No logging channel configured means no notice.
func (sc *SlackClient) PostAccessNotice(ctx context.Context, denied string) error {
	logChannel := viper.GetString("slack.log_channel")
	if logChannel == "" {
		return nil
	}
	notice := relay.Message{
		Color: "warning",
		Text:  fmt.Sprintf("Could not deliver a notification to %s: the bot needs access to that channel.", denied),
	}
	return sc.PostMessage(ctx, logChannel, notice)
}

// IsAccessError reports whether a delivery failure was Slack refusing the
// target channel rather than a transport problem.
func IsAccessError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	for _, code := range accessErrors {
		if strings.Contains(s, code) {
			return true
		}
	}
	return false
}

// NormalizeChannel maps relay target sigils onto what Slack's API accepts.
// "&" is the relay's spelling for a private channel; Slack addresses those
// by name like any other channel. "#" and "@" targets pass through.
func NormalizeChannel(target string) string {
	if strings.HasPrefix(target, "&") {
		return "#" + strings.TrimPrefix(target, "&")
	}
	return target
}
