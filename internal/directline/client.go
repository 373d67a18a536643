package directline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/soyeahso/botline/internal/config"
	"github.com/soyeahso/botline/internal/logging"
)

// Client talks to the Direct Line REST surface: opening conversations and
// posting operator activities. The stream is handled separately, see Stream.
type Client struct {
	cfg  config.ServiceConfig
	http *http.Client
	log  *logging.Logger
}

// NewClient creates a REST client from service configuration.
func NewClient(cfg config.ServiceConfig, log *logging.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
		log:  log.Sub("directline"),
	}
}

// CreateConversation opens a new conversation on behalf of the given
// participant and returns its handle. Failure here is fatal for the session.
func (c *Client) CreateConversation(ctx context.Context, participantID string) (Conversation, error) {
	body := map[string]any{
		"user": map[string]any{"id": participantID},
	}

	var conv Conversation
	if err := c.post(ctx, "/conversations", body, &conv); err != nil {
		return Conversation{}, fmt.Errorf("creating conversation: %w", err)
	}

	c.log.Info().
		Str("conversationId", conv.ConversationID).
		Str("participantId", participantID).
		Msg("conversation opened")
	return conv, nil
}

// PostReply sends an operator reply into the conversation. The result is not
// inspected beyond transport success; replies are not retried.
func (c *Client) PostReply(ctx context.Context, conversationID, participantID, clientActivityID, text string) error {
	act := OutboundActivity{
		Type:           TypeMessage,
		ChannelID:      "webchat",
		From:           ChannelAccount{ID: participantID, Role: "user"},
		Text:           text,
		TextFormat:     "plain",
		Locale:         c.cfg.Locale,
		LocalTimestamp: time.Now().Format(time.RFC3339),
		LocalTimezone:  c.cfg.Timezone,
		Attachments:    []Attachment{},
		ChannelData: ChannelData{
			AttachmentSizes:  []int{},
			ClientActivityID: clientActivityID,
		},
		Entities: []Entity{{
			Type:              "ClientCapabilities",
			RequiresBotState:  true,
			SupportsListening: true,
			SupportsTts:       true,
		}},
	}

	path := fmt.Sprintf("/conversations/%s/activities", conversationID)
	var ack ResourceResponse
	if err := c.post(ctx, path, act, &ack); err != nil {
		return fmt.Errorf("posting reply: %w", err)
	}

	c.log.Debug().
		Str("conversationId", conversationID).
		Str("activityId", ack.ID).
		Msg("reply posted")
	return nil
}

// post issues a JSON POST to the given path and decodes the response into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	c.setHeaders(req.Header)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: unexpected status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", path, err)
	}
	return nil
}

// setHeaders applies the browser-style headers the service expects from a
// webchat client.
func (c *Client) setHeaders(h http.Header) {
	h.Set("Accept", "application/json")
	h.Set("Authorization", "Bearer "+c.cfg.Token)
	h.Set("X-Requested-With", "XMLHttpRequest")
	if c.cfg.Origin != "" {
		h.Set("Origin", c.cfg.Origin)
		h.Set("Referer", c.cfg.Origin+"/")
	}
	if c.cfg.UserAgent != "" {
		h.Set("User-Agent", c.cfg.UserAgent)
	}
	if c.cfg.BotAgent != "" {
		h.Set("X-Ms-Bot-Agent", c.cfg.BotAgent)
	}
}
