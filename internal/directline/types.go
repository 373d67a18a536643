// Package directline implements the client side of the Direct Line 3.0
// protocol: a REST surface for opening conversations and posting activities,
// and a WebSocket stream delivering the agent's activities.
package directline

// Conversation is the handle returned when a conversation is opened.
// It is immutable for the lifetime of a session.
type Conversation struct {
	ConversationID string `json:"conversationId"`
	Token          string `json:"token,omitempty"`
	StreamURL      string `json:"streamUrl"`
	ExpiresIn      int    `json:"expires_in,omitempty"`
}

// ActivitySet is the payload of one stream frame: an ordered batch of
// activities. Frames may be empty (keepalive echoes) or omit the field.
type ActivitySet struct {
	Activities []Activity `json:"activities,omitempty"`
	Watermark  string     `json:"watermark,omitempty"`
}

// Activity is one agent- or operator-authored event within a conversation.
type Activity struct {
	ID               string            `json:"id,omitempty"`
	Type             string            `json:"type"`
	From             ChannelAccount    `json:"from,omitempty"`
	Text             string            `json:"text,omitempty"`
	InputHint        string            `json:"inputHint,omitempty"`
	Attachments      []Attachment      `json:"attachments,omitempty"`
	SuggestedActions *SuggestedActions `json:"suggestedActions,omitempty"`
}

// Activity type and input-hint sentinels used by the classifier.
const (
	TypeMessage        = "message"
	HintIgnoringInput  = "ignoringInput"
	HintExpectingInput = "expectingInput"
)

// ChannelAccount identifies a conversation participant.
type ChannelAccount struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}

// Attachment carries rich card content. Only the body text items are
// rendered; everything else is best-effort ignored.
type Attachment struct {
	ContentType string            `json:"contentType,omitempty"`
	Content     AttachmentContent `json:"content,omitempty"`
}

// AttachmentContent is the card payload inside an attachment.
type AttachmentContent struct {
	Body []BodyItem `json:"body,omitempty"`
}

// BodyItem is one renderable element of a card body.
type BodyItem struct {
	Type string `json:"type,omitempty"`
	Text string `json:"text,omitempty"`
}

// SuggestedActions are agent-offered reply shortcuts.
type SuggestedActions struct {
	Actions []CardAction `json:"actions,omitempty"`
}

// CardAction is a single suggested reply. Display name falls back to title.
type CardAction struct {
	Type  string `json:"type,omitempty"`
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
	Value string `json:"value,omitempty"`
}

// Label returns the display name of the action, preferring Name over Title.
func (a CardAction) Label() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Title
}

// OutboundActivity is the envelope posted for an operator reply. The shape
// mirrors what the official webchat widget sends so the service treats the
// client as a regular browser session.
type OutboundActivity struct {
	Type           string         `json:"type"`
	ChannelID      string         `json:"channelId"`
	From           ChannelAccount `json:"from"`
	Text           string         `json:"text"`
	TextFormat     string         `json:"textFormat"`
	Locale         string         `json:"locale,omitempty"`
	LocalTimestamp string         `json:"localTimestamp,omitempty"`
	LocalTimezone  string         `json:"localTimezone,omitempty"`
	Attachments    []Attachment   `json:"attachments"`
	ChannelData    ChannelData    `json:"channelData"`
	Entities       []Entity       `json:"entities,omitempty"`
}

// ChannelData carries webchat-specific metadata on an outbound activity.
type ChannelData struct {
	AttachmentSizes  []int  `json:"attachmentSizes"`
	ClientActivityID string `json:"clientActivityID"`
}

// Entity advertises client capabilities to the agent service.
type Entity struct {
	Type              string `json:"type"`
	RequiresBotState  bool   `json:"requiresBotState,omitempty"`
	SupportsListening bool   `json:"supportsListening,omitempty"`
	SupportsTts       bool   `json:"supportsTts,omitempty"`
}

// ResourceResponse is the acknowledgement returned when posting an activity.
type ResourceResponse struct {
	ID string `json:"id,omitempty"`
}
