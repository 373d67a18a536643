// Package session runs the lifetime of one conversation: connect, stream,
// classify, render, prompt, reply.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/soyeahso/botline/internal/classify"
	"github.com/soyeahso/botline/internal/directline"
	"github.com/soyeahso/botline/internal/logging"
	"github.com/soyeahso/botline/internal/prompt"
)

// State is the controller's lifecycle phase.
type State int

const (
	StateConnecting State = iota
	StateStreaming
	StateAwaitingChoice
	StateAwaitingText
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateStreaming:
		return "streaming"
	case StateAwaitingChoice:
		return "awaiting-choice"
	case StateAwaitingText:
		return "awaiting-text"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// quitRe matches the operator's quit/exit token, case-insensitively.
var quitRe = regexp.MustCompile(`(?i)^(quit|exit)$`)

// Transport is the outbound request/response surface of the agent service.
type Transport interface {
	CreateConversation(ctx context.Context, participantID string) (directline.Conversation, error)
	PostReply(ctx context.Context, conversationID, participantID, clientActivityID, text string) error
}

// FrameSource is a live inbound stream of raw text frames.
type FrameSource interface {
	ReadFrame() ([]byte, error)
	Keepalive() error
	Close() error
}

// StreamOpener dials the stream endpoint of a freshly created conversation.
type StreamOpener func(streamURL string) (FrameSource, error)

// Config tunes a Controller.
type Config struct {
	Classifier    classify.Classifier
	Styler        func(string) string // markup renderer for display text
	Keepalive     time.Duration       // empty-frame interval; 0 disables
	ChoiceMessage string              // shown above choice prompts
	TextMessage   string              // shown above free-text prompts
}

// Controller owns the conversation handle and drives the session state
// machine. At most one prompt is ever outstanding; further prompt decisions
// arriving in that window are dropped.
type Controller struct {
	cfg     Config
	api     Transport
	open    StreamOpener
	prompts prompt.Driver
	out     io.Writer
	log     *logging.Logger

	mu            sync.Mutex
	state         State
	promptPending bool

	participantID string
	conv          directline.Conversation

	done     chan struct{}
	doneOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a Controller. The display sink receives one styled line per
// render decision.
func New(cfg Config, api Transport, open StreamOpener, prompts prompt.Driver, out io.Writer, log *logging.Logger) *Controller {
	if cfg.ChoiceMessage == "" {
		cfg.ChoiceMessage = "Choose one : "
	}
	if cfg.TextMessage == "" {
		cfg.TextMessage = "Answer : "
	}
	if cfg.Styler == nil {
		cfg.Styler = func(s string) string { return s }
	}
	return &Controller{
		cfg:     cfg,
		api:     api,
		open:    open,
		prompts: prompts,
		out:     out,
		log:     log.Sub("session"),
		state:   StateConnecting,
		done:    make(chan struct{}),
	}
}

// State reports the current lifecycle phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

// Run opens a conversation and processes the stream until the operator
// quits, the stream dies, or ctx is canceled. A quit returns nil; transport
// failures during setup are fatal and returned.
func (c *Controller) Run(ctx context.Context) error {
	c.participantID = NewID()
	runID := uuid.NewString()

	c.log.Info().
		Str("runId", runID).
		Str("participantId", c.participantID).
		Msg("starting session")

	conv, err := c.api.CreateConversation(ctx, c.participantID)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	c.conv = conv

	stream, err := c.open(conv.StreamURL)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	defer stream.Close()

	c.setState(StateStreaming)

	if c.cfg.Keepalive > 0 {
		c.wg.Add(1)
		go c.keepaliveLoop(ctx, stream)
	}

	type frameResult struct {
		raw []byte
		err error
	}
	frames := make(chan frameResult)
	go func() {
		for {
			raw, err := stream.ReadFrame()
			select {
			case frames <- frameResult{raw, err}:
			case <-c.done:
				return
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	defer c.wg.Wait()
	defer c.terminate()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.done:
			c.log.Info().Str("runId", runID).Msg("session terminated by operator")
			return nil
		case fr := <-frames:
			if fr.err != nil {
				select {
				case <-c.done:
					return nil
				default:
				}
				return fmt.Errorf("session: stream: %w", fr.err)
			}
			c.handleFrame(ctx, fr.raw)
		}
	}
}

// keepaliveLoop transmits empty frames on a fixed period, independent of
// prompts and frame handling.
func (c *Controller) keepaliveLoop(ctx context.Context, stream FrameSource) {
	defer c.wg.Done()
	ticker := time.NewTicker(c.cfg.Keepalive)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := stream.Keepalive(); err != nil {
				c.log.Debug().Err(err).Msg("keepalive write failed")
			}
		case <-c.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// handleFrame decodes one raw frame into activities and dispatches their
// decisions. Malformed or empty frames yield nothing; the conversation
// stays alive.
func (c *Controller) handleFrame(ctx context.Context, raw []byte) {
	if len(raw) == 0 {
		return
	}

	var set directline.ActivitySet
	if err := json.Unmarshal(raw, &set); err != nil {
		c.log.Debug().Err(err).Int("bytes", len(raw)).Msg("ignoring malformed frame")
		return
	}

	for _, act := range set.Activities {
		for _, d := range c.cfg.Classifier.Classify(act) {
			c.dispatch(ctx, d)
		}
	}
}

// dispatch applies one decision: render to the display sink, or open a
// prompt if none is outstanding.
func (c *Controller) dispatch(ctx context.Context, d classify.Decision) {
	switch d.Kind {
	case classify.KindRender:
		fmt.Fprintln(c.out, c.cfg.Styler(d.Text))

	case classify.KindChoice, classify.KindText:
		if !c.beginPrompt(d.Kind) {
			c.log.Debug().Msg("prompt already outstanding, dropping prompt decision")
			return
		}
		// Prompting must not block the read loop: render-only decisions from
		// later frames keep flowing while the operator thinks. The goroutine
		// is deliberately not waited on; cancellation abandons it.
		go c.runPrompt(ctx, d)
	}
}

// beginPrompt claims the single outstanding prompt slot. Returns false when
// a prompt is already open or the session is over.
func (c *Controller) beginPrompt(kind classify.Kind) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.promptPending || c.state == StateTerminated {
		return false
	}
	c.promptPending = true
	if kind == classify.KindChoice {
		c.state = StateAwaitingChoice
	} else {
		c.state = StateAwaitingText
	}
	return true
}

// endPrompt releases the prompt slot and resumes streaming.
func (c *Controller) endPrompt() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.promptPending = false
	if c.state != StateTerminated {
		c.state = StateStreaming
	}
}

// runPrompt collects the operator's answer and posts it back. A quit token
// terminates the session without sending anything.
func (c *Controller) runPrompt(ctx context.Context, d classify.Decision) {
	var answer string
	var err error
	switch d.Kind {
	case classify.KindChoice:
		answer, err = c.prompts.Choice(c.cfg.ChoiceMessage, d.Options)
	case classify.KindText:
		answer, err = c.prompts.Text(c.cfg.TextMessage, d.Hint)
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("prompt failed")
		c.endPrompt()
		return
	}

	if quitRe.MatchString(strings.TrimSpace(answer)) {
		c.terminate()
		return
	}

	if err := c.api.PostReply(ctx, c.conv.ConversationID, c.participantID, NewClientActivityID(), answer); err != nil {
		// Replies are fire-and-forget: log and move on.
		c.log.Warn().Err(err).Msg("posting reply failed")
	}
	c.endPrompt()
}

// terminate moves the controller to its final state and wakes Run.
func (c *Controller) terminate() {
	c.mu.Lock()
	c.state = StateTerminated
	c.promptPending = false
	c.mu.Unlock()
	c.doneOnce.Do(func() { close(c.done) })
}
