// Package classify turns inbound activities into dispatch decisions:
// render-only text, a choice prompt, or a free-text prompt.
package classify

import "github.com/soyeahso/botline/internal/directline"

// Kind discriminates decision variants.
type Kind int

const (
	// KindRender is display-only text, no reply expected yet.
	KindRender Kind = iota
	// KindChoice asks the operator to pick from a bounded option list.
	KindChoice
	// KindText asks the operator for free-form input.
	KindText
)

// Decision is one dispatch instruction derived from an activity.
type Decision struct {
	Kind    Kind
	Text    string   // render text, or the message shown above a prompt
	Options []string // choice prompts only, ordered and duplicate-free
	Hint    string   // text prompts only, default/placeholder hint
}

// Classifier derives decisions from activities. Pure; safe for reuse.
type Classifier struct {
	// BotID is the designated agent identity. Messages from any other
	// sender are echoes of our own activity and yield nothing.
	BotID string
	// BackLabel and QuitLabel are appended to every choice list.
	BackLabel string
	QuitLabel string
	// TextHint is the default hint shown on free-text prompts.
	TextHint string
}

// Classify maps one activity to zero or more decisions, in dispatch order.
// Activities that are not agent messages, and messages carrying nothing
// renderable or promptable, yield nil.
func (c Classifier) Classify(act directline.Activity) []Decision {
	if act.Type != directline.TypeMessage {
		return nil
	}
	if act.From.ID != c.BotID {
		return nil
	}

	var decisions []Decision

	// Card attachments render one line per non-empty body item, first
	// attachment only; later attachments are duplicates in practice.
	if len(act.Attachments) > 0 {
		for _, item := range act.Attachments[0].Content.Body {
			if item.Text == "" {
				continue
			}
			decisions = append(decisions, Decision{Kind: KindRender, Text: item.Text})
		}
	}

	switch {
	case act.SuggestedActions != nil && len(act.SuggestedActions.Actions) > 0:
		if act.Text != "" {
			decisions = append(decisions, Decision{Kind: KindRender, Text: act.Text})
		}
		decisions = append(decisions, Decision{
			Kind:    KindChoice,
			Options: c.options(act.SuggestedActions.Actions),
		})

	case act.InputHint != "":
		if act.Text != "" {
			decisions = append(decisions, Decision{Kind: KindRender, Text: act.Text})
		}
		// ignoringInput means the agent is still streaming; no prompt yet.
		if act.InputHint != directline.HintIgnoringInput {
			decisions = append(decisions, Decision{Kind: KindText, Hint: c.TextHint})
		}
	}

	return decisions
}

// options builds the ordered, duplicate-free option list for a choice
// prompt: each action's display name followed by the back and quit
// sentinels.
func (c Classifier) options(actions []directline.CardAction) []string {
	seen := make(map[string]bool, len(actions)+2)
	opts := make([]string, 0, len(actions)+2)
	add := func(label string) {
		if label == "" || seen[label] {
			return
		}
		seen[label] = true
		opts = append(opts, label)
	}

	for _, a := range actions {
		add(a.Label())
	}
	add(c.BackLabel)
	add(c.QuitLabel)
	return opts
}
