package classify

import (
	"testing"

	"github.com/soyeahso/botline/internal/directline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClassifier() Classifier {
	return Classifier{
		BotID:     "ut-root-main-bot",
		BackLabel: "Kembali",
		QuitLabel: "Quit",
		TextHint:  "type 'quit' to exit",
	}
}

func botMessage() directline.Activity {
	return directline.Activity{
		Type: directline.TypeMessage,
		From: directline.ChannelAccount{ID: "ut-root-main-bot"},
	}
}

func TestIgnoresNonMessageTypes(t *testing.T) {
	c := testClassifier()

	act := botMessage()
	act.Type = "typing"
	act.Text = "should not matter"

	assert.Nil(t, c.Classify(act))
}

func TestIgnoresOtherSenders(t *testing.T) {
	c := testClassifier()

	act := botMessage()
	act.From.ID = "r_someoperator"
	act.Text = "echo of our own reply"

	assert.Nil(t, c.Classify(act))
}

func TestDropsMessageWithNothingToDo(t *testing.T) {
	c := testClassifier()

	// A bare acknowledgement: message type, right sender, no content.
	assert.Empty(t, c.Classify(botMessage()))
}

func TestAttachmentBodyItemsRenderInOrder(t *testing.T) {
	c := testClassifier()

	act := botMessage()
	act.Attachments = []directline.Attachment{
		{Content: directline.AttachmentContent{Body: []directline.BodyItem{
			{Text: "first"},
			{Text: ""},
			{Text: "second"},
		}}},
		{Content: directline.AttachmentContent{Body: []directline.BodyItem{
			{Text: "ignored, not the first attachment"},
		}}},
	}

	got := c.Classify(act)
	require.Len(t, got, 2)
	assert.Equal(t, KindRender, got[0].Kind)
	assert.Equal(t, "first", got[0].Text)
	assert.Equal(t, "second", got[1].Text)
}

func TestSuggestedActionsYieldChoicePrompt(t *testing.T) {
	c := testClassifier()

	act := botMessage()
	act.SuggestedActions = &directline.SuggestedActions{
		Actions: []directline.CardAction{
			{Title: "A"},
			{Name: "B"},
		},
	}

	got := c.Classify(act)
	require.Len(t, got, 1)
	assert.Equal(t, KindChoice, got[0].Kind)
	assert.Equal(t, []string{"A", "B", "Kembali", "Quit"}, got[0].Options)
}

func TestChoiceOptionsDeduplicated(t *testing.T) {
	c := testClassifier()

	act := botMessage()
	act.SuggestedActions = &directline.SuggestedActions{
		Actions: []directline.CardAction{
			{Title: "A"},
			{Name: "A"},
			{Name: "B", Title: "shadowed by name"},
			{Title: "Quit"}, // collides with the sentinel
		},
	}

	got := c.Classify(act)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"A", "B", "Quit", "Kembali"}, got[0].Options)
}

func TestChoicePromptRendersBodyTextFirst(t *testing.T) {
	c := testClassifier()

	act := botMessage()
	act.Text = "pick a topic"
	act.SuggestedActions = &directline.SuggestedActions{
		Actions: []directline.CardAction{{Title: "A"}},
	}

	got := c.Classify(act)
	require.Len(t, got, 2)
	assert.Equal(t, KindRender, got[0].Kind)
	assert.Equal(t, "pick a topic", got[0].Text)
	assert.Equal(t, KindChoice, got[1].Kind)
}

func TestIgnoringInputRendersWithoutPrompt(t *testing.T) {
	c := testClassifier()

	act := botMessage()
	act.Text = "still thinking..."
	act.InputHint = directline.HintIgnoringInput

	got := c.Classify(act)
	require.Len(t, got, 1)
	assert.Equal(t, KindRender, got[0].Kind)
	assert.Equal(t, "still thinking...", got[0].Text)
}

func TestExpectingInputYieldsTextPrompt(t *testing.T) {
	c := testClassifier()

	act := botMessage()
	act.Text = "what is your student id?"
	act.InputHint = directline.HintExpectingInput

	got := c.Classify(act)
	require.Len(t, got, 2)
	assert.Equal(t, KindRender, got[0].Kind)
	assert.Equal(t, KindText, got[1].Kind)
	assert.Empty(t, got[1].Options)
	assert.Equal(t, "type 'quit' to exit", got[1].Hint)
}

func TestTextPromptWithoutBodyText(t *testing.T) {
	c := testClassifier()

	act := botMessage()
	act.InputHint = directline.HintExpectingInput

	got := c.Classify(act)
	require.Len(t, got, 1)
	assert.Equal(t, KindText, got[0].Kind)
}
