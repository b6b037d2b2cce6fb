// Package speechlet_test tests the outgoing response contract.
package speechlet_test

import (
	"testing"

	"github.com/book-expert/wod-skill-service/internal/speechlet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSSML_WrapsFragments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
	}{
		{name: "bare fragment", fragment: "test"},
		{name: "open tag only", fragment: "<speak>test"},
		{name: "close tag only", fragment: "test</speak>"},
		{name: "already wrapped", fragment: "<speak>test</speak>"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			ssml, err := speechlet.NewSSML(testCase.fragment)
			require.NoError(t, err)
			assert.Equal(t, "<speak>test</speak>", ssml.Markup)
		})
	}
}

func TestNewSSML_AcceptsMarkupElements(t *testing.T) {
	t.Parallel()

	fragment := `<p>Strength Section:</p><s>Front Squat</s><break time="500ms"/>`

	ssml, err := speechlet.NewSSML(fragment)
	require.NoError(t, err)
	assert.Equal(t, "<speak>"+fragment+"</speak>", ssml.Markup)
}

func TestNewSSML_RejectsBareAmpersand(t *testing.T) {
	t.Parallel()

	_, err := speechlet.NewSSML("Clean & Jerk")
	require.ErrorIs(t, err, speechlet.ErrMalformedSSML)
}

func TestNewSSML_RejectsUnbalancedMarkup(t *testing.T) {
	t.Parallel()

	_, err := speechlet.NewSSML("<p>Strength")
	require.Error(t, err)
}

func TestNewSSML_RejectsSecondRoot(t *testing.T) {
	t.Parallel()

	_, err := speechlet.NewSSML("<speak>one</speak><speak>two")
	require.ErrorIs(t, err, speechlet.ErrNotSpeakRoot)
}

func TestPlainText_SSML(t *testing.T) {
	t.Parallel()

	ssml, err := speechlet.PlainText{Text: "Goodbye."}.SSML()
	require.NoError(t, err)
	assert.Equal(t, "<speak>Goodbye.</speak>", ssml.Markup)
}

func TestResponse_EnvelopeDefaults(t *testing.T) {
	t.Parallel()

	response := &speechlet.Response{
		OutputSpeech:     nil,
		Card:             nil,
		Reprompt:         nil,
		Attributes:       nil,
		ShouldEndSession: true,
	}

	envelope := response.Envelope()

	assert.Equal(t, "1.0", envelope["version"])
	assert.Equal(t, map[string]any{}, envelope["sessionAttributes"])

	body, ok := envelope["response"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, body["shouldEndSession"])
	assert.NotContains(t, body, "outputSpeech")
	assert.NotContains(t, body, "reprompt")
	assert.NotContains(t, body, "card")
}

func TestResponse_EnvelopeFull(t *testing.T) {
	t.Parallel()

	speech, err := speechlet.NewSSML("the workout")
	require.NoError(t, err)

	response := &speechlet.Response{
		OutputSpeech:     speech,
		Card:             speechlet.SimpleCard{Title: "Workout", Content: "Front Squat"},
		Reprompt:         speechlet.PlainText{Text: "Anything else?"},
		Attributes:       map[string]any{"intents": map[string]any{}},
		ShouldEndSession: false,
	}

	envelope := response.Envelope()

	body, ok := envelope["response"].(map[string]any)
	require.True(t, ok)

	assert.Equal(t, map[string]any{
		"type": "SSML",
		"ssml": "<speak>the workout</speak>",
	}, body["outputSpeech"])

	assert.Equal(t, map[string]any{
		"outputSpeech": map[string]any{
			"type": "PlainText",
			"text": "Anything else?",
		},
	}, body["reprompt"])

	assert.Equal(t, map[string]any{
		"type":    "Simple",
		"title":   "Workout",
		"content": "Front Squat",
	}, body["card"])

	assert.Equal(t, map[string]any{"intents": map[string]any{}}, envelope["sessionAttributes"])
}

func TestStandardCard_UpgradesImageURLs(t *testing.T) {
	t.Parallel()

	response := &speechlet.Response{
		OutputSpeech: nil,
		Card: speechlet.StandardCard{
			Title:         "Workout for today",
			Content:       "Front Squat",
			SmallImageURL: "",
			LargeImageURL: "http://example.s3.amazonaws.com/20170703.jpg",
		},
		Reprompt:         nil,
		Attributes:       nil,
		ShouldEndSession: true,
	}

	body, ok := response.Envelope()["response"].(map[string]any)
	require.True(t, ok)

	card, ok := body["card"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Standard", card["type"])
	assert.Equal(t, "Front Squat", card["text"])

	image, ok := card["image"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://example.s3.amazonaws.com/20170703.jpg", image["largeImageUrl"])
	assert.NotContains(t, image, "smallImageUrl")
}

func TestStandardCard_NoImageOmitsImageBlock(t *testing.T) {
	t.Parallel()

	response := &speechlet.Response{
		OutputSpeech:     nil,
		Card:             speechlet.StandardCard{Title: "t", Content: "c", SmallImageURL: "", LargeImageURL: ""},
		Reprompt:         nil,
		Attributes:       nil,
		ShouldEndSession: true,
	}

	body, ok := response.Envelope()["response"].(map[string]any)
	require.True(t, ok)

	card, ok := body["card"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, card, "image")
}
