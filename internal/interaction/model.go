package interaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/book-expert/logger"
	"github.com/book-expert/wod-skill-service/internal/alexa"
	"github.com/book-expert/wod-skill-service/internal/core"
	"github.com/book-expert/wod-skill-service/internal/speechlet"
	"github.com/book-expert/wod-skill-service/internal/wod"
)

// Intent and slot names from the skill's interaction model.
const (
	intentDefaultQuery = "DefaultQuery"
	intentHelp         = "AMAZON.HelpIntent"
	intentCancel       = "AMAZON.CancelIntent"
	intentStop         = "AMAZON.StopIntent"

	slotRelativeTo  = "RelativeTo"
	slotRequestType = "RequestType"
)

// Fixed prompts.
const (
	promptForSection  = "Did you want strength, conditioning, or both?"
	promptAnotherDay  = "You can ask for a different day, or say nevermind to quit."
	speechDateLayout  = "Monday January 2, 2006"
	goodbyeText       = "Goodbye."
	helpCardTitle     = "Help"
	notPostedCardText = "Not posted yet."
	notFoundCardText  = "Not found."
)

// ErrUnknownIntent indicates an intent name outside the interaction model —
// a skill-manifest mismatch, surfaced to the caller rather than silently
// defaulted.
var ErrUnknownIntent = errors.New("unknown intent")

// Model is the dialogue orchestrator: it turns one parsed platform event and
// the previous turn's attributes into a response. All cross-turn state lives
// in the session attributes the platform round-trips; the model itself is
// stateless.
type Model struct {
	source core.ContentSource
	clock  core.Clock
	log    *logger.Logger
}

// New creates the dialogue model.
func New(source core.ContentSource, clk core.Clock, log *logger.Logger) *Model {
	return &Model{
		source: source,
		clock:  clk,
		log:    log,
	}
}

// HandleEvent dispatches one turn.
func (m *Model) HandleEvent(ctx context.Context, envelope *alexa.Envelope) (*speechlet.Response, error) {
	switch envelope.Request.Type {
	case alexa.RequestTypeLaunch:
		return m.onLaunch(ctx, envelope)
	case alexa.RequestTypeIntent:
		return m.onIntent(ctx, envelope)
	case alexa.RequestTypeSessionEnded:
		return m.onSessionEnded(envelope), nil
	default:
		return nil, fmt.Errorf("%w: %q", alexa.ErrUnknownRequestType, envelope.Request.Type)
	}
}

// onLaunch answers a bare "open the skill" with today's full workout and
// keeps the session open for a follow-up day.
func (m *Model) onLaunch(ctx context.Context, envelope *alexa.Envelope) (*speechlet.Response, error) {
	m.log.Info("LaunchRequest request_id=%s", envelope.Request.RequestID)

	return m.answer(ctx, Today, FullWorkout, "workout", false)
}

func (m *Model) onIntent(ctx context.Context, envelope *alexa.Envelope) (*speechlet.Response, error) {
	intent := envelope.Request.Intent
	m.log.Info("IntentRequest intent=%s request_id=%s", intent.Name, envelope.Request.RequestID)

	switch intent.Name {
	case intentDefaultQuery:
		return m.queryIntent(ctx, intent, envelope.CarriedAttributes())
	case intentHelp:
		return m.helpIntent()
	case intentCancel, intentStop:
		return m.goodbye(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntent, intent.Name)
	}
}

func (m *Model) onSessionEnded(envelope *alexa.Envelope) *speechlet.Response {
	m.log.Info("SessionEndedRequest reason=%s request_id=%s",
		envelope.Request.Reason, envelope.Request.RequestID)

	// Platform-initiated end: no speech is allowed in the response.
	return &speechlet.Response{
		OutputSpeech:     nil,
		Card:             nil,
		Reprompt:         nil,
		Attributes:       nil,
		ShouldEndSession: true,
	}
}

// queryIntent handles the main "what is the workout" query. The relative day
// always resolves; the section may need the previous turn's snapshot, and
// failing both triggers a clarification reprompt instead of an error.
func (m *Model) queryIntent(
	ctx context.Context,
	intent *alexa.Intent,
	attributes alexa.SessionAttributes,
) (*speechlet.Response, error) {
	day := ResolveRelativeDay(intent.Slot(slotRelativeTo))

	fallback := attributes.StoredSlot(intentDefaultQuery, slotRequestType)

	section, word, err := ResolveSection(intent.Slot(slotRequestType), fallback)
	if errors.Is(err, ErrMissingSlot) {
		return m.promptForSection(day, intent)
	}

	return m.answer(ctx, day, section, word, true)
}

// promptForSection reprompts for the missing section slot and persists the
// current intent snapshot so the next turn can fall back to it.
func (m *Model) promptForSection(day RelativeDay, intent *alexa.Intent) (*speechlet.Response, error) {
	prompt, err := speechlet.NewSSML("<s>" + promptForSection + "</s>")
	if err != nil {
		return nil, err
	}

	slots := map[string]string{slotRelativeTo: day.Spoken}
	if requestType := intent.Slot(slotRequestType); requestType.HasValue {
		slots[slotRequestType] = requestType.Value
	}

	return &speechlet.Response{
		OutputSpeech:     prompt,
		Card:             nil,
		Reprompt:         prompt,
		Attributes:       alexa.Snapshot(intentDefaultQuery, slots),
		ShouldEndSession: false,
	}, nil
}

// answer fetches the workout for the requested day and builds the spoken
// response. endOnSuccess is false for launch turns, which stay open for a
// follow-up.
func (m *Model) answer(
	ctx context.Context,
	day RelativeDay,
	section RequestSection,
	word string,
	endOnSuccess bool,
) (*speechlet.Response, error) {
	target := m.clock.LocalDate().AddDate(0, 0, day.Offset)

	record, err := m.source.WODForDate(ctx, target)
	if err != nil {
		// The user always gets speech: a lookup failure degrades to
		// the not-found answer rather than a bare platform error.
		m.log.Error("content lookup failed for %s: %v", target.Format("2006-01-02"), err)

		record = nil
	}

	if record == nil {
		return m.noWorkout(day, word, target)
	}

	// Publish time is checked first: an unpublished record answers "not
	// posted yet" even when the requested section will turn out empty.
	if !record.Published(m.clock.NowUTC()) {
		return m.notPostedYet(word, record)
	}

	if !sectionAvailable(record, section) {
		return m.noWorkout(day, word, target)
	}

	return m.workoutFound(day, section, word, record, endOnSuccess)
}

// sectionAvailable reports whether the record has content for the requested
// section.
func sectionAvailable(record *wod.Record, section RequestSection) bool {
	switch section {
	case Strength:
		return record.HasStrength()
	case Conditioning:
		return record.HasConditioning()
	case FullWorkout:
		return !record.Empty()
	default:
		return !record.Empty()
	}
}

// noWorkout answers when no record, or no content for the requested section,
// exists. Only a yesterday query speaks in the past tense.
func (m *Model) noWorkout(day RelativeDay, word string, target time.Time) (*speechlet.Response, error) {
	tense := "is"
	if day == Yesterday {
		tense = "was"
	}

	message := fmt.Sprintf("There %s no %s for %s, %s.",
		tense, word, day.Spoken, target.Format(speechDateLayout))

	speech, err := speechlet.NewSSML("<s>" + message + "</s> <s>" + promptAnotherDay + "</s>")
	if err != nil {
		return nil, err
	}

	reprompt, err := speechlet.NewSSML("<s>" + promptAnotherDay + "</s>")
	if err != nil {
		return nil, err
	}

	return &speechlet.Response{
		OutputSpeech: speech,
		Card: speechlet.SimpleCard{
			Title:   cardTitle(word, target),
			Content: notFoundCardText,
		},
		Reprompt:         reprompt,
		Attributes:       nil,
		ShouldEndSession: false,
	}, nil
}

// notPostedYet answers when the record exists but its publish time is still
// in the future — distinct from "no workout" so the user knows to ask again
// later.
func (m *Model) notPostedYet(word string, record *wod.Record) (*speechlet.Response, error) {
	message := fmt.Sprintf("The %s for %s has not been posted yet.",
		word, record.Date.Format(speechDateLayout))

	speech, err := speechlet.NewSSML("<p>" + message + "</p>")
	if err != nil {
		return nil, err
	}

	return &speechlet.Response{
		OutputSpeech: speech,
		Card: speechlet.SimpleCard{
			Title:   cardTitle(word, record.Date),
			Content: notPostedCardText,
		},
		Reprompt:         nil,
		Attributes:       nil,
		ShouldEndSession: true,
	}, nil
}

// workoutFound builds the full answer: a header sentence naming what was
// asked for, then the section's SSML fragments, plus the matching card.
func (m *Model) workoutFound(
	day RelativeDay,
	section RequestSection,
	word string,
	record *wod.Record,
	endOnSuccess bool,
) (*speechlet.Response, error) {
	header := fmt.Sprintf("<p>The %s for %s, %s.</p>",
		word, day.Spoken, record.Date.Format(speechDateLayout))

	speech, err := speechlet.NewSSML(header + sectionSSML(record, section))
	if err != nil {
		return nil, err
	}

	var reprompt speechlet.Speech

	if !endOnSuccess {
		repromptSSML, repromptErr := speechlet.NewSSML("<s>" + promptAnotherDay + "</s>")
		if repromptErr != nil {
			return nil, repromptErr
		}

		reprompt = repromptSSML
	}

	return &speechlet.Response{
		OutputSpeech:     speech,
		Card:             workoutCard(section, word, record),
		Reprompt:         reprompt,
		Attributes:       nil,
		ShouldEndSession: endOnSuccess,
	}, nil
}

func sectionSSML(record *wod.Record, section RequestSection) string {
	switch section {
	case Strength:
		return record.StrengthSSML()
	case Conditioning:
		return record.ConditioningSSML()
	case FullWorkout:
		return record.FullSSML()
	default:
		return record.FullSSML()
	}
}

// workoutCard picks the card: the full workout with an image gets the
// picture card, everything else the simple one.
func workoutCard(section RequestSection, word string, record *wod.Record) speechlet.Card {
	title := cardTitle(word, record.Date)

	var text string

	switch section {
	case Strength:
		text = record.StrengthText()
	case Conditioning:
		text = record.ConditioningText()
	case FullWorkout:
		text = record.Text()
	default:
		text = record.Text()
	}

	if section == FullWorkout && record.ImageURL != "" {
		return speechlet.StandardCard{
			Title:         title,
			Content:       text,
			SmallImageURL: "",
			LargeImageURL: record.ImageURL,
		}
	}

	return speechlet.SimpleCard{Title: title, Content: text}
}

// cardTitle renders "Strength for Monday November 20, 2017".
func cardTitle(word string, day time.Time) string {
	return capitalize(word) + " for " + day.Format(speechDateLayout)
}

func capitalize(word string) string {
	if word == "" {
		return word
	}

	runes := []rune(word)

	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

func (m *Model) helpIntent() (*speechlet.Response, error) {
	speech, err := speechlet.NewSSML(
		"<s>Ok, Help.</s>" +
			"<p>First, you can ask me for the workout, strength, or conditioning.</p>" +
			"<p>You can also add words like yesterday or tomorrow. " +
			"<s>For example, ask me for yesterday's workout or tomorrow's conditioning.</s></p>" +
			"<p>Finally, you can say nevermind to quit.</p>" +
			"<s>What will it be?</s>")
	if err != nil {
		return nil, err
	}

	reprompt, err := speechlet.NewSSML("<s>What will it be?</s>")
	if err != nil {
		return nil, err
	}

	return &speechlet.Response{
		OutputSpeech: speech,
		Card: speechlet.SimpleCard{
			Title: helpCardTitle,
			Content: `Example phrases:

"workout", "strength", "conditioning", "yesterday's workout",
"tomorrow's conditioning", "nevermind".`,
		},
		Reprompt:         reprompt,
		Attributes:       nil,
		ShouldEndSession: false,
	}, nil
}

func (m *Model) goodbye() *speechlet.Response {
	return &speechlet.Response{
		OutputSpeech:     speechlet.PlainText{Text: goodbyeText},
		Card:             nil,
		Reprompt:         nil,
		Attributes:       nil,
		ShouldEndSession: true,
	}
}
