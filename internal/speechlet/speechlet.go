// Package speechlet holds the outgoing half of the voice-platform contract:
// speech payloads, visual cards, and the response envelope the platform
// serializes back to the device. SSML speech is validated here so malformed
// markup fails loudly at the response boundary instead of reaching the
// speech engine.
package speechlet

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// EnvelopeVersion is the platform response schema version.
const EnvelopeVersion = "1.0"

const (
	speakOpenTag  = "<speak>"
	speakCloseTag = "</speak>"
)

// Static errors.
var (
	// ErrMalformedSSML indicates the markup is not well-formed.
	ErrMalformedSSML = errors.New("malformed SSML")
	// ErrNotSpeakRoot indicates the markup root is not a single <speak> element.
	ErrNotSpeakRoot = errors.New("SSML root must be a single speak element")
)

// Speech is an output speech payload (SSML or plain text).
type Speech interface {
	payload() map[string]any
}

// SSML is validated speech markup, always wrapped in exactly one <speak>
// root.
type SSML struct {
	Markup string
}

// NewSSML wraps the fragment in <speak> tags when they are missing and
// validates the result. Invalid markup is a programmer error in the
// composer, so it is surfaced instead of silently emitted.
func NewSSML(fragment string) (SSML, error) {
	markup := fragment
	if !strings.HasPrefix(markup, speakOpenTag) {
		markup = speakOpenTag + markup
	}

	if !strings.HasSuffix(markup, speakCloseTag) {
		markup += speakCloseTag
	}

	err := validateSpeak(markup)
	if err != nil {
		return SSML{Markup: ""}, err
	}

	return SSML{Markup: markup}, nil
}

func (s SSML) payload() map[string]any {
	return map[string]any{
		"type": "SSML",
		"ssml": s.Markup,
	}
}

// validateSpeak checks the markup is well-formed and rooted in exactly one
// <speak> element.
func validateSpeak(markup string) error {
	decoder := xml.NewDecoder(strings.NewReader(markup))

	depth := 0
	roots := 0

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedSSML, err)
		}

		switch element := token.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++

				if element.Name.Local != "speak" {
					return ErrNotSpeakRoot
				}
			}

			depth++
		case xml.EndElement:
			depth--
		default:
		}
	}

	if roots != 1 || depth != 0 {
		return ErrNotSpeakRoot
	}

	return nil
}

// PlainText is unstructured speech.
type PlainText struct {
	Text string
}

func (p PlainText) payload() map[string]any {
	return map[string]any{
		"type": "PlainText",
		"text": p.Text,
	}
}

// SSML converts the plain text into validated markup.
func (p PlainText) SSML() (SSML, error) {
	return NewSSML(p.Text)
}
