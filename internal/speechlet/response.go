package speechlet

// Response is one turn's answer: what to speak, what to show, whether to
// keep listening, and the attributes to round-trip through the platform's
// session.
type Response struct {
	OutputSpeech Speech
	Card         Card
	Reprompt     Speech

	// Attributes is the serializable session state carried to the next
	// turn. Nil marshals as an empty object so no state leaks forward.
	Attributes any

	ShouldEndSession bool
}

// Envelope renders the platform response document. The exact field names are
// the platform's contract.
func (r *Response) Envelope() map[string]any {
	response := map[string]any{
		"shouldEndSession": r.ShouldEndSession,
	}

	if r.OutputSpeech != nil {
		response["outputSpeech"] = r.OutputSpeech.payload()
	}

	if r.Reprompt != nil {
		response["reprompt"] = map[string]any{
			"outputSpeech": r.Reprompt.payload(),
		}
	}

	if r.Card != nil {
		response["card"] = r.Card.cardPayload()
	}

	attributes := r.Attributes
	if attributes == nil {
		attributes = map[string]any{}
	}

	return map[string]any{
		"version":           EnvelopeVersion,
		"response":          response,
		"sessionAttributes": attributes,
	}
}
