package alexa

type ResponseEnvelope struct {
	Version           string                 `json:"version"`
	SessionAttributes map[string]interface{} `json:"sessionAttributes"`
	Response          SpeechletResponse      `json:"response"`
}

type SpeechletResponse struct {
	OutputSpeech     OutputSpeech `json:"outputSpeech"`
	Card             Card         `json:"card"`
	Reprompt         Reprompt     `json:"reprompt"`
	ShouldEndSession bool         `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Reprompt struct {
	OutputSpeech RepromptSpeech `json:"outputSpeech"`
}

type RepromptSpeech struct {
	Type string  `json:"type"`
	Text *string `json:"text"`
}

// NewResponse wraps spoken text into the platform envelope. The card
// mirrors the spoken text with the platform's "SessionSpeechlet" prefix.
// A nil reprompt serializes as null, matching what the platform expects
// when the session ends.
func NewResponse(title, speech string, reprompt *string, endSession bool) *ResponseEnvelope {
	return &ResponseEnvelope{
		Version:           "1.0",
		SessionAttributes: map[string]interface{}{},
		Response: SpeechletResponse{
			OutputSpeech: OutputSpeech{
				Type: "PlainText",
				Text: speech,
			},
			Card: Card{
				Type:    "Simple",
				Title:   "SessionSpeechlet - " + title,
				Content: "SessionSpeechlet - " + speech,
			},
			Reprompt: Reprompt{
				OutputSpeech: RepromptSpeech{
					Type: "PlainText",
					Text: reprompt,
				},
			},
			ShouldEndSession: endSession,
		},
	}
}
