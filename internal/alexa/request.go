// Package alexa carries the minimal slice of the voice platform's JSON
// envelope the skill needs to round-trip a request.
package alexa

type RequestEnvelope struct {
	Context RequestContext `json:"context"`
	Request Request        `json:"request"`
}

type RequestContext struct {
	System System `json:"System"`
}

type System struct {
	User SystemUser `json:"user"`
}

type SystemUser struct {
	UserID string `json:"userId"`
}

type Request struct {
	Intent Intent `json:"intent"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots"`
}

type Slot struct {
	Value string `json:"value"`
}

// SlotValue returns the named slot's value, or "" when the slot is absent.
func (e *RequestEnvelope) SlotValue(name string) string {
	slot, ok := e.Request.Intent.Slots[name]
	if !ok {
		return ""
	}
	return slot.Value
}
