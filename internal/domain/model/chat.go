package model

// Actions a browser agent can be instructed to perform.
const (
	StepNavigate = "navigate"
	StepWaitFor  = "wait_for"
	StepClick    = "click"
	StepFill     = "fill"
)

// ChatStep is one declarative browser action. Only the fields relevant to the
// action are populated; Note explains the precondition the step assumes from
// the one before it.
type ChatStep struct {
	Action   string `json:"action"`
	URL      string `json:"url,omitempty"`
	Selector string `json:"selector,omitempty"`
	Text     string `json:"text,omitempty"`
	Submit   bool   `json:"submit,omitempty"`
	Note     string `json:"note"`
}

// ChatInstructions is the full plan an external browser agent needs to open
// the conversation for an item and deliver one message. It is an immutable
// value: this service never executes the steps itself.
type ChatInstructions struct {
	Hash    string     `json:"hash"`
	ChatURL string     `json:"chat_url"`
	Message string     `json:"message"`
	Steps   []ChatStep `json:"steps"`
}

// FollowUpAction tells the caller which endpoint to hit next for an item
// surfaced by the composite search-and-contact flow.
type FollowUpAction struct {
	Endpoint string            `json:"endpoint"`
	Payload  map[string]string `json:"payload"`
	Note     string            `json:"note"`
}

// ContactCandidate is one non-reserved search hit annotated with the two
// calls needed to actually start a conversation about it. Hashes are not
// resolved eagerly here: each resolution is a full page fetch, so the cost
// stays with the caller, one item at a time.
type ContactCandidate struct {
	Item     SearchResultItem `json:"item"`
	FollowUp []FollowUpAction `json:"follow_up"`
}

// ContactSheet is the result of the composite search-and-contact flow.
type ContactSheet struct {
	Message    string             `json:"message"`
	Candidates []ContactCandidate `json:"candidates"`
	NextPage   string             `json:"next_page,omitempty"`
	Total      int                `json:"total"`
}
