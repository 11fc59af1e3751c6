package collab

import "fmt"
import "strings"
import "encoding/json"

import "github.com/bilalghalib/Cursive-sub000/style"

// A chat collaborator's reply. Text is always present; Style is the
// optional emotional hint some collaborators attach.
type Reply struct {
	Text string `json:"text"`
	Style *StyleHint `json:"style,omitempty"`
}

// The emotional hint attached to a structured reply. Mood is a
// preset name for [style.Preset](); CustomParams, when present,
// wins over the named preset.
type StyleHint struct {
	Mood string `json:"mood,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	CustomParams *style.Emotional `json:"customParams,omitempty"`
}

// The typed failure for replies that are structured JSON but not in
// any shape we know how to read. Plain text is never malformed.
type MalformedReplyError struct {
	Raw string
	Reason string
}

func (self *MalformedReplyError) Error() string {
	return fmt.Sprintf("malformed collaborator reply (%s): %q", self.Reason, clip(self.Raw, 80))
}

// Decodes a raw collaborator reply. Two shapes are accepted:
//  - plain text, returned as-is in [Reply.Text];
//  - a JSON object with a "text" field and an optional "style"
//    object carrying a mood tag, a confidence and custom style
//    parameters.
//
// JSON objects without a usable "text" field fail with a
// [*MalformedReplyError]: they were clearly meant to be structured,
// so writing the raw braces onto the canvas in handwriting would be
// worse than surfacing the failure.
func DecodeReply(raw []byte) (Reply, error) {
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "{") {
		return Reply{ Text: trimmed }, nil
	}

	var reply Reply
	if err := json.Unmarshal([]byte(trimmed), &reply); err != nil {
		return Reply{}, &MalformedReplyError{ Raw: trimmed, Reason: err.Error() }
	}
	if reply.Text == "" {
		return Reply{}, &MalformedReplyError{ Raw: trimmed, Reason: "missing text field" }
	}
	return reply, nil
}

// Resolves the reply's emotional style for synthesis. Custom
// parameters win when present (clamped), then the named mood, then
// a keyword scan of the reply text. Like [style.Resolve](), this
// never fails.
func (self Reply) Emotional() style.Emotional {
	if self.Style != nil && self.Style.CustomParams != nil {
		return self.Style.CustomParams.Clamped()
	}
	mood := ""
	if self.Style != nil { mood = self.Style.Mood }
	return style.Resolve(mood, self.Text)
}

func clip(text string, limit int) string {
	if len(text) <= limit { return text }
	return text[ : limit] + "..."
}
