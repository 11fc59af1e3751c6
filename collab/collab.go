// collab defines the engine's view of the external collaborators:
// the transcription service that turns selected ink into text and
// the chat service that writes responses back. The engine treats
// both as ordinary asynchronous I/O; it never blocks the canvas on
// them, and concurrent overlapping requests are the caller's policy.
package collab

import "context"

// A Transcriber turns a rendered bitmap of handwritten ink into
// text. Implementations typically wrap a vision-capable LLM API.
type Transcriber interface {
	Transcribe(ctx context.Context, png []byte) (string, error)
}

// A Chatter produces a conversational reply for a message. The raw
// reply bytes go through [DecodeReply](), which tolerates both the
// plain text and the structured JSON shapes collaborators produce.
type Chatter interface {
	Chat(ctx context.Context, message string) ([]byte, error)
}

// A transcription request snapshot: the selection bitmap travels
// with its own canvas region so overlapping requests stay
// distinguishable when their responses arrive out of order.
type TranscriptionRequest struct {
	PNG []byte
	MinX, MinY, MaxX, MaxY float64
}
