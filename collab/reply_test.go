package collab

import "errors"
import "testing"

import "github.com/bilalghalib/Cursive-sub000/style"

func TestDecodePlainText(t *testing.T) {
	reply, err := DecodeReply([]byte("  Hello there!\n"))
	if err != nil { t.Fatalf("plain text must decode, got %v", err) }
	if reply.Text != "Hello there!" { t.Fatalf("unexpected text %q", reply.Text) }
	if reply.Style != nil { t.Fatal("plain text carries no style hint") }
}

func TestDecodeStructured(t *testing.T) {
	raw := []byte(`{"text": "So happy for you!", "style": {"mood": "excited", "confidence": 0.9}}`)
	reply, err := DecodeReply(raw)
	if err != nil { t.Fatalf("structured reply must decode, got %v", err) }
	if reply.Text != "So happy for you!" { t.Fatalf("unexpected text %q", reply.Text) }
	if reply.Style == nil || reply.Style.Mood != "excited" { t.Fatalf("style hint lost: %+v", reply.Style) }

	preset, _ := style.Preset("excited")
	if reply.Emotional() != preset { t.Fatal("mood tag must resolve to its preset") }
}

func TestDecodeCustomParams(t *testing.T) {
	raw := []byte(`{"text": "hi", "style": {"mood": "calm", "customParams":
		{"jitter": 99, "slant": 5, "baselineVariation": 1, "characterVariation": 1, "thickness": 1}}}`)
	reply, err := DecodeReply(raw)
	if err != nil { t.Fatal(err) }
	resolved := reply.Emotional()
	if resolved.Slant != 5 { t.Fatal("custom params must win over the mood tag") }
	if resolved.Jitter != 4 { t.Fatalf("custom params must arrive clamped, got jitter %f", resolved.Jitter) }
}

func TestDecodeMalformed(t *testing.T) {
	for _, raw := range []string{
		`{"style": {"mood": "calm"}}`,
		`{"text": `,
	} {
		_, err := DecodeReply([]byte(raw))
		var malformed *MalformedReplyError
		if !errors.As(err, &malformed) {
			t.Fatalf("expected a malformed reply error for %q, got %v", raw, err)
		}
	}
}

func TestReplyEmotionalFallbacks(t *testing.T) {
	// no hint at all: keyword scan of the text
	excited := Reply{ Text: "This is amazing, congratulations!" }
	if excited.Emotional() != mustPreset(t, "excited") {
		t.Fatal("keyword scan should detect excitement")
	}

	// nothing recognizable: the casual default
	flat := Reply{ Text: "The meeting is at four." }
	if flat.Emotional() != mustPreset(t, "casual") {
		t.Fatal("expected the casual default")
	}
}

func mustPreset(t *testing.T, name string) style.Emotional {
	t.Helper()
	preset, found := style.Preset(name)
	if !found { t.Fatalf("missing preset %q", name) }
	return preset
}
