package config

import "os"
import "path/filepath"
import "testing"

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
[capture]
palm-radius = 30.0
[synthesis]
glyph-height = 48.0
seed = 7
`))
	if err != nil { t.Fatalf("parse failed: %v", err) }
	if cfg.Capture.PalmRadius == nil || *cfg.Capture.PalmRadius != 30 {
		t.Fatal("palm-radius not parsed")
	}
	if cfg.Capture.BaseWidth != nil { t.Fatal("unset fields must stay nil") }
	if cfg.Synthesis.GlyphHeight == nil || *cfg.Synthesis.GlyphHeight != 48 {
		t.Fatal("glyph-height not parsed")
	}
	if cfg.Synthesis.Seed == nil || *cfg.Synthesis.Seed != 7 {
		t.Fatal("seed not parsed")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil { t.Fatalf("a missing config must not be an error, got %v", err) }
	if cfg.Canvas.MinScale != nil { t.Fatal("expected the zero config") }

	if _, err := Load(""); err == nil { t.Fatal("an empty path is a caller bug") }
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := []byte("[canvas]\nmin-scale = 0.5\nmax-scale = 8.0\n")
	if err := os.WriteFile(path, content, 0o644); err != nil { t.Fatal(err) }

	cfg, err := Load(path)
	if err != nil { t.Fatalf("load failed: %v", err) }
	if cfg.Canvas.MinScale == nil || *cfg.Canvas.MinScale != 0.5 { t.Fatal("min-scale not loaded") }
	if cfg.Canvas.MaxScale == nil || *cfg.Canvas.MaxScale != 8 { t.Fatal("max-scale not loaded") }
}
