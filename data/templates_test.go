package data

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"ebiten-shooter/components"
)

func TestLoadTemplatesFromDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("hostile.json", `{"id":"hostile","width":40,"height":12,"color":"#00FF00","glyph":"M"}`)
	write("notes.txt", "ignored")

	m := NewSpriteTemplateManager()
	if err := m.LoadTemplatesFromDirectory(dir); err != nil {
		t.Fatalf("load: %v", err)
	}

	h := m.GetTemplate(components.KindHostile)
	if h.Size() != (components.Size{W: 40, H: 12}) {
		t.Errorf("hostile size = %+v", h.Size())
	}
	if h.RGBA() != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("hostile color = %v", h.RGBA())
	}
	if h.Rune() != 'M' {
		t.Errorf("hostile glyph = %q", h.Rune())
	}

	// untouched kinds keep their defaults
	if p := m.GetTemplate(components.KindPlayer); p.Width != 30 {
		t.Errorf("player default width = %v", p.Width)
	}
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boss.json")
	if err := os.WriteFile(path, []byte(`{"id":"boss"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := NewSpriteTemplateManager().LoadTemplateFromFile(path); err == nil {
		t.Fatal("expected an error for an unknown kind")
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	err := NewSpriteTemplateManager().LoadTemplatesFromDirectory(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestShippedTemplatesMatchDefaults(t *testing.T) {
	m := &SpriteTemplateManager{Templates: map[components.Kind]*SpriteTemplate{}}
	if err := m.LoadTemplatesFromDirectory("sprites"); err != nil {
		t.Fatalf("load shipped sprites: %v", err)
	}
	for kind, def := range DefaultTemplates() {
		got := m.GetTemplate(kind)
		if *got != *def {
			t.Errorf("%v: shipped %+v differs from default %+v", kind, *got, *def)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	if c := ParseHexColor("#102030"); c != (color.RGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Errorf("got %v", c)
	}
	if c := ParseHexColor("bad"); c.A != 0xff {
		t.Errorf("short input should still be opaque, got %v", c)
	}
}
