package data

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"ebiten-shooter/components"
)

// SpriteTemplate describes how an entity kind looks and how large its
// bounding box is
type SpriteTemplate struct {
	ID     string  `json:"id"`     // Kind name: "player", "projectile" or "hostile"
	Name   string  `json:"name"`   // Display name
	Width  float64 `json:"width"`  // Bounding box width in pixels
	Height float64 `json:"height"` // Bounding box height in pixels
	Color  string  `json:"color"`  // Color in hex format (e.g. "#00FF00")
	Glyph  string  `json:"glyph"`  // Character used by the terminal renderer
}

// Size returns the bounding box extent
func (t *SpriteTemplate) Size() components.Size {
	return components.Size{W: t.Width, H: t.Height}
}

// RGBA returns the parsed template color
func (t *SpriteTemplate) RGBA() color.RGBA {
	return ParseHexColor(t.Color)
}

// Rune returns the first rune of the glyph, or '?' when unset
func (t *SpriteTemplate) Rune() rune {
	for _, r := range t.Glyph {
		return r
	}
	return '?'
}

// DefaultTemplates are used for any kind without a template on disk
func DefaultTemplates() map[components.Kind]*SpriteTemplate {
	return map[components.Kind]*SpriteTemplate{
		components.KindPlayer:     {ID: "player", Name: "Fighter", Width: 30, Height: 30, Color: "#4FC3F7", Glyph: "A"},
		components.KindProjectile: {ID: "projectile", Name: "Bullet", Width: 4, Height: 10, Color: "#FFEB3B", Glyph: "|"},
		components.KindHostile:    {ID: "hostile", Name: "Enemy", Width: 26, Height: 26, Color: "#EF5350", Glyph: "W"},
	}
}

// SpriteTemplateManager manages all sprite templates
type SpriteTemplateManager struct {
	Templates map[components.Kind]*SpriteTemplate
}

// NewSpriteTemplateManager creates a manager seeded with the defaults
func NewSpriteTemplateManager() *SpriteTemplateManager {
	return &SpriteTemplateManager{
		Templates: DefaultTemplates(),
	}
}

// LoadTemplatesFromDirectory loads all JSON template files from a directory
func (m *SpriteTemplateManager) LoadTemplatesFromDirectory(dirPath string) error {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read template directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}

		fullPath := filepath.Join(dirPath, file.Name())
		if err := m.LoadTemplateFromFile(fullPath); err != nil {
			return fmt.Errorf("failed to load template from %s: %w", file.Name(), err)
		}
	}

	return nil
}

// LoadTemplateFromFile loads a single sprite template from a JSON file
func (m *SpriteTemplateManager) LoadTemplateFromFile(filePath string) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var template SpriteTemplate
	if err := json.Unmarshal(raw, &template); err != nil {
		return err
	}

	kind, err := ValidateSpriteTemplate(&template)
	if err != nil {
		return fmt.Errorf("invalid sprite template in %s: %w", filePath, err)
	}

	m.Templates[kind] = &template
	return nil
}

// GetTemplate returns the template for a kind
func (m *SpriteTemplateManager) GetTemplate(kind components.Kind) *SpriteTemplate {
	if t, ok := m.Templates[kind]; ok {
		return t
	}
	return DefaultTemplates()[kind]
}

// ValidateSpriteTemplate checks the required fields and resolves the kind
func ValidateSpriteTemplate(template *SpriteTemplate) (components.Kind, error) {
	if template.ID == "" {
		return 0, fmt.Errorf("sprite template missing id")
	}
	var kind components.Kind
	switch template.ID {
	case components.KindPlayer.String():
		kind = components.KindPlayer
	case components.KindProjectile.String():
		kind = components.KindProjectile
	case components.KindHostile.String():
		kind = components.KindHostile
	default:
		return 0, fmt.Errorf("sprite template '%s' names no entity kind", template.ID)
	}
	if template.Width < 0 || template.Height < 0 {
		return 0, fmt.Errorf("sprite template '%s' has a negative size", template.ID)
	}
	return kind, nil
}

// ParseHexColor converts a hex string to a color.RGBA
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return
	}

	format := "#%02x%02x%02x"
	_, err := fmt.Sscanf(hex, format, &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{255, 255, 255, 255} // Default white on error
	}

	return
}
