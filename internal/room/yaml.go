package room

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ebumping/keegans-mind-palace-sub000/internal/geom"
)

// TemplateYAML is the on-disk representation of a template. External
// content packs use the same shape the compiled-in registry exports to.
type TemplateYAML struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Archetype string  `yaml:"archetype"`
	Shape     string  `yaml:"shape"`
	Width     float64 `yaml:"width"`
	Depth     float64 `yaml:"depth"`
	Height    float64 `yaml:"height"`

	FloorVertices []PointYAML     `yaml:"floor_vertices"`
	WallHeights   []float64       `yaml:"wall_heights"`
	Lights        []LightYAML     `yaml:"lights,omitempty"`
	Palette       PaletteYAML     `yaml:"palette"`
	Atmosphere    AtmosphereYAML  `yaml:"atmosphere"`
	Furniture     []FurnitureYAML `yaml:"furniture,omitempty"`
	Doorways      []DoorwayYAML   `yaml:"doorways,omitempty"`
	Floor         SurfaceYAML     `yaml:"floor"`
	Ceiling       SurfaceYAML     `yaml:"ceiling"`
}

// PointYAML is a 2D point.
type PointYAML struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LightYAML is a light descriptor.
type LightYAML struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Height    float64 `yaml:"height"`
	Intensity float64 `yaml:"intensity"`
	Color     string  `yaml:"color"`
	Flicker   bool    `yaml:"flicker,omitempty"`
}

// PaletteYAML names the color roles.
type PaletteYAML struct {
	Wall    string `yaml:"wall"`
	Floor   string `yaml:"floor"`
	Ceiling string `yaml:"ceiling"`
	Accent  string `yaml:"accent"`
	Glow    string `yaml:"glow"`
}

// AtmosphereYAML is the fog and particle descriptor.
type AtmosphereYAML struct {
	FogDensity   float64 `yaml:"fog_density"`
	FogColor     string  `yaml:"fog_color"`
	ParticleHint string  `yaml:"particle_hint,omitempty"`
}

// FurnitureYAML is one placed prop.
type FurnitureYAML struct {
	Kind     string  `yaml:"kind"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation,omitempty"`
	Scale    float64 `yaml:"scale,omitempty"`
}

// DoorwayYAML is one exit descriptor.
type DoorwayYAML struct {
	X                float64 `yaml:"x"`
	Y                float64 `yaml:"y"`
	Facing           float64 `yaml:"facing"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	WallSegmentIndex int     `yaml:"wall_segment_index"`
	LeadsTo          int     `yaml:"leads_to"`
	GlowColor        string  `yaml:"glow_color,omitempty"`
	Label            string  `yaml:"label,omitempty"`
}

// SurfaceYAML is a floor or ceiling surface descriptor.
type SurfaceYAML struct {
	Material string  `yaml:"material"`
	TileSize float64 `yaml:"tile_size,omitempty"`
}

// templatePackYAML wraps the template list for YAML parsing.
type templatePackYAML struct {
	Rooms []TemplateYAML `yaml:"rooms"`
}

// ToTemplate converts the YAML representation to a Template.
func (ty *TemplateYAML) ToTemplate() *Template {
	t := &Template{
		ID:        ty.ID,
		Name:      ty.Name,
		Archetype: ty.Archetype,
		Shape:     ty.Shape,
		Width:     ty.Width,
		Depth:     ty.Depth,
		Height:    ty.Height,
		Palette: Palette{
			Wall: ty.Palette.Wall, Floor: ty.Palette.Floor, Ceiling: ty.Palette.Ceiling,
			Accent: ty.Palette.Accent, Glow: ty.Palette.Glow,
		},
		Atmosphere: Atmosphere{
			FogDensity: ty.Atmosphere.FogDensity, FogColor: ty.Atmosphere.FogColor,
			ParticleHint: ty.Atmosphere.ParticleHint,
		},
		Floor:   SurfaceSpec{Material: ty.Floor.Material, TileSize: ty.Floor.TileSize},
		Ceiling: SurfaceSpec{Material: ty.Ceiling.Material, TileSize: ty.Ceiling.TileSize},
	}
	for _, p := range ty.FloorVertices {
		t.FloorVertices = append(t.FloorVertices, geom.Vec2{X: p.X, Y: p.Y})
	}
	for _, h := range ty.WallHeights {
		t.WallSegments = append(t.WallSegments, WallSegment{Height: h})
	}
	for _, l := range ty.Lights {
		t.Lights = append(t.Lights, Light{
			Position: geom.Vec2{X: l.X, Y: l.Y}, Height: l.Height,
			Intensity: l.Intensity, Color: l.Color, Flicker: l.Flicker,
		})
	}
	for _, f := range ty.Furniture {
		scale := f.Scale
		if scale == 0 {
			scale = 1
		}
		t.Furniture = append(t.Furniture, Furniture{
			Kind: f.Kind, Position: geom.Vec2{X: f.X, Y: f.Y},
			Rotation: f.Rotation, Scale: scale,
		})
	}
	for _, d := range ty.Doorways {
		t.Doorways = append(t.Doorways, Doorway{
			Position: geom.Vec2{X: d.X, Y: d.Y}, Facing: d.Facing,
			Width: d.Width, Height: d.Height,
			WallSegmentIndex: d.WallSegmentIndex, LeadsTo: d.LeadsTo,
			GlowColor: d.GlowColor, Label: d.Label,
		})
	}
	return t
}

// FromTemplate converts a Template to its YAML representation.
func FromTemplate(t *Template) TemplateYAML {
	ty := TemplateYAML{
		ID: t.ID, Name: t.Name, Archetype: t.Archetype, Shape: t.Shape,
		Width: t.Width, Depth: t.Depth, Height: t.Height,
		Palette: PaletteYAML{
			Wall: t.Palette.Wall, Floor: t.Palette.Floor, Ceiling: t.Palette.Ceiling,
			Accent: t.Palette.Accent, Glow: t.Palette.Glow,
		},
		Atmosphere: AtmosphereYAML{
			FogDensity: t.Atmosphere.FogDensity, FogColor: t.Atmosphere.FogColor,
			ParticleHint: t.Atmosphere.ParticleHint,
		},
		Floor:   SurfaceYAML{Material: t.Floor.Material, TileSize: t.Floor.TileSize},
		Ceiling: SurfaceYAML{Material: t.Ceiling.Material, TileSize: t.Ceiling.TileSize},
	}
	for _, p := range t.FloorVertices {
		ty.FloorVertices = append(ty.FloorVertices, PointYAML{X: p.X, Y: p.Y})
	}
	for _, w := range t.WallSegments {
		ty.WallHeights = append(ty.WallHeights, w.Height)
	}
	for _, l := range t.Lights {
		ty.Lights = append(ty.Lights, LightYAML{
			X: l.Position.X, Y: l.Position.Y, Height: l.Height,
			Intensity: l.Intensity, Color: l.Color, Flicker: l.Flicker,
		})
	}
	for _, f := range t.Furniture {
		ty.Furniture = append(ty.Furniture, FurnitureYAML{
			Kind: f.Kind, X: f.Position.X, Y: f.Position.Y,
			Rotation: f.Rotation, Scale: f.Scale,
		})
	}
	for _, d := range t.Doorways {
		ty.Doorways = append(ty.Doorways, DoorwayYAML{
			X: d.Position.X, Y: d.Position.Y, Facing: d.Facing,
			Width: d.Width, Height: d.Height,
			WallSegmentIndex: d.WallSegmentIndex, LeadsTo: d.LeadsTo,
			GlowColor: d.GlowColor, Label: d.Label,
		})
	}
	return ty
}

// LoadTemplatesYAML loads and validates a template pack from a YAML
// file. Any structural defect in any template fails the whole load.
func LoadTemplatesYAML(path string) ([]*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template pack: %w", err)
	}
	return ParseTemplatesYAML(data)
}

// ParseTemplatesYAML parses and validates a template pack from raw YAML.
func ParseTemplatesYAML(data []byte) ([]*Template, error) {
	var pack templatePackYAML
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse template pack YAML: %w", err)
	}

	templates := make([]*Template, 0, len(pack.Rooms))
	for i := range pack.Rooms {
		templates = append(templates, pack.Rooms[i].ToTemplate())
	}

	if err := ValidateTemplates(templates); err != nil {
		return nil, fmt.Errorf("template pack failed validation: %w", err)
	}
	return templates, nil
}

// ExportTemplatesYAML writes a template table as a YAML pack.
func ExportTemplatesYAML(w io.Writer, templates []*Template) error {
	pack := templatePackYAML{Rooms: make([]TemplateYAML, 0, len(templates))}
	for _, t := range templates {
		pack.Rooms = append(pack.Rooms, FromTemplate(t))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(pack); err != nil {
		return fmt.Errorf("failed to encode template pack: %w", err)
	}
	return enc.Close()
}
