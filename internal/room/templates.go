package room

import "github.com/ebumping/keegans-mind-palace-sub000/internal/geom"

// rectFloor returns a counter-clockwise rectangle centered on the
// origin. Edge 0 is the near wall, 1 the right, 2 the far, 3 the left.
func rectFloor(width, depth float64) []geom.Vec2 {
	hw, hd := width/2, depth/2
	return []geom.Vec2{{X: -hw, Y: -hd}, {X: hw, Y: -hd}, {X: hw, Y: hd}, {X: -hw, Y: hd}}
}

// uniformWalls returns n wall segments of the same height.
func uniformWalls(n int, height float64) []WallSegment {
	walls := make([]WallSegment, n)
	for i := range walls {
		walls[i] = WallSegment{Height: height}
	}
	return walls
}

// registry holds the authored room sequence in traversal order. Room
// index 1 maps to registry[0]. Past the end the progression selector
// cycles back through with rising abnormality.
var registry = []*Template{
	{
		ID:        "infinite_hallway",
		Name:      "The Infinite Hallway",
		Archetype: "corridor",
		Shape:     "rectangle",
		Width:     3, Depth: 40, Height: 2.6,
		FloorVertices: rectFloor(3, 40),
		WallSegments:  uniformWalls(4, 2.6),
		Lights: []Light{
			{Position: geom.Vec2{Y: -15}, Height: 2.5, Intensity: 0.8, Color: "#fff2c4", Flicker: true},
			{Position: geom.Vec2{Y: -5}, Height: 2.5, Intensity: 0.8, Color: "#fff2c4", Flicker: true},
			{Position: geom.Vec2{Y: 5}, Height: 2.5, Intensity: 0.8, Color: "#fff2c4", Flicker: true},
			{Position: geom.Vec2{Y: 15}, Height: 2.5, Intensity: 0.7, Color: "#fff2c4", Flicker: true},
		},
		Palette: Palette{Wall: "#d8c78e", Floor: "#7a6a4f", Ceiling: "#e8e2d0", Accent: "#b09c62", Glow: "#ffd27f"},
		Atmosphere: Atmosphere{FogDensity: 0.035, FogColor: "#c9bd93", ParticleHint: "dust"},
		Furniture: []Furniture{
			{Kind: "wall_sconce", Position: geom.Vec2{X: -1.4, Y: -10}, Scale: 1},
			{Kind: "wall_sconce", Position: geom.Vec2{X: 1.4, Y: 0}, Rotation: 3.14159, Scale: 1},
		},
		Doorways: []Doorway{
			{Position: geom.Vec2{Y: 19.9}, Facing: 1.5708, Width: 1.1, Height: 2.2, WallSegmentIndex: 2, LeadsTo: 2, GlowColor: "#ffd27f", Label: "EXIT"},
		},
		Floor:   SurfaceSpec{Material: "carpet", TileSize: 0.5},
		Ceiling: SurfaceSpec{Material: "popcorn", TileSize: 1},
	},
	{
		ID:        "waiting_room",
		Name:      "The Waiting Room",
		Archetype: "lobby",
		Shape:     "rectangle",
		Width:     9, Depth: 7, Height: 3,
		FloorVertices: rectFloor(9, 7),
		WallSegments:  uniformWalls(4, 3),
		Lights: []Light{
			{Position: geom.Vec2{}, Height: 2.9, Intensity: 0.9, Color: "#f4f7ff", Flicker: true},
		},
		Palette: Palette{Wall: "#9fb4b0", Floor: "#5d6b68", Ceiling: "#dfe5e3", Accent: "#7e958f", Glow: "#aef0e0"},
		Atmosphere: Atmosphere{FogDensity: 0.02, FogColor: "#aebcb8", ParticleHint: "dust"},
		Furniture: []Furniture{
			{Kind: "plastic_chair", Position: geom.Vec2{X: -3, Y: -2.4}, Scale: 1},
			{Kind: "plastic_chair", Position: geom.Vec2{X: -2.2, Y: -2.4}, Scale: 1},
			{Kind: "plastic_chair", Position: geom.Vec2{X: -1.4, Y: -2.4}, Scale: 1},
			{Kind: "ticket_dispenser", Position: geom.Vec2{X: 3.8, Y: 2.8}, Rotation: -1.5708, Scale: 1},
			{Kind: "dead_plant", Position: geom.Vec2{X: 4, Y: -2.9}, Scale: 1.2},
		},
		Doorways: []Doorway{
			{Position: geom.Vec2{X: 1.5, Y: 3.49}, Facing: 1.5708, Width: 1, Height: 2.1, WallSegmentIndex: 2, LeadsTo: 3, GlowColor: "#aef0e0"},
		},
		Floor:   SurfaceSpec{Material: "linoleum", TileSize: 0.4},
		Ceiling: SurfaceSpec{Material: "acoustic_panel", TileSize: 0.6},
	},
	{
		ID:        "empty_pool",
		Name:      "The Drained Pool",
		Archetype: "pool",
		Shape:     "rectangle",
		Width:     14, Depth: 10, Height: 5,
		FloorVertices: rectFloor(14, 10),
		WallSegments:  uniformWalls(4, 5),
		Lights: []Light{
			{Position: geom.Vec2{X: -4}, Height: 4.8, Intensity: 0.6, Color: "#bfe8ff"},
			{Position: geom.Vec2{X: 4}, Height: 4.8, Intensity: 0.6, Color: "#bfe8ff"},
		},
		Palette: Palette{Wall: "#bfe3e8", Floor: "#8fd0dc", Ceiling: "#e8f6f8", Accent: "#57a7b8", Glow: "#7fe0ff"},
		Atmosphere: Atmosphere{FogDensity: 0.05, FogColor: "#a8d4dc", ParticleHint: "chlorine_haze"},
		Furniture: []Furniture{
			{Kind: "pool_ladder", Position: geom.Vec2{X: -6.5, Y: 0}, Scale: 1},
			{Kind: "diving_block", Position: geom.Vec2{X: 6, Y: -4}, Scale: 1},
			{Kind: "lane_rope_pile", Position: geom.Vec2{X: 2, Y: 3.5}, Rotation: 0.6, Scale: 1},
		},
		Doorways: []Doorway{
			{Position: geom.Vec2{X: -6.99, Y: 2}, Facing: 3.14159, Width: 1.2, Height: 2.2, WallSegmentIndex: 3, LeadsTo: 4, GlowColor: "#7fe0ff", Label: "LOCKERS"},
		},
		Floor:   SurfaceSpec{Material: "pool_tile", TileSize: 0.25},
		Ceiling: SurfaceSpec{Material: "corrugated", TileSize: 1.5},
	},
	{
		ID:        "fluorescent_office",
		Name:      "The Endless Office",
		Archetype: "office",
		Shape:     "l_shape",
		Width:     12, Depth: 12, Height: 2.7,
		FloorVertices: []geom.Vec2{
			{X: -6, Y: -6}, {X: 6, Y: -6}, {X: 6, Y: 0},
			{X: 0, Y: 0}, {X: 0, Y: 6}, {X: -6, Y: 6},
		},
		WallSegments: uniformWalls(6, 2.7),
		Lights: []Light{
			{Position: geom.Vec2{X: -3, Y: -3}, Height: 2.6, Intensity: 1, Color: "#f6fbe8", Flicker: true},
			{Position: geom.Vec2{X: 3, Y: -3}, Height: 2.6, Intensity: 1, Color: "#f6fbe8", Flicker: true},
			{Position: geom.Vec2{X: -3, Y: 3}, Height: 2.6, Intensity: 1, Color: "#f6fbe8", Flicker: true},
		},
		Palette: Palette{Wall: "#cfd4c4", Floor: "#667088", Ceiling: "#eef0e8", Accent: "#9aa48a", Glow: "#d6ff8a"},
		Atmosphere: Atmosphere{FogDensity: 0.025, FogColor: "#c2c8b6", ParticleHint: "dust"},
		Furniture: []Furniture{
			{Kind: "cubicle", Position: geom.Vec2{X: -3, Y: -3.5}, Scale: 1},
			{Kind: "cubicle", Position: geom.Vec2{X: 0, Y: -3.5}, Scale: 1},
			{Kind: "cubicle", Position: geom.Vec2{X: 3, Y: -3.5}, Scale: 1},
			{Kind: "filing_cabinet", Position: geom.Vec2{X: -5.5, Y: 4}, Scale: 1},
			{Kind: "water_cooler", Position: geom.Vec2{X: -1, Y: 5.2}, Scale: 1},
		},
		Doorways: []Doorway{
			{Position: geom.Vec2{X: -3, Y: 5.99}, Facing: 1.5708, Width: 1, Height: 2.1, WallSegmentIndex: 4, LeadsTo: 5, GlowColor: "#d6ff8a", Label: "STAIRS P2"},
		},
		Floor:   SurfaceSpec{Material: "carpet_tile", TileSize: 0.5},
		Ceiling: SurfaceSpec{Material: "acoustic_panel", TileSize: 0.6},
	},
	{
		ID:        "parking_garage",
		Name:      "Level P2",
		Archetype: "garage",
		Shape:     "rectangle",
		Width:     22, Depth: 16, Height: 2.4,
		FloorVertices: rectFloor(22, 16),
		WallSegments:  uniformWalls(4, 2.4),
		Lights: []Light{
			{Position: geom.Vec2{X: -7, Y: -4}, Height: 2.3, Intensity: 0.5, Color: "#ffe9b8", Flicker: true},
			{Position: geom.Vec2{X: 7, Y: -4}, Height: 2.3, Intensity: 0.5, Color: "#ffe9b8"},
			{Position: geom.Vec2{X: 0, Y: 4}, Height: 2.3, Intensity: 0.45, Color: "#ffe9b8", Flicker: true},
		},
		Palette: Palette{Wall: "#8a8d91", Floor: "#55585c", Ceiling: "#74777b", Accent: "#d9b23c", Glow: "#ffb347"},
		Atmosphere: Atmosphere{FogDensity: 0.06, FogColor: "#6e7174", ParticleHint: "exhaust"},
		Furniture: []Furniture{
			{Kind: "concrete_pillar", Position: geom.Vec2{X: -6, Y: 0}, Scale: 1},
			{Kind: "concrete_pillar", Position: geom.Vec2{X: 0, Y: 0}, Scale: 1},
			{Kind: "concrete_pillar", Position: geom.Vec2{X: 6, Y: 0}, Scale: 1},
			{Kind: "abandoned_car", Position: geom.Vec2{X: -8, Y: 5}, Rotation: 0.2, Scale: 1},
			{Kind: "shopping_cart", Position: geom.Vec2{X: 4, Y: -6}, Rotation: 2.1, Scale: 1},
		},
		Doorways: []Doorway{
			{Position: geom.Vec2{X: 10.99, Y: -3}, Facing: 0, Width: 1.4, Height: 2.1, WallSegmentIndex: 1, LeadsTo: 6, GlowColor: "#ffb347", Label: "MOTEL"},
		},
		Floor:   SurfaceSpec{Material: "concrete", TileSize: 2},
		Ceiling: SurfaceSpec{Material: "concrete", TileSize: 2},
	},
	{
		ID:        "motel_corridor",
		Name:      "The Motel Corridor",
		Archetype: "corridor",
		Shape:     "rectangle",
		Width:     2.4, Depth: 26, Height: 2.5,
		FloorVertices: rectFloor(2.4, 26),
		WallSegments:  uniformWalls(4, 2.5),
		Lights: []Light{
			{Position: geom.Vec2{Y: -8}, Height: 2.4, Intensity: 0.55, Color: "#ffd9a8"},
			{Position: geom.Vec2{Y: 0}, Height: 2.4, Intensity: 0.55, Color: "#ffd9a8", Flicker: true},
			{Position: geom.Vec2{Y: 8}, Height: 2.4, Intensity: 0.55, Color: "#ffd9a8"},
		},
		Palette: Palette{Wall: "#a3543e", Floor: "#6b3b2a", Ceiling: "#d8c6b2", Accent: "#c77f4f", Glow: "#ff9e66"},
		Atmosphere: Atmosphere{FogDensity: 0.04, FogColor: "#8f6c55", ParticleHint: "dust"},
		Furniture: []Furniture{
			{Kind: "room_door", Position: geom.Vec2{X: -1.19, Y: -6}, Scale: 1},
			{Kind: "room_door", Position: geom.Vec2{X: -1.19, Y: 2}, Scale: 1},
			{Kind: "room_door", Position: geom.Vec2{X: 1.19, Y: -2}, Rotation: 3.14159, Scale: 1},
			{Kind: "ice_machine", Position: geom.Vec2{X: 1, Y: 10}, Scale: 1},
		},
		Doorways: []Doorway{
			{Position: geom.Vec2{Y: 12.99}, Facing: 1.5708, Width: 1, Height: 2.1, WallSegmentIndex: 2, LeadsTo: 7, GlowColor: "#ff9e66", Label: "BALLROOM"},
		},
		Floor:   SurfaceSpec{Material: "carpet", TileSize: 0.5},
		Ceiling: SurfaceSpec{Material: "plaster", TileSize: 1},
	},
	{
		ID:        "ballroom",
		Name:      "The Hollow Ballroom",
		Archetype: "hall",
		Shape:     "octagon",
		Width:     18, Depth: 18, Height: 8,
		FloorVertices: []geom.Vec2{
			{X: -4, Y: -9}, {X: 4, Y: -9}, {X: 9, Y: -4}, {X: 9, Y: 4},
			{X: 4, Y: 9}, {X: -4, Y: 9}, {X: -9, Y: 4}, {X: -9, Y: -4},
		},
		WallSegments: uniformWalls(8, 8),
		Lights: []Light{
			{Position: geom.Vec2{}, Height: 7.5, Intensity: 1.2, Color: "#ffe8c8"},
			{Position: geom.Vec2{X: -5, Y: -5}, Height: 6, Intensity: 0.4, Color: "#ffd8a8"},
			{Position: geom.Vec2{X: 5, Y: 5}, Height: 6, Intensity: 0.4, Color: "#ffd8a8"},
		},
		Palette: Palette{Wall: "#b8925f", Floor: "#7d5a36", Ceiling: "#caa877", Accent: "#e0bd82", Glow: "#ffe2a8"},
		Atmosphere: Atmosphere{FogDensity: 0.03, FogColor: "#9c8460", ParticleHint: "dust"},
		Furniture: []Furniture{
			{Kind: "chandelier", Position: geom.Vec2{}, Scale: 1.5},
			{Kind: "round_table", Position: geom.Vec2{X: -5, Y: 2}, Scale: 1},
			{Kind: "round_table", Position: geom.Vec2{X: 5, Y: -3}, Scale: 1},
			{Kind: "grand_piano", Position: geom.Vec2{X: 0, Y: 6.5}, Rotation: 2.5, Scale: 1},
		},
		Doorways: []Doorway{
			{Position: geom.Vec2{X: 6.5, Y: 6.49}, Facing: 0.7854, Width: 1.3, Height: 2.6, WallSegmentIndex: 4, LeadsTo: 8, GlowColor: "#ffe2a8"},
		},
		Floor:   SurfaceSpec{Material: "parquet", TileSize: 0.3},
		Ceiling: SurfaceSpec{Material: "coffered", TileSize: 1.2},
	},
	{
		ID:        "classroom",
		Name:      "Room 114",
		Archetype: "classroom",
		Shape:     "rectangle",
		Width:     10, Depth: 8, Height: 3,
		FloorVertices: rectFloor(10, 8),
		WallSegments:  uniformWalls(4, 3),
		Lights: []Light{
			{Position: geom.Vec2{X: -2.5}, Height: 2.9, Intensity: 0.9, Color: "#f2f6e8", Flicker: true},
			{Position: geom.Vec2{X: 2.5}, Height: 2.9, Intensity: 0.9, Color: "#f2f6e8"},
		},
		Palette: Palette{Wall: "#cfd8b8", Floor: "#8a7c5c", Ceiling: "#e6ead8", Accent: "#5c7a52", Glow: "#b8ff8a"},
		Atmosphere: Atmosphere{FogDensity: 0.02, FogColor: "#b8bfa4", ParticleHint: "chalk_dust"},
		Furniture: []Furniture{
			{Kind: "school_desk", Position: geom.Vec2{X: -3, Y: -1}, Scale: 1},
			{Kind: "school_desk", Position: geom.Vec2{X: -1, Y: -1}, Scale: 1},
			{Kind: "school_desk", Position: geom.Vec2{X: 1, Y: -1}, Scale: 1},
			{Kind: "school_desk", Position: geom.Vec2{X: 3, Y: -1}, Scale: 1},
			{Kind: "chalkboard", Position: geom.Vec2{Y: 3.9}, Scale: 2},
			{Kind: "teacher_desk", Position: geom.Vec2{X: 3, Y: 2.8}, Rotation: 3.14159, Scale: 1},
		},
		Doorways: []Doorway{
			{Position: geom.Vec2{X: 4.99, Y: -2}, Facing: 0, Width: 1, Height: 2.1, WallSegmentIndex: 1, LeadsTo: 9, GlowColor: "#b8ff8a", Label: "LAUNDRY"},
		},
		Floor:   SurfaceSpec{Material: "linoleum", TileSize: 0.3},
		Ceiling: SurfaceSpec{Material: "acoustic_panel", TileSize: 0.6},
	},
	{
		ID:        "laundromat",
		Name:      "The 24hr Laundromat",
		Archetype: "commercial",
		Shape:     "rectangle",
		Width:     8, Depth: 12, Height: 2.8,
		FloorVertices: rectFloor(8, 12),
		WallSegments:  uniformWalls(4, 2.8),
		Lights: []Light{
			{Position: geom.Vec2{Y: -3}, Height: 2.7, Intensity: 0.95, Color: "#eef4ff", Flicker: true},
			{Position: geom.Vec2{Y: 3}, Height: 2.7, Intensity: 0.95, Color: "#eef4ff"},
		},
		Palette: Palette{Wall: "#a8c8d8", Floor: "#b8bcb8", Ceiling: "#e8eef2", Accent: "#4a8ab0", Glow: "#8ad4ff"},
		Atmosphere: Atmosphere{FogDensity: 0.045, FogColor: "#9fb4be", ParticleHint: "steam"},
		Furniture: []Furniture{
			{Kind: "washer", Position: geom.Vec2{X: -3.4, Y: -4}, Scale: 1},
			{Kind: "washer", Position: geom.Vec2{X: -3.4, Y: -2.8}, Scale: 1},
			{Kind: "washer", Position: geom.Vec2{X: -3.4, Y: -1.6}, Scale: 1},
			{Kind: "dryer", Position: geom.Vec2{X: 3.4, Y: -3}, Rotation: 3.14159, Scale: 1},
			{Kind: "dryer", Position: geom.Vec2{X: 3.4, Y: -1.8}, Rotation: 3.14159, Scale: 1},
			{Kind: "folding_table", Position: geom.Vec2{Y: 1}, Scale: 1.4},
			{Kind: "detergent_vending", Position: geom.Vec2{X: -3.6, Y: 4.5}, Scale: 1},
		},
		Doorways: []Doorway{
			{Position: geom.Vec2{X: 2, Y: 5.99}, Facing: 1.5708, Width: 1, Height: 2.1, WallSegmentIndex: 2, LeadsTo: 10, GlowColor: "#8ad4ff"},
		},
		Floor:   SurfaceSpec{Material: "tile", TileSize: 0.3},
		Ceiling: SurfaceSpec{Material: "plaster", TileSize: 1},
	},
	{
		ID:        "stairwell_landing",
		Name:      "Stairwell B",
		Archetype: "stairwell",
		Shape:     "rectangle",
		Width:     5, Depth: 5, Height: 6,
		FloorVertices: rectFloor(5, 5),
		WallSegments:  uniformWalls(4, 6),
		Lights: []Light{
			{Position: geom.Vec2{}, Height: 5.5, Intensity: 0.4, Color: "#d4ffd4", Flicker: true},
		},
		Palette: Palette{Wall: "#97a89a", Floor: "#5a665c", Ceiling: "#7b887d", Accent: "#4d6850", Glow: "#7aff9e"},
		Atmosphere: Atmosphere{FogDensity: 0.055, FogColor: "#75857a", ParticleHint: "dust"},
		Furniture: []Furniture{
			{Kind: "stair_flight", Position: geom.Vec2{X: 1.2, Y: 0}, Scale: 1},
			{Kind: "handrail", Position: geom.Vec2{X: -0.4, Y: 0}, Scale: 1},
			{Kind: "exit_sign", Position: geom.Vec2{Y: 2.3}, Scale: 1},
		},
		Doorways: []Doorway{
			{Position: geom.Vec2{X: -1, Y: 2.49}, Facing: 1.5708, Width: 1, Height: 2.1, WallSegmentIndex: 2, LeadsTo: 11, GlowColor: "#7aff9e", Label: "MALL LEVEL"},
		},
		Floor:   SurfaceSpec{Material: "concrete", TileSize: 1},
		Ceiling: SurfaceSpec{Material: "concrete", TileSize: 1},
	},
	{
		ID:        "abandoned_mall",
		Name:      "The Food Court",
		Archetype: "mall",
		Shape:     "rectangle",
		Width:     24, Depth: 18, Height: 7,
		FloorVertices: rectFloor(24, 18),
		WallSegments:  uniformWalls(4, 7),
		Lights: []Light{
			{Position: geom.Vec2{X: -8}, Height: 6.5, Intensity: 0.5, Color: "#ffe4f0"},
			{Position: geom.Vec2{X: 0}, Height: 6.5, Intensity: 0.6, Color: "#ffe4f0", Flicker: true},
			{Position: geom.Vec2{X: 8}, Height: 6.5, Intensity: 0.5, Color: "#ffe4f0"},
		},
		Palette: Palette{Wall: "#c8a8b8", Floor: "#9a8a92", Ceiling: "#ddd2d8", Accent: "#e05a8a", Glow: "#ff8ac4"},
		Atmosphere: Atmosphere{FogDensity: 0.04, FogColor: "#ab98a2", ParticleHint: "dust"},
		Furniture: []Furniture{
			{Kind: "food_stall", Position: geom.Vec2{X: -9, Y: 7}, Scale: 1},
			{Kind: "food_stall", Position: geom.Vec2{X: -3, Y: 7}, Scale: 1},
			{Kind: "food_stall", Position: geom.Vec2{X: 3, Y: 7}, Scale: 1},
			{Kind: "cafe_table", Position: geom.Vec2{X: -4, Y: 0}, Scale: 1},
			{Kind: "cafe_table", Position: geom.Vec2{X: 2, Y: -2}, Scale: 1},
			{Kind: "cafe_table", Position: geom.Vec2{X: 7, Y: 2}, Scale: 1},
			{Kind: "dead_fountain", Position: geom.Vec2{X: 0, Y: -4}, Scale: 1.6},
			{Kind: "mall_planter", Position: geom.Vec2{X: -10, Y: -6}, Scale: 1},
		},
		Doorways: []Doorway{
			{Position: geom.Vec2{X: 11.99, Y: 4}, Facing: 0, Width: 1.6, Height: 2.4, WallSegmentIndex: 1, LeadsTo: 12, GlowColor: "#ff8ac4", Label: "PLAY ZONE"},
		},
		Floor:   SurfaceSpec{Material: "terrazzo", TileSize: 0.6},
		Ceiling: SurfaceSpec{Material: "skylight_grid", TileSize: 2},
	},
	{
		ID:        "indoor_playground",
		Name:      "The Play Zone",
		Archetype: "playground",
		Shape:     "rectangle",
		Width:     14, Depth: 12, Height: 5,
		FloorVertices: rectFloor(14, 12),
		WallSegments:  uniformWalls(4, 5),
		Lights: []Light{
			{Position: geom.Vec2{X: -3, Y: -2}, Height: 4.8, Intensity: 0.7, Color: "#ffd4e8"},
			{Position: geom.Vec2{X: 3, Y: 2}, Height: 4.8, Intensity: 0.7, Color: "#d4e8ff", Flicker: true},
		},
		Palette: Palette{Wall: "#e8c84a", Floor: "#4a90d8", Ceiling: "#f2e2a8", Accent: "#e84a6a", Glow: "#ffec8a"},
		Atmosphere: Atmosphere{FogDensity: 0.03, FogColor: "#d8c888", ParticleHint: "dust"},
		Furniture: []Furniture{
			{Kind: "ball_pit", Position: geom.Vec2{X: -4, Y: 2}, Scale: 1.5},
			{Kind: "slide", Position: geom.Vec2{X: 3, Y: -2}, Rotation: 0.5, Scale: 1.2},
			{Kind: "tube_maze", Position: geom.Vec2{X: 4.5, Y: 3}, Scale: 1.3},
			{Kind: "bench", Position: geom.Vec2{X: -6, Y: -4.5}, Scale: 1},
		},
		Doorways: []Doorway{
			{Position: geom.Vec2{X: -2, Y: -5.99}, Facing: -1.5708, Width: 1.1, Height: 2.1, WallSegmentIndex: 0, LeadsTo: 13, GlowColor: "#ffec8a", Label: "STAFF ONLY"},
		},
		Floor:   SurfaceSpec{Material: "foam_mat", TileSize: 0.5},
		Ceiling: SurfaceSpec{Material: "corrugated", TileSize: 1.5},
	},
	{
		ID:        "server_room",
		Name:      "The Server Room",
		Archetype: "technical",
		Shape:     "rectangle",
		Width:     9, Depth: 14, Height: 3,
		FloorVertices: rectFloor(9, 14),
		WallSegments:  uniformWalls(4, 3),
		Lights: []Light{
			{Position: geom.Vec2{Y: -4}, Height: 2.9, Intensity: 0.35, Color: "#b8ffc8"},
			{Position: geom.Vec2{Y: 4}, Height: 2.9, Intensity: 0.35, Color: "#b8ffc8", Flicker: true},
		},
		Palette: Palette{Wall: "#3a4048", Floor: "#2c3036", Ceiling: "#22262c", Accent: "#3ae86a", Glow: "#42ff7a"},
		Atmosphere: Atmosphere{FogDensity: 0.02, FogColor: "#343a42", ParticleHint: ""},
		Furniture: []Furniture{
			{Kind: "server_rack", Position: geom.Vec2{X: -3, Y: -4}, Scale: 1},
			{Kind: "server_rack", Position: geom.Vec2{X: -3, Y: -2}, Scale: 1},
			{Kind: "server_rack", Position: geom.Vec2{X: -3, Y: 0}, Scale: 1},
			{Kind: "server_rack", Position: geom.Vec2{X: 3, Y: -3}, Rotation: 3.14159, Scale: 1},
			{Kind: "server_rack", Position: geom.Vec2{X: 3, Y: -1}, Rotation: 3.14159, Scale: 1},
			{Kind: "cable_tray", Position: geom.Vec2{Y: 3}, Scale: 2},
		},
		Doorways: []Doorway{
			{Position: geom.Vec2{X: 1, Y: 6.99}, Facing: 1.5708, Width: 1, Height: 2.1, WallSegmentIndex: 2, LeadsTo: 14, GlowColor: "#42ff7a"},
		},
		Floor:   SurfaceSpec{Material: "raised_floor", TileSize: 0.6},
		Ceiling: SurfaceSpec{Material: "cable_grid", TileSize: 0.6},
	},
	{
		ID:        "chapel",
		Name:      "The Roadside Chapel",
		Archetype: "hall",
		Shape:     "rectangle",
		Width:     7, Depth: 15, Height: 6,
		FloorVertices: rectFloor(7, 15),
		WallSegments:  uniformWalls(4, 6),
		Lights: []Light{
			{Position: geom.Vec2{Y: 5.5}, Height: 5, Intensity: 0.8, Color: "#ffd8a0"},
			{Position: geom.Vec2{Y: -3}, Height: 4, Intensity: 0.3, Color: "#c8b8ff", Flicker: true},
		},
		Palette: Palette{Wall: "#d8cab0", Floor: "#6a5440", Ceiling: "#b8a888", Accent: "#8a6ae8", Glow: "#b89aff"},
		Atmosphere: Atmosphere{FogDensity: 0.045, FogColor: "#b0a68e", ParticleHint: "dust"},
		Furniture: []Furniture{
			{Kind: "pew", Position: geom.Vec2{X: -1.6, Y: -4}, Scale: 1},
			{Kind: "pew", Position: geom.Vec2{X: 1.6, Y: -4}, Scale: 1},
			{Kind: "pew", Position: geom.Vec2{X: -1.6, Y: -2}, Scale: 1},
			{Kind: "pew", Position: geom.Vec2{X: 1.6, Y: -2}, Scale: 1},
			{Kind: "altar", Position: geom.Vec2{Y: 6}, Scale: 1.2},
			{Kind: "votive_stand", Position: geom.Vec2{X: -2.8, Y: 5}, Scale: 1},
		},
		Doorways: []Doorway{
			{Position: geom.Vec2{X: 3.49, Y: 1}, Facing: 0, Width: 1, Height: 2.2, WallSegmentIndex: 1, LeadsTo: 15, GlowColor: "#b89aff", Label: "GREENHOUSE"},
		},
		Floor:   SurfaceSpec{Material: "wood_plank", TileSize: 0.2},
		Ceiling: SurfaceSpec{Material: "vaulted", TileSize: 1},
	},
	{
		ID:        "rooftop_greenhouse",
		Name:      "The Rooftop Greenhouse",
		Archetype: "greenhouse",
		Shape:     "rectangle",
		Width:     10, Depth: 16, Height: 4,
		FloorVertices: rectFloor(10, 16),
		WallSegments:  uniformWalls(4, 4),
		Lights: []Light{
			{Position: geom.Vec2{Y: -5}, Height: 3.8, Intensity: 0.6, Color: "#d8ffd8"},
			{Position: geom.Vec2{Y: 5}, Height: 3.8, Intensity: 0.6, Color: "#ffd8f8"},
		},
		Palette: Palette{Wall: "#b8d8c8", Floor: "#7a8a72", Ceiling: "#d8ecd8", Accent: "#4ab86a", Glow: "#8affb8"},
		Atmosphere: Atmosphere{FogDensity: 0.07, FogColor: "#a8c4ae", ParticleHint: "pollen"},
		Furniture: []Furniture{
			{Kind: "planting_bed", Position: geom.Vec2{X: -2.8, Y: -4}, Scale: 1.4},
			{Kind: "planting_bed", Position: geom.Vec2{X: 2.8, Y: -4}, Scale: 1.4},
			{Kind: "planting_bed", Position: geom.Vec2{X: -2.8, Y: 1}, Scale: 1.4},
			{Kind: "overgrown_vine", Position: geom.Vec2{X: 4.5, Y: 4}, Scale: 1.8},
			{Kind: "watering_station", Position: geom.Vec2{X: 0, Y: 6.5}, Scale: 1},
		},
		Doorways: []Doorway{
			{Position: geom.Vec2{X: -2, Y: 7.99}, Facing: 1.5708, Width: 1.2, Height: 2.2, WallSegmentIndex: 2, LeadsTo: 16, GlowColor: "#8affb8", Label: "DEEPER"},
		},
		Floor:   SurfaceSpec{Material: "gravel", TileSize: 0.8},
		Ceiling: SurfaceSpec{Material: "glass_pane", TileSize: 1},
	},
}
