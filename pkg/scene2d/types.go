package scene2d

// Scene2D is the complete 2D scene output for a top-down renderer.
type Scene2D struct {
	Metadata       Metadata          `json:"metadata"`
	Roads          RoadCollection    `json:"roads"`
	Buildings      []Building2D      `json:"buildings"`
	Trees          []Tree2D          `json:"trees"`
	Markings       []Marking2D       `json:"markings"`
	ControlCenters []ControlCenter2D `json:"control_centers"`
}

// Metadata identifies the generation run the scene was taken from.
type Metadata struct {
	RunID        string         `json:"run_id"`
	GraphHash    string         `json:"graph_hash"`
	PointCount   int            `json:"point_count"`
	SegmentCount int            `json:"segment_count"`
	Bounds       *[2][2]float64 `json:"bounds,omitempty"`
	GeneratedAt  string         `json:"generated_at"`
}

// RoadCollection groups the road-derived line work.
type RoadCollection struct {
	Skeleton   []Line2D       `json:"skeleton"`
	Envelopes  [][][2]float64 `json:"envelopes"`
	Borders    []Line2D       `json:"borders"`
	LaneGuides []Line2D       `json:"lane_guides"`
}

// Line2D is a single segment.
type Line2D struct {
	Start  [2]float64 `json:"start"`
	End    [2]float64 `json:"end"`
	OneWay bool       `json:"one_way,omitempty"`
}

// Building2D is a building footprint.
type Building2D struct {
	Base   [][2]float64 `json:"base"`
	Height float64      `json:"height"`
}

// Tree2D is a placed tree.
type Tree2D struct {
	Center            [2]float64   `json:"center"`
	Size              float64      `json:"size"`
	HeightCoefficient float64      `json:"height_coefficient"`
	LevelCount        int          `json:"level_count"`
	Base              [][2]float64 `json:"base"`
}

// Marking2D is a road marking with its footprint.
type Marking2D struct {
	Kind      string       `json:"kind"`
	Center    [2]float64   `json:"center"`
	Direction [2]float64   `json:"direction"`
	Polygon   [][2]float64 `json:"polygon"`
	State     string       `json:"state,omitempty"`
}

// ControlCenter2D is one intersection's light controller.
type ControlCenter2D struct {
	Center      [2]float64 `json:"center"`
	CurrentTick int        `json:"current_tick"`
	CycleTicks  int        `json:"cycle_ticks"`
	States      []string   `json:"states"`
}
