// Package config provides YAML-based configuration loading for the
// terminal site: brick game tuning, score persistence, and shell options.
package config

// Config is the root configuration for the terminal site.
type Config struct {
	Field  FieldConfig  `yaml:"field"`
	Paddle PaddleConfig `yaml:"paddle"`
	Ball   BallConfig   `yaml:"ball"`
	Bounce BounceConfig `yaml:"bounce"`
	Bricks BrickConfig  `yaml:"bricks"`
	Loop   LoopConfig   `yaml:"loop"`
	Scores ScoresConfig `yaml:"scores"`
	Shell  ShellConfig  `yaml:"shell"`
}

// FieldConfig defines the playfield dimensions in character cells,
// including the one-cell border on each side.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaddleConfig defines paddle geometry and movement speed.
type PaddleConfig struct {
	Width int     `yaml:"width"`
	Speed float64 `yaml:"speed"` // columns per second
}

// BallConfig defines ball speed limits and the launch velocity used at
// the start of every round.
type BallConfig struct {
	MinSpeed float64 `yaml:"min_speed"` // columns per second
	MaxSpeed float64 `yaml:"max_speed"`
	LaunchVX float64 `yaml:"launch_vx"`
	LaunchVY float64 `yaml:"launch_vy"`
}

// BounceConfig defines paddle deflection and speed boost parameters.
type BounceConfig struct {
	MaxAngleDeg float64 `yaml:"max_angle_deg"` // deflection at the paddle edge
	EdgeZone    float64 `yaml:"edge_zone"`     // |hit| beyond this gets the edge boost
	EdgeBoost   float64 `yaml:"edge_boost"`    // speed multiplier at |hit| = 1
	BrickBoost  float64 `yaml:"brick_boost"`   // per-axis multiplier on brick hits
}

// BrickConfig defines the brick wave layout.
type BrickConfig struct {
	Rows  int `yaml:"rows"`
	Width int `yaml:"width"` // cells per brick
	Gap   int `yaml:"gap"`   // cells between bricks
	Top   int `yaml:"top"`   // first brick row
}

// LoopConfig defines simulation timing.
type LoopConfig struct {
	TickRate        int `yaml:"tick_rate"`          // fixed steps per second
	MaxFrameDeltaMS int `yaml:"max_frame_delta_ms"` // wall-clock delta clamp
}

// ScoresConfig defines high score persistence and display.
type ScoresConfig struct {
	Driver      string `yaml:"driver"` // "json" or "sqlite"
	Path        string `yaml:"path"`
	Cap         int    `yaml:"cap"`     // entries kept on disk
	Display     int    `yaml:"display"` // entries shown on the scoreboard
	NameMax     int    `yaml:"name_max"`
	DefaultName string `yaml:"default_name"`
}

// ShellConfig defines the console shell appearance.
type ShellConfig struct {
	User     string `yaml:"user"`
	Host     string `yaml:"host"`
	BootAnim bool   `yaml:"boot_anim"`
}

// Prompt returns the shell prompt line derived from user and host.
func (s ShellConfig) Prompt() string {
	return s.User + "@" + s.Host + ":~$ "
}
