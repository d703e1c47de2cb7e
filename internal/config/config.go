package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Conjugation engines.
const (
	EngineSarf     = "sarf"     // built-in rule-based conjugator
	EngineFallback = "fallback" // synthetic forms only
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env         string      `mapstructure:"env"`         // current application environment (local, production etc)
	Quiz        Quiz        `mapstructure:"quiz"`        // quiz behaviour
	UI          UI          `mapstructure:"ui"`          // window and fonts
	Text        Text        `mapstructure:"text"`        // Arabic shaping
	Conjugation Conjugation `mapstructure:"conjugation"` // conjugation provider
	Log         Log         `mapstructure:"log"`         // logger overrides
}

// Log overrides the logger preset chosen by Env.
type Log struct {
	Level string `mapstructure:"level"` // debug, info, warn, error; empty keeps the preset
}

// Quiz contains the starting values of the quiz settings.
type Quiz struct {
	TestLength     int  `mapstructure:"test_length"`     // questions per test
	ScoringEnabled bool `mapstructure:"scoring_enabled"` // count correct answers
	ShowHint       bool `mapstructure:"show_hint"`       // show the hint line
}

// UI contains window and font parameters.
type UI struct {
	FontSize     int    `mapstructure:"font_size"`     // initial font size in points
	MinFontSize  int    `mapstructure:"min_font_size"` // smallest selectable size
	MaxFontSize  int    `mapstructure:"max_font_size"` // largest selectable size
	FontSizes    []int  `mapstructure:"font_sizes"`    // sizes offered in the font selector
	FontPath     string `mapstructure:"font_path"`     // optional TTF with Arabic glyphs
	WindowWidth  int    `mapstructure:"window_width"`
	WindowHeight int    `mapstructure:"window_height"`
}

// Text contains the Arabic text shaping switches.
type Text struct {
	Shape       bool `mapstructure:"shape"`        // join letters and reorder right-to-left text
	KeepHarakat bool `mapstructure:"keep_harakat"` // keep vowel marks when shaping
}

// Conjugation selects the conjugation provider.
type Conjugation struct {
	Engine string `mapstructure:"engine"` // "sarf" or "fallback"
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Load .env if present; real environment variables take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	setDefaults(v)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("conjugation.engine", "CONJUGATION_ENGINE", "SARF_ENGINE")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("quiz.test_length", 10)
	v.SetDefault("quiz.scoring_enabled", true)
	v.SetDefault("quiz.show_hint", false)
	v.SetDefault("ui.font_size", 16)
	v.SetDefault("ui.min_font_size", 10)
	v.SetDefault("ui.max_font_size", 32)
	v.SetDefault("ui.font_sizes", []int{12, 14, 16, 18, 20, 24, 28, 32})
	v.SetDefault("ui.font_path", "")
	v.SetDefault("ui.window_width", 640)
	v.SetDefault("ui.window_height", 600)
	v.SetDefault("text.shape", true)
	v.SetDefault("text.keep_harakat", true)
	v.SetDefault("conjugation.engine", EngineSarf)
	v.SetDefault("log.level", "")
}

// Validate checks value ranges and the engine name.
func (c *Config) Validate() error {
	c.Conjugation.Engine = strings.ToLower(strings.TrimSpace(c.Conjugation.Engine))

	switch {
	case c.Quiz.TestLength <= 0:
		return fmt.Errorf("quiz.test_length must be positive, got %d: %w", c.Quiz.TestLength, ErrInvalidConfig)
	case c.UI.MinFontSize <= 0 || c.UI.MaxFontSize < c.UI.MinFontSize:
		return fmt.Errorf("font size range %d..%d: %w", c.UI.MinFontSize, c.UI.MaxFontSize, ErrInvalidConfig)
	case c.UI.WindowWidth <= 0 || c.UI.WindowHeight <= 0:
		return fmt.Errorf("window size %dx%d: %w", c.UI.WindowWidth, c.UI.WindowHeight, ErrInvalidConfig)
	case c.Conjugation.Engine != EngineSarf && c.Conjugation.Engine != EngineFallback:
		return fmt.Errorf("unknown conjugation engine %q: %w", c.Conjugation.Engine, ErrInvalidConfig)
	}

	return nil
}
