package utils

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Seeding modes
const (
	ModePrompt  = "prompt"
	ModeRandom  = "random"
	ModeFile    = "file"
	ModePattern = "pattern"
)

// Renderers
const (
	RendererText   = "text"
	RendererScreen = "screen"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Size           int           `json:"size"`
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`
	Mode           string        `json:"mode"`
	SeedFile       string        `json:"seed_file"`
	Pattern        string        `json:"pattern"`
	Seed           int64         `json:"seed"`
	Strict         bool          `json:"strict"`
	Renderer       string        `json:"renderer"`
	NoClear        bool          `json:"no_clear"`
	ShowStats      bool          `json:"show_stats"`
}

// DefaultConfig returns the reference setup: a 30x30 board advancing every 2 seconds until interrupted
func DefaultConfig() Config {
	return Config{
		Size:           30,
		FrameRate:      2 * time.Second,
		MaxGenerations: 0, // run until interrupted
		Mode:           ModePrompt,
		Renderer:       RendererText,
		ShowStats:      true,
	}
}

// UnmarshalJSON accepts frame_rate as a duration string such as "2s"
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	aux := struct {
		*plain
		FrameRate string `json:"frame_rate"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.FrameRate == "" {
		return nil
	}
	d, err := time.ParseDuration(aux.FrameRate)
	if err != nil {
		return errors.Wrapf(err, "[Config.UnmarshalJSON] bad frame_rate %q", aux.FrameRate)
	}
	c.FrameRate = d
	return nil
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "width and height of the board")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after N generations (0 = run until interrupted)")
	fs.StringVar(&c.Mode, "mode", c.Mode, "seeding mode: prompt, random, file or pattern")
	fs.StringVar(&c.SeedFile, "seed-file", c.SeedFile, "board file for -mode=file ('-' reads stdin)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern for -mode=pattern: block, blinker or glider")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed for -mode=random (0 = unseeded)")
	fs.BoolVar(&c.Strict, "strict", c.Strict, "reject malformed board lines instead of ignoring them")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "output: text or screen")
	fs.BoolVar(&c.NoClear, "no-clear", c.NoClear, "do not clear the terminal between frames (text renderer)")
	fs.BoolVar(&c.ShowStats, "stats", c.ShowStats, "show population and performance lines")
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] size must be positive, got %d", c.Size)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] frame rate must not be negative, got %s", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] max generations must not be negative, got %d", c.MaxGenerations)
	}

	switch c.Mode {
	case ModePrompt, ModeRandom:
	case ModeFile:
		if c.SeedFile == "" {
			return errors.Wrap(ErrInvalidConfig, "[Config.Validate] mode file needs a seed file")
		}
	case ModePattern:
		if c.Pattern == "" {
			return errors.Wrap(ErrInvalidConfig, "[Config.Validate] mode pattern needs a pattern name")
		}
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] unknown mode %q", c.Mode)
	}

	if c.Renderer != RendererText && c.Renderer != RendererScreen {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] unknown renderer %q", c.Renderer)
	}
	return nil
}

// ParseArgs builds a Config from defaults, then the -config file if given, then the remaining flags
func ParseArgs(name string, args []string, output io.Writer) (Config, error) {
	var path string
	config := DefaultConfig()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&path, "config", "", "JSON configuration file")
	config.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseArgs] failed to parse flags")
	}

	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return config, err
		}

		// flags given on the command line override the file
		config = loaded
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		fs.String("config", "", "")
		config.Bind(fs)
		if err = fs.Parse(args); err != nil {
			return config, errors.Wrap(err, "[ParseArgs] failed to parse flags")
		}
	}

	return config, config.Validate()
}
