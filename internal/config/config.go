// Package config loads the color threshold file that drives segmentation,
// plus the optional pen and tracking settings stored alongside it.
//
// The file is JSON:
//
//	{
//	  "limits": {
//	    "B": {"min": 0, "max": 80},
//	    "G": {"min": 120, "max": 255},
//	    "R": {"min": 0, "max": 80}
//	  },
//	  "pen": {"color": "#FF0000", "size": 10},
//	  "max_jump": 120,
//	  "blur_radius": 1.5,
//	  "mirror": true
//	}
//
// Only "limits" is required.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ironsheep/airpaint/internal/canvas"
	"github.com/ironsheep/airpaint/internal/imaging"
)

// ErrInvalidConfig marks every configuration failure. Callers treat it as
// fatal before the session starts.
var ErrInvalidConfig = errors.New("invalid configuration")

// Channels lists the required keys of the "limits" object.
var Channels = []string{"B", "G", "R"}

// Range is an inclusive channel bound pair. Both ends are required, so
// they decode as pointers to tell a missing key from zero.
type Range struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

// PenConfig sets the pen the session starts with.
type PenConfig struct {
	Color string `json:"color,omitempty"`
	Size  int    `json:"size,omitempty"`
}

// Config is the decoded configuration file.
type Config struct {
	Limits map[string]Range `json:"limits"`
	Pen    PenConfig        `json:"pen"`

	// MaxJump is the longest segment, in pixels, drawn when shake
	// prevention is enabled. Zero disables the distance gate.
	MaxJump float64 `json:"max_jump"`

	// BlurRadius is the Gaussian pre-blur applied before thresholding.
	BlurRadius float64 `json:"blur_radius"`

	// Mirror flips camera frames horizontally. Defaults to true.
	Mirror *bool `json:"mirror,omitempty"`
}

// Load reads and validates the configuration at path. Every failure wraps
// ErrInvalidConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the limits and optional settings, normalizing channel
// keys to upper case. Unlike the optional settings, a bad limit is never
// repaired.
func (c *Config) Validate() error {
	limits := make(map[string]Range, len(c.Limits))
	for k, v := range c.Limits {
		limits[strings.ToUpper(k)] = v
	}
	for _, ch := range Channels {
		r, ok := limits[ch]
		if !ok {
			return fmt.Errorf("%w: limits.%s is missing", ErrInvalidConfig, ch)
		}
		if r.Min == nil || r.Max == nil {
			return fmt.Errorf("%w: limits.%s needs both min and max", ErrInvalidConfig, ch)
		}
		if err := checkByte(ch, "min", *r.Min); err != nil {
			return err
		}
		if err := checkByte(ch, "max", *r.Max); err != nil {
			return err
		}
		if *r.Min > *r.Max {
			return fmt.Errorf("%w: limits.%s min %d exceeds max %d", ErrInvalidConfig, ch, *r.Min, *r.Max)
		}
	}
	c.Limits = limits

	if c.Pen.Color != "" {
		if _, err := imaging.ParseHexColor(c.Pen.Color); err != nil {
			return fmt.Errorf("%w: pen.color: %w", ErrInvalidConfig, err)
		}
	}
	if c.Pen.Size != 0 && (c.Pen.Size < canvas.MinSize || c.Pen.Size > canvas.MaxSize) {
		return fmt.Errorf("%w: pen.size %d outside [%d, %d]", ErrInvalidConfig, c.Pen.Size, canvas.MinSize, canvas.MaxSize)
	}
	if c.MaxJump < 0 {
		return fmt.Errorf("%w: max_jump must not be negative", ErrInvalidConfig)
	}
	if c.BlurRadius < 0 {
		return fmt.Errorf("%w: blur_radius must not be negative", ErrInvalidConfig)
	}
	return nil
}

func checkByte(ch, end string, v int) error {
	if v < 0 || v > 255 {
		return fmt.Errorf("%w: limits.%s.%s %d outside [0, 255]", ErrInvalidConfig, ch, end, v)
	}
	return nil
}

// Thresholds converts validated limits into segmentation bounds.
func (c *Config) Thresholds() imaging.Thresholds {
	get := func(ch string) imaging.ChannelRange {
		r := c.Limits[ch]
		var out imaging.ChannelRange
		if r.Min != nil {
			out.Min = uint8(*r.Min)
		}
		if r.Max != nil {
			out.Max = uint8(*r.Max)
		}
		return out
	}
	return imaging.Thresholds{R: get("R"), G: get("G"), B: get("B")}
}

// StartPen returns the configured initial pen, falling back to the
// default red 10 px pen for unset fields.
func (c *Config) StartPen() canvas.Pen {
	pen := canvas.DefaultPen()
	if c.Pen.Color != "" {
		if col, err := imaging.ParseHexColor(c.Pen.Color); err == nil {
			pen.Color = col
		}
	}
	if c.Pen.Size != 0 {
		pen.Size = canvas.ClampSize(c.Pen.Size)
	}
	return pen
}

// MirrorFrames reports whether camera frames are flipped before use.
func (c *Config) MirrorFrames() bool {
	return c.Mirror == nil || *c.Mirror
}

// PrepareOptions returns the frame preparation settings.
func (c *Config) PrepareOptions() imaging.PrepareOptions {
	return imaging.PrepareOptions{Mirror: c.MirrorFrames(), BlurRadius: c.BlurRadius}
}
