// Package config loads the settings of the graph commands from an optional
// configuration file and GRAPH_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/midbel/graph"
	"github.com/spf13/viper"
)

const EnvPrefix = "GRAPH"

type Config struct {
	Width     float64 `mapstructure:"width"`
	Height    float64 `mapstructure:"height"`
	FontSize  float64 `mapstructure:"font_size"`
	Margins   Margins `mapstructure:"margins"`
	Gutter    Gutter  `mapstructure:"gutter"`
	XAxis     Axis    `mapstructure:"x_axis"`
	YAxis     Axis    `mapstructure:"y_axis"`
	Logging   Logging `mapstructure:"logging"`
	Server    Server  `mapstructure:"server"`
	Palette   string  `mapstructure:"palette"`
	Curve     string  `mapstructure:"curve"`
	TimeInput string  `mapstructure:"time_input"`
}

type Margins struct {
	Top    float64 `mapstructure:"top"`
	Right  float64 `mapstructure:"right"`
	Bottom float64 `mapstructure:"bottom"`
	Left   float64 `mapstructure:"left"`
}

type Gutter struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

type Axis struct {
	MinSpacing    float64 `mapstructure:"min_spacing"`
	MaxDivisions  int     `mapstructure:"max_divisions"`
	Subdivisions  int     `mapstructure:"subdivisions"`
	MinSubSpacing float64 `mapstructure:"min_sub_spacing"`
	LabelPadding  float64 `mapstructure:"label_padding"`
	Precision     int     `mapstructure:"precision"`
	TimeFormat    string  `mapstructure:"time_format"`
}

type Logging struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	Console    bool   `mapstructure:"console"`
}

type Server struct {
	Addr string `mapstructure:"addr"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("width", 800)
	v.SetDefault("height", 600)
	v.SetDefault("font_size", graph.FontSize)
	v.SetDefault("palette", "category10")
	v.SetDefault("curve", "line")
	v.SetDefault("time_input", "%Y-%m-%d")
	for _, side := range []string{"top", "right", "bottom", "left"} {
		v.SetDefault("margins."+side, 12)
	}
	v.SetDefault("gutter.x", 20)
	v.SetDefault("gutter.y", 20)
	for _, axis := range []string{"x_axis", "y_axis"} {
		v.SetDefault(axis+".min_spacing", graph.DefaultMinSpacing)
		v.SetDefault(axis+".max_divisions", 10)
		v.SetDefault(axis+".subdivisions", 5)
		v.SetDefault(axis+".min_sub_spacing", graph.DefaultMinSubSpacing)
		v.SetDefault(axis+".label_padding", graph.DefaultLabelPadding)
		v.SetDefault(axis+".precision", graph.DefaultPrecision)
		v.SetDefault(axis+".time_format", "%Y-%m-%d")
	}
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.max_size", 2)
	v.SetDefault("logging.max_backups", 30)
	v.SetDefault("logging.console", true)
	v.SetDefault("server.addr", ":8080")
}

// Default returns the configuration used without file nor environment.
func Default() Config {
	cfg, _ := load(viper.New(), "")
	return cfg
}

// Load reads the configuration file, when given, on top of the defaults.
// Environment variables such as GRAPH_WIDTH or GRAPH_X_AXIS_MAX_DIVISIONS
// take precedence over both.
func Load(file string) (Config, error) {
	return load(viper.New(), file)
}

func load(v *viper.Viper, file string) (Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("negative chart size %gx%g", c.Width, c.Height))
	}
	if _, err := graph.ParseCurve(c.Curve); err != nil {
		errs = append(errs, err)
	}
	for name, a := range map[string]Axis{"x_axis": c.XAxis, "y_axis": c.YAxis} {
		if a.MaxDivisions == 0 {
			errs = append(errs, fmt.Errorf("%s: max_divisions must be positive or -1", name))
		}
		if _, err := graph.ParseTimeFormat(a.TimeFormat); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Settings converts the configuration into chart settings.
func (c Config) Settings() graph.Settings {
	curve, _ := graph.ParseCurve(c.Curve)
	return graph.Settings{
		Padding: graph.Padding{
			Top:    c.Margins.Top,
			Right:  c.Margins.Right,
			Bottom: c.Margins.Bottom,
			Left:   c.Margins.Left,
		},
		Gutter: graph.Bounds{
			X: c.Gutter.X,
			Y: c.Gutter.Y,
		},
		X:     c.XAxis.settings(),
		Y:     c.YAxis.settings(),
		Curve: curve,
	}
}

func (c Config) Measurer() graph.Measurer {
	return graph.FontMetrics{Size: c.FontSize}
}

func (c Config) Colors() graph.Palette {
	if strings.EqualFold(c.Palette, "tableau10") {
		return graph.Tableau10
	}
	return graph.Category10
}

func (a Axis) settings() graph.AxisSettings {
	return graph.AxisSettings{
		MinSpacing:    a.MinSpacing,
		MaxDivisions:  a.MaxDivisions,
		Subdivisions:  a.Subdivisions,
		MinSubSpacing: a.MinSubSpacing,
		LabelPadding:  a.LabelPadding,
		Format: graph.Formatter{
			Precision:  a.Precision,
			TimeFormat: a.TimeFormat,
		},
	}
}
