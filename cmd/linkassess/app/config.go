package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roman-kulish/link-engineering/internal/linkbudget"
	"github.com/roman-kulish/link-engineering/internal/safety"
	"github.com/roman-kulish/link-engineering/internal/units"
)

const (
	ImagePNG  = "png"
	ImageJPEG = "jpeg"
)

type ImageFormat string

var validImageFormats = map[ImageFormat]struct{}{
	ImagePNG:  {},
	ImageJPEG: {},
}

// Config is the YAML scenario file. Quantities are declared through the
// units spec blocks, so each accepts exactly one unit key.
type Config struct {
	Settings Settings     `yaml:"settings"`
	Station  Station      `yaml:"station"`
	Link     Link         `yaml:"link"`
	Chart    *ChartConfig `yaml:"chart"`
}

// Settings holds global application settings.
type Settings struct {
	LogLevel string `yaml:"logLevel"`
}

// Station describes the transmitting ground station.
type Station struct {
	Name             string              `yaml:"name"`
	Diameter         units.DistanceSpec  `yaml:"diameter"`
	Efficiency       float64             `yaml:"efficiency"`
	Frequency        units.FrequencySpec `yaml:"frequency"`
	Power            units.PowerSpec     `yaml:"power"`
	Elevation        units.AngleSpec     `yaml:"elevation"`
	PointingErrorDeg float64             `yaml:"pointingErrorDeg"`
}

// Link describes the path and the distant terminal.
type Link struct {
	SlantRange      units.DistanceSpec `yaml:"slantRange"`
	Remote          Remote             `yaml:"remote"`
	ModulationIndex float64            `yaml:"modulationIndex"`
	DataRateBps     float64            `yaml:"dataRateBps"`
}

// Remote describes the receiving terminal: its antenna gain and either an
// explicit system noise temperature or a receive chain to cascade.
type Remote struct {
	Gain              units.GainSpec         `yaml:"gain"`
	SystemTemperature *units.TemperatureSpec `yaml:"systemTemperature"`
	Devices           []DeviceConfig         `yaml:"devices"`
}

// DeviceConfig is one element of a receive chain. Exactly one of
// temperature or noiseFigure must be given.
type DeviceConfig struct {
	Name          string   `yaml:"name"`
	GainDb        float64  `yaml:"gainDb"`
	TemperatureK  *float64 `yaml:"temperatureK"`
	NoiseFigureDb *float64 `yaml:"noiseFigureDb"`
}

// ChartConfig enables the exposure profile image.
type ChartConfig struct {
	OutputFile string `yaml:"outputFile"`
	Format     string `yaml:"format"`
	FontPath   string `yaml:"fontPath"`
	Theme      string `yaml:"theme"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
}

// LoadConfig reads and parses the scenario file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &c, nil
}

// SlogLevel maps the configured log level name onto a slog level. An
// empty name means info.
func (s Settings) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(s.LogLevel) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s.LogLevel)
	}
}

// Scenario is the resolved form of a Config: every quantity constructed,
// every shape constraint checked.
type Scenario struct {
	Name             string
	Diameter         units.Distance[float64]
	Efficiency       float64
	Frequency        units.Frequency[float64]
	Power            units.Power[float64]
	Elevation        units.Angle[float64]
	PointingErrorDeg float64

	SlantRange      units.Distance[float64]
	RemoteGain      units.Gain[float64]
	RemoteTempK     float64
	RemoteDevices   []linkbudget.Device
	ModulationIndex float64
	DataRateBps     float64

	Chart *ChartConfig
}

// Resolve validates the configuration and constructs the quantities.
func (c *Config) Resolve() (*Scenario, error) {
	s := Scenario{
		Name:             c.Station.Name,
		Efficiency:       c.Station.Efficiency,
		PointingErrorDeg: c.Station.PointingErrorDeg,
		ModulationIndex:  c.Link.ModulationIndex,
		DataRateBps:      c.Link.DataRateBps,
		Chart:            c.Chart,
	}

	var err error
	if s.Diameter, err = c.Station.Diameter.Resolve(); err != nil {
		return nil, fmt.Errorf("station diameter: %w", err)
	}
	if s.Frequency, err = c.Station.Frequency.Resolve(); err != nil {
		return nil, fmt.Errorf("station frequency: %w", err)
	}
	if s.Power, err = c.Station.Power.Resolve(); err != nil {
		return nil, fmt.Errorf("station power: %w", err)
	}
	if s.Elevation, err = c.Station.Elevation.Resolve(); err != nil {
		return nil, fmt.Errorf("station elevation: %w", err)
	}
	if s.SlantRange, err = c.Link.SlantRange.Resolve(); err != nil {
		return nil, fmt.Errorf("link slant range: %w", err)
	}
	if s.RemoteGain, err = c.Link.Remote.Gain.Resolve(); err != nil {
		return nil, fmt.Errorf("remote gain: %w", err)
	}

	if s.RemoteTempK, s.RemoteDevices, err = resolveReceiver(c.Link.Remote); err != nil {
		return nil, fmt.Errorf("remote receiver: %w", err)
	}

	if s.Efficiency < 0 || s.Efficiency > 1 {
		return nil, fmt.Errorf("station efficiency must be within 0..1, got %v", s.Efficiency)
	}
	if s.Efficiency == 0 {
		s.Efficiency = safety.DefaultEfficiency
	}

	if s.DataRateBps <= 0 {
		return nil, fmt.Errorf("link dataRateBps must be positive, got %v", s.DataRateBps)
	}
	if s.ModulationIndex <= 0 {
		return nil, fmt.Errorf("link modulationIndex must be positive, got %v", s.ModulationIndex)
	}

	if c.Chart != nil {
		if err := validateChart(c.Chart); err != nil {
			return nil, fmt.Errorf("chart: %w", err)
		}
	}
	return &s, nil
}

// resolveReceiver picks the system noise temperature: explicit when
// given, otherwise a Friis cascade of the configured receive chain.
func resolveReceiver(r Remote) (float64, []linkbudget.Device, error) {
	if r.SystemTemperature != nil {
		if len(r.Devices) != 0 {
			return 0, nil, fmt.Errorf("supply either systemTemperature or devices, not both")
		}
		t, err := r.SystemTemperature.Resolve()
		if err != nil {
			return 0, nil, err
		}
		return t.Kelvin(), nil, nil
	}

	if len(r.Devices) == 0 {
		return 0, nil, fmt.Errorf("a systemTemperature or a receive chain is required")
	}

	devices := make([]linkbudget.Device, 0, len(r.Devices))
	for _, dc := range r.Devices {
		switch {
		case dc.TemperatureK != nil && dc.NoiseFigureDb != nil:
			return 0, nil, fmt.Errorf("device %q: supply either temperatureK or noiseFigureDb, not both", dc.Name)
		case dc.TemperatureK != nil:
			devices = append(devices, linkbudget.NewDeviceFromTemperature(dc.Name, dc.GainDb, *dc.TemperatureK))
		case dc.NoiseFigureDb != nil:
			devices = append(devices, linkbudget.NewDeviceFromNoiseFigure(dc.Name, dc.GainDb, *dc.NoiseFigureDb))
		default:
			return 0, nil, fmt.Errorf("device %q: a temperatureK or noiseFigureDb is required", dc.Name)
		}
	}
	return cascadeTemperature(devices), devices, nil
}

// cascadeTemperature is the Friis cascade of a receive chain: each
// stage's noise contribution is divided by the gain ahead of it.
func cascadeTemperature(devices []linkbudget.Device) float64 {
	var total, gain float64
	gain = 1
	for _, d := range devices {
		total += d.TemperatureK / gain
		gain *= linkbudget.DBToLin(d.GainDB)
	}
	return total
}

func validateChart(c *ChartConfig) error {
	if c.OutputFile == "" {
		return fmt.Errorf("outputFile is required")
	}
	format := ImageFormat(strings.ToLower(c.Format))
	if format == "" {
		format = ImagePNG
	}
	if _, ok := validImageFormats[format]; !ok {
		return fmt.Errorf("invalid image format: %s", c.Format)
	}
	c.Format = string(format)
	if c.FontPath == "" {
		return fmt.Errorf("fontPath is required for chart annotations")
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("width and height must not be negative")
	}
	return nil
}
