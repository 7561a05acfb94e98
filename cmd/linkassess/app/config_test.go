package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const scenarioYAML = `
settings:
  logLevel: debug
station:
  name: test station
  diameter:
    meters: 13
  efficiency: 0.53
  frequency:
    megahertz: 1791.748
  power:
    watts: 300
  elevation:
    degrees: 25
link:
  slantRange:
    kilometers: 550
  modulationIndex: 1.0
  dataRateBps: 1000000
  remote:
    gain:
      decibels: 10
    systemTemperature:
      kelvin: 290
`

func writeScenario(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing scenario: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	level, err := config.Settings.SlogLevel()
	if err != nil {
		t.Fatalf("SlogLevel: %v", err)
	}
	if level != slog.LevelDebug {
		t.Errorf("level = %v, want debug", level)
	}

	s, err := config.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	within(t, "diameter", s.Diameter.Meters(), 13, 0)
	within(t, "frequency", s.Frequency.Megahertz(), 1791.748, 0)
	within(t, "power", s.Power.Watts(), 300, 0)
	within(t, "slant range", s.SlantRange.Kilometers(), 550, 0)
	within(t, "remote gain", s.RemoteGain.Decibels(), 10, 0)
	within(t, "remote temperature", s.RemoteTempK, 290, 0)
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestResolveRejectsAmbiguousQuantity(t *testing.T) {
	doc := strings.Replace(scenarioYAML, "    megahertz: 1791.748",
		"    megahertz: 1791.748\n    gigahertz: 1.791748", 1)

	config, err := LoadConfig(writeScenario(t, doc))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if _, err := config.Resolve(); err == nil {
		t.Fatal("two frequency units accepted")
	}
}

func TestResolveDefaultsEfficiency(t *testing.T) {
	doc := strings.Replace(scenarioYAML, "  efficiency: 0.53\n", "", 1)

	config, err := LoadConfig(writeScenario(t, doc))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	s, err := config.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	within(t, "efficiency", s.Efficiency, 0.53, 0)
}

func TestResolveReceiverCascade(t *testing.T) {
	doc := strings.Replace(scenarioYAML, `    systemTemperature:
      kelvin: 290`, `    devices:
      - name: LNA
        gainDb: 30
        temperatureK: 35
      - name: mixer
        gainDb: -6
        noiseFigureDb: 8`, 1)

	config, err := LoadConfig(writeScenario(t, doc))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	s, err := config.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(s.RemoteDevices) != 2 {
		t.Fatalf("RemoteDevices has %d entries, want 2", len(s.RemoteDevices))
	}
	within(t, "cascade temperature", s.RemoteTempK, 36.539776298992564, 1e-9)
}

func TestResolveReceiverValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			"no noise source",
			strings.Replace(scenarioYAML, `    systemTemperature:
      kelvin: 290`, "", 1),
		},
		{
			"device without noise",
			strings.Replace(scenarioYAML, `    systemTemperature:
      kelvin: 290`, `    devices:
      - name: LNA
        gainDb: 30`, 1),
		},
		{
			"device with both",
			strings.Replace(scenarioYAML, `    systemTemperature:
      kelvin: 290`, `    devices:
      - name: LNA
        gainDb: 30
        temperatureK: 35
        noiseFigureDb: 0.5`, 1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfig(writeScenario(t, tt.doc))
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}
			if _, err := config.Resolve(); err == nil {
				t.Fatal("invalid receiver accepted")
			}
		})
	}
}

func TestValidateChart(t *testing.T) {
	doc := scenarioYAML + `
chart:
  outputFile: /tmp/profile
  format: bmp
  fontPath: /tmp/font.ttf
`
	config, err := LoadConfig(writeScenario(t, doc))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if _, err := config.Resolve(); err == nil {
		t.Fatal("invalid image format accepted")
	}
}

func TestSlogLevelRejectsUnknown(t *testing.T) {
	if _, err := (Settings{LogLevel: "chatty"}).SlogLevel(); err == nil {
		t.Fatal("unknown log level accepted")
	}
}
