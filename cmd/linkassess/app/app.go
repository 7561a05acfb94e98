package app

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"

	"github.com/roman-kulish/link-engineering/internal/safety"
)

const jpegQuality = 90

// Run evaluates the scenario and writes the reports to stdout, plus the
// exposure chart when one is configured.
func Run(ctx context.Context, config *Config, logger *slog.Logger) error {
	scenario, err := config.Resolve()
	if err != nil {
		return fmt.Errorf("resolving scenario: %w", err)
	}

	logger.Info("evaluating link budget",
		slog.String("station", scenario.Name),
		slog.Float64("frequencyHz", scenario.Frequency.Hertz()),
		slog.Float64("slantRangeKm", scenario.SlantRange.Kilometers()))

	budget, err := ComputeBudget(scenario)
	if err != nil {
		return fmt.Errorf("computing link budget: %w", err)
	}
	fmt.Println(budget)

	report, err := safety.Evaluate(safety.Params{
		Diameter:   scenario.Diameter,
		Frequency:  scenario.Frequency,
		Power:      scenario.Power,
		Efficiency: scenario.Efficiency,
	})
	if err != nil {
		return fmt.Errorf("evaluating transmit safety: %w", err)
	}
	fmt.Println(report)

	if scenario.Chart == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return renderChart(report, scenario.Chart, logger)
}

func renderChart(report *safety.Report, config *ChartConfig, logger *slog.Logger) error {
	chart, err := NewExposureChart(report, config)
	if err != nil {
		return fmt.Errorf("creating exposure chart: %w", err)
	}
	defer chart.Close()

	img, err := chart.Render()
	if err != nil {
		return fmt.Errorf("rendering exposure chart: %w", err)
	}

	if err := writeImage(img, config.OutputFile, ImageFormat(config.Format)); err != nil {
		return fmt.Errorf("writing exposure chart: %w", err)
	}

	logger.Info("exposure chart written",
		slog.String("path", config.OutputFile),
		slog.String("format", config.Format))
	return nil
}

func writeImage(img *image.RGBA, path string, format ImageFormat) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	switch format {
	case ImageJPEG:
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return f.Close()
}
