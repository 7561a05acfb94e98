package app

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/roman-kulish/link-engineering/internal/constants"
	"github.com/roman-kulish/link-engineering/internal/linkbudget"
)

// Budget is an evaluated link budget from the station to the remote
// terminal. Losses and ratios are in dB, powers in dBW.
type Budget struct {
	Scenario *Scenario

	WavelengthM float64
	TxGainDB    float64
	HPBWDeg     float64
	EIRPDBW     float64

	FreeSpaceLossDB   float64
	AtmosphericLossDB float64
	PointingLossDB    float64
	TotalLossDB       float64

	RemoteGOverTDB   float64
	CarrierToNoiseDB float64 // C/N0, dB-Hz
	ModulationLossDB float64
	DataRateLossDB   float64
	EbNoDB           float64
	BitErrorRate     float64
}

// ComputeBudget evaluates the downlink-style budget for a resolved
// scenario.
func ComputeBudget(s *Scenario) (*Budget, error) {
	elevation, err := s.Elevation.Degrees()
	if err != nil {
		return nil, fmt.Errorf("station elevation: %w", err)
	}
	if elevation <= 0 || elevation > 90 {
		return nil, fmt.Errorf("station elevation must be within 0..90 degrees, got %v", elevation)
	}

	b := Budget{
		Scenario:    s,
		WavelengthM: s.Frequency.Wavelength().Meters(),
	}

	diameter := s.Diameter.Meters()
	b.TxGainDB = linkbudget.AntennaGain(s.Efficiency, diameter, b.WavelengthM)
	b.HPBWDeg = linkbudget.HalfPowerBeamwidth(b.WavelengthM, diameter)
	b.EIRPDBW = s.Power.DecibelWatts() + b.TxGainDB

	b.FreeSpaceLossDB = linkbudget.FreeSpaceLoss(s.SlantRange.Meters(), s.Frequency.Hertz())
	b.AtmosphericLossDB = linkbudget.AtmosphericLoss(elevation)
	if s.PointingErrorDeg > 0 {
		b.PointingLossDB = linkbudget.PointingLoss(s.PointingErrorDeg, b.HPBWDeg)
	}
	b.TotalLossDB = b.FreeSpaceLossDB + b.AtmosphericLossDB + b.PointingLossDB

	b.RemoteGOverTDB = linkbudget.GOverT(s.RemoteGain.Decibels(), s.RemoteTempK)
	b.CarrierToNoiseDB = b.EIRPDBW - b.TotalLossDB + b.RemoteGOverTDB - constants.KdBW

	b.ModulationLossDB = linkbudget.ServiceModulationLoss(s.ModulationIndex)
	b.DataRateLossDB = linkbudget.LinToDB(s.DataRateBps)
	b.EbNoDB = linkbudget.TelemetryEbNo(b.CarrierToNoiseDB, b.ModulationLossDB, b.DataRateLossDB)
	if b.EbNoDB >= 0 {
		b.BitErrorRate = linkbudget.BitErrorRate(b.EbNoDB)
	} else {
		b.BitErrorRate = 0.5
	}
	return &b, nil
}

// String renders the budget as a text report.
func (b *Budget) String() string {
	s := b.Scenario
	freq, suffix := humanize.ComputeSI(s.Frequency.Hertz())
	rate, rateSuffix := humanize.ComputeSI(s.DataRateBps)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Link budget: %s\n", s.Name)
	fmt.Fprintf(&sb, "  Carrier\t\t%.3f %sHz (wavelength %.4f m)\n", freq, suffix, b.WavelengthM)
	fmt.Fprintf(&sb, "  Dish\t\t\t%.1f m at %.0f%% efficiency\n", s.Diameter.Meters(), s.Efficiency*100)
	fmt.Fprintf(&sb, "  Antenna gain\t\t%.2f dBi (HPBW %.2f deg)\n", b.TxGainDB, b.HPBWDeg)
	fmt.Fprintf(&sb, "  Transmit power\t%.2f dBW\n", s.Power.DecibelWatts())
	fmt.Fprintf(&sb, "  EIRP\t\t\t%.2f dBW\n", b.EIRPDBW)
	fmt.Fprintf(&sb, "  Slant range\t\t%.1f km\n", s.SlantRange.Kilometers())
	fmt.Fprintf(&sb, "  Free space loss\t%.2f dB\n", b.FreeSpaceLossDB)
	fmt.Fprintf(&sb, "  Atmospheric loss\t%.2f dB\n", b.AtmosphericLossDB)
	if b.PointingLossDB != 0 {
		fmt.Fprintf(&sb, "  Pointing loss\t\t%.2f dB\n", b.PointingLossDB)
	}
	fmt.Fprintf(&sb, "  Remote G/T\t\t%.2f dB/K\n", b.RemoteGOverTDB)
	fmt.Fprintf(&sb, "  C/N0\t\t\t%.2f dB-Hz\n", b.CarrierToNoiseDB)
	fmt.Fprintf(&sb, "  Modulation loss\t%.2f dB\n", b.ModulationLossDB)
	fmt.Fprintf(&sb, "  Data rate\t\t%.3g %sbps (%.2f dB)\n", rate, rateSuffix, b.DataRateLossDB)
	fmt.Fprintf(&sb, "  Eb/N0\t\t\t%.2f dB\n", b.EbNoDB)
	fmt.Fprintf(&sb, "  BER\t\t\t%.3g\n", b.BitErrorRate)
	return sb.String()
}
