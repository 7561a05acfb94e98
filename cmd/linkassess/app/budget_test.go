package app

import (
	"math"
	"strings"
	"testing"

	"github.com/roman-kulish/link-engineering/internal/units"
)

func within(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (tolerance %v)", name, got, want, tol)
	}
}

func testScenario() *Scenario {
	return &Scenario{
		Name:            "test station",
		Diameter:        units.Meters(13.0),
		Efficiency:      0.53,
		Frequency:       units.Megahertz(1791.748),
		Power:           units.Watts(300.0),
		Elevation:       units.Degrees(25.0),
		SlantRange:      units.Kilometers(550.0),
		RemoteGain:      units.Decibels(10.0),
		RemoteTempK:     290.0,
		ModulationIndex: 1.0,
		DataRateBps:     1e6,
	}
}

func TestComputeBudget(t *testing.T) {
	b, err := ComputeBudget(testScenario())
	if err != nil {
		t.Fatalf("ComputeBudget: %v", err)
	}

	within(t, "TxGainDB", b.TxGainDB, 44.99374770486904, 1e-9)
	within(t, "HPBWDeg", b.HPBWDeg, 0.9009453793382002, 1e-12)
	within(t, "EIRPDBW", b.EIRPDBW, 69.76496025206566, 1e-9)
	within(t, "FreeSpaceLossDB", b.FreeSpaceLossDB, 152.32057557916852, 1e-9)
	within(t, "AtmosphericLossDB", b.AtmosphericLossDB, 0.1703333929878037, 1e-12)
	within(t, "PointingLossDB", b.PointingLossDB, 0, 0)
	within(t, "RemoteGOverTDB", b.RemoteGOverTDB, -14.62397997898956, 1e-9)
	within(t, "CarrierToNoiseDB", b.CarrierToNoiseDB, 131.24917130091978, 1e-8)
	within(t, "ModulationLossDB", b.ModulationLossDB, -9.485840015920083, 1e-9)
	within(t, "DataRateLossDB", b.DataRateLossDB, 60.0, 1e-12)
	within(t, "EbNoDB", b.EbNoDB, 80.73501131683986, 1e-8)
	within(t, "BitErrorRate", b.BitErrorRate, 2.7005050651793807e-37, 1e-45)
}

func TestComputeBudgetPointingLoss(t *testing.T) {
	s := testScenario()
	s.PointingErrorDeg = 0.1

	b, err := ComputeBudget(s)
	if err != nil {
		t.Fatalf("ComputeBudget: %v", err)
	}
	if b.PointingLossDB <= 0 {
		t.Errorf("PointingLossDB = %v, want positive", b.PointingLossDB)
	}
	within(t, "TotalLossDB", b.TotalLossDB,
		b.FreeSpaceLossDB+b.AtmosphericLossDB+b.PointingLossDB, 1e-12)
}

func TestComputeBudgetNegativeMargin(t *testing.T) {
	// Drop the data rate loss so far below C/N0 that Eb/N0 goes negative;
	// the BER saturates at coin-flip.
	s := testScenario()
	s.DataRateBps = 1e15

	b, err := ComputeBudget(s)
	if err != nil {
		t.Fatalf("ComputeBudget: %v", err)
	}
	if b.EbNoDB >= 0 {
		t.Fatalf("EbNoDB = %v, want negative for this rate", b.EbNoDB)
	}
	within(t, "BitErrorRate", b.BitErrorRate, 0.5, 0)
}

func TestComputeBudgetRejectsHourElevation(t *testing.T) {
	s := testScenario()
	s.Elevation = units.Hours(2.0)

	if _, err := ComputeBudget(s); err == nil {
		t.Fatal("hour-preferring elevation angle accepted")
	}
}

func TestComputeBudgetRejectsBadElevation(t *testing.T) {
	s := testScenario()
	s.Elevation = units.Degrees(-5.0)

	if _, err := ComputeBudget(s); err == nil {
		t.Fatal("negative elevation accepted")
	}
}

func TestBudgetString(t *testing.T) {
	b, err := ComputeBudget(testScenario())
	if err != nil {
		t.Fatalf("ComputeBudget: %v", err)
	}

	s := b.String()
	for _, want := range []string{
		"Link budget: test station",
		"1.792 GHz",
		"EIRP\t\t\t69.76 dBW",
		"Free space loss\t152.32 dB",
		"Eb/N0\t\t\t80.74 dB",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("report missing %q in:\n%s", want, s)
		}
	}
}
