package linkbudget

import (
	"math"
	"testing"
)

func within(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (tolerance %v)", name, got, want, tol)
	}
}

func TestWavelength(t *testing.T) {
	within(t, "6 GHz", Wavelength(6e9), 0.05, 0.0005)
	within(t, "4 GHz", Wavelength(4e9), 0.0749481145, 1e-9)
}

func TestAntennaGain(t *testing.T) {
	got := AntennaGain(0.60, 0.5, Wavelength(4e9))
	within(t, "0.5 m dish at 4 GHz", got, 24.20869581244019, 1e-9)
}

func TestBeamwidth(t *testing.T) {
	within(t, "15 dB", Beamwidth(15), 40.75516199609769, 1e-9)
}

func TestHalfPowerBeamwidth(t *testing.T) {
	got := HalfPowerBeamwidth(Wavelength(4e9), 0.5)
	within(t, "0.5 m dish at 4 GHz", got, 10.49273603, 1e-8)
}

func TestEffectiveAperture(t *testing.T) {
	within(t, "0.5 m at 0.6", EffectiveAperture(0.5, 0.6), 0.11780972450961724, 1e-12)
}

func TestEIRP(t *testing.T) {
	within(t, "15 dB, 10 W", EIRP(15.0, 10), 316.2277660168379, 1e-9)
}

func TestFreeSpaceLoss(t *testing.T) {
	within(t, "4e9 m at 40 MHz", FreeSpaceLoss(4e9, 4e7), 196.53018287500188, 1e-9)
}

func TestPowerReceived(t *testing.T) {
	got := PowerReceived(8.0, 24, 44, 4e9, 4e8)
	within(t, "P_rx", got, -140.53018287500188, 1e-9)
}

func TestNoisePowerInBandwidth(t *testing.T) {
	within(t, "290 K over 1 MHz", NoisePowerInBandwidth(290, 1e6), -143.9751871942281, 1e-9)
}

func TestNoiseFigureTemperatureDuality(t *testing.T) {
	within(t, "3 dB NF", NoiseFigureToTemperature(3.0, ReferenceTemperatureK), 288.62607134097505, 1e-9)
	within(t, "288 K", TemperatureToNoiseFigure(288.0, ReferenceTemperatureK), 2.99529840521573, 1e-9)

	// The two conversions invert each other.
	nf := TemperatureToNoiseFigure(NoiseFigureToTemperature(4.5, ReferenceTemperatureK), ReferenceTemperatureK)
	within(t, "round trip", nf, 4.5, 1e-12)
}

func TestGOverT(t *testing.T) {
	within(t, "40 dBi at 100 K", GOverT(40, 100), 20.0, 1e-12)
}

func TestSEFD(t *testing.T) {
	aeff := EffectiveAperture(30.157, 0.6)
	within(t, "150 K system", SEFD(aeff, 150), 966.46723147582, 1e-6)
}

func TestRadiometerSNR(t *testing.T) {
	// 10 Jy source, 1000 Jy SEFD, 60 s at 1 MHz.
	within(t, "snr", RadiometerSNR(10, 1000, 60, 1e6), 10*math.Sqrt(6e7)/1000, 1e-9)
}

func TestOffNadirAngle(t *testing.T) {
	got := OffNadirAngle(25, 550000, 0)
	within(t, "25 deg elevation, 550 km", got, 56.549177908973824, 1e-9)
}

func TestAtmosphericLoss(t *testing.T) {
	within(t, "25 deg elevation", AtmosphericLoss(25), 0.1703333929878037, 1e-12)
}

func TestPointingLoss(t *testing.T) {
	got := PointingLoss(1.0, 10.5)
	within(t, "1 deg error in 10.5 deg beam", got, 0.2515192743764164, 1e-12)
}

func TestPolarizationLoss(t *testing.T) {
	got := PolarizationLoss(0.1)
	within(t, "0.1 rad off boresight", got, -3.6175986110000005e-06, 1e-18)
}

func TestServiceModulationLoss(t *testing.T) {
	within(t, "mod index 1", ServiceModulationLoss(1.0), -9.485840015920083, 1e-9)
}

func TestTelemetryEbNo(t *testing.T) {
	within(t, "budget", TelemetryEbNo(60, -9.5, 45), 24.5, 1e-12)
}

func TestBitErrorRate(t *testing.T) {
	within(t, "4 dB Eb/N0", BitErrorRate(4.0), 0.0023388674905236327, 1e-15)
}

func TestLinDBRoundTrip(t *testing.T) {
	within(t, "lin to dB", LinToDB(100), 20, 0)
	within(t, "dB to lin", DBToLin(20), 100, 0)
	within(t, "round trip", DBToLin(LinToDB(3.7)), 3.7, 1e-12)
}

func TestAntennaTemperature(t *testing.T) {
	// 0.7 efficient antenna under a 10 K sky at 290 K ambient.
	got := AntennaTemperature(1.0, 0.7, 10, 290)
	within(t, "antenna temperature", got, 72.25, 1e-9)
}

func TestLinkPerformance(t *testing.T) {
	eirp := 316.2277660168379
	loss := DBToLin(196.5)
	goT := DBToLin(20.0)

	up := UplinkPerformance(eirp, loss, goT)
	down := DownlinkPerformance(eirp, loss, goT)
	within(t, "uplink equals downlink for equal terms", up, down, 0)
	within(t, "matches the generic form", up, SNR(eirp, loss, goT), 0)
}
