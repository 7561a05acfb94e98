// Package linkbudget implements satellite link engineering equations:
// carrier and noise power, antenna gain and beamwidth, propagation losses,
// telemetry Eb/N0 and bit error rate, plus the FCC OET-65 power-density
// field equations and the NTIA statgain radiation pattern model.
//
// The functions are pure and operate on plain float64 values in the units
// named by their parameters. Conversions in and out of quantity types
// belong to the caller.
package linkbudget

import (
	"math"

	"github.com/roman-kulish/link-engineering/internal/constants"
)

// NoisePowerInBandwidth is the average thermal noise power in dB for a
// system temperature in kelvin and a bandwidth in hertz:
//
//	N = k*T*B
func NoisePowerInBandwidth(temperatureK, bandwidthHz float64) float64 {
	return LinToDB(constants.K * temperatureK * bandwidthHz)
}

// SNR is the carrier-to-noise density C/N0 of a link:
//
//	C/N0 = EIRP * (1/L) * (G/T) * (1/k)
//
// with eirp the effective isotropic radiated power, loss the total medium
// losses and goT the receive system gain over noise temperature, all in
// linear form.
func SNR(eirp, loss, goT float64) float64 {
	return eirp * (1 / loss) * goT * (1 / constants.K)
}

// PowerReceived is the power at the distant end of a link in dB, after
// free space loss over rangeM meters at frequencyHz:
//
//	P_rx = P_tx + G_tx - FSL + G_rx
func PowerReceived(txPowerDB, txGainDB, rxGainDB, frequencyHz, rangeM float64) float64 {
	return txPowerDB + txGainDB - FreeSpaceLoss(rangeM, frequencyHz) + rxGainDB
}

// EIRP is the effective isotropic radiated power for an antenna gain in dB
// and a radiated power. The result is in the same unit as power: watts in,
// watts out.
func EIRP(gainDB, power float64) float64 {
	return DBToLin(gainDB) * power
}

// Wavelength is the free-space wavelength in meters of a frequency in
// hertz.
func Wavelength(frequencyHz float64) float64 {
	return constants.C / frequencyHz
}

// AntennaGain is the gain in dB of a simple prime focus parabolic antenna:
//
//	G = eta * (pi*D/wavelength)^2
//
// with eta the aperture efficiency as a decimal percentage, the diameter
// and wavelength in meters.
func AntennaGain(efficiency, diameterM, wavelengthM float64) float64 {
	g := efficiency * math.Pow(math.Pi*diameterM/wavelengthM, 2)
	return 10 * math.Log10(g)
}

// EffectiveAperture is the antenna effective aperture in m^2:
//
//	A_eff = eta * (1/4) * pi * D^2
func EffectiveAperture(diameterM, efficiency float64) float64 {
	return efficiency * (1.0 / 4.0) * math.Pi * math.Pow(diameterM, 2)
}

// Beamwidth is the antenna beamwidth in degrees for a gain in dB:
//
//	beamwidth = sqrt(16/G)
func Beamwidth(gainDB float64) float64 {
	g := DBToLin(gainDB)
	return math.Sqrt(16/g) * constants.RAD2DEG
}

// HalfPowerBeamwidth is the 3 dB beamwidth in degrees. The constant 70
// degrees is a rough approximation for a parabolic reflector (Orfanidis,
// eq. 16.3.11).
//
//	HPBW = 70 * wavelength / D
func HalfPowerBeamwidth(wavelengthM, diameterM float64) float64 {
	return 70 * wavelengthM / diameterM
}

// AntennaTemperature estimates the antenna noise temperature in kelvin
// from the main beam, ground back lobe and hemisphere back lobe
// contributions, for a beamwidth in degrees, an aperture efficiency as a
// decimal percentage, and sky and ambient temperatures in kelvin.
func AntennaTemperature(beamwidthDeg, efficiency, skyTempK, ambientTempK float64) float64 {
	mainBeam := 1 / beamwidthDeg * (skyTempK * efficiency * beamwidthDeg)
	groundLobe := 1 / beamwidthDeg * (ambientTempK * (1 - efficiency) / 2 * beamwidthDeg)
	hemisphereLobe := 1 / beamwidthDeg * (ambientTempK / 2 * (1 - efficiency) / 2 * beamwidthDeg)
	return mainBeam + groundLobe + hemisphereLobe
}

// GOverT is the receive system figure of merit in dB/K for an antenna gain
// in dBi and a system noise temperature in kelvin.
func GOverT(gainDBi, systemTempK float64) float64 {
	return gainDBi - LinToDB(systemTempK)
}

// ReferenceTemperatureK is the noise figure reference temperature.
const ReferenceTemperatureK = 290.0

// NoiseFigureToTemperature converts a noise figure in dB to a noise
// temperature in kelvin against the reference temperature:
//
//	T = T_ref * (10^(NF/10) - 1)
func NoiseFigureToTemperature(noiseFigureDB, refTempK float64) float64 {
	return refTempK * (math.Pow(10, noiseFigureDB/10) - 1)
}

// TemperatureToNoiseFigure converts a noise temperature in kelvin to a
// noise figure in dB against the reference temperature:
//
//	NF = 10*log10(T/T_ref + 1)
func TemperatureToNoiseFigure(noiseTempK, refTempK float64) float64 {
	return LinToDB(noiseTempK/refTempK + 1)
}

// SEFD is the system equivalent flux density in jansky for an effective
// aperture in m^2 and a system noise temperature in kelvin:
//
//	SEFD = 10^26 * 2*k*T_sys / A_eff
func SEFD(effectiveApertureM2, systemTempK float64) float64 {
	return 1e26 * 2 * constants.K * systemTempK / effectiveApertureM2
}

// RadiometerSNR estimates the signal-to-noise ratio of an observation via
// the radiometer equation, for a source flux density and SEFD in jansky,
// an on-source integration time in seconds and an acquisition bandwidth in
// hertz:
//
//	SNR = S * sqrt(t*B) / SEFD
func RadiometerSNR(sourceFluxJy, sefdJy, onTimeS, bandwidthHz float64) float64 {
	return sourceFluxJy * math.Sqrt(onTimeS*bandwidthHz) / sefdJy
}

// OffNadirAngle is the angle in degrees between a spacecraft's nadir and
// the line of sight to a ground station, for a ground station elevation
// angle in degrees and spacecraft and ground station altitudes in meters.
func OffNadirAngle(elevationDeg, spacecraftAltM, groundAltM float64) float64 {
	gs := (groundAltM + constants.ERAD) * math.Sin((elevationDeg+90.0)*constants.DEG2RAD)
	return math.Asin(gs/(spacecraftAltM+constants.ERAD)) * constants.RAD2DEG
}

// PointingLoss is the loss in dB for a pointing offset error and a half
// power beamwidth, both in degrees.
//
// Carried verbatim from the source material, where the author flags the
// formula as not producing correct results. Treat the output as
// indicative only.
func PointingLoss(pointingErrDeg, hpbwDeg float64) float64 {
	return 10 * math.Log(math.Exp(2.773*math.Pow(pointingErrDeg, 2)/math.Pow(hpbwDeg, 2)))
}

// PolarizationLoss is the polarization loss in dB for an offset from
// boresight in radians.
//
// Carried verbatim from the source material, where the author flags the
// formula as not producing correct results. Treat the output as
// indicative only.
func PolarizationLoss(nadirOffRad float64) float64 {
	return 1.389e-8*math.Pow(nadirOffRad, 4) -
		3.389e-4*math.Pow(nadirOffRad, 2) -
		2.286e-7
}

// AtmosphericLoss is a rough estimate of atmospheric loss in dB for an
// elevation angle in degrees. There are much better models; this one is
// very easy.
func AtmosphericLoss(elevationDeg float64) float64 {
	return LinToDB(1 + 1/elevationDeg)
}

// FreeSpaceLoss is the free space path loss in dB over a slant range in
// meters at a frequency in hertz:
//
//	FSL = (4*pi*range*frequency/c)^2
func FreeSpaceLoss(slantRangeM, frequencyHz float64) float64 {
	return LinToDB(math.Pow(4*math.Pi*slantRangeM*frequencyHz/constants.C, 2))
}

// UplinkPerformance is the uplink C/N0 for a ground station EIRP, the
// total uplink losses and the spacecraft G/T, all in linear form.
func UplinkPerformance(eirp, uplinkLoss, goTSpacecraft float64) float64 {
	return eirp * (1 / uplinkLoss) * goTSpacecraft * (1 / constants.K)
}

// DownlinkPerformance is the downlink C/N0 for a spacecraft EIRP, the
// total downlink losses and the ground station G/T, all in linear form.
func DownlinkPerformance(eirp, downlinkLoss, goTGround float64) float64 {
	return eirp * (1 / downlinkLoss) * goTGround * (1 / constants.K)
}

// ServiceModulationLoss is the loss in dB due to subcarrier modulation for
// a modulation index:
//
//	L = 10*ln(2*J1(m)^2)
//
// J1 is the Bessel function of the first kind of order one. The natural
// logarithm follows the source material.
func ServiceModulationLoss(modIndex float64) float64 {
	return 10 * math.Log(2*math.Pow(math.J1(modIndex), 2))
}

// TelemetryEbNo is the energy per bit over noise density of a telemetry
// stream, from the stream C/N0 less the modulation and data rate losses,
// all in dB.
func TelemetryEbNo(cOverN0DB, modulationLossDB, dataRateLossDB float64) float64 {
	return cOverN0DB - modulationLossDB - dataRateLossDB
}

// BitErrorRate is the bit error rate of an SGLS waveform for a telemetry
// Eb/N0 in dB:
//
//	BER = 0.5*erfc(sqrt(Eb/N0))
func BitErrorRate(ebNoDB float64) float64 {
	return 0.5 * math.Erfc(math.Sqrt(ebNoDB))
}

// LinToDB converts a linear value to dB.
func LinToDB(value float64) float64 {
	return 10 * math.Log10(value)
}

// DBToLin converts a dB value to linear form.
func DBToLin(value float64) float64 {
	return math.Pow(10, value/10)
}
