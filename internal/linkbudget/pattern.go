package linkbudget

import (
	"fmt"
	"math"
)

// Statgain is the NTIA statgain high-gain radiation pattern model for
// antennas with a mainbeam gain of at least 10 dBi (NTIA TM-12-489). It
// returns the gain in dB at an angle phi degrees off the mainbeam axis.
//
// The model is piecewise over phi with breakpoints that depend on the
// mainbeam gain; the side lobe envelopes use the natural logarithm of phi
// as in the source material. Gains below 10 dBi and angles outside
// [0, 180] are outside the model.
func Statgain(maxGainDB, phiDeg float64) (float64, error) {
	if maxGainDB < 10 {
		return 0, fmt.Errorf("statgain: mainbeam gain %.2f dBi is below the 10 dBi model floor", maxGainDB)
	}
	if phiDeg < 0 || phiDeg > 180 {
		return 0, fmt.Errorf("statgain: off-axis angle %.2f is outside 0..180 degrees", phiDeg)
	}

	phiM := 50 * math.Sqrt(0.25*maxGainDB+7) / math.Pow(10, maxGainDB/20)
	phiR1 := 27.466 * math.Pow(10, -0.3*maxGainDB/10)
	phiR2 := 250 / math.Pow(10, maxGainDB/20)
	phiB1 := 48.0
	phiB3 := 131.8257 * math.Pow(10, -maxGainDB/50)

	mainbeam := func() float64 {
		return maxGainDB - 4e-4*math.Pow(10, maxGainDB/10)*phiDeg*phiDeg
	}

	switch {
	case maxGainDB >= 48:
		switch {
		case phiDeg <= phiM:
			return mainbeam(), nil
		case phiDeg <= phiR1:
			return 0.75*maxGainDB - 7, nil
		case phiDeg <= phiB1:
			return 29 - 25*math.Log(phiDeg), nil
		default:
			return -13, nil
		}
	case maxGainDB >= 22:
		switch {
		case phiDeg <= phiM:
			return mainbeam(), nil
		case phiDeg <= phiR2:
			return 0.75*maxGainDB - 7, nil
		case phiDeg <= phiB1:
			return 53 - maxGainDB/2 - 25*math.Log(phiDeg), nil
		default:
			return 11 - maxGainDB/2, nil
		}
	default:
		switch {
		case phiDeg <= phiM:
			return mainbeam(), nil
		case phiDeg <= phiR2:
			return 0.75*maxGainDB - 7, nil
		case phiDeg <= phiB3:
			return 53 - maxGainDB/2 - 25*math.Log(phiDeg), nil
		default:
			return 0, nil
		}
	}
}
