package linkbudget

import "math"

// Power-density field equations for parabolic reflectors, from FCC OET
// Bulletin 65, Evaluating Compliance with FCC Guidelines for Human
// Exposure to Radiofrequency Electromagnetic Fields, 1997. Densities are
// in W/m^2, distances and wavelengths in meters, powers in watts.

// SurfaceDensity is the maximum power density directly in front of the
// antenna, at its surface (OET-65 eq. 11):
//
//	S = 4*P / A
func SurfaceDensity(powerW, diameterM float64) float64 {
	area := math.Pi * math.Pow(diameterM/2, 2)
	return (4 * powerW) / area
}

// NearFieldExtent is the extent of the near-field or Fresnel region
// (OET-65 eq. 12):
//
//	R_nf = D^2 / (4*wavelength)
func NearFieldExtent(diameterM, wavelengthM float64) float64 {
	return math.Pow(diameterM, 2) / (4 * wavelengthM)
}

// NearFieldDensity is the maximum near-field, on-axis power density
// (OET-65 eq. 13), for an aperture efficiency eta, usually 0.5 to 0.75:
//
//	S_nf = 16*eta*P / (pi*D^2)
func NearFieldDensity(efficiency, powerW, diameterM float64) float64 {
	return (16 * efficiency * powerW) / (math.Pi * math.Pow(diameterM, 2))
}

// FarFieldOnset is the distance to the beginning of the far-field region
// (OET-65 eq. 16):
//
//	R_ff = 0.6*D^2 / wavelength
func FarFieldOnset(diameterM, wavelengthM float64) float64 {
	return (0.6 * math.Pow(diameterM, 2)) / wavelengthM
}

// TransitionDensity is the power density at range r in the transition
// region between the near-field extent and the far-field onset
// (OET-65 eq. 17):
//
//	S_t = S_nf*R_nf / R
func TransitionDensity(nearFieldDensity, nearFieldExtentM, rangeM float64) float64 {
	return (nearFieldDensity * nearFieldExtentM) / rangeM
}

// FarFieldDensity is the power density at range r in the far field
// (OET-65 eq. 4), for an EIRP in watts:
//
//	S = EIRP / (4*pi*R^2)
func FarFieldDensity(eirpW, rangeM float64) float64 {
	return eirpW / (4 * math.Pi * math.Pow(rangeM, 2))
}

// WorstCaseDensity is the worst case power density at or near a surface,
// assuming 100% reflection (OET-65 eq. 6):
//
//	S = EIRP / (pi*R^2)
func WorstCaseDensity(eirpW, rangeM float64) float64 {
	return eirpW / (math.Pi * math.Pow(rangeM, 2))
}
