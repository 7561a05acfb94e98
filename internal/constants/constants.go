// Package constants holds the physical and astronomical scalars shared by
// the units and linkbudget packages.
package constants

// Definitions.
const (
	AUM     = 149597870700.0 // Astronomical unit in meters, IAU 2012 Resolution B2
	AUKM    = 149597870.700  // Astronomical unit in kilometers
	ASEC360 = 1296000.0      // Arcseconds in a full circle
	DayS    = 86400.0        // Seconds per day
)

// Angles.
const (
	ASEC2RAD = 4.848136811095359935899141e-6
	DEG2RAD  = 0.017453292519943296
	RAD2DEG  = 57.295779513082321
	Pi       = 3.141592653589793
	Tau      = 6.283185307179586476925287 // 2*Pi, the full circle in radians
)

// Physics.
const (
	C        = 299792458.0  // Speed of light, m/s
	K        = 1.380649e-23 // Boltzmann's constant, J/K
	KdBW     = -228.5991    // Boltzmann's constant, dBW/K/Hz
	GMSunKm3 = 132712440042 // Heliocentric GM, km^3/s^2, Pitjeva 2005
)

// Earth and its orbit.
const (
	ANGVEL                       = 7.2921150e-5 // Earth rotation rate, radians/s
	ERAD                         = 6378136.6    // Earth equatorial radius, meters
	IERS2010InverseEarthFlatting = 298.25642
	GS                           = 1.32712440017987e+20 // Heliocentric GM, m^3/s^2, DE-405
)

// Time.
const (
	T0    = 2451545.0
	B1950 = 2433282.4235
)

// CAUDay is the speed of light in astronomical units per day.
const CAUDay = C * DayS / AUM
