package linkbudget

import "fmt"

// Device describes one element in an antenna receive chain: an LNA, a
// feed, a run of cable. Its noise contribution can be given either as a
// noise temperature or as a noise figure; the other form is derived
// against the 290 K reference at construction.
type Device struct {
	Name          string
	GainDB        float64
	TemperatureK  float64
	NoiseFigureDB float64
}

// NewDeviceFromTemperature builds a Device from a noise temperature in
// kelvin.
func NewDeviceFromTemperature(name string, gainDB, temperatureK float64) Device {
	return Device{
		Name:          name,
		GainDB:        gainDB,
		TemperatureK:  temperatureK,
		NoiseFigureDB: TemperatureToNoiseFigure(temperatureK, ReferenceTemperatureK),
	}
}

// NewDeviceFromNoiseFigure builds a Device from a noise figure in dB.
func NewDeviceFromNoiseFigure(name string, gainDB, noiseFigureDB float64) Device {
	return Device{
		Name:          name,
		GainDB:        gainDB,
		TemperatureK:  NoiseFigureToTemperature(noiseFigureDB, ReferenceTemperatureK),
		NoiseFigureDB: noiseFigureDB,
	}
}

func (d Device) String() string {
	return fmt.Sprintf("Device:\t%s\n\tGain:\t%gdB\n\tT:\t%gK\n\tNF:\t%gdB",
		d.Name, d.GainDB, d.TemperatureK, d.NoiseFigureDB)
}
