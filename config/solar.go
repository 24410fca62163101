package config

import (
	"github.com/lixenwraith/orbits/body"
	"github.com/lixenwraith/orbits/parameter"
)

// Built-in solar system: the Sun, nine planets and five moons
// Planets orbit Sol, moons orbit their planet; distances are perihelion-ish figures in meters
var (
	planetNames  = []string{"Me", "V", "E", "Ma", "J", "S", "U", "N", "P"}
	planetMasses = []float64{.330e24, 4.87e24, 5.97e24, .642e24, 1898e24, 568e24, 86.8e24, 102e24, .0131e24}
	planetRadii  = []float64{2.440e6, 6.052e6, 6.378e6, 3.396e6, 7.1492e7, 6.0268e7, 2.5550e7, 2.4750e7, 1.195e6}
	planetDist   = []float64{4.600e10, 1.0750e11, 1.4710e11, 2.0660e11, 7.4050e11, 1.35260e12, 2.74130e12, 4.44450e12, 4.43500e12}
	planetVel    = []float64{5.897e4, 3.525e4, 3.029e4, 2.650e4, 1.371e4, 1.018e4, 7.11e3, 5.50e3, 6.10e3}
	planetColors = []body.Color{body.Red, body.Gold, body.Green, body.Maroon, body.Orange, body.Yellow, body.Turquoise, body.Blue, body.Purple}

	moonNames   = []string{"CALLISTO", "GANYMEDE", "EUROPA", "IO", "LUNA"}
	moonPlanets = []string{"J", "J", "J", "J", "E"}
	moonMasses  = []float64{107.6e21, 148.2e21, 48.0e21, 89.3e21, 7.34e22}
	moonRadii   = []float64{2.4105e6, 2.681e6, 1.561e6, 1.765e6, 3.476e6}
	moonDist    = []float64{1.883e9, 1.070e9, 6.71e8, 4.22e8, 3.844e8}
	moonVel     = []float64{8.2e3, 10.9e3, 13.7e3, 17.3e3, 1.023e3}
)

// SunName is the name of the central body of the built-in system
const SunName = "Sol"

// SolarSystem returns the built-in body table: Sol first, then planets, then moons
func SolarSystem() []body.Record {
	records := make([]body.Record, 0, 1+len(planetNames)+len(moonNames))
	records = append(records, body.Record{
		Name:   SunName,
		Mass:   parameter.SolarMass,
		Radius: 6.957e8,
		Color:  body.White,
	})
	for i, name := range planetNames {
		records = append(records, body.Record{
			Name:       name,
			DistanceAU: planetDist[i] / parameter.AU,
			Velocity:   planetVel[i],
			Mass:       planetMasses[i],
			Radius:     planetRadii[i],
			Color:      planetColors[i],
			Reference:  SunName,
		})
	}
	for i, name := range moonNames {
		records = append(records, body.Record{
			Name:       name,
			DistanceAU: moonDist[i] / parameter.AU,
			Velocity:   moonVel[i],
			Mass:       moonMasses[i],
			Radius:     moonRadii[i],
			Color:      body.White,
			Reference:  moonPlanets[i],
		})
	}
	return records
}
