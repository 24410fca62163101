package parameter

// Timescale is a named simulation step length
type Timescale struct {
	Name    string
	Seconds float64
}

// Timescales is the ordered set of selectable step lengths
var Timescales = [...]Timescale{
	{Name: "second", Seconds: 1},
	{Name: "minute", Seconds: 60},
	{Name: "hour", Seconds: 3600},
	{Name: "day", Seconds: 86400},
	{Name: "week", Seconds: 604800},
	{Name: "month", Seconds: 2630000},
	{Name: "year", Seconds: 31556900},
}

const (
	// DefaultTimescale indexes Timescales (day)
	DefaultTimescale = 3

	// SecondsPerDay converts elapsed simulated seconds for display
	SecondsPerDay = 86400.0
)

// TimescaleIndex returns the index of the named timescale, or -1
func TimescaleIndex(name string) int {
	for i, ts := range Timescales {
		if ts.Name == name {
			return i
		}
	}
	return -1
}
