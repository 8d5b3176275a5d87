package entities

// Driver is immutable race reference data supplied by the caller
type Driver struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Country  string  `json:"country"`
	Odds     float64 `json:"odds"`
	Avatar   string  `json:"avatar"`
	CarColor string  `json:"car_color"`
}

// DefaultDrivers returns the standard four-driver race roster
func DefaultDrivers() []Driver {
	return []Driver{
		{ID: 0, Name: "Max Thunder", Country: "🇳🇱", Odds: PayoutMultiplier, Avatar: "🏎️", CarColor: "systemBlue"},
		{ID: 1, Name: "Speed Racer", Country: "🇺🇸", Odds: PayoutMultiplier, Avatar: "🏁", CarColor: "systemRed"},
		{ID: 2, Name: "Lightning", Country: "🇬🇧", Odds: PayoutMultiplier, Avatar: "⚡", CarColor: "systemGreen"},
		{ID: 3, Name: "Turbo King", Country: "🇩🇪", Odds: PayoutMultiplier, Avatar: "🔥", CarColor: "systemOrange"},
	}
}
