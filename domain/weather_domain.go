package domain

const (
	ConditionClear  = "clear"
	ConditionCloudy = "cloudy"
	ConditionRain   = "rain"
	ConditionSnow   = "snow"
)

// Weather is the current-conditions snapshot from the provider. A nil *Weather
// means the provider was unavailable and the weather checks are skipped.
type Weather struct {
	Temperature   float64 `json:"temperature"`
	Condition     string  `json:"condition"`
	Precipitation float64 `json:"precipitation"`
}
