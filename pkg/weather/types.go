package weather

// forecastResponse mirrors the subset of the WeatherAPI.com
// /v1/forecast.json body this client reads.
type forecastResponse struct {
	Forecast struct {
		ForecastDay []forecastDay `json:"forecastday"`
	} `json:"forecast"`
}

type forecastDay struct {
	Date string `json:"date"`
	Day  struct {
		MaxTempC     float64 `json:"maxtemp_c"`
		MinTempC     float64 `json:"mintemp_c"`
		ChanceOfRain int     `json:"daily_chance_of_rain"`
		WillItRain   int     `json:"daily_will_it_rain"`
		Condition    struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"day"`
}

// Forecast is the one-day forecast used to build crop advice context.
type Forecast struct {
	Date         string
	Condition    string
	MaxTempC     float64
	MinTempC     float64
	ChanceOfRain int
	WillItRain   int
}
