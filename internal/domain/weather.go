package domain

// Fixed cell positions of the "LA날씨" worksheet. The current conditions
// block occupies B1:B9; the 7-day forecast starts at sheet row 12 below its
// own header row.
const (
	weatherCurrentRows = 9
	weatherValueCol    = 1
	forecastFirstRow   = 11
	forecastMinCells   = 5
	forecastDateCol    = 0
	forecastMinTempCol = 1
	forecastMaxTempCol = 2
	forecastStatusCol  = 3
	forecastIconCol    = 4
)

// CurrentWeather is the dashboard's current-conditions card. Field names are
// the fixed JSON keys the dashboard reads. FineDust has no source cell yet
// and is always null.
type CurrentWeather struct {
	Status      string   `json:"LA_WeatherStatus"`
	Icon        string   `json:"LA_WeatherIcon"`
	Temperature *float64 `json:"LA_Temperature"`
	Humidity    *float64 `json:"LA_Humidity"`
	WindSpeed   *float64 `json:"LA_WindSpeed"`
	Pressure    *float64 `json:"LA_Pressure"`
	Visibility  *float64 `json:"LA_Visibility"`
	Sunrise     string   `json:"LA_Sunrise"`
	Sunset      string   `json:"LA_Sunset"`
	FineDust    *float64 `json:"LA_FineDust"`
}

// ForecastDay is one row of the forecast block.
type ForecastDay struct {
	Date    string   `json:"date"`
	MinTemp *float64 `json:"min_temp"`
	MaxTemp *float64 `json:"max_temp"`
	Status  string   `json:"status"`
	Icon    string   `json:"icon"`
}

// WeatherReport is the extracted weather dataset. Current is nil when the
// worksheet is too short to hold the current-conditions block, in which case
// the key is omitted from output like any other missing section.
type WeatherReport struct {
	Current  *CurrentWeather `json:"current_weather,omitempty"`
	Forecast []ForecastDay   `json:"forecast_weather"`
}

// ExtractWeather reads the current conditions and forecast blocks from a
// weather worksheet snapshot. Forecast rows with a blank date or fewer than
// five cells are skipped.
func ExtractWeather(grid Grid) WeatherReport {
	report := WeatherReport{Forecast: []ForecastDay{}}

	if grid.NumRows() >= weatherCurrentRows {
		report.Current = &CurrentWeather{
			Status:      grid.Cell(0, weatherValueCol),
			Icon:        grid.Cell(1, weatherValueCol),
			Temperature: ParseNumber(grid.Cell(2, weatherValueCol)),
			Humidity:    ParseNumber(grid.Cell(3, weatherValueCol)),
			WindSpeed:   ParseNumber(grid.Cell(4, weatherValueCol)),
			Pressure:    ParseNumber(grid.Cell(5, weatherValueCol)),
			Visibility:  ParseNumber(grid.Cell(6, weatherValueCol)),
			Sunrise:     grid.Cell(7, weatherValueCol),
			Sunset:      grid.Cell(8, weatherValueCol),
		}
	}

	for r := forecastFirstRow; r < grid.NumRows(); r++ {
		if len(grid[r]) < forecastMinCells || grid.Cell(r, forecastDateCol) == "" {
			continue
		}
		report.Forecast = append(report.Forecast, ForecastDay{
			Date:    grid.Cell(r, forecastDateCol),
			MinTemp: ParseNumber(grid.Cell(r, forecastMinTempCol)),
			MaxTemp: ParseNumber(grid.Cell(r, forecastMaxTempCol)),
			Status:  grid.Cell(r, forecastStatusCol),
			Icon:    grid.Cell(r, forecastIconCol),
		})
	}
	return report
}
