package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeatherGrid() Grid {
	return Grid{
		{"날씨", "Clear"},
		{"아이콘", "01d"},
		{"기온", "24.5"},
		{"습도", "63"},
		{"풍속", "3.6"},
		{"기압", "1,013"},
		{"가시거리", "10000"},
		{"일출", "05:58 AM"},
		{"일몰", "08:05 PM"},
		{},
		{"날짜", "최저", "최고", "날씨", "아이콘"},
		{"2025-07-22", "18.2", "27.9", "Clear", "01d"},
		{"2025-07-23", "19.1", "28.4", "Clouds", "02d"},
		{"", "0", "0", "", ""},
	}
}

func TestExtractWeather(t *testing.T) {
	t.Run("full sheet", func(t *testing.T) {
		report := ExtractWeather(testWeatherGrid())

		cur := report.Current
		require.NotNil(t, cur)
		assert.Equal(t, "Clear", cur.Status)
		assert.Equal(t, "01d", cur.Icon)
		require.NotNil(t, cur.Temperature)
		assert.Equal(t, 24.5, *cur.Temperature)
		require.NotNil(t, cur.Pressure)
		assert.Equal(t, 1013.0, *cur.Pressure)
		assert.Equal(t, "05:58 AM", cur.Sunrise)
		assert.Equal(t, "08:05 PM", cur.Sunset)
		assert.Nil(t, cur.FineDust, "no source cell for fine dust")

		require.Len(t, report.Forecast, 2, "blank-date row skipped")
		day := report.Forecast[0]
		assert.Equal(t, "2025-07-22", day.Date)
		assert.Equal(t, 18.2, *day.MinTemp)
		assert.Equal(t, 27.9, *day.MaxTemp)
		assert.Equal(t, "Clear", day.Status)
		assert.Equal(t, "01d", day.Icon)
	})

	t.Run("sheet too short for current block", func(t *testing.T) {
		report := ExtractWeather(Grid{
			{"날씨", "Clear"},
			{"아이콘", "01d"},
		})

		assert.Nil(t, report.Current)
		assert.Empty(t, report.Forecast)
	})

	t.Run("short forecast rows are skipped", func(t *testing.T) {
		grid := testWeatherGrid()
		grid = append(grid, []string{"2025-07-24", "20"})

		report := ExtractWeather(grid)
		assert.Len(t, report.Forecast, 2)
	})

	t.Run("unparseable temperatures become null", func(t *testing.T) {
		grid := testWeatherGrid()
		grid[11] = []string{"2025-07-22", "??", "27.9", "Clear", "01d"}

		report := ExtractWeather(grid)
		require.NotEmpty(t, report.Forecast)
		assert.Nil(t, report.Forecast[0].MinTemp)
		assert.NotNil(t, report.Forecast[0].MaxTemp)
	})
}

func TestWeatherReportJSON(t *testing.T) {
	t.Run("current block omitted when absent", func(t *testing.T) {
		data, err := json.Marshal(WeatherReport{Forecast: []ForecastDay{}})
		require.NoError(t, err)
		assert.JSONEq(t, `{"forecast_weather":[]}`, string(data))
	})

	t.Run("fixed dashboard keys", func(t *testing.T) {
		report := ExtractWeather(testWeatherGrid())
		data, err := json.Marshal(report)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		cur, ok := decoded["current_weather"].(map[string]any)
		require.True(t, ok)
		for _, key := range []string{
			"LA_WeatherStatus", "LA_WeatherIcon", "LA_Temperature", "LA_Humidity",
			"LA_WindSpeed", "LA_Pressure", "LA_Visibility", "LA_Sunrise",
			"LA_Sunset", "LA_FineDust",
		} {
			assert.Contains(t, cur, key)
		}
	})
}
