package models

import "time"

// RainfallSummary is the per-station headline card: cumulative rainfall over
// three windows plus the latest flow rate and derived water level.
type RainfallSummary struct {
	Station         string    `json:"station"`
	DailyRainfall   float64   `json:"dailyRainfall"`
	MonthlyRainfall float64   `json:"monthlyRainfall"`
	YearlyRainfall  float64   `json:"yearlyRainfall"`
	FlowRate        float64   `json:"flowrate"`
	WaterLevelMM    float64   `json:"waterLevel"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// RainfallPoint is one bucket of a rainfall aggregate series.
type RainfallPoint struct {
	Bucket        time.Time `json:"bucket"`
	TotalRainfall float64   `json:"totalrainfall"`
}

// WaterLevelPoint is one bucket of the derived water-level series. The value
// is the LAG delta of the last observed empty height between buckets.
type WaterLevelPoint struct {
	Bucket     time.Time `json:"bucket"`
	SourceID   string    `json:"source_id"`
	WaterLevel float64   `json:"water_level"`
}

// LiveDataPoint is one raw sensor reading from the live data table.
type LiveDataPoint struct {
	Time          time.Time `json:"time"`
	WaterLevelMM  float64   `json:"water_level"`
	FlowRate      float64   `json:"flowrate"`
	LiquidLevelMM float64   `json:"liquidlevelinmm"`
	RainfallOnDay float64   `json:"rainfallonthedaycnt"`
}

// DeviceMetadata is the most recent metadata record for a sensor unit.
type DeviceMetadata struct {
	Time         time.Time `json:"time"`
	Host         string    `json:"host"`
	Altitude     float64   `json:"altitude"`
	DateTime     string    `json:"datetime"`
	Latitude     float64   `json:"latitude"`
	LocationName string    `json:"location_name"`
	Longitude    float64   `json:"longitude"`
	VendorID     string    `json:"vndid"`
	SourceID     string    `json:"source_id"`
	Sensor1      string    `json:"sensor1"`
	Sensor2      string    `json:"sensor2"`
}
