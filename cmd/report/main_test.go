package main

import (
	"bytes"
	"context"
	"delivery-analytics-service/internal/adapters/csvfile"
	"delivery-analytics-service/internal/adapters/memory"
	"delivery-analytics-service/internal/domain"
	"delivery-analytics-service/internal/services"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDashboard() *services.Dashboard {
	return services.NewDashboard(services.NewDatasetLoader(memory.NewStaticSource([]domain.DeliveryRecord{
		{OrderID: "1", DistanceKm: 10, Weather: "Clear", TrafficLevel: "Low", TimeOfDay: "Morning", VehicleType: "Bike", CourierExperienceYrs: 1, DeliveryTimeMin: 30},
		{OrderID: "2", DistanceKm: 20, Weather: "Clear", TrafficLevel: "Low", TimeOfDay: "Evening", VehicleType: "Bike", CourierExperienceYrs: 1, DeliveryTimeMin: 50},
		{OrderID: "3", DistanceKm: 5, Weather: "Rainy", TrafficLevel: "High", TimeOfDay: "Night", VehicleType: "Car", CourierExperienceYrs: 1, DeliveryTimeMin: 60},
	})))
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	err := printSummary(context.Background(), &buf, testDashboard(),
		domain.Criteria{domain.FieldWeather: "Clear", domain.FieldTrafficLevel: "Low"}, 1)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Total Trips in Category: 2")
	assert.Contains(t, out, "Avg Delivery Time: 40.0 mins")
	assert.Contains(t, out, "Avg Distance: 15.0 km")
	assert.Contains(t, out, "Historical Logs: Clear Weather / Low Traffic")
	assert.Contains(t, out, "... 1 more")
}

func TestPrintSummaryNoMatch(t *testing.T) {
	var buf bytes.Buffer
	err := printSummary(context.Background(), &buf, testDashboard(),
		domain.Criteria{domain.FieldWeather: "Snowy"}, 0)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Total Trips in Category: 0")
	assert.Contains(t, buf.String(), "No records match")
}

func TestPrintOptions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printOptions(context.Background(), &buf, testDashboard()))

	assert.Contains(t, buf.String(), "Weather: Clear, Rainy\n")
	assert.Contains(t, buf.String(), "Vehicle_Type: Bike, Car\n")
}

func TestPrintSummaryDatasetNotFound(t *testing.T) {
	d := services.NewDashboard(services.NewDatasetLoader(memory.NewFailingSource(domain.ErrDatasetNotFound)))

	var buf bytes.Buffer
	err := printSummary(context.Background(), &buf, d, nil, 0)
	assert.ErrorIs(t, err, domain.ErrDatasetNotFound)
	assert.Empty(t, buf.String())
}

func TestDefaultDataPathFromEnvironment(t *testing.T) {
	t.Setenv("DATASET_PATH", "/data/deliveries.csv")
	assert.Equal(t, "/data/deliveries.csv", defaultDataPath())

	t.Setenv("DATASET_PATH", "")
	assert.Equal(t, csvfile.DefaultPath, defaultDataPath())
}
