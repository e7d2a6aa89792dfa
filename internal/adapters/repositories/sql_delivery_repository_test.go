package repositories

import (
	"context"
	"database/sql"
	"delivery-analytics-service/internal/domain"
	"delivery-analytics-service/internal/platform/db"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, InitSchema(conn, db.SQLite))
	return conn
}

func sampleRecords() []domain.DeliveryRecord {
	return []domain.DeliveryRecord{
		{OrderID: "522", DistanceKm: 7.93, Weather: "Windy", TrafficLevel: "Low", TimeOfDay: "Afternoon", VehicleType: "Scooter", PreparationTimeMin: 12, CourierExperienceYrs: 1, DeliveryTimeMin: 43},
		{OrderID: "741", DistanceKm: 9.52, Weather: "", TrafficLevel: "Low", TimeOfDay: "", VehicleType: "Scooter", PreparationTimeMin: 28, CourierExperienceYrs: math.NaN(), DeliveryTimeMin: 59},
		{OrderID: "100", DistanceKm: 2.5, Weather: "Rainy", TrafficLevel: "High", TimeOfDay: "Night", VehicleType: "Car", PreparationTimeMin: 7, CourierExperienceYrs: 6, DeliveryTimeMin: 31},
	}
}

func TestReplaceThenLoadRoundTripsRawRecords(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLDeliveryRepository(openTestDB(t), db.SQLite)

	require.NoError(t, repo.ReplaceDeliveries(ctx, sampleRecords()))

	got, err := repo.LoadDeliveries(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(sampleRecords(), got, cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaceDeliveriesOverwritesPreviousContents(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLDeliveryRepository(openTestDB(t), db.SQLite)

	require.NoError(t, repo.ReplaceDeliveries(ctx, sampleRecords()))
	require.NoError(t, repo.ReplaceDeliveries(ctx, sampleRecords()[:1]))

	got, err := repo.LoadDeliveries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "522", got[0].OrderID)
}

func TestReplaceDeliveriesRejectsEmptyOrderID(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLDeliveryRepository(openTestDB(t), db.SQLite)

	recs := sampleRecords()
	recs[2].OrderID = " "

	err := repo.ReplaceDeliveries(ctx, recs)
	require.Error(t, err)

	// the transaction is rolled back, leaving the table empty
	got, err := repo.LoadDeliveries(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMirroredRecordsCleanLikeTheFile(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLDeliveryRepository(openTestDB(t), db.SQLite)
	require.NoError(t, repo.ReplaceDeliveries(ctx, sampleRecords()))

	got, err := repo.LoadDeliveries(ctx)
	require.NoError(t, err)

	ds := domain.NewDataset(got)
	recs := ds.Records()
	assert.Equal(t, domain.Unknown, recs[1].Weather)
	assert.Equal(t, domain.Unknown, recs[1].TimeOfDay)
	assert.Equal(t, 3.5, recs[1].CourierExperienceYrs)
}

func TestNilDB(t *testing.T) {
	repo := NewSQLDeliveryRepository(nil, db.SQLite)

	_, err := repo.LoadDeliveries(context.Background())
	assert.Error(t, err)
	assert.Error(t, repo.ReplaceDeliveries(context.Background(), nil))
	assert.Error(t, InitSchema(nil, db.SQLite))
}
