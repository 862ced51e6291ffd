package store

import (
	"context"
	"testing"

	"drone-delivery-api/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewWithDB(sqlx.NewDb(db, "mysql")), mock
}

func TestMissionsBuildsOnlyGivenPredicates(t *testing.T) {
	st, mock := newMockStore(t)
	pilotID := int64(4)

	// Status and pilot set: exactly two bound arguments.
	mock.ExpectQuery(`AND m\.Stato = \? AND m\.IdPilota = \? ORDER BY`).
		WithArgs("in corso", pilotID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "time", "status", "rating", "drone_model", "pilot_name"}).
			AddRow(1, "2024-01-10", "09:00:00", "in corso", nil, "DJI Mavic", "Luca Bianchi"))

	missions, err := st.Missions(context.Background(), models.MissionFilter{
		Status:  "in corso",
		PilotID: &pilotID,
	})
	require.NoError(t, err)
	require.Len(t, missions, 1)
	assert.Equal(t, "in corso", missions[0].Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMissionsWithoutFiltersBindsNothing(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectQuery(`WHERE 1=1 ORDER BY m\.DataMissione DESC, m\.Ora DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "time", "status", "rating", "drone_model", "pilot_name"}))

	missions, err := st.Missions(context.Background(), models.MissionFilter{})
	require.NoError(t, err)
	assert.Empty(t, missions)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMissionsDateRangeInclusive(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectQuery(`AND m\.DataMissione >= \? AND m\.DataMissione <= \?`).
		WithArgs("2024-01-01", "2024-01-31").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "time", "status", "rating", "drone_model", "pilot_name"}))

	_, err := st.Missions(context.Background(), models.MissionFilter{
		DateFrom: "2024-01-01",
		DateTo:   "2024-01-31",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRoundsAverages(t *testing.T) {
	st, mock := newMockStore(t)

	countQuery := `SELECT COUNT\(\*\) FROM Missione WHERE Stato = \?`
	mock.ExpectQuery(countQuery).WithArgs("in corso").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(countQuery).WithArgs("completata").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(countQuery).WithArgs("annullata").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT AVG\(PesoTotale\) FROM Ordine`).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))
	mock.ExpectQuery(`SELECT AVG\(Valutazione\) FROM Missione`).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(7.248))

	d, err := st.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, d.MissionsInProgress)
	assert.Equal(t, 5, d.MissionsCompleted)
	assert.Equal(t, 2, d.MissionsCancelled)
	assert.Equal(t, 0.0, d.AvgOrderWeight, "no orders yet")
	assert.Equal(t, 7.25, d.AvgRating)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusCountsByDate(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectQuery("GROUP BY DataMissione, Stato").
		WillReturnRows(sqlmock.NewRows([]string{"date", "status", "count"}).
			AddRow("2024-03-02", "completata", 3).
			AddRow("2024-03-01", "annullata", 1))

	rows, err := st.StatusCountsByDate(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.StatusCount{Date: "2024-03-02", Status: "completata", Count: 3}, rows[0])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRateMissionOverwrites(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectExec("UPDATE Missione SET Valutazione").
		WithArgs(9, "perfetto", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, st.RateMission(context.Background(), 3, 9, "perfetto"))
	require.NoError(t, mock.ExpectationsWereMet())
}
