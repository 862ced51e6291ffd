package handlers_test

import (
	"net/http"
	"testing"

	"drone-delivery-api/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDrones(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("FROM Drone").
		WillReturnRows(sqlmock.NewRows([]string{"id", "model", "battery", "capacity"}).
			AddRow(1, "DJI Mavic", 80, 5).
			AddRow(2, "Parrot Anafi", 0, 3))

	w := doJSON(r, http.MethodGet, "/api/admin/drones", nil, adminSession(t, r))
	require.Equal(t, http.StatusOK, w.Code)

	var drones []models.Drone
	decodeBody(t, w, &drones)
	require.Len(t, drones, 2)
	assert.Equal(t, 0, drones[1].Battery)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDroneDefaultsBattery(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec("INSERT INTO Drone").
		WithArgs("DJI Mavic", 100, 5).
		WillReturnResult(sqlmock.NewResult(3, 1))

	w := doJSON(r, http.MethodPost, "/api/admin/drones",
		map[string]interface{}{"model": "DJI Mavic", "capacity": 5}, adminSession(t, r))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, w, &created)
	assert.Equal(t, int64(3), created.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDroneMissingFields(t *testing.T) {
	r, _ := newTestRouter(t)
	cookies := adminSession(t, r)

	w := doJSON(r, http.MethodPost, "/api/admin/drones",
		map[string]interface{}{"capacity": 5}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/admin/drones",
		map[string]interface{}{"model": "DJI Mavic"}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateDroneAcceptsZeroBattery(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec("UPDATE Drone SET").
		WithArgs("DJI Mavic", 0, 5, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doJSON(r, http.MethodPut, "/api/admin/drones/3",
		map[string]interface{}{"model": "DJI Mavic", "battery": 0, "capacity": 5}, adminSession(t, r))
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDroneMissingBattery(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPut, "/api/admin/drones/3",
		map[string]interface{}{"model": "DJI Mavic", "capacity": 5}, adminSession(t, r))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteDroneIsSilentNoOp(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec("DELETE FROM Drone").
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := doJSON(r, http.MethodDelete, "/api/admin/drones/999", nil, adminSession(t, r))
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePilot(t *testing.T) {
	r, mock := newTestRouter(t)
	cookies := adminSession(t, r)

	w := doJSON(r, http.MethodPost, "/api/admin/pilots",
		map[string]interface{}{"name": "Luca", "surname": "Bianchi", "shift": "mattina"}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code, "license missing")

	mock.ExpectExec("INSERT INTO Pilota").
		WithArgs("Luca", "Bianchi", "mattina", "A123").
		WillReturnResult(sqlmock.NewResult(2, 1))

	w = doJSON(r, http.MethodPost, "/api/admin/pilots",
		map[string]interface{}{"name": "Luca", "surname": "Bianchi", "shift": "mattina", "license": "A123"}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAndDeletePilot(t *testing.T) {
	r, mock := newTestRouter(t)
	cookies := adminSession(t, r)

	mock.ExpectExec("UPDATE Pilota SET").
		WithArgs("Luca", "Bianchi", "sera", "A123", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doJSON(r, http.MethodPut, "/api/admin/pilots/2",
		map[string]interface{}{"name": "Luca", "surname": "Bianchi", "shift": "sera", "license": "A123"}, cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	mock.ExpectExec("DELETE FROM Pilota").
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w = doJSON(r, http.MethodDelete, "/api/admin/pilots/2", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}
