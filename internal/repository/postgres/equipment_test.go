package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concrental-backend/internal/domain"
)

func newEquipment() *domain.Equipment {
	return &domain.Equipment{
		AccountID:       1,
		Name:            "Betoneira 400L",
		Category:        "Concreto",
		SerialNumber:    "BT-400-017",
		AcquisitionDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		PurchaseStatus:  domain.PurchaseStatusPaid,
	}
}

func TestEquipmentCreate_AllocatesNextID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT equipment_id FROM equipments WHERE account_id = \$1`).
		WithArgs(int32(1)).
		WillReturnRows(sqlmock.NewRows([]string{"equipment_id"}).AddRow("EQ041"))
	mock.ExpectExec(`INSERT INTO equipments`).
		WithArgs("EQ042", int32(1), "Betoneira 400L", "Concreto", "BT-400-017",
			sqlmock.AnyArg(), string(domain.EquipmentStatusAvailable), string(domain.PurchaseStatusPaid),
			0, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewEquipmentRepository(db)
	eq := newEquipment()
	require.NoError(t, repo.Create(context.Background(), eq))

	assert.Equal(t, "EQ042", eq.EquipmentID)
	assert.Equal(t, domain.EquipmentStatusAvailable, eq.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentCreate_FirstID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT equipment_id FROM equipments WHERE account_id = \$1`).
		WithArgs(int32(1)).
		WillReturnRows(sqlmock.NewRows([]string{"equipment_id"}))
	mock.ExpectExec(`INSERT INTO equipments`).
		WithArgs("EQ001", int32(1), "Betoneira 400L", "Concreto", "BT-400-017",
			sqlmock.AnyArg(), string(domain.EquipmentStatusAvailable), string(domain.PurchaseStatusPaid),
			0, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewEquipmentRepository(db)
	eq := newEquipment()
	require.NoError(t, repo.Create(context.Background(), eq))
	assert.Equal(t, "EQ001", eq.EquipmentID)
}

func TestEquipmentCreate_DuplicateSerial(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT equipment_id FROM equipments WHERE account_id = \$1`).
		WithArgs(int32(1)).
		WillReturnRows(sqlmock.NewRows([]string{"equipment_id"}).AddRow("EQ041"))
	mock.ExpectExec(`INSERT INTO equipments`).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	repo := NewEquipmentRepository(db)
	err = repo.Create(context.Background(), newEquipment())

	var dup *domain.DuplicateSerialError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "BT-400-017", dup.SerialNumber)
}

func TestEquipmentCreate_MalformedStoredID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT equipment_id FROM equipments WHERE account_id = \$1`).
		WithArgs(int32(1)).
		WillReturnRows(sqlmock.NewRows([]string{"equipment_id"}).AddRow("BROKEN"))
	mock.ExpectRollback()

	repo := NewEquipmentRepository(db)
	err = repo.Create(context.Background(), newEquipment())

	var integrity *domain.DataIntegrityError
	assert.True(t, errors.As(err, &integrity))
}

func TestEquipmentUpdate_LeavesStatusAlone(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// The SET list must not include status, whatever the in-memory copy says.
	mock.ExpectExec(`UPDATE equipments SET name=\$1, category=\$2, serial_number=\$3, acquisition_date=\$4, purchase_status=\$5, updated_on=\$6`).
		WithArgs("Betoneira 400L", "Concreto", "BT-400-017", sqlmock.AnyArg(),
			string(domain.PurchaseStatusPaid), sqlmock.AnyArg(), int32(1), "EQ001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewEquipmentRepository(db)
	eq := newEquipment()
	eq.EquipmentID = "EQ001"
	eq.Status = domain.EquipmentStatusRented

	require.NoError(t, repo.Update(context.Background(), eq))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentSetStatus_Toggles(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE equipments SET status=\$1, updated_on=\$2`).
		WithArgs(string(domain.EquipmentStatusMaintenance), sqlmock.AnyArg(),
			int32(1), "EQ001", string(domain.EquipmentStatusRented)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewEquipmentRepository(db)
	require.NoError(t, repo.SetStatus(context.Background(), 1, "EQ001", domain.EquipmentStatusMaintenance))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentSetStatus_RentedConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectExec(`UPDATE equipments SET status=\$1, updated_on=\$2`).
		WithArgs(string(domain.EquipmentStatusMaintenance), sqlmock.AnyArg(),
			int32(1), "EQ001", string(domain.EquipmentStatusRented)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT .+ FROM equipments WHERE account_id = \$1 AND equipment_id = \$2`).
		WithArgs(int32(1), "EQ001").
		WillReturnRows(sqlmock.NewRows([]string{
			"equipment_id", "account_id", "name", "category", "serial_number",
			"acquisition_date", "status", "purchase_status", "times_rented", "created_on", "updated_on",
		}).AddRow("EQ001", 1, "Betoneira 400L", "Concreto", "BT-400-017",
			now, string(domain.EquipmentStatusRented), string(domain.PurchaseStatusPaid), 3, now, now))

	repo := NewEquipmentRepository(db)
	err = repo.SetStatus(context.Background(), 1, "EQ001", domain.EquipmentStatusMaintenance)

	var conflict *domain.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Contains(t, conflict.Error(), "EQ001")
}

func TestEquipmentDelete_StillReferenced(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM equipments`).
		WithArgs(int32(1), "EQ001").
		WillReturnError(&pq.Error{Code: "23503"})

	repo := NewEquipmentRepository(db)
	err = repo.Delete(context.Background(), 1, "EQ001")

	var referential *domain.ReferentialIntegrityError
	require.True(t, errors.As(err, &referential))
	assert.Equal(t, "EQ001", referential.ID)
}

func TestEquipmentGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM equipments WHERE account_id = \$1 AND equipment_id = \$2`).
		WithArgs(int32(1), "EQ999").
		WillReturnRows(sqlmock.NewRows([]string{"equipment_id"}))

	repo := NewEquipmentRepository(db)
	_, err = repo.GetByID(context.Background(), 1, "EQ999")

	var notFound *domain.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}
