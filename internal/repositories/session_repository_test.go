package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"console/internal/domain"
)

func TestSessionLoad(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT skey, svalue FROM console_sessions").
		WithArgs(hashSessionID("sid-1")).
		WillReturnRows(sqlmock.NewRows([]string{"skey", "svalue"}).
			AddRow("adminToken", "tok").
			AddRow("adminData", `{"_id":"a1"}`))

	repo := SessionRepository{DB: db}
	got, err := repo.Load(context.Background(), "sid-1")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got["adminToken"] != "tok" || got["adminData"] != `{"_id":"a1"}` {
		t.Fatalf("unexpected values %v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionLoadUnknownIsNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT skey, svalue FROM console_sessions").
		WillReturnRows(sqlmock.NewRows([]string{"skey", "svalue"}))

	got, err := SessionRepository{DB: db}.Load(context.Background(), "nope")
	if err != nil || got != nil {
		t.Fatalf("expected nil map, got %v (%v)", got, err)
	}
}

func TestSessionSaveReplacesRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	hash := hashSessionID("sid-2")
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM console_sessions WHERE session_hash").
		WithArgs(hash).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO console_sessions").
		WithArgs(hash, "paymentReference", "ref-1", hash, "token", "tok").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err = SessionRepository{DB: db}.Save(context.Background(), "sid-2", map[string]string{
		"token":            "tok",
		"paymentReference": "ref-1",
	})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionSaveRollsBackOnInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM console_sessions").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO console_sessions").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = SessionRepository{DB: db}.Save(context.Background(), "sid", map[string]string{"token": "t"})
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionEnsureTableCreatesWhenMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("console_sessions").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS console_sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := (SessionRepository{DB: db}).EnsureTable(context.Background()); err != nil {
		t.Fatalf("EnsureTable error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionPurgeIdle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("DELETE FROM console_sessions WHERE updated_at").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := SessionRepository{DB: db}.PurgeIdle(context.Background(), cutoff)
	if err != nil || n != 4 {
		t.Fatalf("expected 4 purged, got %d (%v)", n, err)
	}
}

func TestHashSessionIDIsStable(t *testing.T) {
	a := hashSessionID("same")
	if a != hashSessionID("same") || len(a) != 64 {
		t.Fatalf("unexpected digest %q", a)
	}
	if a == hashSessionID("other") {
		t.Fatalf("different ids must not collide")
	}
}
