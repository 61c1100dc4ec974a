package repositories

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	intconfig "console/internal/config"
	intdb "console/internal/db"
	"console/internal/domain"
)

const sessionTable = "console_sessions"

// SessionRepository persists console sessions in MySQL, one row per key.
// Session ids are stored as blake2b-256 digests, never in clear.
type SessionRepository struct {
	DB *sql.DB
}

func (r SessionRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func hashSessionID(id string) string {
	sum := blake2b.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])
}

// EnsureTable creates console_sessions when it is missing.
func (r SessionRepository) EnsureTable(ctx context.Context) error {
	db := r.db()
	if db == nil {
		return fmt.Errorf("db not available")
	}
	if intdb.HasTable(db, sessionTable) {
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS console_sessions (
	session_hash CHAR(64) NOT NULL,
	skey VARCHAR(64) NOT NULL,
	svalue MEDIUMTEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	PRIMARY KEY (session_hash, skey),
	KEY idx_updated (updated_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return domain.InternalError{Msg: "create console_sessions", Err: err}
	}
	return nil
}

// Load returns the stored values of a session, or nil when it has none.
func (r SessionRepository) Load(ctx context.Context, id string) (map[string]string, error) {
	db := r.db()
	if db == nil {
		return nil, fmt.Errorf("db not available")
	}
	rows, err := db.QueryContext(ctx,
		`SELECT skey, svalue FROM console_sessions WHERE session_hash=?`, hashSessionID(id))
	if err != nil {
		return nil, domain.InternalError{Msg: "load session", Err: err}
	}
	defer rows.Close()

	var out map[string]string
	for rows.Next() {
		var k, v sql.NullString
		if err := rows.Scan(&k, &v); err != nil {
			return nil, domain.InternalError{Msg: "scan session", Err: err}
		}
		key := strings.TrimSpace(k.String)
		if key == "" {
			continue
		}
		if out == nil {
			out = map[string]string{}
		}
		out[key] = v.String
	}
	return out, rows.Err()
}

// Save replaces every stored value of a session in one transaction.
func (r SessionRepository) Save(ctx context.Context, id string, values map[string]string) error {
	db := r.db()
	if db == nil {
		return fmt.Errorf("db not available")
	}
	hash := hashSessionID(id)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return domain.InternalError{Msg: "begin session save", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM console_sessions WHERE session_hash=?`, hash); err != nil {
		return domain.InternalError{Msg: "clear session", Err: err}
	}

	if len(values) > 0 {
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		placeholders := make([]string, 0, len(keys))
		args := make([]any, 0, len(keys)*3)
		for _, k := range keys {
			placeholders = append(placeholders, "(?,?,?)")
			args = append(args, hash, k, values[k])
		}
		stmt := `INSERT INTO console_sessions (session_hash, skey, svalue) VALUES ` + strings.Join(placeholders, ",")
		if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
			return domain.InternalError{Msg: "store session", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.InternalError{Msg: "commit session", Err: err}
	}
	return nil
}

// Delete forgets a session entirely.
func (r SessionRepository) Delete(ctx context.Context, id string) error {
	db := r.db()
	if db == nil {
		return fmt.Errorf("db not available")
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM console_sessions WHERE session_hash=?`, hashSessionID(id)); err != nil {
		return domain.InternalError{Msg: "delete session", Err: err}
	}
	return nil
}

// PurgeIdle drops sessions not written since before cutoff and returns the
// number of rows removed.
func (r SessionRepository) PurgeIdle(ctx context.Context, cutoff time.Time) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, fmt.Errorf("db not available")
	}
	res, err := db.ExecContext(ctx, `DELETE FROM console_sessions WHERE updated_at < ?`, cutoff)
	if err != nil {
		return 0, domain.InternalError{Msg: "purge sessions", Err: err}
	}
	n, _ := res.RowsAffected()
	return n, nil
}
