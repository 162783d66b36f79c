//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword matches the bcrypt hash every fixture user is created with.
const TestPassword = "password123"

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	name, _, _ := strings.Cut(email, "@")
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, full_name, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, name, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func BlockUser(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
}

// CreateTestLot inserts a lot with spotCount available spots and returns the
// lot id and the spot ids in ascending order.
func CreateTestLot(t *testing.T, db DBLike, name string, rateCents int64, spotCount int) (int64, []int64) {
	t.Helper()

	ctx := context.Background()
	var lotID int64
	err := db.QueryRow(ctx,
		"INSERT INTO lots (name, address, pin_code, hourly_rate_cents, spot_count) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		name, name+" Road", "560001", rateCents, spotCount).Scan(&lotID)
	require.NoError(t, err)

	spotIDs := make([]int64, spotCount)
	for i := range spotIDs {
		err := db.QueryRow(ctx, "INSERT INTO spots (lot_id) VALUES ($1) RETURNING id", lotID).Scan(&spotIDs[i])
		require.NoError(t, err)
	}

	return lotID, spotIDs
}

// CreateClosedReservation inserts a finished reservation without touching
// spot status.
func CreateClosedReservation(t *testing.T, db DBLike, spotID int64, userID uuid.UUID, startedAt, endedAt time.Time, costCents int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO reservations (spot_id, user_id, started_at, ended_at, cost_cents) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		spotID, userID, startedAt, endedAt, costCents).Scan(&id)
	require.NoError(t, err)

	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
