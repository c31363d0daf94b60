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

	"sinistro-sync/internal/domain/sinistro"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertSinistro stores s as the portal would create it.
func InsertSinistro(t *testing.T, db DBLike, s *sinistro.Sinistro) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO sinistros (id, numero, titulo, cliente_nome, status, created_at, updated_at,
		                       rd_deal_id, rd_stage_id, sync_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.Numero, s.Titulo, s.ClienteNome, s.Status.String(), s.CreatedAt, s.UpdatedAt,
		s.RDDealID, s.RDStageID, string(s.SyncStatus))
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// SinistroStatus reads the stored status and sync bookkeeping of a sinistro.
func SinistroStatus(t *testing.T, db DBLike, id uuid.UUID) (status string, syncStatus string, dealID *string) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT status, sync_status, rd_deal_id FROM sinistros WHERE id = $1", id).
		Scan(&status, &syncStatus, &dealID)
	require.NoError(t, err)
	return status, syncStatus, dealID
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
