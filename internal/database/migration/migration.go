package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_participants",
		SQL: `CREATE TABLE IF NOT EXISTS participants (
  id                BIGSERIAL   PRIMARY KEY,
  telegram_id       TEXT        NOT NULL UNIQUE,
  full_name         TEXT        NOT NULL,
  birth_date        DATE        NOT NULL,
  phone             TEXT        NOT NULL,
  distance_type     TEXT,
  start_number      TEXT        NOT NULL UNIQUE,
  registration_date TIMESTAMPTZ NOT NULL DEFAULT now(),
  is_active         BOOLEAN     NOT NULL DEFAULT true
);`,
	},
	{
		Name: "create_table_challenges",
		SQL: `CREATE TABLE IF NOT EXISTS challenges (
  id             BIGSERIAL   PRIMARY KEY,
  name           TEXT        NOT NULL,
  description    TEXT,
  challenge_type TEXT        NOT NULL,
  start_date     TIMESTAMPTZ NOT NULL,
  end_date       TIMESTAMPTZ NOT NULL,
  is_active      BOOLEAN     NOT NULL DEFAULT true,
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_events",
		SQL: `CREATE TABLE IF NOT EXISTS events (
  id                    BIGSERIAL   PRIMARY KEY,
  name                  TEXT        NOT NULL,
  description           TEXT,
  event_type            TEXT        NOT NULL,
  start_date            TIMESTAMPTZ NOT NULL,
  end_date              TIMESTAMPTZ NOT NULL,
  registration_deadline TIMESTAMPTZ,
  max_participants      INTEGER,
  status                TEXT        NOT NULL DEFAULT 'upcoming',
  is_active             BOOLEAN     NOT NULL DEFAULT true,
  created_at            TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_submissions",
		SQL: `CREATE TABLE IF NOT EXISTS submissions (
  id                BIGSERIAL   PRIMARY KEY,
  participant_id    BIGINT      NOT NULL REFERENCES participants(id),
  challenge_id      BIGINT      NOT NULL REFERENCES challenges(id) ON DELETE CASCADE,
  submission_date   TIMESTAMPTZ NOT NULL DEFAULT now(),
  media_key         TEXT,
  media_size_bytes  BIGINT,
  result_value      DOUBLE PRECISION,
  result_unit       TEXT,
  comment           TEXT,
  status            TEXT        NOT NULL DEFAULT 'pending',
  moderator_comment TEXT
);`,
	},
	{
		Name: "create_table_admins",
		SQL: `CREATE TABLE IF NOT EXISTS admins (
  id            BIGSERIAL   PRIMARY KEY,
  username      TEXT        NOT NULL UNIQUE,
  full_name     TEXT,
  password_hash TEXT        NOT NULL,
  added_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  is_active     BOOLEAN     NOT NULL DEFAULT true
);`,
	},
	{
		Name: "create_index_submissions_participant",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_submissions_participant ON submissions (participant_id);`,
	},
	{
		Name: "create_index_submissions_challenge",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_submissions_challenge ON submissions (challenge_id);`,
	},
	{
		Name: "create_index_submissions_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_submissions_status ON submissions (status);`,
	},
	{
		Name: "create_index_events_start_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_events_start_date ON events (start_date);`,
	},
}

// EnsureMigrated checks for the sentinel 'participants' table and runs the
// migration steps if it is absent.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	start := time.Now()

	logJSON(map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.participants') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		logJSON(map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logJSON(map[string]any{
				"component":      "database",
				"event":          "db_migration_failed",
				"status":         "error",
				"migration_step": step.Name,
				"error_message":  err.Error(),
				"db_host":        dbHost,
				"duration_ms":    time.Since(start).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
