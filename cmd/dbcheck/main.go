/*
Package main is a connection diagnostic for the identity database.

It connects with the configured DSN, runs migrations, lists the public tables,
and performs a write-then-delete round trip against the sessions-adjacent
schema to confirm permissions. Intended for debugging deployments, not for
production use.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"time"

	"sangini/internal/app/db"
	"sangini/internal/configs"
	"sangini/internal/pkg/logx"
)

var dsnCredentials = regexp.MustCompile(`//[^@/]+@`)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logx.InitGlobalLogger(cfg.Environment == "development")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logx.Info("Testing database connection...",
		"dsn", dsnCredentials.ReplaceAllString(cfg.DatabaseDSN, "//***:***@"),
	)

	pool, err := db.NewPool(cfg.DatabaseDSN)
	if err != nil {
		logx.Fatal(err, "Connection failed")
	}
	defer pool.Close()

	store := db.NewStore(pool)
	if err := store.Ping(ctx); err != nil {
		logx.Fatal(err, "Ping failed")
	}
	logx.Info("Successfully connected.")

	rows, err := pool.Query(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name`)
	if err != nil {
		logx.Fatal(err, "Failed to list tables")
	}

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			logx.Fatal(err, "Failed to scan table name")
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		logx.Fatal(err, "Failed while reading tables")
	}
	logx.Info("Available tables.", "tables", fmt.Sprintf("%v", tables))

	// Write test: insert and remove a throwaway row.
	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS connection_test (test boolean, created_at timestamptz)`); err != nil {
		logx.Fatal(err, "Write test failed: create table")
	}
	if _, err := pool.Exec(ctx, `INSERT INTO connection_test (test, created_at) VALUES (true, now())`); err != nil {
		logx.Fatal(err, "Write test failed: insert")
	}
	logx.Info("Write test successful.")

	if _, err := pool.Exec(ctx, `DROP TABLE connection_test`); err != nil {
		logx.Fatal(err, "Cleanup failed")
	}
	logx.Info("Cleanup successful.")

	logx.Info("Database check complete.")
}
