// Copyright 2025 BestBox Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package storage opens the relational store shared by checkpoints,
// sessions and the audit log.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/bestbox/bestbox/pkg/config"
)

// DB wraps the connection with its dialect so stores can adjust
// placeholders and DDL.
type DB struct {
	*sql.DB
	Dialect string
}

// Open connects per config and verifies connectivity.
func Open(cfg config.DatabaseConfig) (*DB, error) {
	driver := cfg.Driver
	dialect := driver
	switch driver {
	case "sqlite3":
		dialect = "sqlite"
	case "postgres", "mysql":
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: sqlite3, postgres, mysql)", driver)
	}

	db, err := sql.Open(driver, cfg.ResolveDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	return &DB{DB: db, Dialect: dialect}, nil
}

// Bind rewrites ? placeholders to $n for postgres. Queries are written in
// the ? style; sqlite and mysql use them as-is.
func (d *DB) Bind(query string) string {
	if d.Dialect != "postgres" {
		return query
	}
	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
		} else {
			sb.WriteByte(query[i])
		}
	}
	return sb.String()
}

// AutoIncrement returns the dialect's auto-increment primary key clause.
func (d *DB) AutoIncrement() string {
	switch d.Dialect {
	case "postgres":
		return "BIGSERIAL PRIMARY KEY"
	case "mysql":
		return "BIGINT PRIMARY KEY AUTO_INCREMENT"
	default:
		return "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
}
