// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const associationsTable = "associations"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func loadSessionQuery(endpoint string) (string, []any, error) {
	return psql.
		Select("client_id", "secret_key", "created_at", "updated_at").
		From(associationsTable).
		Where(sq.Eq{"endpoint": endpoint}).
		ToSql()
}

func saveSessionQuery(endpoint, clientID, key string, now time.Time) (string, []any, error) {
	return psql.
		Insert(associationsTable).
		Columns("endpoint", "client_id", "secret_key", "created_at", "updated_at").
		Values(endpoint, clientID, key, now, now).
		Suffix("ON CONFLICT(endpoint) DO UPDATE SET " +
			"client_id = excluded.client_id, " +
			"secret_key = excluded.secret_key, " +
			"updated_at = excluded.updated_at").
		ToSql()
}

func deleteSessionQuery(endpoint string) (string, []any, error) {
	return psql.
		Delete(associationsTable).
		Where(sq.Eq{"endpoint": endpoint}).
		ToSql()
}
