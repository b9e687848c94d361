package db

import (
	"database/sql"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/dasdy/layerlens/model"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStorage struct {
	db      *sql.DB
	verbose bool
}

func NewStorage(db *sql.DB, verbose bool) *SQLiteStorage {
	return &SQLiteStorage{db: db, verbose: verbose}
}

func InitDBStorage(db *sql.DB) error {
	statements := []string{
		`create table if not exists layer_events(
			default_mask int, momentary_mask int, top_layer int, ts datetime)`,
		`create index if not exists layer_events_tsix on layer_events (ts ASC)`,
		`create table if not exists key_events(row int, col int, pressed bool, ts datetime)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("could not init storage with %q: %w", stmt, err)
		}
	}

	return nil
}

func NewStorageFromPath(path string, verbose bool) (*SQLiteStorage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open db %s: %w", path, err)
	}

	// :memory: databases are per connection.
	if path == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	if err := InitDBStorage(conn); err != nil {
		conn.Close()

		return nil, err
	}

	return NewStorage(conn, verbose), nil
}

func (s *SQLiteStorage) Store(event model.Event) error {
	return s.storeAt(event, time.Now())
}

func (s *SQLiteStorage) storeAt(event model.Event, ts time.Time) error {
	var err error

	switch e := event.(type) {
	case model.LayerEvent:
		state := model.LayerState{Default: e.Default, Momentary: e.Momentary}
		_, err = s.db.Exec(`insert into layer_events(default_mask, momentary_mask, top_layer, ts)
		    values(?, ?, ?, ?)`,
			int64(e.Default), int64(e.Momentary), state.HighestLayer(), ts)
	case model.KeyEvent:
		_, err = s.db.Exec(`insert into key_events(row, col, pressed, ts) values(?, ?, ?, ?)`,
			e.Row, e.Col, e.Pressed, ts)
	default:
		return fmt.Errorf("could not store event of type %T", event)
	}

	if err != nil {
		return fmt.Errorf("could not store event %+v: %w", event, err)
	}

	if s.verbose {
		slog.Debug("Stored event", "event", event)
	}

	return nil
}

// GatherLayerUsage counts stored layer reports per top active layer.
func (s *SQLiteStorage) GatherLayerUsage() ([]model.LayerUsage, error) {
	rows, err := s.db.Query(
		`select top_layer, count(*) as cnt
        from layer_events
        group by top_layer
        order by top_layer`)
	if err != nil {
		return nil, fmt.Errorf("could not query layer usage: %w", err)
	}

	defer rows.Close()

	result := make([]model.LayerUsage, 0)

	for rows.Next() {
		var usage model.LayerUsage

		if err := rows.Scan(&usage.Layer, &usage.Count); err != nil {
			return nil, fmt.Errorf("could not scan layer usage: %w", err)
		}

		result = append(result, usage)
	}

	return result, rows.Err()
}

// AllIterator yields every stored layer event in time order.
func (s *SQLiteStorage) AllIterator() (iter.Seq[model.LayerEventWithTimestamp], error) {
	rows, err := s.db.Query(
		`select default_mask, momentary_mask, ts
        from layer_events
        order by ts, rowid`)
	if err != nil {
		return nil, fmt.Errorf("could not query layer events: %w", err)
	}

	return func(yield func(model.LayerEventWithTimestamp) bool) {
		defer rows.Close()

		for rows.Next() {
			var (
				def, mom int64
				ts       time.Time
			)

			if err := rows.Scan(&def, &mom, &ts); err != nil {
				slog.Error("could not scan layer event", "error", err)

				return
			}

			item := model.LayerEventWithTimestamp{Default: uint32(def), Momentary: uint32(mom), Timestamp: ts}
			if !yield(item) {
				return
			}
		}
	}, nil
}

func (s *SQLiteStorage) Close() {
	if err := s.db.Close(); err != nil {
		slog.Error("could not close db", "error", err)
	}
}
