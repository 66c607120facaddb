package main

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/moneytracker/api/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStorage struct{ closed bool }

func (f *failingStorage) Get(string) ([]byte, error)              { return nil, nil }
func (f *failingStorage) Set(string, []byte, time.Duration) error { return nil }
func (f *failingStorage) Delete(string) error                     { return nil }
func (f *failingStorage) Reset() error                            { return nil }
func (f *failingStorage) Close() error {
	f.closed = true
	return errors.New("redis gone")
}

func TestCloseDepsReleasesPoolAndStorage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()
	storage := &failingStorage{}

	err = closeDeps(&app.Deps{SQLDB: db, RateLimitStorage: storage}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorContains(t, err, "redis gone")
	assert.True(t, storage.closed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseDepsNothingToRelease(t *testing.T) {
	assert.NoError(t, closeDeps(&app.Deps{}, slog.New(slog.NewTextHandler(io.Discard, nil))))
}
