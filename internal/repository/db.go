package repository

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Регистрация драйвера PostgreSQL
)

// Настройки пула: снимки и откаты держат соединение дольше обычного CRUD
// (выдача номера версии и обновление указателя идут вокруг загрузки архива),
// поэтому пул небольшой, а простаивающие соединения живут недолго.
const (
	dbMaxOpenConns    = 16
	dbMaxIdleConns    = 8
	dbConnMaxLifetime = 30 * time.Minute
	dbConnMaxIdleTime = 2 * time.Minute
)

// ErrEmptyDSN возвращается, когда строка подключения не задана.
var ErrEmptyDSN = errors.New("строка подключения к БД пуста")

// NewPostgresDB открывает пул соединений с PostgreSQL и проверяет его пингом.
func NewPostgresDB(dsn string) (*sqlx.DB, error) {
	if dsn == "" {
		return nil, ErrEmptyDSN
	}

	log.Printf("[DB] Подключение к PostgreSQL...")

	// sqlx.Connect сам выполняет первый Ping
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxLifetime(dbConnMaxLifetime)
	db.SetConnMaxIdleTime(dbConnMaxIdleTime)

	log.Println("[DB] Пул соединений с PostgreSQL готов")
	return db, nil
}
