// internal/db/db.go
package db

import (
    "context"
    "database/sql"
    "fmt"
    "log"
    "os"
    "time"

    _ "github.com/lib/pq"
)

// Connect opens the PostgreSQL pool from DATABASE_URL, or from the discrete
// DB_* variables when DATABASE_URL is not set. The pool is the only shared
// resource between requests, so its limits are pinned here.
func Connect() (*sql.DB, error) {
    dsn := os.Getenv("DATABASE_URL")
    if dsn == "" {
        user := os.Getenv("DB_USER")
        pass := os.Getenv("DB_PASSWORD")
        host := os.Getenv("DB_HOST")
        port := os.Getenv("DB_PORT")
        name := os.Getenv("DB_NAME")

        log.Println("DB_USER:", user)
        log.Println("DB_NAME:", name)
        log.Println("DB_HOST:", host)

        dsn = fmt.Sprintf(
            "postgres://%s:%s@%s:%s/%s?sslmode=disable",
            user, pass, host, port, name,
        )
    }

    pool, err := sql.Open("postgres", dsn)
    if err != nil {
        return nil, fmt.Errorf("failed to open DB: %w", err)
    }

    pool.SetMaxOpenConns(10)
    pool.SetMaxIdleConns(5)
    pool.SetConnMaxLifetime(30 * time.Minute)

    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if err := pool.PingContext(ctx); err != nil {
        return nil, fmt.Errorf("failed to ping DB: %w", err)
    }

    log.Println("✅ Conectado à base de dados PostgreSQL")
    return pool, nil
}
