//cmd/seeder/main.go
package main

import (
    "database/sql"
    "flag"
    "fmt"
    "log"
    "os"

    _ "github.com/lib/pq"
    "golang.org/x/crypto/bcrypt"
)

// bcrypt work factor for staff passwords, high enough to resist offline
// brute force.
const hashCost = 12

// seedColaboradores holds the development staff accounts. Passwords are
// hashed at seed time, never stored in the seed data.
var seedColaboradores = []struct {
    Nome     string
    Email    string
    Password string
}{
    {"Maria Silva", "maria.silva@ipca.pt", "loja-social-dev"},
}

func main() {
    hashOnly := flag.String("hash", "", "print the bcrypt hash for a password and exit")
    flag.Parse()

    if *hashOnly != "" {
        hash, err := hashPassword(*hashOnly)
        if err != nil {
            log.Fatal(err)
        }
        fmt.Println(hash)
        return
    }

    dsn := os.Getenv("DATABASE_URL")
    db, err := sql.Open("postgres", dsn)
    if err != nil {
        log.Fatal(err)
    }
    defer db.Close()

    seedFiles := []string{
        "seed/campanhas.sql",
        "seed/beneficiarios.sql",
    }

    for _, file := range seedFiles {
        content, err := os.ReadFile(file)
        if err != nil {
            log.Fatalf("failed to read %s: %v", file, err)
        }

        _, err = db.Exec(string(content))
        if err != nil {
            log.Fatalf("failed to execute %s: %v", file, err)
        }
        fmt.Printf("Seeded: %s\n", file)
    }

    for _, c := range seedColaboradores {
        hash, err := hashPassword(c.Password)
        if err != nil {
            log.Fatalf("failed to hash password for %s: %v", c.Email, err)
        }
        _, err = db.Exec(`
            INSERT INTO colaboradores (nome, email, password_hash)
            VALUES ($1, $2, $3)
            ON CONFLICT (email) DO UPDATE SET nome = $1, password_hash = $3
        `, c.Nome, c.Email, hash)
        if err != nil {
            log.Fatalf("failed to seed colaborador %s: %v", c.Email, err)
        }
        fmt.Printf("Seeded colaborador: %s\n", c.Email)
    }

    fmt.Println("Database seeding completed successfully!")
}

func hashPassword(password string) (string, error) {
    hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
    if err != nil {
        return "", err
    }
    return string(hash), nil
}
