package database

import (
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// OpenDB returns the connection pool for the SQL-backed store. The DSN
// comes from the DB_DSN environment variable; callers should fall back
// to the file store when it is unset.
func OpenDB() (*sql.DB, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "root@tcp(127.0.0.1:3306)/crowntrade?parseTime=true"
	}
	return OpenDBWithDSN(dsn)
}

// OpenDBWithDSN creates and configures a pool for any DSN string.
func OpenDBWithDSN(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil, err
	}

	log.Println("Database connection pool established")
	return db, nil
}
