package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SetupPostgresForIntegration returns a DSN for a throwaway Postgres.
// A TEST_DB_DSN environment variable short-circuits the container
// start, for CI setups that provide their own database.
func SetupPostgresForIntegration() (string, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		waitForPostgres(dsn)
		return dsn, func() {}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "worklane",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=worklane sslmode=disable", host, port.Port())
	waitForPostgres(dsn)

	cleanup := func() {
		_ = pg.Terminate(ctx)
	}

	return dsn, cleanup
}

func waitForPostgres(dsn string) {
	var err error
	for i := 0; i < 10; i++ {
		var db *sql.DB
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			err = db.Ping()
			_ = db.Close()
			if err == nil {
				return
			}
		}
		time.Sleep(1 * time.Second)
	}
	log.Fatal(err)
}
