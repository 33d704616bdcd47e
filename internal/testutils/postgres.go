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
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/improvemycity/portal-go/db"
)

func openMigrated(dsn string) *gorm.DB {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}
	return gormDB
}

// waitForPostgres pings until the server accepts connections. The
// ready-log wait fires once for the temporary init server, so a plain
// connection check is still needed.
func waitForPostgres(dsn string) error {
	var err error
	for i := 0; i < 10; i++ {
		var sqlDB *sql.DB
		if sqlDB, err = sql.Open("postgres", dsn); err == nil {
			if err = sqlDB.Ping(); err == nil {
				return sqlDB.Close()
			}
			_ = sqlDB.Close()
		}
		time.Sleep(time.Second)
	}
	return err
}

// SetupPostgresForIntegration provides a migrated database for
// integration tests. Set TEST_DB_DSN to reuse an external instance;
// otherwise a throwaway postgres container is started.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		return openMigrated(dsn), func() {}
	}

	ctx := context.Background()
	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: "postgres:15",
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_DB":       "improvemycity",
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
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

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/improvemycity?sslmode=disable", host, port.Port())
	if err := waitForPostgres(dsn); err != nil {
		log.Fatal(err)
	}

	return openMigrated(dsn), func() {
		_ = pg.Terminate(ctx)
	}
}
