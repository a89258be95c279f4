package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"missionops/cmd"
	httpadapter "missionops/internal/adapters/in/http"
	"missionops/internal/adapters/out/postgres/assignmentrepo"
	"missionops/internal/adapters/out/postgres/auditrepo"
	"missionops/internal/adapters/out/postgres/missionrepo"
	"missionops/internal/adapters/out/postgres/vehiclerepo"
	"missionops/internal/jobs"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	root, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Composition root failed: %v", err)
	}

	jobManager := jobs.NewJobManager(root.CreateAdvanceMissionsCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Jobs failed to start: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	threshold, err := strconv.ParseInt(goDotEnvVariable("BUDGET_COMMENT_THRESHOLD"), 10, 64)
	if err != nil {
		threshold = 0
	}

	return cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		BlobRoot:               goDotEnvVariable("BLOB_ROOT"),
		BlobBaseURL:            goDotEnvVariable("BLOB_BASE_URL"),
		SignedURLSecret:        goDotEnvVariable("SIGNED_URL_SECRET"),
		BudgetCommentThreshold: threshold,
		RoleBindings:           goDotEnvVariable("ROLE_BINDINGS"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// openDatabase connects through lib/pq, waits for the database to accept
// connections, then hands the connection to GORM.
func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	for attempt := range 10 {
		if err = sqlDB.Ping(); err == nil {
			break
		}
		time.Sleep(time.Duration(attempt+1) * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("database not reachable: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("initialize gorm: %w", err)
	}

	err = gormDB.AutoMigrate(
		&missionrepo.MissionOrderDTO{},
		&vehiclerepo.VehicleDTO{},
		&assignmentrepo.AssignmentDTO{},
		&auditrepo.AuditEntryDTO{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return gormDB, nil
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		root.CreateCreateMissionOrderCommandHandler(),
		root.CreateUpdateDraftCommandHandler(),
		root.CreateSubmitMissionOrderCommandHandler(),
		root.CreateApproveMissionOrderCommandHandler(),
		root.CreateSignMissionOrderCommandHandler(),
		root.CreateRejectMissionOrderCommandHandler(),
		root.CreateAttachMissionDocumentCommandHandler(),
		root.CreateCreateAssignmentCommandHandler(),
		root.CreateCloseAssignmentCommandHandler(),
		root.CreateGetPendingOrdersQueryHandler(),
		root.CreateGetVehicleAssignmentsQueryHandler(),
		root.CreateGetAuditTrailQueryHandler(),
		root.BlobStore(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
