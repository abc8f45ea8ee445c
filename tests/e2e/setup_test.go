//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/lanpartylabs/tournament_api/internal/config"
	"github.com/lanpartylabs/tournament_api/internal/database/migrate"
	"github.com/lanpartylabs/tournament_api/internal/health"
	"github.com/lanpartylabs/tournament_api/internal/middleware"
	teamModel "github.com/lanpartylabs/tournament_api/internal/team/model"
	teamRouter "github.com/lanpartylabs/tournament_api/internal/team/router"
	tournamentRouter "github.com/lanpartylabs/tournament_api/internal/tournament/router"
	userRepository "github.com/lanpartylabs/tournament_api/internal/user/repository"
)

// E2ETestSuite runs the full HTTP stack against a real PostgreSQL instance
// with the production migrations applied, exercising the row locking path
// that sqlite-backed tests cannot reach.
type E2ETestSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	db          *gorm.DB
	engine      *gin.Engine
}

// SetupSuite runs once before all tests.
func (s *E2ETestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(s.T(), err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "failed to get connection string")

	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(s.T(), err, "failed to connect to database")
	s.db = db

	require.NoError(s.T(), os.Setenv("MIGRATIONS_PATH", "../../migrations"))
	require.NoError(s.T(), migrate.Migrate(db), "failed to apply migrations")

	log := zap.NewNop().Sugar()
	cfg := config.RegistrationConfig{
		CountedStatuses: []string{teamModel.StatusPending, teamModel.StatusConfirmed},
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Authenticate(userRepository.New(db), log))
	health.RegisterRoutes(r, db, log)
	tournamentRouter.RegisterRoutes(r, db, log)
	teamRouter.RegisterRoutes(r, db, cfg, log)
	s.engine = r
}

// TearDownSuite runs once after all tests.
func (s *E2ETestSuite) TearDownSuite() {
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

// SetupTest runs before each test.
func (s *E2ETestSuite) SetupTest() {
	s.db.Exec("TRUNCATE TABLE teams CASCADE")
	s.db.Exec("TRUNCATE TABLE tournaments CASCADE")
	s.db.Exec("TRUNCATE TABLE users CASCADE")
}

// request performs an in-process HTTP request against the engine.
func (s *E2ETestSuite) request(method, path, userID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.UserHeader, userID)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

// seedUser inserts a user row directly.
func (s *E2ETestSuite) seedUser(email, role string) string {
	id := uuid.NewString()
	err := s.db.Exec(
		"INSERT INTO users (id, email, role) VALUES (?, ?, ?)",
		id, email, role,
	).Error
	require.NoError(s.T(), err, "failed to seed user")
	return id
}

// seedTournament inserts a tournament row directly.
func (s *E2ETestSuite) seedTournament(status string, playersPerTeam, maxTeams int, deadline time.Time) string {
	id := uuid.NewString()
	creatorID := s.seedUser(uuid.NewString()+"@example.com", "admin")
	now := time.Now()
	err := s.db.Exec(
		`INSERT INTO tournaments
			(id, title, game, players_per_team, max_teams, start_date, end_date,
			 registration_deadline, status, created_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, "E2E Cup", "CS2", playersPerTeam, maxTeams,
		now.Add(48*time.Hour), now.Add(72*time.Hour), deadline, status, creatorID,
	).Error
	require.NoError(s.T(), err, "failed to seed tournament")
	return id
}

// decodeBody unmarshals a recorded JSON response body.
func (s *E2ETestSuite) decodeBody(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// errorMessage extracts the error field from a recorded response.
func (s *E2ETestSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var body map[string]string
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

// registrationBody builds a registration request payload.
func registrationBody(tournamentID, teamName string, players []teamModel.Player) map[string]any {
	return map[string]any{
		"tournamentId": tournamentID,
		"teamName":     teamName,
		"players":      players,
	}
}
