//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lanpartylabs/tournament_api/internal/config"
	"github.com/lanpartylabs/tournament_api/internal/middleware"
	teamModel "github.com/lanpartylabs/tournament_api/internal/team/model"
	teamRouter "github.com/lanpartylabs/tournament_api/internal/team/router"
	tournamentRouter "github.com/lanpartylabs/tournament_api/internal/tournament/router"
	userRepository "github.com/lanpartylabs/tournament_api/internal/user/repository"
)

type testUser struct {
	ID        string    `gorm:"primaryKey;column:id"`
	Email     string    `gorm:"column:email;not null"`
	Role      string    `gorm:"column:role;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (testUser) TableName() string {
	return "users"
}

type testTournament struct {
	ID                   string    `gorm:"primaryKey;column:id"`
	Title                string    `gorm:"column:title;not null"`
	Description          string    `gorm:"column:description"`
	Game                 string    `gorm:"column:game;not null"`
	PlayersPerTeam       int       `gorm:"column:players_per_team;not null"`
	MaxTeams             int       `gorm:"column:max_teams;not null"`
	StartDate            time.Time `gorm:"column:start_date"`
	EndDate              time.Time `gorm:"column:end_date"`
	RegistrationDeadline time.Time `gorm:"column:registration_deadline"`
	Status               string    `gorm:"column:status;not null"`
	CreatedByID          string    `gorm:"column:created_by;not null"`
	CreatedAt            time.Time `gorm:"column:created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (testTournament) TableName() string {
	return "tournaments"
}

type testTeam struct {
	ID           string               `gorm:"primaryKey;column:id"`
	TournamentID string               `gorm:"column:tournament_id;not null"`
	TeamName     string               `gorm:"column:team_name;not null"`
	CaptainID    string               `gorm:"column:captain_id;not null"`
	Players      teamModel.PlayerList `gorm:"column:players;type:text"`
	Status       string               `gorm:"column:status;not null"`
	RegisteredAt time.Time            `gorm:"column:registered_at"`
}

func (testTeam) TableName() string {
	return "teams"
}

type testApp struct {
	db     *gorm.DB
	engine *gin.Engine
}

func setupApp(t *testing.T) *testApp {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&testUser{}, &testTournament{}, &testTeam{}))

	log := zap.NewNop().Sugar()
	cfg := config.RegistrationConfig{
		CountedStatuses: []string{teamModel.StatusPending, teamModel.StatusConfirmed},
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Authenticate(userRepository.New(db), log))
	tournamentRouter.RegisterRoutes(r, db, log)
	teamRouter.RegisterRoutes(r, db, cfg, log)

	return &testApp{db: db, engine: r}
}

func (a *testApp) seedUser(t *testing.T, email, role string) string {
	id := uuid.NewString()
	require.NoError(t, a.db.Create(&testUser{ID: id, Email: email, Role: role}).Error)
	return id
}

func (a *testApp) seedTournament(t *testing.T, status string, playersPerTeam, maxTeams int) string {
	id := uuid.NewString()
	now := time.Now()
	require.NoError(t, a.db.Create(&testTournament{
		ID:                   id,
		Title:                "Integration Cup",
		Game:                 "CS2",
		PlayersPerTeam:       playersPerTeam,
		MaxTeams:             maxTeams,
		StartDate:            now.Add(48 * time.Hour),
		EndDate:              now.Add(72 * time.Hour),
		RegistrationDeadline: now.Add(24 * time.Hour),
		Status:               status,
		CreatedByID:          a.seedUser(t, uuid.NewString()+"@example.com", "admin"),
		CreatedAt:            now,
		UpdatedAt:            now,
	}).Error)
	return id
}

func (a *testApp) request(method, path, userID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.UserHeader, userID)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func registrationBody(tournamentID string, players []teamModel.Player) map[string]any {
	return map[string]any{
		"tournamentId": tournamentID,
		"teamName":     "Night Owls",
		"players":      players,
	}
}

func fullRoster(n int) []teamModel.Player {
	players := make([]teamModel.Player, 0, n)
	for i := 0; i < n; i++ {
		players = append(players, teamModel.Player{
			PlayerName:      fmt.Sprintf("Player %d", i+1),
			GameUsername:    fmt.Sprintf("player%d", i+1),
			DiscordUsername: fmt.Sprintf("player%d#000%d", i+1, i+1),
		})
	}
	return players
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestRegistrationFlow(t *testing.T) {
	t.Run("registered team appears on the tournament page", func(t *testing.T) {
		app := setupApp(t)
		captainID := app.seedUser(t, "captain@example.com", "standard")
		tournamentID := app.seedTournament(t, "open", 2, 8)

		players := fullRoster(2)
		w := app.request(http.MethodPost, "/teams", captainID,
			registrationBody(tournamentID, players))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "pending", created["status"])

		w = app.request(http.MethodGet, "/tournaments/"+tournamentID, "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var detail struct {
			Teams []struct {
				TeamName string `json:"teamName"`
				Captain  struct {
					ID    string `json:"id"`
					Email string `json:"email"`
				} `json:"captain"`
				Players []teamModel.Player `json:"players"`
				Status  string             `json:"status"`
			} `json:"teams"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		require.Len(t, detail.Teams, 1)
		assert.Equal(t, "Night Owls", detail.Teams[0].TeamName)
		assert.Equal(t, captainID, detail.Teams[0].Captain.ID)
		assert.Equal(t, "captain@example.com", detail.Teams[0].Captain.Email)
		assert.Equal(t, players, detail.Teams[0].Players)
		assert.Equal(t, "pending", detail.Teams[0].Status)
	})

	t.Run("unknown identity header is rejected", func(t *testing.T) {
		app := setupApp(t)
		tournamentID := app.seedTournament(t, "open", 1, 8)

		w := app.request(http.MethodPost, "/teams", uuid.NewString(),
			registrationBody(tournamentID, fullRoster(1)))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Unauthenticated", errorMessage(t, w))
	})

	t.Run("anonymous registration is rejected", func(t *testing.T) {
		app := setupApp(t)
		tournamentID := app.seedTournament(t, "open", 1, 8)

		w := app.request(http.MethodPost, "/teams", "",
			registrationBody(tournamentID, fullRoster(1)))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Unauthenticated", errorMessage(t, w))
	})

	t.Run("capacity fills across requests", func(t *testing.T) {
		app := setupApp(t)
		tournamentID := app.seedTournament(t, "open", 1, 2)

		for i := 0; i < 2; i++ {
			captainID := app.seedUser(t, fmt.Sprintf("captain%d@example.com", i), "standard")
			w := app.request(http.MethodPost, "/teams", captainID,
				registrationBody(tournamentID, fullRoster(1)))
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		captainID := app.seedUser(t, "late@example.com", "standard")
		w := app.request(http.MethodPost, "/teams", captainID,
			registrationBody(tournamentID, fullRoster(1)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Tournament is full", errorMessage(t, w))
	})

	t.Run("roster size mismatch names the required size", func(t *testing.T) {
		app := setupApp(t)
		captainID := app.seedUser(t, "captain@example.com", "standard")
		tournamentID := app.seedTournament(t, "open", 5, 8)

		w := app.request(http.MethodPost, "/teams", captainID,
			registrationBody(tournamentID, []teamModel.Player{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Team must have exactly 5 players", errorMessage(t, w))
	})

	t.Run("closed tournament rejects registration", func(t *testing.T) {
		app := setupApp(t)
		captainID := app.seedUser(t, "captain@example.com", "standard")
		tournamentID := app.seedTournament(t, "closed", 1, 8)

		w := app.request(http.MethodPost, "/teams", captainID,
			registrationBody(tournamentID, fullRoster(1)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Tournament is not open for registration", errorMessage(t, w))
	})
}

func TestAdminFlow(t *testing.T) {
	t.Run("standard user cannot manage tournaments", func(t *testing.T) {
		app := setupApp(t)
		userID := app.seedUser(t, "user@example.com", "standard")

		w := app.request(http.MethodPost, "/tournaments", userID, map[string]any{
			"title": "Cup",
		})

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Forbidden", errorMessage(t, w))
	})

	t.Run("admin creates and opens a tournament", func(t *testing.T) {
		app := setupApp(t)
		adminID := app.seedUser(t, "admin@example.com", "admin")

		now := time.Now().UTC()
		w := app.request(http.MethodPost, "/tournaments", adminID, map[string]any{
			"title":                "Admin Cup",
			"game":                 "Dota 2",
			"playersPerTeam":       5,
			"maxTeams":             8,
			"startDate":            now.Add(48 * time.Hour),
			"endDate":              now.Add(72 * time.Hour),
			"registrationDeadline": now.Add(24 * time.Hour),
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "draft", created["status"])
		tournamentID := created["id"].(string)

		w = app.request(http.MethodPatch, "/tournaments/"+tournamentID, adminID,
			map[string]string{"status": "open"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		captainID := app.seedUser(t, "captain@example.com", "standard")
		w = app.request(http.MethodPost, "/teams", captainID,
			registrationBody(tournamentID, fullRoster(5)))
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("admin confirms then cancels a team", func(t *testing.T) {
		app := setupApp(t)
		adminID := app.seedUser(t, "admin@example.com", "admin")
		captainID := app.seedUser(t, "captain@example.com", "standard")
		tournamentID := app.seedTournament(t, "open", 1, 8)

		w := app.request(http.MethodPost, "/teams", captainID,
			registrationBody(tournamentID, fullRoster(1)))
		require.Equal(t, http.StatusCreated, w.Code)

		var created map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		teamID := created["id"].(string)

		w = app.request(http.MethodPatch, "/teams/"+teamID+"/status", adminID,
			map[string]string{"status": "confirmed"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = app.request(http.MethodPatch, "/teams/"+teamID+"/status", adminID,
			map[string]string{"status": "cancelled"})
		require.Equal(t, http.StatusOK, w.Code)

		w = app.request(http.MethodPatch, "/teams/"+teamID+"/status", adminID,
			map[string]string{"status": "pending"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid status transition", errorMessage(t, w))
	})
}
