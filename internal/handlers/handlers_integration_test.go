package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"filmoteca/internal/handlers"
	"filmoteca/internal/middleware"
	"filmoteca/internal/models"
	"filmoteca/internal/repositories"
	"filmoteca/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp builds a Fiber app over an isolated in-memory SQLite database
// with the same gate policy as the real router.
func setupApp() (*fiber.App, *services.AuthService, error) {
	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to in-memory database: %w", err)
	}

	if err := db.SetupJoinTable(&models.Movie{}, "Genres", &models.MovieGenre{}); err != nil {
		return nil, nil, fmt.Errorf("failed to set up join table: %w", err)
	}
	err = db.AutoMigrate(&models.User{}, &models.Movie{}, &models.Genre{}, &models.MovieGenre{}, &models.Rating{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	movieRepo := repositories.NewGORMMovieRepository(db)
	genreRepo := repositories.NewGORMGenreRepository(db)
	movieGenreRepo := repositories.NewGORMMovieGenreRepository(db)
	ratingRepo := repositories.NewGORMRatingRepository(db)

	authService := services.NewAuthService(userRepo, jwtSecret)
	userService := services.NewUserService(userRepo)
	movieService := services.NewMovieService(movieRepo, genreRepo)
	genreService := services.NewGenreService(genreRepo)
	movieGenreService := services.NewMovieGenreService(movieGenreRepo, movieRepo, genreRepo)
	ratingService := services.NewRatingService(ratingRepo, movieRepo, nil) // nil for RabbitMQ client

	app := fiber.New()

	handlers.NewAuthHandler(authService).RegisterRoutes(app)

	userHandler := handlers.NewUserHandler(userService)
	movieHandler := handlers.NewMovieHandler(movieService)

	admin := app.Group("/admin",
		middleware.AuthRequired(authService),
		middleware.AdminRequired(),
	)
	movieHandler.RegisterAdminRoutes(admin)
	userHandler.RegisterAdminRoutes(admin)

	protected := app.Group("",
		middleware.AuthRequired(authService),
		middleware.ActiveUserRequired(userService),
	)
	userHandler.RegisterRoutes(protected)
	movieHandler.RegisterRoutes(protected)
	handlers.NewGenreHandler(genreService).RegisterRoutes(protected)
	handlers.NewMovieGenreHandler(movieGenreService).RegisterRoutes(protected)
	handlers.NewRatingHandler(ratingService).RegisterRoutes(protected)

	return app, authService, nil
}

// seedUser registers an account directly through the service and returns a
// token obtained via the login endpoint.
func seedUser(t *testing.T, app *fiber.App, authService *services.AuthService, email, role string) (*models.User, string) {
	t.Helper()
	user := &models.User{
		Name:     "Usuário de Teste",
		Email:    email,
		Nickname: "teste",
		Password: "senha123",
		Role:     role,
	}
	assert.NoError(t, authService.RegisterUser(user))

	status, body := request(t, app, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": "senha123",
	}, "")
	assert.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	assert.NotEmpty(t, token)
	return user, token
}

// request performs an in-process HTTP call and decodes the JSON body into a
// generic map.
func request(t *testing.T, app *fiber.App, method, path string, payload interface{}, token string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	body := map[string]interface{}{}
	if len(raw) > 0 && raw[0] == '{' {
		assert.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp.StatusCode, body
}

// requestList is request for endpoints returning a JSON array.
func requestList(t *testing.T, app *fiber.App, path, token string) (int, []map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	var list []map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	if len(raw) > 0 && raw[0] == '[' {
		assert.NoError(t, json.Unmarshal(raw, &list))
	}
	return resp.StatusCode, list
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestAuthRegisterAndLogin(t *testing.T) {
	app, _, err := setupApp()
	assert.NoError(t, err)

	payload := map[string]string{
		"nome":            "João da Silva",
		"email":           "joao@example.com",
		"apelido":         "jo",
		"data_nascimento": "1990-05-20",
		"password":        "senha123",
	}
	status, body := request(t, app, http.MethodPost, "/auth/register", payload, "")
	assert.Equal(t, http.StatusCreated, status)

	created, ok := body["usuario"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "João da Silva", created["nome"])
	assert.Equal(t, "jo", created["apelido"])
	assert.Equal(t, models.RoleCommon, created["tipo_usuario"])
	assert.Equal(t, true, created["status"])
	// The password must never be echoed, hashed or not.
	_, leaked := created["password"]
	assert.False(t, leaked)

	// Registering the same email again conflicts.
	status, _ = request(t, app, http.MethodPost, "/auth/register", payload, "")
	assert.Equal(t, http.StatusConflict, status)

	// Missing required fields are named in the 400 body.
	status, body = request(t, app, http.MethodPost, "/auth/register", map[string]string{
		"email": "sem-nome@example.com",
	}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	fieldErrors, ok := body["errors"].(map[string]interface{})
	assert.True(t, ok)
	assert.Contains(t, fieldErrors, "Nome")
	assert.Contains(t, fieldErrors, "Password")

	// Correct credentials yield a token for the stored user.
	status, body = request(t, app, http.MethodPost, "/auth/login", map[string]string{
		"email":    "joao@example.com",
		"password": "senha123",
	}, "")
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["token"])
	logged, ok := body["usuario"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, created["id"], logged["id"])

	// Wrong password: 401 and no token.
	status, body = request(t, app, http.MethodPost, "/auth/login", map[string]string{
		"email":    "joao@example.com",
		"password": "senha_errada",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	_, hasToken := body["token"]
	assert.False(t, hasToken)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app, _, err := setupApp()
	assert.NoError(t, err)

	// Absent credential: unauthorized.
	status, _ := request(t, app, http.MethodGet, "/filmes", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	// Present but invalid credential: forbidden.
	status, _ = request(t, app, http.MethodGet, "/filmes", nil, "token.invalido.aqui")
	assert.Equal(t, http.StatusForbidden, status)
}

func TestMovieCRUD(t *testing.T) {
	app, authService, err := setupApp()
	assert.NoError(t, err)
	_, token := seedUser(t, app, authService, "critico@example.com", models.RoleCommon)

	// A genre to attach.
	status, genre := request(t, app, http.MethodPost, "/generos", map[string]string{
		"descricao": "Drama",
	}, token)
	assert.Equal(t, http.StatusCreated, status)
	genreID := genre["id"].(float64)

	// Invalid payloads are rejected with field-level errors.
	status, body := request(t, app, http.MethodPost, "/filmes", map[string]interface{}{
		"diretor": "Walter Salles",
	}, token)
	assert.Equal(t, http.StatusBadRequest, status)
	fieldErrors := body["errors"].(map[string]interface{})
	assert.Contains(t, fieldErrors, "Nome")

	status, body = request(t, app, http.MethodPost, "/filmes", map[string]interface{}{
		"nome":           "Central do Brasil",
		"diretor":        "Walter Salles",
		"ano_lancamento": "1998-04-03",
		"duracao":        110,
		"produtora":      "VideoFilmes",
		"classificacao":  "12",
		"poster":         "nao-e-uma-url",
	}, token)
	assert.Equal(t, http.StatusBadRequest, status)
	fieldErrors = body["errors"].(map[string]interface{})
	assert.Contains(t, fieldErrors, "Poster")

	// A valid create echoes the input and the linked genres.
	status, movie := request(t, app, http.MethodPost, "/filmes", map[string]interface{}{
		"nome":           "Central do Brasil",
		"diretor":        "Walter Salles",
		"ano_lancamento": "1998-04-03",
		"duracao":        110,
		"produtora":      "VideoFilmes",
		"classificacao":  "12",
		"poster":         "https://example.com/central.jpg",
		"generos_id":     []float64{genreID},
	}, token)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Central do Brasil", movie["nome"])
	movieID := movie["id"].(float64)
	genres := movie["generos"].([]interface{})
	assert.Len(t, genres, 1)

	// Read back with relations expanded.
	status, fetched := request(t, app, http.MethodGet, fmt.Sprintf("/filmes/%.0f", movieID), nil, token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Walter Salles", fetched["diretor"])
	assert.Len(t, fetched["generos"].([]interface{}), 1)

	// Partial update: only the supplied field changes.
	status, updated := request(t, app, http.MethodPut, fmt.Sprintf("/filmes/%.0f", movieID), map[string]interface{}{
		"duracao": 113,
	}, token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(113), updated["duracao"])
	assert.Equal(t, "Central do Brasil", updated["nome"])
	assert.Equal(t, "VideoFilmes", updated["produtora"])

	// Hard delete: the movie is gone afterwards.
	status, _ = request(t, app, http.MethodDelete, fmt.Sprintf("/filmes/%.0f", movieID), nil, token)
	assert.Equal(t, http.StatusOK, status)
	status, _ = request(t, app, http.MethodGet, fmt.Sprintf("/filmes/%.0f", movieID), nil, token)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRatingLifecycle(t *testing.T) {
	app, authService, err := setupApp()
	assert.NoError(t, err)
	user, token := seedUser(t, app, authService, "avaliador@example.com", models.RoleCommon)

	status, movie := request(t, app, http.MethodPost, "/filmes", map[string]interface{}{
		"nome":           "Cidade de Deus",
		"diretor":        "Fernando Meirelles",
		"ano_lancamento": "2002-08-30",
		"duracao":        130,
		"produtora":      "O2 Filmes",
		"classificacao":  "18",
		"poster":         "https://example.com/cdd.jpg",
	}, token)
	assert.Equal(t, http.StatusCreated, status)
	movieID := movie["id"].(float64)

	// Score outside [0,5] is rejected.
	status, body := request(t, app, http.MethodPost, "/avaliacoes", map[string]interface{}{
		"id_usuario": user.ID,
		"id_filme":   movieID,
		"nota":       7,
	}, token)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["errors"].(map[string]interface{}), "Nota")

	status, rating := request(t, app, http.MethodPost, "/avaliacoes", map[string]interface{}{
		"id_usuario": user.ID,
		"id_filme":   movieID,
		"nota":       4.5,
		"comentario": "Excelente",
	}, token)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 4.5, rating["nota"])

	// The composite key allows one rating per (user, movie).
	status, _ = request(t, app, http.MethodPost, "/avaliacoes", map[string]interface{}{
		"id_usuario": user.ID,
		"id_filme":   movieID,
		"nota":       1,
	}, token)
	assert.Equal(t, http.StatusConflict, status)

	key := fmt.Sprintf("/avaliacoes/%d/%.0f", user.ID, movieID)

	// Partial update keeps the comment.
	status, updated := request(t, app, http.MethodPut, key, map[string]interface{}{
		"nota": 3.5,
	}, token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3.5, updated["nota"])
	assert.Equal(t, "Excelente", updated["comentario"])

	status, _ = request(t, app, http.MethodDelete, key, nil, token)
	assert.Equal(t, http.StatusOK, status)
	status, _ = request(t, app, http.MethodGet, key, nil, token)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestMovieGenreLinks(t *testing.T) {
	app, authService, err := setupApp()
	assert.NoError(t, err)
	_, token := seedUser(t, app, authService, "curador@example.com", models.RoleCommon)

	status, movie := request(t, app, http.MethodPost, "/filmes", map[string]interface{}{
		"nome":           "Tropa de Elite",
		"diretor":        "José Padilha",
		"ano_lancamento": "2007-10-05",
		"duracao":        115,
		"produtora":      "Zazen",
		"classificacao":  "18",
		"poster":         "https://example.com/tropa.jpg",
	}, token)
	assert.Equal(t, http.StatusCreated, status)
	movieID := movie["id"].(float64)

	status, genre := request(t, app, http.MethodPost, "/generos", map[string]string{"descricao": "Ação"}, token)
	assert.Equal(t, http.StatusCreated, status)
	genreID := genre["id"].(float64)

	status, link := request(t, app, http.MethodPost, "/generos-filme", map[string]interface{}{
		"id_filme":  movieID,
		"id_genero": genreID,
	}, token)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, movieID, link["id_filme"])

	// Linking the same pair twice conflicts.
	status, _ = request(t, app, http.MethodPost, "/generos-filme", map[string]interface{}{
		"id_filme":  movieID,
		"id_genero": genreID,
	}, token)
	assert.Equal(t, http.StatusConflict, status)

	// Linking against a missing movie fails before the store is touched.
	status, _ = request(t, app, http.MethodPost, "/generos-filme", map[string]interface{}{
		"id_filme":  9999,
		"id_genero": genreID,
	}, token)
	assert.Equal(t, http.StatusNotFound, status)

	key := fmt.Sprintf("/generos-filme/%.0f/%.0f", movieID, genreID)
	status, _ = request(t, app, http.MethodGet, key, nil, token)
	assert.Equal(t, http.StatusOK, status)

	status, _ = request(t, app, http.MethodDelete, key, nil, token)
	assert.Equal(t, http.StatusOK, status)
	status, _ = request(t, app, http.MethodGet, key, nil, token)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestUserSoftDelete(t *testing.T) {
	app, authService, err := setupApp()
	assert.NoError(t, err)
	_, adminToken := seedUser(t, app, authService, "admin@example.com", models.RoleAdmin)

	status, created := request(t, app, http.MethodPost, "/usuarios", map[string]interface{}{
		"nome":            "Conta Temporária",
		"email":           "temp@example.com",
		"apelido":         "temp",
		"data_nascimento": "2000-01-01",
		"password":        "senha123",
	}, adminToken)
	assert.Equal(t, http.StatusCreated, status)
	userID := created["id"].(float64)

	// Soft delete flips status off but keeps the row.
	status, deleted := request(t, app, http.MethodDelete, fmt.Sprintf("/usuarios/%.0f", userID), nil, adminToken)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, deleted["status"])

	status, fetched := request(t, app, http.MethodGet, fmt.Sprintf("/usuarios/%.0f", userID), nil, adminToken)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, fetched["status"])

	// The regular listing hides deactivated accounts; the admin listing
	// still shows them.
	status, activeList := requestList(t, app, "/usuarios", adminToken)
	assert.Equal(t, http.StatusOK, status)
	for _, u := range activeList {
		assert.NotEqual(t, userID, u["id"])
	}

	status, fullList := requestList(t, app, "/admin/usuarios", adminToken)
	assert.Equal(t, http.StatusOK, status)
	found := false
	for _, u := range fullList {
		if u["id"] == userID {
			found = true
		}
	}
	assert.True(t, found)

	// A deactivated account is rejected by the status gate.
	deactivatedToken, err := authService.IssueToken(&models.User{
		ID:    uint(userID),
		Email: "temp@example.com",
		Role:  models.RoleCommon,
	})
	assert.NoError(t, err)
	status, _ = request(t, app, http.MethodGet, "/filmes", nil, deactivatedToken)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestAdminRoutePolicy(t *testing.T) {
	app, authService, err := setupApp()
	assert.NoError(t, err)
	_, commonToken := seedUser(t, app, authService, "comum@example.com", models.RoleCommon)
	_, adminToken := seedUser(t, app, authService, "chefe@example.com", models.RoleAdmin)

	payload := map[string]interface{}{
		"nome":           "Bacurau",
		"diretor":        "Kleber Mendonça Filho",
		"ano_lancamento": "2019-08-23",
		"duracao":        131,
		"produtora":      "SBS",
		"classificacao":  "16",
		"poster":         "https://example.com/bacurau.jpg",
	}

	// Valid token, wrong role.
	status, _ := request(t, app, http.MethodPost, "/admin/filmes", payload, commonToken)
	assert.Equal(t, http.StatusForbidden, status)

	// Admin role passes.
	status, movie := request(t, app, http.MethodPost, "/admin/filmes", payload, adminToken)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Bacurau", movie["nome"])

	status, _ = request(t, app, http.MethodGet, "/admin/usuarios", nil, commonToken)
	assert.Equal(t, http.StatusForbidden, status)
	status, list := requestList(t, app, "/admin/usuarios", adminToken)
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, list)
}
