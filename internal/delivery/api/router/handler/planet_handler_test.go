package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "planetapi/internal/delivery/api/middleware"
	"planetapi/internal/delivery/api/response"
	"planetapi/internal/delivery/api/validator"
	"planetapi/internal/domain/entity"
	domainerrors "planetapi/internal/domain/errors"
	"planetapi/internal/errors"
	mockUsecase "planetapi/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// planetHandlerFixtures holds the echo instance wired to a mocked usecase.
type planetHandlerFixtures struct {
	e        *echo.Echo
	planetUC *mockUsecase.MockPlanetUsecase
}

func createTestPlanetHandler(t *testing.T) planetHandlerFixtures {
	planetUC := mockUsecase.NewMockPlanetUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := NewPlanetHandler(PlanetHandlerParams{PlanetUC: planetUC, Logger: logger})
	health := NewHealthHandler(planetUC)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.GET("/health", health.HealthCheck)
	e.POST("/planets", h.CreatePlanet)
	e.GET("/planets", h.ListPlanets)
	e.GET("/planets/:id", h.GetPlanet)
	e.GET("/planets/name/:name", h.GetPlanetByName)
	e.DELETE("/planets/:id", h.DeletePlanet)

	return planetHandlerFixtures{e: e, planetUC: planetUC}
}

func (f planetHandlerFixtures) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	require.NotNil(t, body.Meta)
	assert.NotEmpty(t, body.Meta.RequestID)

	return *body.Error
}

func TestPlanetHandler_CreatePlanet_Success(t *testing.T) {
	fx := createTestPlanetHandler(t)

	fx.planetUC.EXPECT().
		Create(mock.Anything, &entity.Planet{Name: "Tatooine", Climate: "arid", Terrain: "desert"}).
		Return(&entity.Planet{ID: 1, Name: "Tatooine", Climate: "arid", Terrain: "desert"}, nil)

	rec := fx.do(http.MethodPost, "/planets", `{"id":99,"name":"Tatooine","climate":"arid","terrain":"desert"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Tatooine","climate":"arid","terrain":"desert"}`, rec.Body.String())
}

func TestPlanetHandler_CreatePlanet_ValidationFailed(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDetails []any
	}{
		{
			name:        "empty name",
			body:        `{"name":"","climate":"arid","terrain":"desert"}`,
			wantDetails: []any{"name is required"},
		},
		{
			name:        "blank climate",
			body:        `{"name":"Tatooine","climate":"  ","terrain":"desert"}`,
			wantDetails: []any{"climate is required"},
		},
		{
			name:        "empty object",
			body:        `{}`,
			wantDetails: []any{"name is required", "climate is required", "terrain is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPlanetHandler(t)

			rec := fx.do(http.MethodPost, "/planets", tt.body)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), info.Code)
			assert.Equal(t, tt.wantDetails, info.Details)
		})
	}
}

func TestPlanetHandler_CreatePlanet_MalformedBody(t *testing.T) {
	fx := createTestPlanetHandler(t)

	for _, body := range []string{`{"name":`, `{"name":5,"climate":"arid","terrain":"desert"}`} {
		rec := fx.do(http.MethodPost, "/planets", body)

		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
	}
}

func TestPlanetHandler_CreatePlanet_Conflict(t *testing.T) {
	fx := createTestPlanetHandler(t)

	fx.planetUC.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Planet")).
		Return(nil, domainerrors.ErrPlanetAlreadyExists.WithDetails("Tatooine"))

	rec := fx.do(http.MethodPost, "/planets", `{"name":"Tatooine","climate":"arid","terrain":"desert"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "PLANET_ALREADY_EXISTS", info.Code)
	assert.Equal(t, "Tatooine", info.Details)
}

func TestPlanetHandler_CreatePlanet_InternalErrorHidesDetails(t *testing.T) {
	fx := createTestPlanetHandler(t)

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "insert planet")
	fx.planetUC.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Planet")).
		Return(nil, errors.Wrap(dbErr, "create planet"))

	rec := fx.do(http.MethodPost, "/planets", `{"name":"Tatooine","climate":"arid","terrain":"desert"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", info.Code)
	assert.Nil(t, info.Details)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestPlanetHandler_ListPlanets(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		climate string
		terrain string
		result  []*entity.Planet
		want    string
	}{
		{
			name:   "no filters",
			target: "/planets",
			result: []*entity.Planet{
				{ID: 1, Name: "Tatooine", Climate: "arid", Terrain: "desert"},
				{ID: 2, Name: "Alderaan", Climate: "temperate", Terrain: "grasslands, mountains"},
			},
			want: `[{"id":1,"name":"Tatooine","climate":"arid","terrain":"desert"},
				{"id":2,"name":"Alderaan","climate":"temperate","terrain":"grasslands, mountains"}]`,
		},
		{
			name:    "both filters",
			target:  "/planets?climate=temperate&terrain=grasslands,%20mountains",
			climate: "temperate",
			terrain: "grasslands, mountains",
			result:  []*entity.Planet{{ID: 2, Name: "Alderaan", Climate: "temperate", Terrain: "grasslands, mountains"}},
			want:    `[{"id":2,"name":"Alderaan","climate":"temperate","terrain":"grasslands, mountains"}]`,
		},
		{
			name:    "no match",
			target:  "/planets?climate=frozen",
			climate: "frozen",
			result:  []*entity.Planet{},
			want:    `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPlanetHandler(t)
			fx.planetUC.EXPECT().FindAll(mock.Anything, tt.climate, tt.terrain).Return(tt.result, nil)

			rec := fx.do(http.MethodGet, tt.target, "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestPlanetHandler_GetPlanet(t *testing.T) {
	fx := createTestPlanetHandler(t)

	fx.planetUC.EXPECT().FindByID(mock.Anything, int64(1)).
		Return(&entity.Planet{ID: 1, Name: "Tatooine", Climate: "arid", Terrain: "desert"}, nil)
	fx.planetUC.EXPECT().FindByID(mock.Anything, int64(404)).
		Return(nil, domainerrors.ErrPlanetNotFound)

	rec := fx.do(http.MethodGet, "/planets/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Tatooine","climate":"arid","terrain":"desert"}`, rec.Body.String())

	rec = fx.do(http.MethodGet, "/planets/404", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PLANET_NOT_FOUND", decodeError(t, rec).Code)
}

func TestPlanetHandler_GetPlanet_InvalidID(t *testing.T) {
	fx := createTestPlanetHandler(t)

	for _, id := range []string{"abc", "0", "-3", "1.5"} {
		rec := fx.do(http.MethodGet, "/planets/"+id, "")

		require.Equal(t, http.StatusBadRequest, rec.Code, id)
		assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
	}
}

func TestPlanetHandler_GetPlanetByName(t *testing.T) {
	fx := createTestPlanetHandler(t)

	fx.planetUC.EXPECT().FindByName(mock.Anything, "Yavin IV").
		Return(&entity.Planet{ID: 3, Name: "Yavin IV", Climate: "temperate, tropical", Terrain: "jungle, rainforests"}, nil)
	fx.planetUC.EXPECT().FindByName(mock.Anything, "Kamino").
		Return(nil, domainerrors.ErrPlanetNotFound)

	rec := fx.do(http.MethodGet, "/planets/name/Yavin%20IV", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":3,"name":"Yavin IV","climate":"temperate, tropical","terrain":"jungle, rainforests"}`, rec.Body.String())

	rec = fx.do(http.MethodGet, "/planets/name/Kamino", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlanetHandler_GetPlanetByName_EscapedSlash(t *testing.T) {
	fx := createTestPlanetHandler(t)

	fx.planetUC.EXPECT().FindByName(mock.Anything, "A/B").
		Return(&entity.Planet{ID: 5, Name: "A/B", Climate: "arid", Terrain: "desert"}, nil)
	fx.planetUC.EXPECT().FindByName(mock.Anything, "Mos%Eisley/").
		Return(nil, domainerrors.ErrPlanetNotFound)

	rec := fx.do(http.MethodGet, "/planets/name/A%2FB", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":5,"name":"A/B","climate":"arid","terrain":"desert"}`, rec.Body.String())

	// a literal "%" is sent as %25 and must reach the lookup decoded once
	rec = fx.do(http.MethodGet, "/planets/name/Mos%25Eisley%2F", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlanetHandler_DeletePlanet(t *testing.T) {
	fx := createTestPlanetHandler(t)

	fx.planetUC.EXPECT().RemoveByID(mock.Anything, int64(1)).Return(nil)
	fx.planetUC.EXPECT().RemoveByID(mock.Anything, int64(2)).Return(domainerrors.ErrPlanetNotFound)

	rec := fx.do(http.MethodDelete, "/planets/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = fx.do(http.MethodDelete, "/planets/2", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PLANET_NOT_FOUND", decodeError(t, rec).Code)

	rec = fx.do(http.MethodDelete, "/planets/two", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthHandler_HealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		fx := createTestPlanetHandler(t)
		fx.planetUC.EXPECT().CheckHealth(mock.Anything).Return(nil)

		rec := fx.do(http.MethodGet, "/health", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("store unreachable", func(t *testing.T) {
		fx := createTestPlanetHandler(t)
		fx.planetUC.EXPECT().CheckHealth(mock.Anything).
			Return(domainerrors.ErrServiceUnavailable.WithDetails("sql: database is closed"))

		rec := fx.do(http.MethodGet, "/health", "")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "SERVICE_UNAVAILABLE", info.Code)
		assert.Nil(t, info.Details)
	})
}
