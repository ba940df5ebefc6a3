package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"planetapi/internal/domain/criteria"
	"planetapi/internal/domain/entity"
	domainerrors "planetapi/internal/domain/errors"
	"planetapi/internal/domain/repository"
	mockRepo "planetapi/internal/mocks/repository"
	"planetapi/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// planetServiceFixtures holds all test dependencies for planet service tests.
type planetServiceFixtures struct {
	service    usecase.PlanetUsecase
	planetRepo *mockRepo.MockPlanetRepository
}

func createTestPlanetService(t *testing.T) planetServiceFixtures {
	planetRepo := mockRepo.NewMockPlanetRepository(t)
	service := NewPlanetService(planetRepo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return planetServiceFixtures{
		service:    service,
		planetRepo: planetRepo,
	}
}

func newTatooine() *entity.Planet {
	return &entity.Planet{ID: 1, Name: "Tatooine", Climate: "arid", Terrain: "desert"}
}

func newAlderaan() *entity.Planet {
	return &entity.Planet{ID: 2, Name: "Alderaan", Climate: "temperate", Terrain: "grasslands, mountains"}
}

func newHoth() *entity.Planet {
	return &entity.Planet{ID: 4, Name: "Hoth", Climate: "frozen", Terrain: "tundra, ice caves, mountain ranges"}
}

func TestPlanetService_Create_Success(t *testing.T) {
	fx := createTestPlanetService(t)

	ctx := context.Background()
	planet := &entity.Planet{Name: "name", Climate: "climate", Terrain: "terrain"}

	fx.planetRepo.EXPECT().
		Save(ctx, planet).
		Run(func(_ context.Context, p *entity.Planet) { p.ID = 42 }).
		Return(nil)

	created, err := fx.service.Create(ctx, planet)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "name", created.Name)
	assert.Equal(t, "climate", created.Climate)
	assert.Equal(t, "terrain", created.Terrain)
}

func TestPlanetService_Create_InvalidData(t *testing.T) {
	invalid := []*entity.Planet{
		nil,
		{},
		{Name: "", Climate: "climate", Terrain: "terrain"},
		{Name: "name", Climate: "", Terrain: "terrain"},
		{Name: "name", Climate: "climate", Terrain: ""},
		{Name: "", Climate: "", Terrain: "terrain"},
		{Name: "name", Climate: "", Terrain: ""},
		{ID: 9, Name: "name", Climate: "climate", Terrain: "terrain"},
	}

	for _, planet := range invalid {
		fx := createTestPlanetService(t)

		created, err := fx.service.Create(context.Background(), planet)
		assert.Nil(t, created)
		assert.ErrorIs(t, err, domainerrors.ErrPlanetInvalid)
		fx.planetRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	}
}

func TestPlanetService_Create_DuplicateName(t *testing.T) {
	fx := createTestPlanetService(t)

	ctx := context.Background()
	planet := &entity.Planet{Name: "Tatooine", Climate: "arid", Terrain: "desert"}

	fx.planetRepo.EXPECT().
		Save(ctx, planet).
		Return(repository.ErrDuplicatePlanet)

	created, err := fx.service.Create(ctx, planet)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrPlanetAlreadyExists)
}

func TestPlanetService_Create_StoreConstraint(t *testing.T) {
	fx := createTestPlanetService(t)

	ctx := context.Background()
	planet := &entity.Planet{Name: "Tatooine", Climate: "arid", Terrain: "desert"}

	fx.planetRepo.EXPECT().
		Save(ctx, planet).
		Return(errors.Wrap(repository.ErrInvalidPlanet, "CHECK constraint failed: chk_planets_name_not_empty"))

	_, err := fx.service.Create(ctx, planet)
	require.ErrorIs(t, err, domainerrors.ErrPlanetInvalid)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "planet violates a storage constraint", appErr.Details())
	assert.NotContains(t, err.Error(), "chk_planets_name_not_empty")
}

func TestPlanetService_Create_StoreError(t *testing.T) {
	fx := createTestPlanetService(t)

	ctx := context.Background()
	planet := &entity.Planet{Name: "Tatooine", Climate: "arid", Terrain: "desert"}
	storeErr := errors.New("connection refused")

	fx.planetRepo.EXPECT().
		Save(ctx, planet).
		Return(storeErr)

	_, err := fx.service.Create(ctx, planet)
	assert.ErrorIs(t, err, storeErr)
}

func TestPlanetService_FindAll_NoFilters(t *testing.T) {
	fx := createTestPlanetService(t)

	ctx := context.Background()
	planets := []*entity.Planet{newTatooine(), newAlderaan(), newHoth()}

	fx.planetRepo.EXPECT().
		FindMatching(ctx, criteria.Specification{}).
		Return(planets, nil)

	got, err := fx.service.FindAll(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "Tatooine", got[0].Name)
}

func TestPlanetService_FindAll_WithFilters(t *testing.T) {
	fx := createTestPlanetService(t)

	ctx := context.Background()
	alderaan := newAlderaan()
	expected := criteria.FromPlanet(entity.PlanetCriteria{Climate: alderaan.Climate, Terrain: alderaan.Terrain})

	fx.planetRepo.EXPECT().
		FindMatching(ctx, expected).
		Return([]*entity.Planet{alderaan}, nil)

	got, err := fx.service.FindAll(ctx, alderaan.Climate, alderaan.Terrain)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Planet{alderaan}, got)
}

func TestPlanetService_FindAll_ReturnsEmptySliceNotNil(t *testing.T) {
	fx := createTestPlanetService(t)

	ctx := context.Background()

	fx.planetRepo.EXPECT().
		FindMatching(ctx, mock.Anything).
		Return(nil, nil)

	got, err := fx.service.FindAll(ctx, "dry", "")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPlanetService_FindAll_StoreError(t *testing.T) {
	fx := createTestPlanetService(t)

	ctx := context.Background()
	storeErr := errors.New("timeout")

	fx.planetRepo.EXPECT().
		FindMatching(ctx, mock.Anything).
		Return(nil, storeErr)

	_, err := fx.service.FindAll(ctx, "", "")
	assert.ErrorIs(t, err, storeErr)
}

func TestPlanetService_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestPlanetService(t)
		ctx := context.Background()

		fx.planetRepo.EXPECT().FindByID(ctx, int64(1)).Return(newTatooine(), nil)

		got, err := fx.service.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, newTatooine(), got)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestPlanetService(t)
		ctx := context.Background()

		fx.planetRepo.EXPECT().FindByID(ctx, int64(290)).Return(nil, repository.ErrPlanetNotFound)

		got, err := fx.service.FindByID(ctx, 290)
		assert.Nil(t, got)
		assert.Equal(t, domainerrors.ErrPlanetNotFound, err)
	})
}

func TestPlanetService_FindByName(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestPlanetService(t)
		ctx := context.Background()

		fx.planetRepo.EXPECT().FindByName(ctx, "Tatooine").Return(newTatooine(), nil)

		got, err := fx.service.FindByName(ctx, "Tatooine")
		require.NoError(t, err)
		assert.Equal(t, "Tatooine", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestPlanetService(t)
		ctx := context.Background()

		fx.planetRepo.EXPECT().FindByName(ctx, "Unexisting name").Return(nil, repository.ErrPlanetNotFound)

		_, err := fx.service.FindByName(ctx, "Unexisting name")
		assert.Equal(t, domainerrors.ErrPlanetNotFound, err)
	})
}

func TestPlanetService_RemoveByID(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		fx := createTestPlanetService(t)
		ctx := context.Background()

		fx.planetRepo.EXPECT().DeleteByID(ctx, int64(1)).Return(nil)

		assert.NoError(t, fx.service.RemoveByID(ctx, 1))
	})

	t.Run("not existing", func(t *testing.T) {
		fx := createTestPlanetService(t)
		ctx := context.Background()

		fx.planetRepo.EXPECT().DeleteByID(ctx, int64(290)).Return(repository.ErrPlanetNotFound)

		assert.Equal(t, domainerrors.ErrPlanetNotFound, fx.service.RemoveByID(ctx, 290))
	})

	t.Run("store error", func(t *testing.T) {
		fx := createTestPlanetService(t)
		ctx := context.Background()
		storeErr := errors.New("deadlock")

		fx.planetRepo.EXPECT().DeleteByID(ctx, int64(3)).Return(storeErr)

		assert.ErrorIs(t, fx.service.RemoveByID(ctx, 3), storeErr)
	})
}

func TestPlanetService_CheckHealth(t *testing.T) {
	fx := createTestPlanetService(t)
	ctx := context.Background()

	fx.planetRepo.EXPECT().Ping(ctx).Return(errors.New("no route to host")).Once()
	fx.planetRepo.EXPECT().Ping(ctx).Return(nil).Once()

	assert.ErrorIs(t, fx.service.CheckHealth(ctx), domainerrors.ErrServiceUnavailable)
	assert.NoError(t, fx.service.CheckHealth(ctx))
}
