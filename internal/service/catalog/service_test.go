package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository/repositorytest"
)

func newTestService() (*Service, *repositorytest.Store) {
	store := repositorytest.NewStore()
	svc := NewService(store.Categories(), store.Services(), store.Posts(), store.Statuses())
	return svc, store
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func i64Ptr(i int64) *int64     { return &i }

func TestCreateCategoryAndDuplicate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, &model.CreateCategoryRequest{Name: "Хирургия"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = svc.CreateCategory(ctx, &model.CreateCategoryRequest{Name: "Хирургия"})
	assert.True(t, apperror.IsKind(err, apperror.KindConflict), "got %v", err)
}

func TestGetCategoryNotFound(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.GetCategory(context.Background(), 999)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
}

func TestUpdateCategoryIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, &model.CreateCategoryRequest{Name: "Терапия"})
	require.NoError(t, err)

	// Updating with the current value twice must not produce a conflict.
	for i := 0; i < 2; i++ {
		updated, err := svc.UpdateCategory(ctx, created.ID, &model.UpdateCategoryRequest{Name: strPtr("Терапия")})
		require.NoError(t, err)
		assert.Equal(t, "Терапия", updated.Name)
	}
}

func TestUpdateCategoryEmptyPayloadIsNoop(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, &model.CreateCategoryRequest{Name: "Терапия"})
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(ctx, created.ID, &model.UpdateCategoryRequest{})
	require.NoError(t, err)
	assert.Equal(t, created, updated)
}

func TestUpdateCategoryNameCollision(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, &model.CreateCategoryRequest{Name: "Терапия"})
	require.NoError(t, err)
	second, err := svc.CreateCategory(ctx, &model.CreateCategoryRequest{Name: "Хирургия"})
	require.NoError(t, err)

	_, err = svc.UpdateCategory(ctx, second.ID, &model.UpdateCategoryRequest{Name: strPtr("Терапия")})
	assert.True(t, apperror.IsKind(err, apperror.KindConflict), "got %v", err)
}

func TestCreateServiceRequiresCategory(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateService(context.Background(), &model.CreateServiceRequest{
		Name:       "Вакцинация",
		Price:      f64Ptr(1500),
		CategoryID: 42,
	})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
}

func TestCreateServiceRejectsNonPositivePrice(t *testing.T) {
	svc, store := newTestService()
	category := store.SeedCategory(model.ServiceCategory{Name: "Терапия"})

	_, err := svc.CreateService(context.Background(), &model.CreateServiceRequest{
		Name:       "Вакцинация",
		Price:      f64Ptr(0),
		CategoryID: category.ID,
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation), "got %v", err)
}

func TestUpdateServicePartial(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	category := store.SeedCategory(model.ServiceCategory{Name: "Терапия"})

	created, err := svc.CreateService(ctx, &model.CreateServiceRequest{
		Name:       "Вакцинация",
		Price:      f64Ptr(1500),
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateService(ctx, created.ID, &model.UpdateServiceRequest{Price: f64Ptr(1800)})
	require.NoError(t, err)
	assert.Equal(t, "Вакцинация", updated.Name)
	assert.Equal(t, 1800.0, updated.Price)
	assert.Equal(t, category.ID, updated.CategoryID)
}

func TestUpdateServiceUnknownCategory(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	category := store.SeedCategory(model.ServiceCategory{Name: "Терапия"})

	created, err := svc.CreateService(ctx, &model.CreateServiceRequest{
		Name:       "Вакцинация",
		Price:      f64Ptr(1500),
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	_, err = svc.UpdateService(ctx, created.ID, &model.UpdateServiceRequest{CategoryID: i64Ptr(404)})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
}

func TestPostCRUD(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, &model.CreatePostRequest{Name: "Терапевт"})
	require.NoError(t, err)

	got, err := svc.GetPost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Терапевт", got.Name)

	updated, err := svc.UpdatePost(ctx, created.ID, &model.UpdatePostRequest{Name: strPtr("Хирург")})
	require.NoError(t, err)
	assert.Equal(t, "Хирург", updated.Name)

	require.NoError(t, svc.DeletePost(ctx, created.ID))
	err = svc.DeletePost(ctx, created.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
}

func TestListStatusesContainsInitial(t *testing.T) {
	svc, _ := newTestService()

	statuses, err := svc.ListStatuses(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, model.InitialStatusID, statuses[0].ID)
}
