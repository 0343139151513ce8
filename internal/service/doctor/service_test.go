package doctor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository/repositorytest"
	"github.com/vetdesk/vetclinic-api/pkg/security"
)

func newTestService() (*Service, *repositorytest.Store) {
	store := repositorytest.NewStore()
	svc := NewService(store.Doctors(), store.Users(), store.Posts(), security.NewBcryptHasher(4))
	return svc, store
}

func intPtr(i int) *int { return &i }

func validCreate(postID int64) *model.CreateDoctorRequest {
	return &model.CreateDoctorRequest{
		Fio:        "Петров Пётр",
		Phone:      "+79167654321",
		Email:      "petrov@example.com",
		Password:   "secret123",
		Experience: intPtr(5),
		PostID:     postID,
	}
}

func TestCreateDoctor(t *testing.T) {
	svc, store := newTestService()
	post := store.SeedPost(model.Post{Name: "Хирург"})

	detail, err := svc.Create(context.Background(), validCreate(post.ID))
	require.NoError(t, err)
	assert.Equal(t, model.RoleDoctor, detail.Role)
	assert.Equal(t, 5, detail.Profile.Experience)
	assert.Equal(t, detail.ID, detail.Profile.UserID)
}

// An invalid post must be rejected before any row is written; the original
// implementation left a stranded user behind in this case.
func TestCreateDoctorUnknownPostLeavesNoUser(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.Create(context.Background(), validCreate(404))
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
	assert.Equal(t, 0, store.CountUsers())
}

func TestCreateDoctorInvalidExperienceLeavesNoUser(t *testing.T) {
	svc, store := newTestService()
	post := store.SeedPost(model.Post{Name: "Хирург"})

	req := validCreate(post.ID)
	req.Experience = intPtr(-1)
	_, err := svc.Create(context.Background(), req)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation), "got %v", err)
	assert.Equal(t, 0, store.CountUsers())
}

func TestCreateDoctorDuplicateEmail(t *testing.T) {
	svc, store := newTestService()
	post := store.SeedPost(model.Post{Name: "Хирург"})
	store.SeedUser(model.User{Email: "petrov@example.com", Phone: "+79160000000", Role: model.RoleUser})

	_, err := svc.Create(context.Background(), validCreate(post.ID))
	assert.True(t, apperror.IsKind(err, apperror.KindConflict), "got %v", err)
}

func TestDeleteDoctorCascades(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	post := store.SeedPost(model.Post{Name: "Хирург"})

	detail, err := svc.Create(ctx, validCreate(post.ID))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, detail.ID))

	_, err = svc.Get(ctx, detail.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
	_, err = store.Users().GetByID(ctx, detail.ID)
	assert.Error(t, err)
}

func TestUpdateDoctorPartial(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	post := store.SeedPost(model.Post{Name: "Хирург"})

	detail, err := svc.Create(ctx, validCreate(post.ID))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, detail.ID, &model.UpdateDoctorRequest{Experience: intPtr(10)})
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Profile.Experience)
	assert.Equal(t, detail.Email, updated.Email)
}

func TestUpdateDoctorEmptyPayloadIsNoop(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	post := store.SeedPost(model.Post{Name: "Хирург"})

	detail, err := svc.Create(ctx, validCreate(post.ID))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, detail.ID, &model.UpdateDoctorRequest{})
	require.NoError(t, err)
	assert.Equal(t, detail.Profile, updated.Profile)
}

func TestUpdateDoctorUnknownPost(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	post := store.SeedPost(model.Post{Name: "Хирург"})

	detail, err := svc.Create(ctx, validCreate(post.ID))
	require.NoError(t, err)

	badPost := int64(404)
	_, err = svc.Update(ctx, detail.ID, &model.UpdateDoctorRequest{PostID: &badPost})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
}
