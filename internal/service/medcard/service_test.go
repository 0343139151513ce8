package medcard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository/repositorytest"
)

func newTestService() (*Service, *repositorytest.Store, *model.ClientPet) {
	store := repositorytest.NewStore()
	pet := store.SeedPet(model.ClientPet{Name: "Барсик", UserID: 1})
	return NewService(store.MedicineCards(), store.Pets()), store, pet
}

func strPtr(s string) *string { return &s }

func createReq(petID int64) *model.CreateMedicineCardRequest {
	return &model.CreateMedicineCardRequest{
		Info:        "Вакцинация от бешенства",
		Description: "Повторная прививка через год",
		DateVisit:   "2024-03-15",
		ClientPetID: petID,
	}
}

func TestCreateCard(t *testing.T) {
	svc, _, pet := newTestService()

	card, err := svc.Create(context.Background(), createReq(pet.ID))
	require.NoError(t, err)
	assert.NotZero(t, card.ID)
	assert.Equal(t, "2024-03-15", card.DateVisit.String())
	assert.Equal(t, pet.ID, card.ClientPetID)
}

func TestCreateCardValidation(t *testing.T) {
	svc, _, pet := newTestService()

	tests := []struct {
		name   string
		mutate func(*model.CreateMedicineCardRequest)
	}{
		{"blank info", func(r *model.CreateMedicineCardRequest) { r.Info = "  " }},
		{"blank description", func(r *model.CreateMedicineCardRequest) { r.Description = "" }},
		{"bad date", func(r *model.CreateMedicineCardRequest) { r.DateVisit = "15.03.2024" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createReq(pet.ID)
			tt.mutate(req)
			_, err := svc.Create(context.Background(), req)
			assert.True(t, apperror.IsKind(err, apperror.KindValidation), "got %v", err)
		})
	}
}

func TestCreateCardUnknownPet(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), createReq(999))
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
}

func TestListByPetRequiresExistingPet(t *testing.T) {
	svc, _, pet := newTestService()
	ctx := context.Background()

	cards, err := svc.ListByPet(ctx, pet.ID)
	require.NoError(t, err)
	assert.Empty(t, cards)

	_, err = svc.ListByPet(ctx, 999)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
}

func TestUpdateCardPartial(t *testing.T) {
	svc, _, pet := newTestService()
	ctx := context.Background()

	card, err := svc.Create(ctx, createReq(pet.ID))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, card.ID, &model.UpdateMedicineCardRequest{Info: strPtr("Осмотр")})
	require.NoError(t, err)
	assert.Equal(t, "Осмотр", updated.Info)
	assert.Equal(t, card.Description, updated.Description)
	assert.Equal(t, card.DateVisit, updated.DateVisit)
}

func TestUpdateCardEmptyPayloadIsNoop(t *testing.T) {
	svc, _, pet := newTestService()
	ctx := context.Background()

	card, err := svc.Create(ctx, createReq(pet.ID))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, card.ID, &model.UpdateMedicineCardRequest{})
	require.NoError(t, err)
	assert.Equal(t, card, updated)
}

func TestUpdateCardUnknownPet(t *testing.T) {
	svc, _, pet := newTestService()
	ctx := context.Background()

	card, err := svc.Create(ctx, createReq(pet.ID))
	require.NoError(t, err)

	badPet := int64(404)
	_, err = svc.Update(ctx, card.ID, &model.UpdateMedicineCardRequest{ClientPetID: &badPet})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
}

func TestDeleteCard(t *testing.T) {
	svc, _, pet := newTestService()
	ctx := context.Background()

	card, err := svc.Create(ctx, createReq(pet.ID))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, card.ID))
	err = svc.Delete(ctx, card.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
}
