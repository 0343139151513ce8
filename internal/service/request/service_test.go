package request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository/repositorytest"
)

type fixture struct {
	svc         *Service
	store       *repositorytest.Store
	client      *model.User
	otherClient *model.User
	pet         *model.ClientPet
	service1    *model.Service
	service2    *model.Service
	doctorUser  *model.User
	doctor      *model.Doctor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := repositorytest.NewStore()

	client := store.SeedUser(model.User{Fio: "Иванов Иван", Phone: "+79161111111", Email: "a@x.com", Role: model.RoleUser})
	other := store.SeedUser(model.User{Fio: "Сидоров Семён", Phone: "+79162222222", Email: "b@x.com", Role: model.RoleUser})
	doctorUser := store.SeedUser(model.User{Fio: "Петров Пётр", Phone: "+79163333333", Email: "d@x.com", Role: model.RoleDoctor})
	doctor := store.SeedDoctor(model.Doctor{Experience: 7, PostID: 1, UserID: doctorUser.ID})

	pet := store.SeedPet(model.ClientPet{Name: "Барсик", Breed: "Сиамская", Image: "a.jpg", Age: 3, Sex: "M", Weight: 4.2, UserID: client.ID})
	category := store.SeedCategory(model.ServiceCategory{Name: "Терапия"})
	s1 := store.SeedService(model.Service{Name: "Вакцинация", Price: 1500, CategoryID: category.ID})
	s2 := store.SeedService(model.Service{Name: "Осмотр", Price: 800, CategoryID: category.ID})

	svc := NewService(
		store.Requests(), store.Appointments(), store.Pets(), store.Users(),
		store.Doctors(), store.Services(), store.Statuses())

	return &fixture{
		svc: svc, store: store,
		client: client, otherClient: other,
		pet: pet, service1: s1, service2: s2,
		doctorUser: doctorUser, doctor: doctor,
	}
}

func (f *fixture) createRequest(t *testing.T, services model.IDList) *model.RequestDetail {
	t.Helper()
	detail, err := f.svc.CreateRequest(context.Background(), f.client.ID, &model.CreateRequestRequest{
		ClientPetID: f.pet.ID,
		ServiceID:   services,
	})
	require.NoError(t, err)
	return detail
}

func TestCreateRequestServiceArities(t *testing.T) {
	tests := []struct {
		name     string
		services model.IDList
		want     int
	}{
		{"single id", nil, 1},
		{"one-element list", nil, 1},
		{"two-element list", nil, 2},
	}

	f := newFixture(t)
	tests[0].services = model.IDList{f.service1.ID}
	tests[1].services = model.IDList{f.service1.ID}
	tests[2].services = model.IDList{f.service1.ID, f.service2.ID}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := f.createRequest(t, tt.services)
			assert.Len(t, detail.Services, tt.want)
			assert.Equal(t, model.InitialStatusID, detail.StatusID)
			require.NotNil(t, detail.Pet)
			assert.Equal(t, f.pet.ID, detail.Pet.ID)
		})
	}
}

func TestCreateRequestEmptySelectionFails(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateRequest(context.Background(), f.client.ID, &model.CreateRequestRequest{
		ClientPetID: f.pet.ID,
		ServiceID:   model.IDList{},
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation), "got %v", err)
	assert.Equal(t, 0, f.store.CountRequests())
}

func TestCreateRequestUnknownServiceNamesOffendingID(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateRequest(context.Background(), f.client.ID, &model.CreateRequestRequest{
		ClientPetID: f.pet.ID,
		ServiceID:   model.IDList{f.service1.ID, 999},
	})
	require.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
	assert.Contains(t, err.Error(), "999")
	assert.Equal(t, 0, f.store.CountRequests())
}

func TestCreateRequestForeignPetFails(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateRequest(context.Background(), f.otherClient.ID, &model.CreateRequestRequest{
		ClientPetID: f.pet.ID,
		ServiceID:   model.IDList{f.service1.ID},
	})
	assert.True(t, apperror.IsKind(err, apperror.KindOwnership), "got %v", err)
}

func TestCreateRequestDefaultsDateToToday(t *testing.T) {
	f := newFixture(t)

	detail := f.createRequest(t, model.IDList{f.service1.ID})
	assert.Equal(t, model.NewDate(time.Now()).String(), detail.RequestDate.String())
}

func TestCreateRequestRejectsBadDate(t *testing.T) {
	f := newFixture(t)
	bad := "15.03.2024"

	_, err := f.svc.CreateRequest(context.Background(), f.client.ID, &model.CreateRequestRequest{
		RequestDate: &bad,
		ClientPetID: f.pet.ID,
		ServiceID:   model.IDList{f.service1.ID},
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation), "got %v", err)
}

// Two-client visibility: the owner sees the request with its services and
// pet; another client cannot see it at all.
func TestRequestVisibilityScopedToOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.createRequest(t, model.IDList{f.service1.ID, f.service2.ID})

	detail, err := f.svc.GetRequest(ctx, f.client.ID, created.ID)
	require.NoError(t, err)
	require.Len(t, detail.Services, 2)
	names := []string{detail.Services[0].Name, detail.Services[1].Name}
	assert.ElementsMatch(t, []string{"Вакцинация", "Осмотр"}, names)
	require.NotNil(t, detail.Pet)
	assert.Equal(t, f.pet.ID, detail.Pet.ID)

	_, err = f.svc.GetRequest(ctx, f.otherClient.ID, created.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
}

func TestManagerSeesAllRequests(t *testing.T) {
	f := newFixture(t)

	f.createRequest(t, model.IDList{f.service1.ID})
	f.createRequest(t, model.IDList{f.service2.ID})

	all, err := f.svc.ListAllRequests(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	accepted := f.store.SeedStatus(model.Status{Name: "Принята"})

	created := f.createRequest(t, model.IDList{f.service1.ID})

	updated, err := f.svc.UpdateStatus(ctx, created.ID, &model.UpdateRequestStatus{StatusID: accepted.ID})
	require.NoError(t, err)
	assert.Equal(t, accepted.ID, updated.StatusID)
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	f := newFixture(t)

	created := f.createRequest(t, model.IDList{f.service1.ID})

	_, err := f.svc.UpdateStatus(context.Background(), created.ID, &model.UpdateRequestStatus{StatusID: 404})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
}

func TestUpdateStatusSameValueIsNoop(t *testing.T) {
	f := newFixture(t)

	created := f.createRequest(t, model.IDList{f.service1.ID})

	// The current status id need not exist in the reference table check
	// path because an equal value short-circuits first.
	updated, err := f.svc.UpdateStatus(context.Background(), created.ID, &model.UpdateRequestStatus{StatusID: created.StatusID})
	require.NoError(t, err)
	assert.Equal(t, created.StatusID, updated.StatusID)
}

func appointmentReq(f *fixture, requestID int64) *model.CreateAppointmentRequest {
	return &model.CreateAppointmentRequest{
		DateVisit:       "2024-06-01",
		TimeVisit:       "14:30",
		DoctorID:        f.doctorUser.ID,
		UserID:          f.client.ID,
		ClientRequestID: requestID,
	}
}

func TestCreateAppointment(t *testing.T) {
	f := newFixture(t)

	created := f.createRequest(t, model.IDList{f.service1.ID})

	detail, err := f.svc.CreateAppointment(context.Background(), appointmentReq(f, created.ID))
	require.NoError(t, err)
	assert.Equal(t, f.doctor.ID, detail.DoctorID)
	require.NotNil(t, detail.Doctor)
	assert.Equal(t, f.doctorUser.ID, detail.Doctor.ID)
	require.NotNil(t, detail.Request)
	assert.Len(t, detail.Request.Services, 1)
}

// A missing doctor must fail before any appointment row exists.
func TestCreateAppointmentUnknownDoctorWritesNothing(t *testing.T) {
	f := newFixture(t)

	created := f.createRequest(t, model.IDList{f.service1.ID})

	req := appointmentReq(f, created.ID)
	req.DoctorID = 999
	_, err := f.svc.CreateAppointment(context.Background(), req)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
	assert.Equal(t, 0, f.store.CountAppointments())
}

func TestCreateAppointmentNonDoctorUser(t *testing.T) {
	f := newFixture(t)

	created := f.createRequest(t, model.IDList{f.service1.ID})

	req := appointmentReq(f, created.ID)
	req.DoctorID = f.otherClient.ID
	_, err := f.svc.CreateAppointment(context.Background(), req)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation), "got %v", err)
	assert.Equal(t, 0, f.store.CountAppointments())
}

func TestCreateAppointmentRequestOwnerMismatch(t *testing.T) {
	f := newFixture(t)

	created := f.createRequest(t, model.IDList{f.service1.ID})

	req := appointmentReq(f, created.ID)
	req.UserID = f.otherClient.ID
	_, err := f.svc.CreateAppointment(context.Background(), req)
	assert.True(t, apperror.IsKind(err, apperror.KindOwnership), "got %v", err)
}

func TestCreateAppointmentBadDateAndTime(t *testing.T) {
	f := newFixture(t)

	created := f.createRequest(t, model.IDList{f.service1.ID})

	req := appointmentReq(f, created.ID)
	req.DateVisit = "01.06.2024"
	_, err := f.svc.CreateAppointment(context.Background(), req)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation), "got %v", err)

	req = appointmentReq(f, created.ID)
	req.TimeVisit = "25:00"
	_, err = f.svc.CreateAppointment(context.Background(), req)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation), "got %v", err)
}

func TestCreateAppointmentSecondForSameRequestConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.createRequest(t, model.IDList{f.service1.ID})

	_, err := f.svc.CreateAppointment(ctx, appointmentReq(f, created.ID))
	require.NoError(t, err)

	_, err = f.svc.CreateAppointment(ctx, appointmentReq(f, created.ID))
	assert.True(t, apperror.IsKind(err, apperror.KindConflict), "got %v", err)
}

func TestClientAppointmentViewsOwnerScoped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.createRequest(t, model.IDList{f.service1.ID})
	appointment, err := f.svc.CreateAppointment(ctx, appointmentReq(f, created.ID))
	require.NoError(t, err)

	detail, err := f.svc.GetAppointment(ctx, f.client.ID, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, appointment.ID, detail.ID)

	_, err = f.svc.GetAppointment(ctx, f.otherClient.ID, appointment.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)

	err = f.svc.DeleteAppointment(ctx, f.otherClient.ID, appointment.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)

	require.NoError(t, f.svc.DeleteAppointment(ctx, f.client.ID, appointment.ID))
	assert.Equal(t, 0, f.store.CountAppointments())
}

func TestDoctorSchedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.createRequest(t, model.IDList{f.service1.ID})
	_, err := f.svc.CreateAppointment(ctx, appointmentReq(f, created.ID))
	require.NoError(t, err)

	schedule, err := f.svc.ListDoctorSchedule(ctx, f.doctorUser.ID)
	require.NoError(t, err)
	require.Len(t, schedule, 1)
	assert.Equal(t, f.doctor.ID, schedule[0].DoctorID)

	_, err = f.svc.ListDoctorSchedule(ctx, f.otherClient.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
}
