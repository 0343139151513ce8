// Package repositorytest provides an in-memory implementation of every
// persistence interface for service-level tests. Unique constraints and
// not-found behavior mirror the relational store.
package repositorytest

import (
	"context"
	"sync"

	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository"
)

type Store struct {
	mu  sync.Mutex
	seq int64

	users           map[int64]*model.User
	doctors         map[int64]*model.Doctor
	categories      map[int64]*model.ServiceCategory
	services        map[int64]*model.Service
	posts           map[int64]*model.Post
	statuses        map[int64]*model.Status
	pets            map[int64]*model.ClientPet
	requests        map[int64]*model.ClientRequest
	requestServices map[int64][]int64
	appointments    map[int64]*model.Appointment
	cards           map[int64]*model.MedicineCard
}

func NewStore() *Store {
	s := &Store{
		users:           make(map[int64]*model.User),
		doctors:         make(map[int64]*model.Doctor),
		categories:      make(map[int64]*model.ServiceCategory),
		services:        make(map[int64]*model.Service),
		posts:           make(map[int64]*model.Post),
		statuses:        make(map[int64]*model.Status),
		pets:            make(map[int64]*model.ClientPet),
		requests:        make(map[int64]*model.ClientRequest),
		requestServices: make(map[int64][]int64),
		appointments:    make(map[int64]*model.Appointment),
		cards:           make(map[int64]*model.MedicineCard),
	}
	s.statuses[model.InitialStatusID] = &model.Status{ID: model.InitialStatusID, Name: "Создана"}
	return s
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

// Seed helpers for arranging test fixtures directly.

func (s *Store) SeedUser(user model.User) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == 0 {
		user.ID = s.nextID()
	}
	s.users[user.ID] = &user
	return &user
}

func (s *Store) SeedDoctor(profile model.Doctor) *model.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	if profile.ID == 0 {
		profile.ID = s.nextID()
	}
	s.doctors[profile.ID] = &profile
	return &profile
}

func (s *Store) SeedPost(post model.Post) *model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	if post.ID == 0 {
		post.ID = s.nextID()
	}
	s.posts[post.ID] = &post
	return &post
}

func (s *Store) SeedCategory(category model.ServiceCategory) *model.ServiceCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	if category.ID == 0 {
		category.ID = s.nextID()
	}
	s.categories[category.ID] = &category
	return &category
}

func (s *Store) SeedService(service model.Service) *model.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	if service.ID == 0 {
		service.ID = s.nextID()
	}
	s.services[service.ID] = &service
	return &service
}

func (s *Store) SeedStatus(status model.Status) *model.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status.ID == 0 {
		status.ID = s.nextID()
	}
	s.statuses[status.ID] = &status
	return &status
}

func (s *Store) SeedPet(pet model.ClientPet) *model.ClientPet {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pet.ID == 0 {
		pet.ID = s.nextID()
	}
	s.pets[pet.ID] = &pet
	return &pet
}

func (s *Store) SeedCard(card model.MedicineCard) *model.MedicineCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	if card.ID == 0 {
		card.ID = s.nextID()
	}
	s.cards[card.ID] = &card
	return &card
}

// CountUsers reports how many user rows exist, for asserting the absence of
// partial writes.
func (s *Store) CountUsers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func (s *Store) CountAppointments() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.appointments)
}

func (s *Store) CountRequests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Accessors returning each persistence interface.

func (s *Store) Users() repository.UserRepository                 { return &fakeUsers{s} }
func (s *Store) Doctors() repository.DoctorRepository             { return &fakeDoctors{s} }
func (s *Store) Categories() repository.CategoryRepository        { return &fakeCategories{s} }
func (s *Store) Services() repository.ServiceRepository           { return &fakeServices{s} }
func (s *Store) Posts() repository.PostRepository                 { return &fakePosts{s} }
func (s *Store) Statuses() repository.StatusRepository            { return &fakeStatuses{s} }
func (s *Store) Pets() repository.PetRepository                   { return &fakePets{s} }
func (s *Store) Requests() repository.RequestRepository           { return &fakeRequests{s} }
func (s *Store) Appointments() repository.AppointmentRepository   { return &fakeAppointments{s} }
func (s *Store) MedicineCards() repository.MedicineCardRepository { return &fakeCards{s} }

type fakeUsers struct{ s *Store }

func (f *fakeUsers) Create(_ context.Context, user *model.User) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, existing := range f.s.users {
		if existing.Email == user.Email || existing.Phone == user.Phone {
			return repository.ErrDuplicate
		}
	}
	user.ID = f.s.nextID()
	stored := *user
	f.s.users[user.ID] = &stored
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	user, ok := f.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, user := range f.s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) GetByPhone(_ context.Context, phone string) (*model.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, user := range f.s.users {
		if user.Phone == phone {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) Update(_ context.Context, user *model.User) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range f.s.users {
		if id != user.ID && (existing.Email == user.Email || existing.Phone == user.Phone) {
			return repository.ErrDuplicate
		}
	}
	stored := *user
	f.s.users[user.ID] = &stored
	return nil
}

type fakeDoctors struct{ s *Store }

func (f *fakeDoctors) CreateWithUser(_ context.Context, user *model.User, profile *model.Doctor) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, existing := range f.s.users {
		if existing.Email == user.Email || existing.Phone == user.Phone {
			return repository.ErrDuplicate
		}
	}
	user.ID = f.s.nextID()
	storedUser := *user
	f.s.users[user.ID] = &storedUser

	profile.ID = f.s.nextID()
	profile.UserID = user.ID
	storedProfile := *profile
	f.s.doctors[profile.ID] = &storedProfile
	return nil
}

func (f *fakeDoctors) GetProfileByUserID(_ context.Context, userID int64) (*model.Doctor, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return f.profileByUserLocked(userID)
}

func (f *fakeDoctors) profileByUserLocked(userID int64) (*model.Doctor, error) {
	for _, profile := range f.s.doctors {
		if profile.UserID == userID {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDoctors) GetDetail(_ context.Context, userID int64) (*model.DoctorDetail, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	user, ok := f.s.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	profile, err := f.profileByUserLocked(userID)
	if err != nil {
		return nil, err
	}
	return &model.DoctorDetail{User: *user, Profile: *profile}, nil
}

func (f *fakeDoctors) ListDetails(_ context.Context) ([]*model.DoctorDetail, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	details := make([]*model.DoctorDetail, 0, len(f.s.doctors))
	for _, profile := range f.s.doctors {
		user, ok := f.s.users[profile.UserID]
		if !ok {
			continue
		}
		details = append(details, &model.DoctorDetail{User: *user, Profile: *profile})
	}
	return details, nil
}

func (f *fakeDoctors) UpdateWithUser(_ context.Context, user *model.User, profile *model.Doctor) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range f.s.users {
		if id != user.ID && (existing.Email == user.Email || existing.Phone == user.Phone) {
			return repository.ErrDuplicate
		}
	}
	storedUser := *user
	f.s.users[user.ID] = &storedUser
	storedProfile := *profile
	f.s.doctors[profile.ID] = &storedProfile
	return nil
}

func (f *fakeDoctors) DeleteWithUser(_ context.Context, userID int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	profile, err := f.profileByUserLocked(userID)
	if err != nil {
		return err
	}
	delete(f.s.doctors, profile.ID)
	delete(f.s.users, userID)
	return nil
}

type fakeCategories struct{ s *Store }

func (f *fakeCategories) Create(_ context.Context, category *model.ServiceCategory) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, existing := range f.s.categories {
		if existing.Name == category.Name {
			return repository.ErrDuplicate
		}
	}
	category.ID = f.s.nextID()
	stored := *category
	f.s.categories[category.ID] = &stored
	return nil
}

func (f *fakeCategories) GetByID(_ context.Context, id int64) (*model.ServiceCategory, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	category, ok := f.s.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *category
	return &copied, nil
}

func (f *fakeCategories) GetByName(_ context.Context, name string) (*model.ServiceCategory, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, category := range f.s.categories {
		if category.Name == name {
			copied := *category
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCategories) List(_ context.Context) ([]*model.ServiceCategory, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*model.ServiceCategory, 0, len(f.s.categories))
	for _, category := range f.s.categories {
		copied := *category
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeCategories) Update(_ context.Context, category *model.ServiceCategory) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.categories[category.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range f.s.categories {
		if id != category.ID && existing.Name == category.Name {
			return repository.ErrDuplicate
		}
	}
	stored := *category
	f.s.categories[category.ID] = &stored
	return nil
}

func (f *fakeCategories) Delete(_ context.Context, id int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.categories[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.s.categories, id)
	return nil
}

type fakeServices struct{ s *Store }

func (f *fakeServices) Create(_ context.Context, service *model.Service) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, existing := range f.s.services {
		if existing.Name == service.Name {
			return repository.ErrDuplicate
		}
	}
	service.ID = f.s.nextID()
	stored := *service
	f.s.services[service.ID] = &stored
	return nil
}

func (f *fakeServices) GetByID(_ context.Context, id int64) (*model.Service, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	service, ok := f.s.services[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *service
	return &copied, nil
}

func (f *fakeServices) GetByName(_ context.Context, name string) (*model.Service, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, service := range f.s.services {
		if service.Name == name {
			copied := *service
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeServices) List(_ context.Context) ([]*model.Service, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*model.Service, 0, len(f.s.services))
	for _, service := range f.s.services {
		copied := *service
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeServices) Update(_ context.Context, service *model.Service) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.services[service.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range f.s.services {
		if id != service.ID && existing.Name == service.Name {
			return repository.ErrDuplicate
		}
	}
	stored := *service
	f.s.services[service.ID] = &stored
	return nil
}

func (f *fakeServices) Delete(_ context.Context, id int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.services[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.s.services, id)
	return nil
}

type fakePosts struct{ s *Store }

func (f *fakePosts) Create(_ context.Context, post *model.Post) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, existing := range f.s.posts {
		if existing.Name == post.Name {
			return repository.ErrDuplicate
		}
	}
	post.ID = f.s.nextID()
	stored := *post
	f.s.posts[post.ID] = &stored
	return nil
}

func (f *fakePosts) GetByID(_ context.Context, id int64) (*model.Post, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	post, ok := f.s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (f *fakePosts) GetByName(_ context.Context, name string) (*model.Post, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, post := range f.s.posts {
		if post.Name == name {
			copied := *post
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePosts) List(_ context.Context) ([]*model.Post, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*model.Post, 0, len(f.s.posts))
	for _, post := range f.s.posts {
		copied := *post
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakePosts) Update(_ context.Context, post *model.Post) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.posts[post.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range f.s.posts {
		if id != post.ID && existing.Name == post.Name {
			return repository.ErrDuplicate
		}
	}
	stored := *post
	f.s.posts[post.ID] = &stored
	return nil
}

func (f *fakePosts) Delete(_ context.Context, id int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.s.posts, id)
	return nil
}

type fakeStatuses struct{ s *Store }

func (f *fakeStatuses) GetByID(_ context.Context, id int64) (*model.Status, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	status, ok := f.s.statuses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *status
	return &copied, nil
}

func (f *fakeStatuses) List(_ context.Context) ([]*model.Status, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*model.Status, 0, len(f.s.statuses))
	for _, status := range f.s.statuses {
		copied := *status
		out = append(out, &copied)
	}
	return out, nil
}

type fakePets struct{ s *Store }

func (f *fakePets) Create(_ context.Context, pet *model.ClientPet) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	pet.ID = f.s.nextID()
	stored := *pet
	f.s.pets[pet.ID] = &stored
	return nil
}

func (f *fakePets) GetByID(_ context.Context, id int64) (*model.ClientPet, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	pet, ok := f.s.pets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *pet
	return &copied, nil
}

func (f *fakePets) ListByOwner(_ context.Context, userID int64) ([]*model.ClientPet, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*model.ClientPet, 0)
	for _, pet := range f.s.pets {
		if pet.UserID == userID {
			copied := *pet
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakePets) Update(_ context.Context, pet *model.ClientPet) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.pets[pet.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *pet
	f.s.pets[pet.ID] = &stored
	return nil
}

func (f *fakePets) Delete(_ context.Context, id int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.pets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.s.pets, id)
	return nil
}

type fakeRequests struct{ s *Store }

func (f *fakeRequests) CreateWithServices(_ context.Context, request *model.ClientRequest, serviceIDs []int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, serviceID := range serviceIDs {
		if _, ok := f.s.services[serviceID]; !ok {
			return repository.ErrNotFound
		}
	}
	request.ID = f.s.nextID()
	stored := *request
	f.s.requests[request.ID] = &stored
	f.s.requestServices[request.ID] = append([]int64(nil), serviceIDs...)
	return nil
}

func (f *fakeRequests) GetByID(_ context.Context, id int64) (*model.ClientRequest, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	request, ok := f.s.requests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *request
	return &copied, nil
}

func (f *fakeRequests) detailLocked(request *model.ClientRequest) *model.RequestDetail {
	services := make([]model.Service, 0)
	for _, serviceID := range f.s.requestServices[request.ID] {
		if service, ok := f.s.services[serviceID]; ok {
			services = append(services, *service)
		}
	}
	detail := &model.RequestDetail{ClientRequest: *request, Services: services}
	if pet, ok := f.s.pets[request.ClientPetID]; ok {
		copied := *pet
		detail.Pet = &copied
	}
	return detail
}

func (f *fakeRequests) GetDetail(_ context.Context, id int64) (*model.RequestDetail, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	request, ok := f.s.requests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return f.detailLocked(request), nil
}

func (f *fakeRequests) ListDetailsByUser(_ context.Context, userID int64) ([]*model.RequestDetail, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*model.RequestDetail, 0)
	for _, request := range f.s.requests {
		if request.UserID == userID {
			out = append(out, f.detailLocked(request))
		}
	}
	return out, nil
}

func (f *fakeRequests) ListDetails(_ context.Context) ([]*model.RequestDetail, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*model.RequestDetail, 0, len(f.s.requests))
	for _, request := range f.s.requests {
		out = append(out, f.detailLocked(request))
	}
	return out, nil
}

func (f *fakeRequests) UpdateStatus(_ context.Context, id, statusID int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	request, ok := f.s.requests[id]
	if !ok {
		return repository.ErrNotFound
	}
	request.StatusID = statusID
	return nil
}

type fakeAppointments struct{ s *Store }

func (f *fakeAppointments) Create(_ context.Context, appointment *model.Appointment) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, existing := range f.s.appointments {
		if existing.ClientRequestID == appointment.ClientRequestID {
			return repository.ErrDuplicate
		}
	}
	appointment.ID = f.s.nextID()
	stored := *appointment
	f.s.appointments[appointment.ID] = &stored
	return nil
}

func (f *fakeAppointments) GetByID(_ context.Context, id int64) (*model.Appointment, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	appointment, ok := f.s.appointments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *appointment
	return &copied, nil
}

func (f *fakeAppointments) detailLocked(appointment *model.Appointment) *model.AppointmentDetail {
	detail := &model.AppointmentDetail{Appointment: *appointment}
	if profile, ok := f.s.doctors[appointment.DoctorID]; ok {
		if user, ok := f.s.users[profile.UserID]; ok {
			detail.Doctor = &model.DoctorDetail{User: *user, Profile: *profile}
		}
	}
	if request, ok := f.s.requests[appointment.ClientRequestID]; ok {
		requests := fakeRequests{f.s}
		detail.Request = requests.detailLocked(request)
	}
	return detail
}

func (f *fakeAppointments) GetDetail(_ context.Context, id int64) (*model.AppointmentDetail, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	appointment, ok := f.s.appointments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return f.detailLocked(appointment), nil
}

func (f *fakeAppointments) ListDetailsByUser(_ context.Context, userID int64) ([]*model.AppointmentDetail, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*model.AppointmentDetail, 0)
	for _, appointment := range f.s.appointments {
		if appointment.UserID == userID {
			out = append(out, f.detailLocked(appointment))
		}
	}
	return out, nil
}

func (f *fakeAppointments) ListDetailsByDoctor(_ context.Context, doctorID int64) ([]*model.AppointmentDetail, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*model.AppointmentDetail, 0)
	for _, appointment := range f.s.appointments {
		if appointment.DoctorID == doctorID {
			out = append(out, f.detailLocked(appointment))
		}
	}
	return out, nil
}

func (f *fakeAppointments) Delete(_ context.Context, id int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.appointments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.s.appointments, id)
	return nil
}

type fakeCards struct{ s *Store }

func (f *fakeCards) Create(_ context.Context, card *model.MedicineCard) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	card.ID = f.s.nextID()
	stored := *card
	f.s.cards[card.ID] = &stored
	return nil
}

func (f *fakeCards) GetByID(_ context.Context, id int64) (*model.MedicineCard, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	card, ok := f.s.cards[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *card
	return &copied, nil
}

func (f *fakeCards) List(_ context.Context) ([]*model.MedicineCard, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*model.MedicineCard, 0, len(f.s.cards))
	for _, card := range f.s.cards {
		copied := *card
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeCards) ListByPet(_ context.Context, petID int64) ([]*model.MedicineCard, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*model.MedicineCard, 0)
	for _, card := range f.s.cards {
		if card.ClientPetID == petID {
			copied := *card
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeCards) Update(_ context.Context, card *model.MedicineCard) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.cards[card.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *card
	f.s.cards[card.ID] = &stored
	return nil
}

func (f *fakeCards) Delete(_ context.Context, id int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.cards[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.s.cards, id)
	return nil
}
