package model

// ServiceCategory groups services in the catalog.
type ServiceCategory struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"categoryName"`
}

// Service is a billable catalog entry.
type Service struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"serviceName"`
	Price       float64 `db:"price" json:"servicesPrice"`
	Description *string `db:"description" json:"servicesDescription,omitempty"`
	CategoryID  int64   `db:"category_id" json:"servicesCategoryId"`
}

// Post is a staff position held by doctors.
type Post struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"postName"`
}

// Status is an open reference table for request lifecycle states. Row 1 is
// seeded as the initial status.
type Status struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"statusName"`
}

// InitialStatusID is the default status assigned to new requests.
const InitialStatusID int64 = 1

type CreateCategoryRequest struct {
	Name string `json:"categoryName" binding:"required"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"categoryName"`
}

type CreateServiceRequest struct {
	Name        string   `json:"serviceName" binding:"required"`
	Price       *float64 `json:"servicesPrice" binding:"required,gt=0"`
	Description *string  `json:"servicesDescription"`
	CategoryID  int64    `json:"servicesCategoryId" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"serviceName"`
	Price       *float64 `json:"servicesPrice"`
	Description *string  `json:"servicesDescription"`
	CategoryID  *int64   `json:"servicesCategoryId"`
}

type CreatePostRequest struct {
	Name string `json:"postName" binding:"required"`
}

type UpdatePostRequest struct {
	Name *string `json:"postName"`
}
