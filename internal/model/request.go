package model

// ClientRequest is a client's ask for one or more catalog services. It must
// reference at least one service at creation.
type ClientRequest struct {
	ID          int64   `db:"id" json:"id"`
	RequestDate Date    `db:"request_date" json:"requestDate"`
	Description *string `db:"description" json:"requestDescription,omitempty"`
	StatusID    int64   `db:"status_id" json:"statusId"`
	UserID      int64   `db:"user_id" json:"userId"`
	ClientPetID int64   `db:"client_pet_id" json:"clientPetId"`
}

// CreateRequestRequest carries the submission payload. ServiceID accepts a
// single id or an array of ids.
type CreateRequestRequest struct {
	RequestDate *string `json:"requestDate"`
	Description *string `json:"requestDescription"`
	ClientPetID int64   `json:"clientPetId" binding:"required"`
	ServiceID   IDList  `json:"serviceId"`
}

// UpdateRequestStatus changes the lifecycle status of a request.
type UpdateRequestStatus struct {
	StatusID int64 `json:"statusId" binding:"required"`
}

// RequestDetail is the request read projection: the request eagerly joined
// with its linked services and its pet.
type RequestDetail struct {
	ClientRequest
	Services []Service  `json:"services"`
	Pet      *ClientPet `json:"pet,omitempty"`
}
