package model

// Appointment schedules a doctor visit for an accepted request. A request
// has at most one appointment.
type Appointment struct {
	ID              int64  `db:"id" json:"id"`
	DateVisit       Date   `db:"date_visit" json:"dateVisit"`
	TimeVisit       string `db:"time_visit" json:"timeVisit"`
	DoctorID        int64  `db:"doctor_id" json:"doctorId"`
	UserID          int64  `db:"user_id" json:"userId"`
	ClientRequestID int64  `db:"client_request_id" json:"clientRequestId"`
}

// CreateAppointmentRequest is the manager triage payload. DoctorID is the
// doctor's user id; the profile row is resolved from it.
type CreateAppointmentRequest struct {
	DateVisit       string `json:"dateVisit" binding:"required"`
	TimeVisit       string `json:"timeVisit" binding:"required"`
	DoctorID        int64  `json:"doctorId" binding:"required"`
	UserID          int64  `json:"userId" binding:"required"`
	ClientRequestID int64  `json:"clientRequestId" binding:"required"`
}

// AppointmentDetail is the appointment read projection: the appointment
// joined with doctor (and its user) and the originating request with its
// services.
type AppointmentDetail struct {
	Appointment
	Doctor  *DoctorDetail  `json:"doctor,omitempty"`
	Request *RequestDetail `json:"clientRequest,omitempty"`
}
