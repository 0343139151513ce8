package model

// Doctor is the professional profile attached to a DOCTOR-role user. It
// never exists without its backing user.
type Doctor struct {
	ID         int64 `db:"id" json:"id"`
	Experience int   `db:"experience" json:"experienceValue"`
	PostID     int64 `db:"post_id" json:"postId"`
	UserID     int64 `db:"user_id" json:"userId"`
}

// DoctorDetail is the doctor read projection: the user joined with its
// profile.
type DoctorDetail struct {
	User
	Profile Doctor `json:"doctor"`
}

// CreateDoctorRequest creates the backing user and the profile in one
// operation.
type CreateDoctorRequest struct {
	Fio        string `json:"userFio" binding:"required"`
	Phone      string `json:"userPhone" binding:"required"`
	Email      string `json:"userEmail" binding:"required"`
	Password   string `json:"userPassword" binding:"required"`
	Experience *int   `json:"experienceValue" binding:"required,gte=0"`
	PostID     int64  `json:"postId" binding:"required"`
}

// UpdateDoctorRequest is a partial update over both the user and the profile.
type UpdateDoctorRequest struct {
	Fio        *string `json:"userFio"`
	Phone      *string `json:"userPhone"`
	Email      *string `json:"userEmail"`
	Password   *string `json:"userPassword"`
	Experience *int    `json:"experienceValue"`
	PostID     *int64  `json:"postId"`
}
