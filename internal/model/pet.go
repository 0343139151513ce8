package model

// ClientPet is a client-owned animal. Image holds the stored file name
// served under the static route.
type ClientPet struct {
	ID     int64   `db:"id" json:"id"`
	Name   string  `db:"name" json:"petName"`
	Breed  string  `db:"breed" json:"petBreed"`
	Image  string  `db:"image" json:"petImage"`
	Age    int     `db:"age" json:"petAge"`
	Sex    string  `db:"sex" json:"petSex"`
	Weight float64 `db:"weight" json:"petWeight"`
	UserID int64   `db:"user_id" json:"userId"`
}

// CreatePetRequest binds the multipart form accompanying the image upload.
type CreatePetRequest struct {
	Name   string  `form:"petName" binding:"required"`
	Breed  string  `form:"petBreed" binding:"required"`
	Age    int     `form:"petAge" binding:"required,gt=0"`
	Sex    string  `form:"petSex" binding:"required,oneof=M F"`
	Weight float64 `form:"petWeight" binding:"required,gt=0"`
}

// UpdatePetRequest reuses the create shape; the image part is optional and
// handled by the handler.
type UpdatePetRequest struct {
	Name   string  `form:"petName" binding:"required"`
	Breed  string  `form:"petBreed" binding:"required"`
	Age    int     `form:"petAge" binding:"required,gt=0"`
	Sex    string  `form:"petSex" binding:"required,oneof=M F"`
	Weight float64 `form:"petWeight" binding:"required,gt=0"`
}
