package model

// MedicineCard is a doctor-authored entry in a pet's medical history.
type MedicineCard struct {
	ID          int64  `db:"id" json:"id"`
	Info        string `db:"info" json:"medicineInfo"`
	Description string `db:"description" json:"medicineDescription"`
	DateVisit   Date   `db:"date_visit" json:"dateVisit"`
	ClientPetID int64  `db:"client_pet_id" json:"clientPetId"`
}

type CreateMedicineCardRequest struct {
	Info        string `json:"medicineInfo" binding:"required"`
	Description string `json:"medicineDescription" binding:"required"`
	DateVisit   string `json:"dateVisit" binding:"required"`
	ClientPetID int64  `json:"clientPetId" binding:"required"`
}

// UpdateMedicineCardRequest is a partial update; omitted fields keep their
// stored values.
type UpdateMedicineCardRequest struct {
	Info        *string `json:"medicineInfo"`
	Description *string `json:"medicineDescription"`
	DateVisit   *string `json:"dateVisit"`
	ClientPetID *int64  `json:"clientPetId"`
}
