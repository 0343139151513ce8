package model

// Role is the closed set of principal roles.
type Role string

const (
	RoleUser    Role = "USER"
	RoleDoctor  Role = "DOCTOR"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)

// Operation names a protected capability of the API.
type Operation string

const (
	OpManageCatalog      Operation = "catalog:manage"
	OpManagePets         Operation = "pets:manage"
	OpSubmitRequests     Operation = "requests:submit"
	OpViewAppointments   Operation = "appointments:view"
	OpTriageRequests     Operation = "requests:triage"
	OpManageMedicalCards Operation = "medcards:manage"
	OpViewOwnSchedule    Operation = "schedule:view"
)

// capabilities is the role -> allowed operations table. Authorization checks
// consult this table instead of comparing role strings at call sites.
var capabilities = map[Role]map[Operation]bool{
	RoleAdmin: {
		OpManageCatalog: true,
	},
	RoleUser: {
		OpManagePets:       true,
		OpSubmitRequests:   true,
		OpViewAppointments: true,
	},
	RoleManager: {
		OpTriageRequests: true,
	},
	RoleDoctor: {
		OpManageMedicalCards: true,
		OpViewOwnSchedule:    true,
	},
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleDoctor, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Can reports whether the role is allowed to perform op.
func (r Role) Can(op Operation) bool {
	return capabilities[r][op]
}
