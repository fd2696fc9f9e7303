package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants (seeded by migrations)
const (
	RoleIDSuperAdmin    = 1
	RoleIDHospitalAdmin = 2
	RoleIDDoctor        = 3
	RoleIDPatient       = 4
)

// Role name constants
const (
	RoleSuperAdmin    = "super_admin"
	RoleHospitalAdmin = "hospital_admin"
	RoleDoctor        = "doctor"
	RolePatient       = "patient"
)

// RoleNameByID maps a role ID to its canonical name.
func RoleNameByID(id int) string {
	switch id {
	case RoleIDSuperAdmin:
		return RoleSuperAdmin
	case RoleIDHospitalAdmin:
		return RoleHospitalAdmin
	case RoleIDDoctor:
		return RoleDoctor
	case RoleIDPatient:
		return RolePatient
	}
	return ""
}
