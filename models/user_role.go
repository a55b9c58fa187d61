package models

type UserRole string

const (
	UserRoleRecruiter     UserRole = "RECRUITER"
	UserRoleAdministrator UserRole = "ADMINISTRATOR"
)

var roleHumanName = map[UserRole]string{
	UserRoleRecruiter:     "Recruiter",
	UserRoleAdministrator: "Administrator",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdministrator
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

const SystemUser = "System"
