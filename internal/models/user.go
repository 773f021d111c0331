package models

import "fmt"

// UserRole is one of the four hierarchical access levels. The rbac package
// maps each role to the dashboard panels it may see.
type UserRole string

const (
	RoleOperator    UserRole = "operator"
	RoleSupervisor  UserRole = "supervisor"
	RoleClientAdmin UserRole = "clientadmin"
	RoleSysAdmin    UserRole = "sysadmin"
)

// Roles lists every defined role, lowest access first.
var Roles = []UserRole{RoleOperator, RoleSupervisor, RoleClientAdmin, RoleSysAdmin}

func (r UserRole) Valid() bool {
	switch r {
	case RoleOperator, RoleSupervisor, RoleClientAdmin, RoleSysAdmin:
		return true
	}
	return false
}

// User is a dashboard account. The password is stored as supplied; this
// prototype has no credential verification (see DESIGN.md), so the role is
// informational UI state rather than an authenticated claim.
type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
}

func (u User) RecordID() string { return u.ID }

func (u User) WithID(id string) User {
	u.ID = id
	return u
}

type CreateUserRequest struct {
	Username *string   `json:"username"`
	Password *string   `json:"password"`
	Role     *UserRole `json:"role"`
}

func (r CreateUserRequest) Validate() error {
	switch {
	case r.Username == nil || *r.Username == "":
		return fmt.Errorf("username is required")
	case r.Password == nil || *r.Password == "":
		return fmt.Errorf("password is required")
	}
	return nil
}

// Record builds the user to store. Role falls back to operator when omitted.
func (r CreateUserRequest) Record() User {
	u := User{
		Username: *r.Username,
		Password: *r.Password,
		Role:     RoleOperator,
	}
	if r.Role != nil && *r.Role != "" {
		u.Role = *r.Role
	}
	return u
}

type UserPatch struct {
	Username *string   `json:"username"`
	Password *string   `json:"password"`
	Role     *UserRole `json:"role"`
}

func (p UserPatch) Apply(u User) User {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	return u
}
