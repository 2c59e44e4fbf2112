package employee

import "github.com/corestack-app/corestack-backend-go/internal/pkg/validator"

type CreateEmployeeRequest struct {
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Role         string  `json:"role,omitempty"`
	EmployeeCode string  `json:"employee_code"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	DepartmentID *string `json:"department_id,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
	Position     *string `json:"position,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	DateOfBirth  *string `json:"date_of_birth,omitempty"`
	DateOfJoining string `json:"date_of_joining"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	Address      *string `json:"address,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must be 3-20 uppercase letters, digits or dashes",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if validator.IsEmpty(r.DateOfJoining) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining is required",
		})
	} else if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining must be in YYYY-MM-DD format",
		})
	}

	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{"male", "female", "other"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be male, female or other",
		})
	}

	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be 10-15 digits",
		})
	}

	if r.Role != "" && !validator.IsInSlice(r.Role, []string{"admin", "hr", "manager", "employee"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of admin, hr, manager, employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
	Position     *string `json:"position,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	DateOfBirth  *string `json:"date_of_birth,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	Address      *string `json:"address,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

// SelfEditable reports whether the update only touches fields an employee
// may change on their own record. Everything else needs admin/hr.
func (r *UpdateEmployeeRequest) SelfEditable() bool {
	return r.FirstName == nil && r.LastName == nil &&
		r.DepartmentID == nil && r.ManagerID == nil && r.Gender == nil &&
		r.Position == nil && r.DateOfBirth == nil
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be empty",
		})
	}

	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{"male", "female", "other"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be male, female or other",
		})
	}

	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}

	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be 10-15 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeFilter struct {
	Search       string
	DepartmentID string
	ManagerID    string
	Page         int
	Limit        int
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	IsActive       bool    `json:"is_active"`
	EmployeeCode   string  `json:"employee_code"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	FullName       string  `json:"full_name"`
	Position       *string `json:"position,omitempty"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	ManagerID      *string `json:"manager_id,omitempty"`
	ManagerName    *string `json:"manager_name,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	DateOfJoining  string  `json:"date_of_joining"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	Address        *string `json:"address,omitempty"`
	ProfileImage   *string `json:"profile_image,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalItems int64              `json:"total_items"`
	TotalPages int                `json:"total_pages"`
}
