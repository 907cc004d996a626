package domain

type Crew struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func ErrDuplicateCrew() *ValidationError {
	return NewValidationError(KindDuplicateCrew, NonFieldErrors, "Crew member with this first and last name already exists.")
}
