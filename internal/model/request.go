package model

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateContactRequest struct {
	FirstName string `json:"firstName" validate:"required,max=80"`
	LastName  string `json:"lastName" validate:"required,max=80"`
	Email     string `json:"email" validate:"required,email,max=120"`
}

type UpdateContactRequest struct {
	FirstName *string `json:"firstName" validate:"omitnil,min=1,max=80"`
	LastName  *string `json:"lastName" validate:"omitnil,min=1,max=80"`
	Email     *string `json:"email" validate:"omitnil,email,max=120"`
}

func (r UpdateContactRequest) Patch() ContactPatch {
	return ContactPatch{FirstName: r.FirstName, LastName: r.LastName, Email: r.Email}
}
