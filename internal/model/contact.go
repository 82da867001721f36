package model

type Contact struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ContactPatch holds the fields of a partial update. Nil fields are left untouched.
type ContactPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
}

func (p ContactPatch) Apply(c Contact) Contact {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = *p.LastName
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	return c
}
