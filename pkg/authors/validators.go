package authors

// CreateAuthorPayload is the payload for creating an author.
type CreateAuthorPayload struct {
	Name      string `json:"name" validate:"required,max=300"`
	Birthdate string `json:"birthdate" validate:"required,date"`
}
