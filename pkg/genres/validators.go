package genres

// CreateGenrePayload is the payload for creating a genre.
type CreateGenrePayload struct {
	Name string `json:"name" validate:"required,max=300"`
}

// ListGenresQuery is the query for listing genres.
type ListGenresQuery struct {
	Limit  int `query:"limit" json:"limit,omitempty" default:"10" validate:"min=1,max=100"`
	Offset int `query:"offset" json:"offset,omitempty" validate:"min=0"`
}
