package books

// CreateBookPayload is the payload for creating a book. The ISBN bounds pin
// it to exactly 13 decimal digits.
type CreateBookPayload struct {
	Title       string `json:"title" validate:"required,max=300"`
	ISBN        int64  `json:"isbn" validate:"required,min=1000000000000,max=9999999999999"`
	PublishDate string `json:"publish_date" validate:"required,date"`
	AuthorID    int    `json:"author_id" validate:"required,min=1"`
	PublisherID int    `json:"publisher_id" validate:"required,min=1"`
	GenreIDs    []int  `json:"genre_ids" validate:"omitempty,dive,min=1"`
}

// ListBooksQuery is the query for listing books.
type ListBooksQuery struct {
	Limit  int    `query:"limit" json:"limit,omitempty" default:"10" validate:"min=1,max=100"`
	Offset int    `query:"offset" json:"offset,omitempty" validate:"min=0"`
	SortBy string `query:"sort_by" json:"sort_by,omitempty" default:"title" validate:"oneof=title author publish_date"`
}
