package publishers

// CreatePublisherPayload is the payload for creating a publisher.
type CreatePublisherPayload struct {
	Name            string `json:"name" validate:"required,max=300"`
	EstablishedYear int    `json:"established_year" validate:"required,min=1"`
}

// ListPublishersQuery is the query for listing publishers.
type ListPublishersQuery struct {
	Limit  int `query:"limit" json:"limit,omitempty" default:"10" validate:"min=1,max=100"`
	Offset int `query:"offset" json:"offset,omitempty" validate:"min=0"`
}
