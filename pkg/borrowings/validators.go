package borrowings

// BorrowPayload is the payload for borrowing a book.
type BorrowPayload struct {
	BookID       int    `json:"book_id" validate:"required,min=1"`
	BorrowerName string `json:"borrower_name" validate:"required,max=300"`
}
