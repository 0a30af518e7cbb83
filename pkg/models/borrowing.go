package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Borrowing is one row of a book's borrowing history. A borrowing with no
// return date is open: the book is out and unavailable. Setting the return
// date closes it for good.
type Borrowing struct {
	bun.BaseModel `bun:"table:borrowing_history,alias:bh"`

	ID           int        `bun:",pk,nullzero" json:"id"`
	BookID       int        `bun:",nullzero" json:"book_id"`
	Book         *Book      `bun:"rel:belongs-to,join:book_id=id" json:"-"`
	BorrowerName string     `bun:",nullzero" json:"borrower_name"`
	BorrowDate   time.Time  `bun:",nullzero" json:"borrow_date"`
	ReturnDate   *time.Time `json:"return_date"`
}

// Open reports whether the book is still out on this borrowing.
func (bh *Borrowing) Open() bool {
	return bh.ReturnDate == nil
}
