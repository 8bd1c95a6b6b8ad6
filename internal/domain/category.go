package domain

// MaxCategoryTitleLen caps the category title length.
const MaxCategoryTitleLen = 30

// Category labels transactions for grouping. Titles are not required to be
// unique; aggregations that group by title merge same-titled categories.
type Category struct {
	ID    int64  `db:"id" json:"id"`
	Title string `db:"title" json:"title"`
}
