package domain

// Line is a pending selection for the sale in progress. It references the
// catalog item by id only; price and stock are always read live.
type Line struct {
	ItemID   string
	Quantity int
}
