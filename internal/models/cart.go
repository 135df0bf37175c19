package models

// CartItem is one line of the shopping cart. The id is assigned when the
// line is first created; merging on repeated adds is by (name, price)
// equality, so at most one line exists per distinct (name, price) pair.
// Price is kept in its display form ("R$ 1.234,56"); numeric work goes
// through the money package.
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Specs    string `json:"specs"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// ProductSnapshot carries the display fields of a catalog card. It is what
// the favorite toggle and the add-to-cart affordance capture from a page.
type ProductSnapshot struct {
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Specs    string `json:"specs"`
	Price    string `json:"price"`
	OldPrice string `json:"oldPrice,omitempty"`
	Image    string `json:"image"`
}
