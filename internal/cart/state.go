package cart

import "github.com/kanzcollective/storefront-backend/internal/catalog"

// Line is one product entry in a cart plus its quantity. The product
// fields are a snapshot taken at add time, mirroring what the client
// renders in the drawer.
type Line struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Currency  string `json:"currency"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// State holds the ordered cart lines and the drawer visibility flag.
// It is a value; transitions return a new State and never mutate the old.
type State struct {
	Lines []Line
	Open  bool
}

// Action is a cart transition. All implementations are pure.
type Action interface {
	apply(State) State
}

// AddItem appends a quantity-1 line for the product, or increments the
// existing line. It does not touch the visibility flag; whether adding
// should surface the drawer is the presentation layer's call.
type AddItem struct {
	Product catalog.ProductDTO
}

func (a AddItem) apply(s State) State {
	lines := cloneLines(s.Lines)
	for i := range lines {
		if lines[i].ProductID == a.Product.ID {
			lines[i].Quantity++
			return State{Lines: lines, Open: s.Open}
		}
	}
	lines = append(lines, Line{
		ProductID: a.Product.ID,
		Name:      a.Product.Name,
		Price:     a.Product.Price,
		Currency:  a.Product.Currency,
		Image:     a.Product.Image,
		Quantity:  1,
	})
	return State{Lines: lines, Open: s.Open}
}

// RemoveItem deletes the line with the given product id; absent ids are
// a no-op, not an error.
type RemoveItem struct {
	ProductID string
}

func (a RemoveItem) apply(s State) State {
	lines := make([]Line, 0, len(s.Lines))
	for _, line := range s.Lines {
		if line.ProductID != a.ProductID {
			lines = append(lines, line)
		}
	}
	return State{Lines: lines, Open: s.Open}
}

// UpdateQuantity sets the line's quantity to max(1, Quantity). Driving a
// line to zero requires RemoveItem.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

func (a UpdateQuantity) apply(s State) State {
	lines := cloneLines(s.Lines)
	for i := range lines {
		if lines[i].ProductID == a.ProductID {
			lines[i].Quantity = max(1, a.Quantity)
		}
	}
	return State{Lines: lines, Open: s.Open}
}

// ClearCart empties the line sequence; visibility is untouched.
type ClearCart struct{}

func (ClearCart) apply(s State) State {
	return State{Lines: []Line{}, Open: s.Open}
}

// ToggleVisibility flips the drawer flag.
type ToggleVisibility struct{}

func (ToggleVisibility) apply(s State) State {
	return State{Lines: cloneLines(s.Lines), Open: !s.Open}
}

// ReplaceLines swaps the line sequence wholesale. Used only by startup
// rehydration from the persisted slot.
type ReplaceLines struct {
	Lines []Line
}

func (a ReplaceLines) apply(s State) State {
	return State{Lines: cloneLines(a.Lines), Open: s.Open}
}

// Apply runs a transition, returning the successor state.
func Apply(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// TotalItems sums line quantities.
func (s State) TotalItems() int {
	total := 0
	for _, line := range s.Lines {
		total += line.Quantity
	}
	return total
}

// Subtotal sums price times quantity across all lines, in whole currency
// units. Always recomputed, never cached.
func (s State) Subtotal() int {
	total := 0
	for _, line := range s.Lines {
		total += line.Price * line.Quantity
	}
	return total
}

func cloneLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}
