package entity

// Where a cart line came from.
const (
	SourceMenu  = "menu"
	SourceCombo = "combo"
)

// CartLine is a committed line in a session's cart. Item is a snapshot taken
// at add time; later catalog edits must not change an existing line's price.
// Lines live only in memory; carts are never persisted.
type CartLine struct {
	ID         uint         `json:"id"`
	Source     string       `json:"source"`
	Item       MenuItem     `json:"item"`
	Qty        int          `json:"qty"`
	Note       string       `json:"note"`
	Selections SelectionSet `json:"selections"`
}
