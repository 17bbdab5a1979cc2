package entity

// Catalog is the raw read-only reference data loaded once at boot. The engine
// never mutates it.
type Catalog struct {
	Categories     []Category
	Items          []MenuItem // Tags preloaded
	ItemGroups     []MenuItemGroup
	Groups         []ModifierGroup // Options preloaded, sorted
	Combos         []Combo
	ComboItems     []ComboItem
	PaymentMethods []PaymentMethod
	Tables         []DiningTable
	LoyaltyTiers   []LoyaltyTier
}
