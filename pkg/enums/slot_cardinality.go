package enums

// SlotCardinality states how many active items a carousel slot may hold.
type SlotCardinality string

const (
	// SlotOrdered carousels hold a dense, order_index sorted list.
	SlotOrdered SlotCardinality = "ordered"
	// SlotSingleton carousels hold at most one active item.
	SlotSingleton SlotCardinality = "singleton"
)

// String implements fmt.Stringer.
func (s SlotCardinality) String() string {
	return string(s)
}
