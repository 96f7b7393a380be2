package checkout

// Partition splits a cart into menu items and groceries by categoryType,
// preserving the relative order within each group. It is a pure function:
// every input item lands in exactly one of the two groups, and running it
// again on either group is a no-op.
func Partition(items []CartItem) (menuitems, groceries []CartItem) {
	for _, item := range items {
		switch item.CategoryType {
		case CategoryGrocery:
			groceries = append(groceries, item)
		default:
			menuitems = append(menuitems, item)
		}
	}
	return menuitems, groceries
}
