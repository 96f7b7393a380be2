package checkout

import "testing"

func TestPartitionCompleteness(t *testing.T) {
	items := []CartItem{
		{ID: "m1", CategoryType: CategoryMenuItem, Quantity: 1},
		{ID: "g1", CategoryType: CategoryGrocery, Quantity: 1},
		{ID: "m2", CategoryType: CategoryMenuItem, Quantity: 2},
		{ID: "g2", CategoryType: CategoryGrocery, Quantity: 1},
		{ID: "m3", CategoryType: CategoryMenuItem, Quantity: 1},
	}

	menuitems, groceries := Partition(items)

	if len(menuitems)+len(groceries) != len(items) {
		t.Fatalf("expected %d items total, got %d menuitems and %d groceries",
			len(items), len(menuitems), len(groceries))
	}

	for _, item := range menuitems {
		if item.CategoryType != CategoryMenuItem {
			t.Fatalf("item %s misclassified as menuitem", item.ID)
		}
	}
	for _, item := range groceries {
		if item.CategoryType != CategoryGrocery {
			t.Fatalf("item %s misclassified as grocery", item.ID)
		}
	}
}

func TestPartitionPreservesOrder(t *testing.T) {
	items := []CartItem{
		{ID: "m1", CategoryType: CategoryMenuItem, Quantity: 1},
		{ID: "g1", CategoryType: CategoryGrocery, Quantity: 1},
		{ID: "m2", CategoryType: CategoryMenuItem, Quantity: 1},
		{ID: "g2", CategoryType: CategoryGrocery, Quantity: 1},
	}

	menuitems, groceries := Partition(items)

	if menuitems[0].ID != "m1" || menuitems[1].ID != "m2" {
		t.Fatalf("menuitem order not preserved: %v", menuitems)
	}
	if groceries[0].ID != "g1" || groceries[1].ID != "g2" {
		t.Fatalf("grocery order not preserved: %v", groceries)
	}
}

func TestPartitionIdempotent(t *testing.T) {
	items := []CartItem{
		{ID: "m1", CategoryType: CategoryMenuItem, Quantity: 1},
		{ID: "g1", CategoryType: CategoryGrocery, Quantity: 1},
	}

	menuitems, groceries := Partition(items)

	again, none := Partition(menuitems)
	if len(again) != len(menuitems) || len(none) != 0 {
		t.Fatalf("reclassifying menuitems changed the group: %v / %v", again, none)
	}

	none, again = Partition(groceries)
	if len(again) != len(groceries) || len(none) != 0 {
		t.Fatalf("reclassifying groceries changed the group: %v / %v", again, none)
	}
}

func TestPartitionEmpty(t *testing.T) {
	menuitems, groceries := Partition(nil)
	if len(menuitems) != 0 || len(groceries) != 0 {
		t.Fatalf("expected empty groups, got %v / %v", menuitems, groceries)
	}
}
