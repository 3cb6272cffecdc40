package domain

// KitItem represents a single ritual item inside a religion's kit.
// Required items are always part of the booking and cannot be deselected.
type KitItem struct {
	ID          string
	Name        string
	Description string
	Price       int
	Required    bool
}

// Kit is the per-religion bundle of ritual items.
// There is exactly one kit per religion, looked up by ReligionID.
type Kit struct {
	ReligionID string
	Items      []KitItem
}

// RequiredItems returns the items that are mandatory for this kit
func (k *Kit) RequiredItems() []KitItem {
	var items []KitItem
	for _, item := range k.Items {
		if item.Required {
			items = append(items, item)
		}
	}
	return items
}

// ItemByID returns the kit item with the given id, if present
func (k *Kit) ItemByID(id string) (KitItem, bool) {
	for _, item := range k.Items {
		if item.ID == id {
			return item, true
		}
	}
	return KitItem{}, false
}
