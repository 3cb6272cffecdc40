package domain

// PersonalInfo holds the customer's contact details.
// Email is optional for the messaging-link delivery path.
type PersonalInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// BookingDraft is the single in-progress booking assembled across wizard steps.
// Selection membership is keyed by id; insertion order only affects display.
type BookingDraft struct {
	Religion         *Religion
	SelectedKitItems []KitItem
	SelectedServices []Service
	PersonalInfo     PersonalInfo
	CurrentStep      Step
}

// NewBookingDraft creates an empty draft at the religion step
func NewBookingDraft() *BookingDraft {
	return &BookingDraft{CurrentStep: StepReligion}
}

// HasKitItem returns true if the item with the given id is selected
func (d *BookingDraft) HasKitItem(id string) bool {
	for _, item := range d.SelectedKitItems {
		if item.ID == id {
			return true
		}
	}
	return false
}

// HasService returns true if the service with the given id is selected
func (d *BookingDraft) HasService(id string) bool {
	for _, svc := range d.SelectedServices {
		if svc.ID == id {
			return true
		}
	}
	return false
}

// RemoveKitItem removes the item with the given id from the selection
func (d *BookingDraft) RemoveKitItem(id string) {
	for i, item := range d.SelectedKitItems {
		if item.ID == id {
			d.SelectedKitItems = append(d.SelectedKitItems[:i], d.SelectedKitItems[i+1:]...)
			return
		}
	}
}

// RemoveService removes the service with the given id from the selection
func (d *BookingDraft) RemoveService(id string) {
	for i, svc := range d.SelectedServices {
		if svc.ID == id {
			d.SelectedServices = append(d.SelectedServices[:i], d.SelectedServices[i+1:]...)
			return
		}
	}
}
