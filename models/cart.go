package models

// CartLine pairs a service with a quantity pending checkout.
// The cart holds at most one line per service ID, quantity always >= 1.
type CartLine struct {
	ServiceID string `json:"serviceId"`
	Quantity  int    `json:"quantity"`
}

// CartItem is a cart line resolved against the catalog: full service
// details plus the quantity in the cart.
type CartItem struct {
	Service
	Quantity int `json:"quantity"`
}

// SelectedSlot is the slot the user has picked for checkout. Time may be
// empty while only a date has been chosen.
type SelectedSlot struct {
	Date string `json:"date"`
	Time string `json:"time,omitempty"`
}

// Complete reports whether both a date and a time have been chosen.
func (s SelectedSlot) Complete() bool {
	return s.Date != "" && s.Time != ""
}
