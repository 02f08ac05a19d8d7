package model

// Product is the domain model for a shopping-list entry. Shop and Category
// hold the display names resolved when the product was added, not the
// reference ids.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Shop     string `json:"shop"`
	Category string `json:"category"`
	Bought   bool   `json:"isBought"`
}

