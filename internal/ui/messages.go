package ui

// Messages holds every user-facing text that differs by language.
type Messages struct {
	Title            string
	NamePlaceholder  string
	SelectShop       string
	SelectCategory   string
	AddButton        string
	FillAllFields    string
	ShoppingComplete string
	UnknownShop      string
	UnknownCategory  string
	NoProducts       string
	Dismiss          string

	ColID, ColName, ColShop, ColCategory, ColActions string
	MarkBought, MarkNotBought                        string
}

var messages = map[string]Messages{
	"en": {
		Title:            "Shopping List",
		NamePlaceholder:  "Enter product name",
		SelectShop:       "Select Shop",
		SelectCategory:   "Select Category",
		AddButton:        "Add Product",
		FillAllFields:    "Please fill all required fields.",
		ShoppingComplete: "All products purchased, shopping complete.",
		UnknownShop:      "Unknown shop.",
		UnknownCategory:  "Unknown category.",
		NoProducts:       "no products yet",
		Dismiss:          "press enter to close",
		ColID:            "ID",
		ColName:          "Name",
		ColShop:          "Shop",
		ColCategory:      "Category",
		ColActions:       "Actions",
		MarkBought:       "Mark as Bought",
		MarkNotBought:    "Mark as Not Bought",
	},
	"tr": {
		Title:            "Alışveriş Listesi",
		NamePlaceholder:  "Ürün adı girin",
		SelectShop:       "Mağaza Seçin",
		SelectCategory:   "Kategori Seçin",
		AddButton:        "Ürün Ekle",
		FillAllFields:    "Lütfen tüm alanları doldurun.",
		ShoppingComplete: "Tüm ürünler alındı, Alışveriş Tamamlandı",
		UnknownShop:      "Bilinmeyen mağaza.",
		UnknownCategory:  "Bilinmeyen kategori.",
		NoProducts:       "henüz ürün yok",
		Dismiss:          "kapatmak için enter",
		ColID:            "ID",
		ColName:          "Ad",
		ColShop:          "Mağaza",
		ColCategory:      "Kategori",
		ColActions:       "İşlemler",
		MarkBought:       "Alındı Olarak İşaretle",
		MarkNotBought:    "Alınmadı Olarak İşaretle",
	},
}

// MessagesFor returns the texts for a language, falling back to English.
func MessagesFor(lang string) Messages {
	if m, ok := messages[lang]; ok {
		return m
	}
	return messages["en"]
}

// ToggleLabel picks the row action text for a bought state.
func (m Messages) ToggleLabel(bought bool) string {
	if bought {
		return m.MarkNotBought
	}
	return m.MarkBought
}
