package domain

import "github.com/shopspring/decimal"

type ServiceCategory struct {
	ID           string          `json:"id"`
	NameEn       string          `json:"name_en"`
	NameHi       string          `json:"name_hi"`
	Icon         string          `json:"icon"`
	DefaultPrice decimal.Decimal `json:"default_price"`
}

func (c *ServiceCategory) Name(lang Language) string {
	if lang == LanguageHindi && c.NameHi != "" {
		return c.NameHi
	}
	return c.NameEn
}

// DefaultCategories seeds stores that start empty. The SQL migration inserts the same rows.
func DefaultCategories() []*ServiceCategory {
	return []*ServiceCategory{
		{ID: "plumber", NameEn: "Plumber", NameHi: "प्लंबर", Icon: "wrench", DefaultPrice: decimal.NewFromInt(300)},
		{ID: "electrician", NameEn: "Electrician", NameHi: "इलेक्ट्रीशियन", Icon: "zap", DefaultPrice: decimal.NewFromInt(300)},
		{ID: "carpenter", NameEn: "Carpenter", NameHi: "बढ़ई", Icon: "hammer", DefaultPrice: decimal.NewFromInt(400)},
		{ID: "painter", NameEn: "Painter", NameHi: "पेंटर", Icon: "paintbrush", DefaultPrice: decimal.NewFromInt(500)},
		{ID: "tiles-installer", NameEn: "Tiles Installer", NameHi: "टाइल्स मिस्त्री", Icon: "grid", DefaultPrice: decimal.NewFromInt(600)},
		{ID: "appliance-repair", NameEn: "Appliance Repair", NameHi: "उपकरण मरम्मत", Icon: "settings", DefaultPrice: decimal.NewFromInt(350)},
		{ID: "construction-labor", NameEn: "Construction Labor", NameHi: "निर्माण मजदूर", Icon: "hard-hat", DefaultPrice: decimal.NewFromInt(700)},
		{ID: "tent-house", NameEn: "Tent House", NameHi: "टेंट हाउस", Icon: "tent", DefaultPrice: decimal.NewFromInt(2000)},
		{ID: "cleaning", NameEn: "Cleaning", NameHi: "सफाई", Icon: "sparkles", DefaultPrice: decimal.NewFromInt(400)},
		{ID: "ac-service", NameEn: "AC Service", NameHi: "एसी सर्विस", Icon: "wind", DefaultPrice: decimal.NewFromInt(500)},
	}
}
