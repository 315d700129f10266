package models

type SugarOption string

const (
	WithSugar     SugarOption = "With Sugar"
	WithJaggery   SugarOption = "With Jaggery"
	WithPalmSugar SugarOption = "With Palm Sugar"
	WithoutSugar  SugarOption = "Without Sugar"
)

var SugarOptions = []SugarOption{WithSugar, WithJaggery, WithPalmSugar, WithoutSugar}

func (o SugarOption) Valid() bool {
	for _, opt := range SugarOptions {
		if o == opt {
			return true
		}
	}
	return false
}

type SpiceLevel string

const (
	LowSpicy    SpiceLevel = "Low Spicy"
	MediumSpicy SpiceLevel = "Medium Spicy"
	ExtraSpicy  SpiceLevel = "Extra Spicy"
)

var SpiceLevels = []SpiceLevel{LowSpicy, MediumSpicy, ExtraSpicy}

func (l SpiceLevel) Valid() bool {
	for _, lvl := range SpiceLevels {
		if l == lvl {
			return true
		}
	}
	return false
}

// CustomizationKind tags which choice a product category offers.
type CustomizationKind string

const (
	CustomizationNone  CustomizationKind = "none"
	CustomizationSugar CustomizationKind = "sugar"
	CustomizationSpice CustomizationKind = "spice"
)

// Customization is a tagged variant: sugar and spice are mutually exclusive,
// selected by the product's category, never both.
type Customization struct {
	Kind  CustomizationKind `json:"kind"`
	Sugar SugarOption       `json:"sugar_option,omitempty"`
	Spice SpiceLevel        `json:"spice_level,omitempty"`
}

func SugarCustomization(opt SugarOption) Customization {
	return Customization{Kind: CustomizationSugar, Sugar: opt}
}

func SpiceCustomization(lvl SpiceLevel) Customization {
	return Customization{Kind: CustomizationSpice, Spice: lvl}
}

func NoCustomization() Customization {
	return Customization{Kind: CustomizationNone}
}

// Value returns the string used in cart item identity keys.
func (c Customization) Value() string {
	switch c.Kind {
	case CustomizationSugar:
		return string(c.Sugar)
	case CustomizationSpice:
		return string(c.Spice)
	default:
		return "default"
	}
}

func (c Customization) Validate() bool {
	switch c.Kind {
	case CustomizationSugar:
		return c.Sugar.Valid() && c.Spice == ""
	case CustomizationSpice:
		return c.Spice.Valid() && c.Sugar == ""
	case CustomizationNone:
		return c.Sugar == "" && c.Spice == ""
	default:
		return false
	}
}

type MenuItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"` // rupees per kg
	Category string  `json:"category"`
	Image    string  `json:"image,omitempty"`
}

type MenuCategory struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Items       []MenuItem `json:"items"`
}

// spiceCategories lists the categories whose products take a spice level;
// everything else takes a sugar option.
var spiceCategories = map[string]bool{
	"masala-powders":   true,
	"homemade-pickles": true,
}

// CustomizationKindFor returns the customization a category's products offer.
func CustomizationKindFor(category string) CustomizationKind {
	if spiceCategories[category] {
		return CustomizationSpice
	}
	return CustomizationSugar
}

var MenuCategories = []MenuCategory{
	{
		ID:          "masala-powders",
		Name:        "Masala Powders",
		Description: "Authentic spice blends ground fresh",
		Items: []MenuItem{
			{ID: "rasam-powder", Name: "Rasam Powder", Price: 650, Category: "masala-powders", Image: "/images/products/rasam-powder.jpg"},
			{ID: "sambar-powder", Name: "Sambar Powder", Price: 600, Category: "masala-powders", Image: "/images/products/sambar-powder.png"},
			{ID: "vangibath-powder", Name: "Vangibath Powder", Price: 600, Category: "masala-powders", Image: "/images/products/vangibath-powder.png"},
			{ID: "bisibelebath-powder", Name: "Bisibelebath Powder", Price: 600, Category: "masala-powders", Image: "/images/products/bisibelebath-powder.png"},
			{ID: "methi-powder", Name: "Methi Powder", Price: 560, Category: "masala-powders", Image: "/images/products/methi-powder.png"},
			{ID: "chutney-powder", Name: "Chutney Powder", Price: 600, Category: "masala-powders", Image: "/images/products/chutney-powder.png"},
			{ID: "puliogare-powder", Name: "Puliogare Gojju - Powder", Price: 600, Category: "masala-powders", Image: "/images/products/puliogare-gojju-powder.png"},
			{ID: "coriander-chutney-powder", Name: "Coriander Seeds Chutney Powder", Price: 550, Category: "masala-powders", Image: "/images/products/coriander-seeds-chutney-powder.png"},
		},
	},
	{
		ID:          "homemade-pickles",
		Name:        "Homemade Pickles",
		Description: "Traditional recipes, authentic taste",
		Items: []MenuItem{
			{ID: "mango-pickle", Name: "Mango Pickle", Price: 500, Category: "homemade-pickles", Image: "/images/products/mango-pickle.png"},
			{ID: "lemon-pickle", Name: "Lemon Pickle", Price: 500, Category: "homemade-pickles", Image: "/images/products/lemon-pickle.png"},
			{ID: "mixed-vegetable-pickle", Name: "Mixed Vegetable Pickle", Price: 500, Category: "homemade-pickles", Image: "/images/products/mixed-vegetable-pickle.png"},
		},
	},
	{
		ID:          "baby-nutrition",
		Name:        "Baby Nutrition Foods",
		Description: "Healthy start for little ones",
		Items: []MenuItem{
			{ID: "ragi-seri-dals", Name: "Ragi Seri - with dals and pulses", Price: 700, Category: "baby-nutrition", Image: "/images/products/ragi-seri-with-dals-and-pulses.png"},
			{ID: "ragi-seri-dryfruits", Name: "Ragi Seri - with dry fruits", Price: 1300, Category: "baby-nutrition", Image: "/images/products/ragi-seri-with-dry-fruits.png"},
		},
	},
	{
		ID:          "adult-powders",
		Name:        "Adult Powders",
		Description: "Nutritious health supplements",
		Items: []MenuItem{
			{ID: "millet-multigrain", Name: "Millet / Multigrain Powder", Price: 700, Category: "adult-powders", Image: "/images/products/millet-multigrain-powder.png"},
			{ID: "ragi-malt", Name: "Ragi Malt", Price: 700, Category: "adult-powders", Image: "/images/products/ragi-malt.png"},
		},
	},
	{
		ID:          "special-care",
		Name:        "Special Care Products",
		Description: "Premium nutrition for special needs",
		Items: []MenuItem{
			{ID: "dryfruit-laddoo", Name: "Dry Fruit Laddoo", Price: 1900, Category: "special-care", Image: "/images/products/dry-fruit-laddoo.png"},
		},
	},
}

func AllMenuItems() []MenuItem {
	var items []MenuItem
	for _, cat := range MenuCategories {
		items = append(items, cat.Items...)
	}
	return items
}

// FindMenuItem looks up a catalog entry by id.
func FindMenuItem(id string) (MenuItem, bool) {
	for _, cat := range MenuCategories {
		for _, item := range cat.Items {
			if item.ID == id {
				return item, true
			}
		}
	}
	return MenuItem{}, false
}
