package calc

// Catalog groups.
const (
	GroupLighting      = "lighting"
	GroupCooling       = "cooling"
	GroupRefrigeration = "refrigeration"
	GroupPumps         = "pumps"
	GroupElectronics   = "electronics"
)

// CatalogEntry is a predefined appliance with a fixed rated wattage.
type CatalogEntry struct {
	Key         string  `json:"key"`
	Group       string  `json:"group"`
	Name        string  `json:"name"`
	NameMarathi string  `json:"name_mr"`
	Wattage     float64 `json:"wattage"`
}

var catalog = [...]CatalogEntry{
	{Key: "led_bulb", Group: GroupLighting, Name: "LED Bulb", NameMarathi: "एलईडी बल्ब", Wattage: 9},
	{Key: "cfl_bulb", Group: GroupLighting, Name: "CFL Bulb", NameMarathi: "सीएफएल बल्ब", Wattage: 15},
	{Key: "tube_light", Group: GroupLighting, Name: "Tube Light", NameMarathi: "ट्यूबलाइट", Wattage: 40},
	{Key: "ceiling_fan", Group: GroupCooling, Name: "Ceiling Fan", NameMarathi: "छताचा पंखा", Wattage: 75},
	{Key: "table_fan", Group: GroupCooling, Name: "Table Fan", NameMarathi: "टेबल पंखा", Wattage: 50},
	{Key: "air_cooler", Group: GroupCooling, Name: "Air Cooler", NameMarathi: "एअर कूलर", Wattage: 200},
	{Key: "ac_1_ton", Group: GroupCooling, Name: "Air Conditioner (1 Ton)", NameMarathi: "वातानुकूलक (१ टन)", Wattage: 1000},
	{Key: "ac_1_5_ton", Group: GroupCooling, Name: "Air Conditioner (1.5 Ton)", NameMarathi: "वातानुकूलक (१.५ टन)", Wattage: 1500},
	{Key: "refrigerator", Group: GroupRefrigeration, Name: "Refrigerator", NameMarathi: "फ्रिज", Wattage: 150},
	{Key: "deep_freezer", Group: GroupRefrigeration, Name: "Deep Freezer", NameMarathi: "डीप फ्रीझर", Wattage: 300},
	{Key: "water_pump_0_5hp", Group: GroupPumps, Name: "Water Pump (0.5 HP)", NameMarathi: "पाण्याचा पंप (०.५ एचपी)", Wattage: 375},
	{Key: "water_pump_1hp", Group: GroupPumps, Name: "Water Pump (1 HP)", NameMarathi: "पाण्याचा पंप (१ एचपी)", Wattage: 746},
	{Key: "television", Group: GroupElectronics, Name: "Television", NameMarathi: "दूरदर्शन संच", Wattage: 100},
	{Key: "desktop_computer", Group: GroupElectronics, Name: "Desktop Computer", NameMarathi: "डेस्कटॉप संगणक", Wattage: 150},
	{Key: "laptop", Group: GroupElectronics, Name: "Laptop", NameMarathi: "लॅपटॉप", Wattage: 65},
	{Key: "wifi_router", Group: GroupElectronics, Name: "Wi-Fi Router", NameMarathi: "वाय-फाय राउटर", Wattage: 10},
}

// Catalog returns the predefined appliances.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalog))
	copy(out, catalog[:])
	return out
}

// LookupCatalog finds a predefined appliance by key.
func LookupCatalog(key string) (CatalogEntry, bool) {
	for _, e := range catalog {
		if e.Key == key {
			return e, true
		}
	}
	return CatalogEntry{}, false
}
