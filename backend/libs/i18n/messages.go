package i18n

type translation struct {
	en string
	mr string
}

// Keys shared by services. Validation keys match calc error codes.
const (
	KeyInvalidUnits        = "invalid_units"
	KeyInvalidReading      = "invalid_reading"
	KeyReadingOrder        = "reading_order"
	KeyUnknownCategory     = "unknown_category"
	KeyUnknownMethod       = "unknown_method"
	KeyInvalidWattage      = "invalid_wattage"
	KeyInvalidHours        = "invalid_hours"
	KeyMissingName         = "missing_name"
	KeyUnknownCatalogItem  = "unknown_catalog_item"
	KeyInvalidJSON         = "invalid_json"
	KeyUnauthorized        = "unauthorized"
	KeyServiceUnavailable  = "service_unavailable"
	KeyRateLimited         = "rate_limited"
	KeyInternal            = "internal_error"
	KeyBillNotFound        = "bill_not_found"
	KeyBillAlreadyPaid     = "bill_already_paid"
	KeyUnknownPayment      = "unknown_payment_method"
	KeySolarNoResult       = "solar_no_result"
	KeyMalformedFrame      = "malformed_frame"
	KeyUnknownFrameType    = "unknown_frame_type"
	KeyLabelUnits          = "label_units"
	KeyLabelEnergyCharges  = "label_energy_charges"
	KeyLabelFixedCharges   = "label_fixed_charges"
	KeyLabelDuty           = "label_electricity_duty"
	KeyLabelTaxes          = "label_taxes"
	KeyLabelTotal          = "label_total"
	KeyLabelRate           = "label_rate"
	KeyLabelDaily          = "label_daily"
	KeyLabelMonthly        = "label_monthly"
	KeyLabelYearly         = "label_yearly"
	KeyLabelCapacity       = "label_capacity"
	KeyLabelGeneration     = "label_generation"
	KeyLabelMonthlySavings = "label_monthly_savings"
	KeyLabelSystemCost     = "label_system_cost"
	KeyLabelSubsidy        = "label_subsidy"
	KeyLabelNetCost        = "label_net_cost"
	KeyLabelPayback        = "label_payback"
	KeyLabelLifetime       = "label_lifetime_savings"
	KeyLabelCO2            = "label_co2"
	KeyLabelCategory       = "label_category"
	KeyLabelAppliance      = "label_appliance"
	KeyLabelWattage        = "label_wattage"
	KeyLabelHours          = "label_hours"
	KeyLabelQuantity       = "label_quantity"
	KeyLabelKey            = "label_key"
	KeyLabelGroup          = "label_group"
	KeyLabelItem           = "label_item"
	KeyLabelValue          = "label_value"
)

var translations = map[string]translation{
	KeyInvalidUnits:        {"Units consumed must be a number greater than zero.", "वापरलेली युनिट्स शून्यापेक्षा जास्त संख्या असावी."},
	KeyInvalidReading:      {"Meter readings must be non-negative numbers.", "मीटर रीडिंग ऋण नसलेली संख्या असावी."},
	KeyReadingOrder:        {"Current reading must be greater than the previous reading.", "चालू रीडिंग मागील रीडिंगपेक्षा जास्त असावे."},
	KeyUnknownCategory:     {"Unknown tariff category.", "अज्ञात दर श्रेणी."},
	KeyUnknownMethod:       {"Unknown calculation method.", "अज्ञात गणना पद्धत."},
	KeyInvalidWattage:      {"Appliance wattage must be greater than zero.", "उपकरणाचे वॅटेज शून्यापेक्षा जास्त असावे."},
	KeyInvalidHours:        {"Hours per day must be between 0 and 24.", "दररोजचे तास ० ते २४ दरम्यान असावेत."},
	KeyMissingName:         {"Appliance name is required.", "उपकरणाचे नाव आवश्यक आहे."},
	KeyUnknownCatalogItem:  {"Unknown appliance.", "अज्ञात उपकरण."},
	KeyInvalidJSON:         {"Invalid request body.", "अवैध विनंती."},
	KeyUnauthorized:        {"Please log in again.", "कृपया पुन्हा लॉग इन करा."},
	KeyServiceUnavailable:  {"Service is temporarily unavailable.", "सेवा तात्पुरती उपलब्ध नाही."},
	KeyRateLimited:         {"Too many requests, please retry shortly.", "खूप विनंत्या, कृपया थोड्या वेळाने प्रयत्न करा."},
	KeyInternal:            {"Something went wrong.", "काहीतरी चुकले."},
	KeyBillNotFound:        {"Bill not found.", "बिल सापडले नाही."},
	KeyBillAlreadyPaid:     {"This bill is already paid.", "हे बिल आधीच भरले आहे."},
	KeyUnknownPayment:      {"Unsupported payment method.", "असमर्थित भरणा पद्धत."},
	KeySolarNoResult:       {"Enter a roof area or desired capacity.", "छताचे क्षेत्रफळ किंवा इच्छित क्षमता प्रविष्ट करा."},
	KeyMalformedFrame:      {"Message could not be read.", "संदेश वाचता आला नाही."},
	KeyUnknownFrameType:    {"Unknown calculator.", "अज्ञात गणक."},
	KeyLabelUnits:          {"Units (kWh)", "युनिट्स (kWh)"},
	KeyLabelEnergyCharges:  {"Energy charges", "ऊर्जा शुल्क"},
	KeyLabelFixedCharges:   {"Fixed charges", "स्थिर आकार"},
	KeyLabelDuty:           {"Electricity duty", "वीज शुल्क"},
	KeyLabelTaxes:          {"Taxes", "कर"},
	KeyLabelTotal:          {"Total amount", "एकूण रक्कम"},
	KeyLabelRate:           {"Rate per unit", "प्रति युनिट दर"},
	KeyLabelDaily:          {"Daily (kWh)", "दैनिक (kWh)"},
	KeyLabelMonthly:        {"Monthly (kWh)", "मासिक (kWh)"},
	KeyLabelYearly:         {"Yearly (kWh)", "वार्षिक (kWh)"},
	KeyLabelCapacity:       {"System capacity (kW)", "प्रणाली क्षमता (kW)"},
	KeyLabelGeneration:     {"Annual generation (kWh)", "वार्षिक निर्मिती (kWh)"},
	KeyLabelMonthlySavings: {"Monthly savings", "मासिक बचत"},
	KeyLabelSystemCost:     {"System cost", "प्रणाली खर्च"},
	KeyLabelSubsidy:        {"Subsidy", "अनुदान"},
	KeyLabelNetCost:        {"Net cost", "निव्वळ खर्च"},
	KeyLabelPayback:        {"Payback (years)", "परतफेड (वर्षे)"},
	KeyLabelLifetime:       {"25-year savings", "२५ वर्षांची बचत"},
	KeyLabelCO2:            {"CO2 avoided (kg/year)", "टाळलेला CO2 (kg/वर्ष)"},
	KeyLabelCategory:       {"Category", "श्रेणी"},
	KeyLabelAppliance:      {"Appliance", "उपकरण"},
	KeyLabelWattage:        {"Watts", "वॅट"},
	KeyLabelHours:          {"Hours/day", "तास/दिवस"},
	KeyLabelQuantity:       {"Qty", "संख्या"},
	KeyLabelKey:            {"Key", "कळ"},
	KeyLabelGroup:          {"Group", "गट"},
	KeyLabelItem:           {"Item", "तपशील"},
	KeyLabelValue:          {"Value", "मूल्य"},
}
