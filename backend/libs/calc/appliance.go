package calc

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

const (
	daysPerMonth = 30
	daysPerYear  = 365
	maxHours     = 24
)

// newID produces generation-ordered appliance ids. Tests may replace it.
var newID = func() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Appliance is one line of a household load list.
type Appliance struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	CatalogKey  string  `json:"catalog_key,omitempty"`
	Wattage     float64 `json:"wattage"`
	HoursPerDay float64 `json:"hours_per_day"`
	Quantity    int     `json:"quantity"`
}

// ApplianceSpec is the unvalidated form of an appliance as entered by a user.
// Nil pointers mean the field was left empty.
type ApplianceSpec struct {
	CatalogKey  string   `json:"catalog_key,omitempty"`
	Name        string   `json:"name,omitempty"`
	Wattage     *float64 `json:"wattage,omitempty"`
	HoursPerDay *float64 `json:"hours_per_day,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
}

// ConsumptionTotals is the energy use of an appliance list.
type ConsumptionTotals struct {
	DailyKWh   float64 `json:"daily_kwh"`
	MonthlyKWh float64 `json:"monthly_kwh"`
	YearlyKWh  float64 `json:"yearly_kwh"`
}

// NewAppliance validates spec and assigns a fresh id.
// A catalog key fixes both name and wattage.
func NewAppliance(spec ApplianceSpec) (Appliance, error) {
	a := Appliance{Name: strings.TrimSpace(spec.Name), Quantity: 1}

	if key := strings.TrimSpace(spec.CatalogKey); key != "" {
		entry, ok := LookupCatalog(key)
		if !ok {
			return Appliance{}, invalid("catalog_key", CodeUnknownCatalogItem, key)
		}
		a.CatalogKey = entry.Key
		a.Name = entry.Name
		a.Wattage = entry.Wattage
	} else {
		if a.Name == "" {
			return Appliance{}, invalid("name", CodeMissingName, nil)
		}
		if spec.Wattage == nil || !isNumber(*spec.Wattage) || *spec.Wattage <= 0 {
			return Appliance{}, invalid("wattage", CodeInvalidWattage, deref(spec.Wattage))
		}
		a.Wattage = *spec.Wattage
	}

	if spec.HoursPerDay == nil || !isNumber(*spec.HoursPerDay) || *spec.HoursPerDay < 0 || *spec.HoursPerDay > maxHours {
		return Appliance{}, invalid("hours_per_day", CodeInvalidHours, deref(spec.HoursPerDay))
	}
	a.HoursPerDay = *spec.HoursPerDay

	if spec.Quantity != nil && *spec.Quantity >= 1 {
		a.Quantity = *spec.Quantity
	}

	a.ID = newID()
	return a, nil
}

// DailyKWh is the appliance's contribution per day.
func (a Appliance) DailyKWh() float64 {
	return a.Wattage * a.HoursPerDay * float64(a.Quantity) / 1000
}

// AggregateAppliances sums daily use and scales it by fixed 30 and 365 day factors.
func AggregateAppliances(appliances []Appliance) ConsumptionTotals {
	var daily float64
	for _, a := range appliances {
		daily += a.DailyKWh()
	}
	return ConsumptionTotals{
		DailyKWh:   daily,
		MonthlyKWh: daily * daysPerMonth,
		YearlyKWh:  daily * daysPerYear,
	}
}

// ApplianceList is an insertion-ordered appliance list. Not safe for concurrent use.
type ApplianceList struct {
	items []Appliance
}

// NewApplianceList wraps existing appliances, keeping their order.
func NewApplianceList(items ...Appliance) *ApplianceList {
	l := &ApplianceList{items: make([]Appliance, 0, len(items))}
	l.items = append(l.items, items...)
	return l
}

// Add validates spec and appends the resulting appliance.
func (l *ApplianceList) Add(spec ApplianceSpec) (Appliance, error) {
	a, err := NewAppliance(spec)
	if err != nil {
		return Appliance{}, err
	}
	l.items = append(l.items, a)
	return a, nil
}

// Remove deletes the appliance with id; it reports whether one was removed.
func (l *ApplianceList) Remove(id string) bool {
	for i, a := range l.items {
		if a.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the list.
func (l *ApplianceList) Items() []Appliance {
	out := make([]Appliance, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of appliances.
func (l *ApplianceList) Len() int {
	return len(l.items)
}

// Totals aggregates the list.
func (l *ApplianceList) Totals() ConsumptionTotals {
	return AggregateAppliances(l.items)
}

// SortByID orders appliances by id, which restores generation order for ids
// produced by NewAppliance.
func SortByID(appliances []Appliance) {
	sort.Slice(appliances, func(i, j int) bool {
		return appliances[i].ID < appliances[j].ID
	})
}

func deref(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
