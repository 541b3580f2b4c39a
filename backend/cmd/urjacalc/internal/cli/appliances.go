package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"urjaportal/backend/libs/calc"
	"urjaportal/backend/libs/i18n"
)

// defaultItemHours applies to --item entries given without hours.
const defaultItemHours = 1.0

func newAppliancesCmd() *cobra.Command {
	var (
		items    []string
		custom   []string
		category string
	)

	cmd := &cobra.Command{
		Use:   "appliances",
		Short: "Sum household appliance consumption and price it",
		Long: `Each --item is key[:hours[:qty]] with a key from "urjacalc catalog".
Each --custom is name:watts:hours[:qty].`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag := languageOf(cmd)

			specs := make([]calc.ApplianceSpec, 0, len(items)+len(custom))
			for _, raw := range items {
				spec, err := parseItem(raw)
				if err != nil {
					return err
				}
				specs = append(specs, spec)
			}
			for _, raw := range custom {
				spec, err := parseCustom(raw)
				if err != nil {
					return err
				}
				specs = append(specs, spec)
			}
			if len(specs) == 0 {
				return fmt.Errorf("at least one --item or --custom is required")
			}

			list := calc.NewApplianceList()
			for _, spec := range specs {
				if _, err := list.Add(spec); err != nil {
					return localize(tag, err)
				}
			}
			cat, err := calc.ParseCategory(category)
			if err != nil {
				return localize(tag, err)
			}

			out := cmd.OutOrStdout()
			table := newTable(out,
				label(tag, i18n.KeyLabelAppliance),
				label(tag, i18n.KeyLabelWattage),
				label(tag, i18n.KeyLabelHours),
				label(tag, i18n.KeyLabelQuantity),
				label(tag, i18n.KeyLabelDaily),
			)
			for _, a := range list.Items() {
				table.Append([]string{
					applianceName(tag, a),
					number(tag, a.Wattage),
					number(tag, a.HoursPerDay),
					strconv.Itoa(a.Quantity),
					number(tag, a.DailyKWh()),
				})
			}
			table.Render()

			totals := list.Totals()
			renderPairs(out, tag, [][2]string{
				{label(tag, i18n.KeyLabelDaily), number(tag, totals.DailyKWh)},
				{label(tag, i18n.KeyLabelMonthly), number(tag, totals.MonthlyKWh)},
				{label(tag, i18n.KeyLabelYearly), number(tag, totals.YearlyKWh)},
			})

			if totals.MonthlyKWh <= 0 {
				return nil
			}
			bill, err := calc.ComputeBill(totals.MonthlyKWh, cat)
			if err != nil {
				return localize(tag, err)
			}
			renderBill(cmd, tag, cat, bill)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&items, "item", nil, "catalog appliance as key[:hours[:qty]]")
	cmd.Flags().StringArrayVar(&custom, "custom", nil, "custom appliance as name:watts:hours[:qty]")
	cmd.Flags().StringVar(&category, "category", string(calc.Residential), "tariff category for the monthly bill")

	return cmd
}

func applianceName(tag language.Tag, a calc.Appliance) string {
	if a.CatalogKey == "" || tag != i18n.Marathi {
		return a.Name
	}
	if entry, ok := calc.LookupCatalog(a.CatalogKey); ok {
		return entry.NameMarathi
	}
	return a.Name
}

func parseItem(raw string) (calc.ApplianceSpec, error) {
	parts := strings.Split(raw, ":")
	if len(parts) > 3 || strings.TrimSpace(parts[0]) == "" {
		return calc.ApplianceSpec{}, fmt.Errorf("--item %q: want key[:hours[:qty]]", raw)
	}
	spec := calc.ApplianceSpec{CatalogKey: strings.TrimSpace(parts[0])}

	hours := defaultItemHours
	if len(parts) > 1 {
		v, err := parseFloat(parts[1])
		if err != nil {
			return calc.ApplianceSpec{}, fmt.Errorf("--item %q: hours: %w", raw, err)
		}
		hours = v
	}
	spec.HoursPerDay = &hours

	if len(parts) > 2 {
		qty, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return calc.ApplianceSpec{}, fmt.Errorf("--item %q: quantity: %w", raw, err)
		}
		spec.Quantity = &qty
	}
	return spec, nil
}

func parseCustom(raw string) (calc.ApplianceSpec, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return calc.ApplianceSpec{}, fmt.Errorf("--custom %q: want name:watts:hours[:qty]", raw)
	}
	watts, err := parseFloat(parts[1])
	if err != nil {
		return calc.ApplianceSpec{}, fmt.Errorf("--custom %q: watts: %w", raw, err)
	}
	hours, err := parseFloat(parts[2])
	if err != nil {
		return calc.ApplianceSpec{}, fmt.Errorf("--custom %q: hours: %w", raw, err)
	}
	spec := calc.ApplianceSpec{Name: parts[0], Wattage: &watts, HoursPerDay: &hours}

	if len(parts) == 4 {
		qty, err := strconv.Atoi(strings.TrimSpace(parts[3]))
		if err != nil {
			return calc.ApplianceSpec{}, fmt.Errorf("--custom %q: quantity: %w", raw, err)
		}
		spec.Quantity = &qty
	}
	return spec, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
