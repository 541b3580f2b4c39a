package cli

import (
	"github.com/spf13/cobra"

	"urjaportal/backend/libs/calc"
	"urjaportal/backend/libs/i18n"
)

func newTariffsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tariffs",
		Short: "List tariff categories and rates",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			tag := languageOf(cmd)
			table := newTable(cmd.OutOrStdout(),
				label(tag, i18n.KeyLabelCategory),
				label(tag, i18n.KeyLabelRate),
				label(tag, i18n.KeyLabelFixedCharges),
			)
			for _, t := range calc.Tariffs() {
				table.Append([]string{string(t.Category), inr(tag, t.RatePerUnit), inr(tag, t.FixedCharge)})
			}
			table.Render()
		},
	}
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List predefined appliances",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			tag := languageOf(cmd)
			table := newTable(cmd.OutOrStdout(),
				label(tag, i18n.KeyLabelKey),
				label(tag, i18n.KeyLabelGroup),
				label(tag, i18n.KeyLabelAppliance),
				label(tag, i18n.KeyLabelWattage),
			)
			for _, e := range calc.Catalog() {
				name := e.Name
				if tag == i18n.Marathi {
					name = e.NameMarathi
				}
				table.Append([]string{e.Key, e.Group, name, number(tag, e.Wattage)})
			}
			table.Render()
		},
	}
}
