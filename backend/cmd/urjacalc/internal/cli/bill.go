package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"urjaportal/backend/libs/calc"
	"urjaportal/backend/libs/i18n"
)

var errBillInput = errors.New("use either --units or --previous with --current")

func newBillCmd() *cobra.Command {
	var (
		units    float64
		previous float64
		current  float64
		category string
	)

	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Itemize a monthly electricity bill",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag := languageOf(cmd)
			flags := cmd.Flags()

			var input calc.BillInput
			switch byUnits, byReadings := flags.Changed("units"), flags.Changed("previous") || flags.Changed("current"); {
			case byUnits && !byReadings:
				input = calc.BillInput{Method: calc.MethodUnits, DirectUnits: units}
			case byReadings && !byUnits:
				input = calc.BillInput{Method: calc.MethodReadings, PreviousReading: previous, CurrentReading: current}
			default:
				return errBillInput
			}

			cat, err := calc.ParseCategory(category)
			if err != nil {
				return localize(tag, err)
			}
			bill, err := calc.ComputeBillFromInput(input, cat)
			if err != nil {
				return localize(tag, err)
			}

			renderBill(cmd, tag, cat, bill)
			return nil
		},
	}

	cmd.Flags().Float64Var(&units, "units", 0, "units consumed (kWh)")
	cmd.Flags().Float64Var(&previous, "previous", 0, "previous meter reading")
	cmd.Flags().Float64Var(&current, "current", 0, "current meter reading")
	cmd.Flags().StringVar(&category, "category", string(calc.Residential), "tariff category")

	return cmd
}

func renderBill(cmd *cobra.Command, tag language.Tag, cat calc.Category, bill calc.BillResult) {
	renderPairs(cmd.OutOrStdout(), tag, [][2]string{
		{label(tag, i18n.KeyLabelCategory), string(cat)},
		{label(tag, i18n.KeyLabelUnits), number(tag, bill.TotalUnits)},
		{label(tag, i18n.KeyLabelRate), inr(tag, bill.TariffRate)},
		{label(tag, i18n.KeyLabelEnergyCharges), inr(tag, bill.EnergyCharges)},
		{label(tag, i18n.KeyLabelFixedCharges), inr(tag, bill.FixedCharges)},
		{label(tag, i18n.KeyLabelDuty), inr(tag, bill.ElectricityDuty)},
		{label(tag, i18n.KeyLabelTaxes), inr(tag, bill.Taxes)},
		{label(tag, i18n.KeyLabelTotal), inr(tag, bill.TotalAmount)},
	})
}
