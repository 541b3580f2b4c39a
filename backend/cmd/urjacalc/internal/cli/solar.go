package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"urjaportal/backend/libs/calc"
	"urjaportal/backend/libs/i18n"
)

func newSolarCmd() *cobra.Command {
	var capacity, roof, monthlyBill float64

	cmd := &cobra.Command{
		Use:   "solar",
		Short: "Estimate a rooftop solar system",
		Long:  "Desired capacity wins over roof area. A monthly bill alone does not size a system.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag := languageOf(cmd)
			flags := cmd.Flags()

			var in calc.SolarInput
			if flags.Changed("capacity") {
				in.DesiredCapacityKW = &capacity
			}
			if flags.Changed("roof") {
				in.RoofAreaSqM = &roof
			}
			if flags.Changed("monthly-bill") {
				in.MonthlyBillINR = &monthlyBill
			}

			res, ok := calc.EstimateSolar(in)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), label(tag, i18n.KeySolarNoResult))
				return nil
			}

			renderPairs(cmd.OutOrStdout(), tag, [][2]string{
				{label(tag, i18n.KeyLabelCapacity), number(tag, res.CapacityKW)},
				{label(tag, i18n.KeyLabelGeneration), number(tag, res.AnnualGenerationKWh)},
				{label(tag, i18n.KeyLabelMonthlySavings), inr(tag, res.MonthlySavingsINR)},
				{label(tag, i18n.KeyLabelSystemCost), inr(tag, res.SystemCostINR)},
				{label(tag, i18n.KeyLabelSubsidy), inr(tag, res.SubsidyINR)},
				{label(tag, i18n.KeyLabelNetCost), inr(tag, res.NetCostINR)},
				{label(tag, i18n.KeyLabelPayback), number(tag, res.PaybackYears)},
				{label(tag, i18n.KeyLabelLifetime), inr(tag, res.LifetimeSavingsINR)},
				{label(tag, i18n.KeyLabelCO2), number(tag, res.CO2SavedKg)},
			})
			return nil
		},
	}

	cmd.Flags().Float64Var(&capacity, "capacity", 0, "desired system capacity (kW)")
	cmd.Flags().Float64Var(&roof, "roof", 0, "usable roof area (m²)")
	cmd.Flags().Float64Var(&monthlyBill, "monthly-bill", 0, "current monthly bill (INR)")

	return cmd
}
