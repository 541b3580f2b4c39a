package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"urjaportal/backend/libs/calc"
	"urjaportal/backend/libs/i18n"
)

// NewRootCmd creates the urjacalc command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "urjacalc",
		Short:        "Electricity bill, appliance and rooftop solar calculators",
		SilenceUsage: true,
		Example: `  # Bill for 120 units on the residential tariff
  urjacalc bill --units 120

  # Bill from meter readings, in Marathi
  urjacalc bill --previous 1200 --current 1340 --category commercial --lang mr

  # Household load list
  urjacalc appliances --item ceiling_fan:10:3 --item refrigerator:24 --custom "Iron:1000:0.5"

  # Rooftop solar for 30 m² of roof
  urjacalc solar --roof 30`,
	}

	cmd.PersistentFlags().String("lang", "en", "output language (en or mr)")
	cmd.AddCommand(newBillCmd(), newAppliancesCmd(), newSolarCmd(), newTariffsCmd(), newCatalogCmd())

	return cmd
}

// languageOf reads the --lang flag; unsupported values fall back to English.
func languageOf(cmd *cobra.Command) language.Tag {
	raw, _ := cmd.Flags().GetString("lang")
	tag, _ := i18n.Parse(raw)
	return tag
}

// localize turns calc validation errors into translated messages.
func localize(tag language.Tag, err error) error {
	var verr *calc.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("%s: %s", verr.Field, i18n.Message(tag, verr.Code))
	}
	return err
}
