package cli

import (
	"fmt"

	"github.com/giftforge/giftforge/internal/cli/formatter"
	"github.com/giftforge/giftforge/internal/domain"
	"github.com/giftforge/giftforge/internal/simulation"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSimulateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Growth projections and currency conversion",
	}

	cmd.AddCommand(
		newSimulateGrowthCmd(),
		newSimulateFxCmd(),
	)

	return cmd
}

func newSimulateGrowthCmd() *cobra.Command {
	var amount, risk, currency string
	var years int

	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Project corpus growth year by year",
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			if years <= 0 {
				return fmt.Errorf("years must be positive, got %d", years)
			}

			profile := domain.RiskProfile(risk)
			points := simulation.Project(corpus, profile, years)

			rate := simulation.CAGRFor(profile).Mul(decimal.NewFromInt(100))
			fmt.Fprintf(cmd.OutOrStdout(), "Projection at %s%% CAGR (%s)\n\n",
				rate.StringFixed(0), risk)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n",
				formatter.FormatProjection(points, domain.Currency(currency)))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Initial corpus, e.g. 10000")
	cmd.Flags().StringVar(&risk, "risk", string(domain.RiskBalanced), "Risk profile (Conservative|Balanced|Growth)")
	cmd.Flags().StringVar(&currency, "currency", string(domain.CurrencyUSD), "Display currency (USD|INR)")
	cmd.Flags().IntVar(&years, "years", 10, "Projection horizon in years")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newSimulateFxCmd() *cobra.Command {
	var toUSD bool

	cmd := &cobra.Command{
		Use:   "fx AMOUNT",
		Short: "Convert between USD and INR at the fixed demo rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			if toUSD {
				usd := simulation.ConvertINRToUSD(amount)
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n",
					formatter.Money(amount, domain.CurrencyINR),
					formatter.Money(usd, domain.CurrencyUSD))
				return nil
			}

			inr := simulation.ConvertUSDToINR(amount)
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n",
				formatter.Money(amount, domain.CurrencyUSD),
				formatter.Money(inr, domain.CurrencyINR))
			return nil
		},
	}

	cmd.Flags().BoolVar(&toUSD, "to-usd", false, "Convert INR to USD instead")

	return cmd
}
