package main

import (
	"fmt"

	"github.com/Veraticus/health-agent/internal/cli"
	"github.com/Veraticus/health-agent/internal/common"
	"github.com/Veraticus/health-agent/internal/health"
	"github.com/spf13/cobra"
)

func sleepCmd() *cobra.Command {
	var hours float64
	var quality int

	cmd := &cobra.Command{
		Use:   "sleep",
		Short: "Analyze one night of sleep",
		Example: `  # Six hours at quality 4 out of 10
  healthagent sleep --hours 6 --quality 4`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFinite("hours", hours); err != nil {
				return err
			}
			if err := cli.NewIntBounds(cli.WithRange(1, 10)).Check(quality); err != nil {
				return common.NewUserError(fmt.Sprintf("Invalid --quality: %v", err), err)
			}

			adv, cfg, err := createAdvisor()
			if err != nil {
				return err
			}

			var result health.AdviceResult
			withSpinner(cfg, cmd.ErrOrStderr(), func() {
				result = adv.Sleep(cmd.Context(), health.SleepInput{Hours: hours, Quality: quality})
			})
			return cli.WriteAdvice(cmd.OutOrStdout(), "sleep analysis", result)
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 0, "hours slept")
	cmd.Flags().IntVar(&quality, "quality", 0, "sleep quality from 1 to 10")
	_ = cmd.MarkFlagRequired("hours")
	_ = cmd.MarkFlagRequired("quality")

	return cmd
}

func bmiCmd() *cobra.Command {
	var weight, height float64

	cmd := &cobra.Command{
		Use:     "bmi",
		Short:   "Calculate BMI and get advice",
		Example: `  healthagent bmi --weight 70 --height 175`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := health.ComputeBMI(weight, height); err != nil {
				return common.NewUserError("Weight and height must be positive numbers", err)
			}

			adv, cfg, err := createAdvisor()
			if err != nil {
				return err
			}

			var result health.AdviceResult
			withSpinner(cfg, cmd.ErrOrStderr(), func() {
				_, result, err = adv.BMI(cmd.Context(), health.BMIInput{WeightKg: weight, HeightCm: height})
			})
			if err != nil {
				return err
			}
			return cli.WriteAdvice(cmd.OutOrStdout(), "BMI analysis", result)
		},
	}

	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in kilograms")
	cmd.Flags().Float64Var(&height, "height", 0, "height in centimeters")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

func nutritionCmd() *cobra.Command {
	var calories float64
	var diet, goal string

	cmd := &cobra.Command{
		Use:     "nutrition",
		Short:   "Plan a day of meals",
		Example: `  healthagent nutrition --calories 2000 --diet vegetarian --goal "lose weight"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFinite("calories", calories); err != nil {
				return err
			}

			adv, cfg, err := createAdvisor()
			if err != nil {
				return err
			}

			var result health.AdviceResult
			withSpinner(cfg, cmd.ErrOrStderr(), func() {
				result = adv.Nutrition(cmd.Context(), health.NutritionInput{Calories: calories, Diet: diet, Goal: goal})
			})
			return cli.WriteAdvice(cmd.OutOrStdout(), "nutrition planning", result)
		},
	}

	cmd.Flags().Float64Var(&calories, "calories", 0, "daily calorie intake")
	cmd.Flags().StringVar(&diet, "diet", "", "dietary preference (e.g., vegetarian, vegan, keto)")
	cmd.Flags().StringVar(&goal, "goal", "", "health goal (e.g., lose weight, gain muscle)")
	_ = cmd.MarkFlagRequired("calories")

	return cmd
}

func checkFinite(flag string, value float64) error {
	if err := cli.CheckFinite(value); err != nil {
		return common.NewUserError(fmt.Sprintf("Invalid --%s: %v", flag, err), err)
	}
	return nil
}
