package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/jtor014/aussie-fire-engine/internal/calculation"
	"github.com/jtor014/aussie-fire-engine/internal/config"
	"github.com/jtor014/aussie-fire-engine/internal/domain"
	"github.com/jtor014/aussie-fire-engine/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var decimalHundred = decimal.NewFromInt(100)

// simpleCLILogger implements calculation.Logger using the standard log
// package, the same shape as the teacher's cmd/rpgo/main.go logger.
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "dwz %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.String())
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "dwz",
	Short: "Die-With-Zero superannuation retirement planning engine",
	Long:  "Computes sustainable spend, earliest viable retirement age, and concessional super contribution splits for an Australian household.",
}

// cliDefaults resolves the rate-table path and output format via
// config.LoadCLIConfig: an explicitly set --rate-table / --format flag wins,
// then the AFE_RATE_TABLE_PATH / AFE_OUTPUT_FORMAT environment variables,
// then built-in defaults.
func cliDefaults(cmd *cobra.Command) *config.CLIConfig {
	rateTableFlag, _ := cmd.Flags().GetString("rate-table")
	formatFlag, _ := cmd.Flags().GetString("format")
	if !cmd.Flags().Changed("format") {
		// the flag's own default must not mask AFE_OUTPUT_FORMAT
		formatFlag = ""
	}
	cfg, err := config.LoadCLIConfig(rateTableFlag, formatFlag)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func newEngine(cmd *cobra.Command) *calculation.CalculationEngine {
	ce := calculation.NewCalculationEngine()
	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode {
		ce.SetLogger(simpleCLILogger{})
	}
	return ce
}

func loadJSONRequest(inputFile string, dest any) {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		log.Fatal(err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Fatal(err)
	}
	if err := calculation.ValidateRequest(dest); err != nil {
		log.Fatal(err)
	}
}

func writeResult(cmd *cobra.Command, format string, result any, writeConsole func()) {
	if format == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(data))
		return
	}
	writeConsole()
}

var computeDecisionCmd = &cobra.Command{
	Use:   "compute-decision [request-file]",
	Short: "Compute sustainable spend, earliest age and bridge coverage for a household",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var req domain.ComputeDecisionRequest
		loadJSONRequest(args[0], &req)

		ce := newEngine(cmd)
		result, err := ce.ComputeDecision(req)
		if err != nil {
			log.Fatal(err)
		}

		format := cliDefaults(cmd).OutputFormat
		writeResult(cmd, format, result, func() { output.WriteDecision(os.Stdout, result) })
	},
}

var optimizeSavingsSplitCmd = &cobra.Command{
	Use:   "optimize-savings-split [request-file]",
	Short: "Find the savings split that minimizes the earliest sustainable retirement age",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var req domain.OptimizeSavingsSplitRequest
		loadJSONRequest(args[0], &req)
		if err := calculation.ValidateHousehold(&req.Household); err != nil {
			log.Fatal(err)
		}

		ce := newEngine(cmd)
		result := ce.OptimizeSavingsSplit(&req.Household, req.Policy, req.Opts)

		format := cliDefaults(cmd).OutputFormat
		writeResult(cmd, format, result, func() { output.WriteSplitResult(os.Stdout, result) })
	},
}

var earliestAgeForPlanCmd = &cobra.Command{
	Use:   "earliest-age-for-plan [request-file]",
	Short: "Find the earliest age at which a fixed annual spend plan is achievable",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var req domain.EarliestAgeForPlanRequest
		loadJSONRequest(args[0], &req)
		if err := calculation.ValidateHousehold(&req.Household); err != nil {
			log.Fatal(err)
		}

		ce := newEngine(cmd)
		result := ce.FindEarliestAgeForPlan(&req.Household, req.Plan, nil)

		format := cliDefaults(cmd).OutputFormat
		writeResult(cmd, format, result, func() { output.WritePlanResult(os.Stdout, result) })
	},
}

var optimizeSplitForPlanCmd = &cobra.Command{
	Use:   "optimize-split-for-plan [request-file]",
	Short: "Find the savings split that earliest achieves a fixed annual spend plan",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var req domain.OptimizeSplitForPlanRequest
		loadJSONRequest(args[0], &req)
		if err := calculation.ValidateHousehold(&req.Household); err != nil {
			log.Fatal(err)
		}

		ce := newEngine(cmd)
		result := ce.OptimizeSavingsSplitForPlan(&req.Household, req.Plan, req.Policy, req.Opts)

		format := cliDefaults(cmd).OutputFormat
		writeResult(cmd, format, result, func() { output.WriteSplitResult(os.Stdout, result) })
	},
}

var allocateConcessionalCmd = &cobra.Command{
	Use:   "allocate-concessional-by-mtr [request-file]",
	Short: "Allocate a concessional contribution pool across people by marginal tax rate",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var req domain.AllocateConcessionalByMTRRequest
		loadJSONRequest(args[0], &req)

		ce := newEngine(cmd)
		result := ce.AllocateConcessionalByMTR(req.TotalGross, req.People)

		format := cliDefaults(cmd).OutputFormat
		writeResult(cmd, format, result, func() { output.WriteAllocation(os.Stdout, result) })
	},
}

var rateTableCmd = &cobra.Command{
	Use:   "rate-table [path]",
	Short: "Load and print a jurisdiction rate table",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		cfg := cliDefaults(cmd)
		if path == "" {
			path = cfg.RateTablePath
		}

		loader := config.NewRateTableLoader()
		rt, err := loader.LoadFromFile(path)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Financial year: %s\n", rt.FinancialYear)
		fmt.Printf("Concessional cap: $%s\n", rt.ConcessionalCap.StringFixed(2))
		fmt.Printf("Super guarantee rate: %s%%\n", rt.SuperGuaranteeRate.Mul(decimalHundred).StringFixed(2))
		for _, b := range rt.TaxBrackets {
			upto := "no limit"
			if b.UpTo != nil {
				upto = fmt.Sprintf("$%s", b.UpTo.StringFixed(2))
			}
			fmt.Printf("  up to %s: %s%%\n", upto, b.Rate.Mul(decimalHundred).StringFixed(1))
		}
	},
}

func init() {
	for _, c := range []*cobra.Command{
		computeDecisionCmd, optimizeSavingsSplitCmd, earliestAgeForPlanCmd,
		optimizeSplitForPlanCmd, allocateConcessionalCmd,
	} {
		c.Flags().StringP("format", "f", "console", "Output format (console, json)")
		c.Flags().String("rate-table", "", "Rate table path (overrides AFE_RATE_TABLE_PATH)")
		c.Flags().Bool("debug", false, "Enable debug logging")
	}
	rateTableCmd.Flags().String("rate-table", "", "Rate table path (overrides AFE_RATE_TABLE_PATH)")

	rootCmd.AddCommand(computeDecisionCmd)
	rootCmd.AddCommand(optimizeSavingsSplitCmd)
	rootCmd.AddCommand(earliestAgeForPlanCmd)
	rootCmd.AddCommand(optimizeSplitForPlanCmd)
	rootCmd.AddCommand(allocateConcessionalCmd)
	rootCmd.AddCommand(rateTableCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
