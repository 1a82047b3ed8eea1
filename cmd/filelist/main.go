package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/IvanShishkin/filelist/internal/config"
	"github.com/IvanShishkin/filelist/internal/core"
	"github.com/IvanShishkin/filelist/pkg/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "0.1.0"
	logger  *zap.Logger
	verbose bool

	gray   = color.New(color.FgHiBlack).SprintFunc()
	green  = color.New(color.FgGreen, color.Bold).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	orange = color.New(color.FgYellow).SprintFunc()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "filelist",
		Short: "Filelist - manifest of files matched by Ant-style patterns",
		Long: `Scan a base directory with Ant-style include and exclude patterns and write
the matched files, with selected attributes, as JSON, XML, YAML or a JUnit suite.`,
		Version:      version,
		SilenceUsage: true,
	}

	// Global verbose flag
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(fieldsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the run logger: development output with --verbose,
// otherwise info-level console output on stderr
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding:         "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    encoderCfg,
	}
	return cfg.Build()
}

// listCmd creates the list command
func listCmd() *cobra.Command {
	var (
		configFile    string
		baseDir       string
		includes      []string
		excludes      []string
		fields        []string
		outputType    string
		outputFile    string
		caseSensitive bool
		patternsFile  string
		suitePackage  string
		suiteClass    string
	)

	cmd := &cobra.Command{
		Use:   "list [base-dir]",
		Short: "Write the list of matched files",
		Long:  `Recursively scan a base directory and write the files matching the include and exclude patterns.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
				return err
			}
			defer logger.Sync()

			// Load configuration
			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				logger.Error("Failed to load config", zap.Error(err))
				return err
			}

			// Override config with CLI flags
			if len(args) == 1 {
				cfg.BaseDir = args[0]
			}
			flags := cmd.Flags()
			if flags.Changed("base-dir") {
				cfg.BaseDir = baseDir
			}
			if len(includes) > 0 {
				cfg.Includes = includes
			}
			if len(excludes) > 0 {
				cfg.Excludes = excludes
			}
			if len(fields) > 0 {
				cfg.Fields = fields
			}
			if outputType != "" {
				cfg.Type = outputType
			}
			if outputFile != "" {
				cfg.OutputFile = outputFile
			}
			if flags.Changed("case-sensitive") {
				cfg.CaseSensitive = caseSensitive
			}
			if patternsFile != "" {
				cfg.PatternsFile = patternsFile
			}
			if suitePackage != "" {
				cfg.SuitePackage = suitePackage
			}
			if suiteClass != "" {
				cfg.SuiteClass = suiteClass
			}

			if err := cfg.Validate(); err != nil {
				fmt.Fprintf(os.Stderr, "\n  %s %s\n\n", red("✗ Invalid parameter:"), err.Error())
				return err
			}

			result, err := core.NewLister(cfg, logger).Run()
			if err != nil {
				logger.Error("File list failed", zap.Error(err))
				return err
			}

			printSummary(result)
			return nil
		},
	}

	// Flags
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Config file (YAML)")
	cmd.Flags().StringVarP(&baseDir, "base-dir", "b", "", "Base directory of the scan (default: target)")
	cmd.Flags().StringSliceVarP(&includes, "include", "i", nil, "Ant-style include patterns (comma-separated or repeated)")
	cmd.Flags().StringSliceVarP(&excludes, "exclude", "e", nil, "Ant-style exclude patterns (comma-separated or repeated)")
	cmd.Flags().StringSliceVarP(&fields, "fields", "f", nil, "Fields to write: name, size, creationTime, lastModifiedTime (default: name)")
	cmd.Flags().StringVarP(&outputType, "type", "t", "", "Output type: "+strings.Join(config.SupportedTypes(), ", ")+" (default: json)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (default: target/file-list.json)")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "Match patterns case-sensitively")
	cmd.Flags().StringVar(&patternsFile, "patterns-file", "", "YAML file with additional includes and excludes")
	cmd.Flags().StringVar(&suitePackage, "suite-package", "", "Package of the generated JUnit suite")
	cmd.Flags().StringVar(&suiteClass, "suite-class", "", "Class name of the generated JUnit suite")

	return cmd
}

// printSummary prints the result of a successful run
func printSummary(result *core.Result) {
	fmt.Println()
	fmt.Printf("  %s %s\n", green("✓"), fmt.Sprintf("File list contains %d files", result.Files))
	fmt.Printf("  %s    %s\n", gray("Base:"), result.BaseDir)
	fmt.Printf("  %s  %s\n", gray("Output:"), orange(result.OutputFile))
	fmt.Println()
}

// fieldsCmd creates the fields command
func fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List recognized fields",
		Long:  `Display the per-file fields that can be requested with --fields.`,
		Run: func(cmd *cobra.Command, args []string) {
			descriptions := map[models.Field]string{
				models.FieldName:             "path relative to the base directory",
				models.FieldSize:             "size in bytes",
				models.FieldCreationTime:     "creation time, UTC (" + models.TimestampLayout + ")",
				models.FieldLastModifiedTime: "last modification time, UTC (" + models.TimestampLayout + ")",
			}

			fmt.Println("FIELDS:")
			for _, f := range models.KnownFields() {
				fmt.Printf("  %-18s %s\n", cyan(f.String()), descriptions[f])
			}
			fmt.Println()
			fmt.Println("Unrecognized field names are skipped with a single warning per name.")
			fmt.Println()
			fmt.Println("EXAMPLES:")
			fmt.Println("  filelist list -b target -i '**/*.jar' -f name,size")
			fmt.Println("  filelist list -b src/test/java -i '**/*Test.java' -t junit -o AllTestsSuite.java")
			fmt.Println("  filelist list -t xml -o target/file-list.json     # writes target/file-list.xml")
		},
	}
}
