package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/animesh-sketch/red-flag-identifier/internal/ai"
	"github.com/animesh-sketch/red-flag-identifier/internal/analysis"
	"github.com/animesh-sketch/red-flag-identifier/internal/config"
	"github.com/animesh-sketch/red-flag-identifier/internal/output"
	"github.com/animesh-sketch/red-flag-identifier/internal/providers"
	"github.com/animesh-sketch/red-flag-identifier/internal/redact"
)

var (
	flagMode     string
	flagSeverity string
	flagRules    string
	flagFormat   string
	flagOut      string
	flagAPIKey   string
	flagModel    string
	flagNoRedact bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a transcript file for red flags",
	Long: "Analyze a transcript file (or stdin with '-') for red flags.\n" +
		"Modes: hybrid (default, keyword rules + AI), rules-only, ai-only.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		runAnalyze(args[0], cfg)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&flagMode, "mode", "", "Analysis mode (hybrid, rules-only, ai-only)")
	analyzeCmd.Flags().StringVar(&flagSeverity, "severity", "", "Minimum severity to report (low, medium, high, critical)")
	analyzeCmd.Flags().StringVar(&flagRules, "rules", "", "Path to custom rules file (JSON or YAML)")
	analyzeCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json)")
	analyzeCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "Anthropic API key (or set ANTHROPIC_API_KEY)")
	analyzeCmd.Flags().StringVar(&flagModel, "model", "", "Model name for AI analysis")
	analyzeCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction before AI analysis")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagMode != "" {
		m["mode"] = flagMode
	}
	if flagSeverity != "" {
		m["severity"] = flagSeverity
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagRules != "" {
		m["rulesFile"] = flagRules
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	return m
}

func runAnalyze(path string, cfg config.Config) {
	text, err := readInput(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitUsageError
		return
	}
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(os.Stderr, "Error: input is empty")
		exitCode = ExitUsageError
		return
	}

	mode := analysis.Mode(cfg.Mode)
	if !analysis.ValidMode(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", cfg.Mode)
		exitCode = ExitUsageError
		return
	}
	severity := analysis.Severity(cfg.MinSeverity)
	if !analysis.ValidSeverity(severity) {
		fmt.Fprintf(os.Stderr, "Error: unknown severity %q\n", cfg.MinSeverity)
		exitCode = ExitUsageError
		return
	}

	req := analysis.Request{
		Text:        text,
		Mode:        mode,
		MinSeverity: severity,
	}

	if cfg.RulesFile != "" {
		custom, err := analysis.LoadRulesFile(cfg.RulesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return
		}
		req.CustomRules = custom
	}

	// Credential check happens here, before any text is processed. In
	// hybrid mode a missing key degrades to rules-only with a warning;
	// ai-only cannot proceed without one.
	modeLabel := string(mode)
	if mode.RequiresAI() {
		apiKey := config.APIKey(flagAPIKey)
		if apiKey == "" {
			fmt.Fprintln(os.Stderr, "Warning: no API key found, AI analysis will be skipped.")
			fmt.Fprintln(os.Stderr, "Set ANTHROPIC_API_KEY or use --api-key to enable AI analysis.")
			if mode == analysis.ModeAIOnly {
				fmt.Fprintln(os.Stderr, "Error: ai-only mode requires an API key")
				exitCode = ExitUsageError
				return
			}
			modeLabel = "rules-only (fallback)"
		} else {
			completer, err := providers.New(cfg.Provider, cfg.Model, apiKey)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitUsageError
				return
			}
			opts := []ai.Option{
				ai.WithMaxChunkChars(cfg.ChunkChars),
				ai.WithDelay(time.Duration(cfg.DelaySecs) * time.Second),
			}
			if cfg.Redact && !flagNoRedact {
				opts = append(opts, ai.WithRedactor(redact.Transcript))
			}
			req.Remote = ai.New(completer, opts...)
		}
	}

	if cfg.Format == "text" {
		fmt.Fprintf(os.Stderr, "Mode: %s | Min severity: %s\n", modeLabel, severity)
		fmt.Fprintln(os.Stderr, "Analyzing...")
	}

	// Cancellation aborts before the next chunk starts, not mid-call.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	findings, err := analysis.Analyze(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if providers.IsAuthError(err) {
			exitCode = ExitAuthError
		} else {
			exitCode = ExitRuntimeError
		}
		return
	}

	report := output.NewReport(findings)
	if err := output.WriteReport(report, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", path)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
