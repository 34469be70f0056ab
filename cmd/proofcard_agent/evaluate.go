package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/proofcard/internal/config"
	"github.com/jonathan/proofcard/internal/evidence"
	"github.com/jonathan/proofcard/internal/explain"
	"github.com/jonathan/proofcard/internal/llm"
	"github.com/jonathan/proofcard/internal/observability"
	"github.com/jonathan/proofcard/internal/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate one skill's evidence from a request file",
	Long: `Reads an evaluation request (skill name plus activity summaries) from a JSON
file, runs the unlock requirements and confidence scoring, and prints the
resulting proof card as JSON.

Without an API key the explanatory prose falls back to a deterministic
template; the unlock decision and confidence score are identical either way.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runEvaluateCmd,
}

var (
	evalConfigPath string
	evalRequest    string
	evalAPIKey     string
	evalModel      string
	evalVerbose    bool
)

func init() {
	evaluateCmd.Flags().StringVar(&evalConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	evaluateCmd.Flags().StringVarP(&evalRequest, "request", "r", "", "Path to the evaluation request JSON file")
	evaluateCmd.Flags().StringVar(&evalAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	evaluateCmd.Flags().StringVar(&evalModel, "model", "", "Override the explanation model")
	evaluateCmd.Flags().BoolVarP(&evalVerbose, "verbose", "v", false, "Print metrics and the requirements checklist")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if evalConfigPath != "" {
		loadedCfg, err := config.LoadConfig(evalConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("request") {
		cfg.Request = evalRequest
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = evalAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = evalModel
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = evalVerbose
	}

	// Step 3: Fill remaining gaps from the environment
	defaults := config.Config{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  os.Getenv("GEMINI_MODEL"),
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.Request == "" {
		return fmt.Errorf("--request is required (or 'request' in the config file)")
	}

	req, err := loadEvaluateRequest(cfg.Request)
	if err != nil {
		return err
	}

	gen, err := buildGenerator(ctx, cfg)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		metrics := evidence.CalculateEvidenceMetrics(req.Activities)
		printer.PrintMetrics(req.SkillName, metrics)
		printer.PrintRequirements(evidence.EvaluateUnlockRequirements(metrics))
	}

	result := explain.Evaluate(ctx, gen, *req)

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintResult(result)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

func loadEvaluateRequest(path string) (*types.EvaluateRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	var req types.EvaluateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request JSON: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	return &req, nil
}

// buildGenerator returns nil when no API key is configured; a nil generator
// makes every unlocked card use the deterministic fallback prose.
func buildGenerator(ctx context.Context, cfg config.Config) (explain.Generator, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	modelConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		modelConfig = modelConfig.WithModel(llm.TierLite, cfg.Model)
	}

	client, err := llm.NewGeminiClient(ctx, modelConfig, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return explain.NewLLMGenerator(client), nil
}
