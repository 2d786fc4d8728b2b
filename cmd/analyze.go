package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resumefit/internal/analysis"
	"github.com/spigell/resumefit/internal/analyzer"
	"github.com/spigell/resumefit/internal/logger"
	"github.com/spigell/resumefit/internal/render"
)

const (
	PromptAnalyze = "Analyze again"
	PromptSwap    = "Swap inputs"
	PromptClear   = "Clear"
	PromptRaw     = "Show raw response"
	PromptExit    = "Exit"

	outputText = "text"
	outputJSON = "json"

	unreachableMessage = "Couldn't reach the analyzer. Check your backend URL and CORS."
)

var errExit = errors.New("exit requested")

var actionPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptAnalyze, PromptSwap, PromptClear, PromptRaw, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Send a resume and a job description to the analyzer and show the match",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("resume", "r", "", "file with the resume text, - for stdin")
	analyzeCmd.Flags().StringP("job-desc", "J", "", "file with the job description text, - for stdin")
	analyzeCmd.Flags().StringP("endpoint", "e", "", "analyzer endpoint URL")
	analyzeCmd.Flags().StringP("output", "o", outputText, "output format: text or json")
	analyzeCmd.Flags().BoolP("yes", "y", false, "do not show the interactive menu after the result")
	analyzeCmd.Flags().Int("bar-width", 40, "width of the score bar")

	viper.BindPFlag("analyzer.endpoint", analyzeCmd.Flags().Lookup("endpoint"))
}

type session struct {
	client   *analyzer.Client
	logger   *zap.Logger
	out      io.Writer
	output   string
	barWidth int

	resume  string
	jobDesc string
	raw     []byte
}

func analyze(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	output, _ := cmd.Flags().GetString("output")
	if output != outputText && output != outputJSON {
		logger.Fatal("unsupported output format", zap.String("output", output))
	}

	barWidth, _ := cmd.Flags().GetInt("bar-width")
	interactive := !mustBool(cmd, "yes")

	s := &session{
		client: analyzer.New(analyzer.Config{
			Endpoint:     config.Analyzer.Endpoint,
			Timeout:      config.Analyzer.Timeout,
			MinLength:    config.Analyzer.MinLength,
			MaxLogLength: config.Analyzer.MaxLogLength,
		}, logger),
		logger:   logger,
		out:      cmd.OutOrStdout(),
		output:   output,
		barWidth: barWidth,
	}

	resumePath, _ := cmd.Flags().GetString("resume")
	jobPath, _ := cmd.Flags().GetString("job-desc")
	if resumePath == "-" && jobPath == "-" {
		logger.Fatal("only one of --resume and --job-desc can be read from stdin")
	}

	if err := s.load(resumePath, jobPath, interactive); err != nil {
		logger.Fatal("reading documents", zap.Error(err))
	}

	if err := s.analyze(ctx); err != nil {
		if !interactive {
			logger.Fatal("analysis failed", zap.Error(err))
		}
		logger.Error("analysis failed", zap.Error(err))
	}

	for interactive {
		_, action, err := actionPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := s.handleAction(ctx, action); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Error("action failed", zap.String("action", action), zap.Error(err))
		}
	}
}

func (s *session) handleAction(ctx context.Context, action string) error {
	switch action {
	case PromptAnalyze:
		return s.analyze(ctx)
	case PromptSwap:
		s.resume, s.jobDesc = s.jobDesc, s.resume
		s.logger.Info("inputs swapped")
		return nil
	case PromptClear:
		s.clear()
		return s.load("", "", true)
	case PromptRaw:
		if s.raw == nil {
			s.logger.Info("no response yet")
			return nil
		}
		fmt.Fprintln(s.out, string(s.raw))
		return nil
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// analyze posts the documents and prints the normalized result. Transport
// failures are reported with a generic message and never reach the
// normalizer.
func (s *session) analyze(ctx context.Context) error {
	s.raw = nil

	raw, err := s.client.Analyze(ctx, s.resume, s.jobDesc)
	if errors.Is(err, analyzer.ErrInputTooShort) {
		return fmt.Errorf("enter both texts (more than %d characters each): %w", s.client.MinLength, err)
	}
	if err != nil {
		s.logger.Debug("analyzer request failed", zap.Error(err))
		return errors.New(unreachableMessage)
	}

	s.raw = raw
	return s.print(analysis.NormalizeJSON(raw))
}

func (s *session) print(res analysis.Result) error {
	if s.output == outputJSON {
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if !res.HasContent() {
		s.logger.Info("analyzer returned nothing to show")
		return nil
	}

	_, err := fmt.Fprintln(s.out, render.Card(res, s.barWidth))
	return err
}

func (s *session) clear() {
	s.resume = ""
	s.jobDesc = ""
	s.raw = nil
}

// load reads the documents from the given paths, prompting for missing ones
// when interactive.
func (s *session) load(resumePath, jobPath string, interactive bool) error {
	var err error

	if resumePath == "" && interactive {
		if resumePath, err = promptPath("Resume file", s.client.MinLength); err != nil {
			return err
		}
	}
	if jobPath == "" && interactive {
		if jobPath, err = promptPath("Job description file", s.client.MinLength); err != nil {
			return err
		}
	}

	if resumePath == "" || jobPath == "" {
		return errors.New("both --resume and --job-desc are required")
	}

	if s.resume, err = readDocument(resumePath); err != nil {
		return fmt.Errorf("resume: %w", err)
	}
	if s.jobDesc, err = readDocument(jobPath); err != nil {
		return fmt.Errorf("job description: %w", err)
	}

	return nil
}

func promptPath(label string, minLength int) (string, error) {
	p := promptui.Prompt{
		Label:    label,
		Validate: validatePath,
	}

	for {
		path, err := p.Run()
		if err != nil {
			return "", err
		}
		path = strings.TrimSpace(path)

		text, err := readDocument(path)
		if err != nil {
			return "", err
		}
		if err := checkLength(text, minLength); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		return path, nil
	}
}

// validatePath runs on every keystroke, so it only stats the file.
func validatePath(input string) error {
	input = strings.TrimSpace(input)
	if input == "-" {
		return errors.New("stdin is not available in interactive mode")
	}

	info, err := os.Stat(input)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", input)
	}

	return nil
}

func checkLength(text string, minLength int) error {
	if len([]rune(strings.TrimSpace(text))) <= minLength {
		return fmt.Errorf("use the full document, more than %d characters", minLength)
	}
	return nil
}

func readDocument(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func mustBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		log.Fatalf("reading flag %s: %v", name, err)
	}
	return v
}
