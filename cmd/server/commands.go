package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/phrazzld/polyglot-api/internal/catalog"
	"github.com/phrazzld/polyglot-api/internal/service"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := initializeApp(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app, err := newApplication(ctx, cfg, l)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		return app.Run(ctx)
	},
}

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text once and print the result as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		cfg, l, err := initializeApp(cmd)
		if err != nil {
			return err
		}

		completer, err := newCompleter(cmd.Context(), cfg.LLM)
		if err != nil {
			return fmt.Errorf("failed to initialize LLM provider: %w", err)
		}

		translator, err := service.NewTranslationService(wrapCompleter(completer, cfg.LLM), nil, nil, l)
		if err != nil {
			return err
		}

		result, err := translator.Translate(cmd.Context(), service.TranslateInput{
			Text:       strings.Join(args, " "),
			SourceLang: from,
			TargetLang: to,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLanguages(cmd.OutOrStdout())
	},
}

func init() {
	translateCmd.Flags().String("from", service.AutoDetect, "Source language code, or auto to detect")
	translateCmd.Flags().String("to", "", "Target language code")
	_ = translateCmd.MarkFlagRequired("to")
}

// printLanguages writes the language table, marking those with a course.
func printLanguages(w io.Writer) error {
	withCourse := make(map[string]bool)
	for _, code := range catalog.CourseLanguages() {
		withCourse[code] = true
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tCOURSE")
	for _, lang := range catalog.Languages() {
		course := ""
		if withCourse[lang.Code] {
			course = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", lang.Code, lang.Name, course)
	}
	return tw.Flush()
}
