package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"afyabuddy/internal/api"
	"afyabuddy/internal/clinics"
	"afyabuddy/internal/firstaid"
	"afyabuddy/internal/models"
	"afyabuddy/internal/translate"
	"afyabuddy/internal/triage"
)

var (
	askLang string

	translateFrom string
	translateTo   string

	clinicLat     float64
	clinicLng     float64
	clinicKeyword string
	clinicUrgency string

	firstAidLang string
)

// askCmd answers a single first-aid question
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a first-aid question",
	Long: `Classifies the question, prints the canned advice and its urgency.

Example:
  afyabuddy ask "my child has a burn on the hand" --lang sw`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate medical terms with the built-in dictionaries",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr := translate.New(translate.ParseMode(cfg.Translation.Mode))
		out := tr.Translate(strings.Join(args, " "), translateFrom, translateTo)
		_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	},
}

var clinicsCmd = &cobra.Command{
	Use:   "clinics",
	Short: "List the nearest clinics to a location",
	Args:  cobra.NoArgs,
	RunE:  runClinics,
}

var firstAidCmd = &cobra.Command{
	Use:   "first-aid [condition]",
	Short: "Show step-by-step first-aid instructions",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFirstAid,
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tNATIVE\tDICTIONARY")
		for _, l := range translate.Languages() {
			dict := "-"
			if l.HasDictionary {
				dict = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.Code, l.Name, l.NativeName, dict)
		}
		return w.Flush()
	},
}

func init() {
	askCmd.Flags().StringVarP(&askLang, "lang", "l", "", "Response language code")
	askCmd.Flags().Bool("plain", false, "Print raw markdown instead of rendering it")

	translateCmd.Flags().StringVar(&translateFrom, "from", translate.DefaultLanguage, "Source language code")
	translateCmd.Flags().StringVar(&translateTo, "to", "sw", "Target language code")

	clinicsCmd.Flags().Float64Var(&clinicLat, "lat", -1.2921, "Latitude")
	clinicsCmd.Flags().Float64Var(&clinicLng, "lng", 36.8219, "Longitude")
	clinicsCmd.Flags().StringVar(&clinicKeyword, "keyword", "general", `Search keyword; "emergency" keeps hospitals only`)
	clinicsCmd.Flags().StringVar(&clinicUrgency, "urgency", string(models.UrgencyNormal), "Urgency level (high, moderate, normal)")

	firstAidCmd.Flags().StringVarP(&firstAidLang, "lang", "l", "", "Target language code")
	firstAidCmd.Flags().Bool("plain", false, "Print raw markdown instead of rendering it")
}

func runAsk(cmd *cobra.Command, args []string) error {
	coordinator := api.NewCoordinator(
		triage.NewRuleBasedClassifier(triage.ClassifierConfig{}),
		translate.New(translate.ParseMode(cfg.Translation.Mode)),
		nil, nil, nil, logger,
		api.CoordinatorConfig{},
	)

	query := strings.Join(args, " ")
	language := translate.Match(askLang, "")
	result, err := coordinator.Advise(cmd.Context(), query, language)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "> **Category:** %s · **Urgency:** %s · **Confidence:** %.0f%%\n\n",
		result.Category, result.UrgencyLevel, result.Confidence*100)
	b.WriteString(result.Content)
	b.WriteString("\n\n**Recommendations:**\n")
	for _, r := range result.Recommendations {
		fmt.Fprintf(&b, "- %s\n", r)
	}
	if result.IsEmergency() {
		fallback := coordinator.Translator().Translate(triage.FallbackAdvice(query), translate.DefaultLanguage, language)
		fmt.Fprintf(&b, "\n%s\n", fallback)
	}

	return render(cmd, b.String())
}

func runClinics(cmd *cobra.Command, args []string) error {
	origin := models.Location{Latitude: clinicLat, Longitude: clinicLng}
	results := clinics.NewDirectory(nil).Nearby(origin, clinicKeyword)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tDISTANCE\tPHONE\tRATING")
	for i, c := range results {
		fmt.Fprintf(w, "%d\t%s\t%.2f km\t%s\t%.1f\n", i+1, c.Name, c.Distance, c.Phone, c.Rating)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	for _, r := range clinics.Recommendations(models.ParseUrgency(clinicUrgency)) {
		fmt.Fprintf(out, "* %s\n", r)
	}
	return nil
}

func runFirstAid(cmd *cobra.Command, args []string) error {
	guides, err := firstaid.Default()
	if err != nil {
		return err
	}

	guide := guides.Lookup(strings.Join(args, " "))
	if lang := translate.Match(firstAidLang, ""); lang != translate.DefaultLanguage {
		tr := translate.New(translate.ParseMode(cfg.Translation.Mode))
		guide = firstaid.Translate(guide, func(s string) string {
			return tr.Translate(s, translate.DefaultLanguage, lang)
		})
	}

	return render(cmd, guideMarkdown(guide))
}

func guideMarkdown(g models.FirstAidGuide) string {
	var b strings.Builder
	if g.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", g.Title)
	}
	if g.Content != "" {
		fmt.Fprintf(&b, "%s\n\n", g.Content)
	}

	section := func(heading string, items []string, numbered bool) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "## %s\n\n", heading)
		for i, item := range items {
			if numbered {
				fmt.Fprintf(&b, "%d. %s\n", i+1, item)
			} else {
				fmt.Fprintf(&b, "- %s\n", item)
			}
		}
		b.WriteString("\n")
	}
	section("Symptoms", g.Symptoms, false)
	section("Steps", g.Steps, true)
	section("Do not", g.DoNot, false)
	section("Seek help if", g.SeekHelpIf, false)
	section("Recommendations", g.Recommendations, false)

	return b.String()
}

// render prints markdown through glamour unless the command's --plain flag is set
func render(cmd *cobra.Command, markdown string) error {
	plain, err := cmd.Flags().GetBool("plain")
	if err != nil {
		return err
	}
	return writeMarkdown(cmd.OutOrStdout(), markdown, plain)
}

func writeMarkdown(w io.Writer, markdown string, plain bool) error {
	if plain {
		_, err := io.WriteString(w, markdown)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
