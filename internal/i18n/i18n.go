package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations crea el bundle con los mensajes por defecto embebidos y
// carga los locales activos del directorio indicado ("" usa ./locales).
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Assess how ready a repository is for humans and AI tooling"

	[app_description]
	other = "ReadyMate scores a repository against a catalogue of readiness criteria, grouped by pillar and maturity level, and lets you tune the bar with composable policies."

	[check_command_usage]
	other = "Evaluate the repository and print the readiness report"

	[check_path_flag_usage]
	other = "Path to the repository root"

	[check_policies_flag_usage]
	other = "Comma-separated policy references (file paths or built-in packs), applied left to right"

	[check_json_flag_usage]
	other = "Print the report as JSON"

	[check_save_flag_usage]
	other = "Also write the JSON report to this file"

	[check_min_level_flag_usage]
	other = "Fail with exit code 2 when the achieved level is below this floor"

	[check_min_pass_rate_flag_usage]
	other = "Fail with exit code 2 when the overall pass rate is below this floor"

	[check_trusted_packs_flag_usage]
	other = "Allow built-in code policy packs; disable to force data-only policies"

	[check_below_min_level]
	other = "Achieved level {{.Achieved}} is below the required minimum {{.Min}}"

	[check_below_min_pass_rate]
	other = "Overall pass rate {{.Rate}} is below the required minimum {{.Min}}"

	[check_report_saved]
	other = "Report saved to {{.Path}}"

	[analyzing_repository]
	other = "Analyzing repository at {{.Path}}..."

	[policy_command_usage]
	other = "Inspect and validate policy references"

	[policy_validate_usage]
	other = "Validate a single policy reference"

	[policy_validate_ok]
	other = "Policy '{{.Name}}' is valid ({{.Source}})"

	[policy_show_usage]
	other = "Show the resolved criteria chain without evaluating"

	[policy_show_header]
	other = "Resolved configuration"

	[advise_command_usage]
	other = "Generate AI-backed improvement suggestions from a saved report"

	[advise_report_flag_usage]
	other = "Path to a JSON report produced by 'check --save'"

	[advise_no_suggestions]
	other = "No suggestions were generated"

	[publish_command_usage]
	other = "Publish a saved report as a GitHub issue"

	[publish_report_flag_usage]
	other = "Path to a JSON report produced by 'check --save'"

	[publish_repo_flag_usage]
	other = "Target repository in owner/name form"

	[publish_done]
	other = "Report published: {{.URL}}"

	[config_command_usage]
	other = "Manage ReadyMate configuration"

	[config_init_usage]
	other = "Create the default configuration file"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_lang_usage]
	other = "Set the interface language (en, es)"

	[config_set_lang_flag_usage]
	other = "Language code"

	[config_gemini_key_flag_usage]
	other = "Gemini API key for the advise command"

	[config_github_token_flag_usage]
	other = "GitHub token for the publish command"

	[unsupported_language]
	other = "Unsupported language. Use 'en' or 'es'"

	[language_configured]
	other = "Language set to {{.Lang}}"

	[config_set_policies_usage]
	other = "Set the default policy references"

	[config_initialized]
	other = "Configuration initialized at {{.Path}}"

	[config_updated]
	other = "Configuration updated"

	[current_config]
	other = "Current configuration"

	[completion_command_usage]
	other = "Generate shell completion scripts"

	[completion_command_description]
	other = "Outputs a completion script for bash or zsh"

	[completion_bash_usage]
	other = "Print the bash completion script"

	[completion_zsh_usage]
	other = "Print the zsh completion script"

	[factory_already_registered]
	other = "Factory '{{.FactoryName}}' is already registered"

	[help_command_usage]
	other = "Show help"

	[report_header]
	other = "Readiness report for {{.Path}}"

	[report_achieved_level]
	other = "Achieved maturity level: {{.Level}} of 5"

	[report_overall_pass_rate]
	other = "Overall pass rate: {{.Rate}}"

	[report_pillars_header]
	other = "Pillars"

	[report_levels_header]
	other = "Maturity levels"

	[report_criteria_header]
	other = "Criteria"

	[report_extras_header]
	other = "Extras"

	[report_areas_header]
	other = "Per-application breakdown"

	[report_applied_policies]
	other = "Applied policies: {{.Chain}}"

	[report_no_policies]
	other = "Applied policies: (none)"

	[failing_apps_count]
	one = "{{.Count}} application failing"
	other = "{{.Count}} applications failing"
	`
