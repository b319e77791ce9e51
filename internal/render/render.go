// Package render produce las vistas de un reporte ya ensamblado. Son
// transformaciones de presentación puras: nunca modifican el reporte.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
	"github.com/Tomas-vilte/ReadyMate/internal/i18n"
)

// JSON serializa el reporte con indentación. El resultado des-serializa de
// vuelta a un reporte igual.
func JSON(report *models.ReadinessReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("render: reporte nil")
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: error al serializar el reporte: %w", err)
	}
	return data, nil
}

// Text produce la vista de terminal del reporte.
func Text(report *models.ReadinessReport, t *i18n.Translations) string {
	if report == nil {
		return ""
	}
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n", t.GetMessage("report_header", 0, map[string]interface{}{"Path": report.RepoPath}))
	fmt.Fprintf(&sb, "%s\n", t.GetMessage("report_achieved_level", 0, map[string]interface{}{"Level": report.AchievedLevel}))
	fmt.Fprintf(&sb, "%s\n", t.GetMessage("report_overall_pass_rate", 0, map[string]interface{}{"Rate": percent(report.OverallPassRate)}))

	if len(report.Policies) > 0 {
		fmt.Fprintf(&sb, "%s\n", t.GetMessage("report_applied_policies", 0, map[string]interface{}{
			"Chain": strings.Join(report.Policies, " → "),
		}))
	} else {
		fmt.Fprintf(&sb, "%s\n", t.GetMessage("report_no_policies", 0, nil))
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "%s\n", t.GetMessage("report_levels_header", 0, nil))
	for _, level := range report.Levels {
		fmt.Fprintf(&sb, "  %s L%d %-10s %2d/%-2d (%s)\n",
			achievedMark(level.Achieved), level.Level, level.Name, level.Passed, level.Total, percent(level.PassRate))
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "%s\n", t.GetMessage("report_pillars_header", 0, nil))
	for _, pillar := range report.Pillars {
		fmt.Fprintf(&sb, "  %-18s %2d/%-2d (%s)\n", pillar.Name, pillar.Passed, pillar.Total, percent(pillar.PassRate))
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "%s\n", t.GetMessage("report_criteria_header", 0, nil))
	for _, c := range report.Criteria {
		fmt.Fprintf(&sb, "  %s %-22s L%d %-12s %s", statusMark(c.Outcome.Status), c.ID, c.Level, c.Pillar, c.Title)
		if c.Apps != nil {
			fmt.Fprintf(&sb, " [%d/%d apps]", c.Apps.Passed, c.Apps.Total)
		}
		if c.Outcome.Reason != "" {
			fmt.Fprintf(&sb, " — %s", c.Outcome.Reason)
		}
		sb.WriteString("\n")
	}

	if len(report.Extras) > 0 {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "%s\n", t.GetMessage("report_extras_header", 0, nil))
		for _, e := range report.Extras {
			fmt.Fprintf(&sb, "  %s %-22s %s\n", statusMark(e.Outcome.Status), e.ID, e.Title)
		}
	}

	if len(report.Areas) > 0 {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "%s\n", t.GetMessage("report_areas_header", 0, nil))
		for _, area := range report.Areas {
			fmt.Fprintf(&sb, "  %s (%s)\n", area.Name, area.Path)
			for _, c := range area.Criteria {
				fmt.Fprintf(&sb, "    %s %s\n", statusMark(c.Outcome.Status), c.ID)
			}
		}
	}

	return sb.String()
}

// Markdown produce la vista para publicar en un issue.
func Markdown(report *models.ReadinessReport) string {
	if report == nil {
		return ""
	}
	var sb strings.Builder

	sb.WriteString("## ReadyMate Report\n\n")
	fmt.Fprintf(&sb, "**Repository:** `%s`  \n", report.RepoPath)
	fmt.Fprintf(&sb, "**Achieved level:** %d/5  \n", report.AchievedLevel)
	fmt.Fprintf(&sb, "**Overall pass rate:** %s\n\n", percent(report.OverallPassRate))

	sb.WriteString("### Maturity levels\n\n")
	sb.WriteString("| Level | Name | Passed | Total | Rate | Achieved |\n")
	sb.WriteString("|---|---|---|---|---|---|\n")
	for _, level := range report.Levels {
		fmt.Fprintf(&sb, "| %d | %s | %d | %d | %s | %s |\n",
			level.Level, level.Name, level.Passed, level.Total, percent(level.PassRate), yesNo(level.Achieved))
	}
	sb.WriteString("\n")

	sb.WriteString("### Pillars\n\n")
	sb.WriteString("| Pillar | Passed | Total | Rate |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, pillar := range report.Pillars {
		fmt.Fprintf(&sb, "| %s | %d | %d | %s |\n", pillar.Name, pillar.Passed, pillar.Total, percent(pillar.PassRate))
	}
	sb.WriteString("\n")

	sb.WriteString("### Criteria\n\n")
	sb.WriteString("| Status | ID | Level | Pillar | Detail |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, c := range report.Criteria {
		detail := c.Outcome.Reason
		if c.Apps != nil {
			detail = fmt.Sprintf("%d/%d apps — %s", c.Apps.Passed, c.Apps.Total, detail)
		}
		fmt.Fprintf(&sb, "| %s | `%s` | %d | %s | %s |\n",
			c.Outcome.Status, c.ID, c.Level, c.Pillar, mdEscape(detail))
	}

	if len(report.Policies) > 0 {
		fmt.Fprintf(&sb, "\n_Applied policies: %s_\n", strings.Join(report.Policies, " → "))
	}

	return sb.String()
}

func statusMark(status models.Status) string {
	switch status {
	case models.StatusPass:
		return "✔"
	case models.StatusFail:
		return "✘"
	default:
		return "-"
	}
}

func achievedMark(achieved bool) string {
	if achieved {
		return "✔"
	}
	return " "
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func percent(rate float64) string {
	return fmt.Sprintf("%.0f%%", rate*100)
}

func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
