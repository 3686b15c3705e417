package layout

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pagelayout/internal/cli"
	"github.com/thenoetrevino/pagelayout/internal/cli/handler"
	"github.com/thenoetrevino/pagelayout/internal/models"
	layoutservice "github.com/thenoetrevino/pagelayout/internal/services/layout"
)

// RulesCmd returns the layout rules parent command
func RulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Set who sees a section",
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Replace a section's visibility rules",
		Long: `Replace a section's visibility rules. Each rule is "<field> <operator> <value>"
with field one of title, profile, role and operator one of equals,
not_equals, contains, not_contains. Comparisons ignore case.

Examples:
  pagelayout layout rules set --board=123 --section=Billing --rule="role equals manager"
  pagelayout layout rules set --board=123 --section=2 --criteria=any \
      --rule="title contains lead" --rule="profile equals finance"
`,
		RunE: handler.Command(edit(runRulesSet)),
	}
	set.Flags().String("section", "", "Section ID, position (1-based) or title (required)")
	set.Flags().StringArray("rule", nil, "Rule as \"<field> <operator> <value>\" (repeatable, required)")
	set.Flags().String("criteria", "all", "Combine rules with all or any")
	_ = set.MarkFlagRequired("section")
	_ = set.MarkFlagRequired("rule")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Make a section visible to everyone",
		RunE:  handler.Command(edit(runRulesClear)),
	}
	clearCmd.Flags().String("section", "", "Section ID, position (1-based) or title (required)")
	_ = clearCmd.MarkFlagRequired("section")

	for _, sub := range []*cobra.Command{set, clearCmd} {
		boardFlag(sub)
		handler.AddOutputFlags(sub, "Minimal output (section ID only)")
		cmd.AddCommand(sub)
	}

	return cmd
}

func runRulesSet(_ context.Context, s *layoutservice.Session, args *handler.Arguments) (string, string, string, error) {
	sec, err := cli.ResolveSection(s.Layout, args.GetString("section", ""))
	if err != nil {
		return "", "", "", err
	}
	raw := args.GetStringSlice("rule", nil)
	group := models.RuleGroup{Criteria: models.ParseCriteria(args.GetString("criteria", "all"))}
	for _, r := range raw {
		rule, err := models.ParseRule(r)
		if err != nil {
			return "", "", "", err
		}
		group.Rules = append(group.Rules, rule)
	}
	if err := s.Layout.SetRules(sec.ID, group); err != nil {
		return "", "", "", err
	}
	return "rules_set", sec.ID, fmt.Sprintf("Set %d visibility rules on '%s' (%s)", len(group.Rules), sec.Title, group.Criteria), nil
}

func runRulesClear(_ context.Context, s *layoutservice.Session, args *handler.Arguments) (string, string, string, error) {
	sec, err := cli.ResolveSection(s.Layout, args.GetString("section", ""))
	if err != nil {
		return "", "", "", err
	}
	if err := s.Layout.SetRules(sec.ID, models.RuleGroup{}); err != nil {
		return "", "", "", err
	}
	return "rules_clear", sec.ID, fmt.Sprintf("'%s' is visible to everyone", sec.Title), nil
}
