package domain

import (
	"fmt"
	"sort"
	"strings"

	m "github.com/mouse-blink/lintsweep/internal/model"
)

// planKey groups violations that share an identical line range so
// multiple rules at the same location collapse into one comment pair.
type planKey struct {
	start int
	end   int
}

// orderedRuleSet is a uniqueness set that remembers insertion order.
// Comment rendering joins rules in first-seen order, so the order must
// be kept explicitly rather than assumed from a map.
type orderedRuleSet struct {
	names []string
	seen  map[string]struct{}
}

func newOrderedRuleSet() *orderedRuleSet {
	return &orderedRuleSet{seen: make(map[string]struct{})}
}

func (s *orderedRuleSet) add(rule string) {
	if _, ok := s.seen[rule]; ok {
		return
	}

	s.seen[rule] = struct{}{}
	s.names = append(s.names, rule)
}

// buildPlan converts a file's raw violations into the sorted,
// deduplicated suppression plan. Only error-severity violations
// participate; warnings are discarded.
func buildPlan(violations []m.Violation) m.SuppressionPlan {
	var order []planKey

	rules := make(map[planKey]*orderedRuleSet)

	for _, v := range violations {
		if v.Severity != m.SeverityError {
			continue
		}

		end := v.EndLine
		if end < v.Line {
			end = v.Line
		}

		key := planKey{start: v.Line, end: end}

		set, ok := rules[key]
		if !ok {
			set = newOrderedRuleSet()
			rules[key] = set
			order = append(order, key)
		}

		set.add(v.Rule)
	}

	plan := make(m.SuppressionPlan, 0, len(order))

	for _, key := range order {
		plan = append(plan, m.PlanEntry{
			StartLine: key.start,
			EndLine:   key.end,
			Rules:     rules[key].names,
		})
	}

	sort.SliceStable(plan, func(i, j int) bool {
		return plan[i].StartLine < plan[j].StartLine
	})

	return plan
}

func disableComment(rules []string) string {
	return fmt.Sprintf("/* stylelint-disable %s */", strings.Join(rules, ","))
}

func enableComment(rules []string) string {
	return fmt.Sprintf("/* stylelint-enable %s */", strings.Join(rules, ","))
}

func disableNextLineComment(rules []string) string {
	return fmt.Sprintf("/* stylelint-disable-next-line %s */", strings.Join(rules, ","))
}
