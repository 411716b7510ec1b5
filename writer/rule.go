package writer

import (
	"io"

	"github.com/titpetric/sassgo/css"
	"github.com/titpetric/sassgo/value"
)

// writeRule emits the rule's own declarations as one block, then
// recursively emits nested rules and at-rules after it. This flattens
// nested scss into css while preserving child order.
func writeRule(out io.Writer, style Style, rule *css.Rule) error {
	bodyItems := filterBodyItems(style, rule.Body)

	if len(bodyItems) > 0 {
		if _, err := io.WriteString(out, style.Indentation()); err != nil {
			return err
		}
		if err := writeSelectors(out, style, rule.Selectors); err != nil {
			return err
		}
		if !style.IsCompressed() {
			if _, err := io.WriteString(out, " "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(out, "{"+style.RuleOpeningSeparator()); err != nil {
			return err
		}
		if err := writeRuleBodyItems(out, style.Indent(), bodyItems); err != nil {
			return err
		}
		if _, err := io.WriteString(out, style.Indentation()+"}"+style.ItemSeparator()); err != nil {
			return err
		}
	}

	for _, item := range rule.Body {
		switch t := item.(type) {
		case *css.Rule:
			if err := writeRule(out, style, t); err != nil {
				return err
			}
		case *css.AtRule:
			if err := writeAtRule(out, style, rule.Selectors, t); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRuleBodyItems(out io.Writer, style Style, items []css.Item) error {
	for index, item := range items {
		last := index == len(items)-1
		switch t := item.(type) {
		case *css.Property:
			if err := writeProperty(out, style, t); err != nil {
				return err
			}
			if style.IncludeTrailingSemicolon() || !last {
				if _, err := io.WriteString(out, ";"); err != nil {
					return err
				}
			}
		case *css.Comment:
			if err := writeComment(out, style, t.Text); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(out, style.ItemSeparator()); err != nil {
			return err
		}
	}
	return nil
}

// filterBodyItems keeps the items that render inside the braces:
// properties, and comments when the style includes them.
func filterBodyItems(style Style, items []css.Item) []css.Item {
	result := make([]css.Item, 0, len(items))
	for _, item := range items {
		switch item.(type) {
		case *css.Property:
			result = append(result, item)
		case *css.Comment:
			if style.IncludeComments() {
				result = append(result, item)
			}
		}
	}
	return result
}

func renderValue(style Style, v value.Value) string {
	return value.Render(v, style.IsCompressed())
}
