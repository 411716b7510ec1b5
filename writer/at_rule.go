package writer

import (
	"fmt"
	"io"

	"github.com/titpetric/sassgo/css"
	"github.com/titpetric/sassgo/value"
)

// writeRootAtRule emits a top-level at-rule; rules inside its body
// were compiled under the root selector list and emit as-is.
func writeRootAtRule(out io.Writer, style Style, atRule *css.AtRule) error {
	return writeAtRuleWithBody(out, style, atRule, func(out io.Writer, style Style, body []css.Item) error {
		return writeItems(out, style, body)
	})
}

// writeAtRule emits an at-rule nested in a rule: the rule's selectors
// wrap the at-rule's direct declarations, so `a { @media m { x: y } }`
// becomes `@media m { a { x: y } }`.
func writeAtRule(out io.Writer, style Style, parent css.Selectors, atRule *css.AtRule) error {
	return writeAtRuleWithBody(out, style, atRule, func(out io.Writer, style Style, body []css.Item) error {
		wrapped := &css.Rule{Selectors: parent, Body: body}
		return writeRule(out, style, wrapped)
	})
}

func writeAtRuleWithBody(out io.Writer, style Style, atRule *css.AtRule,
	writeBody func(io.Writer, Style, []css.Item) error) error {

	if _, err := io.WriteString(out, style.Indentation()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "@%s", atRule.Name); err != nil {
		return err
	}
	if !value.IsNull(atRule.Args) {
		if _, err := fmt.Fprintf(out, " %s", renderValue(style, atRule.Args)); err != nil {
			return err
		}
	}

	if !atRule.HasBody {
		_, err := io.WriteString(out, ";"+style.ItemSeparator())
		return err
	}

	opening := " {"
	if style.IsCompressed() {
		opening = "{"
	}
	if _, err := io.WriteString(out, opening+style.RuleOpeningSeparator()); err != nil {
		return err
	}
	if err := writeBody(out, style.Indent(), atRule.Body); err != nil {
		return err
	}
	_, err := io.WriteString(out, style.Indentation()+"}"+style.ItemSeparator())
	return err
}
