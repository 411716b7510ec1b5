package writer

import (
	"fmt"
	"io"

	"github.com/titpetric/sassgo/css"
)

// Write renders the item list as a complete stylesheet: byte order
// mark when needed, imports and items, and the final newline the style
// asks for.
func Write(out io.Writer, style Style, items []css.Item) error {
	rootItems := filterRootItems(style, items)

	if !allASCII(rootItems) {
		if _, err := io.WriteString(out, style.ByteOrderMark()); err != nil {
			return err
		}
	}

	if err := writeItems(out, style, rootItems); err != nil {
		return err
	}

	_, err := io.WriteString(out, style.EndOfFileSeparator())
	return err
}

// writeItems renders items at the top level or inside a root at-rule
func writeItems(out io.Writer, style Style, items []css.Item) error {
	for index, item := range items {
		last := index == len(items)-1
		switch t := item.(type) {
		case *css.Import:
			if _, err := fmt.Fprintf(out, "@import %s", renderValue(style, t.Value)); err != nil {
				return err
			}
			if err := terminate(out, style, last); err != nil {
				return err
			}
		case *css.Rule:
			if err := writeRule(out, style, t); err != nil {
				return err
			}
			if !last {
				if _, err := io.WriteString(out, style.ItemSeparator()); err != nil {
					return err
				}
			}
		case *css.AtRule:
			if err := writeRootAtRule(out, style, t); err != nil {
				return err
			}
		case *css.Comment:
			if err := writeComment(out, style, t.Text); err != nil {
				return err
			}
			if _, err := io.WriteString(out, style.ItemSeparator()); err != nil {
				return err
			}
		case *css.Property:
			// properties surface at this level inside at-rules
			// like @font-face
			if err := writeProperty(out, style, t); err != nil {
				return err
			}
			if err := terminate(out, style, last); err != nil {
				return err
			}
		}
	}
	return nil
}

// terminate ends a declaration-like item, eliding the last semicolon
// when the style wants that.
func terminate(out io.Writer, style Style, last bool) error {
	if style.IncludeTrailingSemicolon() || !last {
		if _, err := io.WriteString(out, ";"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(out, style.ItemSeparator())
	return err
}

// filterRootItems drops comments when the style excludes them
func filterRootItems(style Style, items []css.Item) []css.Item {
	result := make([]css.Item, 0, len(items))
	for _, item := range items {
		if _, ok := item.(*css.Comment); ok && !style.IncludeComments() {
			continue
		}
		result = append(result, item)
	}
	return result
}

func allASCII(items []css.Item) bool {
	for _, item := range items {
		if !item.IsASCII() {
			return false
		}
	}
	return true
}
