package writer

import (
	"fmt"
	"io"

	"github.com/titpetric/sassgo/css"
)

func writeProperty(out io.Writer, style Style, prop *css.Property) error {
	_, err := fmt.Fprintf(out, "%s%s:%s%s",
		style.Indentation(), prop.Name, style.PropertySeparator(),
		renderValue(style, prop.Value))
	if err != nil {
		return err
	}
	if prop.Important {
		_, err = io.WriteString(out, style.ImportantSeparator()+"!important")
	}
	return err
}

func writeComment(out io.Writer, style Style, text string) error {
	_, err := fmt.Fprintf(out, "%s/*%s*/", style.Indentation(), text)
	return err
}
