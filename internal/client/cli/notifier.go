package cli

import (
	"fmt"
	"io"
)

// toastPrinter renders store notifications as single lines.
type toastPrinter struct {
	w io.Writer
}

func (p toastPrinter) Notify(title, description string, isError bool) {
	marker := "*"
	if isError {
		marker = "!"
	}
	if description == "" {
		fmt.Fprintf(p.w, "%s %s\n", marker, title)
		return
	}
	fmt.Fprintf(p.w, "%s %s: %s\n", marker, title, description)
}
