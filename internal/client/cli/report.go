package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophnotes/internal/common"
)

// report prints the toast line of r and tells whether it is a success.
func report[T any](w io.Writer, r common.Result[T]) bool {
	if !r.Success() {
		if r.Kind == common.KindUnauthenticated {
			fmt.Fprintf(w, "Error: %s (use 'login')\n", r.Message)
		} else {
			fmt.Fprintf(w, "Error: %s\n", r.Message)
		}
		return false
	}
	if r.Message != "" {
		fmt.Fprintln(w, r.Message)
	}
	return true
}
