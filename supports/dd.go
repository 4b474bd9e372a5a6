package supports

import (
	"encoding/json"
	"fmt"
	"io"
)

// Dump writes each argument to w as indented JSON, falling back to %+v.
func Dump(w io.Writer, arg ...any) error {
	for _, a := range arg {
		var err error
		if jsonBytes, jsonErr := json.MarshalIndent(a, "", "  "); jsonErr == nil {
			_, err = fmt.Fprintf(w, "%s\n", jsonBytes)
		} else {
			_, err = fmt.Fprintf(w, "%+v\n", a)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
