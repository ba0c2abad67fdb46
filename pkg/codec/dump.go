package codec

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Dump returns a human-readable tree of the value, one line per value.
func Dump(v Value) string {
	var buf bytes.Buffer
	_ = DumpTo(&buf, v)
	return buf.String()
}

// DumpTo writes the tree of the value to w.
func DumpTo(w io.Writer, v Value) error {
	return dump(w, v, 0)
}

// DumpContainerTo writes every value of the container to w.
func DumpContainerTo(w io.Writer, c Container) error {
	if _, err := fmt.Fprintf(w, "container [%d]\n", len(c)); err != nil {
		return err
	}
	for i := range c {
		if err := dump(w, c[i], 1); err != nil {
			return err
		}
	}
	return nil
}

func dump(w io.Writer, v Value, level int) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", level), v); err != nil {
		return err
	}
	var children []Value
	switch p := v.payload().(type) {
	case Container:
		children = p
	case Array:
		children = p.values
	}
	for i := range children {
		if err := dump(w, children[i], level+1); err != nil {
			return err
		}
	}
	return nil
}
