// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package termui

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'postfix.cli'.
func trace() tracing.Trace {
	return tracing.Select("postfix.cli")
}

// Formatter writes an item to w. It returns false if it does not know how
// to format the item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats strings, string lists, tables and errors.
type DefaultFormatter struct{}

// Format writes item to w.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	var err error
	switch t := item.(type) {
	case string:
		_, err = io.WriteString(w, "▶ "+t+"\n")
	case []string:
		_, err = io.WriteString(w, "▶ ["+strings.Join(t, ", ")+"]\n")
	case table.Writer:
		if t == nil {
			_, err = io.WriteString(w, "▶ (empty table)\n")
		} else {
			_, err = io.WriteString(w, t.Render()+"\n")
		}
	case error:
		_, err = io.WriteString(w, prtxt.FgRed.Sprint("✗ "+t.Error())+"\n")
	default:
		_, err = io.WriteString(w, fmt.Sprintf("▶ object of type %T\n", t))
	}
	return err == nil, err
}
