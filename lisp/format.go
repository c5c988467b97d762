package lisp

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print returns the source-code representation of v.
func Print(v LVal) string {
	var buf strings.Builder
	Format(&buf, v)
	return buf.String()
}

// Format writes a source-code representation of v to w.  Format returns the
// number of bytes written and the first write error encountered.
func Format(w io.Writer, v LVal) (int, error) {
	p := &printer{w: w}
	p.format(v)
	return p.n, p.err
}

// FormatNumber renders x with up to 12 significant digits.
func FormatNumber(x float64) string {
	return strconv.FormatFloat(x, 'g', 12, 64)
}

// printer stops writing after the first error and remembers it.
type printer struct {
	w   io.Writer
	n   int
	err error
}

func (p *printer) writeString(s string) {
	if p.err != nil {
		return
	}
	var n int
	n, p.err = io.WriteString(p.w, s)
	p.n += n
}

func (p *printer) format(v LVal) {
	switch v.Type {
	case LNil:
		p.writeString("()")
	case LSymbol:
		id, _ := GetSymbol(v)
		p.writeString(id.String())
	case LNumber:
		x, _ := GetNumber(v)
		p.writeString(FormatNumber(x))
	case LBool:
		if IsTrue(v) {
			p.writeString("#t")
		} else {
			p.writeString("#f")
		}
	case LCons:
		p.formatCons(consVal(v))
	case LProc:
		proc, _ := GetProc(v)
		if proc.IsPrimitive() {
			p.writeString("#<procedure " + proc.Name() + ">")
		} else {
			p.writeString("#<procedure>")
		}
	default:
		p.writeString(fmt.Sprintf("#<invalid %d>", v.Type))
	}
}

func (p *printer) formatCons(v ConsVal) {
	p.writeString("(")
	for {
		p.format(v.CAR())
		cdr := v.CDR()
		if IsNil(cdr) {
			break
		}
		if cdr.Type != LCons {
			p.writeString(" . ")
			p.format(cdr)
			break
		}
		p.writeString(" ")
		v = consVal(cdr)
	}
	p.writeString(")")
}
