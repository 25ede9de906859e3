package vecpath

import (
	"fmt"
	"strconv"
)

// Parse builds a Path from an SVG path data string.
//
// The full SVG 1.1 path grammar is accepted: absolute and relative
// moves (M/m), lines (L/l, H/h, V/v), cubic curves (C/c) with smooth
// shorthand (S/s), quadratic curves (Q/q) with smooth shorthand (T/t),
// elliptical arcs (A/a) and closes (Z/z), with comma or whitespace
// separation and implicit command repetition.
func Parse(data string) (*Path, error) {
	p := parser{data: data, b: NewBuilder()}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.b.Path(), nil
}

type parser struct {
	data string
	pos  int
	b    *Builder
	cmd  byte // command in effect, 0 before the first

	// Control points of the most recent curve, reflected by the smooth
	// shorthands. Valid only while cubicOK/quadOK.
	cubicCtrl Point
	quadCtrl  Point
	cubicOK   bool
	quadOK    bool
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("vecpath: parse error at offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) run() error {
	p.skipSeparators()
	if p.pos >= len(p.data) {
		return nil
	}
	if c := p.data[p.pos]; c != 'M' && c != 'm' {
		return p.errorf("path must start with a moveto, got %q", c)
	}
	for {
		p.skipSeparators()
		if p.pos >= len(p.data) {
			return nil
		}
		c := p.data[p.pos]
		if isCommand(c) {
			p.pos++
			p.cmd = c
		} else {
			// A bare number repeats the previous command; a repeated
			// moveto continues as a lineto.
			switch p.cmd {
			case 'M':
				p.cmd = 'L'
			case 'm':
				p.cmd = 'l'
			case 'Z', 'z', 0:
				return p.errorf("expected command, got %q", c)
			}
		}
		if err := p.applyCommand(); err != nil {
			return err
		}
	}
}

func (p *parser) applyCommand() error {
	cur := p.b.CurrentPoint()
	rel := p.cmd >= 'a' // lowercase commands are relative

	switch p.cmd {
	case 'M', 'm':
		x, y, err := p.coordPair()
		if err != nil {
			return err
		}
		if rel {
			p.b.RelMoveTo(x, y)
		} else {
			p.b.MoveTo(x, y)
		}
		p.resetCtrl()

	case 'L', 'l':
		x, y, err := p.coordPair()
		if err != nil {
			return err
		}
		if rel {
			p.b.RelLineTo(x, y)
		} else {
			p.b.LineTo(x, y)
		}
		p.resetCtrl()

	case 'H', 'h':
		x, err := p.number()
		if err != nil {
			return err
		}
		if rel {
			x += cur.X
		}
		p.b.LineTo(x, cur.Y)
		p.resetCtrl()

	case 'V', 'v':
		y, err := p.number()
		if err != nil {
			return err
		}
		if rel {
			y += cur.Y
		}
		p.b.LineTo(cur.X, y)
		p.resetCtrl()

	case 'C', 'c', 'S', 's':
		var c1 Point
		if p.cmd == 'C' || p.cmd == 'c' {
			x, y, err := p.coordPair()
			if err != nil {
				return err
			}
			c1 = Pt(x, y)
			if rel {
				c1 = c1.Add(cur)
			}
		} else if p.cubicOK {
			// Reflect the previous cubic's second control point.
			c1 = cur.Mul(2).Sub(p.cubicCtrl)
		} else {
			c1 = cur
		}
		c2x, c2y, err := p.coordPair()
		if err != nil {
			return err
		}
		x, y, err := p.coordPair()
		if err != nil {
			return err
		}
		c2, end := Pt(c2x, c2y), Pt(x, y)
		if rel {
			c2 = c2.Add(cur)
			end = end.Add(cur)
		}
		p.b.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
		p.resetCtrl()
		p.cubicCtrl, p.cubicOK = c2, true

	case 'Q', 'q', 'T', 't':
		var c Point
		if p.cmd == 'Q' || p.cmd == 'q' {
			x, y, err := p.coordPair()
			if err != nil {
				return err
			}
			c = Pt(x, y)
			if rel {
				c = c.Add(cur)
			}
		} else if p.quadOK {
			c = cur.Mul(2).Sub(p.quadCtrl)
		} else {
			c = cur
		}
		x, y, err := p.coordPair()
		if err != nil {
			return err
		}
		end := Pt(x, y)
		if rel {
			end = end.Add(cur)
		}
		p.b.QuadTo(c.X, c.Y, end.X, end.Y)
		p.resetCtrl()
		p.quadCtrl, p.quadOK = c, true

	case 'A', 'a':
		rx, err := p.number()
		if err != nil {
			return err
		}
		ry, err := p.number()
		if err != nil {
			return err
		}
		rot, err := p.number()
		if err != nil {
			return err
		}
		largeArc, err := p.flag()
		if err != nil {
			return err
		}
		sweep, err := p.flag()
		if err != nil {
			return err
		}
		x, y, err := p.coordPair()
		if err != nil {
			return err
		}
		if rel {
			x += cur.X
			y += cur.Y
		}
		p.b.SVGArcTo(rx, ry, rot, largeArc, sweep, x, y)
		p.resetCtrl()

	case 'Z', 'z':
		p.b.Close()
		p.resetCtrl()

	default:
		return p.errorf("unknown command %q", p.cmd)
	}
	return nil
}

func (p *parser) resetCtrl() {
	p.cubicOK = false
	p.quadOK = false
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func (p *parser) skipSeparators() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r', ',':
			p.pos++
		default:
			return
		}
	}
}

// number scans one floating point number, including sign, fraction and
// exponent forms like "-.5" and "1e-3".
func (p *parser) number() (float64, error) {
	p.skipSeparators()
	start := p.pos
	if p.pos < len(p.data) && (p.data[p.pos] == '+' || p.data[p.pos] == '-') {
		p.pos++
	}
	digits := 0
	for p.pos < len(p.data) && isDigit(p.data[p.pos]) {
		p.pos++
		digits++
	}
	if p.pos < len(p.data) && p.data[p.pos] == '.' {
		p.pos++
		for p.pos < len(p.data) && isDigit(p.data[p.pos]) {
			p.pos++
			digits++
		}
	}
	if digits == 0 {
		p.pos = start
		return 0, p.errorf("expected number")
	}
	if p.pos < len(p.data) && (p.data[p.pos] == 'e' || p.data[p.pos] == 'E') {
		mark := p.pos
		p.pos++
		if p.pos < len(p.data) && (p.data[p.pos] == '+' || p.data[p.pos] == '-') {
			p.pos++
		}
		expDigits := 0
		for p.pos < len(p.data) && isDigit(p.data[p.pos]) {
			p.pos++
			expDigits++
		}
		if expDigits == 0 {
			p.pos = mark // not an exponent after all
		}
	}
	v, err := strconv.ParseFloat(p.data[start:p.pos], 64)
	if err != nil {
		return 0, p.errorf("malformed number %q", p.data[start:p.pos])
	}
	return v, nil
}

// flag scans a single arc flag, which may be written compactly without
// separation from the following coordinate ("a1 1 0 011 0").
func (p *parser) flag() (bool, error) {
	p.skipSeparators()
	if p.pos >= len(p.data) {
		return false, p.errorf("expected arc flag")
	}
	switch p.data[p.pos] {
	case '0':
		p.pos++
		return false, nil
	case '1':
		p.pos++
		return true, nil
	}
	return false, p.errorf("arc flag must be 0 or 1, got %q", p.data[p.pos])
}

func (p *parser) coordPair() (x, y float64, err error) {
	x, err = p.number()
	if err != nil {
		return 0, 0, err
	}
	y, err = p.number()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
