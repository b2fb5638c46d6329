package geometry

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
)

// argCount is the number of numeric arguments consumed per command repetition.
var argCount = map[byte]int{
	'M': 2, 'L': 2, 'T': 2,
	'H': 1, 'V': 1,
	'C': 6,
	'S': 4, 'Q': 4,
	'A': 7,
	'Z': 0,
}

// ParsePath reads path data d into closed rings, one per sub-path.
//
// Supported commands (upper case absolute, lower case relative):
//
//	M m  move to; further coordinate pairs are implicit line-tos
//	L l  line to
//	H h  horizontal line to
//	V v  vertical line to
//	C c, S s, Q q, T t, A a  curves and arcs; only the end point is kept
//	Z z  close the current sub-path
//
// Consecutive duplicate vertices are collapsed, every ring is closed, and rings
// with fewer than MinRingVertices vertices are dropped. An empty result with a
// nil error means the path was well formed but entirely degenerate.
func ParsePath(d string) ([]orb.Ring, error) {
	p := &pathParser{src: d}
	if err := p.run(); err != nil {
		return nil, err
	}

	out := make([]orb.Ring, 0, len(p.rings))
	for _, r := range p.rings {
		if r = normalizeRing(r); len(r) >= MinRingVertices {
			out = append(out, r)
		}
	}

	return out, nil
}

// pathParser holds the cursor state while scanning path data.
type pathParser struct {
	src   string
	pos   int
	cmd   byte // current command, 0 before the first and after Z
	cur   orb.Point
	start orb.Point
	ring  orb.Ring
	rings []orb.Ring
}

func (p *pathParser) run() error {
	for {
		p.skipSeparators()
		if p.pos >= len(p.src) {
			break
		}
		c := p.src[p.pos]
		if isCommand(c) {
			p.cmd = c
			p.pos++
		} else if p.cmd == 0 {
			return fmt.Errorf("%w: expected command at offset %d, found %q", ErrBadPath, p.pos, c)
		}
		if err := p.apply(); err != nil {
			return err
		}
	}
	p.flush()

	return nil
}

// apply consumes one repetition of the current command's arguments.
func (p *pathParser) apply() error {
	upper := p.cmd &^ 0x20
	rel := p.cmd != upper
	args := make([]float64, argCount[upper])
	for i := range args {
		var err error
		if upper == 'A' && (i == 3 || i == 4) {
			args[i], err = p.flag()
		} else {
			args[i], err = p.number()
		}
		if err != nil {
			return err
		}
	}

	var base orb.Point
	if rel {
		base = p.cur
	}

	switch upper {
	case 'M':
		p.flush()
		p.cur = orb.Point{base[0] + args[0], base[1] + args[1]}
		p.start = p.cur
		p.ring = orb.Ring{p.cur}
		// Subsequent pairs are implicit line-tos of the same relativity.
		p.cmd = 'L' | (p.cmd & 0x20)
		return nil
	case 'L', 'T':
		p.lineTo(orb.Point{base[0] + args[0], base[1] + args[1]})
	case 'H':
		p.lineTo(orb.Point{base[0] + args[0], p.cur[1]})
	case 'V':
		p.lineTo(orb.Point{p.cur[0], base[1] + args[0]})
	case 'C':
		p.lineTo(orb.Point{base[0] + args[4], base[1] + args[5]})
	case 'S', 'Q':
		p.lineTo(orb.Point{base[0] + args[2], base[1] + args[3]})
	case 'A':
		p.lineTo(orb.Point{base[0] + args[5], base[1] + args[6]})
	case 'Z':
		p.cur = p.start
		p.flush()
		p.cmd = 0
	}

	return nil
}

// lineTo appends pt, opening a new sub-path at the current point if none is open.
func (p *pathParser) lineTo(pt orb.Point) {
	if p.ring == nil {
		p.start = p.cur
		p.ring = orb.Ring{p.cur}
	}
	p.ring = append(p.ring, pt)
	p.cur = pt
}

// flush stores the open sub-path, if any.
func (p *pathParser) flush() {
	if len(p.ring) > 0 {
		p.rings = append(p.rings, p.ring)
	}
	p.ring = nil
}

func (p *pathParser) skipSeparators() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			p.pos++
		default:
			return
		}
	}
}

// number scans one floating point literal: [sign] digits [. digits] [e [sign] digits].
func (p *pathParser) number() (float64, error) {
	p.skipSeparators()
	begin := p.pos
	i := p.pos
	if i < len(p.src) && (p.src[i] == '+' || p.src[i] == '-') {
		i++
	}
	digits := 0
	for i < len(p.src) && isDigit(p.src[i]) {
		i++
		digits++
	}
	if i < len(p.src) && p.src[i] == '.' {
		i++
		for i < len(p.src) && isDigit(p.src[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: expected number at offset %d", ErrBadPath, begin)
	}
	if i < len(p.src) && (p.src[i] == 'e' || p.src[i] == 'E') {
		j := i + 1
		if j < len(p.src) && (p.src[j] == '+' || p.src[j] == '-') {
			j++
		}
		if j < len(p.src) && isDigit(p.src[j]) {
			for j < len(p.src) && isDigit(p.src[j]) {
				j++
			}
			i = j
		}
	}

	v, err := strconv.ParseFloat(p.src[begin:i], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadPath, err)
	}
	p.pos = i

	return v, nil
}

// flag scans an arc flag, which may be written without separators ("a1 1 0 01 5 5").
func (p *pathParser) flag() (float64, error) {
	p.skipSeparators()
	if p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '0':
			p.pos++
			return 0, nil
		case '1':
			p.pos++
			return 1, nil
		}
	}

	return 0, fmt.Errorf("%w: expected arc flag at offset %d", ErrBadPath, p.pos)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isCommand(c byte) bool {
	_, ok := argCount[c&^0x20]

	return ok && (c|0x20) >= 'a' && (c|0x20) <= 'z'
}

// normalizeRing collapses consecutive duplicates and closes the ring.
func normalizeRing(r orb.Ring) orb.Ring {
	out := make(orb.Ring, 0, len(r)+1)
	for _, pt := range r {
		if len(out) > 0 && out[len(out)-1].Equal(pt) {
			continue
		}
		out = append(out, pt)
	}
	// A ring made of one repeated point collapses to a single vertex here.
	if len(out) > 1 && out[0].Equal(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	if len(out) > 0 {
		out = append(out, out[0])
	}

	return out
}
