package defparser

import (
	"strconv"
	"strings"
)

// carry is the running "*" substitution state of one point list.
type carry struct {
	x, y int32
}

func (c *carry) resolve(x, y OptInt) Point {
	if x.Valid {
		c.x = x.Value
	}
	if y.Valid {
		c.y = y.Value
	}
	return Point{X: c.x, Y: c.y}
}

// coordinate parses an integer or "*".
func (p *parser) coordinate() (OptInt, error) {
	tok, err := p.peek()
	if err != nil {
		return OptInt{}, err
	}
	if tok.Kind == TokenStar {
		p.i++
		return OptInt{}, nil
	}
	n, err := p.integer()
	if err != nil {
		return OptInt{}, err
	}
	return Some(n), nil
}

// point parses "( x y )" with explicit coordinates.
func (p *parser) point() (Point, error) {
	if _, err := p.expect(TokenLParen); err != nil {
		return Point{}, err
	}
	x, err := p.integer()
	if err != nil {
		return Point{}, err
	}
	y, err := p.integer()
	if err != nil {
		return Point{}, err
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func (p *parser) rect() (Rect, error) {
	lo, err := p.point()
	if err != nil {
		return Rect{}, err
	}
	hi, err := p.point()
	if err != nil {
		return Rect{}, err
	}
	return Rect{Low: lo, High: hi}, nil
}

// pointList parses at least min consecutive points. A "*" coordinate
// repeats the previous value on its axis; the first point carries from
// (0, 0).
func (p *parser) pointList(min int) ([]Point, error) {
	var c carry
	var pts []Point
	for {
		ok, err := p.is(TokenLParen)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		p.i++
		x, err := p.coordinate()
		if err != nil {
			return nil, err
		}
		y, err := p.coordinate()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		pts = append(pts, c.resolve(x, y))
	}
	if len(pts) < min {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		return nil, unexpected("'(' starting point "+strconv.Itoa(len(pts)+1), tok)
	}
	return pts, nil
}

// routePoint parses "( x y [ext] )".
func (p *parser) routePoint(c *carry) (RoutePoint, error) {
	if _, err := p.expect(TokenLParen); err != nil {
		return RoutePoint{}, err
	}
	x, err := p.coordinate()
	if err != nil {
		return RoutePoint{}, err
	}
	y, err := p.coordinate()
	if err != nil {
		return RoutePoint{}, err
	}
	var ext OptInt
	ok, err := p.is(TokenInteger)
	if err != nil {
		return RoutePoint{}, err
	}
	if ok {
		n, err := p.integer()
		if err != nil {
			return RoutePoint{}, err
		}
		ext = Some(n)
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return RoutePoint{}, err
	}
	return RoutePoint{X: x, Y: y, Ext: ext, At: c.resolve(x, y)}, nil
}

// routeBody parses the points and vias of one wire segment. A word
// following a point names a via placed at that point and may carry an
// orientation. The body ends at the first token that continues neither,
// and at a wiring status keyword, which opens the next subnet wiring group.
func (p *parser) routeBody() (RouteBody, error) {
	var c carry
	var body RouteBody
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch {
		case tok.Kind == TokenLParen:
			pt, err := p.routePoint(&c)
			if err != nil {
				return nil, err
			}
			body = append(body, RouteElem{Point: pt})
		case tok.Kind == TokenWord && tok.Literal != "NEW" && !netWireAttrs.has(tok.Literal) && len(body) > 0 && !body[len(body)-1].IsVia():
			via, err := p.name("via name")
			if err != nil {
				return nil, err
			}
			last := &body[len(body)-1]
			last.Via = via
			isOrient, err := p.isOrient()
			if err != nil {
				return nil, err
			}
			if isOrient {
				o, err := p.orient()
				if err != nil {
					return nil, err
				}
				last.ViaOrient = &o
			}
		default:
			if len(body) == 0 {
				return nil, unexpected("'(' starting route", tok)
			}
			return body, nil
		}
	}
}

// isGeometry reports whether a RECT or POLYGON shape starts here.
func (p *parser) isGeometry() (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	return tok.Kind == TokenWord && (tok.Literal == "RECT" || tok.Literal == "POLYGON"), nil
}

// shape parses the body of a RECT or POLYGON shape once its keyword has
// been read.
func (p *parser) shape(kind GeometryKind) (Geometry, error) {
	if kind == GeometryRect {
		r, err := p.rect()
		if err != nil {
			return Geometry{}, err
		}
		return RectGeometry(r), nil
	}
	pts, err := p.pointList(3)
	if err != nil {
		return Geometry{}, err
	}
	return PolygonGeometry(pts), nil
}

// geometry parses "RECT pt pt" or "POLYGON pt pt pt ...".
func (p *parser) geometry() (Geometry, error) {
	tok, err := p.word("'RECT' or 'POLYGON'")
	if err != nil {
		return Geometry{}, err
	}
	switch tok.Literal {
	case "RECT":
		return p.shape(GeometryRect)
	case "POLYGON":
		return p.shape(GeometryPolygon)
	}
	return Geometry{}, unexpected("'RECT' or 'POLYGON'", tok)
}

// geometries parses at least min consecutive shapes.
func (p *parser) geometries(min int) ([]Geometry, error) {
	var out []Geometry
	for {
		ok, err := p.isGeometry()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		g, err := p.geometry()
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if len(out) < min {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		return nil, unexpected("'RECT' or 'POLYGON'", tok)
	}
	return out, nil
}

// FormatPoints renders pts as a DEF point list, writing "*" for every
// coordinate that equals the value carried on its axis.
func FormatPoints(pts []Point) string {
	var sb strings.Builder
	var c carry
	for i, pt := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("( ")
		sb.WriteString(formatCoord(pt.X, c.x))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(pt.Y, c.y))
		sb.WriteString(" )")
		c.resolve(Some(pt.X), Some(pt.Y))
	}
	return sb.String()
}

func formatCoord(v, carried int32) string {
	if v == carried {
		return "*"
	}
	return strconv.FormatInt(int64(v), 10)
}
