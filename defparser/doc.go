// Package defparser implements a parser for the Design Exchange Format (DEF).
//
// DEF is the textual interchange format used in integrated-circuit physical
// design to describe placed components, nets, routing, blockages, vias and
// floorplan metadata. The parser accepts a complete text buffer and returns
// typed records; callers own file I/O.
//
// The parser is a hand-rolled recursive-descent parser with four layers:
//
//   - Lexer: converts raw bytes into a token stream, stripping # comments
//     and whitespace.
//   - Primitives: identifiers, hierarchical names, numbers, points with the
//     "*" carry-forward rule, property values and keyword enumerations.
//   - Section grammars: one per DEF construct (COMPONENTS, NETS, VIAS, ...).
//   - Assembler: sequences sections in file order for a whole design.
//
// Usage:
//
//	design, err := defparser.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(design.Config.Name, len(design.Components.Items))
//
// Each section also has its own entry point (ParseComponents, ParseNets,
// ...) that expects a buffer holding exactly that section.
package defparser
