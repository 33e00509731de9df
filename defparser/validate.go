package defparser

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Severity grades a design check finding.
type Severity int

const (
	// Error marks a design that placement and routing tools will refuse,
	// such as a missing DESIGN name or an inverted DIEAREA.
	Error Severity = iota
	// Warning marks a design that loads but disagrees with itself, such as
	// a section count that does not match its members.
	Warning
	// Info is a note about the design.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is one finding of a design check. Section and Member locate
// the finding inside the DEF file; both are empty for header statements.
type Diagnostic struct {
	Rule     string // check name, e.g. "section_count"
	Severity Severity
	Message  string
	Section  string   // section keyword such as "COMPONENTS"
	Member   string   // component, net or pin name within Section
	Pos      Position // "- name" of the member, or the section keyword
	Hint     string   // edit that would clear the finding
}

// String renders the finding as "line N: SEVERITY rule: message [SECTION member] (hint: ...)".
func (d Diagnostic) String() string {
	var b strings.Builder
	if d.Pos.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", d.Pos.Line)
	}
	fmt.Fprintf(&b, "%s %s: %s", d.Severity, d.Rule, d.Message)
	if where := strings.TrimSpace(d.Section + " " + d.Member); where != "" {
		fmt.Fprintf(&b, " [%s]", where)
	}
	if d.Hint != "" {
		fmt.Fprintf(&b, " (hint: %s)", d.Hint)
	}
	return b.String()
}

// LintRule checks one property of a parsed design.
type LintRule interface {
	Name() string
	Apply(d *Design) []Diagnostic
}

// ValidationError carries the error-severity findings of ValidateOrError.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	lines := lo.Map(e.Diagnostics, func(d Diagnostic, _ int) string { return d.String() })
	return fmt.Sprintf("design check: %d error(s)\n  %s", len(e.Diagnostics), strings.Join(lines, "\n  "))
}

// Validate checks the header statements, section counts and member name
// uniqueness of d, then applies extraRules. Findings of every severity are
// returned in rule order.
func Validate(d *Design, extraRules ...LintRule) []Diagnostic {
	rules := append(builtInRules(), extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(d)...)
	}
	return diagnostics
}

// ValidateOrError is Validate that also fails with a *ValidationError when
// any finding is an Error.
func ValidateOrError(d *Design, extraRules ...LintRule) ([]Diagnostic, error) {
	diagnostics := Validate(d, extraRules...)

	errs := lo.Filter(diagnostics, func(d Diagnostic, _ int) bool { return d.Severity == Error })
	if len(errs) > 0 {
		return diagnostics, &ValidationError{Diagnostics: errs}
	}
	return diagnostics, nil
}

func builtInRules() []LintRule {
	return []LintRule{
		designNameRule{},
		unitsRule{},
		dieAreaRule{},
		sectionCountRule{},
		duplicateNameRule{},
	}
}

// SectionInfo summarizes one framed section of a design.
type SectionInfo struct {
	Name     string
	Declared int
	Parsed   int
	Pos      Position
}

func sectionInfo[T any](name string, s *Section[T]) (SectionInfo, bool) {
	if s == nil {
		return SectionInfo{}, false
	}
	return SectionInfo{Name: name, Declared: s.Declared, Parsed: len(s.Items), Pos: s.Pos}, true
}

// Sections lists the sections present in the design in canonical DEF order.
func (d *Design) Sections() []SectionInfo {
	var out []SectionInfo
	add := func(info SectionInfo, ok bool) {
		if ok {
			out = append(out, info)
		}
	}
	add(sectionInfo("VIAS", d.Vias))
	add(sectionInfo("STYLES", d.Styles))
	add(sectionInfo("NONDEFAULTRULES", d.NonDefaultRules))
	add(sectionInfo("REGIONS", d.Regions))
	add(sectionInfo("COMPONENTS", d.Components))
	add(sectionInfo("PINS", d.Pins))
	add(sectionInfo("PINPROPERTIES", d.PinProperties))
	add(sectionInfo("BLOCKAGES", d.Blockages))
	add(sectionInfo("SLOTS", d.Slots))
	add(sectionInfo("FILLS", d.Fills))
	add(sectionInfo("SPECIALNETS", d.SpecialNets))
	add(sectionInfo("NETS", d.Nets))
	add(sectionInfo("SCANCHAINS", d.ScanChains))
	add(sectionInfo("GROUPS", d.Groups))
	return out
}

// --- Rule implementations ---

type designNameRule struct{}

func (designNameRule) Name() string { return "design_name" }

func (designNameRule) Apply(d *Design) []Diagnostic {
	if d.Config.Name != "" {
		return nil
	}
	return []Diagnostic{{
		Rule:     "design_name",
		Severity: Error,
		Message:  "design has no name",
		Hint:     "add a DESIGN statement",
	}}
}

// validUnits are the database units per micron DEF allows.
var validUnits = []int32{100, 200, 400, 800, 1000, 2000, 4000, 8000, 10000, 20000}

type unitsRule struct{}

func (unitsRule) Name() string { return "units" }

func (unitsRule) Apply(d *Design) []Diagnostic {
	if d.Config.Units == nil {
		return []Diagnostic{{
			Rule:     "units",
			Severity: Warning,
			Message:  "design does not declare UNITS DISTANCE MICRONS",
			Hint:     "add UNITS DISTANCE MICRONS matching the technology LEF",
		}}
	}
	if !lo.Contains(validUnits, *d.Config.Units) {
		return []Diagnostic{{
			Rule:     "units",
			Severity: Warning,
			Message:  fmt.Sprintf("UNITS DISTANCE MICRONS %d is not a standard DEF database unit", *d.Config.Units),
		}}
	}
	return nil
}

type dieAreaRule struct{}

func (dieAreaRule) Name() string { return "die_area" }

func (dieAreaRule) Apply(d *Design) []Diagnostic {
	switch n := len(d.Config.DieArea); {
	case n == 0:
		return []Diagnostic{{
			Rule:     "die_area",
			Severity: Info,
			Message:  "design does not declare DIEAREA",
		}}
	case n == 2:
		ll, ur := d.Config.DieArea[0], d.Config.DieArea[1]
		if ll.X >= ur.X || ll.Y >= ur.Y {
			return []Diagnostic{{
				Rule:     "die_area",
				Severity: Warning,
				Message:  fmt.Sprintf("DIEAREA corners (%d %d) (%d %d) do not span a positive area", ll.X, ll.Y, ur.X, ur.Y),
				Hint:     "list the lower-left corner first",
			}}
		}
	}
	return nil
}

type sectionCountRule struct{}

func (sectionCountRule) Name() string { return "section_count" }

func (sectionCountRule) Apply(d *Design) []Diagnostic {
	var diags []Diagnostic
	for _, s := range d.Sections() {
		if s.Declared == s.Parsed {
			continue
		}
		diags = append(diags, Diagnostic{
			Rule:     "section_count",
			Severity: Warning,
			Message:  fmt.Sprintf("%s declares %d members, found %d", s.Name, s.Declared, s.Parsed),
			Section:  s.Name,
			Pos:      s.Pos,
			Hint:     fmt.Sprintf("change the count to %d", s.Parsed),
		})
	}
	return diags
}

type duplicateNameRule struct{}

func (duplicateNameRule) Name() string { return "duplicate_name" }

func (duplicateNameRule) Apply(d *Design) []Diagnostic {
	var diags []Diagnostic
	check := func(section string, names []string) {
		for _, name := range lo.FindDuplicates(names) {
			diags = append(diags, Diagnostic{
				Rule:     "duplicate_name",
				Severity: Error,
				Message:  fmt.Sprintf("%s defines %q more than once", section, name),
				Section:  section,
				Member:   name,
			})
		}
	}
	check("VIAS", memberNames(d.Vias, func(v Via) string { return v.Name }))
	check("NONDEFAULTRULES", memberNames(d.NonDefaultRules, func(r NonDefaultRule) string { return r.Name }))
	check("REGIONS", memberNames(d.Regions, func(r Region) string { return r.Name }))
	check("COMPONENTS", memberNames(d.Components, func(c Component) string { return c.Name }))
	check("PINS", memberNames(d.Pins, func(p Pin) string { return p.Name }))
	check("SPECIALNETS", memberNames(d.SpecialNets, func(n SpecialNet) string { return n.Name }))
	nets := lo.Reject(memberNames(d.Nets, func(n Net) string { return n.Name }), func(name string, _ int) bool {
		return name == "MUSTJOIN"
	})
	check("NETS", nets)
	check("SCANCHAINS", memberNames(d.ScanChains, func(s ScanChain) string { return s.Name }))
	check("GROUPS", memberNames(d.Groups, func(g Group) string { return g.Name }))
	return diags
}

func memberNames[T any](s *Section[T], name func(T) string) []string {
	if s == nil {
		return nil
	}
	return lo.Map(s.Items, func(item T, _ int) string { return name(item) })
}
