//go:generate go run github.com/dmarkham/enumer -type=ShellType -trimprefix=ShellType -transform=kebab
//go:generate go run github.com/dmarkham/enumer -type=OutputFormat -trimprefix=OutputFormat -transform=kebab
//go:generate go run github.com/dmarkham/enumer -type=InputFormat -trimprefix=InputFormat -transform=kebab
//go:generate go run github.com/dmarkham/enumer -type=DomainKind -trimprefix=DomainKind -transform=kebab
//go:generate go run github.com/dmarkham/enumer -type=Operation -trimprefix=Operation -transform=kebab
package calc

import (
	"github.com/sirupsen/logrus"
	"github.com/vipcxj/intervals/interval"
)

type ShellType int

const (
	ShellTypeAuto ShellType = iota
	ShellTypeSh
	ShellTypePowershell
	ShellTypeCmd
)

// OutputFormat controls how the fragments of a result are joined.
type OutputFormat int

const (
	OutputFormatComma OutputFormat = iota
	OutputFormatNewline
	OutputFormatSpace
	OutputFormatJson
)

// InputFormat controls how operation arguments are split into intervals.
// There is no comma form since bracket notation contains commas.
type InputFormat int

const (
	InputFormatArgs InputFormat = iota
	InputFormatJson
	InputFormatNewline
	InputFormatSpace
)

// DomainKind selects the value type arguments are parsed as.
type DomainKind int

const (
	DomainKindInt DomainKind = iota
	DomainKindFloat
)

type Operation int

const (
	OperationContains Operation = iota
	OperationComplement
	OperationIntersect
	OperationUnion
	OperationDifference
	OperationDescribe
	OperationUniverse
	OperationEmpty
	OperationNatural
)

// Options is the resolved configuration of one invocation.
type Options struct {
	Domain      DomainKind
	Format      OutputFormat
	Input       InputFormat
	Denominator interval.Denominator
	// Export names the shell variable the result is assigned to. The result
	// is printed as is when it is empty.
	Export  string
	Shell   ShellType
	Persist bool
	// Discrete rewrites integer results as closed intervals of the integers
	// they hold.
	Discrete bool
	// Check makes intersect print whether its arguments intersect instead
	// of the intersection itself.
	Check  bool
	Logger logrus.FieldLogger
}
