package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type DefaultKind int

const (
	DefaultLiteral DefaultKind = iota
	DefaultList
	DefaultFunction
)

type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBool
)

// Literal keeps the source text of a value so numbers are reproduced exactly.
type Literal struct {
	Kind  LiteralKind
	Value string
}

// DefaultSpec is the @default(...) of a field: a literal, a list of literals,
// or a function call such as now(), autoincrement() or dbgenerated("...").
type DefaultSpec struct {
	Kind     DefaultKind
	Literal  Literal
	List     []Literal
	Function string
	Args     []Literal
}

func StringDefault(s string) *DefaultSpec {
	return &DefaultSpec{Kind: DefaultLiteral, Literal: Literal{Kind: LiteralString, Value: s}}
}

func NumberDefault(n string) *DefaultSpec {
	return &DefaultSpec{Kind: DefaultLiteral, Literal: Literal{Kind: LiteralNumber, Value: n}}
}

func BoolDefault(b bool) *DefaultSpec {
	return &DefaultSpec{Kind: DefaultLiteral, Literal: Literal{Kind: LiteralBool, Value: fmt.Sprint(b)}}
}

func FunctionDefault(name string, args ...Literal) *DefaultSpec {
	return &DefaultSpec{Kind: DefaultFunction, Function: name, Args: args}
}

func (d DefaultSpec) clone() DefaultSpec {
	d.List = append([]Literal(nil), d.List...)
	d.Args = append([]Literal(nil), d.Args...)
	return d
}

func (d *DefaultSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		lit, err := literalFromNode(node)
		if err != nil {
			return err
		}
		*d = DefaultSpec{Kind: DefaultLiteral, Literal: lit}
	case yaml.SequenceNode:
		list := make([]Literal, 0, len(node.Content))
		for _, item := range node.Content {
			lit, err := literalFromNode(item)
			if err != nil {
				return err
			}
			list = append(list, lit)
		}
		*d = DefaultSpec{Kind: DefaultList, List: list}
	case yaml.MappingNode:
		var fn struct {
			Name string      `yaml:"name"`
			Args []yaml.Node `yaml:"args"`
		}
		if err := node.Decode(&fn); err != nil {
			return fmt.Errorf("decoding default function: %w", err)
		}
		args := make([]Literal, 0, len(fn.Args))
		for i := range fn.Args {
			lit, err := literalFromNode(&fn.Args[i])
			if err != nil {
				return fmt.Errorf("default %s(): %w", fn.Name, err)
			}
			args = append(args, lit)
		}
		*d = DefaultSpec{Kind: DefaultFunction, Function: fn.Name, Args: args}
	default:
		return fmt.Errorf("line %d: unsupported default value", node.Line)
	}
	return nil
}

func literalFromNode(node *yaml.Node) (Literal, error) {
	if node.Kind != yaml.ScalarNode {
		return Literal{}, fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
		return Literal{Kind: LiteralNumber, Value: node.Value}, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Literal{}, err
		}
		return Literal{Kind: LiteralBool, Value: fmt.Sprint(b)}, nil
	default:
		return Literal{Kind: LiteralString, Value: node.Value}, nil
	}
}

// UnmarshalYAML accepts the DMMF form ["VarChar", ["255"]].
func (n *NativeType) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) == 0 {
		return fmt.Errorf("line %d: native type must be a [name, args] pair", node.Line)
	}
	if err := node.Content[0].Decode(&n.Name); err != nil {
		return err
	}
	n.Args = nil
	if len(node.Content) > 1 {
		if err := node.Content[1].Decode(&n.Args); err != nil {
			return fmt.Errorf("native type %s arguments: %w", n.Name, err)
		}
	}
	return nil
}
