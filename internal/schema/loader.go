package schema

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"newtype-generator/internal/diagnostic"
	"newtype-generator/internal/meta"
	"newtype-generator/primitive"
)

// LoadFile loads and parses a YAML declaration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	return Parse(data, path)
}

// Parse parses YAML data into a File. The filename only feeds diagnostic
// spans and may be empty.
func Parse(data []byte, filename string) (*File, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	f := &File{Version: "1"}

	if root.Kind == 0 || len(root.Content) == 0 {
		// Empty file: legal, declares nothing.
		return f, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, diagnostic.Errorf(span(doc, filename), diagnostic.CodeSchema,
			"declaration file root must be a mapping")
	}

	for i := 0; i < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]

		switch key.Value {
		default:
			return nil, diagnostic.Errorf(span(key, filename), diagnostic.CodeUnknownOption,
				"unknown top-level key %q", key.Value)
		case "version":
			f.Version = value.Value
		case "package":
			f.Package = value.Value
		case "newtypes":
			if value.Kind != yaml.SequenceNode {
				return nil, diagnostic.Errorf(span(value, filename), diagnostic.CodeSchema,
					"newtypes must be a list")
			}

			for _, item := range value.Content {
				nt, err := decodeNewtype(item, filename)
				if err != nil {
					return nil, err
				}

				f.Newtypes = append(f.Newtypes, *nt)
			}
		}
	}

	return f, nil
}

func decodeNewtype(node *yaml.Node, filename string) (*Newtype, error) {
	if node.Kind != yaml.MappingNode {
		return nil, diagnostic.Errorf(span(node, filename), diagnostic.CodeSchema,
			"newtype declaration must be a mapping")
	}

	nt := &Newtype{}
	nt.Meta.Vis = meta.VisPublic

	for i := 0; i < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		switch key.Value {
		default:
			return nil, diagnostic.Errorf(span(key, filename), diagnostic.CodeUnknownOption,
				"unknown declaration key %q", key.Value)

		case "name":
			if err := expectScalar(value, filename, "name"); err != nil {
				return nil, err
			}

			nt.Meta.TypeName = meta.TypeName{Name: value.Value, Span: span(value, filename)}

		case "inner":
			if err := expectScalar(value, filename, "inner"); err != nil {
				return nil, err
			}

			kind := primitive.FromName(value.Value)
			if kind == 0 {
				return nil, diagnostic.Errorf(span(value, filename), diagnostic.CodeUnknownInner,
					"unknown inner type %q", value.Value)
			}

			nt.Meta.Inner = meta.At(kind, span(value, filename))

		case "vis":
			switch value.Value {
			case "public":
				nt.Meta.Vis = meta.VisPublic
			case "package":
				nt.Meta.Vis = meta.VisPackage
			default:
				return nil, diagnostic.Errorf(span(value, filename), diagnostic.CodeSchema,
					"vis must be public or package, got %q", value.Value)
			}

		case "doc":
			lines, err := decodeStringOrList(value, filename, "doc")
			if err != nil {
				return nil, err
			}

			nt.Meta.Doc = lines

		case "derive":
			if value.Kind != yaml.SequenceNode {
				return nil, diagnostic.Errorf(span(value, filename), diagnostic.CodeSchema,
					"derive must be a list of trait names")
			}

			for _, item := range value.Content {
				if err := expectScalar(item, filename, "derive entry"); err != nil {
					return nil, err
				}

				trait, ok := meta.ParseDeriveTrait(item.Value)
				if !ok {
					return nil, diagnostic.Errorf(span(item, filename), diagnostic.CodeUnknownTrait,
						"unknown derive trait %q", item.Value)
				}

				nt.Meta.DeriveTraits = append(nt.Meta.DeriveTraits, meta.At(trait, span(item, filename)))
			}

		case "sanitize":
			rules, err := decodeRules(value, filename)
			if err != nil {
				return nil, err
			}

			nt.Attrs.Sanitize = rules

		case "validate":
			rules, err := decodeRules(value, filename)
			if err != nil {
				return nil, err
			}

			nt.Attrs.Validate = rules

		case "default":
			if err := expectScalar(value, filename, "default"); err != nil {
				return nil, err
			}

			v := meta.At(value.Value, span(value, filename))
			nt.Attrs.Default = &v

		case "new_unchecked":
			if err := expectScalar(value, filename, "new_unchecked"); err != nil {
				return nil, err
			}

			enabled, err := strconv.ParseBool(value.Value)
			if err != nil {
				return nil, diagnostic.Errorf(span(value, filename), diagnostic.CodeSchema,
					"new_unchecked must be a boolean, got %q", value.Value)
			}

			nt.Attrs.NewUnchecked = meta.NewUnchecked{Enabled: enabled, Span: span(value, filename)}
		}
	}

	if nt.Meta.TypeName.Name == "" {
		return nil, diagnostic.Errorf(span(node, filename), diagnostic.CodeSchema,
			"newtype declaration is missing name")
	}

	if nt.Meta.Inner.Value == 0 {
		return nil, diagnostic.Errorf(span(node, filename), diagnostic.CodeSchema,
			"newtype %q is missing inner", nt.Meta.TypeName.Name)
	}

	return nt, nil
}

func decodeRules(node *yaml.Node, filename string) ([]Rule, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, diagnostic.Errorf(span(node, filename), diagnostic.CodeSchema,
			"expected a list of rules")
	}

	rules := make([]Rule, 0, len(node.Content))

	for _, item := range node.Content {
		rule, err := decodeRule(item, filename)
		if err != nil {
			return nil, err
		}

		rules = append(rules, rule)
	}

	return rules, nil
}

func decodeRule(node *yaml.Node, filename string) (Rule, error) {
	switch node.Kind {
	default:
		return Rule{}, diagnostic.Errorf(span(node, filename), diagnostic.CodeSchema,
			"rule must be a bare name or a single-key mapping")

	case yaml.ScalarNode:
		return Rule{Name: node.Value, Span: span(node, filename)}, nil

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return Rule{}, diagnostic.Errorf(span(node, filename), diagnostic.CodeSchema,
				"rule mapping must have exactly one key")
		}

		key, value := node.Content[0], node.Content[1]
		rule := Rule{Name: key.Value, Span: span(key, filename)}

		switch value.Kind {
		default:
			return Rule{}, diagnostic.Errorf(span(value, filename), diagnostic.CodeSchema,
				"rule %q arguments must be a scalar or a list of scalars", rule.Name)

		case yaml.ScalarNode:
			rule.Args = []string{value.Value}

		case yaml.SequenceNode:
			for _, arg := range value.Content {
				if arg.Kind != yaml.ScalarNode {
					return Rule{}, diagnostic.Errorf(span(arg, filename), diagnostic.CodeSchema,
						"rule %q arguments must be scalars", rule.Name)
				}

				rule.Args = append(rule.Args, arg.Value)
			}
		}

		return rule, nil
	}
}

func decodeStringOrList(node *yaml.Node, filename, what string) ([]string, error) {
	switch node.Kind {
	default:
		return nil, diagnostic.Errorf(span(node, filename), diagnostic.CodeSchema,
			"%s must be a string or a list of strings", what)

	case yaml.ScalarNode:
		return []string{node.Value}, nil

	case yaml.SequenceNode:
		lines := make([]string, 0, len(node.Content))

		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, diagnostic.Errorf(span(item, filename), diagnostic.CodeSchema,
					"%s must be a string or a list of strings", what)
			}

			lines = append(lines, item.Value)
		}

		return lines, nil
	}
}

func expectScalar(node *yaml.Node, filename, what string) *diagnostic.Error {
	if node.Kind != yaml.ScalarNode {
		return diagnostic.Errorf(span(node, filename), diagnostic.CodeSchema,
			"%s must be a scalar", what)
	}

	return nil
}

func span(node *yaml.Node, filename string) meta.Span {
	return meta.Span{File: filename, Line: node.Line, Column: node.Column}
}
