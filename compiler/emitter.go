package compiler

import (
	"fmt"
	"strings"
)

// GeneratedFile is one emitted C# source file, keyed by its file name
// relative to the output directory.
type GeneratedFile struct {
	Name    string
	Content string
}

// Emit projects intermediate code into C# source text: one file per class
// plus a single Main.cs holding every declaration, in the order the
// intermediate code generator produced them. The emitter is
// purely mechanical: it carries no logic beyond text projection.
func Emit(code *IntermediateCode) []GeneratedFile {
	files := make([]GeneratedFile, 0, len(code.Classes)+1)
	for _, c := range code.Classes {
		files = append(files, GeneratedFile{Name: c.Name + ".cs", Content: emitClass(c)})
	}
	files = append(files, GeneratedFile{Name: "Main.cs", Content: emitMain(code.Declarations)})
	return files
}

func emitClass(c Class) string {
	var b strings.Builder
	b.WriteString("using System;\n\n")
	fmt.Fprintf(&b, "public class %s\n{\n", c.Name)
	for _, a := range c.Attrs {
		fmt.Fprintf(&b, "    public %s %s { get; set; }\n", a.TypeTag, titleCase(a.Name))
	}
	b.WriteString("\n")

	params := make([]string, len(c.Attrs))
	for i, a := range c.Attrs {
		params[i] = fmt.Sprintf("%s %s", a.TypeTag, camelParam(a.Name))
	}
	fmt.Fprintf(&b, "    public %s(%s)\n    {\n", c.Name, strings.Join(params, ", "))
	for _, a := range c.Attrs {
		fmt.Fprintf(&b, "        this.%s = %s;\n", titleCase(a.Name), camelParam(a.Name))
	}
	b.WriteString("    }\n\n")

	for _, sig := range []string{
		"public override bool Equals(object obj)",
		"public override int GetHashCode()",
		"public override string ToString()",
	} {
		fmt.Fprintf(&b, "    %s\n    {\n        throw new NotImplementedException();\n    }\n\n", sig)
	}
	b.WriteString("    protected override void Finalize()\n    {\n        throw new NotImplementedException();\n    }\n\n")
	b.WriteString("    protected override object MemberwiseClone()\n    {\n        throw new NotImplementedException();\n    }\n")
	b.WriteString("}\n")
	return b.String()
}

func emitMain(decls []Declaration) string {
	var b strings.Builder
	b.WriteString("using System;\nusing System.Collections.Generic;\n\n")
	b.WriteString("public class Program\n{\n    public static void Main(string[] args)\n    {\n")
	for _, d := range decls {
		if d.IsList {
			fmt.Fprintf(&b, "        List<%s> %s = new List<%s>();\n", d.ClassName, d.InstanceName, d.ClassName)
			for _, a := range d.Attrs {
				fmt.Fprintf(&b, "        %s.add(%s);\n", d.InstanceName, a.Ref)
			}
			continue
		}
		args := make([]string, len(d.Attrs))
		for i, a := range d.Attrs {
			switch {
			case a.IsRef && a.Ref != "":
				args[i] = a.Ref
			case !a.IsRef:
				args[i] = fmt.Sprintf("%q", a.Value)
			default:
				args[i] = "null"
			}
		}
		fmt.Fprintf(&b, "        %s %s = new %s(%s);\n", d.ClassName, d.InstanceName, d.ClassName, strings.Join(args, ", "))
	}
	b.WriteString("    }\n}\n")
	return b.String()
}

// titleCase upper-cases an attribute's first rune to turn an XML attribute
// name into a C# property name, leaving the rest untouched.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}

// camelParam lower-cases an attribute's first rune to turn it into a
// constructor parameter name that differs from the TitleCase property it is
// assigned to whenever the name starts with a letter; a name starting with
// '_' comes out the same from both helpers.
func camelParam(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'A' && r[0] <= 'Z' {
		r[0] += 'a' - 'A'
	}
	return string(r)
}
