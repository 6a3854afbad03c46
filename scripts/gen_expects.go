// gen_expects writes a standalone wrapper function for each builder method of
// engineTestCase that takes arguments, so that test cases can be assembled
// from parts with engineTestCase.apply.
//
// Usage: go run scripts/gen_expects.go -- engine_test.go expects_test.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
	"text/template"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

const caseType = "engineTestCase"

var builderPrefixes = []string{"expect", "with"}

// builder is one generated wrapper, forwarding to method.
type builder struct {
	Method  string
	Wrapper string
	Params  string
	Args    string
}

var output = template.Must(template.New("expects").Parse(`package main

// @generated from {{.Source}}

//go:generate go run scripts/gen_expects.go -- {{.Source}} {{.Output}}
{{range .Builders}}
func {{.Wrapper}}({{.Params}}) func({{$.Type}}) {{$.Type}} {
	return func(et {{$.Type}}) {{$.Type}} {
		return et.{{.Method}}({{.Args}})
	}
}
{{end}}`))

func main() {
	timeout := flag.Duration("timeout", 5*time.Second, "time limit for formatting")
	flag.Parse()

	source, dest := "engine_test.go", "expects_test.go"
	if args := flag.Args(); len(args) > 0 {
		source = args[0]
		if len(args) > 1 {
			dest = args[1]
		}
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, source, nil, 0)
	if err != nil {
		log.Fatalln(err)
	}
	builders, err := collectBuilders(fset, file)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := writeFormatted(ctx, dest, func(w io.Writer) error {
		return output.Execute(w, struct {
			Source, Output, Type string
			Builders             []builder
		}{source, dest, caseType, builders})
	}); err != nil {
		log.Fatalln(err)
	}
}

// collectBuilders finds value receiver methods on caseType that return
// caseType, take at least one parameter, and are named with a builder prefix.
func collectBuilders(fset *token.FileSet, file *ast.File) (builders []builder, _ error) {
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil || len(fn.Type.Params.List) == 0 {
			continue
		}
		if !isIdent(fn.Recv.List[0].Type, caseType) || !returnsOnly(fn.Type, caseType) {
			continue
		}

		name := fn.Name.Name
		prefix := ""
		for _, p := range builderPrefixes {
			if strings.HasPrefix(name, p) && len(name) > len(p) {
				prefix = p
				break
			}
		}
		if prefix == "" {
			continue
		}

		var params, args []string
		for _, field := range fn.Type.Params.List {
			if len(field.Names) == 0 {
				return nil, fmt.Errorf("%v: unnamed parameter in %v", fset.Position(field.Pos()), name)
			}
			var typ bytes.Buffer
			if err := printer.Fprint(&typ, fset, field.Type); err != nil {
				return nil, err
			}
			_, variadic := field.Type.(*ast.Ellipsis)
			for _, ident := range field.Names {
				params = append(params, ident.Name+" "+typ.String())
				if variadic {
					args = append(args, ident.Name+"...")
				} else {
					args = append(args, ident.Name)
				}
			}
		}

		builders = append(builders, builder{
			Method:  name,
			Wrapper: prefix + "Engine" + name[len(prefix):],
			Params:  strings.Join(params, ", "),
			Args:    strings.Join(args, ", "),
		})
	}
	return builders, nil
}

func isIdent(expr ast.Expr, name string) bool {
	id, ok := expr.(*ast.Ident)
	return ok && id.Name == name
}

func returnsOnly(ft *ast.FuncType, name string) bool {
	return ft.Results != nil &&
		len(ft.Results.List) == 1 &&
		len(ft.Results.List[0].Names) <= 1 &&
		isIdent(ft.Results.List[0].Type, name)
}

// writeFormatted pipes whatever render writes through goimports into the
// named file.
func writeFormatted(ctx context.Context, name string, render func(w io.Writer) error) (rerr error) {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); rerr == nil {
			rerr = cerr
		}
	}()

	eg, ctx := errgroup.WithContext(ctx)
	pr, pw := io.Pipe()

	eg.Go(func() error {
		err := render(pw)
		pw.CloseWithError(err)
		return err
	})

	eg.Go(func() error {
		goimports := exec.CommandContext(ctx, "goimports")
		goimports.Stdin = pr
		goimports.Stdout = out
		goimports.Stderr = os.Stderr
		if err := goimports.Run(); err != nil {
			pr.CloseWithError(err)
			return fmt.Errorf("goimports failed: %w", err)
		}
		return nil
	})

	return eg.Wait()
}
