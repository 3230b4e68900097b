// Copyright 2024 - 2026, the getprose contributors
// SPDX-License-Identifier: MIT

// Command prose_extract scans the Go sources of a module for translatable
// strings and writes them to a gettext .pot template.
//
// It records constant string arguments of the Tr/TrC/TrN/TrNC call family
// (both Locale and Registry forms), NewUserError calls, and every constant
// string converted to or assigned into a getprose.MsgKey. Output ordering is
// deterministic and the file embeds no timestamps, so identical sources
// produce byte-identical templates.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// key models a gettext entry identified by context, singular msgid, and
// optional plural msgid_plural. For non-plural entries, plural is empty.
type key struct {
	ctx    string
	id     string
	plural string
}

type ref struct {
	file string
	line int
}

// extractor holds the shared state for AST analysis within one package.
type extractor struct {
	refs      map[key][]ref
	root      string
	fset      *token.FileSet
	info      *types.Info
	prosePkgs map[string]struct{}
}

func main() {
	outPath := flag.String("o", "po/getprose.pot", "output file")
	version := flag.String("version", "dev", "Project-Id-Version to embed in the header")
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}

	pkgs, err := packages.Load(&packages.Config{Mode: packages.LoadAllSyntax, Tests: false}, "./...")
	if err != nil {
		log.Fatalf("failed to load packages: %v", err)
	}

	if packages.PrintErrors(pkgs) > 0 {
		log.Fatal("failed to load packages due to errors")
	}

	refs := extractRefs(pkgs, findProjectRoot(wd), findProsePkgPaths(pkgs))

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	if err := os.WriteFile(*outPath, []byte(writePot(refs, *version)), 0o644); err != nil {
		log.Fatalf("failed to write output file %s: %v", *outPath, err)
	}
}

// writePot renders all collected entries as a POT document. Entries are
// sorted by (context, msgid, plural) and references by (file, line), so the
// output is stable across runs on identical sources.
func writePot(refs map[key][]ref, version string) string {
	keys := make([]key, 0, len(refs))
	for k := range refs {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ctx != keys[j].ctx {
			return keys[i].ctx < keys[j].ctx
		}

		if keys[i].id != keys[j].id {
			return keys[i].id < keys[j].id
		}

		return keys[i].plural < keys[j].plural
	})

	var b strings.Builder
	writeHeader(&b, version)

	for i, k := range keys {
		rs := refs[k]
		sort.Slice(rs, func(i, j int) bool {
			if rs[i].file != rs[j].file {
				return rs[i].file < rs[j].file
			}

			return rs[i].line < rs[j].line
		})

		// After sorting, duplicates are adjacent; skip them while writing.
		fmt.Fprint(&b, "#:")

		var (
			lastFile string
			lastLine int
		)

		for _, r := range rs {
			if r.file != lastFile || r.line != lastLine {
				fmt.Fprintf(&b, " %s:%d", r.file, r.line)

				lastFile = r.file
				lastLine = r.line
			}
		}

		fmt.Fprintln(&b)

		if k.ctx != "" {
			fmt.Fprintf(&b, "msgctxt %q\n", k.ctx)
		}

		if k.plural != "" {
			fmt.Fprintf(&b, "msgid %q\n", k.id)
			fmt.Fprintf(&b, "msgid_plural %q\n", k.plural)
			fmt.Fprintf(&b, "msgstr[0] \"\"\n")
			fmt.Fprintf(&b, "msgstr[1] \"\"\n")
		} else {
			fmt.Fprintf(&b, "msgid %q\n", k.id)
			fmt.Fprintf(&b, "msgstr \"\"\n")
		}

		if i < len(keys)-1 {
			fmt.Fprintln(&b)
		}
	}

	return b.String()
}

// writeHeader emits the POT header. No creation date is embedded: the
// template must be byte-stable across otherwise-identical builds.
func writeHeader(b *strings.Builder, version string) {
	fmt.Fprintln(b, `msgid ""`)
	fmt.Fprintln(b, `msgstr ""`)
	fmt.Fprintf(b, "\"Project-Id-Version: getprose %s\\n\"\n", version)
	fmt.Fprintln(b, `"Language: en\n"`)
	fmt.Fprintln(b, `"MIME-Version: 1.0\n"`)
	fmt.Fprintln(b, `"Content-Type: text/plain; charset=UTF-8\n"`)
	fmt.Fprintln(b, `"Content-Transfer-Encoding: 8bit\n"`)
	fmt.Fprintln(b, `"Plural-Forms: nplurals=2; plural=(n != 1);\n"`)
	fmt.Fprintln(b)
}

// extractRefs walks every Go source file in pkgs looking for translation
// calls and MsgKey values.
func extractRefs(pkgs []*packages.Package, root string, prosePkgs map[string]struct{}) map[key][]ref {
	refs := map[key][]ref{}

	for _, p := range pkgs {
		if p.TypesInfo == nil {
			continue
		}

		e := &extractor{
			refs:      refs,
			root:      root,
			fset:      p.Fset,
			info:      p.TypesInfo,
			prosePkgs: prosePkgs,
		}

		for _, f := range p.Syntax {
			ast.Inspect(f, func(n ast.Node) bool {
				switch x := n.(type) {
				case *ast.CallExpr:
					e.handleCallExpr(x)
				case *ast.CompositeLit:
					e.handleCompositeLit(x)
				}

				return true
			})
		}
	}

	return refs
}

// findProsePkgPaths returns the set of package paths in this build that are
// the getprose package: named "getprose" and defining a MsgKey type whose
// underlying type is string. Matching by shape keeps the tool working in
// forks and vendored copies regardless of import path.
func findProsePkgPaths(pkgs []*packages.Package) map[string]struct{} {
	out := make(map[string]struct{})

	for _, p := range pkgs {
		if p.Name != "getprose" || p.Types == nil {
			continue
		}

		tn, ok := p.Types.Scope().Lookup("MsgKey").(*types.TypeName)
		if !ok {
			continue
		}

		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}

		if basic, ok := named.Underlying().(*types.Basic); ok && basic.Kind() == types.String {
			out[p.PkgPath] = struct{}{}
		}
	}

	return out
}

// constString evaluates expr to a constant string if possible. Handles
// string literals, const identifiers, and constant expressions like "a"+"b".
func constString(info *types.Info, expr ast.Expr) (string, bool) {
	tv, ok := info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(tv.Value), true
}

// namedInProse reports whether t is the named type name declared in the
// getprose package, looking through one level of alias.
func (e *extractor) namedInProse(t types.Type, name string) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	if _, ok := e.prosePkgs[obj.Pkg().Path()]; !ok {
		return false
	}

	return obj.Name() == name
}

func (e *extractor) isMsgKey(t types.Type) bool {
	return e.namedInProse(t, "MsgKey")
}

// handleCallExpr inspects function calls and type conversions.
func (e *extractor) handleCallExpr(x *ast.CallExpr) {
	// Type conversion, e.g. getprose.MsgKey("Hello").
	if tv, ok := e.info.Types[x.Fun]; ok && tv.IsType() {
		if len(x.Args) == 1 && e.isMsgKey(tv.Type) {
			if msg, ok := constString(e.info, x.Args[0]); ok {
				e.addRef(x.Args[0].Pos(), msg, "", "")
			}
		}

		return
	}

	// The Tr call family, as package functions or Locale/Registry methods.
	if sel, ok := x.Fun.(*ast.SelectorExpr); ok {
		if fn, ok := e.info.Uses[sel.Sel].(*types.Func); ok && fn.Pkg() != nil {
			if _, ok := e.prosePkgs[fn.Pkg().Path()]; ok && e.handleTrCall(fn, x) {
				return
			}
		}
	}

	// Any other call with getprose.MsgKey parameters: pick up implicit
	// conversions of constant string arguments.
	sig, ok := e.info.TypeOf(x.Fun).(*types.Signature)
	if !ok {
		return
	}

	params := sig.Params()

	n := params.Len()
	if n == 0 {
		return
	}

	variadic := sig.Variadic()
	last := n - 1

	for i, arg := range x.Args {
		var pt types.Type

		if variadic && i >= last {
			// With ...slice syntax, composite literal handling discovers the elements.
			if x.Ellipsis != token.NoPos {
				continue
			}

			pt = params.At(last).Type().(*types.Slice).Elem()
		} else {
			if i >= n {
				break
			}

			pt = params.At(i).Type()
		}

		if e.isMsgKey(pt) {
			if msg, ok := constString(e.info, arg); ok {
				e.addRef(arg.Pos(), msg, "", "")
			}
		}
	}
}

// handleTrCall records the msgids of a Tr-family call. It returns true when
// fn was one of the known translation entry points.
//
// Registry methods carry the target Locale as their first parameter, so the
// msgid positions shift by one relative to the Locale methods; the offset is
// derived from the signature rather than the receiver so package-level
// wrappers keep working.
func (e *extractor) handleTrCall(fn *types.Func, x *ast.CallExpr) bool {
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return false
	}

	off := 0
	if p := sig.Params(); p.Len() > 0 && e.namedInProse(p.At(0).Type(), "Locale") {
		off = 1
	}

	arg := func(i int) (string, bool) {
		if i >= len(x.Args) {
			return "", false
		}

		return constString(e.info, x.Args[i])
	}

	switch fn.Name() {
	case "Tr": // Tr(msgid) or Tr(loc, msgid)
		if msg, ok := arg(off); ok {
			e.addRef(x.Args[off].Pos(), msg, "", "")
		}

	case "TrC": // TrC(ctx, msgid)
		ctx, ok1 := arg(off)

		msg, ok2 := arg(off + 1)
		if ok1 && ok2 {
			e.addRef(x.Args[off+1].Pos(), msg, ctx, "")
		}

	case "TrN": // TrN(singular, plural, n)
		singular, ok1 := arg(off)

		plural, ok2 := arg(off + 1)
		if ok1 && ok2 {
			e.addRef(x.Args[off].Pos(), singular, "", plural)
		}

	case "TrNC": // TrNC(ctx, singular, plural, n)
		ctx, ok1 := arg(off)
		singular, ok2 := arg(off + 1)

		plural, ok3 := arg(off + 2)
		if ok1 && ok2 && ok3 {
			e.addRef(x.Args[off+1].Pos(), singular, ctx, plural)
		}

	case "NewUserError": // NewUserError(ctx, msgid, args)
		if msg, ok := arg(1); ok {
			e.addRef(x.Args[1].Pos(), msg, "", "")
		}

	default:
		return false
	}

	return true
}

// handleCompositeLit finds constant strings placed into MsgKey-typed slots
// of map, slice, array and struct literals.
func (e *extractor) handleCompositeLit(x *ast.CompositeLit) {
	tv, ok := e.info.Types[x]
	if !ok || tv.Type == nil {
		return
	}

	// Unwrap one level of pointer so &T{...} is treated as T{...}.
	t := tv.Type
	if p, ok := t.Underlying().(*types.Pointer); ok && p.Elem() != nil {
		t = p.Elem()
	}

	switch u := t.Underlying().(type) {
	case *types.Map:
		keyIsMsg := e.isMsgKey(u.Key())

		valIsMsg := e.isMsgKey(u.Elem())
		if !keyIsMsg && !valIsMsg {
			return
		}

		for _, elt := range x.Elts {
			kv, ok := elt.(*ast.KeyValueExpr)
			if !ok {
				continue
			}

			if keyIsMsg {
				if msg, ok := constString(e.info, kv.Key); ok {
					e.addRef(kv.Key.Pos(), msg, "", "")
				}
			}

			if valIsMsg {
				if msg, ok := constString(e.info, kv.Value); ok {
					e.addRef(kv.Value.Pos(), msg, "", "")
				}
			}
		}

	case *types.Slice:
		e.handleSequenceLit(x, u.Elem())

	case *types.Array:
		e.handleSequenceLit(x, u.Elem())

	case *types.Struct:
		e.handleStructLit(x, u)
	}
}

func (e *extractor) handleSequenceLit(x *ast.CompositeLit, elem types.Type) {
	if !e.isMsgKey(elem) {
		return
	}

	for _, elt := range x.Elts {
		if msg, ok := constString(e.info, elt); ok {
			e.addRef(elt.Pos(), msg, "", "")
		}
	}
}

func (e *extractor) handleStructLit(x *ast.CompositeLit, u *types.Struct) {
	fieldTypes := make(map[string]types.Type, u.NumFields())
	for i := range u.NumFields() {
		f := u.Field(i)

		fieldTypes[f.Name()] = f.Type()
	}

	for i, elt := range x.Elts {
		// Keyed field: FieldName: "..."
		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			if id, ok := kv.Key.(*ast.Ident); ok {
				if ft, ok := fieldTypes[id.Name]; ok && e.isMsgKey(ft) {
					if msg, ok := constString(e.info, kv.Value); ok {
						e.addRef(kv.Value.Pos(), msg, "", "")
					}
				}
			}

			continue
		}

		// Positional field: rely on declared field order.
		if i < u.NumFields() && e.isMsgKey(u.Field(i).Type()) {
			if msg, ok := constString(e.info, elt); ok {
				e.addRef(elt.Pos(), msg, "", "")
			}
		}
	}
}

// addRef records a reference to a msgid, normalising the file path relative
// to the project root.
func (e *extractor) addRef(pos token.Pos, msg, ctx, plural string) {
	p := e.fset.Position(pos)

	file := p.Filename
	if rel, err := filepath.Rel(e.root, file); err == nil {
		file = rel
	}

	file = filepath.ToSlash(file)

	k := key{ctx: ctx, id: msg, plural: plural}

	e.refs[k] = append(e.refs[k], ref{file: file, line: p.Line})
}

// findProjectRoot finds a stable root directory for source references:
// the git toplevel if available, else the nearest parent holding a go.mod,
// else the working directory itself.
func findProjectRoot(wd string) string {
	if out, err := gitToplevel(wd); err == nil && out != "" {
		return out
	}

	dir := filepath.Clean(wd)
	for {
		if fi, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !fi.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return wd
}

func gitToplevel(wd string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = wd

	out, err := cmd.Output()
	if err != nil {
		return "", err
	}

	return filepath.Clean(strings.TrimSpace(string(out))), nil
}
