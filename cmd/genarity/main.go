// Command genarity writes the fixed-arity method adapters, Method0 through
// Method16 and Function0 through Function16.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dave/jennifer/jen"
)

const (
	pkgPath   = "github.com/chazu/garnet"
	rbsysPath = "github.com/chazu/garnet/rbsys"
	maxArity  = 16
)

func main() {
	out := flag.String("o", "method_arity.go", "output file")
	flag.Parse()

	f := jen.NewFilePathName(pkgPath, "garnet")
	f.HeaderComment("Code generated by genarity. DO NOT EDIT.")
	f.ImportName(rbsysPath, "rbsys")

	for n := 0; n <= maxArity; n++ {
		genMethod(f, n)
		genFunction(f, n)
	}

	if err := f.Save(*out); err != nil {
		fmt.Fprintf(os.Stderr, "genarity: %v\n", err)
		os.Exit(1)
	}
}

func argName(i int) string { return fmt.Sprintf("a%d", i) }
func argType(i int) string { return fmt.Sprintf("A%d", i) }

// typeParams is [S,] A1..An, R any.
func typeParams(n int, self bool) []jen.Code {
	var ids []jen.Code
	if self {
		ids = append(ids, jen.Id("S"))
	}
	for i := 1; i <= n; i++ {
		ids = append(ids, jen.Id(argType(i)))
	}
	ids = append(ids, jen.Id("R").Any())
	return ids
}

func fnType(n int, self bool) *jen.Statement {
	var params []jen.Code
	if self {
		params = append(params, jen.Id("S"))
	}
	for i := 1; i <= n; i++ {
		params = append(params, jen.Id(argType(i)))
	}
	return jen.Func().Params(params...).Parens(jen.List(jen.Id("R"), jen.Error()))
}

func genMethod(f *jen.File, n int) {
	name := fmt.Sprintf("Method%d", n)
	f.Commentf("%s adapts a method of %d argument(s) after self.", name, n)
	f.Func().Id(name).Types(typeParams(n, true)...).Params(jen.Id("fn").Add(fnType(n, true))).Op("*").Id("Method").Block(
		jen.Return(adapter(n, true)),
	)
}

func genFunction(f *jen.File, n int) {
	name := fmt.Sprintf("Function%d", n)
	f.Commentf("%s adapts a function of %d argument(s) that ignores self.", name, n)
	f.Func().Id(name).Types(typeParams(n, false)...).Params(jen.Id("fn").Add(fnType(n, false))).Op("*").Id("Method").Block(
		jen.Return(adapter(n, false)),
	)
}

func adapter(n int, self bool) jen.Code {
	var body []jen.Code
	var call []jen.Code
	selfParam := "_"
	if self {
		selfParam = "self"
		body = append(body,
			jen.List(jen.Id("s"), jen.Err()).Op(":=").Id("convertSelf").Types(jen.Id("S")).Call(jen.Id("r"), jen.Id("self")),
			ifErr(),
		)
		call = append(call, jen.Id("s"))
	}
	argv := "_"
	if n > 0 {
		argv = "argv"
	}
	for i := 1; i <= n; i++ {
		body = append(body,
			jen.List(jen.Id(argName(i)), jen.Err()).Op(":=").Id("convertArg").Types(jen.Id(argType(i))).Call(jen.Id("r"), jen.Id("argv"), jen.Lit(i-1)),
			ifErr(),
		)
		call = append(call, jen.Id(argName(i)))
	}
	body = append(body,
		jen.List(jen.Id("res"), jen.Err()).Op(":=").Id("fn").Call(call...),
		ifErr(),
		jen.Return(jen.Id("r").Dot("returnValue").Call(jen.Id("res"))),
	)

	guard := jen.Id("r").Dot("guard").Call(
		jen.Func().Params().Parens(jen.List(jen.Id("Value"), jen.Error())).Block(body...),
	)
	fixed := jen.Qual(rbsysPath, "FixedFunc").Call(
		jen.Func().Params(jen.Id(selfParam).Qual(rbsysPath, "VALUE"), jen.Id(argv).Index().Qual(rbsysPath, "VALUE")).Qual(rbsysPath, "VALUE").Block(
			jen.Return(guard),
		),
	)
	return jen.Op("&").Id("Method").Values(jen.Dict{
		jen.Id("arity"): jen.Lit(n),
		jen.Id("bind"): jen.Func().Params(jen.Id("r").Op("*").Id("Ruby")).Any().Block(
			jen.Return(fixed),
		),
	})
}

func ifErr() jen.Code {
	return jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Id("Nil"), jen.Err()))
}
