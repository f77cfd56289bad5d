package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"gopkg.lisproto.org/protoc-gen-lisp/internal/compiler"
	"gopkg.lisproto.org/protoc-gen-lisp/internal/fs"
	"gopkg.lisproto.org/protoc-gen-lisp/internal/idl"
	"gopkg.lisproto.org/protoc-gen-lisp/internal/plugin"
)

type opts struct {
	Roots  []string
	Output string
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	op := &opts{}
	flags := pflag.NewFlagSet("protoc-gen-lisp", pflag.PanicOnError)
	flags.StringSliceVar(&op.Roots, "root", []string{"."}, "Root search paths for imports.")
	flags.StringVar(&op.Output, "output", ".", "Output directory or - for STDOUT.")
	_ = flags.Parse(os.Args[1:])
	targets := flags.Args()

	if len(targets) == 0 {
		// No targets means protoc invoked this binary as a plugin with a
		// serialized CodeGeneratorRequest on stdin.
		if err := plugin.Run(os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		return
	}

	output, absErr := filepath.Abs(op.Output)
	if absErr != nil {
		panic(absErr)
	}

	f, err := compiler.NewDefaultFS(os.LookupEnv)
	if err != nil {
		panic(err)
	}

	mf := make(fs.FileSystemMulti, 0, len(op.Roots)+1)
	for _, root := range op.Roots {
		absRoot, errAbs := filepath.Abs(root)
		if errAbs != nil {
			panic(errAbs.Error())
		}
		rf, err := fs.NewFileSystemLocal(absRoot)
		if err != nil {
			panic(err.Error())
		}
		mf = append(mf, rf)
	}
	mf = append(mf, f)

	c, err := compiler.New(
		compiler.OptionWithLookupEnv(os.LookupEnv),
		compiler.OptionWithFS(mf),
	)
	if err != nil {
		panic(err)
	}

	out, err := c.Compile(ctx, &idl.CompileRequest{
		Files: targets,
	})
	if err != nil {
		var me compiler.MultiException
		if errors.As(err, &me) {
			for _, err := range me {
				fmt.Fprintln(os.Stderr, err.Error())
			}
			os.Exit(1)
		}
		panic(err)
	}

	// A file that fails generation is reported and skipped; the rest of the
	// batch still generates.
	failed := false
	for _, file := range out.Files {
		content, err := plugin.Generate(file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			failed = true
			continue
		}
		if op.Output == "-" {
			fmt.Print(content)
			continue
		}
		name := filepath.Join(output, plugin.OutputName(file.GetName()))
		if err = os.MkdirAll(filepath.Dir(name), 0770); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		if err = os.WriteFile(name, []byte(content), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
	}
	if failed {
		os.Exit(1)
	}
}
