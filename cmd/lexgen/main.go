/*
lexgen is a console utility translating a token definition file to a
serialized automaton, optionally accompanied by a standalone Go tokenizer
skeleton. Usage is

	lexgen [-o <dir>] [-d go [-p <name>]] [--minimize] <file>

-o <dir> defines the output directory, default is the directory of the input file;

-d go instructs lexgen to also generate a tokenizer skeleton embedding the automaton;

-p <name> defines the package name of the generated tokenizer, default is "main";

--minimize merges indistinguishable automaton states before writing;

<file> defines a token definition file compilable by langdef.Compile().
*/
package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/alecthomas/kong"

	"github.com/mkarev/lexgen/langdef"
)

//go:embed driver.go.tmpl
var driverTemplate string

var identRe = regexp.MustCompile("^[A-Za-z_][A-Za-z_0-9]*$")

type cli struct {
	Input    string `arg:"" help:"Token definition file name" type:"existingfile"`
	OutDir   string `short:"o" placeholder:"<dir>" help:"Output directory, default is the directory of the input file"`
	Driver   string `short:"d" enum:"none,go" default:"none" help:"Tokenizer skeleton to generate alongside the automaton (none, go)"`
	Package  string `short:"p" default:"main" help:"Package name of the generated tokenizer"`
	Minimize bool   `help:"Merge indistinguishable automaton states before writing"`
}

func main() {
	params := &cli{}
	kong.Parse(params)

	e := run(params)
	if e != nil {
		fmt.Println(e.Error())
		os.Exit(3)
	}
}

func run(params *cli) error {
	content, e := os.ReadFile(params.Input)
	if e != nil {
		return e
	}
	d, e := langdef.CompileBytes(params.Input, content)
	if e != nil {
		return e
	}
	if params.Minimize {
		d = langdef.Minimize(d)
	}

	outDir := params.OutDir
	if outDir == "" {
		outDir = filepath.Dir(params.Input)
	}
	base := strings.TrimSuffix(filepath.Base(params.Input), filepath.Ext(params.Input))
	automatonFile := base + ".json"

	doc, e := d.Marshal()
	if e != nil {
		return e
	}
	e = os.WriteFile(filepath.Join(outDir, automatonFile), doc, 0o666)
	if e != nil {
		return e
	}

	if params.Driver != "go" {
		return nil
	}
	driver, e := makeDriver(params.Package, automatonFile)
	if e != nil {
		return e
	}
	return os.WriteFile(filepath.Join(outDir, base+"_tokenizer.go"), driver, 0o666)
}

func makeDriver(packageName, automatonFile string) ([]byte, error) {
	if !identRe.MatchString(packageName) {
		return nil, fmt.Errorf("invalid package name: %s", packageName)
	}

	t, e := template.New("driver").Parse(driverTemplate)
	if e != nil {
		return nil, e
	}
	var buffer bytes.Buffer
	e = t.Execute(&buffer, map[string]string{
		"Package":       packageName,
		"AutomatonFile": automatonFile,
	})
	if e != nil {
		return nil, e
	}
	return buffer.Bytes(), nil
}
