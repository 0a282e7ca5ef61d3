package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/otengine/otengine"
	"github.com/npillmayer/otengine/otfeature"
	"github.com/pterm/pterm"
)

// otquery is a non-interactive counterpart to otcli: one subcommand,
// run once, result printed, exit. It introspects demo GSUB/GPOS
// fixtures modeled on otcli's (§A.1's Non-goals rule out a binary
// font loader for either CLI), reporting scripts, language systems,
// features and resolved lookups the way the teacher's otquery reports
// decoded binary table fields.
func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	engine := otengine.NewEngine(nil, nil, nil, demoGSUB(), demoGPOS())

	var err error
	switch os.Args[1] {
	case "scripts":
		err = printScripts(engine)
	case "langs":
		err = printLangs(engine, os.Args[2:])
	case "features":
		err = printFeatures(engine)
	case "lookups":
		err = printLookups(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: otquery <scripts|langs [script]|features|lookups <GSUB|GPOS> [script] [lang]>")
}

func printScripts(engine *otengine.Engine) error {
	rows := pterm.TableData{{"Script"}}
	for _, tag := range engine.ScriptList() {
		rows = append(rows, []string{string(tag)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func printLangs(engine *otengine.Engine, args []string) error {
	script := otdata.DFLT
	if len(args) > 0 {
		script = otdata.Tag(args[0])
	}
	rows := pterm.TableData{{"Language system"}}
	for _, tag := range engine.LanguageList(script) {
		rows = append(rows, []string{string(tag)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func printFeatures(engine *otengine.Engine) error {
	rows := pterm.TableData{{"Feature", "State"}}
	for _, tag := range engine.FeatureList() {
		on, err := engine.FeatureState(tag)
		state := "off"
		if err != nil {
			state = err.Error()
		} else if on {
			state = "on"
		}
		rows = append(rows, []string{string(tag), state})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func printLookups(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: lookups <GSUB|GPOS> [script] [lang]")
	}
	var table *otdata.Table
	switch strings.ToUpper(args[0]) {
	case "GSUB":
		table = demoGSUB()
	case "GPOS":
		table = demoGPOS()
	default:
		return fmt.Errorf("expected GSUB or GPOS, got %q", args[0])
	}
	script, lang := otdata.DFLT, otdata.Tag("")
	if len(args) > 1 {
		script = otdata.Tag(args[1])
	}
	if len(args) > 2 {
		lang = otdata.Tag(args[2])
	}

	resolved := otfeature.Resolve(table, script, lang)
	rows := pterm.TableData{{"Feature", "Lookup index", "Lookup type"}}
	for _, rl := range resolved {
		rows = append(rows, []string{string(rl.FeatureTag), strconv.Itoa(rl.LookupIndex), strconv.Itoa(rl.Lookup.Type)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
