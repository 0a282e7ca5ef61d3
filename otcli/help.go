package main

import "github.com/pterm/pterm"

var helpTopics = map[string]string{
	"shape": `shape <text>
    Run text through case conversion, GSUB and GPOS and print the
    resulting glyph records (name, ligature components, accumulated
    alternates, x/y advance).`,
	"feature": `feature <tag> on|off
    Enable or disable a GSUB/GPOS feature by its four-character tag,
    overriding whatever the demo table declares by default.`,
	"features": `features
    List every feature the demo GSUB/GPOS tables declare, and whether
    it is currently on or off.`,
	"script": `script <tag>
    Select the script tag used to resolve features for subsequent
    shape calls. Defaults to DFLT.`,
	"scripts": `scripts
    List the script tags the demo tables declare.`,
	"lang": `lang <tag>
    Select the language-system tag used to resolve features for
    subsequent shape calls. Leave unset to use a script's default
    language system.`,
	"langs": `langs [script]
    List the language-system tags declared under a script (the
    currently selected script if none is given).`,
	"rtl": `rtl on|off
    Toggle right-to-left processing: "on" reverses the glyph stream
    before GSUB runs.`,
	"trace": `trace on|off
    Toggle an XML processing trace, printed to stdout after each shape
    call.`,
	"quit": `quit
    Leave the REPL.`,
}

func helpCmd(intp *Intp, args []string) error {
	if len(args) == 0 {
		pterm.Println("commands: help shape feature features script scripts lang langs rtl trace quit")
		pterm.Println("type 'help <command>' for details")
		return nil
	}
	topic, ok := helpTopics[args[0]]
	if !ok {
		pterm.Error.Printf("no help for %q\n", args[0])
		return nil
	}
	pterm.Println(topic)
	return nil
}
