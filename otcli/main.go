package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/otengine/otengine"
	"github.com/npillmayer/otengine/otlog"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/bidi"
)

// tracer traces with key 'otengine.cli'
func tracer() tracing.Trace {
	return tracing.Select("otengine.cli")
}

func main() {
	initDisplay()

	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.otengine.cli": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().SetTraceLevel(tracing.LevelInfo)

	pterm.Info.Println("Welcome to the OpenType layout engine CLI")
	repl, err := readline.New("otengine > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	intp := newInterpreter(repl)
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is the REPL's interpreter state: the demo engine plus whatever
// script/language/direction/trace settings the user has dialed in.
type Intp struct {
	repl      *readline.Instance
	engine    *otengine.Engine
	script    otdata.Tag
	langSys   otdata.Tag
	direction bidi.Direction
	trace     bool
}

func newInterpreter(repl *readline.Instance) *Intp {
	engine := otengine.NewEngine(asciiCMAP{}, asciiReverseCMAP{}, nil, demoGSUB(), demoGPOS())
	return &Intp{repl: repl, engine: engine, script: otdata.DFLT}
}

func (intp *Intp) prompt() string {
	dir := "ltr"
	if intp.direction == bidi.RightToLeft {
		dir = "rtl"
	}
	return fmt.Sprintf("(%s/%s) > ", intp.script, dir)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		intp.repl.SetPrompt(intp.prompt())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	fn, ok := commands[cmd]
	if !ok {
		pterm.Error.Printf("unknown command: %s (try 'help')\n", cmd)
		return false
	}
	if err := fn(intp, args); err != nil {
		pterm.Error.Println(err)
	}
	return cmd == "quit"
}

var commands = map[string]func(*Intp, []string) error{
	"quit":     quitCmd,
	"help":     helpCmd,
	"scripts":  scriptsCmd,
	"langs":    langsCmd,
	"features": featuresCmd,
	"feature":  featureCmd,
	"script":   scriptCmd,
	"lang":     langCmd,
	"rtl":      rtlCmd,
	"trace":    traceCmd,
	"shape":    shapeCmd,
}

func quitCmd(intp *Intp, args []string) error {
	pterm.Println("Goodbye!")
	return nil
}

func scriptsCmd(intp *Intp, args []string) error {
	tags := intp.engine.ScriptList()
	rows := pterm.TableData{{"Script"}}
	for _, t := range tags {
		rows = append(rows, []string{string(t)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func langsCmd(intp *Intp, args []string) error {
	script := intp.script
	if len(args) > 0 {
		script = otdata.Tag(args[0])
	}
	tags := intp.engine.LanguageList(script)
	rows := pterm.TableData{{"Language system", "Script"}}
	for _, t := range tags {
		rows = append(rows, []string{string(t), string(script)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func featuresCmd(intp *Intp, args []string) error {
	rows := pterm.TableData{{"Feature", "State"}}
	for _, tag := range intp.engine.FeatureList() {
		on, err := intp.engine.FeatureState(tag)
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

func featureCmd(intp *Intp, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: feature <tag> on|off")
	}
	on := strings.EqualFold(args[1], "on")
	if !on && !strings.EqualFold(args[1], "off") {
		return fmt.Errorf("expected on|off, got %q", args[1])
	}
	intp.engine.SetFeatureState(otdata.Tag(args[0]), on)
	return nil
}

func scriptCmd(intp *Intp, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: script <tag>")
	}
	intp.script = otdata.Tag(args[0])
	return nil
}

func langCmd(intp *Intp, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: lang <tag>")
	}
	intp.langSys = otdata.Tag(args[0])
	return nil
}

func rtlCmd(intp *Intp, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: rtl on|off")
	}
	if strings.EqualFold(args[0], "on") {
		intp.direction = bidi.RightToLeft
	} else {
		intp.direction = bidi.LeftToRight
	}
	return nil
}

func traceCmd(intp *Intp, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: trace on|off")
	}
	intp.trace = strings.EqualFold(args[0], "on")
	return nil
}

func shapeCmd(intp *Intp, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: shape <text>")
	}
	text := strings.Join(args, " ")

	var opts []otengine.Option
	var logger *otlog.XMLLogger
	if intp.trace {
		logger = otlog.NewXMLLogger(os.Stdout)
		opts = append(opts, otengine.WithLogger(logger))
	}
	records, err := intp.engine.Process(text, intp.script, intp.langSys, intp.direction, opts...)
	if err != nil {
		return err
	}
	if logger != nil {
		if err := logger.Flush(); err != nil {
			tracer().Errorf("flushing trace: %s", err)
		}
	}
	printRecords(records)
	return nil
}

func printRecords(records []otdata.GlyphRecord) {
	rows := pterm.TableData{{"Glyph", "Components", "Alternates", "xAdvance", "yAdvance"}}
	for _, r := range records {
		rows = append(rows, []string{
			r.GlyphName,
			strings.Join(r.LigatureComponents, "+"),
			strings.Join(r.Alternates, ","),
			strconv.Itoa(int(r.XAdvance)),
			strconv.Itoa(int(r.YAdvance)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
