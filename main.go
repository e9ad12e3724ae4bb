// Demo program showing the styling API and tier-aware rendering.
//
// Options can be passed on the command line or through TINT_DEMO_OPTS,
// e.g. TINT_DEMO_OPTS="--ansi256" to preview the output of a 256-color
// terminal.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/mattn/go-shellwords"

	tint "github.com/junegunn/tint/src"
	"github.com/junegunn/tint/src/term"
	"github.com/junegunn/tint/src/util"
)

var version string = "0.1"

const usage = `usage: tint-demo [--no-color | --ansi256 | --truecolor] [--version]`

func errorExit(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(2)
}

func main() {
	if err := term.SetVirtualTerminal(true); err != nil {
		// Not fatal. Detection keeps colors off while the console cannot
		// render escape sequences.
		fmt.Fprintln(os.Stderr, "tint-demo: "+err.Error())
	}

	words, err := shellwords.Parse(os.Getenv("TINT_DEMO_OPTS"))
	if err != nil {
		errorExit("tint-demo: invalid TINT_DEMO_OPTS: " + err.Error())
	}
	for _, arg := range append(words, os.Args[1:]...) {
		switch arg {
		case "--no-color":
			term.Set(term.ModeNo)
		case "--color":
			term.Set(term.ModeYes)
		case "--ansi256":
			term.Set(term.ModeYesAnsi256)
		case "--truecolor":
			term.Set(term.ModeYesTrueColor)
		case "--version":
			fmt.Println("tint-demo " + version)
			return
		case "--help":
			fmt.Println(usage)
			return
		default:
			errorExit("tint-demo: unknown option: " + arg + "\n" + usage)
		}
	}

	fmt.Printf("detected tier: %s\n\n", term.CurrentTier())
	banner()
	fmt.Println()
	catalogue()
}

// banner prints a hue sweep, two pixel rows per line using the upper
// half-block rune, fit to the terminal width.
func banner() {
	width := util.Min(termWidth(), 80)
	const rows = 8
	for y := 0; y < rows; y++ {
		for x := 0; x < width; x++ {
			hue := 360 * float64(x) / float64(width)
			top := colorful.Hsv(hue, 0.7, 1-0.8*float64(2*y)/(2*rows))
			bottom := colorful.Hsv(hue, 0.7, 1-0.8*float64(2*y+1)/(2*rows))
			tr, tg, tb := top.RGB255()
			br, bg, bb := bottom.RGB255()
			fmt.Print(tint.New("▀").RGB(tr, tg, tb).OnRGB(br, bg, bb))
		}
		fmt.Println()
	}
}

func catalogue() {
	entries := []struct {
		label string
		text  tint.Text
	}{
		{`New("Blue").Blue()`, tint.New("Blue").Blue()},
		{`New("Red").Red()`, tint.New("Red").Red()},
		{`New("Red on Blue").Red().OnBlue()`, tint.New("Red on Blue").Red().OnBlue()},
		{`New("Bright").BrightRed().OnBrightBlue()`, tint.New("Bright").BrightRed().OnBrightBlue()},
		{`New("Bold").Bold()`, tint.New("Bold").Bold()},
		{`New("Italic underline").Italic().Underline()`, tint.New("Italic underline").Italic().Underline()},
		{`New("Strikethrough").Strikethrough()`, tint.New("Strikethrough").Strikethrough()},
		{`New("Truecolor").RGB(0, 255, 136)`, tint.New("Truecolor").RGB(0, 255, 136)},
		{`New("On truecolor").OnRGB(135, 28, 167)`, tint.New("On truecolor").OnRGB(135, 28, 167)},
		{`New("Hex").Hex("#a6e3a1")`, tint.New("Hex").Hex("#a6e3a1")},
		{`New("Indexed").Ansi256(214)`, tint.New("Indexed").Ansi256(214)},
		{`New("Purple = Magenta").Purple()`, tint.New("Purple = Magenta").Purple()},
		{`New("Overridden (Red)").Yellow().Blue().Red()`, tint.New("Overridden (Red)").Yellow().Blue().Red()},
		{`New("Cleared").Red().Bold().Clear()`, tint.New("Cleared").Red().Bold().Clear()},
		{`New("Conditional").RedIf(1 > 2)`, tint.New("Conditional").RedIf(1 > 2)},
		{`New("Conditional").RedIf(2 > 1)`, tint.New("Conditional").RedIf(2 > 1)},
	}

	labelWidth := 0
	for _, e := range entries {
		labelWidth = util.Max(labelWidth, runewidth.StringWidth(e.label))
	}
	for _, e := range entries {
		fmt.Printf("%s  %s\n", runewidth.FillRight(e.label, labelWidth), e.text)
	}
}

func termWidth() int {
	if env := os.Getenv("COLUMNS"); env != "" {
		if width, err := strconv.Atoi(env); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
