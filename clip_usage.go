package clip

import (
	"fmt"
	"os"
	"strings"

	"github.com/amterp/color"
)

var (
	greenBold  = color.New(color.FgGreen, color.Bold)
	bold       = color.New(color.Bold)
	GreenBoldS = greenBold.SprintfFunc()
	BoldS      = bold.SprintfFunc()
)

const (
	usageRule   = "----------------------------------------"
	usageSpacer = " ........................."
)

// GenerateHelp renders the registered flags and arguments as help text. It is
// a pure function of registry state: each entry's short key, word key,
// default text, and usage description, in registration order.
func (p *Parser) GenerateHelp(programDescription string) string {
	initializeColorFromEnv()

	var sb strings.Builder
	sb.WriteString(usageRule + "\n")
	if programDescription != "" {
		sb.WriteString(BoldS("%s", programDescription) + "\n")
	}

	if len(p.flags) > 0 {
		sb.WriteString(GreenBoldS("Flags:") + "\n")
		for _, f := range p.flags {
			writeUsageLine(&sb, &f.entryMeta)
		}
	}

	if len(p.values) > 0 {
		sb.WriteString(GreenBoldS("Arguments:") + "\n")
		for _, v := range p.values {
			writeUsageLine(&sb, &v.entryMeta)
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// PrintHelp writes GenerateHelp's output to the configured stdout writer.
func (p *Parser) PrintHelp(programDescription string) {
	fmt.Fprint(stdoutWriter, p.GenerateHelp(programDescription))
}

func writeUsageLine(sb *strings.Builder, m *entryMeta) {
	sb.WriteString(" ")
	if m.short != "" {
		sb.WriteString(string(ShortDelim) + m.short)
	} else {
		sb.WriteString("  ")
	}

	if m.word != "" {
		col := " " + LongDelim + m.word + " "
		if pad := len(usageSpacer) - len(col); pad > 0 {
			col += strings.Repeat(".", pad)
		}
		sb.WriteString(col)
	} else {
		sb.WriteString(usageSpacer)
	}

	fmt.Fprintf(sb, "[default: %8s] %s\n", m.defaultText, m.usage)
}

func initializeColorFromEnv() {
	colorValue := strings.ToLower(strings.TrimSpace(os.Getenv("CLIP_COLOR")))
	switch colorValue {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	case "", "auto":
		// let amterp/color decide based on tty
	default:
		// invalid value - treat as auto
	}
}
