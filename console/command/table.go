package command

import (
	"strings"

	"github.com/hnimtadd/vgacon/console/color"
	runewidth "github.com/mattn/go-runewidth"
)

// Action runs a matched command. line is the raw input that matched.
type Action func(d *Dispatcher, line string)

// Command is one entry of the command table.
type Command struct {
	Name        string
	Description string
	Action      Action
}

// Table is an ordered set of commands. Lookup is first match wins, so
// table order breaks ties.
type Table []Command

// Lookup finds the first command whose name equals line exactly.
func (t Table) Lookup(line string) (Command, bool) {
	for _, cmd := range t {
		if cmd.Name == line {
			return cmd, true
		}
	}
	return Command{}, false
}

// DefaultTable returns the built-in commands in help order.
func DefaultTable() Table {
	return Table{
		{Name: "help", Description: "Show this help", Action: Help},
		{Name: "clear", Description: "Clear screen", Action: Clear},
		{Name: "version", Description: "Show OS version", Action: Version},
		{Name: "reboot", Description: "Reboot system", Action: Reboot},
	}
}

// helpNameWidth is the column the "- description" part starts at. Longer
// names push it right by one space.
const helpNameWidth = 8

// Help lists every command of the dispatcher's table.
func Help(d *Dispatcher, _ string) {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, cmd := range d.table {
		width := max(helpNameWidth, runewidth.StringWidth(cmd.Name)+1)
		b.WriteString(runewidth.FillRight(cmd.Name, width))
		b.WriteString("- ")
		b.WriteString(cmd.Description)
		b.WriteByte('\n')
	}
	d.console.Print(b.String(), color.Notice)
}

// Clear blanks the screen.
func Clear(d *Dispatcher, _ string) {
	d.console.ClearScreen()
}

// Version prints the product and version.
func Version(d *Dispatcher, _ string) {
	d.console.PrintText(d.VersionString()+"\n", color.Alert)
}

// Reboot prints a notice and asks the platform to restart. Nothing comes
// back from the request, so the dispatcher halts and ignores later input.
func Reboot(d *Dispatcher, _ string) {
	d.console.Print("Rebooting...\n", color.Alert)
	if d.rebooter != nil {
		d.rebooter.RequestReboot()
	} else {
		d.logger.Warn("no rebooter configured, halting only")
	}
	d.state = StateHalted
}

// unknown is the fallback for lines that match nothing.
func unknown(d *Dispatcher, line string) {
	d.console.Print("Unknown command: ", color.Alert)
	d.console.Print(line, color.Alert)
	d.console.Print("\nType 'help' for available commands\n", color.Notice)
}
