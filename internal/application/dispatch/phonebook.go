package dispatch

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/vmodem/vmodem99a/internal/domain"
)

func (d *Dispatcher) phonebook() {
	d.Console.Heading("VModem Phone Book")
	d.Console.Muted("─────────────────")
	d.Console.Println("Recent connections:")

	recent := d.History.Recent(domain.PhonebookLimit)
	if len(recent) == 0 {
		d.Console.Println("  No recent connections")
		d.Console.Println("")
		return
	}
	for _, entry := range recent {
		d.Console.Entry(entry)
	}
	d.Console.Muted(fmt.Sprintf("%s on record, last call %s",
		english.Plural(d.History.Len(), "call", "calls"),
		humanize.RelTime(recent[0].Timestamp, d.now(), "ago", "from now")))

	all := d.History.Recent(d.History.Len())
	if top := TopTargets(all, 1); len(top) > 0 {
		d.Console.Muted(fmt.Sprintf("Success rate: %.1f%% | Most dialed: %s (%d)", SuccessRate(all), top[0].Target, top[0].Count))
	}
	d.Console.Println("")
}
