package service

import (
	"fmt"
	"strings"

	"github.com/diegoclair/fractal-rotation-bot/internal/domain/entity"
)

// Enunciate turns ["a", "b", "c"] into "a, b and c".
func Enunciate(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}

	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

func buildDailyMessage(roleID, joke, namedEffect string, facts *entity.DailyFacts) string {
	var b strings.Builder

	if roleID != "" {
		fmt.Fprintf(&b, "<@&%s> ", roleID)
	}
	b.WriteString("Daily Fractal Poke!")

	if joke != "" {
		fmt.Fprintf(&b, "\n\n**Joke of the day:**\n%s", joke)
	}

	b.WriteString("\n\n**Fractals:**")

	if len(facts.Featured) > 0 {
		fmt.Fprintf(&b, "\n%s %s daily today!", Enunciate(facts.Featured), pick(facts.Featured, "is", "are"))
	} else {
		b.WriteString("\nNo CMs are daily today.")
	}

	if len(facts.Undesirable) > 0 {
		also := ""
		if len(facts.Featured) > 0 {
			also = " also"
		}
		fmt.Fprintf(&b, "\nUnfortunately, %s %s%s daily.", Enunciate(facts.Undesirable), pick(facts.Undesirable, "is", "are"), also)
	}

	if len(facts.WithNamedEffect) > 0 {
		fmt.Fprintf(&b, "\n%s %s %s.", Enunciate(facts.WithNamedEffect), pick(facts.WithNamedEffect, "has", "have"), namedEffect)
	} else {
		fmt.Fprintf(&b, "\nNo fractals have %s today!", namedEffect)
	}

	b.WriteString("\nReact with ✅ if you can make it today or ❌ if you skip.")

	return b.String()
}

func pick(names []string, singular, plural string) string {
	if len(names) > 1 {
		return plural
	}
	return singular
}
