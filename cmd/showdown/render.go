package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/cardroom/showdown/pkg/cards"
	"github.com/cardroom/showdown/pkg/hand"
)

// render prints both hands with their categories and the match verdict.
func render(w io.Writer, player, opponent *hand.Hand, result hand.Result, noColor bool) {
	if noColor {
		pterm.DisableColor()
	} else {
		pterm.EnableColor()
	}

	printHand(w, "You", player)
	printHand(w, "Opponent", opponent)
	fmt.Fprintln(w)

	switch result {
	case hand.SelfWins:
		fmt.Fprintln(w, pterm.LightGreen("YOU WIN!"))
	case hand.OtherWins:
		fmt.Fprintln(w, pterm.LightRed("YOU LOSE!"))
	default:
		fmt.Fprintln(w, pterm.LightYellow("TIE!"))
	}
}

func printHand(w io.Writer, label string, h *hand.Hand) {
	mnemonics := make([]string, 0, hand.Size)
	for _, c := range h.Cards() {
		mnemonics = append(mnemonics, colorCard(c))
	}
	fmt.Fprintln(w, pterm.Sprintf("%-9s %s : %s",
		label, strings.Join(mnemonics, " "), pterm.Bold.Sprint(h.Category())))
}

// colorCard renders a mnemonic with red diamonds and hearts, matching
// the physical deck.
func colorCard(c cards.Card) string {
	if c.Suit == cards.Diamonds || c.Suit == cards.Hearts {
		return pterm.LightRed(c.String())
	}
	return c.String()
}
