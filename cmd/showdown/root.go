package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cardroom/showdown/pkg/cards"
	"github.com/cardroom/showdown/pkg/hand"
)

const envPrefix = "SHOWDOWN"

const longHelp = `Classify five-card poker hands and decide the showdown.

Pass five cards to play against a randomly dealt opponent, or ten cards
to compare two fixed hands. Each card is a two-character mnemonic:

  Ranks: 2 3 4 5 6 7 8 9 X J Q K A
  Suits: S C D H

Examples:
  showdown XC 2H 3H 4D AS
  showdown 8C 7D 6S 4D 5S 7S 2S 5D 8S 6C`

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "showdown CARD CARD CARD CARD CARD [CARD CARD CARD CARD CARD]",
		Short:         "Five-card poker showdown",
		Long:          longHelp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != hand.Size && len(args) != 2*hand.Size {
				return fmt.Errorf("expected %d or %d cards, got %d", hand.Size, 2*hand.Size, len(args))
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args)
		},
	}

	cmd.Flags().Int64("seed", 0, "shuffle seed for the random opponent hand (0 = time-seeded)")
	cmd.Flags().Bool("no-color", false, "disable colored output")
	cmd.Flags().Bool("verbose", false, "enable debug logging")

	return cmd
}

// bindFlags layers environment variables (SHOWDOWN_SEED, ...) under the
// command-line flags.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(flags)
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	seed := cast.ToInt64(v.Get("seed"))
	noColor := cast.ToBool(v.Get("no-color"))
	verbose := cast.ToBool(v.Get("verbose"))

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := log.NewLogger(cmd.ErrOrStderr(), log.LevelOption(level))

	playerCards, err := cards.ParseCards(args[:hand.Size])
	if err != nil {
		return fmt.Errorf("player hand: %w", err)
	}
	player, err := hand.New(playerCards)
	if err != nil {
		return fmt.Errorf("player hand: %w", err)
	}
	logger.Debug("player hand", "cards", player.String(), "category", player.Category().String())

	var opponent *hand.Hand
	if len(args) == 2*hand.Size {
		opponentCards, err := cards.ParseCards(args[hand.Size:])
		if err != nil {
			return fmt.Errorf("opponent hand: %w", err)
		}
		opponent, err = hand.New(opponentCards)
		if err != nil {
			return fmt.Errorf("opponent hand: %w", err)
		}
	} else {
		opponent, err = dealOpponent(playerCards, seed, logger)
		if err != nil {
			return fmt.Errorf("dealing opponent hand: %w", err)
		}
	}
	logger.Debug("opponent hand", "cards", opponent.String(), "category", opponent.Category().String())

	result, err := player.Compare(opponent)
	if err != nil {
		return fmt.Errorf("showdown: %w", err)
	}

	render(cmd.OutOrStdout(), player, opponent, result, noColor)
	return nil
}

// dealOpponent draws five cards from a shuffled deck with the player's
// cards removed, so the two hands can never overlap.
func dealOpponent(player []cards.Card, seed int64, logger log.Logger) (*hand.Hand, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("dealing opponent hand", "seed", seed)

	deck := cards.NewDeck()
	deck.Remove(player...)
	deck.Shuffle(rand.New(rand.NewSource(seed)))

	drawn, err := deck.Draw(hand.Size)
	if err != nil {
		return nil, err
	}
	return hand.New(drawn)
}
