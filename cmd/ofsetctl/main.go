// ofsetctl converts set_field actions between their text and wire
// forms, for poking at switches and debugging captures.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/ofpkit/setfield"
	"github.com/ofpkit/setfield/oxm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

func logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()
}

func main() {
	root := &cobra.Command{
		Use:           "ofsetctl",
		Short:         "encode and decode openflow set_field actions",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug output")

	encode := &cobra.Command{
		Use:   "encode <value>-><field>",
		Short: "parse a text action and print its wire record as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			text := strings.TrimPrefix(args[0], "set_field:")
			act, err := setfield.Parse(oxm.Basic(), text)
			if err != nil {
				return err
			}
			log.Debug().
				Str("field", act.Field.Name).
				Int("bits", act.BitCount()).
				Msg("resolved target")
			data, _ := act.MarshalBinary()
			fmt.Println(hex.EncodeToString(data))
			fmt.Println(act)
			return nil
		},
	}

	decode := &cobra.Command{
		Use:   "decode <hex>",
		Short: "decode a wire record and print its text form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			data, err := hex.DecodeString(args[0])
			if err != nil {
				return err
			}
			act, err := setfield.Unmarshal(oxm.Basic(), data)
			if err != nil {
				return err
			}
			log.Debug().
				Str("field", act.Field.Name).
				Int("bytes", act.Field.NBytes).
				Msg("decoded record")
			fmt.Println(act)
			return nil
		},
	}

	root.AddCommand(encode, decode)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
