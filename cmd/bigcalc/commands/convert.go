package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/11090815/hypernum/common/numerics"
	"github.com/11090815/hypernum/protoutil"
	"github.com/11090815/hypernum/vars"
	"github.com/spf13/cobra"
)

func (a *app) convertCommand() *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "convert a value between radices",
		Long:  "Without --from the value may carry a 0x, 0b or 0o prefix. Without --to the configured radix is used.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var x numerics.Integer
			var err error
			if from == 0 {
				x, err = numerics.ParseLiteral(args[0])
			} else {
				x, err = numerics.Parse(args[0], from)
			}
			if err != nil {
				return vars.WrapPathError(err)
			}

			radix := to
			if radix == 0 {
				radix = a.cfg.Calc.Radix
			}
			if radix < 2 || radix > 36 {
				return vars.WrapPathError(vars.ErrorInvalidArgument{Operation: "convert", Reason: fmt.Sprintf("radix %d out of range [2, 36]", radix)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), x.Text(radix))
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "radix of the input value")
	cmd.Flags().IntVar(&to, "to", 0, "radix of the output value")

	return cmd
}

// encodeCommand 输出整数的 protobuf 编码（十六进制）。
func (a *app) encodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <value>",
		Short: "print the hex of the protobuf wire encoding of a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := numerics.ParseLiteral(args[0])
			if err != nil {
				return vars.WrapPathError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(protoutil.MarshalInteger(x)))
			return nil
		},
	}
}

func (a *app) decodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "decode a hex protobuf wire encoding back into a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hex.DecodeString(args[0])
			if err != nil {
				return vars.WrapPathError(err)
			}
			x, err := protoutil.UnmarshalInteger(raw)
			if err != nil {
				return vars.WrapPathError(err)
			}
			a.print(cmd, x)
			return nil
		},
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version of bigcalc",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bigcalc %s\n", Version)
		},
	}
}
