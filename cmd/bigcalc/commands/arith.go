package commands

import (
	"context"
	"strings"

	"github.com/11090815/hypernum/internal/calc"
	"github.com/11090815/hypernum/vars"
	"github.com/spf13/cobra"
)

func (a *app) evalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>...",
		Short: "evaluate a reverse polish expression and print the resulting stack",
		Long: "Tokens are separated by whitespace; all arguments are joined into one expression.\n" +
			"Operators: " + strings.Join(calc.Operators(), " "),
		Example: `  bigcalc eval "2 100 pow 1 -"
  bigcalc eval 4 13 497 modpow`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, err := a.calculator.Eval(cmdContext(cmd), strings.Join(args, " "))
			if err != nil {
				return err
			}
			a.print(cmd, stack...)
			return nil
		},
	}
}

// applyCommand 生成形如 "<name> x y [modulus]" 的子命令，缺少模数时使用 calc.modulus。
func (a *app) applyCommand(use, short, token string, operands int, modular bool) *cobra.Command {
	validate := cobra.ExactArgs(operands)
	if modular {
		validate = cobra.RangeArgs(operands-1, operands)
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  validate,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseOperands(args)
			if err != nil {
				return err
			}
			if len(values) < operands {
				if a.cfg.Calc.Modulus.IsZero() {
					return vars.WrapPathError(vars.ErrorInvalidArgument{Operation: token, Reason: "no modulus given and calc.modulus is not configured"})
				}
				values = append(values, a.cfg.Calc.Modulus)
			}

			stack, err := a.calculator.Apply(cmdContext(cmd), token, values...)
			if err != nil {
				return err
			}
			a.print(cmd, stack...)
			return nil
		},
	}
}

func (a *app) modPowCommand() *cobra.Command {
	return a.applyCommand("modpow <base> <exponent> [modulus]", "compute base^exponent mod modulus", "modpow", 3, true)
}

func (a *app) modInverseCommand() *cobra.Command {
	return a.applyCommand("modinv <value> [modulus]", "compute the modular inverse of value", "modinv", 2, true)
}

// 负数操作数需要写在 "--" 之后，例如 bigcalc divmod -- -7 3。
func (a *app) divModCommand() *cobra.Command {
	return a.applyCommand("divmod <dividend> <divisor>", "print the quotient and the non-negative remainder", "divmod", 2, false)
}

func (a *app) sqrtCommand() *cobra.Command {
	return a.applyCommand("sqrt <value>", "print the integer square root", "sqrt", 1, false)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
