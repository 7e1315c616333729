package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dtroode/agreement-server/internal/render/qr"
)

func newQRCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Encode or decode verification QR codes",
	}

	var out, challenge string
	encode := &cobra.Command{
		Use:   "encode <code>",
		Short: "Write the verification QR code for a code as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			png, err := qr.NewCoder(a.cfg.Verification.BaseURL).PNG(args[0], challenge)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(png)
				return err
			}
			return os.WriteFile(out, png, 0o644)
		},
	}
	encode.Flags().StringVarP(&out, "output", "o", "", "output file, stdout when empty")
	encode.Flags().StringVar(&challenge, "challenge", "", "embed a verification challenge")

	decode := &cobra.Command{
		Use:   "decode <file>",
		Short: "Print the verification code carried by a QR image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read image: %w", err)
			}
			code, challenge, err := qr.NewCoder(a.cfg.Verification.BaseURL).Scan(data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), code)
			if challenge != "" {
				fmt.Fprintln(cmd.OutOrStdout(), "challenge:", challenge)
			}
			return nil
		},
	}

	cmd.AddCommand(encode, decode)
	return cmd
}
