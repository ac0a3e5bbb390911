// Command textcrypt signs, verifies and encrypts text from the command line,
// and converts text to and from base64.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"github.com/textcrypt/textcrypt"
	"github.com/textcrypt/textcrypt/internal/config"
	"github.com/textcrypt/textcrypt/internal/crypto"
	"github.com/textcrypt/textcrypt/internal/genpass"
	"github.com/textcrypt/textcrypt/internal/logger"
)

const stdio = "-"

var errInputTooLarge = errors.New("input exceeds size limit")

// app carries the process streams and loaded configuration through the
// command actions.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg config.Config
	log *slog.Logger
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	return a.cli().Run(args)
}

func (a *app) cli() *cli.App {
	return &cli.App{
		Name:      "textcrypt",
		Usage:     "sign, verify and encrypt text",
		Reader:    a.stdin,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML configuration file",
				EnvVars: []string{config.EnvConfigPath},
			},
			&cli.StringFlag{
				Name:    "encoding",
				Aliases: []string{"e"},
				Usage:   "text encoding for signatures and ciphertexts (base64url, base58)",
			},
		},
		Before: a.setup,
		Commands: []*cli.Command{
			{
				Name:  "text",
				Usage: "sign, verify, generate keys, encrypt and decrypt",
				Subcommands: []*cli.Command{
					{
						Name:   "sign",
						Usage:  "sign the input and print the signature",
						Flags:  []cli.Flag{inputFlag(), keyFileFlag(), formatFlag()},
						Action: a.sign,
					},
					{
						Name:  "verify",
						Usage: "check a signature over the input",
						Flags: []cli.Flag{
							inputFlag(), keyFileFlag(), formatFlag(),
							&cli.StringFlag{Name: "sig", Aliases: []string{"s"}, Usage: "encoded signature", Required: true},
						},
						Action: a.verify,
					},
					{
						Name:  "generate",
						Usage: "write a new key set",
						Flags: []cli.Flag{
							formatFlag(),
							&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Usage: "directory for the key files"},
							&cli.BoolFlag{Name: "force", Usage: "overwrite existing key files"},
						},
						Action: a.generate,
					},
					{
						Name:   "encrypt",
						Usage:  "encrypt the input with ChaCha20-Poly1305",
						Flags:  aeadFlags(),
						Action: a.encrypt,
					},
					{
						Name:   "decrypt",
						Usage:  "decrypt input produced by encrypt",
						Flags:  aeadFlags(),
						Action: a.decrypt,
					},
				},
			},
			{
				Name:  "base64",
				Usage: "encode or decode URL-safe base64",
				Subcommands: []*cli.Command{
					{
						Name:   "encode",
						Usage:  "encode the input as padded URL-safe base64",
						Flags:  []cli.Flag{inputFlag()},
						Action: a.base64Encode,
					},
					{
						Name:   "decode",
						Usage:  "decode base64 input to UTF-8 text",
						Flags:  []cli.Flag{inputFlag()},
						Action: a.base64Decode,
					},
				},
			},
			{
				Name:  "genpass",
				Usage: "print a random password",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "length", Aliases: []string{"l"}, Value: genpass.DefaultOptions().Length},
					&cli.BoolFlag{Name: "no-upper"},
					&cli.BoolFlag{Name: "no-lower"},
					&cli.BoolFlag{Name: "no-number"},
					&cli.BoolFlag{Name: "no-symbol"},
				},
				Action: a.genpass,
			},
		},
	}
}

func inputFlag() cli.Flag {
	return &cli.StringFlag{Name: "input", Aliases: []string{"i"}, Value: stdio, Usage: "input file, - for stdin"}
}

func keyFileFlag() cli.Flag {
	return &cli.StringFlag{Name: "key", Aliases: []string{"k"}, Usage: "key file", Required: true}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "blake3 or ed25519"}
}

func aeadFlags() []cli.Flag {
	return []cli.Flag{
		inputFlag(),
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: stdio, Usage: "output file, - for stdout"},
		&cli.StringFlag{Name: "key", Aliases: []string{"k"}, Usage: "32-byte key"},
		&cli.StringFlag{Name: "key-file", Usage: "file holding the 32-byte key"},
	}
}

func (a *app) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"), ".env")
	if err != nil {
		return err
	}
	if c.IsSet("encoding") {
		codec, err := crypto.ParseCodec(c.String("encoding"))
		if err != nil {
			return err
		}
		cfg.Encoding = codec
	}

	lc, err := cfg.Logger()
	if err != nil {
		return err
	}
	logger.SetOutput(a.stderr)
	logger.Configure(lc)

	a.cfg = cfg
	a.log = logger.Logger("cli")
	return nil
}

func (a *app) format(c *cli.Context) (textcrypt.Format, error) {
	if !c.IsSet("format") {
		return a.cfg.Format, nil
	}
	return textcrypt.ParseFormat(c.String("format"))
}

func (a *app) sign(c *cli.Context) error {
	format, err := a.format(c)
	if err != nil {
		return err
	}
	key, err := os.ReadFile(c.String("key"))
	if err != nil {
		return fmt.Errorf("read key: %w", err)
	}
	data, err := a.readInput(c.String("input"))
	if err != nil {
		return err
	}

	sig, err := textcrypt.Sign(bytes.NewReader(data), key, format)
	if err != nil {
		return err
	}
	a.log.Debug("signed", "format", format, "input_bytes", len(data))

	encoded, err := a.cfg.Encoding.Encode(sig)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, encoded)
	return err
}

func (a *app) verify(c *cli.Context) error {
	format, err := a.format(c)
	if err != nil {
		return err
	}
	key, err := os.ReadFile(c.String("key"))
	if err != nil {
		return fmt.Errorf("read key: %w", err)
	}
	sig, err := a.cfg.Encoding.Decode(c.String("sig"))
	if err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}
	data, err := a.readInput(c.String("input"))
	if err != nil {
		return err
	}

	ok, err := textcrypt.Verify(bytes.NewReader(data), key, sig, format)
	if err != nil {
		return err
	}
	a.log.Debug("verified", "format", format, "input_bytes", len(data), "valid", ok)

	if ok {
		_, err = fmt.Fprintln(a.stdout, "Signature verified")
	} else {
		_, err = fmt.Fprintln(a.stdout, "Signature not verified")
	}
	return err
}

func (a *app) generate(c *cli.Context) error {
	format, err := a.format(c)
	if err != nil {
		return err
	}
	dir := a.cfg.OutputDir
	if c.IsSet("output-dir") {
		dir = c.String("output-dir")
	}

	keys, err := textcrypt.Generate(format)
	if err != nil {
		return err
	}

	var opts []textcrypt.WriteOption
	if c.Bool("force") {
		opts = append(opts, textcrypt.WithOverwrite())
	}
	paths, err := keys.WriteTo(dir, opts...)
	if err != nil {
		return err
	}
	a.log.Info("generated key set", "format", format, "files", len(paths))

	for _, p := range paths {
		if _, err := fmt.Fprintln(a.stdout, p); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) encrypt(c *cli.Context) error {
	key, err := aeadKey(c)
	if err != nil {
		return err
	}
	data, err := a.readInput(c.String("input"))
	if err != nil {
		return err
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%w: input is not UTF-8", textcrypt.ErrInvalidEncoding)
	}

	ct, err := textcrypt.Encrypt(string(data), key)
	if err != nil {
		return err
	}
	a.log.Debug("encrypted", "input_bytes", len(data), "output_bytes", len(ct))

	encoded, err := a.cfg.Encoding.Encode(ct)
	if err != nil {
		return err
	}
	return a.writeOutput(c.String("output"), []byte(encoded+"\n"))
}

func (a *app) decrypt(c *cli.Context) error {
	key, err := aeadKey(c)
	if err != nil {
		return err
	}
	data, err := a.readInput(c.String("input"))
	if err != nil {
		return err
	}

	ct, err := a.cfg.Encoding.Decode(string(data))
	if err != nil {
		return fmt.Errorf("decode ciphertext: %w", err)
	}
	plaintext, err := textcrypt.Decrypt(ct, key)
	if err != nil {
		return err
	}
	a.log.Debug("decrypted", "input_bytes", len(ct), "output_bytes", len(plaintext))

	return a.writeOutput(c.String("output"), []byte(plaintext))
}

func (a *app) base64Encode(c *cli.Context) error {
	data, err := a.readInput(c.String("input"))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, crypto.ToBase64URLPadded(data))
	return err
}

func (a *app) base64Decode(c *cli.Context) error {
	data, err := a.readInput(c.String("input"))
	if err != nil {
		return err
	}
	decoded, err := crypto.DecodeBase64(strings.TrimSpace(string(data)))
	if err != nil {
		return fmt.Errorf("decode base64: %w", err)
	}
	if !utf8.Valid(decoded) {
		return fmt.Errorf("%w: decoded data is not UTF-8", textcrypt.ErrInvalidEncoding)
	}
	_, err = fmt.Fprintln(a.stdout, string(decoded))
	return err
}

func (a *app) genpass(c *cli.Context) error {
	pw, err := genpass.Generate(genpass.Options{
		Length: c.Int("length"),
		Upper:  !c.Bool("no-upper"),
		Lower:  !c.Bool("no-lower"),
		Number: !c.Bool("no-number"),
		Symbol: !c.Bool("no-symbol"),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, pw)
	return err
}

// aeadKey returns the key given by exactly one of --key and --key-file.
func aeadKey(c *cli.Context) ([]byte, error) {
	switch {
	case c.IsSet("key") && c.IsSet("key-file"):
		return nil, errors.New("--key and --key-file are mutually exclusive")
	case c.IsSet("key"):
		return []byte(c.String("key")), nil
	case c.IsSet("key-file"):
		key, err := os.ReadFile(c.String("key-file"))
		if err != nil {
			return nil, fmt.Errorf("read key: %w", err)
		}
		return key, nil
	}
	return nil, errors.New("one of --key or --key-file is required")
}

// readInput reads name, or stdin for "-", up to the configured limit.
func (a *app) readInput(name string) ([]byte, error) {
	r := a.stdin
	if name != stdio {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	limit := a.cfg.MaxInputBytes
	// One extra byte distinguishes "exactly at the limit" from "over it".
	n := limit
	if n < math.MaxInt64 {
		n++
	}
	data, err := io.ReadAll(io.LimitReader(r, n))
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", errInputTooLarge, limit)
	}
	return data, nil
}

func (a *app) writeOutput(name string, data []byte) error {
	if name == stdio {
		_, err := a.stdout.Write(data)
		return err
	}
	if err := os.WriteFile(name, data, 0o600); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
