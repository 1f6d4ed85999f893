package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saylorsolutions/xorb64/cmd/internal"
	"github.com/saylorsolutions/xorb64/pkg/xorb64"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const envPrefix = "XORB64"

var errNoTerminal = errors.New("stdin is not a terminal")

// keyPrompter asks the user for a key when one isn't given by flag or environment.
type keyPrompter = func() ([]byte, error)

type app struct {
	stdout io.Writer
	stderr io.Writer
	fs     afero.Fs
	prompt keyPrompter
}

type options struct {
	help      bool
	version   bool
	verbose   bool
	operation string
	key       string
	text      string
	file      string
	out       string
}

func (a *app) newFlags(opts *options) *flag.FlagSet {
	flags := flag.NewFlagSet("xorb64", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.BoolVarP(&opts.help, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&opts.version, "version", false, "Prints the version and exits.")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enables debug logging to stderr.")
	flags.StringVarP(&opts.operation, "operation", "o", "", "One of encrypt, decrypt, encrypt-file, or decrypt-file.")
	flags.StringVarP(&opts.key, "key", "k", "", "The XOR key. May also be set with "+envPrefix+"_KEY, or entered at a prompt.")
	flags.StringVarP(&opts.text, "text", "t", "", "Literal text to encrypt or decrypt. Used with encrypt and decrypt.")
	flags.StringVarP(&opts.file, "file", "f", "", "File to read input from. Used with encrypt-file and decrypt-file.")
	flags.StringVar(&opts.out, "out", "", "Write the result to this file instead of stdout.")
	flags.String("log-level", internal.DefaultLogLevel, "Log level (trace, debug, info, warn, error). May also be set with "+envPrefix+"_LOG_LEVEL.")
	return flags
}

func (a *app) usage(flags *flag.FlagSet) {
	_, _ = fmt.Fprintf(a.stdout, `
xorb64 screens text or file contents with a repeating XOR key and encodes the result as base64, or reverses the process.

USAGE:  xorb64 -o OPERATION -k KEY (-t TEXT | -f FILE) [--out PATH]

OPERATIONS:
    encrypt         Screen and encode the TEXT argument.
    decrypt         Decode and unscreen the TEXT argument.
    encrypt-file    Screen and encode the contents of FILE.
    decrypt-file    Decode and unscreen the contents of FILE. A single trailing line break is ignored.

FLAGS:
%s
SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
Anyone who knows or guesses the key can reverse the process, and a repeating key leaks patterns in longer inputs.
`, flags.FlagUsages())
}

func (a *app) run(args []string) error {
	var opts options
	flags := a.newFlags(&opts)
	if len(args) == 0 {
		a.usage(flags)
		return nil
	}
	if err := flags.Parse(args); err != nil {
		a.usage(flags)
		return fmt.Errorf("%w: %v", xorb64.ErrInvalidArguments, err)
	}
	if opts.help {
		a.usage(flags)
		return nil
	}
	if opts.version {
		_, _ = fmt.Fprintln(a.stdout, version)
		return nil
	}

	conf, err := loadConfig(flags)
	if err != nil {
		return err
	}
	level := conf.GetString("log-level")
	if opts.verbose {
		level = "debug"
	}
	logger := internal.NewLogger("xorb64", level, conf.GetBool("json-log"), a.stderr)

	req, err := a.parseRequest(flags, &opts, conf)
	if err != nil {
		return err
	}
	logger.Debug("parsed request", "operation", req.Op.String(), "key_len", len(req.Key))

	runner, err := xorb64.NewRunner(
		xorb64.UseFs(a.fs),
		xorb64.UseStdout(a.stdout),
		xorb64.UseLogger(logger),
	)
	if err != nil {
		return err
	}
	return runner.Run(req)
}

// loadConfig layers flags over XORB64_* environment variables.
func loadConfig(flags *flag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, name := range []string{"key", "log-level"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return nil, err
		}
	}
	if err := v.BindEnv("json-log", envPrefix+"_JSON_LOG"); err != nil {
		return nil, err
	}
	return v, nil
}

// parseRequest turns parsed flags into a Request without touching the filesystem.
func (a *app) parseRequest(flags *flag.FlagSet, opts *options, conf *viper.Viper) (xorb64.Request, error) {
	var req xorb64.Request
	if flags.NArg() > 0 {
		return req, fmt.Errorf("%w: unexpected arguments: %s", xorb64.ErrInvalidArguments, strings.Join(flags.Args(), " "))
	}
	if !flags.Changed("operation") {
		return req, fmt.Errorf("%w: the 'operation' argument is required", xorb64.ErrInvalidArguments)
	}
	op, err := xorb64.ParseOperation(opts.operation)
	if err != nil {
		return req, err
	}
	req.Op = op
	if flags.Changed("text") {
		req.Text = &opts.text
	}
	if flags.Changed("file") {
		req.File = &opts.file
	}
	if flags.Changed("out") {
		req.Output = &opts.out
	}
	if err := req.ValidateArgs(); err != nil {
		return req, err
	}

	key, err := a.resolveKey(flags, conf)
	if err != nil {
		return req, err
	}
	req.Key = key
	return req, nil
}

func (a *app) resolveKey(flags *flag.FlagSet, conf *viper.Viper) ([]byte, error) {
	switch {
	case flags.Changed("key"):
		return []byte(conf.GetString("key")), nil
	case conf.IsSet("key"):
		return []byte(conf.GetString("key")), nil
	}
	if a.prompt == nil {
		return nil, fmt.Errorf("%w: the 'key' argument is required", xorb64.ErrInvalidArguments)
	}
	key, err := a.prompt()
	if err != nil {
		if errors.Is(err, errNoTerminal) {
			return nil, fmt.Errorf("%w: the 'key' argument is required", xorb64.ErrInvalidArguments)
		}
		return nil, fmt.Errorf("%w: failed to read key: %v", xorb64.ErrInvalidArguments, err)
	}
	return key, nil
}

func terminalPrompt(in *os.File, out io.Writer) keyPrompter {
	return func() ([]byte, error) {
		fd := int(in.Fd())
		if !term.IsTerminal(fd) {
			return nil, errNoTerminal
		}
		_, _ = fmt.Fprint(out, "Key: ")
		key, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(out)
		return key, err
	}
}
