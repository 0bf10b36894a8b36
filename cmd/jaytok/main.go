package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/awave1/jay/internal/server"
	"github.com/awave1/jay/internal/token"
	"github.com/awave1/jay/internal/tokenstream"
	"github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"
)

type Option struct {
	Classify classifyCommand `command:"classify" description:"Classify words as keywords or identifiers"`
	Render   renderCommand   `command:"render" description:"Render token stream fixtures (.json/.yaml) to source text"`
	Keywords keywordsCommand `command:"keywords" description:"List reserved words"`
	Serve    serveCommand    `command:"serve" description:"Serve the classifier and the renderer over HTTP"`
}

type classifyCommand struct {
	JSON bool `long:"json" description:"[OPTIONAL] Print results as JSON"`

	out io.Writer
}

func (c *classifyCommand) Execute(words []string) error {
	if len(words) == 0 {
		return errors.New("no words given")
	}

	results := server.Classify(words)
	if c.JSON {
		return dumpJSON(c.out, results)
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(c.out, "%s\t%s\n", r.Word, r.Kind); err != nil {
			return fmt.Errorf("fmt.Fprintf: %w", err)
		}
	}
	return nil
}

type renderCommand struct {
	JSON  bool `long:"json" description:"[OPTIONAL] Print the canonical token stream as JSON instead of source text"`
	Debug bool `long:"debug" description:"[OPTIONAL] Dump decoded fixtures to stderr"`

	out      io.Writer
	debugOut io.Writer
}

func (c *renderCommand) Execute(files []string) error {
	if len(files) == 0 {
		return errors.New("no fixture files given")
	}

	streams := make([]tokenstream.Stream, len(files))
	dumps := make([]bytes.Buffer, len(files))
	eg := errgroup.Group{}
	for i, file := range files {
		i, file := i, file
		eg.Go(func() error {
			var debugOut io.Writer
			if c.Debug {
				debugOut = &dumps[i]
			}
			stream, err := loadStream(file, debugOut)
			if err != nil {
				return err
			}
			streams[i] = stream
			return nil
		})
	}
	err := eg.Wait()

	// dumps are kept per file so concurrent decoders do not interleave
	if c.Debug {
		for i, file := range files {
			if dumps[i].Len() == 0 {
				continue
			}
			if _, werr := fmt.Fprintf(c.debugOut, "== %s\n%s", file, dumps[i].Bytes()); werr != nil {
				log.Printf("failed to write debug dump: %v", werr)
			}
		}
	}
	if err != nil {
		return err
	}

	for _, stream := range streams {
		if c.JSON {
			if err := dumpJSON(c.out, stream); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(c.out, stream.String()); err != nil {
			return fmt.Errorf("fmt.Fprintln: %w", err)
		}
	}
	return nil
}

type keywordsCommand struct {
	out io.Writer
}

func (c *keywordsCommand) Execute([]string) error {
	for _, kw := range token.Keywords() {
		if _, err := fmt.Fprintln(c.out, kw); err != nil {
			return fmt.Errorf("fmt.Fprintln: %w", err)
		}
	}
	return nil
}

type serveCommand struct {
	Listen string `short:"l" long:"listen" description:"[REQUIRED] Listen host and port" required:"true"`
}

func (c *serveCommand) Execute([]string) error {
	srv := http.Server{
		Handler: server.NewHTTPHandler(),
		Addr:    c.Listen,
	}

	log.Printf("Listen HTTP on %s", c.Listen)
	if err := srv.ListenAndServe(); errors.Is(err, http.ErrServerClosed) {
		return nil
	} else if err != nil {
		return err
	}
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	var opt Option
	opt.Classify.out = stdout
	opt.Render.out = stdout
	opt.Render.debugOut = os.Stderr
	opt.Keywords.out = stdout

	parser := flags.NewParser(&opt, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				parser.WriteHelp(stdout)
				return 0
			}
			log.Printf("%v", err)
			parser.WriteHelp(os.Stderr)
			return 1
		}
		log.Printf("failed to run command: %v", err)
		return 1
	}
	return 0
}

// loadStream decodes a fixture file. A non-nil debugOut receives the decoder's
// dumps.
func loadStream(filePath string, debugOut io.Writer) (tokenstream.Stream, error) {
	var isYAML bool
	switch filepath.Ext(filePath) {
	case ".json":
	case ".yaml", ".yml":
		isYAML = true
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filePath)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%q): %w", filePath, err)
	}
	defer f.Close()

	var stream tokenstream.Stream
	switch {
	case debugOut != nil:
		stream, err = tokenstream.DecodeWithDebugOutput(f, isYAML, debugOut)
	case isYAML:
		stream, err = tokenstream.DecodeYAML(f)
	default:
		stream, err = tokenstream.DecodeJSON(f)
	}
	if err != nil {
		return nil, fmt.Errorf("tokenstream.Decode(%q): %w", filePath, err)
	}
	return stream, nil
}

func dumpJSON(w io.Writer, v any) error {
	opts := []json.EncodeOptionFunc{json.DisableHTMLEscape()}
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		if isatty.IsTerminal(f.Fd()) {
			opts = append(opts, json.Colorize(json.DefaultColorScheme))
		}
	}

	b, err := json.MarshalIndentWithOption(v, "", "\t", opts...)
	if err != nil {
		return fmt.Errorf("json.MarshalIndentWithOption: %w", err)
	}

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}
