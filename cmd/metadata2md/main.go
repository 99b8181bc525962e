package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/kernelmeta/internal/config"
	"github.com/danmuck/kernelmeta/internal/convert"
	"github.com/danmuck/kernelmeta/internal/logging"
	"github.com/rs/zerolog/log"
)

const usage = "Usage: metadata2md [-config file.toml] <metadata_file_path>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("metadata2md", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "optional TOML config file")
	initConfig := fs.String("init-config", "", "write a config template to this path and exit")
	force := fs.Bool("force", false, "overwrite an existing file with -init-config")
	examplePath := fs.String("example", "", "write a sample metadata file to this path and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "metadata2md: %v\n", err)
		return 1
	}
	logging.ConfigureRuntime(logging.WithLevel(cfg.LogLevel))

	if *initConfig != "" {
		if err := config.WriteTemplate(*initConfig, *force); err != nil {
			fmt.Fprintf(stderr, "metadata2md: %v\n", err)
			return 1
		}
		log.Info().Str("path", *initConfig).Msg("wrote config template")
		return 0
	}

	if *examplePath != "" {
		if err := writeExample(*examplePath); err != nil {
			fmt.Fprintf(stderr, "metadata2md: %v\n", err)
			return 1
		}
		log.Info().Str("path", *examplePath).Msg("wrote example metadata")
		return 0
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, usage)
		return 1
	}
	input := fs.Arg(0)
	if _, err := os.Stat(input); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(stderr, "Error: File '%s' does not exist.\n", input)
		return 1
	}

	out, err := convert.Run(input, cfg.ConvertOptions())
	if err != nil {
		fmt.Fprintf(stderr, "metadata2md: %v\n", err)
		return 1
	}
	log.Info().Str("input", input).Str("output", out).Msg("generated markdown report")
	fmt.Fprintf(stdout, "成功生成Markdown文件: %s\n", out)
	return 0
}
