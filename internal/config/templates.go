package config

import (
	"fmt"
	"os"
)

func Template() string {
	return metadata2mdTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(metadata2mdTemplate), 0o644)
}

const metadata2mdTemplate = `# metadata2md config
# report path is <input><output_suffix>
output_suffix = ".md"

# report title; empty derives it from the report file name
title = ""

# trace | debug | info | warn | error | off
log_level = "info"
`
