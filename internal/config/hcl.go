package config

import (
	"github.com/hashicorp/hcl/v2/hclsimple"

	"telephone-bill/core/types"
)

// hclFile mirrors Config for HCL decoding. Pointers tell attributes that
// were set apart from those left out, so defaults survive partial files:
//
//	currency = "EUR"
//
//	output {
//	  default_format = "json"
//	}
//
//	logging {
//	  level = "debug"
//	}
type hclFile struct {
	Version  *string     `hcl:"version,optional"`
	Currency *string     `hcl:"currency,optional"`
	Output   *hclOutput  `hcl:"output,block"`
	Logging  *hclLogging `hcl:"logging,block"`
}

type hclOutput struct {
	DefaultFormat *string `hcl:"default_format,optional"`
	ShowDetails   *bool   `hcl:"show_details,optional"`
}

type hclLogging struct {
	Level       *string `hcl:"level,optional"`
	Format      *string `hcl:"format,optional"`
	Output      *string `hcl:"output,optional"`
	Development *bool   `hcl:"development,optional"`
}

func loadHCL(path string, config *Config) error {
	var file hclFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return err
	}

	setString(&config.Version, file.Version)
	if file.Currency != nil {
		config.Currency = types.Currency(*file.Currency)
	}
	if o := file.Output; o != nil {
		setString(&config.Output.DefaultFormat, o.DefaultFormat)
		setBool(&config.Output.ShowDetails, o.ShowDetails)
	}
	if l := file.Logging; l != nil {
		setString(&config.Logging.Level, l.Level)
		setString(&config.Logging.Format, l.Format)
		setString(&config.Logging.Output, l.Output)
		setBool(&config.Logging.Development, l.Development)
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
