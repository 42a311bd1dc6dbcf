package appconfig

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp"
)

// ShowConfig prints the current configuration summary followed by the sampling parameters.
func ShowConfig(out io.Writer, file string, cfg Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Host:     %s\n", cfg.HostURL())
	fmt.Fprintf(out, "  Model:    %s\n", cfg.ModelName())
	fmt.Fprintf(out, "  Debug:    %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File: %s\n", cfg.LogFilePath())
	if cfg.ParameterTemplate != "" {
		fmt.Fprintf(out, "  Template: %s\n", cfg.ParameterTemplate)
	}

	options := cfg.Parameters.Options()
	if options == nil {
		fmt.Fprintln(out, "  Parameters: (model defaults)")
		return
	}
	fmt.Fprintln(out, "  Parameters:")
	pp.Fprintln(out, options)
}
