// Command floatset prints the values of a floating-point system F(radix, precision, [emin, emax)).
//
// Usage:
//
//	floatset -radix 2 -precision 3 -emin -1 -emax 2
//	floatset -config params.json -mantissa -normalized -format json
//	floatset -precision 3 -emin -1 -emax 1 -enclose 7/10
//
// A config file holds a json object like {"radix":2,"precision":3,"emin":-1,"emax":2}.
// Flags given explicitly override the values from the config file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"

	"github.com/avdva/floatset"
)

type options struct {
	params     floatset.Params
	config     string
	signed     bool
	mantissa   bool
	normalized bool
	distinct   bool
	histogram  bool
	format     string
	jsonMode   string
	places     int
	enclose    string
}

var jsonModes = map[string]int{
	"string": floatset.JSONModeString,
	"float":  floatset.JSONModeFloat,
	"dbe":    floatset.JSONModeDBE,
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("floatset: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w io.Writer) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	mode, found := jsonModes[opts.jsonMode]
	if !found {
		return fmt.Errorf("unknown json mode %q", opts.jsonMode)
	}
	floatset.JSONMode = mode
	if opts.enclose != "" {
		return writeEnclosure(w, opts)
	}
	values, err := enumerate(opts)
	if err != nil {
		return err
	}
	if opts.distinct {
		values = floatset.Distinct(values)
	}
	if opts.histogram {
		return writeHistogram(w, floatset.Histogram(values), opts)
	}
	return writeValues(w, values, opts)
}

func parseOptions(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("floatset", flag.ContinueOnError)
	fs.IntVar(&opts.params.Radix, "radix", 2, "radix of the system, at least 2")
	fs.IntVar(&opts.params.Precision, "precision", 3, "number of mantissa digits, at least 1")
	fs.IntVar(&opts.params.MinExp, "emin", -1, "smallest exponent, inclusive")
	fs.IntVar(&opts.params.MaxExp, "emax", 2, "largest exponent, exclusive")
	fs.StringVar(&opts.config, "config", "", "json file with params; explicit flags override it")
	fs.BoolVar(&opts.signed, "signed", false, "also produce negative values")
	fs.BoolVar(&opts.mantissa, "mantissa", false, "enumerate (b0.b1...b[p-1]) mantissas instead of d*b^e")
	fs.BoolVar(&opts.normalized, "normalized", false, "with -mantissa, skip mantissas with a zero leading digit")
	fs.BoolVar(&opts.distinct, "distinct", false, "print numerically unique values in ascending order")
	fs.BoolVar(&opts.histogram, "histogram", false, "print every unique value with its number of occurrences")
	fs.StringVar(&opts.format, "format", "text", "output format: text, decimal, fixed or json")
	fs.StringVar(&opts.jsonMode, "json-mode", "string", "value encoding for -format json: string, float or dbe")
	fs.IntVar(&opts.places, "places", 16, "decimal places for -format decimal")
	fs.StringVar(&opts.enclose, "enclose", "", "print the nearest normalized neighbours of a number like 0.7 or 7/10")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.config == "" {
		return opts, nil
	}
	params, err := loadConfig(opts.config)
	if err != nil {
		return opts, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "radix":
			params.Radix = opts.params.Radix
		case "precision":
			params.Precision = opts.params.Precision
		case "emin":
			params.MinExp = opts.params.MinExp
		case "emax":
			params.MaxExp = opts.params.MaxExp
		}
	})
	opts.params = params
	return opts, nil
}

func loadConfig(path string) (floatset.Params, error) {
	var params floatset.Params
	data, err := os.ReadFile(path)
	if err != nil {
		return params, err
	}
	if err := json.Unmarshal(data, &params); err != nil {
		return params, fmt.Errorf("bad config %s: %w", path, err)
	}
	return params, nil
}

func enumerate(opts options) ([]floatset.Value, error) {
	switch {
	case opts.mantissa:
		values, err := opts.params.EnumerateMantissa(opts.normalized)
		if err != nil || !opts.signed {
			return values, err
		}
		return floatset.Signed(values), nil
	case opts.signed:
		return opts.params.EnumerateSigned()
	default:
		return opts.params.Enumerate()
	}
}

func format(v floatset.Value, opts options) string {
	switch opts.format {
	case "decimal":
		return v.Decimal(int32(opts.places)).String()
	case "fixed":
		return v.Fixed().String()
	default:
		return v.String()
	}
}

func writeValues(w io.Writer, values []floatset.Value, opts options) error {
	switch opts.format {
	case "json":
		return json.NewEncoder(w).Encode(values)
	case "text", "decimal", "fixed":
		for _, v := range values {
			if _, err := fmt.Fprintln(w, format(v, opts)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}

func writeHistogram(w io.Writer, bins []floatset.Bin, opts options) error {
	switch opts.format {
	case "json":
		type jsonBin struct {
			Value floatset.Value `json:"value"`
			Count int            `json:"count"`
		}
		out := make([]jsonBin, len(bins))
		for i, bin := range bins {
			out[i] = jsonBin{Value: bin.Value, Count: bin.Count}
		}
		return json.NewEncoder(w).Encode(out)
	case "text", "decimal", "fixed":
		for _, bin := range bins {
			if _, err := fmt.Fprintf(w, "%s\t%d\n", format(bin.Value, opts), bin.Count); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}

func writeEnclosure(w io.Writer, opts options) error {
	x, ok := new(big.Rat).SetString(opts.enclose)
	if !ok {
		return fmt.Errorf("bad number %q", opts.enclose)
	}
	lo, hi, err := opts.params.Enclose(x)
	if err != nil {
		return err
	}
	switch opts.format {
	case "json":
		return json.NewEncoder(w).Encode([]floatset.Value{lo, hi})
	case "text", "decimal", "fixed":
		_, err = fmt.Fprintf(w, "%s\t%s\n", format(lo, opts), format(hi, opts))
		return err
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}
