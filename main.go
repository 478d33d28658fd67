package main

import (
	"errors"
	"os"

	"github.com/janpfeifer/must"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/ardanlabs/jai-converter/config"
	"github.com/ardanlabs/jai-converter/generator"
	"github.com/ardanlabs/jai-converter/parser"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	settings, err := config.Load(config.Flags(), os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	must.M(err)

	if settings.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	must.M(os.Chdir(settings.WorkDir))

	header := must.M1(parser.ParseFile(settings.Header))

	for _, u := range header.Unmatched {
		log.WithField("line", u.Line).Debugf("no pass matched: %s", u.Text)
	}
	if n := len(header.Unmatched); n > 0 {
		log.WithField("count", n).Warn("declarations left untranslated, run with --verbose to list them")
	}

	gen := generator.New(settings.LibName, settings.LibPath, generator.DefaultRules(), header, log)
	code := must.M1(gen.Generate())

	must.M(os.WriteFile(settings.Output, []byte(code), 0644))

	log.Infof("Wrote Jai bindings file '%s' from C header '%s'.", settings.Output, settings.Header)
}
